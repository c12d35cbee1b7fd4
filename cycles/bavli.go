package cycles

// Daf Yomi cycle lengths. Before the eighth cycle Shekalim was learned with
// the Babylonian pagination of thirteen folios.
const (
	BavliFirstLength  = 2702
	BavliSecondLength = 2711
)

func bavli(shekalimLast int) []pages {
	return []pages{
		{Tractate{"Berachos", "ברכות"}, 2, 64},
		{Tractate{"Shabbos", "שבת"}, 2, 157},
		{Tractate{"Eruvin", "עירובין"}, 2, 105},
		{Tractate{"Pesachim", "פסחים"}, 2, 121},
		{Tractate{"Shekalim", "שקלים"}, 2, shekalimLast},
		{Tractate{"Yoma", "יומא"}, 2, 88},
		{Tractate{"Sukkah", "סוכה"}, 2, 56},
		{Tractate{"Beitzah", "ביצה"}, 2, 40},
		{Tractate{"Rosh Hashanah", "ראש השנה"}, 2, 35},
		{Tractate{"Taanis", "תענית"}, 2, 31},
		{Tractate{"Megillah", "מגילה"}, 2, 32},
		{Tractate{"Moed Katan", "מועד קטן"}, 2, 29},
		{Tractate{"Chagigah", "חגיגה"}, 2, 27},
		{Tractate{"Yevamos", "יבמות"}, 2, 122},
		{Tractate{"Kesubos", "כתובות"}, 2, 112},
		{Tractate{"Nedarim", "נדרים"}, 2, 91},
		{Tractate{"Nazir", "נזיר"}, 2, 66},
		{Tractate{"Sotah", "סוטה"}, 2, 49},
		{Tractate{"Gittin", "גיטין"}, 2, 90},
		{Tractate{"Kiddushin", "קידושין"}, 2, 82},
		{Tractate{"Bava Kamma", "בבא קמא"}, 2, 119},
		{Tractate{"Bava Metzia", "בבא מציעא"}, 2, 119},
		{Tractate{"Bava Basra", "בבא בתרא"}, 2, 176},
		{Tractate{"Sanhedrin", "סנהדרין"}, 2, 113},
		{Tractate{"Makkos", "מכות"}, 2, 24},
		{Tractate{"Shevuos", "שבועות"}, 2, 49},
		{Tractate{"Avodah Zarah", "עבודה זרה"}, 2, 76},
		{Tractate{"Horayos", "הוריות"}, 2, 14},
		{Tractate{"Zevachim", "זבחים"}, 2, 120},
		{Tractate{"Menachos", "מנחות"}, 2, 110},
		{Tractate{"Chullin", "חולין"}, 2, 142},
		{Tractate{"Bechoros", "בכורות"}, 2, 61},
		{Tractate{"Arachin", "ערכין"}, 2, 34},
		{Tractate{"Temurah", "תמורה"}, 2, 34},
		{Tractate{"Kerisos", "כריתות"}, 2, 28},
		{Tractate{"Meilah", "מעילה"}, 2, 22},
		{Tractate{"Kinnim", "קינים"}, 23, 25},
		{Tractate{"Tamid", "תמיד"}, 26, 33},
		{Tractate{"Middos", "מידות"}, 34, 37},
		{Tractate{"Niddah", "נדה"}, 2, 73},
	}
}

var (
	bavliFirst  = newCatalog(bavli(13))
	bavliSecond = newCatalog(bavli(22))
)

// DafYomi returns the folio studied offset days into a Daf Yomi cycle.
// firstCycle selects the catalog in use before the 1975 cycle.
func DafYomi(firstCycle bool, offset int) Daf {
	c := bavliSecond
	if firstCycle {
		c = bavliFirst
	}
	t, page := c.locate(offset)
	return Daf{Tractate: t, Page: page}
}
