package cycles

// YerushalmiLength is the number of folios in the Vilna edition, which is
// also the number of study days in a Yerushalmi Yomi cycle.
const YerushalmiLength = 1554

var yerushalmi = newCatalog([]pages{
	{Tractate{"Berachos", "ברכות"}, 1, 68},
	{Tractate{"Peah", "פאה"}, 1, 37},
	{Tractate{"Demai", "דמאי"}, 1, 34},
	{Tractate{"Kilayim", "כלאים"}, 1, 44},
	{Tractate{"Sheviis", "שביעית"}, 1, 31},
	{Tractate{"Terumos", "תרומות"}, 1, 59},
	{Tractate{"Maasros", "מעשרות"}, 1, 26},
	{Tractate{"Maaser Sheni", "מעשר שני"}, 1, 33},
	{Tractate{"Challah", "חלה"}, 1, 28},
	{Tractate{"Orlah", "ערלה"}, 1, 20},
	{Tractate{"Bikkurim", "ביכורים"}, 1, 13},
	{Tractate{"Shabbos", "שבת"}, 1, 92},
	{Tractate{"Eruvin", "עירובין"}, 1, 65},
	{Tractate{"Pesachim", "פסחים"}, 1, 71},
	{Tractate{"Beitzah", "ביצה"}, 1, 22},
	{Tractate{"Rosh Hashanah", "ראש השנה"}, 1, 22},
	{Tractate{"Yoma", "יומא"}, 1, 42},
	{Tractate{"Sukkah", "סוכה"}, 1, 26},
	{Tractate{"Taanis", "תענית"}, 1, 26},
	{Tractate{"Shekalim", "שקלים"}, 1, 33},
	{Tractate{"Megillah", "מגילה"}, 1, 34},
	{Tractate{"Chagigah", "חגיגה"}, 1, 22},
	{Tractate{"Moed Katan", "מועד קטן"}, 1, 19},
	{Tractate{"Yevamos", "יבמות"}, 1, 85},
	{Tractate{"Kesubos", "כתובות"}, 1, 72},
	{Tractate{"Sotah", "סוטה"}, 1, 47},
	{Tractate{"Nedarim", "נדרים"}, 1, 40},
	{Tractate{"Nazir", "נזיר"}, 1, 47},
	{Tractate{"Gittin", "גיטין"}, 1, 54},
	{Tractate{"Kiddushin", "קידושין"}, 1, 48},
	{Tractate{"Bava Kamma", "בבא קמא"}, 1, 44},
	{Tractate{"Bava Metzia", "בבא מציעא"}, 1, 37},
	{Tractate{"Bava Basra", "בבא בתרא"}, 1, 34},
	{Tractate{"Shevuos", "שבועות"}, 1, 44},
	{Tractate{"Makkos", "מכות"}, 1, 9},
	{Tractate{"Sanhedrin", "סנהדרין"}, 1, 57},
	{Tractate{"Avodah Zarah", "עבודה זרה"}, 1, 37},
	{Tractate{"Horayos", "הוריות"}, 1, 19},
	{Tractate{"Niddah", "נדה"}, 1, 13},
})

// Yerushalmi returns the folio studied offset study-days into a cycle.
func Yerushalmi(offset int) YerushalmiDaf {
	t, page := yerushalmi.locate(offset)
	return YerushalmiDaf{Tractate: t, Page: page}
}
