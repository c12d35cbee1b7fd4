package cycles

// Rambam cycle lengths in days.
const (
	RambamOneLength   = 1017
	RambamThreeLength = RambamOneLength / 3
)

type sectionChapters struct {
	Section
	chapters int
}

// mishnehTorah lists the introduction followed by every set of laws in order.
var mishnehTorah = []sectionChapters{
	{Section{"Transmission of the Oral Law", "מסירת תורה שבעל פה"}, 1},
	{Section{"Positive Mitzvos", "מצוות עשה"}, 5},
	{Section{"Negative Mitzvos", "מצוות לא תעשה"}, 5},
	{Section{"Overview of Mishneh Torah Contents", "חלוקת הלכות"}, 6},

	// Madda
	{Section{"Yesodei HaTorah", "יסודי התורה"}, 10},
	{Section{"Deos", "דעות"}, 7},
	{Section{"Talmud Torah", "תלמוד תורה"}, 7},
	{Section{"Avodah Zarah", "עבודה זרה"}, 12},
	{Section{"Teshuvah", "תשובה"}, 10},

	// Ahavah
	{Section{"Kerias Shema", "קריאת שמע"}, 4},
	{Section{"Tefillah", "תפילה וברכת כהנים"}, 15},
	{Section{"Tefillin, Mezuzah and Sefer Torah", "תפילין ומזוזה וספר תורה"}, 10},
	{Section{"Tzitzis", "ציצית"}, 3},
	{Section{"Berachos", "ברכות"}, 11},
	{Section{"Milah", "מילה"}, 3},

	// Zemanim
	{Section{"Shabbos", "שבת"}, 30},
	{Section{"Eruvin", "עירובין"}, 8},
	{Section{"Shevisas Asor", "שביתת עשור"}, 3},
	{Section{"Shevisas Yom Tov", "שביתת יום טוב"}, 8},
	{Section{"Chametz U'Matzah", "חמץ ומצה"}, 8},
	{Section{"Shofar, Sukkah and Lulav", "שופר וסוכה ולולב"}, 8},
	{Section{"Shekalim", "שקלים"}, 4},
	{Section{"Kiddush HaChodesh", "קידוש החודש"}, 19},
	{Section{"Taaniyos", "תעניות"}, 5},
	{Section{"Megillah and Chanukah", "מגילה וחנוכה"}, 4},

	// Nashim
	{Section{"Ishus", "אישות"}, 25},
	{Section{"Gerushin", "גירושין"}, 13},
	{Section{"Yibbum and Chalitzah", "יבום וחליצה"}, 8},
	{Section{"Naarah Besulah", "נערה בתולה"}, 3},
	{Section{"Sotah", "סוטה"}, 4},

	// Kedushah
	{Section{"Issurei Biah", "איסורי ביאה"}, 22},
	{Section{"Maachalos Assuros", "מאכלות אסורות"}, 17},
	{Section{"Shechitah", "שחיטה"}, 14},

	// Haflaah
	{Section{"Shevuos", "שבועות"}, 12},
	{Section{"Nedarim", "נדרים"}, 13},
	{Section{"Nezirus", "נזירות"}, 10},
	{Section{"Arachin and Charamin", "ערכין וחרמין"}, 8},

	// Zeraim
	{Section{"Kilayim", "כלאים"}, 10},
	{Section{"Matnos Aniyim", "מתנות עניים"}, 10},
	{Section{"Terumos", "תרומות"}, 15},
	{Section{"Maaser", "מעשר"}, 14},
	{Section{"Maaser Sheni and Neta Revai", "מעשר שני ונטע רבעי"}, 11},
	{Section{"Bikkurim", "ביכורים"}, 12},
	{Section{"Shemittah and Yovel", "שמיטה ויובל"}, 13},

	// Avodah
	{Section{"Beis HaBechirah", "בית הבחירה"}, 8},
	{Section{"Klei HaMikdash", "כלי המקדש"}, 10},
	{Section{"Bias HaMikdash", "ביאת המקדש"}, 9},
	{Section{"Issurei HaMizbeach", "איסורי המזבח"}, 7},
	{Section{"Maaseh HaKorbanos", "מעשה הקרבנות"}, 19},
	{Section{"Temidin U'Musafin", "תמידין ומוספין"}, 10},
	{Section{"Pesulei HaMukdashin", "פסולי המוקדשין"}, 19},
	{Section{"Avodas Yom HaKippurim", "עבודת יום הכפורים"}, 5},
	{Section{"Meilah", "מעילה"}, 8},

	// Korbanos
	{Section{"Korban Pesach", "קרבן פסח"}, 10},
	{Section{"Chagigah", "חגיגה"}, 3},
	{Section{"Bechoros", "בכורות"}, 8},
	{Section{"Shegagos", "שגגות"}, 15},
	{Section{"Mechussarei Kapparah", "מחוסרי כפרה"}, 5},
	{Section{"Temurah", "תמורה"}, 4},

	// Taharah
	{Section{"Tumas Meis", "טומאת מת"}, 25},
	{Section{"Parah Adumah", "פרה אדומה"}, 15},
	{Section{"Tumas Tzaraas", "טומאת צרעת"}, 16},
	{Section{"Metamei Mishkav U'Moshav", "מטמאי משכב ומושב"}, 13},
	{Section{"She'ar Avos HaTumos", "שאר אבות הטומאות"}, 20},
	{Section{"Tumas Ochalin", "טומאת אוכלין"}, 16},
	{Section{"Keilim", "כלים"}, 28},
	{Section{"Mikvaos", "מקואות"}, 11},

	// Nezikin
	{Section{"Nizkei Mamon", "נזקי ממון"}, 14},
	{Section{"Geneivah", "גניבה"}, 9},
	{Section{"Gezeilah and Aveidah", "גזילה ואבידה"}, 18},
	{Section{"Chovel U'Mazik", "חובל ומזיק"}, 8},
	{Section{"Rotzeach U'Shmiras Nefesh", "רוצח ושמירת נפש"}, 13},

	// Kinyan
	{Section{"Mechirah", "מכירה"}, 30},
	{Section{"Zechiyah U'Matanah", "זכייה ומתנה"}, 12},
	{Section{"Shecheinim", "שכנים"}, 14},
	{Section{"Sheluchin and Shutafin", "שלוחין ושותפין"}, 10},
	{Section{"Avadim", "עבדים"}, 9},

	// Mishpatim
	{Section{"Sechirus", "שכירות"}, 13},
	{Section{"She'eilah U'Pikadon", "שאלה ופקדון"}, 8},
	{Section{"Malveh V'Loveh", "מלווה ולווה"}, 27},
	{Section{"To'en V'Nit'an", "טוען ונטען"}, 16},
	{Section{"Nachalos", "נחלות"}, 11},

	// Shoftim
	{Section{"Sanhedrin", "סנהדרין והעונשין המסורין להם"}, 26},
	{Section{"Eidus", "עדות"}, 22},
	{Section{"Mamrim", "ממרים"}, 7},
	{Section{"Evel", "אבל"}, 14},
	{Section{"Melachim U'Milchamos", "מלכים ומלחמות"}, 12},
}

// rambamOne holds one entry per study day of the one-chapter cycle.
var rambamOne = func() []Chapter {
	out := make([]Chapter, 0, RambamOneLength)
	for _, s := range mishnehTorah {
		for n := 1; n <= s.chapters; n++ {
			out = append(out, Chapter{Section: s.Section, Number: n})
		}
	}
	return out
}()

// rambamThree groups consecutive chapters in threes.
var rambamThree = func() []Chapters {
	out := make([]Chapters, 0, RambamThreeLength)
	for i := 0; i+2 < len(rambamOne); i += 3 {
		out = append(out, Chapters{rambamOne[i], rambamOne[i+1], rambamOne[i+2]})
	}
	return out
}()

// RambamOne returns the chapter studied offset days into the one-chapter cycle.
func RambamOne(offset int) Chapter {
	return rambamOne[mod(offset, len(rambamOne))]
}

// RambamThree returns the chapters studied offset days into the
// three-chapter cycle.
func RambamThree(offset int) Chapters {
	return rambamThree[mod(offset, len(rambamThree))]
}
