package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/robertmeta/heca-cli/calendar"
	"github.com/robertmeta/heca-cli/cycles"
	"github.com/robertmeta/heca-cli/holidays"
	"github.com/robertmeta/heca-cli/model"
)

// text is a phrase in both languages.
type text struct {
	en, he string
}

func (t text) in(lang Language) string {
	if lang == Hebrew {
		return t.he
	}
	return t.en
}

var readings = map[string]text{
	calendar.YomKippur:       {"Yom Kippur", "יום כיפור"},
	calendar.ShminiAtzeres:   {"Shmini Atzeres", "שמיני עצרת"},
	calendar.SimchasTorah:    {"Simchas Torah", "שמחת תורה"},
	calendar.TzomGedalia:     {"Tzom Gedalia", "צום גדליה"},
	calendar.TenTeves:        {"Tenth of Teves", "עשרה בטבת"},
	calendar.TaanisEsther:    {"Taanis Esther", "תענית אסתר"},
	calendar.Purim:           {"Purim", "פורים"},
	calendar.ShushanPurim:    {"Shushan Purim", "שושן פורים"},
	calendar.SeventeenTammuz: {"Seventeenth of Tammuz", "שבעה עשר בתמוז"},
	calendar.NineAv:          {"Tisha B'Av", "תשעה באב"},
	calendar.Shekalim:        {"Parshas Shekalim", "פרשת שקלים"},
	calendar.Zachor:          {"Parshas Zachor", "פרשת זכור"},
	calendar.Parah:           {"Parshas Parah", "פרשת פרה"},
	calendar.HaChodesh:       {"Parshas HaChodesh", "פרשת החודש"},
}

// numbered holidays: a prefix followed by the day of the holiday
var numbered = []struct {
	prefix string
	name   text
}{
	{"RoshHashanah", text{"Rosh Hashanah", "ראש השנה"}},
	{"Sukkos", text{"Sukkos", "סוכות"}},
	{"Pesach", text{"Pesach", "פסח"}},
	{"Shavuos", text{"Shavuos", "שבועות"}},
	{"Chanukah", text{"Chanukah", "חנוכה"}},
}

var parshiyosHebrew = []string{
	"בראשית", "נח", "לך לך", "וירא", "חיי שרה", "תולדות",
	"ויצא", "וישלח", "וישב", "מקץ", "ויגש", "ויחי",
	"שמות", "וארא", "בא", "בשלח", "יתרו", "משפטים", "תרומה",
	"תצוה", "כי תשא", "ויקהל", "פקודי", "ויקרא", "צו", "שמיני",
	"תזריע", "מצורע", "אחרי מות", "קדושים", "אמור", "בהר",
	"בחוקותי", "במדבר", "נשא", "בהעלותך", "שלח", "קרח",
	"חקת", "בלק", "פינחס", "מטות", "מסעי", "דברים", "ואתחנן",
	"עקב", "ראה", "שופטים", "כי תצא", "כי תבוא", "נצבים", "וילך",
	"האזינו",
}

// parshiyos maps every weekly reading, single or combined, to its text.
var parshiyos = func() map[string]text {
	names := calendar.Parshiyos()
	out := make(map[string]text, 2*len(names))
	for i, name := range names {
		out[name] = text{spaced(name), parshiyosHebrew[i]}
		if i+1 < len(names) {
			next := names[i+1]
			out[name+next] = text{
				spaced(name) + "-" + spaced(next),
				parshiyosHebrew[i] + "-" + parshiyosHebrew[i+1],
			}
		}
	}
	return out
}()

var monthsHebrew = map[calendar.Month]string{
	calendar.Nisan:    "ניסן",
	calendar.Iyar:     "אייר",
	calendar.Sivan:    "סיון",
	calendar.Tammuz:   "תמוז",
	calendar.Av:       "אב",
	calendar.Elul:     "אלול",
	calendar.Tishrei:  "תשרי",
	calendar.Cheshvan: "חשון",
	calendar.Kislev:   "כסלו",
	calendar.Teves:    "טבת",
	calendar.Shvat:    "שבט",
	calendar.Adar:     "אדר",
	calendar.Adar2:    "אדר ב'",
}

func monthName(m calendar.Month, lang Language) string {
	if lang == Hebrew {
		return monthsHebrew[m]
	}
	return m.String()
}

// roshChodeshMonths covers the month tokens of Rosh Chodesh reading names.
var roshChodeshMonths = map[string]text{
	"AdarRishon": {"Adar I", "אדר א'"},
	"AdarSheni":  {"Adar II", "אדר ב'"},
}

var minor = map[string]text{
	holidays.ErevYomKippur:      {"Erev Yom Kippur", "ערב יום כיפור"},
	holidays.ErevSukkos:         {"Erev Sukkos", "ערב סוכות"},
	holidays.ErevPesach:         {"Erev Pesach", "ערב פסח"},
	holidays.PesachSheni:        {"Pesach Sheni", "פסח שני"},
	holidays.LagBaomer:          {"Lag Baomer", `ל"ג בעומר`},
	holidays.ErevShavuos:        {"Erev Shavuos", "ערב שבועות"},
	holidays.ErevRoshHashanah:   {"Erev Rosh Hashanah", "ערב ראש השנה"},
	holidays.Shvat15:            {"Tu Bishvat", `ט"ו בשבט`},
	holidays.Av15:               {"Tu B'Av", `ט"ו באב`},
	holidays.PurimKattan:        {"Purim Kattan", "פורים קטן"},
	holidays.ShushanPurimKattan: {"Shushan Purim Kattan", "שושן פורים קטן"},
}

var israeli = map[string]text{
	holidays.YomHaAliyah:     {"Yom HaAliyah", "יום העלייה"},
	holidays.YomHaShoah:      {"Yom HaShoah", "יום השואה"},
	holidays.YomHaZikaron:    {"Yom HaZikaron", "יום הזיכרון"},
	holidays.YomHaAtzmaut:    {"Yom HaAtzmaut", "יום העצמאות"},
	holidays.YomYerushalayim: {"Yom Yerushalayim", "יום ירושלים"},
	holidays.Sigd:            {"Sigd", "סיגד"},
}

var chabad = map[string]text{
	holidays.VovTishrei:     {"Vov Tishrei", "ו' תשרי"},
	holidays.ChofCheshvan:   {"Chof Cheshvan", "כ' חשון"},
	holidays.YudKislev:      {"Yud Kislev", "י' כסלו"},
	holidays.YudTesKislev:   {"Yud Tes Kislev", `י"ט כסלו`},
	holidays.HeyTeves:       {"Hey Teves", "ה' טבת"},
	holidays.ChofDaledTeves: {"Chof Daled Teves", `כ"ד טבת`},
	holidays.YudShvat:       {"Yud Shvat", "י' שבט"},
	holidays.ChofBeisShvat:  {"Chof Beis Shvat", `כ"ב שבט`},
	holidays.BeisNisan:      {"Beis Nisan", "ב' ניסן"},
	holidays.YudAlefNisan:   {"Yud Alef Nisan", `י"א ניסן`},
	holidays.YudGimmelNisan: {"Yud Gimmel Nisan", `י"ג ניסן`},
	holidays.GimmelTammuz:   {"Gimmel Tammuz", "ג' תמוז"},
	holidays.YudBeisTammuz:  {"Yud Beis Tammuz", `י"ב תמוז`},
	holidays.ChofAv:         {"Chof Av", "כ' אב"},
	holidays.ChaiElul:       {"Chai Elul", `ח"י אלול`},
}

// Label returns the display text of l.
func Label(l model.Label, lang Language) string {
	switch v := l.(type) {
	case model.TorahReading:
		return readingText(v.Reading.Name, lang)
	case model.MinorHoliday:
		if n, ok := strings.CutPrefix(v.ID, "Omer"); ok {
			if day, err := strconv.Atoi(n); err == nil {
				return omerText(day, lang)
			}
		}
		return lookup(minor, v.ID, lang)
	case model.Custom:
		return v.Holiday.Printable
	case model.Study:
		return studyText(v.Unit, lang)
	case model.IsraeliHoliday:
		return lookup(israeli, v.ID, lang)
	case model.ChabadHoliday:
		return lookup(chabad, v.ID, lang)
	case model.ShabbosMevarchim:
		if lang == Hebrew {
			return "שבת מברכים " + monthName(v.Month, lang)
		}
		return "Shabbos Mevarchim " + monthName(v.Month, lang)
	}
	panic(fmt.Sprintf("render: unhandled label %T", l))
}

func lookup(table map[string]text, id string, lang Language) string {
	if t, ok := table[id]; ok {
		return t.in(lang)
	}
	return spaced(id)
}

func readingText(name string, lang Language) string {
	if t, ok := readings[name]; ok {
		return t.in(lang)
	}
	if t, ok := parshiyos[name]; ok {
		return t.in(lang)
	}
	if rest, ok := strings.CutPrefix(name, "RoshChodesh"); ok {
		return roshChodeshText(rest, lang)
	}
	for _, n := range numbered {
		rest, ok := strings.CutPrefix(name, n.prefix)
		if !ok {
			continue
		}
		if day, err := strconv.Atoi(rest); err == nil {
			if lang == Hebrew {
				return hebrewNumeral(day) + "' " + n.name.he
			}
			return fmt.Sprintf("%s day of %s", ordinal(day), n.name.en)
		}
	}
	return spaced(name)
}

// roshChodeshText renders the tail of a Rosh Chodesh reading name: a month
// token and, for two-day Rosh Chodesh, the day.
func roshChodeshText(rest string, lang Language) string {
	day := 0
	if last := rest[len(rest)-1]; last >= '1' && last <= '2' {
		day = int(last - '0')
		rest = rest[:len(rest)-1]
	}

	month := rest
	if t, ok := roshChodeshMonths[rest]; ok {
		month = t.in(lang)
	} else if m, err := calendar.ParseMonth(rest); err == nil {
		month = monthName(m, lang)
	}

	if lang == Hebrew {
		s := "ראש חודש " + month
		if day > 0 {
			s += fmt.Sprintf(" (יום %s')", hebrewNumeral(day))
		}
		return s
	}
	s := "Rosh Chodesh " + month
	if day > 0 {
		s += fmt.Sprintf(" (%s day)", ordinal(day))
	}
	return s
}

func omerText(day int, lang Language) string {
	if lang == Hebrew {
		return fmt.Sprintf("יום %d לעומר", day)
	}
	return fmt.Sprintf("%s day of the Omer", ordinal(day))
}

func studyText(u cycles.Unit, lang Language) string {
	switch v := u.(type) {
	case cycles.Daf:
		if lang == Hebrew {
			return fmt.Sprintf("דף יומי: %s %s", v.Tractate.Hebrew, hebrewNumeral(v.Page))
		}
		return fmt.Sprintf("Daf Yomi: %s %d", v.Tractate.Name, v.Page)
	case cycles.YerushalmiDaf:
		if lang == Hebrew {
			return fmt.Sprintf("ירושלמי יומי: %s %s", v.Tractate.Hebrew, hebrewNumeral(v.Page))
		}
		return fmt.Sprintf("Yerushalmi Yomi: %s %d", v.Tractate.Name, v.Page)
	case cycles.Chapter:
		if lang == Hebrew {
			return `רמב"ם: ` + chapterText(v, lang)
		}
		return "Rambam: " + chapterText(v, lang)
	case cycles.Chapters:
		parts := make([]string, len(v))
		for i, c := range v {
			parts[i] = chapterText(c, lang)
		}
		if lang == Hebrew {
			return `רמב"ם: ` + strings.Join(parts, "; ")
		}
		return "Rambam: " + strings.Join(parts, "; ")
	}
	panic(fmt.Sprintf("render: unhandled study unit %T", u))
}

func chapterText(c cycles.Chapter, lang Language) string {
	if lang == Hebrew {
		return fmt.Sprintf("%s פרק %s", c.Section.Hebrew, hebrewNumeral(c.Number))
	}
	return fmt.Sprintf("%s %d", c.Section.Name, c.Number)
}

// spaced splits a CamelCase identifier into words.
func spaced(id string) string {
	var b strings.Builder
	for i, r := range id {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

var (
	hebrewOnes     = []string{"", "א", "ב", "ג", "ד", "ה", "ו", "ז", "ח", "ט"}
	hebrewTens     = []string{"", "י", "כ", "ל", "מ", "נ", "ס", "ע", "פ", "צ"}
	hebrewHundreds = []string{"", "ק", "ר", "ש", "ת"}
)

// hebrewNumeral writes n (1 to 499) in Hebrew letters, spelling 15 and 16
// as 9+6 and 9+7.
func hebrewNumeral(n int) string {
	if n <= 0 || n >= 500 {
		return strconv.Itoa(n)
	}
	var b strings.Builder
	b.WriteString(hebrewHundreds[n/100])
	n %= 100
	switch n {
	case 15:
		b.WriteString("טו")
	case 16:
		b.WriteString("טז")
	default:
		b.WriteString(hebrewTens[n/10])
		b.WriteString(hebrewOnes[n%10])
	}
	return b.String()
}
