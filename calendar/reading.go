package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Category groups Torah readings.
type Category int

const (
	YomTov Category = iota
	Chol
	Shabbos
	SpecialParsha
)

var categoryNames = []string{"YomTov", "Chol", "Shabbos", "SpecialParsha"}

// Categories lists every reading category.
var Categories = []Category{YomTov, Chol, Shabbos, SpecialParsha}

func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseCategory accepts the category names case-insensitively, plus the
// short forms used on the command line.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yomtov", "yom-tov":
		return YomTov, nil
	case "chol":
		return Chol, nil
	case "shabbos", "shabbat":
		return Shabbos, nil
	case "specialparsha", "special":
		return SpecialParsha, nil
	}
	return 0, fmt.Errorf("unknown reading category %q", s)
}

// Location decides which second-day observances apply.
type Location int

const (
	Diaspora Location = iota
	Israel
)

func (l Location) String() string {
	if l == Israel {
		return "Israel"
	}
	return "Diaspora"
}

func (l Location) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Location) UnmarshalText(text []byte) error {
	parsed, err := ParseLocation(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLocation accepts "israel" or "diaspora" (also "chul").
func ParseLocation(s string) (Location, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "israel":
		return Israel, nil
	case "diaspora", "chul", "":
		return Diaspora, nil
	}
	return 0, fmt.Errorf("unknown location %q", s)
}

// Yom Tov readings.
const (
	RoshHashanah1 = "RoshHashanah1"
	RoshHashanah2 = "RoshHashanah2"
	YomKippur     = "YomKippur"
	Sukkos1       = "Sukkos1"
	Sukkos2       = "Sukkos2"
	ShminiAtzeres = "ShminiAtzeres"
	SimchasTorah  = "SimchasTorah"
	Pesach1       = "Pesach1"
	Pesach2       = "Pesach2"
	Pesach7       = "Pesach7"
	Pesach8       = "Pesach8"
	Shavuos1      = "Shavuos1"
	Shavuos2      = "Shavuos2"
)

// Chol readings with fixed names.
const (
	TzomGedalia     = "TzomGedalia"
	TenTeves        = "TenTeves"
	TaanisEsther    = "TaanisEsther"
	Purim           = "Purim"
	ShushanPurim    = "ShushanPurim"
	SeventeenTammuz = "SeventeenTammuz"
	NineAv          = "NineAv"
)

// Special parshas.
const (
	Shekalim  = "Shekalim"
	Zachor    = "Zachor"
	Parah     = "Parah"
	HaChodesh = "HaChodesh"
)

// Reading identifies a Torah reading.
type Reading struct {
	Category Category `json:"category"`
	Name     string   `json:"name"`
}

// Holiday is a reading and the instant its day begins.
type Holiday struct {
	Reading Reading
	Day     time.Time
}
