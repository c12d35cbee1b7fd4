// Package render turns an event list into text, JSON, CBOR, iCalendar or
// RSS.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language selects the locale of rendered text.
type Language int

const (
	English Language = iota
	Hebrew
)

func (l Language) String() string {
	if l == Hebrew {
		return "hebrew"
	}
	return "english"
}

func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

var (
	supported = []language.Tag{language.English, language.Hebrew}
	matcher   = language.NewMatcher(supported)
)

// ParseLanguage accepts a language name ("english", "hebrew") or a BCP 47
// tag such as "en-US" or "he-IL".
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "english":
		return English, nil
	case "hebrew":
		return Hebrew, nil
	}

	tag, err := language.Parse(s)
	if err != nil {
		return English, fmt.Errorf("unknown language %q: %w", s, err)
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return English, fmt.Errorf("unsupported language %q", s)
	}
	return Language(index), nil
}
