package portal

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Stringable struct {
	value string
}

func NewStringable(value string) *Stringable {
	return &Stringable{
		value: strings.TrimSpace(value),
	}
}

func (s Stringable) ToLower() string {
	caser := cases.Lower(language.English)

	return strings.TrimSpace(caser.String(s.value))
}

// Fold lower-cases the given text as-is. Unlike Stringable.ToLower it keeps
// surrounding whitespace, so "full stack " never matches "full stack" titles.
func Fold(text string) string {
	return cases.Lower(language.Und).String(text)
}

// ToDate parses a "2006-01-02" calendar date at midnight UTC.
func (s Stringable) ToDate() (time.Time, error) {
	parsed, err := time.Parse(time.DateOnly, s.value)

	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing date string: %w", err)
	}

	return parsed.UTC(), nil
}
