// Package i18n holds the console messages of the splash generator.
//
// Message keys are the English strings; other languages are registered in
// the default golang.org/x/text catalog at init time.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	msgGenerated = "Splash generated: %s"
)

// DefaultLang is the language of the confirmation line when none is given.
var DefaultLang = language.French

func init() {
	_ = message.SetString(language.French, msgGenerated, "Splash généré : %s")
	_ = message.SetString(language.English, msgGenerated, msgGenerated)
}

// ParseLang parses a BCP 47 tag such as "fr" or "en-US".
// An empty string yields DefaultLang.
func ParseLang(s string) (language.Tag, error) {
	if s == "" {
		return DefaultLang, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("i18n: parse language %q: %w", s, err)
	}
	return tag, nil
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// Confirmation renders the success line naming the written file.
func Confirmation(p *message.Printer, path string) string {
	return p.Sprintf(msgGenerated, path)
}
