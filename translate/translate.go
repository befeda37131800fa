// Package translate formats diagnostics for the user's locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("ls8: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From formats an en-US Sprintf() style key in the current locale.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
