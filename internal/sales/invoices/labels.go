package invoices

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Report label keys. The English text doubles as the message key.
const (
	labelHeader  = "Invoice number: %s"
	labelLine    = "Name: %s Price: %s Quantity: %s"
	labelSummary = "Amount of positions on the invoice: %s"
)

// SupportedLanguages lists the languages report labels are translated to.
var SupportedLanguages = []language.Tag{language.English, language.Polish}

var (
	labels  = newLabelCatalog()
	matcher = language.NewMatcher(SupportedLanguages)
)

type labelTranslation struct {
	lang language.Tag
	key  string
	msg  string
}

var labelTranslations = []labelTranslation{
	{language.English, labelHeader, labelHeader},
	{language.English, labelLine, labelLine},
	{language.English, labelSummary, labelSummary},
	{language.Polish, labelHeader, "Numer faktury: %s"},
	{language.Polish, labelLine, "Nazwa: %s Cena: %s Ilość: %s"},
	{language.Polish, labelSummary, "Ilość pozycji na fakturze: %s"},
}

type labelSetter interface {
	SetString(tag language.Tag, key, msg string) error
}

func registerLabels(s labelSetter, translations []labelTranslation) error {
	for _, tr := range translations {
		if err := s.SetString(tr.lang, tr.key, tr.msg); err != nil {
			return fmt.Errorf("label %q (%s): %w", tr.key, tr.lang, err)
		}
	}
	return nil
}

// newLabelCatalog panics on a malformed translation so a broken catalog
// fails at package init.
func newLabelCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	if err := registerLabels(b, labelTranslations); err != nil {
		panic(err)
	}
	return b
}

// MatchLanguage picks the supported language closest to a BCP 47 string
// such as "pl-PL". Unknown or malformed input yields English.
func MatchLanguage(s string) language.Tag {
	tag, _, _ := language.ParseAcceptLanguage(s)
	if len(tag) == 0 {
		return language.English
	}
	_, i, _ := matcher.Match(tag...)
	return SupportedLanguages[i]
}

func printerFor(lang language.Tag) *message.Printer {
	return message.NewPrinter(lang, message.Catalog(labels))
}
