package invoices

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/odyssey-erp/invoicing/internal/masterdata/products"
)

var nonDigits = regexp.MustCompile(`[^0-9]+`)

func TestPrepareReportEmptyInvoice(t *testing.T) {
	inv := New()
	number := strconv.FormatInt(inv.Number(), 10)

	assert.Equal(t, []string{
		"Invoice number: " + number,
		"Amount of positions on the invoice: 0",
	}, inv.PrepareReport())

	assert.Equal(t, []string{
		"Numer faktury: " + number,
		"Ilość pozycji na fakturze: 0",
	}, inv.PrepareReportIn(language.Polish))
}

func TestPrepareReportLines(t *testing.T) {
	inv := NewWithSequence(NewSequence(1234))
	require.NoError(t, inv.AddProduct(mustProduct(t, products.NewTaxFree, "Bread", "5"), 2))
	require.NoError(t, inv.Add(mustProduct(t, products.NewOther, "Pin", "0.01")))

	assert.Equal(t, []string{
		"Invoice number: 1234",
		"Name: Bread Price: 5 Quantity: 2",
		"Name: Pin Price: 0.01 Quantity: 1",
		"Amount of positions on the invoice: 2",
	}, inv.PrepareReport())

	assert.Equal(t, []string{
		"Numer faktury: 1234",
		"Nazwa: Bread Cena: 5 Ilość: 2",
		"Nazwa: Pin Cena: 0.01 Ilość: 1",
		"Ilość pozycji na fakturze: 2",
	}, inv.PrepareReportIn(language.MustParse("pl-PL")))
}

func TestPrepareReportHeaderAndSummaryDigits(t *testing.T) {
	inv := New()
	require.NoError(t, inv.Add(mustProduct(t, products.NewTaxFree, "Chocolate", "6")))
	report := inv.PrepareReport()

	assert.Equal(t, strconv.FormatInt(inv.Number(), 10), nonDigits.ReplaceAllString(report[0], ""))
	assert.Equal(t, "1", nonDigits.ReplaceAllString(report[len(report)-1], ""))
}

func TestPrepareReportCountsDistinctLinesNotQuantity(t *testing.T) {
	inv := New()
	require.NoError(t, inv.Add(mustProduct(t, products.NewTaxFree, "Candy", "5")))
	require.NoError(t, inv.Add(mustProduct(t, products.NewTaxFree, "Candy", "5")))
	require.NoError(t, inv.AddProduct(mustProduct(t, products.NewDairy, "Yogurt", "2"), 10))

	report := inv.PrepareReport()
	assert.Len(t, report, inv.Len()+2)
	assert.Equal(t, "Amount of positions on the invoice: 2", report[len(report)-1])
}

func TestPrepareReportIsFreshEachCall(t *testing.T) {
	inv := New()
	before := inv.PrepareReport()
	require.NoError(t, inv.Add(mustProduct(t, products.NewOther, "Tea", "4")))
	after := inv.PrepareReport()

	assert.Len(t, before, 2)
	assert.Len(t, after, 3)
}

func TestPrint(t *testing.T) {
	inv := New()
	require.NoError(t, inv.Add(mustProduct(t, products.NewDairy, "Cheese", "12.50")))

	var buf bytes.Buffer
	require.NoError(t, inv.Print(&buf))
	assert.Equal(t, strings.Join(inv.PrepareReport(), "\n")+"\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPrintPropagatesWriteError(t *testing.T) {
	inv := New()
	err := inv.PrintIn(failingWriter{}, language.Polish)
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("print invoice %d", inv.Number()))
}

func TestMatchLanguage(t *testing.T) {
	tests := map[string]language.Tag{
		"pl":       language.Polish,
		"pl-PL":    language.Polish,
		"en-GB":    language.English,
		"de":       language.English,
		"":         language.English,
		"!!broken": language.English,
	}
	for in, want := range tests {
		assert.Equal(t, want, MatchLanguage(in), in)
	}
}

type rejectingSetter struct {
	failOn string
}

func (s rejectingSetter) SetString(tag language.Tag, key, msg string) error {
	if key == s.failOn {
		return errors.New("malformed message")
	}
	return nil
}

func TestRegisterLabelsReportsFailures(t *testing.T) {
	err := registerLabels(rejectingSetter{failOn: labelLine}, labelTranslations)
	require.Error(t, err)
	assert.Contains(t, err.Error(), labelLine)
	assert.Contains(t, err.Error(), "malformed message")

	assert.NoError(t, registerLabels(rejectingSetter{}, labelTranslations))
}

func TestLabelTranslationsCoverEveryLanguage(t *testing.T) {
	for _, lang := range SupportedLanguages {
		for _, key := range []string{labelHeader, labelLine, labelSummary} {
			found := false
			for _, tr := range labelTranslations {
				if tr.lang == lang && tr.key == key {
					found = true
				}
			}
			assert.True(t, found, "%s missing %q", lang, key)
		}
	}
}
