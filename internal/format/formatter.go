package format

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type localeLayout struct {
	tag   language.Tag
	date  string
	clock string
}

// First entry is the fallback for unmatched locales.
var layouts = []localeLayout{
	{tag: language.AmericanEnglish, date: "1/2/2006", clock: "03:04 PM"},
	{tag: language.BritishEnglish, date: "02/01/2006", clock: "15:04"},
	{tag: language.German, date: "2.1.2006", clock: "15:04"},
	{tag: language.French, date: "02/01/2006", clock: "15:04"},
	{tag: language.Indonesian, date: "2/1/2006", clock: "15.04"},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(layouts))
	for i, l := range layouts {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"IDR": "Rp",
}

// Formatter renders display strings for one locale. It holds no mutable
// state and is safe for concurrent use.
type Formatter struct {
	locale  localeLayout
	printer *message.Printer
}

var defaultFormatter = NewFormatter("en-US")

// NewFormatter picks the closest supported locale; unparseable input falls back to en-US.
func NewFormatter(locale string) *Formatter {
	l := layouts[0]
	if tag, err := language.Parse(locale); err == nil {
		_, idx, conf := matcher.Match(tag)
		if conf != language.No {
			l = layouts[idx]
		}
	}
	return &Formatter{locale: l, printer: message.NewPrinter(l.tag)}
}

func (f *Formatter) Locale() string {
	return f.locale.tag.String()
}

// FormatCount groups digits the locale way: 25000 -> "25,000".
func (f *Formatter) FormatCount(n int64) string {
	return f.printer.Sprintf("%d", n)
}

func (f *Formatter) FormatDecimal(v float64, decimals int) string {
	if decimals <= 0 {
		return f.FormatCount(int64(math.Round(v)))
	}
	return f.printer.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}

// FormatPrice renders amount with the currency symbol and the currency's
// standard number of minor digits.
func (f *Formatter) FormatPrice(amount float64, code string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", errors.Wrapf(ErrFormat, "currency %q", code)
	}
	scale, _ := currency.Standard.Rounding(unit)
	symbol, ok := currencySymbols[unit.String()]
	if !ok {
		symbol = unit.String() + " "
	}
	return symbol + f.FormatDecimal(amount, scale), nil
}

func FormatCount(n int64) string {
	return defaultFormatter.FormatCount(n)
}

func FormatPrice(amount float64, code string) (string, error) {
	return defaultFormatter.FormatPrice(amount, code)
}
