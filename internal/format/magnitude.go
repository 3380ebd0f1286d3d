package format

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// magnitudePattern matches "25,000+", "2M+", "1.5k", "4.8".
var magnitudePattern = regexp.MustCompile(`^([0-9,.]+)([KkMm]?)(\+)?$`)

// maxDecimals bounds the fraction digits a label may carry; float64 holds
// no more than 15 significant decimal digits.
const maxDecimals = 15

type Magnitude struct {
	Label      string
	Base       float64
	Decimals   int    // fraction digits written in the label
	Suffix     string // "", "K" or "M"
	Multiplier int64
	Plus       bool
}

// ParseStat splits a magnitude label into its parts.
func ParseStat(label string) (Magnitude, error) {
	m := magnitudePattern.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return Magnitude{}, errors.Wrapf(ErrFormat, "magnitude %q", label)
	}

	digits := strings.ReplaceAll(m[1], ",", "")
	base, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return Magnitude{}, errors.Wrapf(ErrFormat, "magnitude %q", label)
	}

	decimals := 0
	if i := strings.IndexByte(digits, '.'); i >= 0 {
		decimals = len(digits) - i - 1
	}

	suffix := strings.ToUpper(m[2])
	mult := int64(1)
	switch suffix {
	case "K":
		mult = 1_000
	case "M":
		mult = 1_000_000
	}

	mag := Magnitude{
		Label:      label,
		Base:       base,
		Decimals:   decimals,
		Suffix:     suffix,
		Multiplier: mult,
		Plus:       m[3] != "",
	}
	if decimals > maxDecimals {
		return Magnitude{}, errors.Wrapf(ErrFormat, "magnitude %q: %d fraction digits", label, decimals)
	}
	// the integer target must fit in an int64
	if v := mag.Value(); math.IsNaN(v) || math.IsInf(v, 0) || v >= math.MaxInt64 {
		return Magnitude{}, errors.Wrapf(ErrFormat, "magnitude %q out of range", label)
	}
	return mag, nil
}

// Value is the full magnitude, rounded to the precision the label was written in
// so that "2.3M" is exactly 2300000.
func (m Magnitude) Value() float64 {
	scale := math.Pow10(m.Decimals)
	return math.Round(m.Base*float64(m.Multiplier)*scale) / scale
}

// Target is Value floored to an integer.
func (m Magnitude) Target() int64 {
	return int64(math.Floor(m.Value()))
}

// Fractional reports whether the magnitude must be displayed with decimals ("4.8").
func (m Magnitude) Fractional() bool {
	v := m.Value()
	return v != math.Trunc(v)
}

// ParseMagnitude returns the integer target of label, flooring fractions: "4.8" -> 4.
func ParseMagnitude(label string) (int64, error) {
	m, err := ParseStat(label)
	if err != nil {
		return 0, err
	}
	return m.Target(), nil
}

// ParseMagnitudeFloat keeps fractional targets: "4.8" -> 4.8.
func ParseMagnitudeFloat(label string) (float64, error) {
	m, err := ParseStat(label)
	if err != nil {
		return 0, err
	}
	return m.Value(), nil
}

// CountUp is the value shown at progress p of a count-up animation.
// p is clamped into [0,1].
func CountUp(target int64, p float64) int64 {
	p = clampProgress(p)
	if p == 1 {
		return target
	}
	return int64(math.Floor(p * float64(target)))
}

// CountUpFloat is CountUp for fractional targets, floored to decimals digits.
func CountUpFloat(target, p float64, decimals int) float64 {
	p = clampProgress(p)
	if p == 1 {
		return target
	}
	scale := math.Pow10(decimals)
	return math.Floor(p*target*scale+1e-9) / scale
}

func clampProgress(p float64) float64 {
	switch {
	case math.IsNaN(p), p <= 0:
		return 0
	case p >= 1:
		return 1
	}
	return p
}

// Frame renders m at animation progress p. Integer magnitudes count up in
// grouped digits and settle on the compact label ("2M+"); fractional ones
// count up with their own precision.
func (f *Formatter) Frame(m Magnitude, p float64) string {
	plus := ""
	if m.Plus {
		plus = "+"
	}

	if m.Fractional() {
		return f.FormatDecimal(CountUpFloat(m.Value(), p, m.Decimals), m.Decimals) + plus
	}

	target := m.Target()
	n := CountUp(target, p)
	if n >= target && m.Suffix != "" {
		return f.FormatDecimal(m.Base, m.Decimals) + m.Suffix + plus
	}
	return f.FormatCount(n) + plus
}

// StatFrame renders label at progress p, or label unchanged when it is not a magnitude.
func (f *Formatter) StatFrame(label string, p float64) string {
	m, err := ParseStat(label)
	if err != nil {
		return label
	}
	return f.Frame(m, p)
}

func StatFrame(label string, p float64) string {
	return defaultFormatter.StatFrame(label, p)
}
