package animate

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Format describes how a value is shown. Decimals of zero means an integral
// display: intermediate frames are floored and rendered without a fraction.
type Format struct {
	Decimals   int
	Prefix     string
	Suffix     string
	NoGrouping bool
}

// Integral reports whether frames are floored to whole numbers.
func (f Format) Integral() bool {
	return f.Decimals <= 0
}

// display maps an accumulator value to the value shown for a non-final frame.
func (f Format) display(acc float64) float64 {
	if f.Integral() {
		return math.Floor(acc)
	}
	return acc
}

// Render formats v with fixed precision, thousands grouping and the
// prefix/suffix, e.g. "$12,480.50" or "98.6%".
func (f Format) Render(v float64) string {
	decimals := f.Decimals
	if decimals < 0 {
		decimals = 0
	}

	s := strconv.FormatFloat(math.Abs(v), 'f', decimals, 64)
	intPart, frac, hasFrac := strings.Cut(s, ".")

	if !f.NoGrouping {
		if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
			intPart = humanize.Comma(n)
		}
	}

	var b strings.Builder
	if v < 0 && (intPart != "0" || strings.Trim(frac, "0") != "") {
		b.WriteByte('-')
	}
	b.WriteString(f.Prefix)
	b.WriteString(intPart)
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	b.WriteString(f.Suffix)
	return b.String()
}
