// Package format renders estimate figures for people.
package format

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Number returns v rounded to decimals places with thousands separators
// (e.g., 1234.56 with 1 decimal is "1,234.6"). Negative decimals mean 0.
func Number(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return printer.Sprintf("%."+strconv.Itoa(decimals)+"f", v)
}

// Duration renders minutes as "Xh Ymin", rounding to whole minutes.
// Negative input renders as zero.
func Duration(minutes float64) string {
	if minutes < 0 || math.IsNaN(minutes) {
		minutes = 0
	}
	total := int(math.Round(minutes))
	return strconv.Itoa(total/60) + "h " + strconv.Itoa(total%60) + "min"
}

// Money renders a cost saving with its currency code, e.g. "MYR 8.76".
func Money(amount float64, currency string) string {
	if currency == "" {
		return Number(amount, 2)
	}
	return currency + " " + Number(amount, 2)
}
