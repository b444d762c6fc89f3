// Package format holds the display-string helpers shared by every page:
// currency, absolute and relative timestamps, and the availability badge
// classifier.
package format

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "CA$",
	"AUD": "A$",
	"INR": "₹",
	"KRW": "₩",
}

// Currencies rendered without minor units, matching en-US Intl output.
var zeroDecimal = map[string]bool{
	"JPY": true,
	"KRW": true,
}

// Money renders a nullable price as an en-US currency string, "N/A" when the
// price is absent. Unknown currency codes are prefixed verbatim.
func Money(price *float64, currency string) string {
	if price == nil {
		return "N/A"
	}
	if currency == "" {
		currency = "USD"
	}
	code := strings.ToUpper(currency)
	sym, ok := currencySymbols[code]
	if !ok {
		sym = code + " "
	}
	if zeroDecimal[code] {
		// Round half away from zero, as Intl does; %.0f alone rounds
		// half to even.
		return printer.Sprintf("%s%.0f", sym, math.Round(*price))
	}
	return printer.Sprintf("%s%.2f", sym, *price)
}

// Date renders an absolute en-US date+time, e.g. "Dec 5, 2025, 3:04 PM".
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006, 3:04 PM")
}

// TimeAgo buckets the distance between t and now into a short relative
// phrase, falling back to Date for anything a week old or older.
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return printer.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return printer.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return printer.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return Date(t)
	}
}

// Badge variants for availability strings.
const (
	BadgePositive = "positive"
	BadgeNegative = "negative"
	BadgeNeutral  = "neutral"
)

// AvailabilityBadge classifies free-text availability into a badge variant
// by case-insensitive substring match. Availability is not a controlled
// vocabulary, so this is heuristic. Negative markers are checked first:
// "unavailable" contains "available", and must never land on the positive
// branch.
func AvailabilityBadge(availability string) string {
	if availability == "" {
		return BadgeNeutral
	}
	s := strings.ToLower(availability)
	if strings.Contains(s, "out of stock") || strings.Contains(s, "unavailable") {
		return BadgeNegative
	}
	if strings.Contains(s, "in stock") || strings.Contains(s, "available") {
		return BadgePositive
	}
	return BadgeNeutral
}
