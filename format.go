package ustax

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// usd renders integers with en-US digit grouping.
var usd = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders a whole-dollar amount the way the IRS instructions
// print them, e.g. FormatUSD(33828) == "$33,828".
func FormatUSD(amount int64) string {
	if amount < 0 {
		return usd.Sprintf("-$%d", -amount)
	}
	return usd.Sprintf("$%d", amount)
}
