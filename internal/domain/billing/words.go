package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

var onesWords = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
}

var teensWords = [...]string{
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tensWords = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords converts an amount to words using Indian numbering
// (crore = 10^7, lakh = 10^5). The amount is rounded to whole rupees first;
// paise are not spelled out. Zero becomes "Zero Rupees Only" and every result
// ends with "Rupees Only" (always plural, even for one rupee).
func AmountInWords(amount decimal.Decimal) string {
	rupees := amount.Round(0).IntPart()
	if rupees == 0 {
		return "Zero Rupees Only"
	}
	return integerInWords(rupees) + " Rupees Only"
}

// integerInWords spells a positive integer with Indian grouping. The crore
// group is spelled recursively, so totals of a hundred crore and beyond stay
// representable ("One Hundred Crore", "One Lakh Crore", ...).
func integerInWords(n int64) string {
	var b strings.Builder
	if crores := n / 10000000; crores > 0 {
		b.WriteString(integerInWords(crores))
		b.WriteString(" Crore ")
	}

	lakhs := (n % 10000000) / 100000
	thousands := (n % 100000) / 1000
	hundreds := (n % 1000) / 100
	remainder := n % 100

	if lakhs > 0 {
		b.WriteString(twoDigitsInWords(lakhs))
		b.WriteString(" Lakh ")
	}
	if thousands > 0 {
		b.WriteString(twoDigitsInWords(thousands))
		b.WriteString(" Thousand ")
	}
	if hundreds > 0 {
		b.WriteString(onesWords[hundreds])
		b.WriteString(" Hundred ")
	}
	if remainder > 0 {
		b.WriteString(twoDigitsInWords(remainder))
		b.WriteString(" ")
	}

	return strings.TrimSpace(b.String())
}

// twoDigitsInWords spells a 0-99 group.
func twoDigitsInWords(n int64) string {
	switch {
	case n < 10:
		return onesWords[n]
	case n < 20:
		return teensWords[n-10]
	default:
		word := tensWords[n/10]
		if n%10 > 0 {
			word += " " + onesWords[n%10]
		}
		return word
	}
}
