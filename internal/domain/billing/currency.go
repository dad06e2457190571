package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR formats an amount with two decimal places and Indian digit
// grouping: the last three integer digits form one group, every two digits
// after that form the next ("1234567.5" -> "12,34,567.50").
func FormatINR(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	if neg {
		fixed = fixed[1:]
	}

	dot := strings.IndexByte(fixed, '.')
	intPart, fracPart := fixed[:dot], fixed[dot:]

	grouped := groupIndian(intPart)
	if neg {
		return "-" + grouped + fracPart
	}
	return grouped + fracPart
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	// Two-digit groups for everything left of the last three digits.
	if rem := len(head) % 2; rem == 1 {
		b.WriteString(head[:1])
		head = head[1:]
		if len(head) > 0 {
			b.WriteByte(',')
		}
	}
	for i := 0; i < len(head); i += 2 {
		b.WriteString(head[i : i+2])
		if i+2 < len(head) {
			b.WriteByte(',')
		}
	}

	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}
