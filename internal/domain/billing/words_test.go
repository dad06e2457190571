package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"0", "Zero Rupees Only"},
		{"1", "One Rupees Only"},
		{"45", "Forty Five Rupees Only"},
		{"100", "One Hundred Rupees Only"},
		{"512", "Five Hundred Twelve Rupees Only"},
		{"1000", "One Thousand Rupees Only"},
		{"99999", "Ninety Nine Thousand Nine Hundred Ninety Nine Rupees Only"},
		{"100000", "One Lakh Rupees Only"},
		{"106200", "One Lakh Six Thousand Two Hundred Rupees Only"},
		{"9999999", "Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine Rupees Only"},
		{"10000000", "One Crore Rupees Only"},
		{"12345678", "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Rupees Only"},
		{"1000000000", "One Hundred Crore Rupees Only"},
		{"25123450000", "Two Thousand Five Hundred Twelve Crore Thirty Four Lakh Fifty Thousand Rupees Only"},
		{"100000000000000", "One Crore Crore Rupees Only"},
	}

	for _, tc := range tests {
		t.Run(tc.amount, func(t *testing.T) {
			assert.Equal(t, tc.expected, AmountInWords(d(tc.amount)))
		})
	}
}

// Paise are rounded to the nearest rupee before conversion, never spelled out.
func TestAmountInWords_RoundsPaise(t *testing.T) {
	assert.Equal(t, "Ninety Six Rupees Only", AmountInWords(d("95.58")))
	assert.Equal(t, "Ninety Five Rupees Only", AmountInWords(d("95.42")))
}
