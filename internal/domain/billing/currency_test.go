package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"0", "0.00"},
		{"5", "5.00"},
		{"999", "999.00"},
		{"1000", "1,000.00"},
		{"99999", "99,999.00"},
		{"100000", "1,00,000.00"},
		{"1234567.5", "12,34,567.50"},
		{"9999999", "99,99,999.00"},
		{"10000000", "1,00,00,000.00"},
		{"123456789.99", "12,34,56,789.99"},
		{"-81000", "-81,000.00"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatINR(d(tc.amount)))
		})
	}
}
