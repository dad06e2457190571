package gst

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_IntraState(t *testing.T) {
	taxable := decimal.NewFromInt(81000)
	b := Calculate(taxable, "Maharashtra", "Maharashtra")

	assert.True(t, b.CGST.Equal(decimal.NewFromInt(7290)), "cgst = %s", b.CGST)
	assert.True(t, b.SGST.Equal(decimal.NewFromInt(7290)), "sgst = %s", b.SGST)
	assert.True(t, b.IGST.IsZero())
	assert.True(t, b.TotalGST.Equal(decimal.NewFromInt(14580)))
	assert.False(t, b.IsInterState())
}

func TestCalculate_InterState(t *testing.T) {
	taxable := decimal.NewFromInt(81000)
	b := Calculate(taxable, "Karnataka", "Maharashtra")

	assert.True(t, b.CGST.IsZero())
	assert.True(t, b.SGST.IsZero())
	assert.True(t, b.IGST.Equal(decimal.NewFromInt(14580)))
	assert.True(t, b.TotalGST.Equal(decimal.NewFromInt(14580)))
	assert.True(t, b.IsInterState())
}

func TestCalculate_SplitIsExhaustiveAndExclusive(t *testing.T) {
	tests := []struct {
		name        string
		buyerState  string
		sellerState string
	}{
		{"same state", "Delhi", "Delhi"},
		{"different state", "Delhi", "Goa"},
		{"empty buyer state", "", "Maharashtra"},
		{"both empty", "", ""},
		{"case differs", "maharashtra", "Maharashtra"},
	}

	taxable := decimal.NewFromFloat(12345.67)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Calculate(taxable, tc.buyerState, tc.sellerState)

			sum := b.CGST.Add(b.SGST).Add(b.IGST)
			assert.True(t, sum.Equal(b.TotalGST), "components must sum to total")
			assert.True(t, b.TotalGST.Equal(taxable.Mul(Rate)))

			if tc.buyerState == tc.sellerState {
				assert.True(t, b.IGST.IsZero())
				assert.True(t, b.CGST.Equal(b.SGST))
			} else {
				assert.True(t, b.CGST.IsZero())
				assert.True(t, b.SGST.IsZero())
			}
		})
	}
}

// State names are compared verbatim. A lowercase variant of the seller state
// is a different state as far as the rule table is concerned.
func TestCalculate_StateComparisonIsCaseSensitive(t *testing.T) {
	b := Calculate(decimal.NewFromInt(1000), "maharashtra", "Maharashtra")
	assert.True(t, b.IsInterState())
	assert.True(t, b.IGST.Equal(decimal.NewFromInt(180)))
}

func TestCalculate_ZeroAmount(t *testing.T) {
	b := Calculate(decimal.Zero, "Kerala", "Kerala")
	assert.True(t, b.TotalGST.IsZero())
	assert.True(t, b.CGST.IsZero())
	assert.True(t, b.SGST.IsZero())
	assert.True(t, b.IGST.IsZero())
}

func TestValidateGSTIN(t *testing.T) {
	tests := []struct {
		gstin string
		valid bool
	}{
		{"27ABCDE1234F1Z5", true},
		{"29AAACB2894G1ZP", true},
		{"27ABCDE1234F1Y5", false}, // 14th character must be Z
		{"27abcde1234F1Z5", false}, // lowercase not allowed
		{"27ABCDE1234F1Z", false},  // too short
		{"27ABCDE1234F1Z55", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.gstin, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidateGSTIN(tc.gstin))
		})
	}
}

func TestStateFromGSTIN(t *testing.T) {
	require.Equal(t, "Maharashtra", StateFromGSTIN("27ABCDE1234F1Z5"))
	require.Equal(t, "Karnataka", StateFromGSTIN("29AAACB2894G1ZP"))
	require.Equal(t, "Unknown", StateFromGSTIN("00ABCDE1234F1Z5"))
	require.Equal(t, "Unknown", StateFromGSTIN("9"))
	require.Equal(t, "Unknown", StateFromGSTIN(""))
}
