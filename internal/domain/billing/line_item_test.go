package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestNewLineItem_DerivesAmounts(t *testing.T) {
	// qty=2, rate=45000, discount=0, tax=18
	li := NewLineItem("1", "Laptop", d("2"), d("45000"), d("0"), d("18"))

	assert.True(t, li.Amount.Equal(d("90000")), "amount = %s", li.Amount)
	assert.True(t, li.TaxAmount.Equal(d("16200")), "tax = %s", li.TaxAmount)
	assert.True(t, li.FinalAmount.Equal(d("106200")), "final = %s", li.FinalAmount)
}

func TestLineItem_RecalculateAfterEdit(t *testing.T) {
	li := NewLineItem("1", "Laptop", d("2"), d("45000"), d("0"), d("18"))

	li.Quantity = d("3")
	li.Recalculate()

	assert.True(t, li.Amount.Equal(d("135000")))
	assert.True(t, li.TaxAmount.Equal(d("24300")))
	assert.True(t, li.FinalAmount.Equal(d("159300")))
}

func TestLineItem_LineDiscount(t *testing.T) {
	li := NewLineItem("1", "Mouse", d("10"), d("500"), d("10"), d("18"))

	assert.True(t, li.Amount.Equal(d("4500")))
	assert.True(t, li.TaxAmount.Equal(d("810")))
	assert.True(t, li.FinalAmount.Equal(d("5310")))
}

func TestLineItem_ZeroInputs(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		rate     string
		discount string
	}{
		{"zero quantity", "0", "500", "0"},
		{"zero rate", "3", "0", "0"},
		{"full discount", "3", "500", "100"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			li := NewLineItem("1", "Item", d(tc.quantity), d(tc.rate), d(tc.discount), d("18"))
			assert.True(t, li.Amount.IsZero())
			assert.True(t, li.TaxAmount.IsZero())
			assert.True(t, li.FinalAmount.IsZero())
		})
	}
}

func TestLineItem_RecalculateIsIdempotent(t *testing.T) {
	li := NewLineItem("1", "Laptop", d("2.5"), d("1999.99"), d("7.5"), d("18"))

	first := li
	li.Recalculate()
	li.Recalculate()

	assert.True(t, first.Amount.Equal(li.Amount))
	assert.True(t, first.TaxAmount.Equal(li.TaxAmount))
	assert.True(t, first.FinalAmount.Equal(li.FinalAmount))
}

func TestLineItem_Validate(t *testing.T) {
	li := NewLineItem("1", "", d("-1"), d("-5"), d("120"), d("200"))
	errs := li.Validate()
	require.Len(t, errs, 5)

	ok := NewLineItem("1", "Laptop", d("1"), d("100"), d("0"), d("18"))
	assert.Empty(t, ok.Validate())
}
