package billing

import (
	"testing"

	"github.com/bizmanager/backend/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []LineItem {
	return []LineItem{
		NewLineItem("1", "Laptop", d("2"), d("45000"), d("0"), d("18")),
	}
}

func TestAggregate_SameStateWithPercentDiscount(t *testing.T) {
	// subtotal=90000, 10% discount => taxable 81000, CGST=SGST=7290
	totals, err := Aggregate(sampleItems(),
		DocumentDiscount{Value: d("10"), Kind: enum.DiscountKindPercent},
		"Maharashtra", "Maharashtra")
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.Equal(d("90000")))
	assert.True(t, totals.TotalDiscount.Equal(d("9000")))
	assert.True(t, totals.TaxableAmount.Equal(d("81000")))
	assert.True(t, totals.GST.CGST.Equal(d("7290")))
	assert.True(t, totals.GST.SGST.Equal(d("7290")))
	assert.True(t, totals.GST.IGST.IsZero())
	assert.True(t, totals.GST.TotalGST.Equal(d("14580")))
	assert.True(t, totals.GrandTotal.Equal(d("95580")))
}

func TestAggregate_CrossStateSameGrandTotal(t *testing.T) {
	totals, err := Aggregate(sampleItems(),
		DocumentDiscount{Value: d("10"), Kind: enum.DiscountKindPercent},
		"Karnataka", "Maharashtra")
	require.NoError(t, err)

	assert.True(t, totals.GST.IGST.Equal(d("14580")))
	assert.True(t, totals.GST.CGST.IsZero())
	assert.True(t, totals.GST.SGST.IsZero())
	assert.True(t, totals.GrandTotal.Equal(d("95580")))
}

func TestAggregate_FlatAmountDiscount(t *testing.T) {
	totals, err := Aggregate(sampleItems(),
		DocumentDiscount{Value: d("9000"), Kind: enum.DiscountKindAmount},
		"Maharashtra", "Maharashtra")
	require.NoError(t, err)

	assert.True(t, totals.TotalDiscount.Equal(d("9000")))
	assert.True(t, totals.TaxableAmount.Equal(d("81000")))
	assert.True(t, totals.GrandTotal.Equal(d("95580")))
}

func TestAggregate_GrandTotalInvariant(t *testing.T) {
	items := []LineItem{
		NewLineItem("1", "Laptop", d("1"), d("49999.99"), d("5"), d("18")),
		NewLineItem("2", "Mouse", d("4"), d("850.50"), d("0"), d("18")),
		NewLineItem("3", "Service", d("1.5"), d("1200"), d("12.5"), d("18")),
	}

	for _, kind := range []enum.DiscountKind{enum.DiscountKindPercent, enum.DiscountKindAmount} {
		totals, err := Aggregate(items, DocumentDiscount{Value: d("7"), Kind: kind}, "Delhi", "Goa")
		require.NoError(t, err)

		expected := totals.Subtotal.Sub(totals.TotalDiscount).Add(totals.GST.TotalGST)
		assert.True(t, totals.GrandTotal.Equal(expected),
			"grand total %s != (subtotal - discount) + gst %s", totals.GrandTotal, expected)
	}
}

func TestAggregate_NoItems(t *testing.T) {
	totals, err := Aggregate(nil, DocumentDiscount{}, "Maharashtra", "Maharashtra")
	require.NoError(t, err)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
}

func TestAggregate_DiscountExceedingSubtotalIsRejected(t *testing.T) {
	_, err := Aggregate(sampleItems(),
		DocumentDiscount{Value: d("100000"), Kind: enum.DiscountKindAmount},
		"Maharashtra", "Maharashtra")
	assert.ErrorIs(t, err, ErrDiscountExceedsSubtotal)
}

func TestAggregate_NegativeDiscountIsRejected(t *testing.T) {
	_, err := Aggregate(sampleItems(),
		DocumentDiscount{Value: d("-5"), Kind: enum.DiscountKindPercent},
		"Maharashtra", "Maharashtra")
	assert.Error(t, err)
}
