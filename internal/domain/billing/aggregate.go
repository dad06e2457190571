package billing

import (
	"github.com/bizmanager/backend/internal/domain/enum"
	"github.com/bizmanager/backend/pkg/apperror"
	"github.com/bizmanager/backend/pkg/gst"
	"github.com/shopspring/decimal"
)

// DocumentDiscount is a document-level discount applied after per-line
// discounts, either as a percentage of the subtotal or as a flat amount.
type DocumentDiscount struct {
	Value decimal.Decimal   `json:"value"`
	Kind  enum.DiscountKind `json:"kind"`
}

// AmountOff resolves the discount against a subtotal.
func (d DocumentDiscount) AmountOff(subtotal decimal.Decimal) decimal.Decimal {
	if d.Kind == enum.DiscountKindPercent {
		return subtotal.Mul(d.Value).Div(hundred)
	}
	return d.Value
}

// Totals is the aggregated money view of a document.
type Totals struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	GST           gst.Breakdown   `json:"gst"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
}

// ErrDiscountExceedsSubtotal is returned when the document discount would
// drive the taxable amount negative. A negative taxable amount (and negative
// tax) is rejected rather than clamped.
var ErrDiscountExceedsSubtotal = apperror.NewUnprocessableError("Discount exceeds the document subtotal")

// Aggregate combines computed line items and a document-level discount into
// document totals. The GST split is determined by the buyer and seller states.
//
//	subtotal    = sum of item.Amount (post line discount, pre document discount)
//	taxable     = subtotal - discount
//	grand total = taxable + GST
func Aggregate(items []LineItem, discount DocumentDiscount, buyerState, sellerState string) (Totals, error) {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount)
	}

	totalDiscount := discount.AmountOff(subtotal)
	if totalDiscount.IsNegative() {
		return Totals{}, apperror.NewUnprocessableError("Discount cannot be negative")
	}

	taxable := subtotal.Sub(totalDiscount)
	if taxable.IsNegative() {
		return Totals{}, ErrDiscountExceedsSubtotal
	}

	breakdown := gst.Calculate(taxable, buyerState, sellerState)

	return Totals{
		Subtotal:      subtotal,
		TotalDiscount: totalDiscount,
		TaxableAmount: taxable,
		GST:           breakdown,
		GrandTotal:    taxable.Add(breakdown.TotalGST),
	}, nil
}
