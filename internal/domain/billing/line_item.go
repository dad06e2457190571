// Package billing holds the document computation core: per-line amount
// derivation, document aggregation with the GST split, currency formatting,
// amount-in-words conversion, and document number generation. Everything in
// this package is pure computation over decimal values; persistence and
// rendering live elsewhere.
package billing

import (
	"github.com/bizmanager/backend/pkg/apperror"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LineItem is one row of a document. The derived fields Amount, TaxAmount and
// FinalAmount are valid only as a set: they are recomputed together by
// Recalculate whenever any of the four inputs changes, and must never be
// written individually.
type LineItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	HSN         string          `json:"hsn,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	// DiscountPercent and TaxPercent are 0-100.
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	TaxPercent      decimal.Decimal `json:"tax_percent"`

	// Derived, post per-line discount.
	Amount      decimal.Decimal `json:"amount"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	FinalAmount decimal.Decimal `json:"final_amount"`
}

// NewLineItem creates a line item with the derived fields already computed.
func NewLineItem(id, name string, quantity, rate, discountPercent, taxPercent decimal.Decimal) LineItem {
	li := LineItem{
		ID:              id,
		Name:            name,
		Quantity:        quantity,
		Rate:            rate,
		DiscountPercent: discountPercent,
		TaxPercent:      taxPercent,
	}
	li.Recalculate()
	return li
}

// Recalculate derives Amount, TaxAmount and FinalAmount from the current
// quantity, rate, discount and tax rate. It is the single mutation path for
// the derived fields and is idempotent for unchanged inputs.
func (li *LineItem) Recalculate() {
	base := li.Quantity.Mul(li.Rate)
	discount := base.Mul(li.DiscountPercent).Div(hundred)
	li.Amount = base.Sub(discount)
	li.TaxAmount = li.Amount.Mul(li.TaxPercent).Div(hundred)
	li.FinalAmount = li.Amount.Add(li.TaxAmount)
}

// Validate checks the input ranges. The calculator itself never clamps;
// callers reject invalid items before aggregation.
func (li *LineItem) Validate() []apperror.FieldError {
	var errs []apperror.FieldError
	if li.Name == "" {
		errs = append(errs, apperror.FieldError{Field: "name", Message: "Item name is required"})
	}
	if li.Quantity.IsNegative() {
		errs = append(errs, apperror.FieldError{Field: "quantity", Message: "Quantity cannot be negative"})
	}
	if li.Rate.IsNegative() {
		errs = append(errs, apperror.FieldError{Field: "rate", Message: "Rate cannot be negative"})
	}
	if li.DiscountPercent.IsNegative() || li.DiscountPercent.GreaterThan(hundred) {
		errs = append(errs, apperror.FieldError{Field: "discount_percent", Message: "Discount must be between 0 and 100"})
	}
	if li.TaxPercent.IsNegative() || li.TaxPercent.GreaterThan(hundred) {
		errs = append(errs, apperror.FieldError{Field: "tax_percent", Message: "Tax rate must be between 0 and 100"})
	}
	return errs
}
