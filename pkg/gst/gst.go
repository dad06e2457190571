// Package gst implements the simplified GST rule table used across the
// application: a flat 18% rate split into CGST+SGST for intra-state supplies
// and IGST for inter-state supplies, plus structural GSTIN validation and the
// state-code prefix lookup.
package gst

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Rate is the flat tax rate applied to every taxable amount.
var Rate = decimal.NewFromFloat(0.18)

var two = decimal.NewFromInt(2)

// Breakdown holds the split of the total GST for one taxable amount.
// Exactly one of {CGST+SGST, IGST} is non-zero for a non-zero total.
type Breakdown struct {
	CGST     decimal.Decimal `json:"cgst"`
	SGST     decimal.Decimal `json:"sgst"`
	IGST     decimal.Decimal `json:"igst"`
	TotalGST decimal.Decimal `json:"total_gst"`
}

// Calculate splits 18% of taxableAmount between CGST/SGST and IGST depending
// on whether the buyer and seller states match. State comparison is exact and
// case-sensitive; empty or mismatched states are treated as inter-state and
// produce an IGST split.
func Calculate(taxableAmount decimal.Decimal, buyerState, sellerState string) Breakdown {
	totalGST := taxableAmount.Mul(Rate)

	if buyerState == sellerState {
		half := totalGST.Div(two)
		return Breakdown{
			CGST:     half,
			SGST:     half,
			IGST:     decimal.Zero,
			TotalGST: totalGST,
		}
	}

	return Breakdown{
		CGST:     decimal.Zero,
		SGST:     decimal.Zero,
		IGST:     totalGST,
		TotalGST: totalGST,
	}
}

// IsInterState reports whether the breakdown was computed as an inter-state
// supply.
func (b Breakdown) IsInterState() bool {
	return b.IGST.IsPositive()
}

// gstinPattern: 2-digit state code, 5-letter PAN prefix, 4 digits, 1 letter,
// 1 entity code, literal "Z", 1 check character. 15 characters total.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)

// ValidateGSTIN performs a structural check of a GST registration number.
// It does not verify the checksum digit against the registry.
func ValidateGSTIN(gstin string) bool {
	return gstinPattern.MatchString(gstin)
}

// StateFromGSTIN resolves the two-digit state-code prefix of a GSTIN to the
// state or union-territory name. Unknown prefixes resolve to "Unknown".
func StateFromGSTIN(gstin string) string {
	if len(gstin) < 2 {
		return "Unknown"
	}
	if name, ok := stateCodes[gstin[:2]]; ok {
		return name
	}
	return "Unknown"
}
