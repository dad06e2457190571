package billing

import (
	"time"

	"github.com/bizmanager/backend/internal/domain/enum"
)

// BankDetails is the seller's bank information printed on documents.
type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	IFSCCode      string `json:"ifsc_code"`
	Branch        string `json:"branch,omitempty"`
}

// Company is the seller's fixed identity. It is supplied once at renderer
// construction and never mutated during a render.
type Company struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	State   string `json:"state"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	GSTIN   string `json:"gstin"`
	PAN     string `json:"pan,omitempty"`
	CIN     string `json:"cin,omitempty"`
	Website string `json:"website,omitempty"`
	// Logo holds raw PNG/JPEG bytes; invalid or empty data renders as a
	// placeholder box instead.
	Logo []byte `json:"-"`
	Bank *BankDetails `json:"bank_details,omitempty"`
}

// CustomerInfo is the buyer snapshot embedded in a document. State is the
// field the tax split depends on; GSTIN distinguishes registered business
// customers from unregistered ones on the printed document.
type CustomerInfo struct {
	Name    string            `json:"name"`
	Phone   string            `json:"phone"`
	Email   string            `json:"email,omitempty"`
	Address string            `json:"address,omitempty"`
	City    string            `json:"city,omitempty"`
	State   string            `json:"state,omitempty"`
	Pincode string            `json:"pincode,omitempty"`
	GSTIN   string            `json:"gstin,omitempty"`
	Type    enum.CustomerType `json:"type"`
}

// DocumentData is the immutable value object handed to the render engine.
// It is constructed fresh for every render and never persisted by the
// renderer itself.
type DocumentData struct {
	Number      string            `json:"number"`
	Type        enum.DocumentType `json:"type"`
	IssueDate   time.Time         `json:"issue_date"`
	DueDate     time.Time         `json:"due_date"`
	Customer    CustomerInfo      `json:"customer"`
	Items       []LineItem        `json:"items"`
	Totals      Totals            `json:"totals"`
	PaymentMode string            `json:"payment_mode,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	Terms       []string          `json:"terms,omitempty"`
}

// PlaceOfSupply is the buyer's state when known, otherwise the seller's.
func (d *DocumentData) PlaceOfSupply(sellerState string) string {
	if d.Customer.State != "" {
		return d.Customer.State
	}
	return sellerState
}

// FileName is the download name for the rendered document, e.g.
// "Tax Invoice-INV-123456789.pdf".
func (d *DocumentData) FileName() string {
	return d.Type.Title() + "-" + d.Number + ".pdf"
}
