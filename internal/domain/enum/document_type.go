package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DocumentType represents the kind of business document
type DocumentType int

const (
	DocumentTypeInvoice       DocumentType = 0
	DocumentTypeQuotation     DocumentType = 1
	DocumentTypePurchaseOrder DocumentType = 2
	DocumentTypeSalesOrder    DocumentType = 3
	DocumentTypeReceipt       DocumentType = 4
	DocumentTypeDeliveryNote  DocumentType = 5
	DocumentTypeCreditNote    DocumentType = 6
	DocumentTypeDebitNote     DocumentType = 7
)

var documentTypeNames = [...]string{
	"invoice", "quotation", "purchase_order", "sales_order",
	"receipt", "delivery_note", "credit_note", "debit_note",
}

var documentTypeTitles = [...]string{
	"Tax Invoice", "Quotation", "Purchase Order", "Sales Order",
	"Receipt", "Delivery Note", "Credit Note", "Debit Note",
}

var documentTypeDisplayTitles = [...]string{
	"TAX INVOICE", "QUOTATION", "PURCHASE ORDER", "SALES ORDER",
	"RECEIPT", "DELIVERY NOTE", "CREDIT NOTE", "DEBIT NOTE",
}

var documentTypePrefixes = [...]string{
	"INV", "QUO", "PO", "SO", "REC", "DN", "CN", "DB",
}

func (t DocumentType) IsValid() bool {
	return int(t) >= 0 && int(t) < len(documentTypeNames)
}

func (t DocumentType) String() string {
	if !t.IsValid() {
		return "invoice"
	}
	return documentTypeNames[t]
}

// Title is the human-readable document title used in file names.
func (t DocumentType) Title() string {
	if !t.IsValid() {
		return "Document"
	}
	return documentTypeTitles[t]
}

// DisplayTitle is the uppercase heading printed on the document itself.
func (t DocumentType) DisplayTitle() string {
	if !t.IsValid() {
		return "DOCUMENT"
	}
	return documentTypeDisplayTitles[t]
}

// Prefix is the short code prepended to generated document numbers.
func (t DocumentType) Prefix() string {
	if !t.IsValid() {
		return "DOC"
	}
	return documentTypePrefixes[t]
}

// IsBillable reports whether a document of this type carries an amount owed
// and therefore seeds a payment record.
func (t DocumentType) IsBillable() bool {
	return t == DocumentTypeInvoice || t == DocumentTypeReceipt
}

// ParseDocumentType resolves a type name. The second return reports whether
// the name was recognized.
func ParseDocumentType(name string) (DocumentType, bool) {
	for i, n := range documentTypeNames {
		if n == name {
			return DocumentType(i), true
		}
	}
	return DocumentTypeInvoice, false
}

func (t DocumentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *DocumentType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = DocumentType(i)
		return nil
	}
	for i, name := range documentTypeNames {
		if name == str {
			*t = DocumentType(i)
			return nil
		}
	}
	return nil
}

func (t DocumentType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *DocumentType) Scan(value interface{}) error {
	if value == nil {
		*t = DocumentTypeInvoice
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = DocumentType(v)
	case int:
		*t = DocumentType(v)
	}
	return nil
}
