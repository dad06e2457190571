package entity

import (
	"time"

	"github.com/bizmanager/backend/internal/domain/billing"
	"github.com/bizmanager/backend/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserSettings holds the seller profile printed on documents plus
// per-user application defaults
type UserSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Company profile
	CompanyName    string  `gorm:"size:255" json:"company_name"`
	CompanyAddress string  `gorm:"type:text" json:"company_address"`
	CompanyState   string  `gorm:"size:100" json:"company_state"`
	CompanyPhone   string  `gorm:"size:50" json:"company_phone"`
	CompanyEmail   string  `gorm:"size:255" json:"company_email"`
	GSTIN          string  `gorm:"size:15" json:"gstin"`
	PAN            *string `gorm:"size:10;column:pan" json:"pan,omitempty"`
	CIN            *string `gorm:"size:21;column:cin" json:"cin,omitempty"`
	Website        *string `gorm:"size:255" json:"website,omitempty"`
	Logo           []byte  `gorm:"type:bytea" json:"-"`

	// Bank details printed on invoices
	BankName      *string `gorm:"size:255" json:"bank_name,omitempty"`
	AccountNumber *string `gorm:"size:50" json:"account_number,omitempty"`
	IFSCCode      *string `gorm:"size:11;column:ifsc_code" json:"ifsc_code,omitempty"`
	BankBranch    *string `gorm:"size:255" json:"bank_branch,omitempty"`

	// Document defaults
	DefaultTemplate enum.Template `gorm:"default:0" json:"default_template"`
	InvoiceDueDays  int           `gorm:"default:30" json:"invoice_due_days"`
	DefaultTerms    *string       `gorm:"type:text" json:"default_terms,omitempty"`

	// Notification settings
	EmailNotifications bool `gorm:"default:true" json:"email_notifications"`
	PaymentAlerts      bool `gorm:"default:true" json:"payment_alerts"`
	LowStockAlerts     bool `gorm:"default:true" json:"low_stock_alerts"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *UserSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the UserSettings model
func (UserSettings) TableName() string {
	return "user_settings"
}

// Company converts the profile into the seller identity used by documents
// and the PDF renderer.
func (s *UserSettings) Company() billing.Company {
	c := billing.Company{
		Name:    s.CompanyName,
		Address: s.CompanyAddress,
		State:   s.CompanyState,
		Phone:   s.CompanyPhone,
		Email:   s.CompanyEmail,
		GSTIN:   s.GSTIN,
		PAN:     deref(s.PAN),
		CIN:     deref(s.CIN),
		Website: deref(s.Website),
		Logo:    s.Logo,
	}
	if s.BankName != nil && *s.BankName != "" {
		c.Bank = &billing.BankDetails{
			BankName:      *s.BankName,
			AccountNumber: deref(s.AccountNumber),
			IFSCCode:      deref(s.IFSCCode),
			Branch:        deref(s.BankBranch),
		}
	}
	return c
}
