package entity

import (
	"time"

	"github.com/bizmanager/backend/internal/domain/billing"
	"github.com/bizmanager/backend/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a billing customer
type Customer struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string            `gorm:"size:255;not null" json:"name"`
	Phone     string            `gorm:"size:50;not null" json:"phone"`
	Email     *string           `gorm:"size:255" json:"email,omitempty"`
	Address   *string           `gorm:"type:text" json:"address,omitempty"`
	City      *string           `gorm:"size:100" json:"city,omitempty"`
	State     string            `gorm:"size:100;not null" json:"state"`
	Pincode   *string           `gorm:"size:10" json:"pincode,omitempty"`
	GSTIN     *string           `gorm:"size:15" json:"gstin,omitempty"`
	Type      enum.CustomerType `gorm:"default:0" json:"type"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	User      User       `gorm:"foreignKey:UserID" json:"-"`
	Documents []Document `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// BillingInfo converts the customer into the snapshot used on documents.
func (c *Customer) BillingInfo() billing.CustomerInfo {
	return billing.CustomerInfo{
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   deref(c.Email),
		Address: deref(c.Address),
		City:    deref(c.City),
		State:   c.State,
		Pincode: deref(c.Pincode),
		GSTIN:   deref(c.GSTIN),
		Type:    c.Type,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
