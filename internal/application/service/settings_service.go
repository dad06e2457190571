package service

import (
	"context"

	"github.com/bizmanager/backend/internal/domain/entity"
	"github.com/bizmanager/backend/internal/domain/enum"
	"github.com/bizmanager/backend/internal/domain/repository"
	"github.com/bizmanager/backend/pkg/apperror"
	"github.com/bizmanager/backend/pkg/gst"
	"github.com/google/uuid"
)

// SettingsService handles the seller profile and document defaults
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves user settings, creating defaults if not exists
func (s *SettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = &entity.UserSettings{
			UserID:             userID,
			DefaultTemplate:    enum.TemplateProfessional,
			InvoiceDueDays:     30,
			EmailNotifications: true,
			PaymentAlerts:      true,
			LowStockAlerts:     true,
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating settings. Nil fields
// keep their stored value.
type UpdateSettingsInput struct {
	UserID             uuid.UUID
	CompanyName        *string
	CompanyAddress     *string
	CompanyState       *string
	CompanyPhone       *string
	CompanyEmail       *string
	GSTIN              *string
	PAN                *string
	CIN                *string
	Website            *string
	Logo               []byte
	BankName           *string
	AccountNumber      *string
	IFSCCode           *string
	BankBranch         *string
	DefaultTemplate    *enum.Template
	InvoiceDueDays     *int
	DefaultTerms       *string
	EmailNotifications *bool
	PaymentAlerts      *bool
	LowStockAlerts     *bool
}

// UpdateSettings updates user settings. The company GSTIN, when set, must be
// valid; the company state falls back to the GSTIN's registration state.
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.UserSettings, error) {
	settings, err := s.GetSettings(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.GSTIN != nil && *input.GSTIN != "" {
		if !gst.ValidateGSTIN(*input.GSTIN) {
			return nil, apperror.NewBadRequestError("Invalid GSTIN format")
		}
		settings.GSTIN = *input.GSTIN
		if settings.CompanyState == "" && (input.CompanyState == nil || *input.CompanyState == "") {
			settings.CompanyState = gst.StateFromGSTIN(*input.GSTIN)
		}
	}

	if input.CompanyName != nil {
		settings.CompanyName = *input.CompanyName
	}
	if input.CompanyAddress != nil {
		settings.CompanyAddress = *input.CompanyAddress
	}
	if input.CompanyState != nil && *input.CompanyState != "" {
		settings.CompanyState = *input.CompanyState
	}
	if input.CompanyPhone != nil {
		settings.CompanyPhone = *input.CompanyPhone
	}
	if input.CompanyEmail != nil {
		settings.CompanyEmail = *input.CompanyEmail
	}
	if input.PAN != nil {
		settings.PAN = input.PAN
	}
	if input.CIN != nil {
		settings.CIN = input.CIN
	}
	if input.Website != nil {
		settings.Website = input.Website
	}
	if input.Logo != nil {
		settings.Logo = input.Logo
	}
	if input.BankName != nil {
		settings.BankName = input.BankName
	}
	if input.AccountNumber != nil {
		settings.AccountNumber = input.AccountNumber
	}
	if input.IFSCCode != nil {
		settings.IFSCCode = input.IFSCCode
	}
	if input.BankBranch != nil {
		settings.BankBranch = input.BankBranch
	}
	if input.DefaultTemplate != nil {
		settings.DefaultTemplate = *input.DefaultTemplate
	}
	if input.InvoiceDueDays != nil {
		if *input.InvoiceDueDays < 0 {
			return nil, apperror.NewBadRequestError("Invoice due days cannot be negative")
		}
		settings.InvoiceDueDays = *input.InvoiceDueDays
	}
	if input.DefaultTerms != nil {
		settings.DefaultTerms = input.DefaultTerms
	}
	if input.EmailNotifications != nil {
		settings.EmailNotifications = *input.EmailNotifications
	}
	if input.PaymentAlerts != nil {
		settings.PaymentAlerts = *input.PaymentAlerts
	}
	if input.LowStockAlerts != nil {
		settings.LowStockAlerts = *input.LowStockAlerts
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
