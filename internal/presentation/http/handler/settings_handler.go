package handler

import (
	"io"

	"github.com/bizmanager/backend/internal/application/service"
	"github.com/bizmanager/backend/internal/domain/enum"
	"github.com/bizmanager/backend/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// logo uploads are stored inline, so keep them small
const maxLogoSize = 2 << 20

// SettingsHandler handles settings-related HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings retrieves user settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings updates user settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		CompanyName        *string        `json:"company_name"`
		CompanyAddress     *string        `json:"company_address"`
		CompanyState       *string        `json:"company_state"`
		CompanyPhone       *string        `json:"company_phone"`
		CompanyEmail       *string        `json:"company_email"`
		GSTIN              *string        `json:"gstin"`
		PAN                *string        `json:"pan"`
		CIN                *string        `json:"cin"`
		Website            *string        `json:"website"`
		BankName           *string        `json:"bank_name"`
		AccountNumber      *string        `json:"account_number"`
		IFSCCode           *string        `json:"ifsc_code"`
		BankBranch         *string        `json:"bank_branch"`
		DefaultTemplate    *enum.Template `json:"default_template"`
		InvoiceDueDays     *int           `json:"invoice_due_days"`
		DefaultTerms       *string        `json:"default_terms"`
		EmailNotifications *bool          `json:"email_notifications"`
		PaymentAlerts      *bool          `json:"payment_alerts"`
		LowStockAlerts     *bool          `json:"low_stock_alerts"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		UserID:             *userID,
		CompanyName:        req.CompanyName,
		CompanyAddress:     req.CompanyAddress,
		CompanyState:       req.CompanyState,
		CompanyPhone:       req.CompanyPhone,
		CompanyEmail:       req.CompanyEmail,
		GSTIN:              req.GSTIN,
		PAN:                req.PAN,
		CIN:                req.CIN,
		Website:            req.Website,
		BankName:           req.BankName,
		AccountNumber:      req.AccountNumber,
		IFSCCode:           req.IFSCCode,
		BankBranch:         req.BankBranch,
		DefaultTemplate:    req.DefaultTemplate,
		InvoiceDueDays:     req.InvoiceDueDays,
		DefaultTerms:       req.DefaultTerms,
		EmailNotifications: req.EmailNotifications,
		PaymentAlerts:      req.PaymentAlerts,
		LowStockAlerts:     req.LowStockAlerts,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}

// UploadLogo stores the company logo printed on documents
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		response.BadRequest(c, "A logo file is required")
		return
	}
	if fileHeader.Size > maxLogoSize {
		response.BadRequest(c, "Logo must be smaller than 2MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Could not read the logo file")
		return
	}
	defer file.Close()

	logo, err := io.ReadAll(io.LimitReader(file, maxLogoSize))
	if err != nil {
		response.BadRequest(c, "Could not read the logo file")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		UserID: *userID,
		Logo:   logo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Logo uploaded successfully", settings)
}
