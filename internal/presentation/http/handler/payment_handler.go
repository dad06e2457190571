package handler

import (
	"strconv"
	"time"

	"github.com/bizmanager/backend/internal/application/service"
	"github.com/bizmanager/backend/internal/domain/enum"
	"github.com/bizmanager/backend/internal/presentation/http/dto/response"
	"github.com/bizmanager/backend/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// List handles listing payment records
func (h *PaymentHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	input := &service.ListPaymentsInput{
		UserID: *userID,
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
	}

	if statusName := c.Query("status"); statusName != "" {
		status, ok := enum.ParsePaymentStatus(statusName)
		if !ok {
			response.BadRequest(c, "Unknown payment status")
			return
		}
		input.Status = &status
	}

	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		customerID, err := uuid.Parse(customerIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		input.CustomerID = &customerID
	}

	result, err := h.paymentService.ListPayments(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Payment records retrieved successfully", result)
}

// Get handles getting a single payment record with its postings
func (h *PaymentHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment record ID")
		return
	}

	record, err := h.paymentService.GetPaymentRecord(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment record retrieved successfully", record)
}

// RecordPayment handles posting an amount against a payment record
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment record ID")
		return
	}

	var req struct {
		Amount    decimal.Decimal `json:"amount" binding:"required"`
		Mode      string          `json:"mode" binding:"required"`
		Reference *string         `json:"reference"`
		Notes     *string         `json:"notes"`
		PaidAt    *time.Time      `json:"paid_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.paymentService.RecordPayment(c.Request.Context(), &service.RecordPaymentInput{
		UserID:    *userID,
		RecordID:  id,
		Amount:    req.Amount,
		Mode:      req.Mode,
		Reference: req.Reference,
		Notes:     req.Notes,
		PaidAt:    req.PaidAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", record)
}

// Summary handles the collection position summary
func (h *PaymentHandler) Summary(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	summary, err := h.paymentService.GetSummary(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment summary retrieved successfully", summary)
}

// SweepOverdue flips unpaid records past their due date to overdue
func (h *PaymentHandler) SweepOverdue(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	updated, err := h.paymentService.SweepOverdue(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Overdue sweep completed", gin.H{"updated": updated})
}
