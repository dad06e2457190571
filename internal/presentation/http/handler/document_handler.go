package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bizmanager/backend/internal/application/service"
	"github.com/bizmanager/backend/internal/domain/enum"
	"github.com/bizmanager/backend/internal/presentation/http/dto/request"
	"github.com/bizmanager/backend/internal/presentation/http/dto/response"
	"github.com/bizmanager/backend/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles document-related HTTP requests
type DocumentHandler struct {
	documentService *service.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// List handles listing documents
func (h *DocumentHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	input := &service.ListDocumentsInput{
		UserID: *userID,
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if typeName := c.Query("type"); typeName != "" {
		docType, ok := enum.ParseDocumentType(typeName)
		if !ok {
			response.BadRequest(c, "Unknown document type")
			return
		}
		input.Type = &docType
	}

	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		customerID, err := uuid.Parse(customerIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		input.CustomerID = &customerID
	}

	result, err := h.documentService.ListDocuments(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Documents retrieved successfully", result)
}

// Create handles creating a document
func (h *DocumentHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateDocumentInput{
		UserID:        *userID,
		CustomerID:    req.CustomerID,
		Type:          req.Type,
		DueDate:       req.DueDate,
		Items:         toItemInputs(req.Items),
		DiscountValue: req.DiscountValue,
		DiscountKind:  req.DiscountKind,
		Template:      req.Template,
		PaymentMode:   req.PaymentMode,
		Notes:         req.Notes,
	}
	if req.IssueDate != nil {
		input.IssueDate = *req.IssueDate
	}

	document, err := h.documentService.CreateDocument(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Document created successfully", document)
}

// Get handles getting a single document
func (h *DocumentHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	document, err := h.documentService.GetDocument(c.Request.Context(), *userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Document retrieved successfully", document)
}

// Update handles updating a document
func (h *DocumentHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	var req request.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateDocumentInput{
		UserID:        *userID,
		ID:            id,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		DiscountValue: req.DiscountValue,
		DiscountKind:  req.DiscountKind,
		Template:      req.Template,
		PaymentMode:   req.PaymentMode,
		Notes:         req.Notes,
	}
	if req.Items != nil {
		input.Items = toItemInputs(req.Items)
	}

	document, err := h.documentService.UpdateDocument(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Document updated successfully", document)
}

// Delete handles deleting a document
func (h *DocumentHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// DownloadPDF renders the document and serves it as a file download. The
// stored template can be overridden with the ?template= query parameter.
func (h *DocumentHandler) DownloadPDF(c *gin.Context) {
	h.servePDF(c, "attachment")
}

// PreviewPDF renders the document for inline display in the browser
func (h *DocumentHandler) PreviewPDF(c *gin.Context) {
	h.servePDF(c, "inline")
}

func (h *DocumentHandler) servePDF(c *gin.Context, disposition string) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	var override *enum.Template
	if name := c.Query("template"); name != "" {
		template := enum.ParseTemplate(name)
		override = &template
	}

	pdfBytes, fileName, err := h.documentService.GeneratePDF(c.Request.Context(), *userID, id, override)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, fileName))
	c.Header("Last-Modified", time.Now().UTC().Format(time.RFC1123))
	c.Data(200, "application/pdf", pdfBytes)
}

// Email renders the document and mails it to the customer
func (h *DocumentHandler) Email(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid document ID")
		return
	}

	// The body is optional; an empty one falls back to the customer's address.
	var req request.EmailDocumentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
	}

	if err := h.documentService.EmailDocument(c.Request.Context(), *userID, id, req.To); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Document emailed successfully", nil)
}

func toItemInputs(items []request.DocumentItemRequest) []service.DocumentItemInput {
	inputs := make([]service.DocumentItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, service.DocumentItemInput{
			ProductID:   item.ProductID,
			Name:        item.Name,
			Description: item.Description,
			HSNCode:     item.HSNCode,
			Unit:        item.Unit,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Discount:    item.Discount,
			TaxRate:     item.TaxRate,
		})
	}
	return inputs
}
