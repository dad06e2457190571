package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bizmanager/backend/internal/domain/billing"
	"github.com/bizmanager/backend/internal/domain/entity"
	"github.com/bizmanager/backend/internal/domain/enum"
	"github.com/bizmanager/backend/internal/domain/repository"
	"github.com/bizmanager/backend/pkg/apperror"
	"github.com/bizmanager/backend/pkg/email"
	"github.com/bizmanager/backend/pkg/pagination"
	"github.com/bizmanager/backend/pkg/pdf"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RenderFunc renders a document for a seller identity. Declared as a
// function type so tests can substitute the PDF engine.
type RenderFunc func(company billing.Company, doc *billing.DocumentData, style pdf.Style) ([]byte, error)

// RenderPDF is the production RenderFunc backed by the maroto pipeline.
func RenderPDF(company billing.Company, doc *billing.DocumentData, style pdf.Style) ([]byte, error) {
	return pdf.NewRenderer(company).Render(doc, style)
}

// DocumentMailer delivers rendered documents to customers
type DocumentMailer interface {
	SendDocumentEmail(msg email.DocumentEmail) error
}

// DocumentService orchestrates the document lifecycle: validation,
// calculation, numbering, persistence, payment seeding and PDF generation.
type DocumentService struct {
	documentRepo repository.DocumentRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	paymentRepo  repository.PaymentRepository
	settingsRepo repository.SettingsRepository
	render       RenderFunc
	mailer       DocumentMailer
}

// NewDocumentService creates a new document service
func NewDocumentService(
	documentRepo repository.DocumentRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	paymentRepo repository.PaymentRepository,
	settingsRepo repository.SettingsRepository,
	render RenderFunc,
	mailer DocumentMailer,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		paymentRepo:  paymentRepo,
		settingsRepo: settingsRepo,
		render:       render,
		mailer:       mailer,
	}
}

// DocumentItemInput represents a line item input
type DocumentItemInput struct {
	ProductID   *uuid.UUID
	Name        string
	Description *string
	HSNCode     *string
	Unit        string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Discount    decimal.Decimal
	TaxRate     decimal.Decimal
}

// CreateDocumentInput represents the input for creating a document
type CreateDocumentInput struct {
	UserID        uuid.UUID
	CustomerID    uuid.UUID
	Type          enum.DocumentType
	IssueDate     time.Time
	DueDate       *time.Time
	Items         []DocumentItemInput
	DiscountValue decimal.Decimal
	DiscountKind  enum.DiscountKind
	Template      *enum.Template
	PaymentMode   *string
	Notes         *string
}

// CreateDocument validates, calculates and persists a new document. Billable
// documents also seed a payment ledger record; receipts are seeded fully
// paid. Stock is reduced for billable product-backed lines.
func (s *DocumentService) CreateDocument(ctx context.Context, input *CreateDocumentInput) (*entity.Document, error) {
	if !input.Type.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown document type")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("A document needs at least one line item")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.UserID != input.UserID {
		return nil, apperror.NewNotFoundError("Customer")
	}

	settings, err := s.requireSettings(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	items, lineItems, err := s.buildItems(input.Items)
	if err != nil {
		return nil, err
	}

	discount := billing.DocumentDiscount{Value: input.DiscountValue, Kind: input.DiscountKind}
	totals, err := billing.Aggregate(lineItems, discount, customer.State, settings.CompanyState)
	if err != nil {
		return nil, err
	}

	number, err := s.uniqueNumber(ctx, input.Type)
	if err != nil {
		return nil, err
	}

	issueDate := input.IssueDate
	if issueDate.IsZero() {
		issueDate = time.Now()
	}
	dueDate := issueDate.AddDate(0, 0, settings.InvoiceDueDays)
	if input.DueDate != nil {
		dueDate = *input.DueDate
	}

	template := settings.DefaultTemplate
	if input.Template != nil {
		template = *input.Template
	}

	document := &entity.Document{
		UserID:        input.UserID,
		CustomerID:    customer.ID,
		Type:          input.Type,
		Number:        number,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		DiscountValue: input.DiscountValue,
		DiscountKind:  input.DiscountKind,
		Template:      template,
		PaymentMode:   input.PaymentMode,
		Notes:         input.Notes,
		Items:         items,
	}
	document.ApplyTotals(totals)

	if err := s.documentRepo.Create(ctx, document); err != nil {
		return nil, err
	}

	if input.Type.IsBillable() {
		if err := s.seedPaymentRecord(ctx, document); err != nil {
			return nil, err
		}
		s.reduceStock(ctx, document.Items)
	}

	document.Customer = *customer
	return document, nil
}

// buildItems validates the line inputs and computes per-line amounts
func (s *DocumentService) buildItems(inputs []DocumentItemInput) ([]entity.DocumentItem, []billing.LineItem, error) {
	items := make([]entity.DocumentItem, 0, len(inputs))
	lineItems := make([]billing.LineItem, 0, len(inputs))

	for i, in := range inputs {
		line := billing.NewLineItem(uuid.NewString(), in.Name, in.Quantity, in.Rate, in.Discount, in.TaxRate)
		if fieldErrors := line.Validate(); len(fieldErrors) > 0 {
			for j := range fieldErrors {
				fieldErrors[j].Field = fmt.Sprintf("items[%d].%s", i, fieldErrors[j].Field)
			}
			return nil, nil, apperror.NewValidationError(fieldErrors)
		}

		unit := in.Unit
		if unit == "" {
			unit = "pcs"
		}
		line.Unit = unit
		line.Description = derefStr(in.Description)
		line.HSN = derefStr(in.HSNCode)

		items = append(items, entity.DocumentItem{
			ProductID:   in.ProductID,
			Name:        in.Name,
			Description: in.Description,
			HSNCode:     in.HSNCode,
			Unit:        unit,
			Quantity:    in.Quantity,
			Rate:        in.Rate,
			Discount:    in.Discount,
			TaxRate:     in.TaxRate,
			Amount:      line.Amount,
			TaxAmount:   line.TaxAmount,
			FinalAmount: line.FinalAmount,
		})
		lineItems = append(lineItems, line)
	}

	return items, lineItems, nil
}

// uniqueNumber draws document numbers until one is free. Collisions are
// vanishingly rare but the number is not sequence-backed, so check anyway.
func (s *DocumentService) uniqueNumber(ctx context.Context, docType enum.DocumentType) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		number := billing.NewDocumentNumber(docType.Prefix())
		existing, err := s.documentRepo.GetByNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return number, nil
		}
	}
	return "", apperror.NewConflictError("Could not allocate a document number")
}

func (s *DocumentService) seedPaymentRecord(ctx context.Context, document *entity.Document) error {
	record := &entity.PaymentRecord{
		UserID:          document.UserID,
		DocumentID:      document.ID,
		CustomerID:      document.CustomerID,
		TotalAmount:     document.GrandTotal,
		PaidAmount:      decimal.Zero,
		RemainingAmount: document.GrandTotal,
		Status:          enum.PaymentStatusPending,
		DueDate:         document.DueDate,
	}

	// A receipt is proof of money received, so its ledger entry starts settled.
	if document.Type == enum.DocumentTypeReceipt {
		record.PaidAmount = document.GrandTotal
		record.RemainingAmount = decimal.Zero
		record.Status = enum.PaymentStatusPaid
	}

	return s.paymentRepo.CreateRecord(ctx, record)
}

// reduceStock decrements inventory for product-backed lines. Failures are
// ignored so a stock miss never blocks an issued document.
func (s *DocumentService) reduceStock(ctx context.Context, items []entity.DocumentItem) {
	for _, item := range items {
		if item.ProductID == nil {
			continue
		}
		qty := int(item.Quantity.IntPart())
		if qty <= 0 {
			continue
		}
		_ = s.productRepo.AdjustStock(ctx, *item.ProductID, -qty)
	}
}

// GetDocument retrieves a document by ID
func (s *DocumentService) GetDocument(ctx context.Context, userID, id uuid.UUID) (*entity.Document, error) {
	document, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if document == nil || document.UserID != userID {
		return nil, apperror.NewNotFoundError("Document")
	}
	return document, nil
}

// ListDocumentsInput represents the list documents input
type ListDocumentsInput struct {
	UserID     uuid.UUID
	Pagination *pagination.PaginationParams
	Type       *enum.DocumentType
	CustomerID *uuid.UUID
	Search     string
	SortBy     string
	SortOrder  string
}

// ListDocuments lists the user's documents
func (s *DocumentService) ListDocuments(ctx context.Context, input *ListDocumentsInput) (*pagination.PaginatedResult[entity.Document], error) {
	params := &repository.DocumentFilterParams{
		Pagination: input.Pagination,
		Type:       input.Type,
		CustomerID: input.CustomerID,
		Search:     input.Search,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
	}

	documents, total, err := s.documentRepo.List(ctx, input.UserID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(documents, pag), nil
}

// UpdateDocumentInput represents the update document input. Items, when
// present, replace the existing lines entirely.
type UpdateDocumentInput struct {
	UserID        uuid.UUID
	ID            uuid.UUID
	IssueDate     *time.Time
	DueDate       *time.Time
	Items         []DocumentItemInput
	DiscountValue *decimal.Decimal
	DiscountKind  *enum.DiscountKind
	Template      *enum.Template
	PaymentMode   *string
	Notes         *string
}

// UpdateDocument updates a document and recomputes all derived amounts
func (s *DocumentService) UpdateDocument(ctx context.Context, input *UpdateDocumentInput) (*entity.Document, error) {
	document, err := s.documentRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, apperror.NewNotFoundError("Document")
	}
	if document.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	settings, err := s.requireSettings(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.IssueDate != nil {
		document.IssueDate = *input.IssueDate
	}
	if input.DueDate != nil {
		document.DueDate = *input.DueDate
	}
	if input.DiscountValue != nil {
		document.DiscountValue = *input.DiscountValue
	}
	if input.DiscountKind != nil {
		document.DiscountKind = *input.DiscountKind
	}
	if input.Template != nil {
		document.Template = *input.Template
	}
	if input.PaymentMode != nil {
		document.PaymentMode = input.PaymentMode
	}
	if input.Notes != nil {
		document.Notes = input.Notes
	}

	if input.Items != nil {
		items, _, err := s.buildItems(input.Items)
		if err != nil {
			return nil, err
		}
		document.Items = items
	}
	if len(document.Items) == 0 {
		return nil, apperror.NewBadRequestError("A document needs at least one line item")
	}

	totals, err := billing.Aggregate(document.LineItems(), document.Discount(),
		document.Customer.State, settings.CompanyState)
	if err != nil {
		return nil, err
	}
	document.ApplyTotals(totals)

	if err := s.documentRepo.Update(ctx, document); err != nil {
		return nil, err
	}

	// Keep the ledger aligned with the new grand total.
	if document.Type.IsBillable() {
		record, err := s.paymentRepo.GetRecordByDocumentID(ctx, document.ID)
		if err != nil {
			return nil, err
		}
		if record != nil {
			record.TotalAmount = document.GrandTotal
			record.RemainingAmount = document.GrandTotal.Sub(record.PaidAmount)
			record.RefreshStatus(time.Now())
			if err := s.paymentRepo.UpdateRecord(ctx, record); err != nil {
				return nil, err
			}
		}
	}

	return document, nil
}

// DeleteDocument deletes a document
func (s *DocumentService) DeleteDocument(ctx context.Context, userID, id uuid.UUID) error {
	document, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if document == nil {
		return apperror.NewNotFoundError("Document")
	}
	if document.UserID != userID {
		return apperror.ErrForbidden
	}

	return s.documentRepo.Delete(ctx, id)
}

// GeneratePDF renders the document with its stored template, or with the
// override when one is given. It returns the PDF bytes and the download
// file name.
func (s *DocumentService) GeneratePDF(ctx context.Context, userID, id uuid.UUID, override *enum.Template) ([]byte, string, error) {
	document, err := s.GetDocument(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}

	settings, err := s.requireSettings(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	template := document.Template
	if override != nil {
		template = *override
	}

	data := s.documentData(document)
	pdfBytes, err := s.render(settings.Company(), data, pdf.StyleFor(template))
	if err != nil {
		return nil, "", err
	}

	return pdfBytes, data.FileName(), nil
}

// EmailDocument renders the document and mails it to the given address, or
// to the customer's address when none is given.
func (s *DocumentService) EmailDocument(ctx context.Context, userID, id uuid.UUID, to string) error {
	document, err := s.GetDocument(ctx, userID, id)
	if err != nil {
		return err
	}

	if to == "" {
		if document.Customer.Email == nil || *document.Customer.Email == "" {
			return apperror.NewBadRequestError("Customer has no email address on file")
		}
		to = *document.Customer.Email
	}

	settings, err := s.requireSettings(ctx, userID)
	if err != nil {
		return err
	}

	data := s.documentData(document)
	pdfBytes, err := s.render(settings.Company(), data, pdf.StyleFor(document.Template))
	if err != nil {
		return err
	}

	return s.mailer.SendDocumentEmail(email.DocumentEmail{
		To:            to,
		CustomerName:  document.Customer.Name,
		CompanyName:   settings.CompanyName,
		DocumentTitle: document.Type.Title(),
		Number:        document.Number,
		AmountDue:     "Rs. " + billing.FormatINR(document.GrandTotal),
		FileName:      data.FileName(),
		PDF:           pdfBytes,
	})
}

// documentData assembles the render-ready snapshot from the stored document
func (s *DocumentService) documentData(document *entity.Document) *billing.DocumentData {
	var paymentMode string
	if document.PaymentMode != nil {
		paymentMode = *document.PaymentMode
	}
	var notes string
	if document.Notes != nil {
		notes = *document.Notes
	}

	return &billing.DocumentData{
		Number:      document.Number,
		Type:        document.Type,
		IssueDate:   document.IssueDate,
		DueDate:     document.DueDate,
		Customer:    document.Customer.BillingInfo(),
		Items:       document.LineItems(),
		Totals:      document.Totals(),
		PaymentMode: paymentMode,
		Notes:       notes,
	}
}

func (s *DocumentService) requireSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil || settings.CompanyName == "" || settings.CompanyState == "" {
		return nil, apperror.NewUnprocessableError("Company profile is incomplete; set the company name and state in settings first")
	}
	return settings, nil
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
