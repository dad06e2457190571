package service

import (
	"context"
	"strings"
	"testing"
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Fakes ───────────────────────────────────────────────────────────────────

type fakeDocumentRepo struct {
	docs map[uuid.UUID]*entity.Document
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[uuid.UUID]*entity.Document)}
}

func (r *fakeDocumentRepo) Create(_ context.Context, d *entity.Document) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	for i := range d.Items {
		if d.Items[i].ID == uuid.Nil {
			d.Items[i].ID = uuid.New()
		}
		d.Items[i].DocumentID = d.ID
	}
	r.docs[d.ID] = d
	return nil
}

func (r *fakeDocumentRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	return r.docs[id], nil
}

func (r *fakeDocumentRepo) GetByNumber(_ context.Context, number string) (*entity.Document, error) {
	for _, d := range r.docs {
		if d.Number == number {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDocumentRepo) Update(_ context.Context, d *entity.Document) error {
	r.docs[d.ID] = d
	return nil
}

func (r *fakeDocumentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.docs, id)
	return nil
}

func (r *fakeDocumentRepo) List(_ context.Context, userID uuid.UUID, _ *repository.DocumentFilterParams) ([]entity.Document, int64, error) {
	var out []entity.Document
	for _, d := range r.docs {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeDocumentRepo) CountByType(_ context.Context, userID uuid.UUID) (map[enum.DocumentType]int64, error) {
	counts := make(map[enum.DocumentType]int64)
	for _, d := range r.docs {
		if d.UserID == userID {
			counts[d.Type]++
		}
	}
	return counts, nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) GetByPhone(_ context.Context, userID uuid.UUID, phone string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.UserID == userID && c.Phone == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(_ context.Context, _ uuid.UUID, _ *pagination.PaginationParams, _ string) ([]entity.Customer, int64, error) {
	return nil, 0, nil
}

func (r *fakeCustomerRepo) ListWithCursor(_ context.Context, _ uuid.UUID, _ *pagination.CursorParams, _ string) ([]entity.Customer, error) {
	return nil, nil
}

func (r *fakeCustomerRepo) Count(_ context.Context, _ uuid.UUID) (int64, error) {
	return int64(len(r.customers)), nil
}

type fakeProductRepo struct {
	stockAdjustments map[uuid.UUID]int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{stockAdjustments: make(map[uuid.UUID]int)}
}

func (r *fakeProductRepo) Create(_ context.Context, _ *entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(_ context.Context, _ uuid.UUID) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) GetByIDs(_ context.Context, _ []uuid.UUID) ([]entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Update(_ context.Context, _ *entity.Product) error { return nil }
func (r *fakeProductRepo) Delete(_ context.Context, _ uuid.UUID) error       { return nil }
func (r *fakeProductRepo) List(_ context.Context, _ uuid.UUID, _ *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return nil, 0, nil
}
func (r *fakeProductRepo) GetLowStock(_ context.Context, _ uuid.UUID) ([]entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) AdjustStock(_ context.Context, id uuid.UUID, delta int) error {
	r.stockAdjustments[id] += delta
	return nil
}

type fakePaymentRepo struct {
	records  map[uuid.UUID]*entity.PaymentRecord
	payments []entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{records: make(map[uuid.UUID]*entity.PaymentRecord)}
}

func (r *fakePaymentRepo) CreateRecord(_ context.Context, rec *entity.PaymentRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	r.records[rec.ID] = rec
	return nil
}

func (r *fakePaymentRepo) GetRecordByID(_ context.Context, id uuid.UUID) (*entity.PaymentRecord, error) {
	return r.records[id], nil
}

func (r *fakePaymentRepo) GetRecordByDocumentID(_ context.Context, documentID uuid.UUID) (*entity.PaymentRecord, error) {
	for _, rec := range r.records {
		if rec.DocumentID == documentID {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) UpdateRecord(_ context.Context, rec *entity.PaymentRecord) error {
	r.records[rec.ID] = rec
	return nil
}

func (r *fakePaymentRepo) ListRecords(_ context.Context, _ uuid.UUID, _ *repository.PaymentFilterParams) ([]entity.PaymentRecord, int64, error) {
	return nil, 0, nil
}

func (r *fakePaymentRepo) AddPayment(_ context.Context, rec *entity.PaymentRecord, p *entity.Payment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.payments = append(r.payments, *p)
	r.records[rec.ID] = rec
	return nil
}

func (r *fakePaymentRepo) Summary(_ context.Context, userID uuid.UUID) (*repository.PaymentSummary, error) {
	summary := &repository.PaymentSummary{}
	for _, rec := range r.records {
		if rec.UserID != userID {
			continue
		}
		summary.TotalBilled = summary.TotalBilled.Add(rec.TotalAmount)
		summary.TotalCollected = summary.TotalCollected.Add(rec.PaidAmount)
		summary.TotalPending = summary.TotalPending.Add(rec.RemainingAmount)
		if rec.Status == enum.PaymentStatusOverdue {
			summary.OverdueCount++
		}
	}
	return summary, nil
}

func (r *fakePaymentRepo) ListDueBefore(_ context.Context, userID uuid.UUID) ([]entity.PaymentRecord, error) {
	var out []entity.PaymentRecord
	now := time.Now()
	for _, rec := range r.records {
		if rec.UserID != userID {
			continue
		}
		if rec.Status != enum.PaymentStatusPending && rec.Status != enum.PaymentStatusPartial {
			continue
		}
		if rec.DueDate.Before(now) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

type fakeSettingsRepo struct {
	settings *entity.UserSettings
}

func (r *fakeSettingsRepo) GetByUserID(_ context.Context, _ uuid.UUID) (*entity.UserSettings, error) {
	return r.settings, nil
}

func (r *fakeSettingsRepo) Create(_ context.Context, s *entity.UserSettings) error {
	r.settings = s
	return nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, s *entity.UserSettings) error {
	r.settings = s
	return nil
}

type fakeMailer struct {
	sent []email.DocumentEmail
}

func (m *fakeMailer) SendDocumentEmail(msg email.DocumentEmail) error {
	m.sent = append(m.sent, msg)
	return nil
}

func fakeRender(_ billing.Company, _ *billing.DocumentData, _ pdf.Style) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

// ── Fixtures ────────────────────────────────────────────────────────────────

type documentServiceFixture struct {
	svc      *DocumentService
	docRepo  *fakeDocumentRepo
	custRepo *fakeCustomerRepo
	prodRepo *fakeProductRepo
	payRepo  *fakePaymentRepo
	mailer   *fakeMailer
	userID   uuid.UUID
	customer *entity.Customer
}

func newDocumentServiceFixture(t *testing.T, customerState string) *documentServiceFixture {
	t.Helper()

	userID := uuid.New()
	custRepo := newFakeCustomerRepo()
	customerEmail := "buyer@example.in"
	customer := &entity.Customer{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Sharma Constructions",
		Phone:  "+91 91234 56789",
		Email:  &customerEmail,
		State:  customerState,
	}
	custRepo.customers[customer.ID] = customer

	settingsRepo := &fakeSettingsRepo{settings: &entity.UserSettings{
		ID:              uuid.New(),
		UserID:          userID,
		CompanyName:     "Acme Traders Pvt Ltd",
		CompanyState:    "Maharashtra",
		CompanyEmail:    "billing@acmetraders.in",
		GSTIN:           "27ABCDE1234F1Z5",
		DefaultTemplate: enum.TemplateProfessional,
		InvoiceDueDays:  30,
	}}

	docRepo := newFakeDocumentRepo()
	prodRepo := newFakeProductRepo()
	payRepo := newFakePaymentRepo()
	mailer := &fakeMailer{}

	svc := NewDocumentService(docRepo, custRepo, prodRepo, payRepo, settingsRepo, fakeRender, mailer)

	return &documentServiceFixture{
		svc:      svc,
		docRepo:  docRepo,
		custRepo: custRepo,
		prodRepo: prodRepo,
		payRepo:  payRepo,
		mailer:   mailer,
		userID:   userID,
		customer: customer,
	}
}

func invoiceInput(f *documentServiceFixture) *CreateDocumentInput {
	return &CreateDocumentInput{
		UserID:     f.userID,
		CustomerID: f.customer.ID,
		Type:       enum.DocumentTypeInvoice,
		Items: []DocumentItemInput{
			{
				Name:     "Steel Pipes 2 inch",
				Quantity: decimal.NewFromInt(2),
				Rate:     decimal.NewFromInt(45000),
				TaxRate:  decimal.NewFromInt(18),
			},
		},
	}
}

// ── Tests ───────────────────────────────────────────────────────────────────

func TestCreateDocumentIntraState(t *testing.T) {
	f := newDocumentServiceFixture(t, "Maharashtra")

	doc, err := f.svc.CreateDocument(context.Background(), invoiceInput(f))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc.Number, "INV-"))
	assert.True(t, doc.Subtotal.Equal(decimal.NewFromInt(90000)), "subtotal %s", doc.Subtotal)
	assert.True(t, doc.CGST.Equal(decimal.NewFromInt(8100)), "cgst %s", doc.CGST)
	assert.True(t, doc.SGST.Equal(decimal.NewFromInt(8100)), "sgst %s", doc.SGST)
	assert.True(t, doc.IGST.IsZero())
	assert.True(t, doc.GrandTotal.Equal(decimal.NewFromInt(106200)), "grand total %s", doc.GrandTotal)
}

func TestCreateDocumentInterState(t *testing.T) {
	f := newDocumentServiceFixture(t, "Karnataka")

	doc, err := f.svc.CreateDocument(context.Background(), invoiceInput(f))
	require.NoError(t, err)

	assert.True(t, doc.CGST.IsZero())
	assert.True(t, doc.SGST.IsZero())
	assert.True(t, doc.IGST.Equal(decimal.NewFromInt(16200)), "igst %s", doc.IGST)
	assert.True(t, doc.GrandTotal.Equal(decimal.NewFromInt(106200)))
}

func TestCreateInvoiceSeedsPendingPaymentRecord(t *testing.T) {
	f := newDocumentServiceFixture(t, "Maharashtra")

	doc, err := f.svc.CreateDocument(context.Background(), invoiceInput(f))
	require.NoError(t, err)

	record, err := f.payRepo.GetRecordByDocumentID(context.Background(), doc.ID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, enum.PaymentStatusPending, record.Status)
	assert.True(t, record.TotalAmount.Equal(doc.GrandTotal))
	assert.True(t, record.RemainingAmount.Equal(doc.GrandTotal))
	assert.True(t, record.PaidAmount.IsZero())
}

func TestCreateReceiptSeedsSettledPaymentRecord(t *testing.T) {
	f := newDocumentServiceFixture(t, "Maharashtra")
	input := invoiceInput(f)
	input.Type = enum.DocumentTypeReceipt

	doc, err := f.svc.CreateDocument(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc.Number, "REC-"))

	record, err := f.payRepo.GetRecordByDocumentID(context.Background(), doc.ID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, enum.PaymentStatusPaid, record.Status)
	assert.True(t, record.RemainingAmount.IsZero())
	assert.True(t, record.PaidAmount.Equal(doc.GrandTotal))
}

func TestCreateQuotationSkipsPaymentRecord(t *testing.T) {
	f := newDocumentServiceFixture(t, "Maharashtra")
	input := invoiceInput(f)
	input.Type = enum.DocumentTypeQuotation

	doc, err := f.svc.CreateDocument(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc.Number, "QUO-"))

	record, err := f.payRepo.GetRecordByDocumentID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestCreateDocumentReducesStock(t *testing.T) {
	f := newDocumentServiceFixture(t, "Maharashtra")
	productID := uuid.New()
	input := invoiceInput(f)
	input.Items[0].ProductID = &productID

	_, err := f.svc.CreateDocument(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, -2, f.prodRepo.stockAdjustments[productID])
}

func TestCreateDocumentRequiresItems(t *testing.T) {
	f := newDocumentServiceFixture(t, "Maharashtra")
	input := invoiceInput(f)
	input.Items = nil

	_, err := f.svc.CreateDocument(context.Background(), input)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestCreateDocumentUnknownCustomer(t *testing.T) {
	f := newDocumentServiceFixture(t, "Maharashtra")
	input := invoiceInput(f)
	input.CustomerID = uuid.New()

	_, err := f.svc.CreateDocument(context.Background(), input)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.Code)
}

func TestCreateDocumentDiscountExceedsSubtotal(t *testing.T) {
	f := newDocumentServiceFixture(t, "Maharashtra")
	input := invoiceInput(f)
	input.DiscountKind = enum.DiscountKindAmount
	input.DiscountValue = decimal.NewFromInt(100000)

	_, err := f.svc.CreateDocument(context.Background(), input)
	require.ErrorIs(t, err, billing.ErrDiscountExceedsSubtotal)
}

func TestCreateDocumentIncompleteProfile(t *testing.T) {
	f := newDocumentServiceFixture(t, "Maharashtra")
	f.svc.settingsRepo.(*fakeSettingsRepo).settings.CompanyState = ""

	_, err := f.svc.CreateDocument(context.Background(), invoiceInput(f))
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 422, appErr.Code)
}

func TestGeneratePDF(t *testing.T) {
	f := newDocumentServiceFixture(t, "Maharashtra")

	doc, err := f.svc.CreateDocument(context.Background(), invoiceInput(f))
	require.NoError(t, err)

	data, fileName, err := f.svc.GeneratePDF(context.Background(), f.userID, doc.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), data)
	assert.Equal(t, "Tax Invoice-"+doc.Number+".pdf", fileName)
}

func TestGeneratePDFWrongUser(t *testing.T) {
	f := newDocumentServiceFixture(t, "Maharashtra")

	doc, err := f.svc.CreateDocument(context.Background(), invoiceInput(f))
	require.NoError(t, err)

	_, _, err = f.svc.GeneratePDF(context.Background(), uuid.New(), doc.ID, nil)
	require.Error(t, err)
}

func TestEmailDocumentFallsBackToCustomerAddress(t *testing.T) {
	f := newDocumentServiceFixture(t, "Maharashtra")

	doc, err := f.svc.CreateDocument(context.Background(), invoiceInput(f))
	require.NoError(t, err)

	require.NoError(t, f.svc.EmailDocument(context.Background(), f.userID, doc.ID, ""))
	require.Len(t, f.mailer.sent, 1)
	sent := f.mailer.sent[0]
	assert.Equal(t, "buyer@example.in", sent.To)
	assert.Equal(t, doc.Number, sent.Number)
	assert.Equal(t, "Rs. 1,06,200.00", sent.AmountDue)
	assert.Equal(t, []byte("%PDF-fake"), sent.PDF)
}

func TestEmailDocumentNoAddress(t *testing.T) {
	f := newDocumentServiceFixture(t, "Maharashtra")
	f.customer.Email = nil

	doc, err := f.svc.CreateDocument(context.Background(), invoiceInput(f))
	require.NoError(t, err)

	err = f.svc.EmailDocument(context.Background(), f.userID, doc.ID, "")
	require.Error(t, err)
}

func TestUpdateDocumentRealignsLedger(t *testing.T) {
	f := newDocumentServiceFixture(t, "Maharashtra")

	doc, err := f.svc.CreateDocument(context.Background(), invoiceInput(f))
	require.NoError(t, err)

	updated, err := f.svc.UpdateDocument(context.Background(), &UpdateDocumentInput{
		UserID: f.userID,
		ID:     doc.ID,
		Items: []DocumentItemInput{
			{
				Name:     "Steel Pipes 2 inch",
				Quantity: decimal.NewFromInt(1),
				Rate:     decimal.NewFromInt(45000),
				TaxRate:  decimal.NewFromInt(18),
			},
		},
	})
	require.NoError(t, err)
	assert.True(t, updated.GrandTotal.Equal(decimal.NewFromInt(53100)), "grand total %s", updated.GrandTotal)

	record, err := f.payRepo.GetRecordByDocumentID(context.Background(), doc.ID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.True(t, record.TotalAmount.Equal(decimal.NewFromInt(53100)))
	assert.True(t, record.RemainingAmount.Equal(decimal.NewFromInt(53100)))
}

func TestDeleteDocumentForbiddenForOtherUser(t *testing.T) {
	f := newDocumentServiceFixture(t, "Maharashtra")

	doc, err := f.svc.CreateDocument(context.Background(), invoiceInput(f))
	require.NoError(t, err)

	err = f.svc.DeleteDocument(context.Background(), uuid.New(), doc.ID)
	require.Error(t, err)

	require.NoError(t, f.svc.DeleteDocument(context.Background(), f.userID, doc.ID))
}
