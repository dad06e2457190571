package pdf

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/bizmanager/backend/internal/domain/billing"
	"github.com/bizmanager/backend/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCompany() billing.Company {
	return billing.Company{
		Name:    "Acme Traders Pvt Ltd",
		Address: "12 MG Road, Pune, Maharashtra - 411001",
		State:   "Maharashtra",
		Phone:   "+91 98765 43210",
		Email:   "billing@acmetraders.in",
		GSTIN:   "27ABCDE1234F1Z5",
		PAN:     "ABCDE1234F",
		Bank: &billing.BankDetails{
			BankName:      "HDFC Bank",
			AccountNumber: "50100123456789",
			IFSCCode:      "HDFC0000123",
			Branch:        "Pune Camp",
		},
	}
}

func testDocument(t *testing.T) *billing.DocumentData {
	t.Helper()

	items := []billing.LineItem{
		billing.NewLineItem("1", "Steel Pipes 2 inch",
			decimal.NewFromInt(10), decimal.NewFromInt(4500),
			decimal.NewFromInt(10), decimal.NewFromInt(18)),
		billing.NewLineItem("2", "Installation Service",
			decimal.NewFromInt(1), decimal.NewFromInt(9000),
			decimal.Zero, decimal.NewFromInt(18)),
	}
	items[0].HSN = "7306"
	items[0].Unit = "pcs"
	items[0].Description = "ISI marked, 6 meter length"

	totals, err := billing.Aggregate(items, billing.DocumentDiscount{}, "Maharashtra", "Maharashtra")
	require.NoError(t, err)

	return &billing.DocumentData{
		Number:    "INV-123456789",
		Type:      enum.DocumentTypeInvoice,
		IssueDate: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
		Customer: billing.CustomerInfo{
			Name:    "Sharma Constructions",
			Phone:   "+91 91234 56789",
			Email:   "accounts@sharmaconstructions.in",
			Address: "45 FC Road",
			City:    "Pune",
			State:   "Maharashtra",
			Pincode: "411004",
			GSTIN:   "27FGHIJ5678K1Z3",
			Type:    enum.CustomerTypeBusiness,
		},
		Items:       items,
		Totals:      totals,
		PaymentMode: "Bank Transfer",
		Notes:       "Delivery within 7 working days.",
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	return buf.Bytes()
}

func TestRenderProducesPDF(t *testing.T) {
	r := NewRenderer(testCompany())

	data, err := r.Render(testDocument(t), StyleFor(enum.TemplateProfessional))
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF stream")
}

func TestRenderAllTemplates(t *testing.T) {
	r := NewRenderer(testCompany())
	doc := testDocument(t)

	templates := []enum.Template{
		enum.TemplateProfessional,
		enum.TemplateModern,
		enum.TemplateMinimal,
		enum.TemplateDetailed,
		enum.TemplateGSTCompliant,
		enum.TemplateGovernment,
	}
	for _, tmpl := range templates {
		t.Run(tmpl.String(), func(t *testing.T) {
			data, err := r.Render(doc, StyleFor(tmpl))
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
		})
	}
}

func TestRenderEmptyItems(t *testing.T) {
	r := NewRenderer(testCompany())
	doc := testDocument(t)
	doc.Items = nil
	totals, err := billing.Aggregate(nil, billing.DocumentDiscount{}, "Maharashtra", "Maharashtra")
	require.NoError(t, err)
	doc.Totals = totals

	data, err := r.Render(doc, StyleFor(enum.TemplateDetailed))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRenderWithValidLogo(t *testing.T) {
	company := testCompany()
	company.Logo = pngBytes(t)
	r := NewRenderer(company)

	data, err := r.Render(testDocument(t), StyleFor(enum.TemplateProfessional))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRenderWithMalformedLogoFallsBack(t *testing.T) {
	company := testCompany()
	company.Logo = []byte("definitely not an image")
	r := NewRenderer(company)

	data, err := r.Render(testDocument(t), StyleFor(enum.TemplateProfessional))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRenderInterStateDocument(t *testing.T) {
	r := NewRenderer(testCompany())
	doc := testDocument(t)
	doc.Customer.State = "Karnataka"
	totals, err := billing.Aggregate(doc.Items, billing.DocumentDiscount{}, "Karnataka", "Maharashtra")
	require.NoError(t, err)
	doc.Totals = totals
	require.True(t, totals.GST.IsInterState())

	data, err := r.Render(doc, StyleFor(enum.TemplateGSTCompliant))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRenderToFile(t *testing.T) {
	r := NewRenderer(testCompany())
	doc := testDocument(t)

	path, err := r.RenderToFile(doc, StyleFor(enum.TemplateMinimal), t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, path, "Tax Invoice-INV-123456789.pdf")
}

func TestDetectImage(t *testing.T) {
	_, ok := detectImage(nil)
	assert.False(t, ok)

	_, ok = detectImage([]byte{0x00, 0x01, 0x02})
	assert.False(t, ok)

	ext, ok := detectImage(pngBytes(t))
	assert.True(t, ok)
	assert.Equal(t, "png", string(ext))
}
