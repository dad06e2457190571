// Package pdf renders business documents (invoices, quotations, receipts and
// friends) to PDF using maroto. One pipeline serves every template: the
// stages are fixed and a Style value decides colors, fonts and which optional
// stages appear.
package pdf

import (
	"bytes"
	"fmt"
	stdimage "image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bizmanager/backend/internal/domain/billing"
	"github.com/bizmanager/backend/internal/domain/enum"
	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	img "github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Renderer draws documents for one company. The company value is immutable
// for the life of the renderer and safe for concurrent Render calls; every
// call builds its own drawing surface.
type Renderer struct {
	company billing.Company
}

// NewRenderer creates a renderer for the given seller identity.
func NewRenderer(company billing.Company) *Renderer {
	return &Renderer{company: company}
}

// Render draws the document with the given style and returns the PDF bytes.
// Missing optional data (logo, bank details, customer fields) degrades to
// omitted sections or placeholder text; an empty item list still produces a
// valid document.
func (r *Renderer) Render(doc *billing.DocumentData, style Style) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: style.FontFamily, Size: style.BaseSize}).
		WithTitle(doc.Type.Title()+" "+doc.Number, true).
		WithAuthor(r.company.Name, true).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterFooter(r.pageFooterRow(style)); err != nil {
		return nil, fmt.Errorf("pdf: register footer: %w", err)
	}

	m.AddRows(r.headerRows(doc, style)...)
	if style.ShowMetaBox {
		m.AddRows(r.metaRows(doc, style)...)
	}
	m.AddRows(r.customerRows(doc, style)...)
	m.AddRows(r.itemsTableRows(doc, style)...)
	m.AddRows(r.totalsRows(doc, style)...)
	if style.ShowTaxSummary {
		m.AddRows(r.taxSummaryRows(doc, style)...)
	}
	m.AddRows(r.footerRows(doc, style)...)

	rendered, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate %s: %w", doc.Number, err)
	}
	return rendered.GetBytes(), nil
}

// RenderToFile renders the document and writes it into dir using the
// "{title}-{number}.pdf" naming convention. It returns the full path.
func (r *Renderer) RenderToFile(doc *billing.DocumentData, style Style, dir string) (string, error) {
	data, err := r.Render(doc, style)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, doc.FileName())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", path, err)
	}
	return path, nil
}

// ── Stages ──────────────────────────────────────────────────────────────────

func (r *Renderer) headerRows(doc *billing.DocumentData, style Style) []core.Row {
	identity := col.New(7).Add(
		text.New(r.company.Name, props.Text{
			Style: fontstyle.Bold, Size: style.TitleSize, Color: style.Primary, Top: 1,
		}),
		text.New(r.company.Address, props.Text{Size: style.BaseSize, Top: 9, Color: style.Muted}),
		text.New(fmt.Sprintf("Phone: %s | Email: %s", r.company.Phone, r.company.Email),
			props.Text{Size: style.BaseSize, Top: 14, Color: style.Muted}),
	)

	badge := col.New(3).Add(
		text.New(doc.Type.DisplayTitle(), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: style.Accent, Top: 2,
		}),
		text.New(doc.Number, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 9,
		}),
	)

	header := row.New(20)
	if style.HeaderBg != nil {
		header.WithStyle(&props.Cell{BackgroundColor: style.HeaderBg})
	}
	if style.ShowLogo {
		header.Add(r.logoCol(style), identity, badge)
	} else {
		header.Add(col.New(2), identity, badge)
	}

	rows := []core.Row{header}

	if style.ShowCompliance {
		compliance := fmt.Sprintf("GSTIN: %s", r.company.GSTIN)
		if r.company.PAN != "" {
			compliance += " | PAN: " + r.company.PAN
		}
		if r.company.CIN != "" {
			compliance += " | CIN: " + r.company.CIN
		}
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(compliance, props.Text{Size: style.BaseSize, Color: style.Muted, Top: 1}),
		)))
	}

	rows = append(rows, line.NewRow(2, props.Line{Color: style.Primary, Thickness: 0.5}))
	return rows
}

// logoCol embeds the company logo when the bytes decode as PNG or JPEG.
// Anything else renders the placeholder text instead of failing the render.
func (r *Renderer) logoCol(style Style) core.Col {
	if ext, ok := detectImage(r.company.Logo); ok {
		return img.NewFromBytesCol(2, r.company.Logo, ext, props.Rect{Percent: 90, Center: true})
	}
	return col.New(2).Add(text.New("LOGO", props.Text{
		Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: style.Muted, Top: 7,
	}))
}

func (r *Renderer) metaRows(doc *billing.DocumentData, style Style) []core.Row {
	left := []core.Component{
		text.New(fmt.Sprintf("%s No: %s", doc.Type.Prefix(), doc.Number),
			props.Text{Size: style.BaseSize, Top: 1}),
		text.New("Date: "+doc.IssueDate.Format("02/01/2006"),
			props.Text{Size: style.BaseSize, Top: 6}),
	}
	switch doc.Type {
	case enum.DocumentTypeInvoice:
		left = append(left, text.New("Due Date: "+doc.DueDate.Format("02/01/2006"),
			props.Text{Size: style.BaseSize, Top: 11}))
	case enum.DocumentTypeQuotation:
		left = append(left, text.New("Valid Till: "+doc.DueDate.Format("02/01/2006"),
			props.Text{Size: style.BaseSize, Top: 11}))
	}

	right := []core.Component{
		text.New("Place of Supply: "+doc.PlaceOfSupply(r.company.State),
			props.Text{Size: style.BaseSize, Top: 1}),
	}
	if doc.PaymentMode != "" {
		right = append(right, text.New("Payment Mode: "+doc.PaymentMode,
			props.Text{Size: style.BaseSize, Top: 6}))
	}

	return []core.Row{
		row.New(16).Add(
			col.New(6).Add(left...),
			col.New(6).Add(right...),
		),
		line.NewRow(2, props.Line{Color: style.Muted, Thickness: 0.3}),
	}
}

func (r *Renderer) customerRows(doc *billing.DocumentData, style Style) []core.Row {
	c := doc.Customer

	billTo := []core.Component{
		text.New("BILL TO", props.Text{Style: fontstyle.Bold, Size: style.BaseSize, Color: style.Primary, Top: 1}),
		text.New(c.Name, props.Text{Style: fontstyle.Bold, Size: style.BaseSize + 1, Top: 6}),
	}
	top := 11.0
	if addr := joinNonEmpty(", ", c.Address, c.City, c.State); addr != "" {
		if c.Pincode != "" {
			addr += " - " + c.Pincode
		}
		billTo = append(billTo, text.New(addr, props.Text{Size: style.BaseSize, Top: top, Color: style.Muted}))
		top += 5
	}
	billTo = append(billTo, text.New("Phone: "+c.Phone, props.Text{Size: style.BaseSize, Top: top}))
	if c.Email != "" {
		billTo = append(billTo, text.New("Email: "+c.Email, props.Text{Size: style.BaseSize, Top: top + 5}))
	}

	shipTo := []core.Component{
		text.New("SHIP TO", props.Text{Style: fontstyle.Bold, Size: style.BaseSize, Color: style.Primary, Top: 1}),
	}
	if c.GSTIN != "" {
		shipTo = append(shipTo,
			text.New("GSTIN: "+c.GSTIN, props.Text{Size: style.BaseSize, Top: 6}),
			text.New("State: "+c.State, props.Text{Size: style.BaseSize, Top: 11}),
			text.New("Customer Type: "+c.Type.DisplayLabel(), props.Text{Size: style.BaseSize, Top: 16}),
		)
	} else {
		shipTo = append(shipTo,
			text.New("Same as billing address", props.Text{Size: style.BaseSize, Top: 6}),
			text.New("State: "+c.State, props.Text{Size: style.BaseSize, Top: 11}),
			text.New("Unregistered Customer", props.Text{Size: style.BaseSize, Top: 16, Color: style.Muted}),
		)
	}

	return []core.Row{
		row.New(26).Add(
			col.New(6).Add(billTo...),
			col.New(6).Add(shipTo...),
		),
		line.NewRow(2, props.Line{Color: style.Muted, Thickness: 0.3}),
	}
}

func (r *Renderer) itemsTableRows(doc *billing.DocumentData, style Style) []core.Row {
	itemSpan := 4
	if style.ShowItemDiscounts {
		itemSpan = 3
	}

	head := func(label string, span int, a align.Type) core.Col {
		return col.New(span).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: style.BaseSize, Align: a,
			Color: style.TableFg, Top: 2, Left: 1, Right: 1,
		}))
	}

	headerCols := []core.Col{
		head("#", 1, align.Center),
		head("Description of Goods/Services", itemSpan, align.Left),
		head("Qty", 1, align.Center),
		head("Rate", 2, align.Right),
	}
	if style.ShowItemDiscounts {
		headerCols = append(headerCols, head("Disc", 1, align.Center))
	}
	headerCols = append(headerCols,
		head("Tax", 2, align.Right),
		head("Total", 2, align.Right),
	)

	rows := []core.Row{
		row.New(8).WithStyle(&props.Cell{BackgroundColor: style.TableBg}).Add(headerCols...),
	}

	for i, item := range doc.Items {
		rows = append(rows, r.itemRow(i, item, itemSpan, style))
	}

	if len(doc.Items) == 0 {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("No items", props.Text{Size: style.BaseSize, Align: align.Center, Color: style.Muted, Top: 2}),
		)))
	}

	rows = append(rows, line.NewRow(2, props.Line{Color: style.Muted, Thickness: 0.3}))
	return rows
}

func (r *Renderer) itemRow(index int, item billing.LineItem, itemSpan int, style Style) core.Row {
	height := 7.0
	desc := []core.Component{
		text.New(item.Name, props.Text{Size: style.BaseSize, Top: 1, Left: 1}),
	}
	top := 5.0
	if item.Description != "" {
		desc = append(desc, text.New(item.Description, props.Text{
			Size: style.BaseSize - 1, Top: top, Left: 1, Color: style.Muted,
		}))
		top += 4
		height += 4
	}
	if style.ShowHSN && item.HSN != "" {
		desc = append(desc, text.New("HSN: "+item.HSN, props.Text{
			Size: style.BaseSize - 1, Top: top, Left: 1, Color: style.Muted,
		}))
		height += 4
	}

	qty := item.Quantity.String()
	if item.Unit != "" {
		qty += " " + item.Unit
	}

	cols := []core.Col{
		col.New(1).Add(text.New(fmt.Sprintf("%d", index+1),
			props.Text{Size: style.BaseSize, Align: align.Center, Top: 1})),
		col.New(itemSpan).Add(desc...),
		col.New(1).Add(text.New(qty,
			props.Text{Size: style.BaseSize, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(money(item.Rate),
			props.Text{Size: style.BaseSize, Align: align.Right, Top: 1, Right: 1})),
	}
	if style.ShowItemDiscounts {
		cols = append(cols, col.New(1).Add(text.New(item.DiscountPercent.String()+"%",
			props.Text{Size: style.BaseSize, Align: align.Center, Top: 1})))
	}
	cols = append(cols,
		col.New(2).Add(
			text.New(item.TaxPercent.String()+"%", props.Text{Size: style.BaseSize - 1, Align: align.Right, Top: 1, Right: 1}),
			text.New(money(item.TaxAmount), props.Text{Size: style.BaseSize - 1, Align: align.Right, Top: 5, Right: 1, Color: style.Muted}),
		),
		col.New(2).Add(text.New(money(item.FinalAmount),
			props.Text{Size: style.BaseSize, Align: align.Right, Top: 1, Right: 1})),
	)

	return row.New(height).Add(cols...)
}

func (r *Renderer) totalsRows(doc *billing.DocumentData, style Style) []core.Row {
	t := doc.Totals

	type entry struct {
		label, value string
	}
	entries := []entry{{"Subtotal:", money(t.Subtotal)}}
	if t.TotalDiscount.IsPositive() {
		entries = append(entries, entry{"Discount:", "-" + money(t.TotalDiscount)})
	}
	entries = append(entries, entry{"Taxable Amount:", money(t.TaxableAmount)})
	if t.GST.IsInterState() {
		entries = append(entries, entry{"IGST @ 18%:", money(t.GST.IGST)})
	} else {
		entries = append(entries,
			entry{"CGST @ 9%:", money(t.GST.CGST)},
			entry{"SGST @ 9%:", money(t.GST.SGST)},
		)
	}
	entries = append(entries, entry{"Total Tax:", money(t.GST.TotalGST)})

	labels := make([]core.Component, 0, len(entries)+1)
	values := make([]core.Component, 0, len(entries)+1)
	top := 1.0
	for _, e := range entries {
		labels = append(labels, text.New(e.label, props.Text{
			Size: style.BaseSize, Align: align.Right, Top: top, Right: 2,
		}))
		values = append(values, text.New(e.value, props.Text{
			Size: style.BaseSize, Align: align.Right, Top: top, Right: 1,
		}))
		top += 5
	}

	top += 2
	labels = append(labels, text.New("Grand Total:", props.Text{
		Style: fontstyle.Bold, Size: style.BaseSize + 2, Align: align.Right,
		Color: style.Primary, Top: top, Right: 2,
	}))
	values = append(values, text.New(money(t.GrandTotal), props.Text{
		Style: fontstyle.Bold, Size: style.BaseSize + 2, Align: align.Right,
		Color: style.Primary, Top: top, Right: 1,
	}))

	rows := []core.Row{
		row.New(top + 8).Add(
			col.New(4),
			col.New(4).Add(labels...),
			col.New(4).Add(values...),
		),
	}

	if style.ShowWords {
		rows = append(rows, row.New(9).Add(col.New(12).Add(
			text.New("Amount in Words:", props.Text{Style: fontstyle.Bold, Size: style.BaseSize, Top: 1}),
			text.New(billing.AmountInWords(t.GrandTotal), props.Text{Size: style.BaseSize, Top: 5, Color: style.Muted}),
		)))
	}

	rows = append(rows, line.NewRow(2, props.Line{Color: style.Muted, Thickness: 0.3}))
	return rows
}

// taxSummaryRows prints the per-line HSN tax summary. Every line's tax is
// shown halved into the CGST/SGST columns, even when the document-level split
// is IGST; this mirrors the template output the business signed off on and is
// deliberately left as-is.
func (r *Renderer) taxSummaryRows(doc *billing.DocumentData, style Style) []core.Row {
	head := func(label string, span int, a align.Type) core.Col {
		return col.New(span).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: style.BaseSize, Align: a,
			Color: style.TableFg, Top: 2, Left: 1, Right: 1,
		}))
	}

	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("TAX SUMMARY", props.Text{Style: fontstyle.Bold, Size: style.BaseSize + 1, Color: style.Primary, Top: 1}),
		)),
		row.New(7).WithStyle(&props.Cell{BackgroundColor: style.TableBg}).Add(
			head("HSN/SAC", 3, align.Left),
			head("Taxable Value", 3, align.Right),
			head("CGST @ 9%", 3, align.Right),
			head("SGST @ 9%", 3, align.Right),
		),
	}

	cell := func(value string, a align.Type) core.Component {
		return text.New(value, props.Text{Size: style.BaseSize, Align: a, Top: 1, Left: 1, Right: 1})
	}

	for _, item := range doc.Items {
		hsn := item.HSN
		if hsn == "" {
			hsn = "N/A"
		}
		half := item.TaxAmount.Div(two)
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(cell(hsn, align.Left)),
			col.New(3).Add(cell(money(item.Amount), align.Right)),
			col.New(3).Add(cell(money(half), align.Right)),
			col.New(3).Add(cell(money(half), align.Right)),
		))
	}

	rows = append(rows, line.NewRow(2, props.Line{Color: style.Muted, Thickness: 0.3}))
	return rows
}

func (r *Renderer) footerRows(doc *billing.DocumentData, style Style) []core.Row {
	var rows []core.Row

	if doc.Notes != "" {
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Notes:", props.Text{Style: fontstyle.Bold, Size: style.BaseSize, Top: 1}),
			text.New(doc.Notes, props.Text{Size: style.BaseSize, Top: 6, Color: style.Muted}),
		)))
	}

	if style.ShowBankDetails || style.ShowSignatures {
		var left, right []core.Component

		if style.ShowBankDetails && r.company.Bank != nil {
			bank := r.company.Bank
			left = append(left,
				text.New("BANK DETAILS", props.Text{Style: fontstyle.Bold, Size: style.BaseSize, Color: style.Primary, Top: 1}),
				text.New("Bank: "+bank.BankName, props.Text{Size: style.BaseSize, Top: 6}),
				text.New("A/c No: "+bank.AccountNumber, props.Text{Size: style.BaseSize, Top: 11}),
				text.New("IFSC: "+bank.IFSCCode, props.Text{Size: style.BaseSize, Top: 16}),
			)
		}

		if style.ShowSignatures {
			right = append(right,
				text.New("For "+strings.ToUpper(r.company.Name), props.Text{
					Style: fontstyle.Bold, Size: style.BaseSize, Align: align.Right, Top: 1,
				}),
				text.New("Authorized Signatory", props.Text{
					Size: style.BaseSize, Align: align.Right, Top: 18,
				}),
			)
		}

		if len(left) > 0 || len(right) > 0 {
			rows = append(rows, row.New(24).Add(
				col.New(6).Add(left...),
				col.New(6).Add(right...),
			))
		}
	}

	if style.ShowTerms {
		terms := doc.Terms
		if len(terms) == 0 {
			terms = defaultTerms(doc.Type)
		}
		components := []core.Component{
			text.New("Terms & Conditions:", props.Text{Style: fontstyle.Bold, Size: style.BaseSize, Top: 1}),
		}
		top := 5.0
		for i, term := range terms {
			components = append(components, text.New(fmt.Sprintf("%d. %s", i+1, term),
				props.Text{Size: style.BaseSize - 1, Top: top, Color: style.Muted}))
			top += 4
		}
		rows = append(rows, row.New(top+2).Add(col.New(12).Add(components...)))
	}

	return rows
}

func (r *Renderer) pageFooterRow(style Style) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(
			"Generated on "+time.Now().Format("02/01/2006 15:04"),
			props.Text{Size: 7, Color: style.Muted, Top: 1},
		)),
		col.New(6).Add(text.New(
			"This is a computer generated document",
			props.Text{Size: 7, Align: align.Right, Color: style.Muted, Top: 1},
		)),
	)
}

// ── Helpers ─────────────────────────────────────────────────────────────────

func money(amount decimal.Decimal) string {
	return "Rs. " + billing.FormatINR(amount)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// detectImage reports whether data decodes as an embeddable image and the
// matching maroto extension.
func detectImage(data []byte) (extension.Type, bool) {
	if len(data) == 0 {
		return "", false
	}
	_, format, err := stdimage.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", false
	}
	switch format {
	case "png":
		return extension.Png, true
	case "jpeg":
		return extension.Jpg, true
	}
	return "", false
}

func defaultTerms(t enum.DocumentType) []string {
	switch t {
	case enum.DocumentTypeQuotation:
		return []string{
			"This quotation is valid for 30 days from the date of issue",
			"Prices are subject to change without prior notice",
			"Payment terms: 50% advance, balance on delivery",
		}
	case enum.DocumentTypeInvoice:
		return []string{
			"Payment is due within 30 days of invoice date",
			"Interest @ 24% per annum will be charged on overdue amounts",
			"All disputes subject to local jurisdiction only",
			"This is a computer generated invoice and does not require physical signature",
		}
	default:
		return []string{
			"Goods once sold will not be taken back",
			"All disputes subject to local jurisdiction only",
		}
	}
}
