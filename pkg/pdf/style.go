package pdf

import (
	"github.com/bizmanager/backend/internal/domain/enum"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Style describes everything that varies between the document templates:
// colors, fonts, and which optional sections are rendered. The render
// pipeline itself is shared; there is exactly one code path per stage.
type Style struct {
	Name string

	Primary  *props.Color
	Accent   *props.Color
	Muted    *props.Color
	HeaderBg *props.Color
	TableBg  *props.Color
	TableFg  *props.Color

	FontFamily string
	BaseSize   float64
	TitleSize  float64

	// Optional stages.
	ShowLogo          bool
	ShowCompliance    bool // GSTIN/PAN/CIN block in the header
	ShowMetaBox       bool // document number/date/place-of-supply box
	ShowItemDiscounts bool // per-line discount column
	ShowHSN           bool
	ShowTaxSummary    bool // per-line HSN tax summary table
	ShowBankDetails   bool
	ShowSignatures    bool
	ShowTerms         bool
	ShowWords         bool // amount in words under the totals box
}

var (
	colorBlack = &props.Color{Red: 33, Green: 33, Blue: 33}
	colorGray  = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite = &props.Color{Red: 255, Green: 255, Blue: 255}

	blueDark   = &props.Color{Red: 41, Green: 128, Blue: 185}
	slate      = &props.Color{Red: 52, Green: 73, Blue: 94}
	redBadge   = &props.Color{Red: 220, Green: 53, Blue: 69}
	tealAccent = &props.Color{Red: 22, Green: 160, Blue: 133}
	lightGray  = &props.Color{Red: 240, Green: 240, Blue: 240}
	saffron    = &props.Color{Red: 255, Green: 153, Blue: 0}
)

var styles = map[enum.Template]Style{
	enum.TemplateProfessional: {
		Name:    "professional",
		Primary: blueDark, Accent: slate, Muted: colorGray,
		HeaderBg: blueDark, TableBg: slate, TableFg: colorWhite,
		FontFamily: "helvetica", BaseSize: 9, TitleSize: 16,
		ShowLogo: true, ShowMetaBox: true, ShowItemDiscounts: true,
		ShowHSN: true, ShowBankDetails: true, ShowSignatures: true,
		ShowTerms: true, ShowWords: true,
	},
	enum.TemplateModern: {
		Name:    "modern",
		Primary: tealAccent, Accent: slate, Muted: colorGray,
		HeaderBg: tealAccent, TableBg: tealAccent, TableFg: colorWhite,
		FontFamily: "helvetica", BaseSize: 9, TitleSize: 18,
		ShowLogo: true, ShowMetaBox: true,
		ShowTerms: true, ShowWords: true,
	},
	enum.TemplateMinimal: {
		Name:    "minimal",
		Primary: colorBlack, Accent: colorBlack, Muted: colorGray,
		HeaderBg: colorWhite, TableBg: lightGray, TableFg: colorBlack,
		FontFamily: "helvetica", BaseSize: 9, TitleSize: 14,
	},
	enum.TemplateDetailed: {
		Name:    "detailed",
		Primary: slate, Accent: slate, Muted: colorGray,
		HeaderBg: slate, TableBg: slate, TableFg: colorWhite,
		FontFamily: "helvetica", BaseSize: 8, TitleSize: 15,
		ShowLogo: true, ShowMetaBox: true, ShowItemDiscounts: true,
		ShowHSN: true, ShowTaxSummary: true, ShowBankDetails: true,
		ShowSignatures: true, ShowTerms: true, ShowWords: true,
	},
	enum.TemplateGSTCompliant: {
		Name:    "gst_compliant",
		Primary: blueDark, Accent: redBadge, Muted: colorGray,
		HeaderBg: lightGray, TableBg: slate, TableFg: colorWhite,
		FontFamily: "helvetica", BaseSize: 8, TitleSize: 16,
		ShowLogo: true, ShowCompliance: true, ShowMetaBox: true,
		ShowItemDiscounts: true, ShowHSN: true, ShowTaxSummary: true,
		ShowBankDetails: true, ShowSignatures: true, ShowTerms: true,
		ShowWords: true,
	},
	enum.TemplateGovernment: {
		Name:    "government",
		Primary: colorBlack, Accent: saffron, Muted: colorGray,
		HeaderBg: colorWhite, TableBg: lightGray, TableFg: colorBlack,
		FontFamily: "helvetica", BaseSize: 9, TitleSize: 16,
		ShowCompliance: true, ShowMetaBox: true, ShowHSN: true,
		ShowSignatures: true, ShowTerms: true, ShowWords: true,
	},
}

// StyleFor returns the style descriptor for a template. Unknown templates
// get the professional style.
func StyleFor(t enum.Template) Style {
	if s, ok := styles[t]; ok {
		return s
	}
	return styles[enum.TemplateProfessional]
}
