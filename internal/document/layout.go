package document

import (
	"strconv"
	"strings"
)

// Company is the issuer identity printed on the invoice.
type Company struct {
	Name    string
	Address string
	Email   string
	IFU     string
	VMCF    string
	Paypal  string
}

// LineItem is one billable row. Amount is the authoritative line total;
// quantity and unit price are display-only and never recomputed.
type LineItem struct {
	Description string
	Quantity    string
	UnitPrice   string
	Amount      string
}

// Invoice carries everything the layout needs besides the issuer.
type Invoice struct {
	Number        string
	Date          string
	ClientName    string
	ClientAddress string
	ClientCity    string
	Conditions    string
	Items         []LineItem
}

// Page geometry in millimeters.
const (
	PageWidth    = 210.0
	PageHeight   = 297.0
	MarginLeft   = 22.0
	MarginRight  = 22.0
	ContentWidth = PageWidth - MarginLeft - MarginRight

	DescX = MarginLeft + 4
	DescW = 76.0
	QtyX  = MarginLeft + 88
	UnitX = MarginLeft + 120
	AmtX  = MarginLeft + ContentWidth - 4

	// UsableBottom is the boundary below which no new table row may start.
	UsableBottom = 265.0
	// PostTableSpace is reserved after the last row for the totals,
	// conditions and payment blocks.
	PostTableSpace = 80.0

	TopMargin         = 25.0
	TableHeaderHeight = 10.0
	FooterRuleY       = 276.0
	FooterTextY       = 280.0

	gradientSteps = 40
)

var (
	teal      = RGB{46, 184, 184}
	paleTeal  = RGB{204, 234, 234}
	dark      = RGB{51, 51, 51}
	gray      = RGB{102, 102, 102}
	lightGray = RGB{136, 136, 136}
	white     = RGB{255, 255, 255}
	shadeBG   = RGB{245, 245, 245}
	rowLine   = RGB{230, 230, 230}
	ruleGray  = RGB{210, 210, 210}
	slate     = RGB{85, 85, 85}
)

const defaultConditions = "Paiement à réception"

type layout struct {
	measure Measurer
	pages   []Page
}

func (l *layout) page() *Page {
	return &l.pages[len(l.pages)-1]
}

func (l *layout) add(op Op) {
	p := l.page()
	p.Ops = append(p.Ops, op)
}

func (l *layout) addPage() float64 {
	l.pages = append(l.pages, Page{})
	return TopMargin
}

func (l *layout) text(x, y float64, s string, f Font, c RGB, a Align) {
	l.add(TextOp{X: x, Y: y, Text: s, Font: f, Color: c, Align: a})
}

// wrap greedily breaks text into lines no wider than width. Words wider
// than the column are hard-split so layout never stalls.
func (l *layout) wrap(text string, f Font, width float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := ""
	for _, w := range words {
		for l.measure.TextWidth(w, f) > width {
			// peel off the widest prefix that still fits
			runes := []rune(w)
			cut := len(runes)
			for cut > 1 && l.measure.TextWidth(string(runes[:cut]), f) > width {
				cut--
			}
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			lines = append(lines, string(runes[:cut]))
			w = string(runes[cut:])
			if w == "" {
				break
			}
		}
		if w == "" {
			continue
		}
		candidate := w
		if line != "" {
			candidate = line + " " + w
		}
		if l.measure.TextWidth(candidate, f) > width && line != "" {
			lines = append(lines, line)
			line = w
		} else {
			line = candidate
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func (l *layout) tableHeader(y float64) {
	l.add(RectOp{X: MarginLeft, Y: y, W: ContentWidth, H: TableHeaderHeight, Fill: teal})
	f := Font{Family: "helvetica", Style: StyleBold, Size: 9}
	l.text(DescX, y+6.5, "Description", f, white, AlignLeft)
	l.text(QtyX, y+6.5, "Quantité", f, white, AlignCenter)
	l.text(UnitX, y+6.5, "Prix unitaire €", f, white, AlignCenter)
	l.text(AmtX, y+6.5, "Montant €", f, white, AlignRight)
}

func (l *layout) divider(y float64) {
	segW := ContentWidth / gradientSteps
	for i := 0; i < gradientSteps; i++ {
		r := float64(i) / gradientSteps
		c := RGB{
			R: teal.R + int(float64(paleTeal.R-teal.R)*r+0.5),
			G: teal.G + int(float64(paleTeal.G-teal.G)*r+0.5),
			B: teal.B + int(float64(paleTeal.B-teal.B)*r+0.5),
		}
		x := MarginLeft + float64(i)*segW
		l.add(LineOp{X1: x, Y1: y, X2: x + segW, Y2: y, Width: 1, Color: c})
	}
}

// footerAll stamps the identical footer on every produced page.
func (l *layout) footerAll(company Company) {
	f := Font{Family: "helvetica", Style: StyleNormal, Size: 8}
	text := company.Name + ", " + company.Address
	for i := range l.pages {
		p := &l.pages[i]
		p.Ops = append(p.Ops,
			LineOp{X1: MarginLeft, Y1: FooterRuleY, X2: PageWidth - MarginRight, Y2: FooterRuleY, Width: 0.3, Color: ruleGray},
			TextOp{X: PageWidth / 2, Y: FooterTextY, Text: text, Font: f, Color: lightGray, Align: AlignCenter},
		)
	}
}

// Build lays out one invoice. It never fails: malformed values degrade to
// their documented placeholders and the returned document is always
// complete, with a footer on every page.
func Build(company Company, invoice Invoice, total float64, measure Measurer) Document {
	l := &layout{measure: measure}
	y := l.addPage()

	// issuer block
	l.text(MarginLeft, y, company.Name, Font{"helvetica", StyleBold, 11}, dark, AlignLeft)
	y += 5
	l.text(MarginLeft, y, company.Address, Font{"helvetica", StyleNormal, 9.5}, dark, AlignLeft)
	y += 5
	l.text(MarginLeft, y, company.Email, Font{"helvetica", StyleNormal, 9.5}, teal, AlignLeft)
	y += 8
	l.text(MarginLeft, y, "IFU : "+company.IFU, Font{"helvetica", StyleNormal, 9.5}, dark, AlignLeft)
	y += 4.5
	l.text(MarginLeft, y, "VMCF : "+company.VMCF, Font{"helvetica", StyleNormal, 9.5}, dark, AlignLeft)

	// title and number, right aligned against the content edge
	l.text(PageWidth-MarginRight, 30, "FACTURE", Font{"times", StyleBold, 30}, gray, AlignRight)
	l.text(PageWidth-MarginRight, 37, invoice.Number, Font{"helvetica", StyleNormal, 10}, lightGray, AlignRight)

	y = 58
	l.divider(y)

	// client block left, date block right, same vertical origin
	y += 10
	l.text(MarginLeft, y, "À l’attention de", Font{"helvetica", StyleItalic, 9.5}, teal, AlignLeft)
	l.text(PageWidth-MarginRight, y, "Date", Font{"helvetica", StyleBold, 9.5}, lightGray, AlignRight)
	body := Font{Family: "helvetica", Style: StyleNormal, Size: 10}
	l.text(PageWidth-MarginRight, y+6, FormatDateFR(invoice.Date), body, dark, AlignRight)

	cy := y + 6
	for _, line := range []string{invoice.ClientName, invoice.ClientAddress, invoice.ClientCity} {
		if line == "" {
			continue
		}
		l.text(MarginLeft, cy, line, body, dark, AlignLeft)
		cy += 5
	}

	// table
	y = cy + 8
	if y < 100 {
		y = 100
	}
	l.tableHeader(y)
	y += TableHeaderHeight

	rowFont := Font{Family: "helvetica", Style: StyleNormal, Size: 9.5}
	for idx, item := range invoice.Items {
		desc := item.Description
		if desc == "" {
			desc = "-"
		}
		lines := l.wrap(desc, rowFont, DescW)
		rowH := float64(len(lines))*5 + 5
		if rowH < 10 {
			rowH = 10
		}

		required := rowH
		if idx == len(invoice.Items)-1 {
			required = PostTableSpace
		}
		if y+required > UsableBottom {
			y = l.addPage()
			l.tableHeader(y)
			y += TableHeaderHeight
		}

		l.add(LineOp{X1: MarginLeft, Y1: y + rowH, X2: MarginLeft + ContentWidth, Y2: y + rowH, Width: 0.3, Color: rowLine})
		for i, line := range lines {
			l.text(DescX, y+6.5+float64(i)*5, line, rowFont, dark, AlignLeft)
		}

		qty := item.Quantity
		if qty == "" {
			qty = "-"
		}
		l.text(QtyX, y+6.5, qty, rowFont, dark, AlignCenter)

		unit := "-"
		if item.UnitPrice != "" {
			unit = FormatEUR(item.UnitPrice)
		}
		l.text(UnitX, y+6.5, unit, rowFont, dark, AlignCenter)

		amount := "-"
		if v, err := strconv.ParseFloat(strings.TrimSpace(item.Amount), 64); err == nil && v > 0 {
			amount = FormatEURAmount(v)
		}
		l.text(AmtX, y+6.5, amount, rowFont, dark, AlignRight)

		y += rowH
	}

	// total box
	if y+PostTableSpace > UsableBottom+10 {
		y = l.addPage()
	}
	y += 8
	const totalW = 90.0
	tx := MarginLeft + ContentWidth - totalW
	l.add(RectOp{X: tx, Y: y, W: totalW, H: 12, Fill: shadeBG})
	l.text(tx+6, y+8, "Total TTC", Font{"helvetica", StyleBold, 10}, slate, AlignLeft)
	l.text(tx+totalW-6, y+8.5, FormatEURAmount(total), Font{"helvetica", StyleBold, 14}, dark, AlignRight)
	y += 20

	// conditions
	if y+20 > UsableBottom {
		y = l.addPage()
	}
	l.text(MarginLeft, y, "Conditions", Font{"helvetica", StyleBold, 10}, teal, AlignLeft)
	y += 5
	conditions := invoice.Conditions
	if conditions == "" {
		conditions = defaultConditions
	}
	l.text(MarginLeft, y, conditions, Font{"helvetica", StyleNormal, 9.5}, slate, AlignLeft)
	y += 10

	// payment details
	if y+20 > UsableBottom {
		y = l.addPage()
	}
	l.text(MarginLeft, y, "Détails paiement", Font{"helvetica", StyleBold, 10}, teal, AlignLeft)
	y += 5
	label := "Paypal : "
	labelFont := Font{Family: "helvetica", Style: StyleBold, Size: 9.5}
	l.text(MarginLeft, y, label, labelFont, slate, AlignLeft)
	l.text(MarginLeft+measure.TextWidth(label, labelFont), y, company.Paypal, Font{"helvetica", StyleNormal, 9.5}, slate, AlignLeft)

	l.footerAll(company)

	return Document{Pages: l.pages}
}
