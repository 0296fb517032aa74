package document

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedMeasurer gives every rune the same width so layout decisions are
// deterministic without font metrics.
type fixedMeasurer struct {
	perRune float64
}

func (m fixedMeasurer) TextWidth(s string, _ Font) float64 {
	return float64(utf8.RuneCountInString(s)) * m.perRune
}

func testCompany() Company {
	return Company{
		Name:    "ACME",
		Address: "1 Rue X",
		Email:   "a@b.com",
		IFU:     "123",
		VMCF:    "456",
		Paypal:  "a@b.com",
	}
}

func textOps(p Page) []TextOp {
	var out []TextOp
	for _, op := range p.Ops {
		if t, ok := op.(TextOp); ok {
			out = append(out, t)
		}
	}
	return out
}

func hasText(p Page, s string) bool {
	for _, t := range textOps(p) {
		if t.Text == s {
			return true
		}
	}
	return false
}

func headerBandY(p Page) (float64, bool) {
	for _, op := range p.Ops {
		if r, ok := op.(RectOp); ok && r.Fill == teal {
			return r.Y, true
		}
	}
	return 0, false
}

func shortItems(n int) []LineItem {
	items := make([]LineItem, n)
	for i := range items {
		items[i] = LineItem{
			Description: "Service " + strconv.Itoa(i+1),
			Quantity:    "1",
			UnitPrice:   "10",
			Amount:      "10",
		}
	}
	return items
}

func TestBuildSinglePage(t *testing.T) {
	invoice := Invoice{
		Number:     "INV-1",
		Date:       "2024-03-05",
		ClientName: "Bob",
		Items: []LineItem{
			{Description: "Service", Quantity: "2", UnitPrice: "50", Amount: "100"},
		},
	}

	doc := Build(testCompany(), invoice, 100, fixedMeasurer{perRune: 2})
	require.Len(t, doc.Pages, 1)

	page := doc.Pages[0]
	assert.True(t, hasText(page, "FACTURE"))
	assert.True(t, hasText(page, "INV-1"))
	assert.True(t, hasText(page, "05/03/24"))
	assert.True(t, hasText(page, "Bob"))
	assert.True(t, hasText(page, "2"))
	assert.True(t, hasText(page, "50,00 €"))
	assert.True(t, hasText(page, "100,00 €"))
	assert.True(t, hasText(page, "ACME, 1 Rue X"))
	assert.True(t, hasText(page, "Paiement à réception"))
}

func TestItemOrderPreserved(t *testing.T) {
	items := []LineItem{
		{Description: "Alpha", Amount: "1"},
		{Description: "Bravo", Amount: "2"},
		{Description: "Charlie", Amount: "3"},
		{Description: "Delta", Amount: "4"},
	}
	doc := Build(testCompany(), Invoice{Number: "N", Items: items}, 10, fixedMeasurer{perRune: 2})
	require.Len(t, doc.Pages, 1)

	var printed []string
	for _, op := range textOps(doc.Pages[0]) {
		if op.X == DescX && op.Font.Style == StyleNormal {
			printed = append(printed, op.Text)
		}
	}
	assert.Equal(t, []string{"Alpha", "Bravo", "Charlie", "Delta"}, printed)
}

func TestPlaceholderSemantics(t *testing.T) {
	items := []LineItem{
		{Description: "", Quantity: "", UnitPrice: "", Amount: ""},
		{Description: "Zeroes", Quantity: "0", UnitPrice: "0", Amount: "0"},
		{Description: "Garbage", Quantity: "x", UnitPrice: "junk", Amount: "junk"},
	}
	doc := Build(testCompany(), Invoice{Number: "N", Items: items}, 0, fixedMeasurer{perRune: 2})
	require.Len(t, doc.Pages, 1)

	var qty, unit, amount []string
	for _, op := range textOps(doc.Pages[0]) {
		if op.Font.Style != StyleNormal || op.Font.Size != 9.5 {
			continue
		}
		switch op.X {
		case QtyX:
			qty = append(qty, op.Text)
		case UnitX:
			unit = append(unit, op.Text)
		case AmtX:
			amount = append(amount, op.Text)
		}
	}

	assert.Equal(t, []string{"-", "0", "x"}, qty)
	// a present unit price formats even when zero or unparsable
	assert.Equal(t, []string{"-", "0,00 €", "0,00 €"}, unit)
	// the amount cell formats only strictly positive values
	assert.Equal(t, []string{"-", "-", "-"}, amount)

	// empty description falls back to the dash placeholder
	assert.True(t, hasText(doc.Pages[0], "-"))
}

func TestWrappedRowHeight(t *testing.T) {
	// 190 runes at 2mm each hard-wrap into 5 lines of 38 in a 76mm column
	long := strings.Repeat("x", 190)
	invoice := Invoice{Number: "N", Items: []LineItem{{Description: long, Amount: "5"}}}
	doc := Build(testCompany(), invoice, 5, fixedMeasurer{perRune: 2})
	require.Len(t, doc.Pages, 1)

	// table starts at 100, first row at 110; a 5 line row is
	// max(10, 5*5+5) = 30mm tall, so its border sits at 140
	var borders []float64
	for _, op := range doc.Pages[0].Ops {
		if l, ok := op.(LineOp); ok && l.Color == rowLine {
			borders = append(borders, l.Y1)
		}
	}
	require.Len(t, borders, 1)
	assert.InDelta(t, 140.0, borders[0], 0.001)
}

func TestBreakBeforeWrappedRow(t *testing.T) {
	// 14 short rows take the cursor to 250mm; the next row is 30mm tall
	// and must move to a fresh page rather than cross the 265mm boundary
	items := shortItems(14)
	items = append(items, LineItem{Description: strings.Repeat("x", 190), Amount: "5"})
	items = append(items, LineItem{Description: "Tail", Amount: "5"})

	doc := Build(testCompany(), Invoice{Number: "N", Items: items}, 145, fixedMeasurer{perRune: 2})
	require.Len(t, doc.Pages, 2)

	// the header band is redrawn at the top margin of the new page and the
	// wrapped row renders directly under it
	y, ok := headerBandY(doc.Pages[1])
	require.True(t, ok)
	assert.InDelta(t, TopMargin, y, 0.001)

	var borders []float64
	for _, op := range doc.Pages[1].Ops {
		if l, ok := op.(LineOp); ok && l.Color == rowLine {
			borders = append(borders, l.Y1)
		}
	}
	require.NotEmpty(t, borders)
	assert.InDelta(t, TopMargin+TableHeaderHeight+30, borders[0], 0.001)
}

func TestPageCountAndFooterOnEveryPage(t *testing.T) {
	// 30 ten-millimeter rows overflow a single page exactly once
	doc := Build(testCompany(), Invoice{Number: "N", Items: shortItems(30)}, 300, fixedMeasurer{perRune: 2})
	require.Len(t, doc.Pages, 2)

	_, ok := headerBandY(doc.Pages[1])
	assert.True(t, ok, "table header band must be redrawn after a page break")

	for i, page := range doc.Pages {
		assert.True(t, hasText(page, "ACME, 1 Rue X"), "footer missing on page %d", i+1)
	}
}

func TestEmptyInvoice(t *testing.T) {
	doc := Build(testCompany(), Invoice{Number: "N"}, 0, fixedMeasurer{perRune: 2})
	require.Len(t, doc.Pages, 1)
	assert.True(t, hasText(doc.Pages[0], "Total TTC"))
	assert.True(t, hasText(doc.Pages[0], "0,00 €"))
	assert.True(t, hasText(doc.Pages[0], "ACME, 1 Rue X"))
}

func TestNoTextBelowPrintableArea(t *testing.T) {
	doc := Build(testCompany(), Invoice{Number: "N", Items: shortItems(75)}, 750, fixedMeasurer{perRune: 2})
	require.Greater(t, len(doc.Pages), 2)

	for i, page := range doc.Pages {
		for _, op := range textOps(page) {
			assert.LessOrEqual(t, op.Y, FooterTextY, "page %d text below printable area", i+1)
		}
	}
}
