package pdf

import (
	"github.com/codkage/facture/internal/document"
	"github.com/jung-kurt/gofpdf"
)

// Render replays a laid-out document into a gofpdf instance. Pagination is
// owned by the layout; the auto page break stays off.
func Render(doc document.Document) (*gofpdf.Fpdf, error) {
	f := gofpdf.New("P", "mm", "A4", "")
	f.SetAutoPageBreak(false, 0)
	tr := f.UnicodeTranslatorFromDescriptor("")

	for _, page := range doc.Pages {
		f.AddPage()
		for _, op := range page.Ops {
			switch o := op.(type) {
			case document.RectOp:
				f.SetFillColor(o.Fill.R, o.Fill.G, o.Fill.B)
				f.Rect(o.X, o.Y, o.W, o.H, "F")
			case document.LineOp:
				f.SetDrawColor(o.Color.R, o.Color.G, o.Color.B)
				f.SetLineWidth(o.Width)
				f.Line(o.X1, o.Y1, o.X2, o.Y2)
			case document.TextOp:
				f.SetFont(o.Font.Family, o.Font.Style, o.Font.Size)
				f.SetTextColor(o.Color.R, o.Color.G, o.Color.B)
				text := tr(o.Text)
				x := o.X
				switch o.Align {
				case document.AlignCenter:
					x -= f.GetStringWidth(text) / 2
				case document.AlignRight:
					x -= f.GetStringWidth(text)
				}
				f.Text(x, o.Y, text)
			}
		}
	}

	if f.Err() {
		return nil, f.Error()
	}
	return f, nil
}

type metrics struct {
	f  *gofpdf.Fpdf
	tr func(string) string
}

// NewMeasurer measures text with the real PDF font metrics.
func NewMeasurer() document.Measurer {
	f := gofpdf.New("P", "mm", "A4", "")
	return &metrics{f: f, tr: f.UnicodeTranslatorFromDescriptor("")}
}

func (m *metrics) TextWidth(s string, font document.Font) float64 {
	m.f.SetFont(font.Family, font.Style, font.Size)
	return m.f.GetStringWidth(m.tr(s))
}
