package server

import (
	"io"
	"net/http"

	"github.com/codkage/facture/internal/document"
	"github.com/codkage/facture/internal/providers/pdf"
	"github.com/gin-gonic/gin"
)

// ExportInvoice renders a stored invoice to PDF server-side, for clients
// without the in-browser renderer (curl, integrations).
func (s *Server) ExportInvoice(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	detail, err := s.invoiceSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	company, input := pdf.InvoiceInput(detail)
	reader, err := s.pdfSvc.GenerateInvoice(c.Request.Context(), company, input, detail.TotalTTC)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+document.Filename(detail.Number)+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
