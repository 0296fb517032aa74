package server

import (
	"net/http"
	"strconv"

	invoicedomain "github.com/codkage/facture/internal/invoice/domain"
	"github.com/gin-gonic/gin"
)

type saveInvoiceItemRequest struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	Amount      string `json:"amount"`
}

type saveInvoiceRequest struct {
	ID            *uint                    `json:"id"`
	Number        string                   `json:"number"`
	Date          string                   `json:"date"`
	CompanyID     *uint                    `json:"companyId"`
	ClientName    string                   `json:"clientName"`
	ClientAddress string                   `json:"clientAddress"`
	ClientCity    string                   `json:"clientCity"`
	ClientSiren   string                   `json:"clientSiren"`
	Conditions    string                   `json:"conditions"`
	Items         []saveInvoiceItemRequest `json:"items"`
}

func (s *Server) ListInvoices(c *gin.Context) {
	invoices, err := s.invoiceSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoices)
}

func (s *Server) GetInvoice(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	detail, err := s.invoiceSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (s *Server) GetSuggestions(c *gin.Context) {
	suggestions, err := s.invoiceSvc.Suggestions(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

func (s *Server) SaveInvoice(c *gin.Context) {
	var req saveInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, badRequest("Invalid request"))
		return
	}

	items := make([]invoicedomain.SaveInvoiceItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, invoicedomain.SaveInvoiceItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	id, err := s.invoiceSvc.Save(c.Request.Context(), invoicedomain.SaveInvoiceRequest{
		ID:            req.ID,
		Number:        req.Number,
		Date:          req.Date,
		CompanyID:     req.CompanyID,
		ClientName:    req.ClientName,
		ClientAddress: req.ClientAddress,
		ClientCity:    req.ClientCity,
		ClientSiren:   req.ClientSiren,
		Conditions:    req.Conditions,
		Items:         items,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	id, ok := invoiceID(c)
	if !ok {
		return
	}

	if err := s.invoiceSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func invoiceID(c *gin.Context) (uint, bool) {
	raw := c.Query("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		AbortWithError(c, badRequest("Invoice id is required"))
		return 0, false
	}
	return uint(id), true
}
