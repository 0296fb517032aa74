package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dispatch routes an /api call to its handler based on the action query
// parameter. The method is validated per action so a POST to a read action
// answers 405 rather than 400.
func (s *Server) Dispatch(c *gin.Context) {
	action := c.Query("action")

	switch action {
	case "setup":
		s.withMethod(c, http.MethodGet, s.Setup)
	case "companies":
		s.withMethod(c, http.MethodGet, s.ListCompanies)
	case "clients":
		s.withMethod(c, http.MethodGet, s.ListClients)
	case "invoices":
		s.withMethod(c, http.MethodGet, s.ListInvoices)
	case "invoice":
		s.withMethod(c, http.MethodGet, s.GetInvoice)
	case "suggestions":
		s.withMethod(c, http.MethodGet, s.GetSuggestions)
	case "export":
		s.withMethod(c, http.MethodGet, s.ExportInvoice)
	case "save-company":
		s.withMethod(c, http.MethodPost, s.SaveCompany)
	case "save-invoice":
		s.withMethod(c, http.MethodPost, s.SaveInvoice)
	case "delete-invoice":
		s.withMethod(c, http.MethodDelete, s.DeleteInvoice)
	default:
		AbortWithError(c, badRequest("Unknown action: "+action))
	}
}

func (s *Server) withMethod(c *gin.Context, method string, handler gin.HandlerFunc) {
	if c.Request.Method != method {
		AbortWithError(c, methodNotAllowed())
		return
	}
	handler(c)
}
