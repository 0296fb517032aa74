package server

import (
	"net/http"
	"strings"

	companydomain "github.com/codkage/facture/internal/company/domain"
	"github.com/gin-gonic/gin"
)

type saveCompanyRequest struct {
	ID      *uint  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	IFU     string `json:"ifu"`
	VMCF    string `json:"vmcf"`
	Paypal  string `json:"paypal"`
}

func (s *Server) ListCompanies(c *gin.Context) {
	companies, err := s.companySvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, companies)
}

func (s *Server) SaveCompany(c *gin.Context) {
	var req saveCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, badRequest("Invalid request"))
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		AbortWithError(c, companydomain.ErrInvalidName)
		return
	}

	company, err := s.companySvc.Save(c.Request.Context(), companydomain.SaveCompanyRequest{
		ID:      req.ID,
		Name:    req.Name,
		Address: req.Address,
		Email:   req.Email,
		IFU:     req.IFU,
		VMCF:    req.VMCF,
		Paypal:  req.Paypal,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}
