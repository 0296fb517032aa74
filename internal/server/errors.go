package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	companydomain "github.com/codkage/facture/internal/company/domain"
	invoicedomain "github.com/codkage/facture/internal/invoice/domain"
	"gorm.io/gorm"
)

// errorResponse is the wire shape for every failure: a single message under
// the "error" key, matching what the browser client displays verbatim.
type errorResponse struct {
	Error string `json:"error"`
}

// RequestError is an error with an explicit HTTP status and user-facing
// message.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func badRequest(message string) error {
	return &RequestError{Status: http.StatusBadRequest, Message: message}
}

func methodNotAllowed() error {
	return &RequestError{Status: http.StatusMethodNotAllowed, Message: "Method not allowed"}
}

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, message := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: message})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, string) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Status, reqErr.Message
	}

	switch {
	case errors.Is(err, invoicedomain.ErrNotFound),
		errors.Is(err, companydomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, invoicedomain.ErrInvalidNumber):
		return http.StatusBadRequest, "Invoice number is required"
	case errors.Is(err, invoicedomain.ErrDuplicateNumber):
		return http.StatusBadRequest, "Invoice number already exists"
	case errors.Is(err, companydomain.ErrInvalidName):
		return http.StatusBadRequest, "Company name is required"
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
