package server

import (
	"net/http"

	"github.com/codkage/facture/internal/seed"
	"github.com/gin-gonic/gin"
)

// Setup creates the schema and the default company. It is exposed so a
// fresh deployment can be initialized from the browser; running it again
// is harmless.
func (s *Server) Setup(c *gin.Context) {
	if err := seed.Setup(c.Request.Context(), s.db, s.cfg); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Schema ready"})
}
