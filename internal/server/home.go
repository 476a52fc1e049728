package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home serves the landing-page props: featured, new, discount and category
// sections plus the total active count.
func (s *Server) Home(c *gin.Context) {
	payload, err := s.catalogSvc.Home(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, payload)
}
