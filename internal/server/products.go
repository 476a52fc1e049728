package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/tokopilih/tokopilih/internal/catalog/domain"
)

// ListProducts serves the catalog listing with filtering, sorting and
// pagination. Unknown sort values are normalized, never rejected.
func (s *Server) ListProducts(c *gin.Context) {
	var query struct {
		Category string `form:"category"`
		Search   string `form:"search"`
		Sort     string `form:"sort"`
		Order    string `form:"order"`
		Page     string `form:"page"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	payload, err := s.catalogSvc.List(c.Request.Context(), catalogdomain.ListRequest{
		Category: strings.TrimSpace(query.Category),
		Search:   strings.TrimSpace(query.Search),
		Sort:     strings.TrimSpace(query.Sort),
		Order:    strings.TrimSpace(query.Order),
		Page:     parsePage(query.Page),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, payload)
}

// ShowProduct serves the detail page. Unknown and inactive products are
// indistinguishable from the outside: both 404.
func (s *Server) ShowProduct(c *gin.Context) {
	payload, err := s.catalogSvc.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, payload)
}
