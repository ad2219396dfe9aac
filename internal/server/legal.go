package server

import (
	"net/http"
	"strings"

	legalpagedomain "github.com/fogonlabs/fogon/internal/legalpage/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) GetLegalPage(c *gin.Context) {
	page, err := s.legalSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": page})
}

func (s *Server) ListLegalPages(c *gin.Context) {
	pages, err := s.legalSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": pages})
}

func (s *Server) PutLegalPage(c *gin.Context) {
	var req legalpagedomain.PutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.Slug = strings.TrimSpace(c.Param("slug"))

	page, err := s.legalSvc.Put(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.metrics.ContentChanges.WithLabelValues("legal_pages").Inc()

	c.JSON(http.StatusOK, gin.H{"data": page})
}

func (s *Server) DeleteLegalPage(c *gin.Context) {
	err := s.legalSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("slug")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.metrics.ContentChanges.WithLabelValues("legal_pages").Inc()

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
