package server

import (
	"net/http"

	sitesettingsdomain "github.com/fogonlabs/fogon/internal/sitesettings/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) GetSettings(c *gin.Context) {
	resolved, err := s.settingsSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resolved})
}

func (s *Server) GetRawSettings(c *gin.Context) {
	settings, err := s.settingsSvc.GetRaw(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": settings})
}

func (s *Server) UpdateSettings(c *gin.Context) {
	var req sitesettingsdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resolved, err := s.settingsSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.metrics.ContentChanges.WithLabelValues("site_settings").Inc()

	c.JSON(http.StatusOK, gin.H{"data": resolved})
}
