package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	claimdomain "github.com/fogonlabs/fogon/internal/claim/domain"
	"github.com/fogonlabs/fogon/internal/claim/render"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) SubmitClaim(c *gin.Context) {
	var req claimdomain.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	claim, err := s.claimSvc.Submit(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.metrics.ClaimsSubmitted.WithLabelValues(string(claim.RecordType)).Inc()

	// The token travels once, in this response; the consumer keeps the
	// constancia link it builds.
	c.JSON(http.StatusCreated, gin.H{"data": gin.H{
		"id":          fmt.Sprintf("%d", claim.ID),
		"numero_hoja": claim.NumeroHoja,
		"token":       claim.PublicToken,
	}})
}

func (s *Server) GetConstancia(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	token := c.Query("token")

	claim, err := s.claimSvc.GetByIDAndToken(c.Request.Context(), id, token)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": claim})
}

func (s *Server) DownloadConstanciaPDF(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	token := c.Query("token")

	claim, err := s.claimSvc.GetByIDAndToken(c.Request.Context(), id, token)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc := render.Constancia(claim)
	reader, err := s.pdfProvider.GenerateConstancia(c.Request.Context(), doc)
	if err != nil {
		s.log.Error("constancia render failed", zap.String("numero_hoja", claim.NumeroHoja), zap.Error(err))
		AbortWithError(c, err)
		return
	}
	s.metrics.ConstanciasServed.Inc()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", render.FileName(claim)))
	c.Header("Content-Type", "application/pdf")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}

func (s *Server) ListClaims(c *gin.Context) {
	claims, err := s.claimSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": claims})
}

func (s *Server) GetClaim(c *gin.Context) {
	claim, err := s.claimSvc.GetForAdmin(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": claim})
}

func (s *Server) UpdateClaim(c *gin.Context) {
	var req claimdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	claim, err := s.claimSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.metrics.ClaimsUpdated.Inc()

	c.JSON(http.StatusOK, gin.H{"data": claim})
}
