package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxUploadBytes = 10 << 20

func (s *Server) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	url, err := s.store.SaveImage(c.Request.Context(), header.Filename, file)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.log.Info("upload stored", zap.String("url", url))

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"url": url}})
}

type deleteImageRequest struct {
	URL string `json:"url"`
}

func (s *Server) DeleteImage(c *gin.Context) {
	var req deleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.store.Delete(c.Request.Context(), req.URL); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
