package server

import (
	"net/http"
	"strings"

	categorydomain "github.com/fogonlabs/fogon/internal/category/domain"
	productdomain "github.com/fogonlabs/fogon/internal/product/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListCategories(c *gin.Context) {
	categories, err := s.categorySvc.ListActive(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

func (s *Server) ListProducts(c *gin.Context) {
	var categoryID *string
	if raw := strings.TrimSpace(c.Query("category_id")); raw != "" {
		categoryID = &raw
	}

	products, err := s.productSvc.ListActive(c.Request.Context(), categoryID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (s *Server) GetProductBySlug(c *gin.Context) {
	product, err := s.productSvc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": product})
}

func (s *Server) ListAllCategories(c *gin.Context) {
	categories, err := s.categorySvc.ListAll(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

func (s *Server) CreateCategory(c *gin.Context) {
	var req categorydomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	category, err := s.categorySvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.metrics.ContentChanges.WithLabelValues("categories").Inc()

	c.JSON(http.StatusCreated, gin.H{"data": category})
}

func (s *Server) UpdateCategory(c *gin.Context) {
	var req categorydomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	category, err := s.categorySvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.metrics.ContentChanges.WithLabelValues("categories").Inc()

	c.JSON(http.StatusOK, gin.H{"data": category})
}

type moveRequest struct {
	Direction int `json:"direction"`
}

func (s *Server) MoveCategory(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	err := s.categorySvc.Move(c.Request.Context(), strings.TrimSpace(c.Param("id")), req.Direction)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.metrics.ContentChanges.WithLabelValues("categories").Inc()

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"moved": true}})
}

func (s *Server) DeleteCategory(c *gin.Context) {
	err := s.categorySvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.metrics.ContentChanges.WithLabelValues("categories").Inc()

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func (s *Server) ListAllProducts(c *gin.Context) {
	products, err := s.productSvc.ListAll(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req productdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	product, err := s.productSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.metrics.ContentChanges.WithLabelValues("products").Inc()

	c.JSON(http.StatusCreated, gin.H{"data": product})
}

func (s *Server) UpdateProduct(c *gin.Context) {
	var req productdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	product, err := s.productSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.metrics.ContentChanges.WithLabelValues("products").Inc()

	c.JSON(http.StatusOK, gin.H{"data": product})
}

func (s *Server) MoveProduct(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	err := s.productSvc.Move(c.Request.Context(), strings.TrimSpace(c.Param("id")), req.Direction)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.metrics.ContentChanges.WithLabelValues("products").Inc()

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"moved": true}})
}

func (s *Server) DeleteProduct(c *gin.Context) {
	err := s.productSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.metrics.ContentChanges.WithLabelValues("products").Inc()

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
