package server

import (
	"errors"
	"net/http"

	authdomain "github.com/fogonlabs/fogon/internal/auth/domain"
	categorydomain "github.com/fogonlabs/fogon/internal/category/domain"
	claimdomain "github.com/fogonlabs/fogon/internal/claim/domain"
	legalpagedomain "github.com/fogonlabs/fogon/internal/legalpage/domain"
	productdomain "github.com/fogonlabs/fogon/internal/product/domain"
	"github.com/fogonlabs/fogon/internal/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

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

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	// Claim intake violations carry the exact message the form shows.
	if claimdomain.IsValidationError(err) {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: err.Error(),
		}
	}

	switch {
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: err.Error(),
		}
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, authdomain.ErrInvalidCredentials),
		errors.Is(err, authdomain.ErrUnauthenticated):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case errors.Is(err, ErrForbidden),
		errors.Is(err, authdomain.ErrForbidden):
		return http.StatusForbidden, errorPayload{
			Type:    "forbidden",
			Message: "forbidden",
		}
	case errors.Is(err, categorydomain.ErrSlugTaken),
		errors.Is(err, productdomain.ErrSlugTaken):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "slug already in use",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		// Anything left is a datastore or infrastructure failure. Staff
		// see the underlying message, not a generic placeholder.
		return http.StatusInternalServerError, errorPayload{
			Type:    "persistence_error",
			Message: err.Error(),
		}
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, categorydomain.ErrInvalidName),
		errors.Is(err, categorydomain.ErrInvalidSlug),
		errors.Is(err, categorydomain.ErrInvalidMove),
		errors.Is(err, productdomain.ErrInvalidName),
		errors.Is(err, productdomain.ErrInvalidSlug),
		errors.Is(err, productdomain.ErrInvalidMove),
		errors.Is(err, productdomain.ErrInvalidPrice),
		errors.Is(err, productdomain.ErrInvalidDiscount),
		errors.Is(err, productdomain.ErrUnknownCategory),
		errors.Is(err, legalpagedomain.ErrInvalidSlug),
		errors.Is(err, legalpagedomain.ErrInvalidTitle),
		errors.Is(err, storage.ErrUnsupportedType):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, claimdomain.ErrNotFound),
		errors.Is(err, claimdomain.ErrInvalidID),
		errors.Is(err, categorydomain.ErrNotFound),
		errors.Is(err, categorydomain.ErrInvalidID),
		errors.Is(err, productdomain.ErrNotFound),
		errors.Is(err, productdomain.ErrInvalidID),
		errors.Is(err, legalpagedomain.ErrNotFound),
		errors.Is(err, storage.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}
