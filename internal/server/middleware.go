package server

import (
	"net/http"
	"time"

	authdomain "github.com/fogonlabs/fogon/internal/auth/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const contextIdentityKey = "auth_identity"

func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	log = log.Named("http.access")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		identity, err := s.authSvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextIdentityKey, identity)
		c.Next()
	}
}

func (s *Server) RateLimitClaims() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.limiter.Allow(c.Request.Context(), c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResponse{Error: errorPayload{
				Type:    "rate_limited",
				Message: "Demasiados intentos. Intenta nuevamente en unos minutos.",
			}})
			return
		}
		c.Next()
	}
}

func (s *Server) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := currentIdentity(c)
		if identity == nil {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		if !identity.IsAdmin() {
			AbortWithError(c, ErrForbidden)
			return
		}
		c.Next()
	}
}

func currentIdentity(c *gin.Context) *authdomain.Identity {
	raw, ok := c.Get(contextIdentityKey)
	if !ok {
		return nil
	}
	identity, ok := raw.(*authdomain.Identity)
	if !ok {
		return nil
	}
	return identity
}
