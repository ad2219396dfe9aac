package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	claimdomain "github.com/fogonlabs/fogon/internal/claim/domain"
	"github.com/gin-gonic/gin"
)

func performWithError(t *testing.T, err error) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.GET("/boom", func(c *gin.Context) {
		AbortWithError(c, err)
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var body errorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", resp.Body.String(), err)
	}
	return resp, body
}

func TestDatastoreErrorMessageReachesCaller(t *testing.T) {
	dbErr := errors.New(`pq: relation "reclamaciones" does not exist`)

	resp, body := performWithError(t, dbErr)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
	if body.Error.Type != "persistence_error" {
		t.Fatalf("expected persistence_error, got %q", body.Error.Type)
	}
	if body.Error.Message != dbErr.Error() {
		t.Fatalf("expected the datastore message verbatim, got %q", body.Error.Message)
	}
}

func TestIntakeViolationKeepsExactMessage(t *testing.T) {
	resp, body := performWithError(t, claimdomain.NewValidationError("El nombre es obligatorio"))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if body.Error.Message != "El nombre es obligatorio" {
		t.Fatalf("unexpected message %q", body.Error.Message)
	}
}

func TestNotFoundStaysUniform(t *testing.T) {
	resp, body := performWithError(t, claimdomain.ErrNotFound)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
	if body.Error.Message != "not found" {
		t.Fatalf("expected the uniform message, got %q", body.Error.Message)
	}
}
