package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apnajourney_backend/internal/services"
	"apnajourney_backend/internal/validator"
)

// Self-signup is closed, and the refusal must not depend on the body:
// a broken payload gets the same permanent 403 as a well-formed one.
func TestAuthHandler_RegisterAlwaysRefused(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(NewBaseHandler(validator.New()), nil, services.NewUserService(nil))

	router := gin.New()
	router.POST("/auth/register", h.Register)

	bodies := []string{
		`{"name":"Anita Singh","email":"anita@example.com","password":"long-enough-pass"}`,
		`{"email":`,
		``,
	}
	for _, body := range bodies {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusForbidden, w.Code, "body %q", body)

		var resp struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Public registration is disabled", resp.Message)
	}
}
