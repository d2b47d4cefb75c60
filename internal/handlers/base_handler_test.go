package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apnajourney_backend/internal/apperrors"
	"apnajourney_backend/internal/validator"
)

func testContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, 10},
		{"?page=3&limit=25", 3, 25},
		{"?page=0&limit=0", 1, 10},
		{"?page=-5&limit=-1", 1, 10},
		{"?page=abc&limit=xyz", 1, 10},
		{"?limit=500", 1, 100},
	}

	for _, tc := range cases {
		c, _ := testContext(t, http.MethodGet, "/jobs"+tc.query, "")
		page, limit := ParsePagination(c)
		assert.Equal(t, tc.wantPage, page, "query %q", tc.query)
		assert.Equal(t, tc.wantLimit, limit, "query %q", tc.query)
	}
}

func TestBindAndValidateJSON(t *testing.T) {
	h := NewBaseHandler(validator.New())

	type payload struct {
		Email string `json:"email" validate:"required,email"`
	}

	t.Run("valid body", func(t *testing.T) {
		c, _ := testContext(t, http.MethodPost, "/x", `{"email":"ravi@example.com"}`)
		var p payload
		require.True(t, h.BindAndValidateJSON(c, &p))
		assert.Equal(t, "ravi@example.com", p.Email)
	})

	t.Run("malformed json", func(t *testing.T) {
		c, w := testContext(t, http.MethodPost, "/x", `{"email":`)
		var p payload
		require.False(t, h.BindAndValidateJSON(c, &p))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation failure names the field", func(t *testing.T) {
		c, w := testContext(t, http.MethodPost, "/x", `{"email":"not-an-email"}`)
		var p payload
		require.False(t, h.BindAndValidateJSON(c, &p))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Errors []struct {
				Field string `json:"field"`
			} `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "email", body.Errors[0].Field)
	})
}

func TestHandleServiceError(t *testing.T) {
	h := NewBaseHandler(validator.New())

	t.Run("app error keeps its status", func(t *testing.T) {
		c, w := testContext(t, http.MethodGet, "/x", "")
		h.HandleServiceError(c, apperrors.ErrJobNotFound)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Job not found")
	})

	t.Run("unknown error becomes 500", func(t *testing.T) {
		c, w := testContext(t, http.MethodGet, "/x", "")
		h.HandleServiceError(c, errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		// The raw error never reaches the client.
		assert.NotContains(t, w.Body.String(), "boom")
	})
}
