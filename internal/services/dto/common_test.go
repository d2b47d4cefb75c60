package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int64
		pages int64
	}{
		{"empty", 1, 10, 0, 0},
		{"partial page", 1, 10, 7, 1},
		{"exact multiple", 2, 10, 30, 3},
		{"one over", 1, 10, 31, 4},
		{"single item", 1, 100, 1, 1},
		{"limit one", 5, 1, 9, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.pages, p.Pages)
		})
	}
}

func TestNormalizeLanguage(t *testing.T) {
	assert.Equal(t, "english", NormalizeLanguage(""))
	assert.Equal(t, "english", NormalizeLanguage("en"))
	assert.Equal(t, "english", NormalizeLanguage("english"))
	assert.Equal(t, "hindi", NormalizeLanguage("hi"))
	assert.Equal(t, "hindi", NormalizeLanguage("hindi"))
}
