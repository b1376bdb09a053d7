package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func pageQueryRecorder(t *testing.T, url string) (page, limit string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/list", ValidatePagination(), func(c *gin.Context) {
		p, l := PageQuery(c)
		c.JSON(http.StatusOK, gin.H{"page": p, "limit": l})
		page, limit = p, l
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	return page, limit
}

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  string
		wantLimit string
	}{
		{"passthrough", "/list?page=3&limit=7", "3", "7"},
		{"defaults when missing", "/list", "1", "10"},
		{"defaults on malformed", "/list?page=abc&limit=xyz", "1", "10"},
		{"non-positive falls back", "/list?page=0&limit=-2", "1", "10"},
		{"limit capped", "/list?page=2&limit=100", "2", "50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := pageQueryRecorder(t, tt.url)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("got page=%s limit=%s, want page=%s limit=%s", page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}
