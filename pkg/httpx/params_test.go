package httpx_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/record-store/pkg/httpx"
)

// Утилита для создания *gin.Context с query-строкой.
func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/?"+rawQuery, http.NoBody)
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c
}

func TestClampInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		v, lo, hi  int
		want       int
	}{
		{"below_min", 0, 1, 10, 1},
		{"above_max", 200, 1, 100, 100},
		{"inside", 42, 1, 100, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := httpx.ClampInt(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Fatalf("ClampInt(%d,%d,%d)=%d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestParseLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		want    int
		wantErr error
	}{
		{"default", "", 10, nil},
		{"explicit", "limit=25", 25, nil},
		{"capped", "limit=500", 100, nil},
		{"zero", "limit=0", 0, httpx.ErrBadLimit},
		{"negative", "limit=-3", 0, httpx.ErrBadLimit},
		{"garbage", "limit=abc", 0, httpx.ErrBadLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := httpx.ParseLimit(ctxWithQuery(tt.query))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err=%v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Fatalf("limit=%d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseCursor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		want    int64
		wantErr error
	}{
		{"absent", "", 0, nil},
		{"valid", "cursor=1234", 1234, nil},
		{"garbage", "cursor=zzz", 0, httpx.ErrBadCursor},
		{"negative", "cursor=-1", 0, httpx.ErrBadCursor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := httpx.ParseCursor(ctxWithQuery(tt.query))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err=%v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Fatalf("cursor=%d, want %d", got, tt.want)
			}
		})
	}
}
