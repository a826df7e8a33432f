package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"multilingual-tool-router/config"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string)          {}
func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string)           {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string)           {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string)          {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func newTestRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", mw.Auth(), mw.RateLimit(), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestAuth(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.Enabled = true
	cfg.Auth.Token = "secret-token"

	r := newTestRouter(New(nopLogger{}, cfg))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"Valid Token", "Bearer secret-token", http.StatusOK},
		{"Wrong Token", "Bearer nope", http.StatusUnauthorized},
		{"Missing Header", "", http.StatusUnauthorized},
		{"Not Bearer", "Basic secret-token", http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestAuth_Disabled(t *testing.T) {
	cfg := &config.Config{}
	r := newTestRouter(New(nopLogger{}, cfg))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 with auth disabled", w.Code)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.RateLimit.PerMin = 10 // burst of 1

	r := newTestRouter(New(nopLogger{}, cfg))

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", first.Code)
	}

	// Burst exhausted, the immediate follow-up is rejected.
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", second.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	cfg := &config.Config{}
	r := newTestRouter(New(nopLogger{}, cfg))

	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200 with limiter disabled", i, w.Code)
		}
	}
}
