package middlewares

import (
	"net/http"
	"net/http/httptest"
	"plantie/constants"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), AccessLogger(), Recovery())
	r.GET("/ok", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(RequestIDKey))
	})
	r.GET("/panic", func(ctx *gin.Context) {
		panic("boom")
	})
	return r
}

func TestRequestID(t *testing.T) {
	r := newTestEngine()

	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generated when missing", incoming: ""},
		{name: "caller id is reused", incoming: "abc-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/ok", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, w.Body.String())
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, got)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	r := newTestEngine()

	req, _ := http.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	assert.NotPanics(t, func() { r.ServeHTTP(w, req) })

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, constants.ErrConnectionFailed, w.Body.String())

	req, _ = http.NewRequest(http.MethodGet, "/ok", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
