package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoggingMiddleware(t *testing.T) {
	var gotReqID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReqID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
	w := httptest.NewRecorder()

	LoggingMiddleware(zap.NewNop().Sugar())(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.NotEmpty(t, gotReqID)
	assert.Equal(t, gotReqID, w.Header().Get("X-Request-ID"))
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestIDFromContext(req.Context()))
}
