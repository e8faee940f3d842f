package controller_test

import (
	"net/http"
	"net/http/httptest"
	"passgen/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

const allowedOrigin = "http://localhost:5173"

func corsHandler(called *bool) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusCreated)
	})

	return controller.WithCORS([]string{allowedOrigin})(next)
}

func corsRequest(method, origin string) *http.Request {
	req := httptest.NewRequest(method, "http://127.0.0.1:8080/v1/passwords", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}

	return req
}

func TestWithCORS_PreflightAllowedOrigin(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()
	corsHandler(&called).ServeHTTP(rec, corsRequest(http.MethodOptions, allowedOrigin))

	require.False(t, called, "next handler should not be called for OPTIONS preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, allowedOrigin, res.Header.Get("Access-Control-Allow-Origin"))
	require.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), "PUT")
	require.Contains(t, res.Header.Get("Access-Control-Expose-Headers"), "Content-Disposition")
	require.Equal(t, "Origin", res.Header.Get("Vary"))
}

func TestWithCORS_PreflightForeignOrigin(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()
	corsHandler(&called).ServeHTTP(rec, corsRequest(http.MethodOptions, "https://evil.example"))

	require.False(t, called)
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Empty(t, res.Header.Get("Access-Control-Allow-Origin"))
	require.Empty(t, res.Header.Get("Access-Control-Allow-Methods"))
}

func TestWithCORS_ForeignOriginGetsNoAllowHeader(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()
	corsHandler(&called).ServeHTTP(rec, corsRequest(http.MethodGet, "https://evil.example"))

	require.True(t, called)
	res := rec.Result()
	require.Empty(t, res.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "Origin", res.Header.Get("Vary"))
}

func TestWithCORS_ForeignOriginUnsafeMethodRefused(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodPut} {
		called := false
		rec := httptest.NewRecorder()
		corsHandler(&called).ServeHTTP(rec, corsRequest(method, "https://evil.example"))

		require.False(t, called, method)
		require.Equal(t, http.StatusForbidden, rec.Result().StatusCode, method)
	}
}

func TestWithCORS_AllowedOrigin(t *testing.T) {
	called := false
	rec := httptest.NewRecorder()
	corsHandler(&called).ServeHTTP(rec, corsRequest(http.MethodPost, allowedOrigin))

	require.True(t, called)
	res := rec.Result()
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.Equal(t, allowedOrigin, res.Header.Get("Access-Control-Allow-Origin"))
}

func TestWithCORS_SameOriginAndNoOrigin(t *testing.T) {
	// same-origin POST, e.g. from the Swagger UI
	called := false
	rec := httptest.NewRecorder()
	corsHandler(&called).ServeHTTP(rec, corsRequest(http.MethodPost, "http://127.0.0.1:8080"))
	require.True(t, called)
	require.Equal(t, http.StatusCreated, rec.Result().StatusCode)
	require.Empty(t, rec.Result().Header.Get("Access-Control-Allow-Origin"))

	// non-browser clients send no Origin
	called = false
	rec = httptest.NewRecorder()
	corsHandler(&called).ServeHTTP(rec, corsRequest(http.MethodPost, ""))
	require.True(t, called)
	require.Equal(t, http.StatusCreated, rec.Result().StatusCode)
}

func TestWithCORS_EmptyAllowList(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	controller.WithCORS(nil)(next).ServeHTTP(rec, corsRequest(http.MethodGet, allowedOrigin))
	require.Empty(t, rec.Result().Header.Get("Access-Control-Allow-Origin"))
}

func TestWithNoStore(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	controller.WithNoStore(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/history", nil))

	require.Equal(t, "no-store", rec.Result().Header.Get("Cache-Control"))
}
