package controller_test

import (
	"net/http"
	"net/http/httptest"
	"passgen/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPprofMux(t *testing.T) {
	mux := controller.PprofMux()

	for _, path := range []string{"", "cmdline", "goroutine?debug=1"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, controller.PprofPath+path, nil))
		require.Equal(t, http.StatusOK, rec.Result().StatusCode, path)
	}
}
