//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertNoContent checks for a bodyless 204 reply.
func AssertNoContent(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, 204, w.Code, "response: %s", w.Body.String())
	assert.Empty(t, w.Body.String())
}
