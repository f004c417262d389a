package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveLogged(t *testing.T, handler http.HandlerFunc, method, target string) map[string]interface{} {
	t.Helper()
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	h := chimw.RequestID(AccessLog(logger)(handler))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(method, target, nil))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	return entry
}

func TestAccessLogRecordsRequest(t *testing.T) {
	entry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	}, http.MethodGet, "/images/chacha.png")

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "request", entry["message"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/images/chacha.png", entry["path"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, float64(len("missing")), entry["bytes"])
	assert.NotEmpty(t, entry["request_id"])
}

func TestAccessLogDefaultsToOK(t *testing.T) {
	entry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {}, http.MethodHead, "/index.html")

	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, "HEAD", entry["method"])
}

func TestAccessLogServerErrorsAtErrorLevel(t *testing.T) {
	entry := serveLogged(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, http.MethodGet, "/index.html")

	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, float64(http.StatusInternalServerError), entry["status"])
}
