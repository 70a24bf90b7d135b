package middleware

import (
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordshop/internal/testutil"
)

func records(t *testing.T, raw string) []map[string]any {
	t.Helper()
	var out []map[string]any
	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		out = append(out, rec)
	}
	return out
}

func TestLoggingRecordsRequest(t *testing.T) {
	logger, buf := testutil.BufferLogger()
	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cat/commit", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	logs := records(t, buf.String())
	require.Len(t, logs, 1)
	assert.Equal(t, "http request", logs[0]["msg"])
	assert.Equal(t, "INFO", logs[0]["level"])
	assert.Equal(t, "POST", logs[0]["method"])
	assert.Equal(t, "/cat/commit", logs[0]["path"])
	assert.EqualValues(t, http.StatusCreated, logs[0]["status"])
	assert.EqualValues(t, 5, logs[0]["size"])
	assert.Equal(t, rec.Header().Get(RequestIDHeader), logs[0]["request_id"])
}

func TestLoggingKeepsIncomingRequestID(t *testing.T) {
	logger, buf := testutil.BufferLogger()
	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		FromContext(r.Context(), nil).Info("inside")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
	for _, l := range records(t, buf.String()) {
		assert.Equal(t, "req-42", l["request_id"])
	}
}

func TestLoggingLevelFollowsStatus(t *testing.T) {
	for status, level := range map[int]string{
		http.StatusOK:                  "INFO",
		http.StatusSeeOther:            "INFO",
		http.StatusNotFound:            "WARN",
		http.StatusInternalServerError: "ERROR",
	} {
		logger, buf := testutil.BufferLogger()
		h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		logs := records(t, buf.String())
		require.Len(t, logs, 1)
		assert.Equal(t, level, logs[0]["level"], "status %d", status)
	}
}

func TestFromContextFallback(t *testing.T) {
	fallback := testutil.NopLogger()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Same(t, fallback, FromContext(req.Context(), fallback))
}

func TestRecoveryCallsHandler(t *testing.T) {
	logger, buf := testutil.BufferLogger()
	h := Recovery(logger, DefaultPanicHandler)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/explode", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	logs := records(t, buf.String())
	require.Len(t, logs, 1)
	assert.Equal(t, "panic recovered", logs[0]["msg"])
	assert.Equal(t, "boom", logs[0]["error"])
}

func TestRecoveryAfterResponseStarted(t *testing.T) {
	called := false
	h := Recovery(testutil.NopLogger(), func(w http.ResponseWriter, r *http.Request, err any) {
		called = true
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		panic("late")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
