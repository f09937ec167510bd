package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_Generated(t *testing.T) {
	var ctxRequestID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetRequestID(r.Context())
		require.True(t, ok)
		ctxRequestID = id
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/quotes", nil))

	headerID := rec.Header().Get(HeaderRequestID)
	assert.Equal(t, ctxRequestID, headerID)

	_, err := uuid.Parse(headerID)
	assert.NoError(t, err)
}

func TestRequestID_ClientProvided(t *testing.T) {
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetRequestID(r.Context())
		require.True(t, ok)
		assert.Equal(t, "client-supplied-id", id)
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/quotes", nil)
	r.Header.Set(HeaderRequestID, "client-supplied-id")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	assert.Equal(t, "client-supplied-id", rec.Header().Get(HeaderRequestID))
}

func TestGetRequestID_Missing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/quotes", nil)

	_, ok := GetRequestID(r.Context())
	assert.False(t, ok)
}
