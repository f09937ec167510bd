package list_quotes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GLS-QuoteService/internal/api/handlers"
	"github.com/m04kA/GLS-QuoteService/internal/service/quotes/models"
)

type stubService struct {
	quotes []*models.QuoteResponse
	err    error
}

func (s *stubService) List(_ context.Context) ([]*models.QuoteResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.quotes, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/quotes", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &stubService{
		quotes: []*models.QuoteResponse{
			{ID: 1, Name: "Jane Doe", CreatedAt: "2026-08-30T12:00:00Z"},
			{ID: 2, Name: "John Smith", CreatedAt: "2026-08-30T13:00:00Z"},
		},
	}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestHandle_EmptyList(t *testing.T) {
	h := NewHandler(&stubService{quotes: []*models.QuoteResponse{}}, nopLogger{})

	rec := doRequest(h)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Empty(t, data)
}

func TestHandle_InternalError(t *testing.T) {
	h := NewHandler(&stubService{err: errors.New("boom")}, nopLogger{})

	rec := doRequest(h)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp handlers.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to retrieve quote requests", resp.Message)
}
