package get_quote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GLS-QuoteService/internal/api/handlers"
	"github.com/m04kA/GLS-QuoteService/internal/service/quotes"
	"github.com/m04kA/GLS-QuoteService/internal/service/quotes/models"
)

type stubService struct {
	quote  *models.QuoteResponse
	err    error
	lastID int64
}

func (s *stubService) GetByID(_ context.Context, id int64) (*models.QuoteResponse, error) {
	s.lastID = id
	if s.err != nil {
		return nil, s.err
	}
	return s.quote, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, quoteID string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/quotes/"+quoteID, nil)
	r = mux.SetURLVars(r, map[string]string{"quoteId": quoteID})
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) handlers.Response {
	t.Helper()
	var resp handlers.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandle_Success(t *testing.T) {
	svc := &stubService{
		quote: &models.QuoteResponse{
			ID:        17,
			Name:      "Jane Doe",
			Email:     "jane@example.com",
			City:      "Springfield",
			Address:   "12 Elm St",
			Phone:     "555-0100",
			CreatedAt: "2026-08-30T12:00:00Z",
		},
	}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h, "17")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(17), svc.lastID)

	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(17), data["id"])
	assert.Equal(t, "Jane Doe", data["name"])
}

func TestHandle_InvalidID(t *testing.T) {
	h := NewHandler(&stubService{}, nopLogger{})

	rec := doRequest(h, "abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid quote request ID", resp.Message)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &stubService{err: quotes.ErrQuoteNotFound}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h, "99")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Quote request not found", resp.Message)
}

func TestHandle_InternalError(t *testing.T) {
	svc := &stubService{err: errors.New("boom")}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h, "5")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to retrieve quote request", resp.Message)
}
