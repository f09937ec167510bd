package create_quote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GLS-QuoteService/internal/api/handlers"
	submitQuote "github.com/m04kA/GLS-QuoteService/internal/usecase/submit_quote"
)

type stubUseCase struct {
	resp    *submitQuote.Response
	err     error
	lastReq *submitQuote.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *submitQuote.Request) (*submitQuote.Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader(body))
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
	uc := &stubUseCase{
		resp: &submitQuote.Response{
			ID:        1,
			Name:      "Jane Doe",
			Email:     "jane@example.com",
			City:      "Springfield",
			Address:   "12 Elm St",
			Phone:     "555-0100",
			CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		},
	}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, `{"name":"Jane Doe","email":"jane@example.com","city":"Springfield","address":"12 Elm St","phone":"555-0100"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Quote request submitted successfully", resp.Message)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "2026-08-30T12:00:00Z", data["createdAt"])

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "Jane Doe", uc.lastReq.Name)
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&stubUseCase{}, nopLogger{})

	rec := doRequest(h, "{broken")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid request body", resp.Message)
}

func TestHandle_ValidationError(t *testing.T) {
	uc := &stubUseCase{
		err: &submitQuote.ValidationError{
			Fields: map[string]string{"email": "this field is required"},
		},
	}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, `{"name":"Jane Doe"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid quote request data", resp.Message)
	assert.Equal(t, "this field is required", resp.Errors["email"])
}

func TestHandle_InternalError(t *testing.T) {
	uc := &stubUseCase{err: errors.New("boom")}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, `{"name":"Jane Doe"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to submit quote request", resp.Message)
}
