package submit_quote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GLS-QuoteService/internal/domain"
	"github.com/m04kA/GLS-QuoteService/internal/integrations/notifier"
	"github.com/m04kA/GLS-QuoteService/pkg/ptr"
)

type stubQuoteRepo struct {
	createCalls int
	lastQuote   *domain.QuoteRequest
	err         error
}

func (s *stubQuoteRepo) Create(_ context.Context, quote *domain.QuoteRequest) (*domain.QuoteRequest, error) {
	s.createCalls++
	s.lastQuote = quote
	if s.err != nil {
		return nil, s.err
	}
	quote.ID = int64(s.createCalls)
	quote.CreatedAt = time.Now()
	return quote, nil
}

type stubNotifier struct {
	enabled bool
	err     error
	sent    chan *notifier.Notification
}

func newStubNotifier(enabled bool, err error) *stubNotifier {
	return &stubNotifier{
		enabled: enabled,
		err:     err,
		sent:    make(chan *notifier.Notification, 1),
	}
}

func (s *stubNotifier) Enabled() bool { return s.enabled }

func (s *stubNotifier) Send(_ context.Context, n *notifier.Notification) error {
	s.sent <- n
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		City:     "Springfield",
		Address:  "12 Elm St",
		Phone:    "555-0100",
		Service:  ptr.Ptr("sod installation"),
		Comments: ptr.Ptr("front yard only"),
	}
}

func waitForNotification(t *testing.T, ch chan *notifier.Notification) *notifier.Notification {
	t.Helper()
	select {
	case n := <-ch:
		return n
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not dispatched")
		return nil
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &stubQuoteRepo{}
	notif := newStubNotifier(true, nil)
	uc := NewUseCase(repo, notif, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Jane Doe", resp.Name)
	assert.Equal(t, "Springfield", resp.City)
	assert.False(t, resp.CreatedAt.IsZero())
	require.NotNil(t, resp.Service)
	assert.Equal(t, "sod installation", *resp.Service)

	sent := waitForNotification(t, notif.sent)
	assert.Equal(t, resp.ID, sent.QuoteID)
	assert.Equal(t, "api", sent.Source)
}

func TestExecute_MissingRequiredField(t *testing.T) {
	repo := &stubQuoteRepo{}
	uc := NewUseCase(repo, newStubNotifier(true, nil), nil, nopLogger{})

	req := validRequest()
	req.Name = ""

	resp, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.Nil(t, resp)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "name")

	// Валидация отрабатывает до обращения к хранилищу
	assert.Equal(t, 0, repo.createCalls)
}

func TestExecute_AllRequiredFieldsReported(t *testing.T) {
	uc := NewUseCase(&stubQuoteRepo{}, newStubNotifier(false, nil), nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	for _, field := range []string{"name", "email", "city", "address", "phone"} {
		assert.Contains(t, validationErr.Fields, field)
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &stubQuoteRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, newStubNotifier(true, nil), nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.Nil(t, resp)
	require.ErrorIs(t, err, ErrInternal)
}

func TestExecute_NotifierFailureDoesNotAffectResult(t *testing.T) {
	repo := &stubQuoteRepo{}
	notif := newStubNotifier(true, errors.New("smtp gateway down"))
	uc := NewUseCase(repo, notif, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	waitForNotification(t, notif.sent)
}

func TestExecute_EmptyOptionalFieldsStoredAsNull(t *testing.T) {
	repo := &stubQuoteRepo{}
	uc := NewUseCase(repo, newStubNotifier(false, nil), nil, nopLogger{})

	req := validRequest()
	req.Service = ptr.Ptr("")
	req.Comments = nil

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, repo.lastQuote.Service)
	assert.Nil(t, repo.lastQuote.Comments)
}

func TestExecute_NotifierDisabled(t *testing.T) {
	repo := &stubQuoteRepo{}
	notif := newStubNotifier(false, nil)
	uc := NewUseCase(repo, notif, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Empty(t, notif.sent)
}
