package ingest_webhook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/GLS-QuoteService/internal/domain"
	"github.com/m04kA/GLS-QuoteService/internal/integrations/notifier"
)

const notifyTimeout = 10 * time.Second

// UseCase use case приема заявок от сторонних form-сервисов
type UseCase struct {
	quoteRepo QuoteRepository
	notifier  NotifierClient
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если сбор метрик выключен
func NewUseCase(
	quoteRepo QuoteRepository,
	notifierClient NotifierClient,
	m Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		quoteRepo: quoteRepo,
		notifier:  notifierClient,
		metrics:   m,
		logger:    logger,
	}
}

// Execute нормализует payload и сохраняет заявку
// Валидация обязательных полей не выполняется (разрешающий путь),
// после сохранения запускается то же best-effort уведомление
func (uc *UseCase) Execute(ctx context.Context, payload Request) (*Response, error) {
	quote := normalize(payload)

	created, err := uc.quoteRepo.Create(ctx, quote)
	if err != nil {
		uc.logger.Error("IngestWebhook: failed to create quote request: %v", err)
		return nil, fmt.Errorf("%w: failed to create quote request: %v", ErrInternal, err)
	}

	uc.logger.Info("IngestWebhook: quote request saved: quote_id=%d", created.ID)

	uc.dispatchNotification(created)

	return &Response{ID: created.ID}, nil
}

func (uc *UseCase) dispatchNotification(quote *domain.QuoteRequest) {
	if !uc.notifier.Enabled() {
		return
	}

	notification := &notifier.Notification{
		QuoteID:   quote.ID,
		Name:      quote.Name,
		Email:     quote.Email,
		City:      quote.City,
		Address:   quote.Address,
		Phone:     quote.Phone,
		Service:   quote.Service,
		Comments:  quote.Comments,
		CreatedAt: quote.CreatedAt.Format(time.RFC3339),
		Source:    "webhook",
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := uc.notifier.Send(ctx, notification); err != nil {
			if !errors.Is(err, notifier.ErrDisabled) {
				uc.logger.Warn("IngestWebhook: notification delivery failed for quote_id=%d: %v", quote.ID, err)
				uc.incNotifierDelivery("failure")
			}
			return
		}
		uc.incNotifierDelivery("success")
	}()
}

func (uc *UseCase) incNotifierDelivery(outcome string) {
	if uc.metrics != nil {
		uc.metrics.IncNotifierDelivery(outcome)
	}
}
