package submit_quote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/GLS-QuoteService/internal/domain"
	"github.com/m04kA/GLS-QuoteService/internal/integrations/notifier"
)

// Таймаут фонового уведомления, не привязан к контексту HTTP запроса
const notifyTimeout = 10 * time.Second

// UseCase use case создания заявки через валидируемый путь POST /api/quotes
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

// Execute выполняет пайплайн создания заявки:
// валидация -> вставка в БД -> best-effort уведомление
// Уведомление отправляется в отдельной горутине и не влияет на результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных до любого обращения к хранилищу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем заявку
	created, err := uc.quoteRepo.Create(ctx, req.toDomain())
	if err != nil {
		uc.logger.Error("SubmitQuote: failed to create quote request: %v", err)
		return nil, fmt.Errorf("%w: failed to create quote request: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitQuote: quote request saved: quote_id=%d, city=%s", created.ID, created.City)

	// 3. Best-effort уведомление после успешного сохранения
	uc.dispatchNotification(created, "api")

	return fromDomain(created), nil
}

// dispatchNotification запускает фоновую доставку уведомления
// Ошибка доставки логируется и учитывается в метриках, но никогда
// не меняет уже определенный результат сохранения
func (uc *UseCase) dispatchNotification(quote *domain.QuoteRequest, source string) {
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
		Source:    source,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := uc.notifier.Send(ctx, notification); err != nil {
			if !errors.Is(err, notifier.ErrDisabled) {
				uc.logger.Warn("SubmitQuote: notification delivery failed for quote_id=%d: %v", quote.ID, err)
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
