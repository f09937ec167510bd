package ingest_webhook

import (
	"context"

	"github.com/m04kA/GLS-QuoteService/internal/domain"
	"github.com/m04kA/GLS-QuoteService/internal/integrations/notifier"
)

// QuoteRepository интерфейс репозитория заявок
type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.QuoteRequest) (*domain.QuoteRequest, error)
}

// NotifierClient интерфейс клиента доставки уведомлений
type NotifierClient interface {
	Enabled() bool
	Send(ctx context.Context, notification *notifier.Notification) error
}

// Metrics интерфейс счетчиков доставки уведомлений (может быть nil)
type Metrics interface {
	IncNotifierDelivery(outcome string)
}

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
