package quotes

import (
	"context"

	"github.com/m04kA/GLS-QuoteService/internal/domain"
)

// QuoteRepository интерфейс репозитория заявок
type QuoteRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.QuoteRequest, error)
	GetAll(ctx context.Context) ([]*domain.QuoteRequest, error)
}

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
