package list_quotes

import (
	"context"

	"github.com/m04kA/GLS-QuoteService/internal/service/quotes/models"
)

type QuoteService interface {
	List(ctx context.Context) ([]*models.QuoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
