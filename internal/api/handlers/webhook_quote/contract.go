package webhook_quote

import (
	"context"

	ingestWebhook "github.com/m04kA/GLS-QuoteService/internal/usecase/ingest_webhook"
)

type IngestWebhookUseCase interface {
	Execute(ctx context.Context, payload ingestWebhook.Request) (*ingestWebhook.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
