package webhook_quote

import (
	"net/http"

	"github.com/m04kA/GLS-QuoteService/internal/api/handlers"
	ingestWebhook "github.com/m04kA/GLS-QuoteService/internal/usecase/ingest_webhook"
)

const (
	msgProcessed        = "Webhook processed successfully"
	msgProcessingFailed = "Webhook processing failed"
)

type Handler struct {
	useCase IngestWebhookUseCase
	logger  Logger
}

func NewHandler(useCase IngestWebhookUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /webhook/quote
// Любой исход, включая ошибку разбора тела, отдается со статусом 200
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var payload ingestWebhook.Request
	if err := handlers.DecodeJSON(r, &payload); err != nil {
		h.logger.Warn("POST /webhook/quote - Invalid payload: %v", err)
		handlers.RespondJSON(w, http.StatusOK, WebhookResponse{
			Success: false,
			Message: msgProcessingFailed,
		})
		return
	}

	result, err := h.useCase.Execute(r.Context(), payload)
	if err != nil {
		h.logger.Error("POST /webhook/quote - Processing failed: %v", err)
		handlers.RespondJSON(w, http.StatusOK, WebhookResponse{
			Success: false,
			Message: msgProcessingFailed,
		})
		return
	}

	h.logger.Info("POST /webhook/quote - Quote request created: quote_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, WebhookResponse{
		Success: true,
		Message: msgProcessed,
		ID:      result.ID,
	})
}
