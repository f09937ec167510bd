package list_quotes

import (
	"net/http"

	"github.com/m04kA/GLS-QuoteService/internal/api/handlers"
)

const msgRetrievalFailed = "Failed to retrieve quote requests"

type Handler struct {
	service QuoteService
	logger  Logger
}

func NewHandler(service QuoteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /api/quotes - Failed to list quote requests: %v", err)
		handlers.RespondInternalError(w, msgRetrievalFailed)
		return
	}

	handlers.RespondData(w, http.StatusOK, "", result)
}
