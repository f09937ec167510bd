package get_quote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GLS-QuoteService/internal/api/handlers"
	"github.com/m04kA/GLS-QuoteService/internal/service/quotes"
)

const (
	msgInvalidQuoteID  = "Invalid quote request ID"
	msgNotFound        = "Quote request not found"
	msgRetrievalFailed = "Failed to retrieve quote request"
)

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

// Handle GET /api/quotes/{quoteId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	quoteIDStr := vars["quoteId"]

	quoteID, err := strconv.ParseInt(quoteIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /api/quotes/{id} - Invalid quote ID %q: %v", quoteIDStr, err)
		handlers.RespondBadRequest(w, msgInvalidQuoteID)
		return
	}

	quote, err := h.service.GetByID(r.Context(), quoteID)
	if err != nil {
		switch {
		case errors.Is(err, quotes.ErrQuoteNotFound):
			h.logger.Warn("GET /api/quotes/{id} - Quote request not found: quote_id=%d", quoteID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /api/quotes/{id} - Failed to get quote request: quote_id=%d, error=%v", quoteID, err)
			handlers.RespondInternalError(w, msgRetrievalFailed)
		}
		return
	}

	handlers.RespondData(w, http.StatusOK, "", quote)
}
