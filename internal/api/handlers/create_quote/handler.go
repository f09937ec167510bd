package create_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/GLS-QuoteService/internal/api/handlers"
	submitQuote "github.com/m04kA/GLS-QuoteService/internal/usecase/submit_quote"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidQuoteData   = "Invalid quote request data"
	msgSubmitFailed       = "Failed to submit quote request"
	msgSubmitted          = "Quote request submitted successfully"
)

type Handler struct {
	useCase SubmitQuoteUseCase
	logger  Logger
}

func NewHandler(useCase SubmitQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateQuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var validationErr *submitQuote.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /api/quotes - Validation failed: %v", err)
			handlers.RespondValidationError(w, msgInvalidQuoteData, validationErr.Fields)

		default:
			h.logger.Error("POST /api/quotes - Failed to submit quote request: %v", err)
			handlers.RespondInternalError(w, msgSubmitFailed)
		}
		return
	}

	h.logger.Info("POST /api/quotes - Quote request created: quote_id=%d", result.ID)
	handlers.RespondData(w, http.StatusCreated, msgSubmitted, FromUseCaseResponse(result))
}
