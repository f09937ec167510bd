package models

import (
	"time"

	"github.com/m04kA/GLS-QuoteService/internal/domain"
)

// QuoteResponse модель заявки, отдаваемая клиентам API
type QuoteResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	City      string  `json:"city"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	Service   *string `json:"service,omitempty"`
	Comments  *string `json:"comments,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// FromDomainQuote конвертирует доменную модель в модель ответа
func FromDomainQuote(quote *domain.QuoteRequest) *QuoteResponse {
	return &QuoteResponse{
		ID:        quote.ID,
		Name:      quote.Name,
		Email:     quote.Email,
		City:      quote.City,
		Address:   quote.Address,
		Phone:     quote.Phone,
		Service:   quote.Service,
		Comments:  quote.Comments,
		CreatedAt: quote.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainQuoteList конвертирует список доменных моделей
func FromDomainQuoteList(quotes []*domain.QuoteRequest) []*QuoteResponse {
	result := make([]*QuoteResponse, 0, len(quotes))
	for _, quote := range quotes {
		result = append(result, FromDomainQuote(quote))
	}
	return result
}
