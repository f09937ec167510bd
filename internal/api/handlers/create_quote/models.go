package create_quote

import (
	"time"

	submitQuote "github.com/m04kA/GLS-QuoteService/internal/usecase/submit_quote"
)

// CreateQuoteRequest HTTP request model
type CreateQuoteRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	City     string  `json:"city"`
	Address  string  `json:"address"`
	Phone    string  `json:"phone"`
	Service  *string `json:"service,omitempty"`
	Comments *string `json:"comments,omitempty"`
}

// QuoteResponse HTTP response model
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateQuoteRequest) ToUseCaseRequest() *submitQuote.Request {
	return &submitQuote.Request{
		Name:     r.Name,
		Email:    r.Email,
		City:     r.City,
		Address:  r.Address,
		Phone:    r.Phone,
		Service:  r.Service,
		Comments: r.Comments,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		Email:     resp.Email,
		City:      resp.City,
		Address:   resp.Address,
		Phone:     resp.Phone,
		Service:   resp.Service,
		Comments:  resp.Comments,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
