package submit_quote

import (
	"time"

	"github.com/m04kA/GLS-QuoteService/internal/domain"
)

// Request входные данные заявки, принимаемые от недоверенного источника
// id и createdAt назначаются сервером и во входной модели отсутствуют
type Request struct {
	Name    string `validate:"required"`
	Email   string `validate:"required"`
	City    string `validate:"required"`
	Address string `validate:"required"`
	Phone   string `validate:"required"`

	Service  *string
	Comments *string
}

// Response созданная заявка со значениями, назначенными хранилищем
type Response struct {
	ID        int64
	Name      string
	Email     string
	City      string
	Address   string
	Phone     string
	Service   *string
	Comments  *string
	CreatedAt time.Time
}

// toDomain конвертирует запрос в доменную модель
// Пустые опциональные поля нормализуются в NULL
func (r *Request) toDomain() *domain.QuoteRequest {
	return &domain.QuoteRequest{
		Name:     r.Name,
		Email:    r.Email,
		City:     r.City,
		Address:  r.Address,
		Phone:    r.Phone,
		Service:  normalizeOptional(r.Service),
		Comments: normalizeOptional(r.Comments),
	}
}

func fromDomain(quote *domain.QuoteRequest) *Response {
	return &Response{
		ID:        quote.ID,
		Name:      quote.Name,
		Email:     quote.Email,
		City:      quote.City,
		Address:   quote.Address,
		Phone:     quote.Phone,
		Service:   quote.Service,
		Comments:  quote.Comments,
		CreatedAt: quote.CreatedAt,
	}
}

func normalizeOptional(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
