package submit_quote

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal возвращается при внутренних ошибках (БД и т.п.)
	ErrInternal = errors.New("submit_quote: internal error")
)

// ValidationError ошибка валидации входных данных с детализацией по полям
// Обнаруживается до обращения к хранилищу: заявка при этом не создается
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("submit_quote: validation failed for %d field(s)", len(e.Fields))
}
