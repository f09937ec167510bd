package quotes

import "errors"

var (
	// ErrQuoteNotFound возвращается, когда заявка не найдена
	// Нормальный негативный результат, а не исключительная ситуация
	ErrQuoteNotFound = errors.New("quote request not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
