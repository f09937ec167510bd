package ingest_webhook

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках (БД и т.п.)
	// Обработчик webhook все равно отвечает HTTP 200 с success=false
	ErrInternal = errors.New("ingest_webhook: internal error")
)
