package notifier

import "errors"

var (
	// ErrDisabled возвращается, когда отправка уведомлений выключена конфигурацией
	ErrDisabled = errors.New("notifier client: notifications disabled")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier client: internal error")

	// ErrDeliveryFailed возвращается, когда принимающая сторона ответила ошибкой
	ErrDeliveryFailed = errors.New("notifier client: delivery failed")
)
