package ingest_webhook

// Request произвольная полезная нагрузка стороннего form-сервиса
// Формы присылают ключи в разном регистре и с разными именами,
// поэтому разбор в типизированную структуру здесь невозможен
type Request map[string]any

// Response результат приема webhook
type Response struct {
	ID int64
}
