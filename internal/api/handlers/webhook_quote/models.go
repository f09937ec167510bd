package webhook_quote

// WebhookResponse ответ webhook-интеграции
// HTTP статус всегда 200: сторонние form-сервисы трактуют не-200 как сбой
// доставки и деструктивно ретраят, поэтому исход передается флагом success
type WebhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}
