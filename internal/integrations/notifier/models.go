package notifier

// Notification полезная нагрузка исходящего уведомления о новой заявке
type Notification struct {
	QuoteID   int64   `json:"quote_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	City      string  `json:"city"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	Service   *string `json:"service,omitempty"`
	Comments  *string `json:"comments,omitempty"`
	CreatedAt string  `json:"created_at"`
	Source    string  `json:"source"` // "api" или "webhook"
}
