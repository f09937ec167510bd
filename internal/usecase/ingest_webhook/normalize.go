package ingest_webhook

import (
	"github.com/m04kA/GLS-QuoteService/internal/domain"
	"github.com/m04kA/GLS-QuoteService/pkg/ptr"
)

// Таблицы алиасов ключей известных интеграций (Formspree, Netlify Forms и т.п.)
// Нормализация выполняется один раз на границе, дальше система работает
// только с канонической моделью
var (
	nameAliases     = []string{"name", "Name"}
	emailAliases    = []string{"email", "Email"}
	phoneAliases    = []string{"phone", "Phone"}
	cityAliases     = []string{"city", "City"}
	addressAliases  = []string{"address", "Address"}
	serviceAliases  = []string{"service", "Service"}
	commentsAliases = []string{"comments", "Comments", "message"}
)

// normalize отображает ненормализованную полезную нагрузку в доменную модель
// service по умолчанию "other", comments берется из message при отсутствии
// Обязательные поля НЕ проверяются: путь webhook намеренно разрешающий
// и может сохранить пустые строки (см. DESIGN.md)
func normalize(payload Request) *domain.QuoteRequest {
	quote := &domain.QuoteRequest{
		Name:    pick(payload, nameAliases),
		Email:   pick(payload, emailAliases),
		Phone:   pick(payload, phoneAliases),
		City:    pick(payload, cityAliases),
		Address: pick(payload, addressAliases),
	}

	if service := pick(payload, serviceAliases); service != "" {
		quote.Service = ptr.Ptr(service)
	} else {
		quote.Service = ptr.Ptr(string(domain.ServiceOther))
	}

	if comments := pick(payload, commentsAliases); comments != "" {
		quote.Comments = ptr.Ptr(comments)
	}

	return quote
}

// pick возвращает первое непустое строковое значение по списку алиасов
func pick(payload Request, aliases []string) string {
	for _, key := range aliases {
		if value, ok := payload[key]; ok {
			if s, ok := value.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
