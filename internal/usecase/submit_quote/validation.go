package submit_quote

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest валидирует входные данные запроса
// Возвращает *ValidationError с сообщениями по каждому непрошедшему полю
func validateRequest(req *Request) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		// InvalidValidationError и прочие ошибки самого валидатора
		return &ValidationError{Fields: map[string]string{"request": "invalid request"}}
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fieldName(fe)] = fieldMessage(fe)
	}

	return &ValidationError{Fields: fields}
}

// fieldName возвращает имя поля в нотации JSON (name, email, ...)
func fieldName(fe validator.FieldError) string {
	return strings.ToLower(fe.Field())
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	default:
		return "incorrect value passed"
	}
}
