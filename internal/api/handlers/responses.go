package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response единый конверт ответа API
// data и errors взаимоисключающие: errors заполняется только для 400
type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// DecodeJSON декодирует JSON тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

// RespondJSON пишет произвольный JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondData пишет успешный ответ с данными
func RespondData(w http.ResponseWriter, status int, message string, data interface{}) {
	RespondJSON(w, status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondBadRequest пишет ответ 400 с сообщением об ошибке
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusBadRequest, Response{
		Success: false,
		Message: message,
	})
}

// RespondValidationError пишет ответ 400 с детализацией по полям
func RespondValidationError(w http.ResponseWriter, message string, fields map[string]string) {
	RespondJSON(w, http.StatusBadRequest, Response{
		Success: false,
		Message: message,
		Errors:  fields,
	})
}

// RespondNotFound пишет ответ 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusNotFound, Response{
		Success: false,
		Message: message,
	})
}

// RespondInternalError пишет ответ 500 с общим сообщением
// Внутренние детали ошибки клиенту не раскрываются
func RespondInternalError(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusInternalServerError, Response{
		Success: false,
		Message: message,
	})
}
