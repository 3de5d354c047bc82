package models

import (
	"errors"
	"fmt"
)

// Сентинельные ошибки разбора и валидации документов выгрузки.
var (
	ErrMalformedDate           = errors.New("malformed compact date")
	ErrMalformedDateTime       = errors.New("malformed compact datetime")
	ErrUnsupportedVariantShape = errors.New("unsupported variant value shape")
	ErrInvalidEnvelopeVariant  = errors.New("envelope must contain exactly one document variant")
	ErrMissingIdentifier       = errors.New("record has no content identifier field")
)

// ValidationError - ошибка валидации документа с путём до проблемного поля.
type ValidationError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LotRangeError - запрошенный номер лота вне диапазона [1:Max].
type LotRangeError struct {
	Requested int
	Max       int
}

func (e *LotRangeError) Error() string {
	return fmt.Sprintf("lot number %d is out of range [1:%d]", e.Requested, e.Max)
}

// ErrorResponse описывает ошибку с HTTP-кодом и сообщением.
type ErrorResponse struct {
	StatusCode int    `json:"-"`
	Message    string `json:"reason"`
}

// NewErrorResponse создает новую ошибку с кодом и сообщением.
func NewErrorResponse(statusCode int, message string) *ErrorResponse {
	return &ErrorResponse{
		StatusCode: statusCode,
		Message:    message}
}

// Реализация метода Error() для удовлетворения интерфейса error.
func (e *ErrorResponse) Error() string {
	return e.Message
}

// missingField возвращает ошибку отсутствующего обязательного поля.
func missingField(path, field string) error {
	return &ValidationError{Path: joinPath(path, field), Reason: "required field is missing"}
}

// invalidField возвращает ошибку некорректного значения поля.
func invalidField(path, field string, err error) error {
	return &ValidationError{Path: joinPath(path, field), Reason: "invalid value", Err: err}
}

func joinPath(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
