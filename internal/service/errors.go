package service

import "errors"

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidField  = errors.New("invalid field value")
	ErrUnknownField  = errors.New("unknown field")
)

// FieldError 指出是哪一個欄位出錯，Err 為 ErrInvalidField 或 ErrUnknownField
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrUnknownField) {
		return "Unknown field: " + e.Field
	}
	return "Invalid " + e.Field
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func invalidField(field string) error {
	return &FieldError{Field: field, Err: ErrInvalidField}
}
