package shared

type ApiErrorType string

const (
	ApiErrorTypeInvalidSession ApiErrorType = "invalid_session"
	ApiErrorTypeValidation     ApiErrorType = "validation"
	ApiErrorTypeForbidden      ApiErrorType = "forbidden"
	ApiErrorTypeNotFound       ApiErrorType = "not_found"

	ApiErrorTypeOther ApiErrorType = "other"
)

type ApiError struct {
	Type   ApiErrorType `json:"type"`
	Status int          `json:"status"`
	Msg    string       `json:"msg"`

	// per-field validation messages from the server, first message per field
	Fields map[string]string `json:"fields,omitempty"`
}
