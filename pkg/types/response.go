package types

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the uniform envelope every operation returns. StatusCode
// doubles as the HTTP status code. Optional fields carry omitempty so the
// serialized form never contains null placeholders, and the struct tag
// order fixes the key order: status, message, action, statusCode, data,
// details.
type Response struct {
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	Action     string `json:"action,omitempty"`
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data,omitempty"`
	Details    string `json:"details,omitempty"`
}

// NewSuccess returns a success envelope. data may be nil, a single record,
// or a list of records.
func NewSuccess(message string, statusCode int, data any) *Response {
	return &Response{
		Status:     StatusSuccess,
		Message:    message,
		StatusCode: statusCode,
		Data:       data,
	}
}

// NewError returns an error envelope. details carries diagnostic text on
// datastore failures and is empty otherwise.
func NewError(message string, statusCode int, details string) *Response {
	return &Response{
		Status:     StatusError,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// SetMessage replaces the message after construction. Convenience for
// callers that reuse a query result under an operation-specific message.
func (r *Response) SetMessage(message string) {
	r.Message = message
}

// IsSuccess reports whether the envelope carries a success status.
func (r *Response) IsSuccess() bool {
	return r.Status == StatusSuccess
}
