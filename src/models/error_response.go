package models

// ErrorBody is the inner error object of the API envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorEnvelope is the standard failure response: {"error": {"code", "message"}}.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// NewErrorEnvelope builds a failure envelope.
func NewErrorEnvelope(code, message string) ErrorEnvelope {
	return ErrorEnvelope{Error: ErrorBody{Code: code, Message: message}}
}

// SuccessResponse is the JSON shape used by Swagger for {data} payloads.
type SuccessResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}
