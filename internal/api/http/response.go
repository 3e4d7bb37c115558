package http

// Response is the uniform envelope returned by every API endpoint.
// Non-2xx statuses always carry Success=false; Details holds
// field-level validation errors and is populated only outside
// production mode.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK wraps payload data in a success envelope.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// OKMessage returns a success envelope with a human-readable message.
func OKMessage(message string) Response {
	return Response{Success: true, Message: message}
}

// Fail returns a failure envelope with a client-safe error message.
func Fail(errMsg string) Response {
	return Response{Success: false, Error: errMsg}
}

// FailDetails returns a failure envelope carrying field-level detail.
func FailDetails(errMsg string, details interface{}) Response {
	return Response{Success: false, Error: errMsg, Details: details}
}
