package middleware

// Error codes shared with the handler layer.
const (
	ErrorCodeInternal          = "INTERNAL_ERROR"
	ErrorCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrorCodeRequestTimeout    = "REQUEST_TIMEOUT"
)

// errorBody mirrors the handler's error envelope so middleware-generated
// failures look the same to the gateway as handler failures.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
