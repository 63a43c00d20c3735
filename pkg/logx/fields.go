package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldDealKey         = "deal-key"
	FieldDealMode        = "deal-mode"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldEventName       = "event-name"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldLoaderState     = "loader-state"
	FieldOutcome         = "outcome"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldSessionID       = "session-id"
	FieldStack           = "stack"
	FieldTaskID          = "task-id"
	FieldTraceID         = "trace-id"
	FieldUpstream        = "upstream"
	FieldURL             = "url"
)
