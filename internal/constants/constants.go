package constants

const (
	// EmptyString is returned alongside errors where a string result is expected.
	EmptyString = ""

	// LogFieldError identifies the structured log field name for an error.
	LogFieldError = "error"

	// LogFieldLatencyMilliseconds identifies the structured log field name for latency in milliseconds.
	LogFieldLatencyMilliseconds = "latency_ms"

	// LogFieldRequestID identifies the structured log field carrying the per-request identifier.
	LogFieldRequestID = "request_id"

	// HexPrefix is the optional prefix accepted on hex encoded inputs.
	HexPrefix = "0x"
)
