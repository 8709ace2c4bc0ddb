package gateway

const (
	// PathFingerprint computes a fingerprint for caller supplied metadata and secret.
	PathFingerprint = "/fingerprint"
	// PathSubmit prepares an anchor record with the gateway secret.
	PathSubmit = "/submit"
	// PathHealth reports liveness without authentication.
	PathHealth = "/healthz"

	headerAccept    = "Accept"
	headerRequestID = "X-Request-ID"

	queryParameterKey    = "key"
	queryParameterFormat = "format"

	redactedPlaceholder = "***REDACTED***"

	mimeApplicationXML  = "application/xml"
	mimeTextXML         = "text/xml"
	mimeTextPlain       = "text/plain"
	mimeTextPlainUTF8   = "text/plain; charset=utf-8"

	// ErrorMissingClientKey indicates that the key query parameter is missing or wrong.
	ErrorMissingClientKey   = "missing client key"
	errorMissingMetadata    = "missing metadata"
	errorMissingSeedSecret  = "missing seedSecret"
	errorMetadataNotObject  = "metadata must be an object"
	errorMissingTxID        = "metadata.txID must be a non-empty string"
	errorOwnerNotString     = "metadata.from must be a string"
	errorMalformedBody      = "malformed request body"
	errorSignatureFailed    = "signing failed"
	healthStatusOK          = "ok"
	metadataFieldTxID       = "txID"
	metadataFieldOwner      = "from"
	logFieldMethod          = "method"
	logFieldPath            = "path"
	logFieldClientIP        = "client_ip"
	logFieldStatus          = "status"
	logFieldTxID            = "tx_id"
	logFieldAnchor          = "anchor"
	logFieldSigner          = "signer"
	logFieldPort            = "port"
	logFieldSecret          = "secret_fingerprint"
	logFieldReason          = "reason"
	logFieldExpectedKey     = "expected_fingerprint"
	logEventRequestReceived = "request received"
	logEventResponseSent    = "response sent"
	logEventForbidden       = "forbidden request"
	logEventRejected        = "request rejected"
	logEventAnchorPrepared  = "anchor prepared"
	logEventSignFailed      = "anchor signing failed"
	logEventServing         = "gateway listening"
)
