package gateway

import (
	"encoding/xml"
	"strings"

	"github.com/gin-gonic/gin"
)

// preferredMime determines the response MIME type using the format query parameter or the Accept header.
func preferredMime(ginContext *gin.Context) string {
	if explicitFormat := ginContext.Query(queryParameterFormat); explicitFormat != "" {
		return strings.ToLower(strings.TrimSpace(explicitFormat))
	}
	return strings.ToLower(strings.TrimSpace(ginContext.GetHeader(headerAccept)))
}

// renderFingerprint writes a computed fingerprint in the requested representation. JSON is the default.
func renderFingerprint(ginContext *gin.Context, statusCode int, fingerprintHex string) {
	preferred := preferredMime(ginContext)
	switch {
	case strings.Contains(preferred, mimeTextPlain) || preferred == "text":
		ginContext.Data(statusCode, mimeTextPlainUTF8, []byte(fingerprintHex))
	case strings.Contains(preferred, mimeApplicationXML) || strings.Contains(preferred, mimeTextXML) || preferred == "xml":
		type xmlEnvelope struct {
			XMLName xml.Name `xml:"fingerprint"`
			Text    string   `xml:",chardata"`
		}
		ginContext.XML(statusCode, xmlEnvelope{Text: fingerprintHex})
	default:
		ginContext.JSON(statusCode, fingerprintResponse{Fingerprint: fingerprintHex})
	}
}
