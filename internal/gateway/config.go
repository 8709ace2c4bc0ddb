package gateway

import (
	"fmt"

	"github.com/temirov/chaotic-gateway/internal/apperrors"
	"github.com/temirov/chaotic-gateway/internal/fingerprint"
	"github.com/temirov/chaotic-gateway/internal/utils"
)

// DefaultPort is the TCP port used by the HTTP server when no explicit port is provided.
const DefaultPort = 3000

// Configuration captures runtime settings for the HTTP gateway.
type Configuration struct {
	// ServiceSecret authenticates clients through the key query parameter.
	ServiceSecret string
	// GatewaySecret is the hex seed secret mixed into every submitted fingerprint.
	GatewaySecret string
	// GatewayPrivateKey optionally signs anchors; empty disables receipts.
	GatewayPrivateKey string
	Port              int
	LogLevel          string
}

// validateConfig confirms the presence and shape of required configuration values
// and returns the decoded gateway secret.
func validateConfig(config Configuration) ([]byte, error) {
	if utils.IsBlank(config.ServiceSecret) {
		return nil, apperrors.ErrMissingServiceSecret
	}
	if utils.IsBlank(config.GatewaySecret) {
		return nil, apperrors.ErrMissingGatewaySecret
	}
	gatewaySecret, decodeError := fingerprint.DecodeSeedSecret(config.GatewaySecret)
	if decodeError != nil {
		return nil, fmt.Errorf("GATEWAY_SECRET: %w", decodeError)
	}
	if len(gatewaySecret) == 0 {
		return nil, apperrors.ErrMissingGatewaySecret
	}
	return gatewaySecret, nil
}
