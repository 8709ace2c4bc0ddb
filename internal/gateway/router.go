package gateway

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/temirov/chaotic-gateway/internal/anchor"
	"github.com/temirov/chaotic-gateway/internal/logging"
	"github.com/temirov/chaotic-gateway/internal/utils"
)

// BuildRouter validates config and assembles the gin engine serving the gateway routes.
func BuildRouter(config Configuration, structuredLogger *zap.SugaredLogger) (*gin.Engine, error) {
	gatewaySecret, err := validateConfig(config)
	if err != nil {
		return nil, err
	}

	var signer *anchor.Signer
	if !utils.IsBlank(config.GatewayPrivateKey) {
		parsedSigner, signerError := anchor.NewSigner(config.GatewayPrivateKey)
		if signerError != nil {
			return nil, fmt.Errorf("GATEWAY_PRIVATE_KEY: %w", signerError)
		}
		signer = parsedSigner
	}

	if strings.ToLower(config.LogLevel) == logging.LevelDebug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if lvl := strings.ToLower(config.LogLevel); lvl == logging.LevelInfo || lvl == logging.LevelDebug {
		router.Use(requestResponseLogger(structuredLogger))
	}
	router.Use(gin.Recovery())

	router.GET(PathHealth, func(ginContext *gin.Context) {
		ginContext.JSON(http.StatusOK, gin.H{logFieldStatus: healthStatusOK})
	})

	secured := router.Group("/", secretMiddleware(config.ServiceSecret, structuredLogger))
	secured.POST(PathFingerprint, fingerprintHandler(structuredLogger))
	secured.POST(PathSubmit, submitHandler(gatewaySecret, signer, structuredLogger))
	return router, nil
}

// Serve builds the router and blocks serving it on the configured port.
func Serve(config Configuration, structuredLogger *zap.SugaredLogger) error {
	router, buildError := BuildRouter(config, structuredLogger)
	if buildError != nil {
		return buildError
	}
	if config.Port <= 0 {
		config.Port = DefaultPort
	}
	structuredLogger.Infow(
		logEventServing,
		logFieldPort, config.Port,
		logFieldSecret, utils.SecretFingerprint(strings.TrimSpace(config.ServiceSecret)),
	)
	return router.Run(fmt.Sprintf(":%d", config.Port))
}
