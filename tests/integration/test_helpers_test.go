package integration_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"go.uber.org/zap"

	"github.com/temirov/chaotic-gateway/internal/gateway"
)

const (
	serviceSecretValue      = "sekret"
	gatewaySecretValue      = "0000000000000000000000000000000000000000000000000000000000000000"
	gatewayPrivateKeyValue  = "0000000000000000000000000000000000000000000000000000000000000001"
	gatewaySignerAddress    = "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf"
	headerContentTypeKey    = "Content-Type"
	mimeTypeApplicationJSON = "application/json"
	logLevelDebug           = "debug"
	keyQueryParameter       = "key"

	transferMetadataJSON = `{"txID":"tx1","amount":5}`
	transferFingerprint  = "9ec78104ac19fc6363e43fb99812b23e293d99afb045386abe694635aee9f9c4"
	transferTxIDHash     = "0x40e99515219566cb0bb7fd1fdcefc9e146fc92b6915d7051709f466224eac4b4"
	transferAnchor       = "0x7a3baebde5834278702d9459f70d51d52bf35a665c848539734d73cdf19ff1d0"

	buildRouterFailedFormat = "BuildRouter error: %v"
	requestErrorFormat      = "request error: %v"
	unexpectedStatusFormat  = "status=%d body=%s"
	bodyMismatchFormat      = "body=%q want=%q"
	decodeErrorFormat       = "decode %s: %v"
)

// newIntegrationServer builds the gateway behind a real HTTP listener.
func newIntegrationServer(testingInstance *testing.T, privateKey string) *httptest.Server {
	testingInstance.Helper()
	router, buildRouterError := gateway.BuildRouter(gateway.Configuration{
		ServiceSecret:     serviceSecretValue,
		GatewaySecret:     gatewaySecretValue,
		GatewayPrivateKey: privateKey,
		LogLevel:          logLevelDebug,
	}, newLogger(testingInstance))
	if buildRouterError != nil {
		testingInstance.Fatalf(buildRouterFailedFormat, buildRouterError)
	}
	server := httptest.NewServer(router)
	testingInstance.Cleanup(server.Close)
	return server
}

// endpointURL joins the server address with path and, when requested, the client key.
func endpointURL(server *httptest.Server, path string, includeKey bool) string {
	requestURL, _ := url.Parse(server.URL + path)
	if includeKey {
		queryValues := requestURL.Query()
		queryValues.Set(keyQueryParameter, serviceSecretValue)
		requestURL.RawQuery = queryValues.Encode()
	}
	return requestURL.String()
}

// postJSON sends body to targetURL and returns the status code with the raw response body.
func postJSON(testingInstance *testing.T, targetURL string, body string) (int, []byte) {
	testingInstance.Helper()
	httpResponse, requestError := http.Post(targetURL, mimeTypeApplicationJSON, bytes.NewBufferString(body))
	if requestError != nil {
		testingInstance.Fatalf(requestErrorFormat, requestError)
	}
	defer httpResponse.Body.Close()
	responseBytes, _ := io.ReadAll(httpResponse.Body)
	return httpResponse.StatusCode, responseBytes
}

func decodeBody(testingInstance *testing.T, responseBytes []byte, target any) {
	testingInstance.Helper()
	if decodeError := json.Unmarshal(responseBytes, target); decodeError != nil {
		testingInstance.Fatalf(decodeErrorFormat, string(responseBytes), decodeError)
	}
}

// newLogger constructs a development logger for tests.
func newLogger(testingInstance *testing.T) *zap.SugaredLogger {
	testingInstance.Helper()
	logger, _ := zap.NewDevelopment()
	testingInstance.Cleanup(func() { _ = logger.Sync() })
	return logger.Sugar()
}
