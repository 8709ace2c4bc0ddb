package gateway_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/temirov/chaotic-gateway/internal/gateway"
	"github.com/temirov/chaotic-gateway/internal/logging"
)

// Test constants used across the entire test suite for this package.
const (
	TestServiceSecret     = "sekret"
	TestGatewaySecret     = "0x0000000000000000000000000000000000000000000000000000000000000000"
	TestGatewayPrivateKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	TestSignerAddress     = "0x2c7536e3605d9c16a7a3d7b1898e529396a65c23"

	goldenMetadataJSON = `{"txID":"tx1","amount":5}`
	goldenFingerprint  = "9ec78104ac19fc6363e43fb99812b23e293d99afb045386abe694635aee9f9c4"
	goldenTxIDHash     = "0x40e99515219566cb0bb7fd1fdcefc9e146fc92b6915d7051709f466224eac4b4"
	goldenAnchor       = "0x7a3baebde5834278702d9459f70d51d52bf35a665c848539734d73cdf19ff1d0"

	messageBuildRouterError     = "BuildRouter error: %v"
	messageUnexpectedStatus     = "status=%d want=%d body=%s"
	messageUnexpectedBodyFormat = "body=%s want=%s"
)

// NewTestRouter creates a router with the test secrets and an optional signing key.
func NewTestRouter(testingInstance *testing.T, privateKey string) *gin.Engine {
	testingInstance.Helper()
	logger, _ := zap.NewDevelopment()
	testingInstance.Cleanup(func() { _ = logger.Sync() })

	router, buildError := gateway.BuildRouter(gateway.Configuration{
		ServiceSecret:     TestServiceSecret,
		GatewaySecret:     TestGatewaySecret,
		GatewayPrivateKey: privateKey,
		LogLevel:          logging.LevelDebug,
	}, logger.Sugar())
	if buildError != nil {
		testingInstance.Fatalf(messageBuildRouterError, buildError)
	}
	return router
}

// performRequest sends body to path with the given query string and headers and records the response.
func performRequest(router http.Handler, method string, pathWithQuery string, body string, headers map[string]string) *httptest.ResponseRecorder {
	responseRecorder := httptest.NewRecorder()
	request := httptest.NewRequest(method, pathWithQuery, bytes.NewBufferString(body))
	request.Header.Set("Content-Type", "application/json")
	for headerName, headerValue := range headers {
		request.Header.Set(headerName, headerValue)
	}
	router.ServeHTTP(responseRecorder, request)
	return responseRecorder
}

func decodeJSON(testingInstance *testing.T, recorder *httptest.ResponseRecorder, target any) {
	testingInstance.Helper()
	if decodeError := json.Unmarshal(recorder.Body.Bytes(), target); decodeError != nil {
		testingInstance.Fatalf("decode %s: %v", recorder.Body.String(), decodeError)
	}
}
