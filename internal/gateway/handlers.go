package gateway

import (
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/temirov/chaotic-gateway/internal/anchor"
	"github.com/temirov/chaotic-gateway/internal/apperrors"
	"github.com/temirov/chaotic-gateway/internal/constants"
	"github.com/temirov/chaotic-gateway/internal/fingerprint"
	"github.com/temirov/chaotic-gateway/internal/metadata"
	"github.com/temirov/chaotic-gateway/internal/utils"
)

type fingerprintRequest struct {
	Metadata   metadata.Value `json:"metadata"`
	SeedSecret string         `json:"seedSecret"`
}

type fingerprintResponse struct {
	Fingerprint string `json:"fingerprint"`
}

type submitRequest struct {
	Metadata metadata.Value `json:"metadata"`
	// UserPubKey and UserSig are accepted for wire compatibility with wallet clients and not verified.
	UserPubKey string `json:"userPubKey,omitempty"`
	UserSig    string `json:"userSig,omitempty"`
}

type submitResponse struct {
	OK          bool   `json:"ok"`
	Fingerprint string `json:"fingerprint,omitempty"`
	Anchor      string `json:"anchor,omitempty"`
	TxIDHash    string `json:"txIDHash,omitempty"`
	Owner       string `json:"owner,omitempty"`
	Signature   string `json:"signature,omitempty"`
	Signer      string `json:"signer,omitempty"`
	Error       string `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// fingerprintHandler computes a fingerprint from the metadata and seed secret in the request body.
func fingerprintHandler(structuredLogger *zap.SugaredLogger) gin.HandlerFunc {
	return func(ginContext *gin.Context) {
		var request fingerprintRequest
		if bindError := ginContext.ShouldBindJSON(&request); bindError != nil {
			rejectRequest(ginContext, structuredLogger, bindError)
			ginContext.JSON(http.StatusBadRequest, errorResponse{Error: errorMalformedBody})
			return
		}
		if request.Metadata.Kind() == metadata.KindNull {
			ginContext.JSON(http.StatusBadRequest, errorResponse{Error: errorMissingMetadata})
			return
		}
		seedSecret, decodeError := fingerprint.DecodeSeedSecret(strings.TrimSpace(request.SeedSecret))
		if decodeError != nil {
			rejectRequest(ginContext, structuredLogger, decodeError)
			ginContext.JSON(statusFor(decodeError), errorResponse{Error: decodeError.Error()})
			return
		}
		if len(seedSecret) == 0 {
			ginContext.JSON(http.StatusBadRequest, errorResponse{Error: errorMissingSeedSecret})
			return
		}

		canonicalMetadata, canonicalError := metadata.Canonical(request.Metadata)
		if canonicalError != nil {
			rejectRequest(ginContext, structuredLogger, canonicalError)
			ginContext.JSON(statusFor(canonicalError), errorResponse{Error: canonicalError.Error()})
			return
		}
		renderFingerprint(ginContext, http.StatusOK, fingerprint.Derive(canonicalMetadata, seedSecret).String())
	}
}

// submitHandler fingerprints transaction metadata with the gateway secret and prepares its anchor record.
func submitHandler(gatewaySecret []byte, signer *anchor.Signer, structuredLogger *zap.SugaredLogger) gin.HandlerFunc {
	return func(ginContext *gin.Context) {
		var request submitRequest
		if bindError := ginContext.ShouldBindJSON(&request); bindError != nil {
			rejectRequest(ginContext, structuredLogger, bindError)
			ginContext.JSON(http.StatusBadRequest, submitResponse{Error: errorMalformedBody})
			return
		}
		metadataObject, isObject := request.Metadata.AsObject()
		if !isObject {
			ginContext.JSON(http.StatusBadRequest, submitResponse{Error: errorMetadataNotObject})
			return
		}
		txID, hasTxID := metadataObject.GetString(metadataFieldTxID)
		if !hasTxID || utils.IsBlank(txID) {
			ginContext.JSON(http.StatusBadRequest, submitResponse{Error: errorMissingTxID})
			return
		}
		owner := constants.EmptyString
		if ownerValue, hasOwner := metadataObject.Get(metadataFieldOwner); hasOwner {
			ownerText, isString := ownerValue.AsString()
			if !isString {
				ginContext.JSON(http.StatusBadRequest, submitResponse{Error: errorOwnerNotString})
				return
			}
			owner = ownerText
		}

		canonicalMetadata, canonicalError := metadata.Canonical(request.Metadata)
		if canonicalError != nil {
			rejectRequest(ginContext, structuredLogger, canonicalError)
			ginContext.JSON(statusFor(canonicalError), submitResponse{Error: canonicalError.Error()})
			return
		}
		fingerprintHex := fingerprint.Derive(canonicalMetadata, gatewaySecret).String()

		record, prepareError := anchor.Prepare(txID, fingerprintHex, owner)
		if prepareError != nil {
			rejectRequest(ginContext, structuredLogger, prepareError)
			ginContext.JSON(statusFor(prepareError), submitResponse{Error: prepareError.Error()})
			return
		}

		response := submitResponse{
			OK:          true,
			Fingerprint: record.Fingerprint,
			Anchor:      record.Anchor.String(),
			TxIDHash:    record.TxIDHash.String(),
			Owner:       record.Owner,
		}
		if signer != nil {
			signature, signError := signer.SignMessage(record.Anchor[:])
			if signError != nil {
				structuredLogger.Errorw(logEventSignFailed, constants.LogFieldError, signError)
				ginContext.JSON(http.StatusInternalServerError, submitResponse{Error: errorSignatureFailed})
				return
			}
			response.Signature = constants.HexPrefix + hex.EncodeToString(signature)
			response.Signer = signer.Address()
		}

		structuredLogger.Infow(
			logEventAnchorPrepared,
			logFieldTxID, record.TxID,
			logFieldAnchor, response.Anchor,
			logFieldSigner, response.Signer,
		)
		ginContext.JSON(http.StatusOK, response)
	}
}

// statusFor maps caller-side failures to 400 and everything else to 500.
func statusFor(requestError error) int {
	if errors.Is(requestError, apperrors.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func rejectRequest(ginContext *gin.Context, structuredLogger *zap.SugaredLogger, reason error) {
	structuredLogger.Warnw(
		logEventRejected,
		logFieldPath, ginContext.FullPath(),
		logFieldReason, reason,
	)
}
