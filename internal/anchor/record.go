package anchor

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/temirov/chaotic-gateway/internal/apperrors"
	"github.com/temirov/chaotic-gateway/internal/constants"
	"github.com/temirov/chaotic-gateway/internal/utils"
)

const (
	fingerprintHexLength = 64
	addressByteLength    = 20
)

// Record holds the values a ledger contract would receive for one transaction.
type Record struct {
	TxID        string
	Fingerprint string
	TxIDHash    Hash
	Anchor      Hash
	Owner       string
}

// Prepare derives the anchor record for txID and its lowercase hex fingerprint.
// owner is optional; when present it must be a 0x-prefixed 20-byte address and
// is normalized to lowercase.
func Prepare(txID string, fingerprintHex string, owner string) (Record, error) {
	if utils.IsBlank(txID) {
		return Record{}, fmt.Errorf("%w: txID is required", apperrors.ErrInvalidInput)
	}
	if !isFingerprintHex(fingerprintHex) {
		return Record{}, fmt.Errorf("%w: fingerprint must be %d lowercase hex characters", apperrors.ErrInvalidInput, fingerprintHexLength)
	}
	normalizedOwner, ownerError := normalizeAddress(owner)
	if ownerError != nil {
		return Record{}, ownerError
	}

	preAnchor := HashMessage([]byte(txID + fingerprintHex))
	return Record{
		TxID:        txID,
		Fingerprint: fingerprintHex,
		TxIDHash:    HashMessage([]byte(txID)),
		Anchor:      HashMessage([]byte(preAnchor.String())),
		Owner:       normalizedOwner,
	}, nil
}

func isFingerprintHex(value string) bool {
	if len(value) != fingerprintHexLength || strings.ToLower(value) != value {
		return false
	}
	_, decodeError := hex.DecodeString(value)
	return decodeError == nil
}

func normalizeAddress(address string) (string, error) {
	if address == "" {
		return "", nil
	}
	if !utils.HasAnyPrefix(address, constants.HexPrefix) {
		return "", fmt.Errorf("%w: owner %q must be 0x-prefixed", apperrors.ErrInvalidInput, address)
	}
	decoded, decodeError := hex.DecodeString(utils.TrimHexPrefix(address))
	if decodeError != nil || len(decoded) != addressByteLength {
		return "", fmt.Errorf("%w: owner %q is not a %d-byte address", apperrors.ErrInvalidInput, address, addressByteLength)
	}
	return constants.HexPrefix + hex.EncodeToString(decoded), nil
}
