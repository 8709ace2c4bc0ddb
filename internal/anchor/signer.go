package anchor

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/temirov/chaotic-gateway/internal/apperrors"
	"github.com/temirov/chaotic-gateway/internal/constants"
	"github.com/temirov/chaotic-gateway/internal/utils"
)

const (
	privateKeyByteLength = 32
	// SignatureLength is the byte length of an r || s || v signature.
	SignatureLength  = 65
	recoveryIDOffset = 27
)

// Signer produces Ethereum-style personal message signatures with a secp256k1 key.
type Signer struct {
	privateKey *btcec.PrivateKey
	address    string
}

// NewSigner parses a hex private key, with or without 0x.
func NewSigner(privateKeyHex string) (*Signer, error) {
	keyBytes, decodeError := hex.DecodeString(utils.TrimHexPrefix(strings.TrimSpace(privateKeyHex)))
	if decodeError != nil {
		return nil, fmt.Errorf("%w: private key: %v", apperrors.ErrInvalidHexInput, decodeError)
	}
	if len(keyBytes) != privateKeyByteLength {
		return nil, fmt.Errorf("%w: private key must be %d bytes", apperrors.ErrInvalidInput, privateKeyByteLength)
	}
	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(keyBytes); overflow || scalar.IsZero() {
		return nil, fmt.Errorf("%w: private key is outside the secp256k1 group order", apperrors.ErrInvalidInput)
	}
	privateKey, publicKey := btcec.PrivKeyFromBytes(keyBytes)
	return &Signer{privateKey: privateKey, address: addressOf(publicKey)}, nil
}

// Address returns the 0x-prefixed lowercase Ethereum address of the signing key.
func (signer *Signer) Address() string {
	return signer.address
}

// SignMessage signs HashMessage(message) and returns r || s || v with v in {27, 28}.
func (signer *Signer) SignMessage(message []byte) ([]byte, error) {
	digest := HashMessage(message)
	compact, signError := ecdsa.SignCompact(signer.privateKey, digest[:], false)
	if signError != nil {
		return nil, signError
	}
	signature := make([]byte, 0, SignatureLength)
	signature = append(signature, compact[1:]...)
	return append(signature, compact[0]), nil
}

// RecoverSigner returns the address that produced signature over message.
// v may be given as 27/28 or 0/1.
func RecoverSigner(message []byte, signature []byte) (string, error) {
	if len(signature) != SignatureLength {
		return "", fmt.Errorf("%w: signature must be %d bytes", apperrors.ErrInvalidInput, SignatureLength)
	}
	recoveryByte := signature[SignatureLength-1]
	if recoveryByte < recoveryIDOffset {
		recoveryByte += recoveryIDOffset
	}
	compact := make([]byte, 0, SignatureLength)
	compact = append(compact, recoveryByte)
	compact = append(compact, signature[:SignatureLength-1]...)

	digest := HashMessage(message)
	publicKey, _, recoverError := ecdsa.RecoverCompact(compact, digest[:])
	if recoverError != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, recoverError)
	}
	return addressOf(publicKey), nil
}

func addressOf(publicKey *btcec.PublicKey) string {
	uncompressed := publicKey.SerializeUncompressed()
	digest := Keccak256(uncompressed[1:])
	return constants.HexPrefix + hex.EncodeToString(digest[HashSize-addressByteLength:])
}
