// Package fingerprint derives the deterministic 32-byte commitment anchored
// for each transaction: SHA-256 over the canonical metadata and a seed secret,
// stretched through sixteen logistic-map steps, quantized and hashed again.
//
// The logistic map is a deterministic mixing step only. It adds no security
// margin beyond the outer SHA-256.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/temirov/chaotic-gateway/internal/apperrors"
	"github.com/temirov/chaotic-gateway/internal/metadata"
	"github.com/temirov/chaotic-gateway/internal/utils"
)

// Size is the byte length of a fingerprint.
const Size = sha256.Size

// Digest is a derived fingerprint.
type Digest [Size]byte

// String returns the lowercase 64-character hex form.
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// Trace exposes every intermediate value of one derivation.
type Trace struct {
	Seed      [sha256.Size]byte
	X0        float64
	Sequence  [Iterations]float64
	Quantized [QuantizedSize]byte
	Digest    Digest
}

// Derive computes the fingerprint of already canonical metadata bytes and raw seed secret bytes.
func Derive(canonicalMetadata []byte, seedSecret []byte) Digest {
	return Explain(canonicalMetadata, seedSecret).Digest
}

// Explain performs the derivation and keeps the intermediate values.
func Explain(canonicalMetadata []byte, seedSecret []byte) Trace {
	var trace Trace

	seedHash := sha256.New()
	seedHash.Write(canonicalMetadata)
	seedHash.Write(seedSecret)
	seedHash.Sum(trace.Seed[:0])

	trace.X0 = SeedToUnit(trace.Seed)
	trace.Sequence = LogisticSequence(trace.X0)
	trace.Quantized = Quantize(trace.Sequence)

	outerHash := sha256.New()
	outerHash.Write(trace.Quantized[:])
	outerHash.Write(canonicalMetadata)
	outerHash.Sum(trace.Digest[:0])
	return trace
}

// DecodeSeedSecret strips an optional 0x prefix and decodes the remaining hex.
func DecodeSeedSecret(seedSecretHex string) ([]byte, error) {
	decoded, decodeError := hex.DecodeString(utils.TrimHexPrefix(seedSecretHex))
	if decodeError != nil {
		return nil, fmt.Errorf("%w: seed secret: %v", apperrors.ErrInvalidHexInput, decodeError)
	}
	return decoded, nil
}

// Compute canonicalizes metadata, decodes the hex seed secret and derives the fingerprint.
func Compute(metadataValue metadata.Value, seedSecretHex string) (Digest, error) {
	trace, traceError := ComputeTrace(metadataValue, seedSecretHex)
	if traceError != nil {
		return Digest{}, traceError
	}
	return trace.Digest, nil
}

// ComputeHex is Compute returning the lowercase hex encoding.
func ComputeHex(metadataValue metadata.Value, seedSecretHex string) (string, error) {
	digest, computeError := Compute(metadataValue, seedSecretHex)
	if computeError != nil {
		return "", computeError
	}
	return digest.String(), nil
}

// ComputeTrace is Compute keeping the intermediate values.
func ComputeTrace(metadataValue metadata.Value, seedSecretHex string) (Trace, error) {
	seedSecret, decodeError := DecodeSeedSecret(seedSecretHex)
	if decodeError != nil {
		return Trace{}, decodeError
	}
	canonicalMetadata, canonicalError := metadata.Canonical(metadataValue)
	if canonicalError != nil {
		return Trace{}, canonicalError
	}
	return Explain(canonicalMetadata, seedSecret), nil
}
