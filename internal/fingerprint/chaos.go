package fingerprint

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
)

const (
	// LogisticRate is the fixed r of the logistic map.
	LogisticRate = 3.99
	// Iterations is the fixed number of logistic-map steps.
	Iterations = 16
	// UnitModulus reduces the seed prefix before it is scaled into [0,1).
	UnitModulus = 1_000_000_000_000
	// QuantizedSize is the byte length of the quantized sequence.
	QuantizedSize = Iterations * 4

	quantizationScale = 1 << 32
)

// SeedToUnit maps a seed digest to [0,1) using its first eight bytes as a
// big-endian unsigned integer reduced modulo UnitModulus.
func SeedToUnit(seed [sha256.Size]byte) float64 {
	prefix := binary.BigEndian.Uint64(seed[:8])
	return float64(prefix%UnitModulus) / UnitModulus
}

// LogisticSequence iterates x = r*x*(1-x) from x0 and returns x_1 through x_16.
// x0 itself is not part of the result.
func LogisticSequence(x0 float64) [Iterations]float64 {
	var sequence [Iterations]float64
	x := x0
	for index := range sequence {
		// The conversions forbid fused multiply-add so every platform rounds each product.
		x = float64(LogisticRate*x) * float64(1-x)
		sequence[index] = x
	}
	return sequence
}

// Quantize encodes each element as floor(x*2^32) mod 2^32 in four big-endian bytes.
func Quantize(sequence [Iterations]float64) [QuantizedSize]byte {
	var quantized [QuantizedSize]byte
	for index, x := range sequence {
		word := uint32(uint64(math.Floor(x*quantizationScale)) % quantizationScale)
		binary.BigEndian.PutUint32(quantized[index*4:], word)
	}
	return quantized
}
