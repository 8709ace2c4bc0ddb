// Package anchor prepares the ledger commitment for a transaction: the
// transaction id hash and the anchor hash derived from its fingerprint, plus
// optional secp256k1 receipts signed by the gateway key.
package anchor

import (
	"encoding/hex"
	"strconv"

	"golang.org/x/crypto/sha3"

	"github.com/temirov/chaotic-gateway/internal/constants"
)

// HashSize is the byte length of a keccak256 digest.
const HashSize = 32

const personalMessagePrefix = "\x19Ethereum Signed Message:\n"

// Hash is a keccak256 digest.
type Hash [HashSize]byte

// String returns the 0x-prefixed lowercase hex form.
func (hash Hash) String() string {
	return constants.HexPrefix + hex.EncodeToString(hash[:])
}

// Keccak256 hashes the concatenation of parts with the legacy Keccak padding used by Ethereum.
func Keccak256(parts ...[]byte) Hash {
	hasher := sha3.NewLegacyKeccak256()
	for _, part := range parts {
		hasher.Write(part)
	}
	var digest Hash
	hasher.Sum(digest[:0])
	return digest
}

// HashMessage computes the EIP-191 personal message hash of message.
func HashMessage(message []byte) Hash {
	return Keccak256([]byte(personalMessagePrefix), []byte(strconv.Itoa(len(message))), message)
}
