package token

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Fixed descriptive fields shared by every token in the series.
const (
	// TokenName is the display name of every token.
	TokenName = "Strange Token"

	// TokenSymbol is the ticker symbol of every token.
	TokenSymbol = "STRANGE"

	// TokenDecimals marks the tokens as indivisible.
	TokenDecimals = "0"

	// SeedSize is the length of the per-token seed fragment in bytes.
	SeedSize = 6
)

// TokenInfo is the immutable per-token metadata record, written exactly once
// at mint time and never mutated afterward.
type TokenInfo struct {
	ID       TokenID
	Metadata map[string][]byte
}

// Seed derives the cosmetic per-token seed fragment: the first SeedSize bytes
// of a blake2b-256 hash over the ledger key bytes, the block level and the
// mint timestamp. The seed is derived entropy for display purposes only and
// feeds no security decision.
func Seed(key LedgerKey, level uint64, now time.Time) []byte {
	keyBytes := key.Bytes()
	buf := make([]byte, len(keyBytes)+16)
	copy(buf, keyBytes)
	binary.BigEndian.PutUint64(buf[len(keyBytes):], level)
	binary.BigEndian.PutUint64(buf[len(keyBytes)+8:], uint64(now.Unix()))
	sum := blake2b.Sum256(buf)
	return sum[:SeedSize]
}

// MakeTokenInfo builds the metadata record for a freshly minted token.
func MakeTokenInfo(id TokenID, seed []byte) *TokenInfo {
	return &TokenInfo{
		ID: id,
		Metadata: map[string][]byte{
			"decimals": []byte(TokenDecimals),
			"name":     []byte(TokenName),
			"seed":     seed,
			"symbol":   []byte(TokenSymbol),
		},
	}
}
