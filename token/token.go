// Package token defines the core domain types of the StrangeToken series:
// token identifiers, the micro-tez money unit, ledger keys, the bonding-curve
// price function, per-token metadata, and the stable FA2 error tags.
//
// The package is a pure leaf: it holds no state and performs no I/O. The
// stateful action engine lives in the contract package.
package token

import (
	"encoding/binary"
)

// TokenID identifies a single token in the series. IDs are allocated
// sequentially starting at 1; id 0 is never minted.
type TokenID uint64

// MutezPerTez is the number of micro-tez in one tez.
const MutezPerTez = 1_000_000

// Mutez is an amount of micro-tez, the native payment unit.
type Mutez uint64

// Tez returns n whole tez as mutez.
func Tez(n uint64) Mutez {
	return Mutez(n * MutezPerTez)
}

// Address is an opaque account identifier. The ledger treats addresses as
// equality-comparable identifiers and attaches no further meaning to them.
type Address string

// String returns the address as a plain string.
func (a Address) String() string { return string(a) }

// LedgerKey addresses one (owner, token) cell of the ownership ledger.
// Keys are immutable values used only for lookup.
type LedgerKey struct {
	Owner   Address
	TokenID TokenID
}

// Bytes returns the canonical byte encoding of the key: the owner bytes
// followed by the token id as 8 bytes big-endian. The fixed-width suffix
// keeps the encoding unambiguous for any owner string.
func (k LedgerKey) Bytes() []byte {
	b := make([]byte, len(k.Owner)+8)
	copy(b, k.Owner)
	binary.BigEndian.PutUint64(b[len(k.Owner):], uint64(k.TokenID))
	return b
}
