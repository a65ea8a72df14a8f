package token

import (
	"encoding/json"
	"fmt"
)

// MetadataURL is the published location of the collection-level metadata
// document of the reference deployment.
const MetadataURL = "ipfs://QmRun4e1AhpG8rWbz3L8Rv66zao5jS6SaYKDTxYSNPw68Z"

// ViewNames lists the read-only views the collection document advertises, in
// their published order.
var ViewNames = []string{
	"get_balance",
	"token_metadata",
	"minted_tokens_metadata",
	"does_token_exist",
	"count_tokens",
	"all_tokens",
	"is_operator",
	"next_price",
}

// Permissions describes the transfer permission policy of the collection.
type Permissions struct {
	Operator string `json:"operator"`
	Receiver string `json:"receiver"`
	Sender   string `json:"sender"`
}

// CollectionMetadata is the collection-level descriptive document published
// alongside the contract. It identifies the series and its supported
// standards; contract logic never reads it.
type CollectionMetadata struct {
	Version     string      `json:"version"`
	Interfaces  []string    `json:"interfaces"`
	Views       []string    `json:"views"`
	Permissions Permissions `json:"permissions"`
}

// NewCollectionMetadata returns the descriptive document of the reference
// deployment.
func NewCollectionMetadata() *CollectionMetadata {
	return &CollectionMetadata{
		Version:    "StrangeToken",
		Interfaces: []string{"TZIP-12", "TZIP-16"},
		Views:      append([]string(nil), ViewNames...),
		Permissions: Permissions{
			Operator: "owner-transfer",
			Receiver: "owner-no-hook",
			Sender:   "owner-no-hook",
		},
	}
}

// Document renders the collection metadata as its published JSON form.
func (m *CollectionMetadata) Document() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("token: marshal collection metadata: %w", err)
	}
	return data, nil
}
