package contract

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/strangetoken/strangetoken-go/token"
)

var (
	bucketLedger   = []byte("ledger")
	bucketRegistry = []byte("registry")
	bucketContract = []byte("contract")

	keyHighestID     = []byte("highest_id")
	keyAdministrator = []byte("administrator")
)

// BoltStore is a Store persisted in a bbolt database. Each Update maps to one
// bbolt write transaction, so rollback on failure comes from the database.
type BoltStore struct {
	db *bbolt.DB
}

// Compile-time interface check.
var _ Store = (*BoltStore)(nil)

// OpenBoltStore opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("contract: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("contract: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketLedger, bucketRegistry, bucketContract} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("boltstore: create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("contract: create buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Update runs fn in one bbolt write transaction.
func (s *BoltStore) Update(fn func(StateTx) error) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return fn(&boltTx{tx: tx})
	})
}

// View runs fn in one bbolt read transaction.
func (s *BoltStore) View(fn func(StateTx) error) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		return fn(&boltTx{tx: tx})
	})
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// idKey encodes a token id as an 8-byte big-endian key for sorted storage.
func idKey(id token.TokenID) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(id))
	return k
}

// encodeGob serializes a value using gob encoding.
func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeGob deserializes gob-encoded data into a value.
func decodeGob(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// boltTx is a StateTx over one bbolt transaction.
type boltTx struct {
	tx *bbolt.Tx
}

func (t *boltTx) Balance(key token.LedgerKey) (uint64, error) {
	v := t.tx.Bucket(bucketLedger).Get(key.Bytes())
	if v == nil {
		return 0, nil
	}
	if len(v) != 8 {
		return 0, fmt.Errorf("boltstore: malformed ledger value for token %d", key.TokenID)
	}
	return binary.BigEndian.Uint64(v), nil
}

func (t *boltTx) SetBalance(key token.LedgerKey, amount uint64) error {
	b := t.tx.Bucket(bucketLedger)
	if amount == 0 {
		if err := b.Delete(key.Bytes()); err != nil {
			return fmt.Errorf("boltstore: delete ledger entry: %w", err)
		}
		return nil
	}
	v := make([]byte, 8)
	binary.BigEndian.PutUint64(v, amount)
	if err := b.Put(key.Bytes(), v); err != nil {
		return fmt.Errorf("boltstore: put ledger entry: %w", err)
	}
	return nil
}

func (t *boltTx) TokenInfo(id token.TokenID) (*token.TokenInfo, error) {
	data := t.tx.Bucket(bucketRegistry).Get(idKey(id))
	if data == nil {
		return nil, nil
	}
	var info token.TokenInfo
	if err := decodeGob(data, &info); err != nil {
		return nil, fmt.Errorf("boltstore: decode token info: %w", err)
	}
	return &info, nil
}

func (t *boltTx) PutTokenInfo(info *token.TokenInfo) error {
	data, err := encodeGob(info)
	if err != nil {
		return fmt.Errorf("boltstore: encode token info: %w", err)
	}
	if err := t.tx.Bucket(bucketRegistry).Put(idKey(info.ID), data); err != nil {
		return fmt.Errorf("boltstore: put token info: %w", err)
	}
	return nil
}

func (t *boltTx) HighestID() (token.TokenID, error) {
	v := t.tx.Bucket(bucketContract).Get(keyHighestID)
	if v == nil {
		return 0, nil
	}
	if len(v) != 8 {
		return 0, fmt.Errorf("boltstore: malformed highest id value")
	}
	return token.TokenID(binary.BigEndian.Uint64(v)), nil
}

func (t *boltTx) SetHighestID(id token.TokenID) error {
	if err := t.tx.Bucket(bucketContract).Put(keyHighestID, idKey(id)); err != nil {
		return fmt.Errorf("boltstore: put highest id: %w", err)
	}
	return nil
}

func (t *boltTx) Administrator() (token.Address, error) {
	v := t.tx.Bucket(bucketContract).Get(keyAdministrator)
	return token.Address(v), nil
}

func (t *boltTx) SetAdministrator(addr token.Address) error {
	if err := t.tx.Bucket(bucketContract).Put(keyAdministrator, []byte(addr)); err != nil {
		return fmt.Errorf("boltstore: put administrator: %w", err)
	}
	return nil
}
