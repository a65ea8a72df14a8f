package contract

import (
	"sync"

	"github.com/strangetoken/strangetoken-go/token"
)

// StateTx is one transaction over the four persisted structures: the sparse
// ownership ledger, the token registry, the allocator counter and the
// administrator identity. All reads and writes of a single action go through
// one StateTx so that the whole action commits or rolls back together.
type StateTx interface {
	// Balance returns the ledger quantity for key, 0 if absent.
	Balance(key token.LedgerKey) (uint64, error)

	// SetBalance stores the ledger quantity for key. A quantity of 0 removes
	// the entry; zero quantities are never stored.
	SetBalance(key token.LedgerKey, amount uint64) error

	// TokenInfo returns the registry record for id, nil if absent.
	TokenInfo(id token.TokenID) (*token.TokenInfo, error)

	// PutTokenInfo stores a registry record under its token id.
	PutTokenInfo(info *token.TokenInfo) error

	// HighestID returns the highest allocated token id, 0 before any mint.
	HighestID() (token.TokenID, error)

	// SetHighestID advances the allocator counter.
	SetHighestID(id token.TokenID) error

	// Administrator returns the administrator address, empty if unset.
	Administrator() (token.Address, error)

	// SetAdministrator replaces the administrator address.
	SetAdministrator(addr token.Address) error
}

// Store provides the per-action transaction boundary. Update runs fn in a
// writable transaction that commits iff fn returns nil; any error discards
// every mutation made inside fn. View runs fn read-only. Transactions are
// serialized: no interleaving of two actions' effects is ever observable.
type Store interface {
	Update(fn func(StateTx) error) error
	View(fn func(StateTx) error) error
	Close() error
}

// ---------------------------------------------------------------------------
// MemStore implements Store in memory.
// ---------------------------------------------------------------------------

// memState holds one complete copy of the contract state.
type memState struct {
	ledger   map[token.LedgerKey]uint64
	registry map[token.TokenID]*token.TokenInfo
	highest  token.TokenID
	admin    token.Address
}

// clone copies the state maps. Registry records are immutable once written,
// so sharing the record pointers across copies is safe.
func (s *memState) clone() *memState {
	c := &memState{
		ledger:   make(map[token.LedgerKey]uint64, len(s.ledger)),
		registry: make(map[token.TokenID]*token.TokenInfo, len(s.registry)),
		highest:  s.highest,
		admin:    s.admin,
	}
	for k, v := range s.ledger {
		c.ledger[k] = v
	}
	for id, info := range s.registry {
		c.registry[id] = info
	}
	return c
}

// MemStore is an in-memory Store. Update works on a copy of the state and
// swaps it in only when the closure succeeds, so a failed action leaves the
// committed state untouched.
type MemStore struct {
	mu    sync.Mutex
	state *memState
}

// Compile-time interface check.
var _ Store = (*MemStore)(nil)

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		state: &memState{
			ledger:   make(map[token.LedgerKey]uint64),
			registry: make(map[token.TokenID]*token.TokenInfo),
		},
	}
}

// Update runs fn against a copy of the state and commits the copy on success.
func (s *MemStore) Update(fn func(StateTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.state.clone()
	if err := fn(&memTx{state: staged, writable: true}); err != nil {
		return err
	}
	s.state = staged
	return nil
}

// View runs fn against the committed state. Writes are rejected.
func (s *MemStore) View(fn func(StateTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&memTx{state: s.state})
}

// Close releases nothing; it exists to satisfy Store.
func (s *MemStore) Close() error { return nil }

// memTx is a StateTx over a memState.
type memTx struct {
	state    *memState
	writable bool
}

func (t *memTx) Balance(key token.LedgerKey) (uint64, error) {
	return t.state.ledger[key], nil
}

func (t *memTx) SetBalance(key token.LedgerKey, amount uint64) error {
	if !t.writable {
		return ErrReadOnlyTx
	}
	if amount == 0 {
		delete(t.state.ledger, key)
		return nil
	}
	t.state.ledger[key] = amount
	return nil
}

func (t *memTx) TokenInfo(id token.TokenID) (*token.TokenInfo, error) {
	return t.state.registry[id], nil
}

func (t *memTx) PutTokenInfo(info *token.TokenInfo) error {
	if !t.writable {
		return ErrReadOnlyTx
	}
	t.state.registry[info.ID] = info
	return nil
}

func (t *memTx) HighestID() (token.TokenID, error) {
	return t.state.highest, nil
}

func (t *memTx) SetHighestID(id token.TokenID) error {
	if !t.writable {
		return ErrReadOnlyTx
	}
	t.state.highest = id
	return nil
}

func (t *memTx) Administrator() (token.Address, error) {
	return t.state.admin, nil
}

func (t *memTx) SetAdministrator(addr token.Address) error {
	if !t.writable {
		return ErrReadOnlyTx
	}
	t.state.admin = addr
	return nil
}
