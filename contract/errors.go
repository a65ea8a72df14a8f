package contract

import "errors"

var (
	// ErrNilStore indicates a contract was constructed without a store.
	ErrNilStore = errors.New("contract: nil store")

	// ErrNilCallback indicates a balance query without a callback target.
	ErrNilCallback = errors.New("contract: nil balance callback")

	// ErrZeroMaxSupply indicates deployment parameters with no supply cap.
	ErrZeroMaxSupply = errors.New("contract: zero max supply")

	// ErrZeroScale indicates a price curve with a zero divisor.
	ErrZeroScale = errors.New("contract: zero curve scale")

	// ErrNoAdministrator indicates an empty initial administrator address.
	ErrNoAdministrator = errors.New("contract: empty administrator address")

	// ErrDoubleAllocation indicates the allocator produced an id that already
	// has a ledger or registry entry. The monotonic allocator makes this
	// unreachable; it is an invariant violation, not a user error.
	ErrDoubleAllocation = errors.New("contract: token id already allocated")

	// ErrLedgerUnderflow indicates a debit exceeding the stored balance.
	// Transfer validation guarantees sufficiency, so this is an invariant
	// violation, not a user error.
	ErrLedgerUnderflow = errors.New("contract: ledger debit exceeds balance")

	// ErrReadOnlyTx indicates a write attempted inside a read-only
	// transaction.
	ErrReadOnlyTx = errors.New("contract: write in read-only transaction")
)
