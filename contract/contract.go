// Package contract implements the StrangeToken action engine: a capped series
// of non-fungible tokens minted against a rising bonding-curve price, with
// owner-initiated batch transfers.
//
// Every entry point is one atomic action over a Store transaction: it either
// commits all of its ledger, registry, allocator and administrator mutations,
// or a validation failure anywhere discards all of them. Outbound payment and
// callback effects happen inside the same transaction, so a failing effect
// aborts the action too.
package contract

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/strangetoken/strangetoken-go/token"
)

// Params are the deployment parameters, fixed for the contract's lifetime.
type Params struct {
	// MaxSupply caps the series; the allocator never exceeds it.
	MaxSupply token.TokenID

	// Curve prices each mint.
	Curve token.PriceCurve

	// Administrator seeds the administrator identity when the store holds
	// none yet. An already-initialized store keeps its persisted identity.
	Administrator token.Address

	// MetadataURL locates the collection-level metadata document. It is
	// descriptive only and never read by contract logic.
	MetadataURL string
}

// DefaultParams returns the reference deployment parameters: 128 tokens
// priced at id^2 * 0.9 tez.
func DefaultParams(admin token.Address) Params {
	return Params{
		MaxSupply:     token.DefaultMaxSupply,
		Curve:         token.DefaultCurve,
		Administrator: admin,
		MetadataURL:   token.MetadataURL,
	}
}

// Validate checks that all deployment parameters are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func (p Params) Validate() error {
	if p.MaxSupply == 0 {
		return ErrZeroMaxSupply
	}
	if p.Curve.Scale == 0 {
		return ErrZeroScale
	}
	if p.Administrator == "" {
		return ErrNoAdministrator
	}
	return nil
}

// CallContext carries the environment of one external call: who is calling,
// the payment attached to the call, and the chain position used to derive
// mint seeds.
type CallContext struct {
	Sender token.Address
	Amount token.Mutez
	Level  uint64
	Now    time.Time
}

// Payment is one ledger-external transfer of funds emitted by an action.
type Payment struct {
	To     token.Address
	Amount token.Mutez
}

// PaymentSink receives the outbound payments of a mint: the cost forwarded
// to the administrator and any refund to the caller. A Send failure aborts
// the enclosing action.
type PaymentSink interface {
	Send(p Payment) error
}

// Contract is the stateful unit holding the token series. All methods are
// safe for serial use; the store serializes concurrent callers.
type Contract struct {
	store  Store
	params Params
	sink   PaymentSink
	log    *zap.Logger
}

// Option configures a Contract.
type Option func(*Contract)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *Contract) { c.log = log }
}

// WithPaymentSink sets the recipient of outbound payment effects. Without a
// sink, payments are settled through mint receipts only.
func WithPaymentSink(sink PaymentSink) Option {
	return func(c *Contract) { c.sink = sink }
}

// New creates a contract over store, seeding the administrator identity if
// the store has none.
func New(store Store, params Params, opts ...Option) (*Contract, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	c := &Contract{
		store:  store,
		params: params,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	err := store.Update(func(tx StateTx) error {
		admin, err := tx.Administrator()
		if err != nil {
			return err
		}
		if admin == "" {
			return tx.SetAdministrator(params.Administrator)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("contract: initialize state: %w", err)
	}
	return c, nil
}

// Params returns the deployment parameters.
func (c *Contract) Params() Params { return c.params }

// MintReceipt reports the settled amounts of a successful mint.
type MintReceipt struct {
	TokenID token.TokenID
	Cost    token.Mutez
	Refund  token.Mutez
}

// Mint allocates the next token id to the caller against the attached
// payment. The exact cost is forwarded to the administrator and any excess
// is refunded to the caller; paying less than the cost fails the action with
// token.ErrInsufficientPayment and leaves all state unchanged.
func (c *Contract) Mint(ctx CallContext) (*MintReceipt, error) {
	var receipt MintReceipt
	err := c.store.Update(func(tx StateTx) error {
		highest, err := tx.HighestID()
		if err != nil {
			return err
		}
		id := highest + 1
		cost := c.params.Curve.Price(id)
		if id > c.params.MaxSupply {
			return token.ErrSupplyFinished
		}

		key := token.LedgerKey{Owner: ctx.Sender, TokenID: id}
		if err := checkUnallocated(tx, key, id); err != nil {
			return err
		}

		if ctx.Amount < cost {
			return token.ErrInsufficientPayment
		}

		admin, err := tx.Administrator()
		if err != nil {
			return err
		}
		if err := c.send(Payment{To: admin, Amount: cost}); err != nil {
			return err
		}
		refund := ctx.Amount - cost
		if refund > 0 {
			if err := c.send(Payment{To: ctx.Sender, Amount: refund}); err != nil {
				return err
			}
		}

		if err := tx.SetHighestID(id); err != nil {
			return err
		}
		if err := creditEntry(tx, key, 1); err != nil {
			return err
		}
		seed := token.Seed(key, ctx.Level, ctx.Now)
		if err := tx.PutTokenInfo(token.MakeTokenInfo(id, seed)); err != nil {
			return err
		}

		receipt = MintReceipt{TokenID: id, Cost: cost, Refund: refund}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.log.Debug("mint",
		zap.Uint64("token_id", uint64(receipt.TokenID)),
		zap.String("owner", ctx.Sender.String()),
		zap.Uint64("cost_mutez", uint64(receipt.Cost)),
		zap.Uint64("refund_mutez", uint64(receipt.Refund)))
	return &receipt, nil
}

// Skip advances the allocator by one without minting; the skipped id is
// permanently unassigned. Administrator only.
func (c *Contract) Skip(ctx CallContext) (token.TokenID, error) {
	var id token.TokenID
	err := c.store.Update(func(tx StateTx) error {
		admin, err := tx.Administrator()
		if err != nil {
			return err
		}
		if ctx.Sender != admin {
			return token.ErrNotAuthorized
		}

		highest, err := tx.HighestID()
		if err != nil {
			return err
		}
		id = highest + 1
		if id > c.params.MaxSupply {
			return token.ErrSupplyFinished
		}

		key := token.LedgerKey{Owner: ctx.Sender, TokenID: id}
		if err := checkUnallocated(tx, key, id); err != nil {
			return err
		}

		return tx.SetHighestID(id)
	})
	if err != nil {
		return 0, err
	}

	c.log.Debug("skip", zap.Uint64("token_id", uint64(id)))
	return id, nil
}

// SetAdministrator replaces the administrator identity. Only the current
// administrator may call; the handover takes effect immediately.
func (c *Contract) SetAdministrator(ctx CallContext, next token.Address) error {
	err := c.store.Update(func(tx StateTx) error {
		admin, err := tx.Administrator()
		if err != nil {
			return err
		}
		if ctx.Sender != admin {
			return token.ErrNotAuthorized
		}
		return tx.SetAdministrator(next)
	})
	if err != nil {
		return err
	}

	c.log.Debug("set_administrator", zap.String("administrator", next.String()))
	return nil
}

// UpdateOperators rejects every instruction with
// token.ErrOperatorsUnsupported. The entry point exists only to satisfy the
// FA2 interface; delegated operators are not supported.
func (c *Contract) UpdateOperators(instructions []token.UpdateOperator) error {
	return token.ErrOperatorsUnsupported
}

// checkUnallocated hard-fails if an id the allocator is about to hand out
// already has a ledger or registry entry.
func checkUnallocated(tx StateTx, key token.LedgerKey, id token.TokenID) error {
	bal, err := tx.Balance(key)
	if err != nil {
		return err
	}
	if bal != 0 {
		return fmt.Errorf("%w: ledger entry for id %d", ErrDoubleAllocation, id)
	}
	info, err := tx.TokenInfo(id)
	if err != nil {
		return err
	}
	if info != nil {
		return fmt.Errorf("%w: registry entry for id %d", ErrDoubleAllocation, id)
	}
	return nil
}

// send forwards a payment effect to the sink, if any is configured.
func (c *Contract) send(p Payment) error {
	if c.sink == nil {
		return nil
	}
	return c.sink.Send(p)
}
