package contract

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/strangetoken/strangetoken-go/token"
)

// Transfer settles an ordered sequence of batches, each moving quantities
// from its declared sender to the listed recipients. The whole sequence is
// one atomic action: a failure on any line item discards every line item,
// including ones already processed in the same call.
//
// Line items with amount 0 are skipped entirely: no checks run and no state
// is touched. For the rest, the sender's balance is checked before the
// caller's authorization, so a caller moving tokens nobody holds sees
// token.ErrInsufficientBalance rather than token.ErrNotOwner. Reordering
// these checks would change the error observed by callers.
func (c *Contract) Transfer(ctx CallContext, batches []token.Transfer) error {
	var items int
	err := c.store.Update(func(tx StateTx) error {
		for _, batch := range batches {
			for _, item := range batch.Txs {
				if item.Amount == 0 {
					continue
				}
				from := token.LedgerKey{Owner: batch.From, TokenID: item.TokenID}
				bal, err := tx.Balance(from)
				if err != nil {
					return err
				}
				if bal < item.Amount {
					return token.ErrInsufficientBalance
				}
				if batch.From != ctx.Sender {
					return token.ErrNotOwner
				}

				if err := debitEntry(tx, from, item.Amount); err != nil {
					return err
				}
				to := token.LedgerKey{Owner: item.To, TokenID: item.TokenID}
				if err := creditEntry(tx, to, item.Amount); err != nil {
					return err
				}
				items++
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.log.Debug("transfer",
		zap.String("caller", ctx.Sender.String()),
		zap.Int("batches", len(batches)),
		zap.Int("items", items))
	return nil
}

// creditEntry creates or increases a ledger entry.
func creditEntry(tx StateTx, key token.LedgerKey, amount uint64) error {
	if amount == 0 {
		return nil
	}
	bal, err := tx.Balance(key)
	if err != nil {
		return err
	}
	return tx.SetBalance(key, bal+amount)
}

// debitEntry decreases a ledger entry, removing it when it reaches exactly
// zero. Callers must have verified sufficiency; an underflow here is an
// invariant violation.
func debitEntry(tx StateTx, key token.LedgerKey, amount uint64) error {
	bal, err := tx.Balance(key)
	if err != nil {
		return err
	}
	if bal < amount {
		return fmt.Errorf("%w: %d < %d for token %d", ErrLedgerUnderflow, bal, amount, key.TokenID)
	}
	return tx.SetBalance(key, bal-amount)
}
