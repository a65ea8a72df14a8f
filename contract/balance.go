package contract

import (
	"go.uber.org/zap"

	"github.com/strangetoken/strangetoken-go/token"
)

// BalanceOf looks up the current ledger balance for each request and
// delivers the full response list, in request order, in one synchronous call
// to callback. Unknown token ids report balance 0; the query itself never
// fails on token validity. A callback failure fails the action.
func (c *Contract) BalanceOf(requests []token.BalanceRequest, callback token.BalanceReceiver) error {
	if callback == nil {
		return ErrNilCallback
	}

	err := c.store.View(func(tx StateTx) error {
		responses := make([]token.BalanceResponse, 0, len(requests))
		for _, req := range requests {
			bal, err := tx.Balance(token.LedgerKey{Owner: req.Owner, TokenID: req.TokenID})
			if err != nil {
				return err
			}
			responses = append(responses, token.BalanceResponse{Request: req, Balance: bal})
		}
		return callback.ReceiveBalances(responses)
	})
	if err != nil {
		return err
	}

	c.log.Debug("balance_of", zap.Int("requests", len(requests)))
	return nil
}
