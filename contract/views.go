package contract

import (
	"github.com/strangetoken/strangetoken-go/token"
)

// Read-only reporting surface. Each view projects existing state inside one
// read transaction and mutates nothing.

// GetBalance returns the ledger balance of (owner, id). Unlike BalanceOf, it
// fails with token.ErrTokenUndefined for ids that were never minted.
func (c *Contract) GetBalance(owner token.Address, id token.TokenID) (uint64, error) {
	var bal uint64
	err := c.store.View(func(tx StateTx) error {
		info, err := tx.TokenInfo(id)
		if err != nil {
			return err
		}
		if info == nil {
			return token.ErrTokenUndefined
		}
		bal, err = tx.Balance(token.LedgerKey{Owner: owner, TokenID: id})
		return err
	})
	if err != nil {
		return 0, err
	}
	return bal, nil
}

// TokenMetadata returns the registry record of a minted token, or
// token.ErrTokenUndefined if the id was never minted.
func (c *Contract) TokenMetadata(id token.TokenID) (*token.TokenInfo, error) {
	var info *token.TokenInfo
	err := c.store.View(func(tx StateTx) error {
		var err error
		info, err = tx.TokenInfo(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, token.ErrTokenUndefined
	}
	return info, nil
}

// MintedTokensMetadata aggregates the metadata maps of minted tokens with
// ids below the highest allocated id, keyed by token id. Skipped ids are
// absent.
func (c *Contract) MintedTokensMetadata() (map[token.TokenID]map[string][]byte, error) {
	out := make(map[token.TokenID]map[string][]byte)
	err := c.store.View(func(tx StateTx) error {
		highest, err := tx.HighestID()
		if err != nil {
			return err
		}
		for id := token.TokenID(0); id < highest; id++ {
			info, err := tx.TokenInfo(id)
			if err != nil {
				return err
			}
			if info != nil {
				out[id] = info.Metadata
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CountTokens returns the highest allocated token id.
func (c *Contract) CountTokens() (token.TokenID, error) {
	var highest token.TokenID
	err := c.store.View(func(tx StateTx) error {
		var err error
		highest, err = tx.HighestID()
		return err
	})
	if err != nil {
		return 0, err
	}
	return highest, nil
}

// DoesTokenExist reports whether a registry entry exists for id.
func (c *Contract) DoesTokenExist(id token.TokenID) (bool, error) {
	var exists bool
	err := c.store.View(func(tx StateTx) error {
		info, err := tx.TokenInfo(id)
		if err != nil {
			return err
		}
		exists = info != nil
		return nil
	})
	if err != nil {
		return false, err
	}
	return exists, nil
}

// AllTokens enumerates the ids below the highest allocated id, in order.
func (c *Contract) AllTokens() ([]token.TokenID, error) {
	var ids []token.TokenID
	err := c.store.View(func(tx StateTx) error {
		highest, err := tx.HighestID()
		if err != nil {
			return err
		}
		ids = make([]token.TokenID, 0, highest)
		for id := token.TokenID(0); id < highest; id++ {
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// TotalSupply returns 1 for minted ids and 0 otherwise; every token is
// issued in unit quantity.
func (c *Contract) TotalSupply(id token.TokenID) (uint64, error) {
	exists, err := c.DoesTokenExist(id)
	if err != nil {
		return 0, err
	}
	if exists {
		return 1, nil
	}
	return 0, nil
}

// IsOperator always reports false; delegated operators are not supported.
func (c *Contract) IsOperator(owner, operator token.Address, id token.TokenID) bool {
	return false
}

// NextPrice returns the mint cost of the next token to be issued.
func (c *Contract) NextPrice() (token.Mutez, error) {
	var price token.Mutez
	err := c.store.View(func(tx StateTx) error {
		highest, err := tx.HighestID()
		if err != nil {
			return err
		}
		price = c.params.Curve.Price(highest + 1)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return price, nil
}

// Administrator returns the current administrator identity.
func (c *Contract) Administrator() (token.Address, error) {
	var admin token.Address
	err := c.store.View(func(tx StateTx) error {
		var err error
		admin, err = tx.Administrator()
		return err
	})
	if err != nil {
		return "", err
	}
	return admin, nil
}
