package contract

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strangetoken/strangetoken-go/token"
)

// TestScenario_EndToEnd drives the full lifecycle of the reference
// deployment against both store implementations: minting, balance queries
// through a callback consumer, skipping, and transfer chains.
func TestScenario_EndToEnd(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"mem": func(t *testing.T) Store {
			return NewMemStore()
		},
		"bolt": func(t *testing.T) Store {
			store, err := OpenBoltStore(filepath.Join(t.TempDir(), "state.db"))
			require.NoError(t, err)
			t.Cleanup(func() { _ = store.Close() })
			return store
		},
	}

	for name, mkStore := range stores {
		t.Run(name, func(t *testing.T) {
			runScenario(t, mkStore(t))
		})
	}
}

func runScenario(t *testing.T, store Store) {
	sink := &recordSink{}
	c, err := New(store, DefaultParams(admin), WithPaymentSink(sink))
	require.NoError(t, err)

	// Minting: alice takes id 1, bob takes id 2, a zero-payment mint fails.
	r1, err := c.Mint(call(alice, token.Tez(10)))
	require.NoError(t, err)
	assert.Equal(t, token.TokenID(1), r1.TokenID)

	r2, err := c.Mint(call(bob, token.Tez(10)))
	require.NoError(t, err)
	assert.Equal(t, token.TokenID(2), r2.TokenID)

	_, err = c.Mint(call(alice, 0))
	require.ErrorIs(t, err, token.ErrInsufficientPayment)

	// Balances through the callback consumer.
	consumer := newBalanceConsumer()
	require.NoError(t, c.BalanceOf([]token.BalanceRequest{
		{Owner: alice, TokenID: 1},
		{Owner: bob, TokenID: 0},
		{Owner: bob, TokenID: 2},
	}, consumer))

	assert.Equal(t, uint64(1), consumer.balances[token.LedgerKey{Owner: alice, TokenID: 1}])
	assert.NotContains(t, consumer.balances, token.LedgerKey{Owner: bob, TokenID: 1})
	assert.Equal(t, uint64(1), consumer.balances[token.LedgerKey{Owner: bob, TokenID: 2}])

	// Skipping: only the administrator may burn an id.
	_, err = c.Skip(call(alice, 0))
	require.ErrorIs(t, err, token.ErrNotAuthorized)

	skipped, err := c.Skip(call(admin, 0))
	require.NoError(t, err)
	assert.Equal(t, token.TokenID(3), skipped)

	r4, err := c.Mint(call(alice, token.Tez(20)))
	require.NoError(t, err)
	assert.Equal(t, token.TokenID(4), r4.TokenID)

	// Transfers: bob hands id 2 to alice.
	require.NoError(t, c.Transfer(call(bob, 0), []token.Transfer{
		{From: bob, Txs: []token.TransferTx{{To: alice, TokenID: 2, Amount: 1}}},
	}))

	// Nobody holds more than one unit of an id.
	err = c.Transfer(call(alice, 0), []token.Transfer{
		{From: alice, Txs: []token.TransferTx{{To: bob, TokenID: 2, Amount: 2}}},
	})
	require.ErrorIs(t, err, token.ErrInsufficientBalance)

	// Bob cannot hand over id 2 twice; his ledger key is gone.
	err = c.Transfer(call(bob, 0), []token.Transfer{
		{From: bob, Txs: []token.TransferTx{{To: alice, TokenID: 2, Amount: 1}}},
	})
	require.ErrorIs(t, err, token.ErrInsufficientBalance)

	// Bob cannot move alice's token either.
	err = c.Transfer(call(bob, 0), []token.Transfer{
		{From: alice, Txs: []token.TransferTx{{To: admin, TokenID: 2, Amount: 1}}},
	})
	require.ErrorIs(t, err, token.ErrNotOwner)

	// Batch: alice hands ids 1 and 2 to bob in one action.
	require.NoError(t, c.Transfer(call(alice, 0), []token.Transfer{
		{From: alice, Txs: []token.TransferTx{
			{To: bob, TokenID: 1, Amount: 1},
			{To: bob, TokenID: 2, Amount: 1},
		}},
	}))

	for _, id := range []token.TokenID{1, 2} {
		bal, err := c.GetBalance(bob, id)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), bal)

		bal, err = c.GetBalance(alice, id)
		require.NoError(t, err)
		assert.Zero(t, bal)
	}

	// The administrator received exactly the curve cost of every mint.
	curve := token.DefaultCurve
	wantProceeds := curve.Price(1) + curve.Price(2) + curve.Price(4)
	assert.Equal(t, wantProceeds, sink.total(admin))

	// Every over-payment came back to its caller.
	assert.Equal(t, token.Tez(10)-curve.Price(1)+token.Tez(20)-curve.Price(4), sink.total(alice))
	assert.Equal(t, token.Tez(10)-curve.Price(2), sink.total(bob))

	// Final projections.
	count, err := c.CountTokens()
	require.NoError(t, err)
	assert.Equal(t, token.TokenID(4), count)

	exists, err := c.DoesTokenExist(3)
	require.NoError(t, err)
	assert.False(t, exists, "skipped id stays unassigned forever")

	supply, err := c.TotalSupply(3)
	require.NoError(t, err)
	assert.Zero(t, supply)

	price, err := c.NextPrice()
	require.NoError(t, err)
	assert.Equal(t, curve.Price(5), price)
}

// TestScenario_SparseLedgerInvariant exercises a longer action mix and then
// checks that every ledger entry still present is strictly positive.
func TestScenario_SparseLedgerInvariant(t *testing.T) {
	c, store := newTestContractWithStore(t)

	for i := 0; i < 6; i++ {
		owner := alice
		if i%2 == 1 {
			owner = bob
		}
		mintFor(t, c, owner)
	}
	_, err := c.Skip(call(admin, 0))
	require.NoError(t, err)

	// Shuffle ownership around, including failed attempts.
	require.NoError(t, c.Transfer(call(alice, 0), []token.Transfer{
		{From: alice, Txs: []token.TransferTx{
			{To: bob, TokenID: 1, Amount: 1},
			{To: bob, TokenID: 3, Amount: 1},
		}},
	}))
	_ = c.Transfer(call(bob, 0), []token.Transfer{
		{From: bob, Txs: []token.TransferTx{{To: alice, TokenID: 5, Amount: 2}}},
	})
	require.NoError(t, c.Transfer(call(bob, 0), []token.Transfer{
		{From: bob, Txs: []token.TransferTx{{To: alice, TokenID: 2, Amount: 1}}},
	}))

	store.mu.Lock()
	defer store.mu.Unlock()
	for key, quantity := range store.state.ledger {
		assert.Positive(t, quantity, "ledger key %+v must never persist at zero", key)
	}
}
