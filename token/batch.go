package token

// TransferTx is a single line item of a transfer batch: move Amount units of
// TokenID from the batch's declared sender to To.
type TransferTx struct {
	To      Address
	TokenID TokenID
	Amount  uint64
}

// Transfer is one batch of a transfer action: a declared sender and the
// ordered line items to settle on its behalf.
type Transfer struct {
	From Address
	Txs  []TransferTx
}

// BalanceRequest asks for the ledger balance of one (owner, token) pair.
type BalanceRequest struct {
	Owner   Address
	TokenID TokenID
}

// BalanceResponse pairs a request with the balance held at the time of the
// query. Unknown token ids report balance 0.
type BalanceResponse struct {
	Request BalanceRequest
	Balance uint64
}

// BalanceReceiver is the callback target of a balance query. The full ordered
// response list is delivered in one synchronous call.
type BalanceReceiver interface {
	ReceiveBalances(responses []BalanceResponse) error
}

// OperatorAction discriminates the two operator instruction variants.
type OperatorAction int

const (
	// AddOperator requests that an operator be granted transfer rights.
	AddOperator OperatorAction = iota
	// RemoveOperator requests that an operator's transfer rights be revoked.
	RemoveOperator
)

// UpdateOperator is a single add- or remove-operator instruction. The entry
// point accepting these exists only to satisfy the FA2 interface; the
// contract rejects every instruction unconditionally.
type UpdateOperator struct {
	Action   OperatorAction
	Owner    Address
	Operator Address
	TokenID  TokenID
}
