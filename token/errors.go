package token

import "errors"

var (
	// ErrTokenUndefined indicates a view was asked about a token id that has
	// never been minted.
	ErrTokenUndefined = errors.New("token: token undefined")

	// ErrInsufficientBalance indicates a transfer line item exceeds the
	// declared sender's current balance.
	ErrInsufficientBalance = errors.New("token: insufficient balance")

	// ErrNotOwner indicates the caller is not the declared sender of a
	// transfer batch.
	ErrNotOwner = errors.New("token: not owner")

	// ErrOperatorsUnsupported indicates the operator entry point was called;
	// delegated operators are not supported by this contract.
	ErrOperatorsUnsupported = errors.New("token: operators unsupported")

	// ErrSupplyFinished indicates the next token id would exceed the fixed
	// supply cap.
	ErrSupplyFinished = errors.New("token: token supply finished")

	// ErrInsufficientPayment indicates the payment attached to a mint is
	// below the bonding-curve price of the next token.
	ErrInsufficientPayment = errors.New("token: insufficient payment")

	// ErrNotAuthorized indicates the caller is not the administrator.
	ErrNotAuthorized = errors.New("token: not authorized")
)

// codePrefix namespaces the wire tags of the FA2 interface.
const codePrefix = "FA2_"

// codes maps the sentinel errors to their stable wire tags.
var codes = map[error]string{
	ErrTokenUndefined:       codePrefix + "TOKEN_UNDEFINED",
	ErrInsufficientBalance:  codePrefix + "INSUFFICIENT_BALANCE",
	ErrNotOwner:             codePrefix + "NOT_OWNER",
	ErrOperatorsUnsupported: codePrefix + "OPERATORS_UNSUPPORTED",
	ErrSupplyFinished:       codePrefix + "TOKEN_SUPPLY_FINISHED",
	ErrInsufficientPayment:  codePrefix + "INSUFFICIENT_PAYMENT",
	ErrNotAuthorized:        codePrefix + "NOT_AUTHORIZED",
}

// Code returns the stable wire tag for err, matching through wrapped errors.
// It returns the empty string for errors that carry no FA2 tag.
func Code(err error) string {
	for sentinel, code := range codes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ""
}
