package bank

import "errors"

var (
	// ErrInvalidAmount is returned for amounts that are not positive numbers.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds is returned when a debit exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrMissingRecipient is returned for transfers without a recipient.
	ErrMissingRecipient = errors.New("missing transfer recipient")
	// ErrInvalidPIN is returned when login fails.
	ErrInvalidPIN = errors.New("invalid PIN")
	// ErrIncompleteDetails is returned when deposit details fail a form step.
	ErrIncompleteDetails = errors.New("incomplete deposit details")
)
