package ledger

import "errors"

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotFound         = errors.New("token not found")
	ErrAlreadyExists    = errors.New("token already exists")
	ErrMintingDisabled  = errors.New("minting disabled")
	ErrMintLimitReached = errors.New("mint limit reached")
	ErrInvalidPayment   = errors.New("invalid payment")
	ErrInvalidMaxMints  = errors.New("invalid max mints")
)
