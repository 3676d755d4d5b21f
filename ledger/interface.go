package ledger

import "context"

// Store is the transactional ordered key value backend. Each mutating
// method is atomic, and the methods that touch a token keep the record
// and the owner index paired inside the same transaction, so callers
// can never observe one without the other.
type Store interface {
	WriteProperty(key, val []byte) error
	ReadProperty(key []byte) ([]byte, error)

	ReadContractMeta() (*ContractMeta, error)
	// WriteContractState writes the metadata and the initial policy in
	// one transaction, instantiation is all or nothing.
	WriteContractState(meta *ContractMeta, policy *MintPolicy) error

	ReadMintPolicy() (*MintPolicy, error)
	WriteMintPolicy(policy *MintPolicy) error

	// ReadToken returns nil without error when the id is absent.
	ReadToken(id string) (*TokenRecord, error)
	// WriteToken overwrites an existing record and re-pairs the owner
	// index when the owner changed. ErrNotFound when the id is absent.
	WriteToken(id string, rec *TokenRecord) error
	// DeleteToken removes the record, its owner index pair and
	// decrements the token count. ErrNotFound when the id is absent.
	DeleteToken(id string) error
	// MintToken writes the bumped policy, the new record, its owner
	// index pair and the token count in one transaction.
	// ErrAlreadyExists when the id is taken.
	MintToken(id string, rec *TokenRecord, policy *MintPolicy) error

	CountTokens() (uint64, error)
	ListTokensByOwner(owner, after string, limit int) ([]string, error)
	ListTokens(after string, limit int) ([]string, error)

	// ReadOperatorGrant returns nil without error when no grant exists.
	ReadOperatorGrant(owner, operator string) (*Expiration, error)
	WriteOperatorGrant(owner, operator string, expires Expiration) error
	// DeleteOperatorGrant is a no-op when no grant exists.
	DeleteOperatorGrant(owner, operator string) error
	ListOperatorGrants(owner, after string, limit int) ([]OperatorGrant, error)
}

// Receiver is notified after a send_nft transition committed. The
// ledger does not await completion and never rolls back on failure.
type Receiver interface {
	ProcessReceive(ctx context.Context, recv *ReceiveNotification)
}

// ReceiveNotification mirrors the downstream contract callback of a
// send_nft call.
type ReceiveNotification struct {
	EventId  string `json:"event_id"`
	Sender   string `json:"sender"`
	Contract string `json:"contract"`
	TokenId  string `json:"token_id"`
	Msg      []byte `json:"msg,omitempty"`
}
