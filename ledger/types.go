package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/vmihailenco/msgpack/v4"
)

// Coin is a payment amount in a single denomination.
type Coin struct {
	Amount decimal.Decimal `json:"amount"`
	Denom  string          `json:"denom"`
}

func NewCoin(amount, denom string) (Coin, error) {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return Coin{}, err
	}
	return Coin{Amount: amt, Denom: denom}, nil
}

func (c Coin) Equal(o Coin) bool {
	return c.Denom == o.Denom && c.Amount.Equal(o.Amount)
}

func (c Coin) String() string {
	return c.Amount.String() + c.Denom
}

func (c Coin) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeMulti(c.Amount.String(), c.Denom)
}

func (c *Coin) DecodeMsgpack(dec *msgpack.Decoder) error {
	var amount, denom string
	err := dec.DecodeMulti(&amount, &denom)
	if err != nil {
		return err
	}
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	c.Amount = amt
	c.Denom = denom
	return nil
}

// TokenRecord is the stored state of one token. The extension payload
// is opaque to the ledger, it is stored and returned but never read.
type TokenRecord struct {
	Owner     string     `json:"owner"`
	Approvals []Approval `json:"approvals"`
	TokenURI  string     `json:"token_uri,omitempty"`
	Extension []byte     `json:"extension,omitempty"`
}

// Approval grants one spender the right to operate one token until it
// expires. At most one live approval per spender per token.
type Approval struct {
	Spender string     `json:"spender"`
	Expires Expiration `json:"expires"`
}

func (t *TokenRecord) approvalIndex(spender string) int {
	for i, a := range t.Approvals {
		if a.Spender == spender {
			return i
		}
	}
	return -1
}

// OperatorGrant covers all of an owner's tokens.
type OperatorGrant struct {
	Operator string     `json:"operator"`
	Expires  Expiration `json:"expires"`
}

// ContractMeta is set once at instantiation and never changes.
type ContractMeta struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// MintPolicy gates token creation. Minted never decreases, burns do
// not return capacity.
type MintPolicy struct {
	Minter   string `json:"minter"`
	Price    Coin   `json:"price"`
	MaxMints uint64 `json:"max_mints"`
	Minted   uint64 `json:"minted"`
	Enabled  bool   `json:"enabled"`
	TokenURI string `json:"token_uri,omitempty"`
}
