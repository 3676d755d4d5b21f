package ledger

import (
	"testing"

	"github.com/vmihailenco/msgpack/v4"
)

func TestCoinMsgpackRoundTrip(t *testing.T) {
	price, err := NewCoin("12.5", "uXYZ")
	if err != nil {
		t.Fatalf("NewCoin: %v", err)
	}
	buf, err := msgpack.Marshal(price)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got Coin
	err = msgpack.Unmarshal(buf, &got)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got.Equal(price) {
		t.Fatalf("coin = %s, want %s", got, price)
	}
}

func TestMintPolicyMsgpackRoundTrip(t *testing.T) {
	price, err := NewCoin("100", "x")
	if err != nil {
		t.Fatalf("NewCoin: %v", err)
	}
	policy := MintPolicy{
		Minter:   "minter",
		Price:    price,
		MaxMints: 5,
		Minted:   2,
		Enabled:  true,
		TokenURI: "ipfs://base",
	}
	buf, err := msgpack.Marshal(&policy)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got MintPolicy
	err = msgpack.Unmarshal(buf, &got)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !got.Price.Equal(price) {
		t.Fatalf("price = %s, want %s", got.Price, price)
	}
	if got.MaxMints != 5 || got.Minted != 2 || !got.Enabled || got.Minter != "minter" {
		t.Fatalf("policy = %+v", got)
	}
}
