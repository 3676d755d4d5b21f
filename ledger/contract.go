package ledger

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	DefaultLimit = 10
	MaxLimit     = 30
)

// Contract is the ledger core. It owns no storage of its own, every
// state transition goes through the Store. Mutating calls are
// serialized on the mutex so at most one transition is in flight,
// reads run concurrently against their own store transactions.
type Contract struct {
	mu        sync.Mutex
	store     Store
	receivers []Receiver
}

func NewContract(store Store) *Contract {
	return &Contract{store: store}
}

// AddReceiver registers a downstream collaborator notified after each
// send_nft transition.
func (c *Contract) AddReceiver(r Receiver) {
	c.receivers = append(c.receivers, r)
}

func (c *Contract) Instantiate(msg *InstantiateMsg) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if msg.Name == "" || msg.Symbol == "" {
		return fmt.Errorf("invalid contract name %q symbol %q", msg.Name, msg.Symbol)
	}
	if msg.Minter == "" {
		return fmt.Errorf("invalid minter %q", msg.Minter)
	}
	old, err := c.store.ReadContractMeta()
	if err != nil {
		return err
	}
	if old != nil {
		return fmt.Errorf("contract %s already instantiated", old.Name)
	}
	meta := &ContractMeta{
		Name:   msg.Name,
		Symbol: msg.Symbol,
	}
	policy := &MintPolicy{
		Minter:   msg.Minter,
		Price:    msg.MintPrice,
		MaxMints: msg.MaxMints,
		Enabled:  true,
		TokenURI: msg.TokenURI,
	}
	err = c.store.WriteContractState(meta, policy)
	if err != nil {
		return err
	}
	logrus.Infof("instantiated %s (%s) minter %s cap %d price %s",
		msg.Name, msg.Symbol, msg.Minter, msg.MaxMints, msg.MintPrice)
	return nil
}

func (c *Contract) readMintPolicy() (*MintPolicy, error) {
	policy, err := c.store.ReadMintPolicy()
	if err != nil {
		return nil, err
	}
	if policy == nil {
		return nil, fmt.Errorf("contract not instantiated")
	}
	return policy, nil
}

func clampLimit(limit *uint32) int {
	if limit == nil || *limit == 0 {
		return DefaultLimit
	}
	if *limit > MaxLimit {
		return MaxLimit
	}
	return int(*limit)
}
