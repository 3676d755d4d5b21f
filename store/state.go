package store

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/mintfield/nftd/ledger"
)

const (
	keyContractMeta = "NFT:CONTRACT:META"
	keyMintPolicy   = "NFT:MINT:POLICY"
	keyTokenCount   = "NFT:TOKEN:COUNT"

	prefixTokenPayload = "NFT:TOKEN:PAYLOAD:"
	prefixTokenOwner   = "NFT:TOKEN:OWNER:"
	prefixOperator     = "NFT:OPERATOR:"
)

func (bs *BadgerStore) ReadContractMeta() (*ledger.ContractMeta, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get([]byte(keyContractMeta))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var meta ledger.ContractMeta
	err = msgpackUnmarshal(val, &meta)
	return &meta, err
}

func (bs *BadgerStore) WriteContractState(meta *ledger.ContractMeta, policy *ledger.MintPolicy) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		err := txn.Set([]byte(keyContractMeta), msgpackMarshalPanic(meta))
		if err != nil {
			return err
		}
		return txn.Set([]byte(keyMintPolicy), msgpackMarshalPanic(policy))
	})
}

func (bs *BadgerStore) ReadMintPolicy() (*ledger.MintPolicy, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	return bs.readMintPolicy(txn)
}

func (bs *BadgerStore) WriteMintPolicy(policy *ledger.MintPolicy) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyMintPolicy), msgpackMarshalPanic(policy))
	})
}

func (bs *BadgerStore) readMintPolicy(txn *badger.Txn) (*ledger.MintPolicy, error) {
	item, err := txn.Get([]byte(keyMintPolicy))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var policy ledger.MintPolicy
	err = msgpackUnmarshal(val, &policy)
	return &policy, err
}

func (bs *BadgerStore) readTokenCount(txn *badger.Txn) (uint64, error) {
	item, err := txn.Get([]byte(keyTokenCount))
	if err == badger.ErrKeyNotFound {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return 0, err
	}
	return bytesToUint64(val), nil
}

func (bs *BadgerStore) writeTokenCount(txn *badger.Txn, count uint64) error {
	return txn.Set([]byte(keyTokenCount), uint64ToBytes(count))
}
