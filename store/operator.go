package store

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/mintfield/nftd/ledger"
)

func (bs *BadgerStore) ReadOperatorGrant(owner, operator string) (*ledger.Expiration, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get(buildOperatorKey(owner, operator))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var expires ledger.Expiration
	err = msgpackUnmarshal(val, &expires)
	return &expires, err
}

func (bs *BadgerStore) WriteOperatorGrant(owner, operator string, expires ledger.Expiration) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		return txn.Set(buildOperatorKey(owner, operator), msgpackMarshalPanic(expires))
	})
}

func (bs *BadgerStore) DeleteOperatorGrant(owner, operator string) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(buildOperatorKey(owner, operator))
	})
}

func (bs *BadgerStore) ListOperatorGrants(owner, after string, limit int) ([]ledger.OperatorGrant, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	prefix := string(buildOperatorKey(owner, ""))
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	it := txn.NewIterator(opts)
	defer it.Close()

	grants := make([]ledger.OperatorGrant, 0, limit)
	for it.Seek([]byte(prefix + after)); it.Valid(); it.Next() {
		operator := string(it.Item().Key()[len(prefix):])
		if operator == after {
			continue
		}
		val, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		var expires ledger.Expiration
		err = msgpackUnmarshal(val, &expires)
		if err != nil {
			return nil, err
		}
		grants = append(grants, ledger.OperatorGrant{Operator: operator, Expires: expires})
		if len(grants) == limit {
			break
		}
	}
	return grants, nil
}

func buildOperatorKey(owner, operator string) []byte {
	key := append([]byte(prefixOperator), []byte(owner)...)
	key = append(key, 0)
	return append(key, []byte(operator)...)
}
