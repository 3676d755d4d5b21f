package store

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/mintfield/nftd/ledger"
)

func (bs *BadgerStore) ReadToken(id string) (*ledger.TokenRecord, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	return bs.readToken(txn, id)
}

// WriteToken overwrites an existing record. The owner index pair moves
// in the same transaction whenever the owner changed, the record and
// the index can never drift apart.
func (bs *BadgerStore) WriteToken(id string, rec *ledger.TokenRecord) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		old, err := bs.readToken(txn, id)
		if err != nil {
			return err
		}
		if old == nil {
			return fmt.Errorf("token %s: %w", id, ledger.ErrNotFound)
		}
		if old.Owner != rec.Owner {
			err = txn.Delete(buildTokenOwnerKey(old.Owner, id))
			if err != nil {
				return err
			}
			err = txn.Set(buildTokenOwnerKey(rec.Owner, id), []byte{1})
			if err != nil {
				return err
			}
		}
		return txn.Set([]byte(prefixTokenPayload+id), msgpackMarshalPanic(rec))
	})
}

func (bs *BadgerStore) DeleteToken(id string) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		old, err := bs.readToken(txn, id)
		if err != nil {
			return err
		}
		if old == nil {
			return fmt.Errorf("token %s: %w", id, ledger.ErrNotFound)
		}
		err = txn.Delete([]byte(prefixTokenPayload + id))
		if err != nil {
			return err
		}
		err = txn.Delete(buildTokenOwnerKey(old.Owner, id))
		if err != nil {
			return err
		}
		count, err := bs.readTokenCount(txn)
		if err != nil {
			return err
		}
		return bs.writeTokenCount(txn, count-1)
	})
}

func (bs *BadgerStore) CountTokens() (uint64, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	return bs.readTokenCount(txn)
}

func (bs *BadgerStore) ListTokensByOwner(owner, after string, limit int) ([]string, error) {
	prefix := string(buildTokenOwnerKey(owner, ""))
	return bs.listTokenKeys(prefix, after, limit)
}

func (bs *BadgerStore) ListTokens(after string, limit int) ([]string, error) {
	return bs.listTokenKeys(prefixTokenPayload, after, limit)
}

func (bs *BadgerStore) listTokenKeys(prefix, after string, limit int) ([]string, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = []byte(prefix)
	it := txn.NewIterator(opts)
	defer it.Close()

	ids := make([]string, 0, limit)
	for it.Seek([]byte(prefix + after)); it.Valid(); it.Next() {
		id := string(it.Item().Key()[len(prefix):])
		if id == after {
			continue
		}
		ids = append(ids, id)
		if len(ids) == limit {
			break
		}
	}
	return ids, nil
}

func (bs *BadgerStore) readToken(txn *badger.Txn, id string) (*ledger.TokenRecord, error) {
	item, err := txn.Get([]byte(prefixTokenPayload + id))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var rec ledger.TokenRecord
	err = msgpackUnmarshal(val, &rec)
	return &rec, err
}

// owners are opaque variable length strings, the zero byte keeps one
// owner's range from shadowing another's
func buildTokenOwnerKey(owner, id string) []byte {
	key := append([]byte(prefixTokenOwner), []byte(owner)...)
	key = append(key, 0)
	return append(key, []byte(id)...)
}
