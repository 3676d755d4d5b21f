package store

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/mintfield/nftd/ledger"
)

// MintToken creates a token record. The uniqueness check, the policy
// counter, the record, the owner index pair and the token count all
// commit in one transaction or not at all.
func (bs *BadgerStore) MintToken(id string, rec *ledger.TokenRecord, policy *ledger.MintPolicy) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		old, err := bs.readToken(txn, id)
		if err != nil {
			return err
		}
		if old != nil {
			return fmt.Errorf("token %s: %w", id, ledger.ErrAlreadyExists)
		}

		err = txn.Set([]byte(keyMintPolicy), msgpackMarshalPanic(policy))
		if err != nil {
			return err
		}
		err = txn.Set([]byte(prefixTokenPayload+id), msgpackMarshalPanic(rec))
		if err != nil {
			return err
		}
		err = txn.Set(buildTokenOwnerKey(rec.Owner, id), []byte{1})
		if err != nil {
			return err
		}
		count, err := bs.readTokenCount(txn)
		if err != nil {
			return err
		}
		return bs.writeTokenCount(txn, count+1)
	})
}
