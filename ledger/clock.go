package ledger

import (
	"encoding/binary"
	"sync"
	"time"
)

const clockStorePropertyKey = "NFT:LEDGER:CLOCK:MONOTONIC"

// Clock produces the Env snapshots the daemon stamps on calls. The
// time is monotonic across restarts, persisted through the store, and
// the height advances once per snapshot.
type Clock struct {
	sync.Mutex
	store  Store
	now    time.Time
	height uint64
}

func NewClock(store Store) (*Clock, error) {
	bs, err := store.ReadProperty([]byte(clockStorePropertyKey))
	if err != nil {
		return nil, err
	}
	clock := &Clock{store: store, now: time.Now()}
	if len(bs) == 16 {
		ts := time.Unix(0, int64(binary.BigEndian.Uint64(bs[:8])))
		if ts.After(clock.now) {
			clock.now = ts
		}
		clock.height = binary.BigEndian.Uint64(bs[8:])
	}
	return clock, nil
}

func (c *Clock) Env() (Env, error) {
	c.Lock()
	defer c.Unlock()

	for {
		now := time.Now()
		if now.After(c.now) {
			c.now = now
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	c.height += 1

	val := binary.BigEndian.AppendUint64(nil, uint64(c.now.UnixNano()))
	val = binary.BigEndian.AppendUint64(val, c.height)
	err := c.store.WriteProperty([]byte(clockStorePropertyKey), val)
	if err != nil {
		return Env{}, err
	}
	return Env{Height: c.height, Time: c.now}, nil
}
