package ledger

import "time"

// Env is the chain snapshot a call executes against. Expiration checks
// compare against this, never against the wall clock.
type Env struct {
	Height uint64    `json:"height"`
	Time   time.Time `json:"time"`
}

// Expiration is a three way value: an absolute block height, an
// absolute time, or never. At most one field is set; the zero value
// behaves as never.
type Expiration struct {
	AtHeight uint64     `json:"at_height,omitempty"`
	AtTime   *time.Time `json:"at_time,omitempty"`
	Never    bool       `json:"never,omitempty"`
}

func ExpireAtHeight(h uint64) Expiration {
	return Expiration{AtHeight: h}
}

func ExpireAtTime(t time.Time) Expiration {
	return Expiration{AtTime: &t}
}

func ExpireNever() Expiration {
	return Expiration{Never: true}
}

func (e Expiration) IsExpired(env Env) bool {
	switch {
	case e.Never:
		return false
	case e.AtHeight > 0:
		return env.Height >= e.AtHeight
	case e.AtTime != nil:
		return !env.Time.Before(*e.AtTime)
	}
	return false
}
