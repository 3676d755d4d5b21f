package ledger

// canOperateToken reports whether caller may act on the token: its
// owner, a spender with an unexpired approval, or an operator with an
// unexpired grant from the owner.
func (c *Contract) canOperateToken(caller string, rec *TokenRecord, env Env) (bool, error) {
	if caller == rec.Owner {
		return true, nil
	}
	for _, a := range rec.Approvals {
		if a.Spender == caller && !a.Expires.IsExpired(env) {
			return true, nil
		}
	}
	return c.canOperateAll(rec.Owner, caller, env)
}

// canOperateAll reports whether caller may act on the owner's whole
// collection.
func (c *Contract) canOperateAll(owner, caller string, env Env) (bool, error) {
	if caller == owner {
		return true, nil
	}
	expires, err := c.store.ReadOperatorGrant(owner, caller)
	if err != nil {
		return false, err
	}
	return expires != nil && !expires.IsExpired(env), nil
}
