package ledger

import "fmt"

// Query answers a read-only projection of the ledger state. The env
// snapshot drives expiration filtering only, no state is touched.
func (c *Contract) Query(env Env, msg *QueryMsg) (interface{}, error) {
	switch {
	case msg.OwnerOf != nil:
		return c.ownerOf(env, msg.OwnerOf.TokenId, msg.OwnerOf.IncludeExpired)
	case msg.Approval != nil:
		return c.approval(env, msg.Approval)
	case msg.Approvals != nil:
		return c.approvals(env, msg.Approvals.TokenId, msg.Approvals.IncludeExpired)
	case msg.AllOperators != nil:
		return c.allOperators(env, msg.AllOperators)
	case msg.NumTokens != nil:
		return c.numTokens()
	case msg.ContractInfo != nil:
		return c.contractInfo()
	case msg.NftInfo != nil:
		return c.nftInfo(msg.NftInfo.TokenId)
	case msg.AllNftInfo != nil:
		return c.allNftInfo(env, msg.AllNftInfo.TokenId, msg.AllNftInfo.IncludeExpired)
	case msg.Tokens != nil:
		return c.tokens(msg.Tokens)
	case msg.AllTokens != nil:
		return c.allTokens(msg.AllTokens)
	case msg.Minter != nil:
		return c.minter()
	case msg.NftDetails != nil:
		return c.nftDetails()
	}
	return nil, fmt.Errorf("invalid query message")
}

func (c *Contract) readToken(id string) (*TokenRecord, error) {
	rec, err := c.store.ReadToken(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("token %s: %w", id, ErrNotFound)
	}
	return rec, nil
}

func liveApprovals(rec *TokenRecord, env Env, includeExpired bool) []Approval {
	approvals := make([]Approval, 0, len(rec.Approvals))
	for _, a := range rec.Approvals {
		if includeExpired || !a.Expires.IsExpired(env) {
			approvals = append(approvals, a)
		}
	}
	return approvals
}

func (c *Contract) ownerOf(env Env, tokenId string, includeExpired bool) (*OwnerOfResponse, error) {
	rec, err := c.readToken(tokenId)
	if err != nil {
		return nil, err
	}
	return &OwnerOfResponse{
		Owner:     rec.Owner,
		Approvals: liveApprovals(rec, env, includeExpired),
	}, nil
}

func (c *Contract) approval(env Env, q *ApprovalQuery) (*ApprovalResponse, error) {
	rec, err := c.readToken(q.TokenId)
	if err != nil {
		return nil, err
	}
	// the owner is implicitly approved without expiration
	if q.Spender == rec.Owner {
		return &ApprovalResponse{Approval: Approval{
			Spender: rec.Owner,
			Expires: ExpireNever(),
		}}, nil
	}
	for _, a := range rec.Approvals {
		if a.Spender != q.Spender {
			continue
		}
		if !q.IncludeExpired && a.Expires.IsExpired(env) {
			break
		}
		return &ApprovalResponse{Approval: a}, nil
	}
	return nil, fmt.Errorf("approval for %s on token %s: %w", q.Spender, q.TokenId, ErrNotFound)
}

func (c *Contract) approvals(env Env, tokenId string, includeExpired bool) (*ApprovalsResponse, error) {
	rec, err := c.readToken(tokenId)
	if err != nil {
		return nil, err
	}
	return &ApprovalsResponse{Approvals: liveApprovals(rec, env, includeExpired)}, nil
}

// allOperators drops expired grants while scanning, a page only comes
// back short when no more live grants exist past the cursor.
func (c *Contract) allOperators(env Env, q *AllOperatorsQuery) (*OperatorsResponse, error) {
	limit := clampLimit(q.Limit)
	operators := make([]OperatorGrant, 0, limit)
	after := q.StartAfter
	for len(operators) < limit {
		grants, err := c.store.ListOperatorGrants(q.Owner, after, limit)
		if err != nil {
			return nil, err
		}
		if len(grants) == 0 {
			break
		}
		for _, g := range grants {
			if q.IncludeExpired || !g.Expires.IsExpired(env) {
				operators = append(operators, g)
				if len(operators) == limit {
					break
				}
			}
		}
		after = grants[len(grants)-1].Operator
	}
	return &OperatorsResponse{Operators: operators}, nil
}

func (c *Contract) numTokens() (*NumTokensResponse, error) {
	count, err := c.store.CountTokens()
	if err != nil {
		return nil, err
	}
	return &NumTokensResponse{Count: count}, nil
}

func (c *Contract) contractInfo() (*ContractInfoResponse, error) {
	meta, err := c.store.ReadContractMeta()
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, fmt.Errorf("contract not instantiated")
	}
	return &ContractInfoResponse{Name: meta.Name, Symbol: meta.Symbol}, nil
}

func (c *Contract) nftInfo(tokenId string) (*NftInfoResponse, error) {
	rec, err := c.readToken(tokenId)
	if err != nil {
		return nil, err
	}
	return &NftInfoResponse{TokenURI: rec.TokenURI, Extension: rec.Extension}, nil
}

func (c *Contract) allNftInfo(env Env, tokenId string, includeExpired bool) (*AllNftInfoResponse, error) {
	rec, err := c.readToken(tokenId)
	if err != nil {
		return nil, err
	}
	return &AllNftInfoResponse{
		Access: OwnerOfResponse{
			Owner:     rec.Owner,
			Approvals: liveApprovals(rec, env, includeExpired),
		},
		Info: NftInfoResponse{TokenURI: rec.TokenURI, Extension: rec.Extension},
	}, nil
}

func (c *Contract) tokens(q *TokensQuery) (*TokensResponse, error) {
	ids, err := c.store.ListTokensByOwner(q.Owner, q.StartAfter, clampLimit(q.Limit))
	if err != nil {
		return nil, err
	}
	return &TokensResponse{Tokens: ids}, nil
}

func (c *Contract) allTokens(q *AllTokensQuery) (*TokensResponse, error) {
	ids, err := c.store.ListTokens(q.StartAfter, clampLimit(q.Limit))
	if err != nil {
		return nil, err
	}
	return &TokensResponse{Tokens: ids}, nil
}

func (c *Contract) minter() (*MinterResponse, error) {
	policy, err := c.readMintPolicy()
	if err != nil {
		return nil, err
	}
	return &MinterResponse{Minter: policy.Minter}, nil
}

func (c *Contract) nftDetails() (*NftDetailsResponse, error) {
	policy, err := c.readMintPolicy()
	if err != nil {
		return nil, err
	}
	return &NftDetailsResponse{
		TokenURI:  policy.TokenURI,
		MintPrice: policy.Price,
		MaxMints:  policy.MaxMints,
	}, nil
}
