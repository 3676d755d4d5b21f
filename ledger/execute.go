package ledger

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
)

// MessageInfo identifies the caller of a mutating operation and the
// payment attached to it.
type MessageInfo struct {
	Sender string `json:"sender"`
	Funds  []Coin `json:"funds,omitempty"`
}

// Execute applies one state transition. Any error leaves the store
// untouched.
func (c *Contract) Execute(ctx context.Context, env Env, info *MessageInfo, msg *ExecuteMsg) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case msg.TransferNft != nil:
		return c.transferNft(env, info, msg.TransferNft.Recipient, msg.TransferNft.TokenId)
	case msg.SendNft != nil:
		return c.sendNft(ctx, env, info, msg.SendNft)
	case msg.Approve != nil:
		return c.approve(env, info, msg.Approve)
	case msg.Revoke != nil:
		return c.revoke(env, info, msg.Revoke)
	case msg.ApproveAll != nil:
		return c.approveAll(info, msg.ApproveAll)
	case msg.RevokeAll != nil:
		return c.revokeAll(info, msg.RevokeAll)
	case msg.Burn != nil:
		return c.burn(env, info, msg.Burn.TokenId)
	case msg.Mint != nil:
		return c.mint(info, msg.Mint)
	case msg.SetMintConfig != nil:
		return c.setMintConfig(info, msg.SetMintConfig)
	case msg.ToggleMinting != nil:
		return c.toggleMinting(info)
	}
	return fmt.Errorf("invalid execute message")
}

func (c *Contract) readTokenForOperation(id string, caller string, env Env) (*TokenRecord, error) {
	rec, err := c.store.ReadToken(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("token %s: %w", id, ErrNotFound)
	}
	ok, err := c.canOperateToken(caller, rec, env)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%s on token %s: %w", caller, id, ErrUnauthorized)
	}
	return rec, nil
}

func (c *Contract) transferNft(env Env, info *MessageInfo, recipient, tokenId string) error {
	rec, err := c.readTokenForOperation(tokenId, info.Sender, env)
	if err != nil {
		return err
	}
	rec.Owner = recipient
	rec.Approvals = nil
	err = c.store.WriteToken(tokenId, rec)
	if err != nil {
		return err
	}
	logrus.Infof("transfer %s %s -> %s", tokenId, info.Sender, recipient)
	return nil
}

// sendNft is the transfer transition plus a downstream notification.
// The transition is committed before the notification is dispatched
// and is never rolled back if a receiver fails.
func (c *Contract) sendNft(ctx context.Context, env Env, info *MessageInfo, msg *SendNftMsg) error {
	err := c.transferNft(env, info, msg.Contract, msg.TokenId)
	if err != nil {
		return err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return err
	}
	recv := &ReceiveNotification{
		EventId:  id.String(),
		Sender:   info.Sender,
		Contract: msg.Contract,
		TokenId:  msg.TokenId,
		Msg:      msg.Msg,
	}
	for _, r := range c.receivers {
		go r.ProcessReceive(ctx, recv)
	}
	return nil
}

func (c *Contract) approve(env Env, info *MessageInfo, msg *ApproveMsg) error {
	rec, err := c.readTokenForOperation(msg.TokenId, info.Sender, env)
	if err != nil {
		return err
	}
	expires := ExpireNever()
	if msg.Expires != nil {
		expires = *msg.Expires
	}
	approval := Approval{Spender: msg.Spender, Expires: expires}
	if i := rec.approvalIndex(msg.Spender); i >= 0 {
		rec.Approvals[i] = approval
	} else {
		rec.Approvals = append(rec.Approvals, approval)
	}
	return c.store.WriteToken(msg.TokenId, rec)
}

func (c *Contract) revoke(env Env, info *MessageInfo, msg *RevokeMsg) error {
	rec, err := c.readTokenForOperation(msg.TokenId, info.Sender, env)
	if err != nil {
		return err
	}
	i := rec.approvalIndex(msg.Spender)
	if i < 0 {
		return nil
	}
	rec.Approvals = append(rec.Approvals[:i], rec.Approvals[i+1:]...)
	return c.store.WriteToken(msg.TokenId, rec)
}

func (c *Contract) approveAll(info *MessageInfo, msg *ApproveAllMsg) error {
	expires := ExpireNever()
	if msg.Expires != nil {
		expires = *msg.Expires
	}
	return c.store.WriteOperatorGrant(info.Sender, msg.Operator, expires)
}

func (c *Contract) revokeAll(info *MessageInfo, msg *RevokeAllMsg) error {
	return c.store.DeleteOperatorGrant(info.Sender, msg.Operator)
}

func (c *Contract) burn(env Env, info *MessageInfo, tokenId string) error {
	_, err := c.readTokenForOperation(tokenId, info.Sender, env)
	if err != nil {
		return err
	}
	err = c.store.DeleteToken(tokenId)
	if err != nil {
		return err
	}
	logrus.Infof("burn %s by %s", tokenId, info.Sender)
	return nil
}

func (c *Contract) mint(info *MessageInfo, msg *MintMsg) error {
	policy, err := c.readMintPolicy()
	if err != nil {
		return err
	}
	if info.Sender != policy.Minter {
		return fmt.Errorf("mint by %s: %w", info.Sender, ErrUnauthorized)
	}
	if !policy.Enabled {
		return ErrMintingDisabled
	}
	if policy.Minted >= policy.MaxMints {
		return fmt.Errorf("cap %d: %w", policy.MaxMints, ErrMintLimitReached)
	}
	err = checkPayment(info.Funds, policy.Price)
	if err != nil {
		return err
	}

	policy.Minted += 1
	// ids sort lexicographically in mint order while the counter fits
	// six digits, which the cap of a single collection never exceeds
	tokenId := fmt.Sprintf("%06d", policy.Minted)
	rec := &TokenRecord{
		Owner:     msg.Owner,
		TokenURI:  policy.TokenURI,
		Extension: msg.Extension,
	}
	err = c.store.MintToken(tokenId, rec, policy)
	if err != nil {
		return err
	}
	logrus.Infof("mint %s -> %s (%d/%d)", tokenId, msg.Owner, policy.Minted, policy.MaxMints)
	return nil
}

// checkPayment requires the attached funds to match the price exactly,
// no change making and no partial payment. A zero price accepts empty
// funds.
func checkPayment(funds []Coin, price Coin) error {
	if price.Amount.IsZero() && len(funds) == 0 {
		return nil
	}
	if len(funds) != 1 {
		return fmt.Errorf("want %s got %d coins: %w", price, len(funds), ErrInvalidPayment)
	}
	if !funds[0].Equal(price) {
		return fmt.Errorf("want %s got %s: %w", price, funds[0], ErrInvalidPayment)
	}
	return nil
}

func (c *Contract) setMintConfig(info *MessageInfo, msg *SetMintConfigMsg) error {
	policy, err := c.readMintPolicy()
	if err != nil {
		return err
	}
	if info.Sender != policy.Minter {
		return fmt.Errorf("set mint config by %s: %w", info.Sender, ErrUnauthorized)
	}
	if msg.MaxMints < policy.Minted {
		return fmt.Errorf("cap %d below minted %d: %w", msg.MaxMints, policy.Minted, ErrInvalidMaxMints)
	}
	policy.Price = msg.Price
	policy.MaxMints = msg.MaxMints
	return c.store.WriteMintPolicy(policy)
}

func (c *Contract) toggleMinting(info *MessageInfo) error {
	policy, err := c.readMintPolicy()
	if err != nil {
		return err
	}
	if info.Sender != policy.Minter {
		return fmt.Errorf("toggle minting by %s: %w", info.Sender, ErrUnauthorized)
	}
	policy.Enabled = !policy.Enabled
	err = c.store.WriteMintPolicy(policy)
	if err != nil {
		return err
	}
	logrus.Infof("minting enabled %v", policy.Enabled)
	return nil
}
