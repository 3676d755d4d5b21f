package ledger

// InstantiateMsg creates the contract.
type InstantiateMsg struct {
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Minter    string `json:"minter"`
	MaxMints  uint64 `json:"max_mints"`
	MintPrice Coin   `json:"mint_price"`
	TokenURI  string `json:"token_uri,omitempty"`
}

// ExecuteMsg is a tagged union, exactly one field is set.
type ExecuteMsg struct {
	TransferNft   *TransferNftMsg   `json:"transfer_nft,omitempty"`
	SendNft       *SendNftMsg       `json:"send_nft,omitempty"`
	Approve       *ApproveMsg       `json:"approve,omitempty"`
	Revoke        *RevokeMsg        `json:"revoke,omitempty"`
	ApproveAll    *ApproveAllMsg    `json:"approve_all,omitempty"`
	RevokeAll     *RevokeAllMsg     `json:"revoke_all,omitempty"`
	Burn          *BurnMsg          `json:"burn,omitempty"`
	Mint          *MintMsg          `json:"mint,omitempty"`
	SetMintConfig *SetMintConfigMsg `json:"set_mint_config,omitempty"`
	ToggleMinting *ToggleMintingMsg `json:"toggle_minting,omitempty"`
}

type TransferNftMsg struct {
	Recipient string `json:"recipient"`
	TokenId   string `json:"token_id"`
}

type SendNftMsg struct {
	Contract string `json:"contract"`
	TokenId  string `json:"token_id"`
	Msg      []byte `json:"msg,omitempty"`
}

type ApproveMsg struct {
	Spender string      `json:"spender"`
	TokenId string      `json:"token_id"`
	Expires *Expiration `json:"expires,omitempty"`
}

type RevokeMsg struct {
	Spender string `json:"spender"`
	TokenId string `json:"token_id"`
}

type ApproveAllMsg struct {
	Operator string      `json:"operator"`
	Expires  *Expiration `json:"expires,omitempty"`
}

type RevokeAllMsg struct {
	Operator string `json:"operator"`
}

type BurnMsg struct {
	TokenId string `json:"token_id"`
}

type MintMsg struct {
	Owner     string `json:"owner"`
	Extension []byte `json:"extension,omitempty"`
}

type SetMintConfigMsg struct {
	Price    Coin   `json:"price"`
	MaxMints uint64 `json:"max_mints"`
}

type ToggleMintingMsg struct{}

// QueryMsg is a tagged union, exactly one field is set.
type QueryMsg struct {
	OwnerOf      *OwnerOfQuery      `json:"owner_of,omitempty"`
	Approval     *ApprovalQuery     `json:"approval,omitempty"`
	Approvals    *ApprovalsQuery    `json:"approvals,omitempty"`
	AllOperators *AllOperatorsQuery `json:"all_operators,omitempty"`
	NumTokens    *NumTokensQuery    `json:"num_tokens,omitempty"`
	ContractInfo *ContractInfoQuery `json:"contract_info,omitempty"`
	NftInfo      *NftInfoQuery      `json:"nft_info,omitempty"`
	AllNftInfo   *AllNftInfoQuery   `json:"all_nft_info,omitempty"`
	Tokens       *TokensQuery       `json:"tokens,omitempty"`
	AllTokens    *AllTokensQuery    `json:"all_tokens,omitempty"`
	Minter       *MinterQuery       `json:"minter,omitempty"`
	NftDetails   *NftDetailsQuery   `json:"nft_details,omitempty"`
}

type OwnerOfQuery struct {
	TokenId        string `json:"token_id"`
	IncludeExpired bool   `json:"include_expired,omitempty"`
}

type ApprovalQuery struct {
	TokenId        string `json:"token_id"`
	Spender        string `json:"spender"`
	IncludeExpired bool   `json:"include_expired,omitempty"`
}

type ApprovalsQuery struct {
	TokenId        string `json:"token_id"`
	IncludeExpired bool   `json:"include_expired,omitempty"`
}

type AllOperatorsQuery struct {
	Owner          string  `json:"owner"`
	IncludeExpired bool    `json:"include_expired,omitempty"`
	StartAfter     string  `json:"start_after,omitempty"`
	Limit          *uint32 `json:"limit,omitempty"`
}

type NumTokensQuery struct{}

type ContractInfoQuery struct{}

type NftInfoQuery struct {
	TokenId string `json:"token_id"`
}

type AllNftInfoQuery struct {
	TokenId        string `json:"token_id"`
	IncludeExpired bool   `json:"include_expired,omitempty"`
}

type TokensQuery struct {
	Owner      string  `json:"owner"`
	StartAfter string  `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

type AllTokensQuery struct {
	StartAfter string  `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

type MinterQuery struct{}

type NftDetailsQuery struct{}

type OwnerOfResponse struct {
	Owner     string     `json:"owner"`
	Approvals []Approval `json:"approvals"`
}

type ApprovalResponse struct {
	Approval Approval `json:"approval"`
}

type ApprovalsResponse struct {
	Approvals []Approval `json:"approvals"`
}

type OperatorsResponse struct {
	Operators []OperatorGrant `json:"operators"`
}

type NumTokensResponse struct {
	Count uint64 `json:"count"`
}

type ContractInfoResponse struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type NftInfoResponse struct {
	TokenURI  string `json:"token_uri,omitempty"`
	Extension []byte `json:"extension,omitempty"`
}

type AllNftInfoResponse struct {
	Access OwnerOfResponse `json:"access"`
	Info   NftInfoResponse `json:"info"`
}

type TokensResponse struct {
	Tokens []string `json:"tokens"`
}

type MinterResponse struct {
	Minter string `json:"minter"`
}

type NftDetailsResponse struct {
	TokenURI  string `json:"token_uri,omitempty"`
	MintPrice Coin   `json:"mint_price"`
	MaxMints  uint64 `json:"max_mints"`
}
