package contract

//tinyjson:json
type CreateSaleArgs struct {
	MinSpend         Amount `json:"min_spend"`
	MaxSpend         Amount `json:"max_spend"`
	RaiseTarget      Amount `json:"raise_target"`
	TokensForSale    Amount `json:"tokens_for_sale"`
	Softcap          Amount `json:"softcap"`
	SaleStartTs      int64  `json:"sale_start_ts"`
	SaleEndTs        int64  `json:"sale_end_ts"`
	DistributionTs   int64  `json:"distribution_ts"`
	WhitelistEnabled bool   `json:"whitelist_enabled"`
	SaleAsset        string `json:"sale_asset"`
	PaymentAsset     string `json:"payment_asset"`
}

//tinyjson:json
type DepositArgs struct {
	SaleID uint64 `json:"sale_id"`
	Amount Amount `json:"amount"`
}

//tinyjson:json
type SaleRefArgs struct {
	SaleID uint64 `json:"sale_id"`
}

//tinyjson:json
type ClaimRefArgs struct {
	SaleID  uint64 `json:"sale_id"`
	Address string `json:"address"`
}

//tinyjson:json
type SetPhaseArgs struct {
	SaleID uint64 `json:"sale_id"`
	Phase  uint8  `json:"phase"`
}

//tinyjson:json
type SetWhitelistEnabledArgs struct {
	SaleID  uint64 `json:"sale_id"`
	Enabled bool   `json:"enabled"`
}

//tinyjson:json
type SetMaxSpendArgs struct {
	SaleID   uint64 `json:"sale_id"`
	MaxSpend Amount `json:"max_spend"`
}

//tinyjson:json
type WhitelistAddArgs struct {
	SaleID    uint64   `json:"sale_id"`
	Addresses []string `json:"addresses"`
}

//tinyjson:json
type TransferAdminArgs struct {
	To string `json:"to"`
}
