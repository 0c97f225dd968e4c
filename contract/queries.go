package contract

import (
	"github.com/pkg/errors"

	"presale_contract/sdk"
)

// SaleView is the read-only projection of a sale for the host boundary.
//
//tinyjson:json
type SaleView struct {
	ID               uint64 `json:"id"`
	MinSpend         Amount `json:"min_spend"`
	MaxSpend         Amount `json:"max_spend"`
	RaiseTarget      Amount `json:"raise_target"`
	RaisedTotal      Amount `json:"raised_total"`
	TokensForSale    Amount `json:"tokens_for_sale"`
	Softcap          Amount `json:"softcap"`
	SaleStartTs      int64  `json:"sale_start_ts"`
	SaleEndTs        int64  `json:"sale_end_ts"`
	DistributionTs   int64  `json:"distribution_ts"`
	Phase            string `json:"phase"`
	WhitelistEnabled bool   `json:"whitelist_enabled"`
	WhitelistCount   uint64 `json:"whitelist_count"`
	ParticipantCount uint64 `json:"participant_count"`
	SaleAsset        string `json:"sale_asset"`
	PaymentAsset     string `json:"payment_asset"`
	SaleReserve      Amount `json:"sale_reserve"`
	PaymentReserve   Amount `json:"payment_reserve"`
	CreatedAt        int64  `json:"created_at"`
}

// ClaimView exposes a claim's contributed/entitled amounts.
//
//tinyjson:json
type ClaimView struct {
	ID             string `json:"id"`
	SaleID         uint64 `json:"sale_id"`
	Address        string `json:"address"`
	Contributed    Amount `json:"contributed"`
	EntitledTokens Amount `json:"entitled_tokens"`
	CreatedAt      int64  `json:"created_at"`
	UpdatedAt      int64  `json:"updated_at"`
}

// GetSaleView assembles the full read model including both reserve balances.
// Queries carry no authorization; anyone may inspect any sale.
func GetSaleView(saleID uint64) (*SaleView, error) {
	sale, err := loadSale(saleID)
	if err != nil {
		return nil, err
	}
	return &SaleView{
		ID:               sale.ID,
		MinSpend:         sale.MinSpend,
		MaxSpend:         sale.MaxSpend,
		RaiseTarget:      sale.RaiseTarget,
		RaisedTotal:      sale.RaisedTotal,
		TokensForSale:    sale.TokensForSale,
		Softcap:          sale.Softcap,
		SaleStartTs:      sale.SaleStartTs,
		SaleEndTs:        sale.SaleEndTs,
		DistributionTs:   sale.DistributionTs,
		Phase:            sale.Phase.String(),
		WhitelistEnabled: sale.WhitelistEnabled,
		WhitelistCount:   sale.WhitelistCount,
		ParticipantCount: sale.ParticipantCount,
		SaleAsset:        AssetToString(sale.SaleAsset),
		PaymentAsset:     AssetToString(sale.PaymentAsset),
		SaleReserve:      getReserve(saleReserveKey(saleID)),
		PaymentReserve:   getReserve(paymentReserveKey(saleID)),
		CreatedAt:        sale.CreatedAt,
	}, nil
}

// GetClaimView returns the claim projection for an address, or
// NoSuchContribution when none is outstanding.
func GetClaimView(saleID uint64, addr sdk.Address) (*ClaimView, error) {
	if _, err := loadSale(saleID); err != nil {
		return nil, err
	}
	claim, ok, err := loadClaim(saleID, addr)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrapf(ErrNoSuchContribution, "%s holds no claim on sale %d", addr, saleID)
	}
	return &ClaimView{
		ID:             claim.ID,
		SaleID:         claim.SaleID,
		Address:        AddressToString(claim.Address),
		Contributed:    claim.Contributed,
		EntitledTokens: claim.EntitledTokens,
		CreatedAt:      claim.CreatedAt,
		UpdatedAt:      claim.UpdatedAt,
	}, nil
}

// IsWhitelisted is the public membership test for a given address.
func IsWhitelisted(saleID uint64, addr sdk.Address) (bool, error) {
	if _, err := loadSale(saleID); err != nil {
		return false, err
	}
	return isWhitelistedEntry(saleID, addr), nil
}

// ReserveBalances reports the two escrow balances of a sale.
func ReserveBalances(saleID uint64) (Amount, Amount, error) {
	if _, err := loadSale(saleID); err != nil {
		return 0, 0, err
	}
	return getReserve(saleReserveKey(saleID)), getReserve(paymentReserveKey(saleID)), nil
}
