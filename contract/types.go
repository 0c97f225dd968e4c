package contract

import (
	"presale_contract/sdk"
)

// Amount is an asset quantity in atomic host units (no decimal scaling).
type Amount int64

// AmountToInt64 exposes the raw int64 for host draw/transfer calls.
// Example payload: AmountToInt64(Amount(1_000_000))
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// SalePhase captures a sale's lifecycle stage.
type SalePhase uint8

const (
	PhaseUpcoming SalePhase = 0
	PhaseOngoing  SalePhase = 1
	PhaseClosed   SalePhase = 2
	PhaseAborted  SalePhase = 3
)

// String prints the phase as lower-case text for events and logs.
// Example payload: PhaseOngoing.String()
func (p SalePhase) String() string {
	switch p {
	case PhaseUpcoming:
		return "upcoming"
	case PhaseOngoing:
		return "ongoing"
	case PhaseClosed:
		return "closed"
	case PhaseAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// phaseFromCode maps a raw payload byte onto the enum, rejecting values
// outside the four known stages. Transitions between stages are not checked.
func phaseFromCode(code uint8) (SalePhase, bool) {
	if code > uint8(PhaseAborted) {
		return 0, false
	}
	return SalePhase(code), true
}

// Sale is the shared ledger record of one presale. All mutating operations
// load it, validate, apply every effect and store it back in one call.
type Sale struct {
	ID               uint64
	MinSpend         Amount
	MaxSpend         Amount
	RaiseTarget      Amount
	RaisedTotal      Amount
	TokensForSale    Amount
	Softcap          Amount
	SaleStartTs      int64
	SaleEndTs        int64
	DistributionTs   int64
	Phase            SalePhase
	WhitelistEnabled bool
	WhitelistCount   uint64
	ParticipantCount uint64
	SaleAsset        sdk.Asset
	PaymentAsset     sdk.Asset
	CreatedAt        int64
}

// Claim records one address' cumulative contribution and the sale-token
// amount it is owed. It exists from first deposit until redemption.
type Claim struct {
	ID             string
	SaleID         uint64
	Address        sdk.Address
	Contributed    Amount
	EntitledTokens Amount
	CreatedAt      int64
	UpdatedAt      int64
}

// ContractConfig holds the current admin capability holder.
type ContractConfig struct {
	AdminHolder sdk.Address
}

// AdminCap is the admin capability handle. It cannot be constructed outside
// this package; ResolveAdminCap hands one out only to the recorded holder, so
// passing a cap into an operation is itself the authorization.
type AdminCap struct {
	holder sdk.Address
}

// Holder returns the address currently wielding the capability.
func (c *AdminCap) Holder() sdk.Address {
	return c.holder
}

// AddressFromString converts a human string to the platform address wrapper.
// Example payload: AddressFromString("hive:alice")
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
// Example payload: AddressToString(AddressFromString("hive:bob"))
func AddressToString(a sdk.Address) string { return a.String() }

// AssetFromString wraps a ticker string so type checking keeps us honest.
// Example payload: AssetFromString("hive")
func AssetFromString(s string) sdk.Asset { return sdk.Asset(s) }

// AssetToString unwraps the ticker string for logs or SDK calls.
// Example payload: AssetToString(AssetFromString("hbd"))
func AssetToString(a sdk.Asset) string { return a.String() }
