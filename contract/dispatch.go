package contract

import (
	"fmt"

	tinyjson "github.com/CosmWasm/tinyjson"
	"github.com/pkg/errors"

	"presale_contract/sdk"
)

// Dispatch is the host boundary: one action name plus a JSON payload in, one
// JSON document out. Admin actions resolve the capability from the sender, so
// a non-holder caller fails before the payload is even looked at.
func Dispatch(action string, payload string) (string, error) {
	switch action {
	case "contract_init":
		cap, err := ContractInit()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`{"admin":%q}`, cap.Holder().String()), nil

	case "sale_create":
		cap, err := ResolveAdminCap()
		if err != nil {
			return "", err
		}
		var args CreateSaleArgs
		if err := decodePayload(payload, &args); err != nil {
			return "", err
		}
		id, err := CreateSale(cap, &args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`{"sale_id":%d}`, id), nil

	case "sale_deposit":
		var args DepositArgs
		if err := decodePayload(payload, &args); err != nil {
			return "", err
		}
		entitled, err := Deposit(args.SaleID, args.Amount)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`{"entitled_tokens":%d}`, entitled), nil

	case "sale_topup":
		var args DepositArgs
		if err := decodePayload(payload, &args); err != nil {
			return "", err
		}
		entitled, err := DepositTopUp(args.SaleID, args.Amount)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`{"entitled_tokens":%d}`, entitled), nil

	case "sale_redeem":
		var args SaleRefArgs
		if err := decodePayload(payload, &args); err != nil {
			return "", err
		}
		paid, err := RedeemClaim(args.SaleID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`{"redeemed_tokens":%d}`, paid), nil

	case "sale_sweep":
		cap, err := ResolveAdminCap()
		if err != nil {
			return "", err
		}
		var args SaleRefArgs
		if err := decodePayload(payload, &args); err != nil {
			return "", err
		}
		saleTokens, payment, err := AdminSweep(cap, args.SaleID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`{"sale_tokens":%d,"payment":%d}`, saleTokens, payment), nil

	case "sale_set_phase":
		cap, err := ResolveAdminCap()
		if err != nil {
			return "", err
		}
		var args SetPhaseArgs
		if err := decodePayload(payload, &args); err != nil {
			return "", err
		}
		if err := SetPhase(cap, args.SaleID, args.Phase); err != nil {
			return "", err
		}
		return `{"ok":true}`, nil

	case "sale_set_whitelist":
		cap, err := ResolveAdminCap()
		if err != nil {
			return "", err
		}
		var args SetWhitelistEnabledArgs
		if err := decodePayload(payload, &args); err != nil {
			return "", err
		}
		if err := SetWhitelistEnabled(cap, args.SaleID, args.Enabled); err != nil {
			return "", err
		}
		return `{"ok":true}`, nil

	case "sale_set_max_spend":
		cap, err := ResolveAdminCap()
		if err != nil {
			return "", err
		}
		var args SetMaxSpendArgs
		if err := decodePayload(payload, &args); err != nil {
			return "", err
		}
		if err := SetMaxSpend(cap, args.SaleID, args.MaxSpend); err != nil {
			return "", err
		}
		return `{"ok":true}`, nil

	case "sale_whitelist_add":
		cap, err := ResolveAdminCap()
		if err != nil {
			return "", err
		}
		var args WhitelistAddArgs
		if err := decodePayload(payload, &args); err != nil {
			return "", err
		}
		addrs := make([]sdk.Address, 0, len(args.Addresses))
		for _, a := range args.Addresses {
			addrs = append(addrs, AddressFromString(a))
		}
		added, err := AddToWhitelist(cap, args.SaleID, addrs)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`{"added":%d}`, len(added)), nil

	case "admin_transfer":
		cap, err := ResolveAdminCap()
		if err != nil {
			return "", err
		}
		var args TransferAdminArgs
		if err := decodePayload(payload, &args); err != nil {
			return "", err
		}
		if err := TransferAdminCap(cap, AddressFromString(args.To)); err != nil {
			return "", err
		}
		return `{"ok":true}`, nil

	case "sale_get":
		var args SaleRefArgs
		if err := decodePayload(payload, &args); err != nil {
			return "", err
		}
		view, err := GetSaleView(args.SaleID)
		if err != nil {
			return "", err
		}
		return marshalView(view)

	case "claim_get":
		var args ClaimRefArgs
		if err := decodePayload(payload, &args); err != nil {
			return "", err
		}
		addr := AddressFromString(args.Address)
		if args.Address == "" {
			addr = getSenderAddress()
		}
		view, err := GetClaimView(args.SaleID, addr)
		if err != nil {
			return "", err
		}
		return marshalView(view)

	case "whitelist_check":
		var args ClaimRefArgs
		if err := decodePayload(payload, &args); err != nil {
			return "", err
		}
		addr := AddressFromString(args.Address)
		if args.Address == "" {
			addr = getSenderAddress()
		}
		listed, err := IsWhitelisted(args.SaleID, addr)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`{"whitelisted":%t}`, listed), nil

	default:
		return "", errors.Wrapf(ErrInvalidConfiguration, "unknown action %q", action)
	}
}

func decodePayload(payload string, args tinyjson.Unmarshaler) error {
	if err := tinyjson.Unmarshal([]byte(payload), args); err != nil {
		return errors.Wrapf(ErrInvalidConfiguration, "decode payload: %v", err)
	}
	return nil
}

func marshalView(view tinyjson.Marshaler) (string, error) {
	raw, err := tinyjson.Marshal(view)
	if err != nil {
		return "", errors.Wrapf(ErrCorruptState, "encode view: %v", err)
	}
	return string(raw), nil
}
