package contract

import "presale_contract/sdk"

// sdkDraw pulls an Amount from the current sender into contract custody.
func sdkDraw(amount Amount, asset sdk.Asset) error {
	return sdk.Draw(AmountToInt64(amount), asset)
}

// sdkTransfer pays an Amount out of contract custody.
func sdkTransfer(to sdk.Address, amount Amount, asset sdk.Asset) error {
	return sdk.Transfer(to, AmountToInt64(amount), asset)
}
