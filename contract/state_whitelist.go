package contract

import "presale_contract/sdk"

// setWhitelistEntry stores an approval entry, reporting whether it was new.
func setWhitelistEntry(saleID uint64, addr sdk.Address) bool {
	key := whitelistKey(saleID, addr)
	if existing := sdk.StateGetObject(key); existing != nil && *existing != "" {
		return false
	}
	sdk.StateSetObject(key, "1")
	return true
}

// isWhitelistedEntry reports whether an address holds an approval.
func isWhitelistedEntry(saleID uint64, addr sdk.Address) bool {
	key := whitelistKey(saleID, addr)
	existing := sdk.StateGetObject(key)
	return existing != nil && *existing != ""
}
