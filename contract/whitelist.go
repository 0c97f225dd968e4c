package contract

import "presale_contract/sdk"

// addWhitelistEntries stores approvals for the provided addresses and returns
// the ones that were actually new. Duplicates inside the batch and addresses
// already listed are skipped silently, they are not an error.
func addWhitelistEntries(saleID uint64, addresses []sdk.Address) []sdk.Address {
	added := make([]sdk.Address, 0, len(addresses))
	seen := map[string]struct{}{}
	for _, addr := range addresses {
		if !addr.IsValid() {
			continue
		}
		addrStr := AddressToString(addr)
		if _, ok := seen[addrStr]; ok {
			continue
		}
		seen[addrStr] = struct{}{}
		if setWhitelistEntry(saleID, addr) {
			added = append(added, addr)
		}
	}
	return added
}
