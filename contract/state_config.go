package contract

import (
	"strings"

	"presale_contract/sdk"
)

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true if the contract has been initialized.
func isContractInitialized() bool {
	ptr := sdk.StateGetObject(ContractConfigKey)
	return ptr != nil && *ptr != ""
}

// loadContractConfig loads the contract configuration from state.
func loadContractConfig() *ContractConfig {
	ptr := sdk.StateGetObject(ContractConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeContractConfig(*ptr)
}

// saveContractConfig stores the contract configuration to state.
func saveContractConfig(cfg *ContractConfig) {
	sdk.StateSetObject(ContractConfigKey, encodeContractConfig(cfg))
}

// encodeContractConfig serializes ContractConfig to a pipe-delimited string.
// Format: adminHolder
func encodeContractConfig(cfg *ContractConfig) string {
	return cfg.AdminHolder.String()
}

// decodeContractConfig deserializes the config string.
func decodeContractConfig(data string) *ContractConfig {
	holder := strings.TrimSpace(data)
	if holder == "" {
		return nil
	}
	return &ContractConfig{AdminHolder: AddressFromString(holder)}
}

// isAdminHolder returns true if the given address currently holds the capability.
func isAdminHolder(addr sdk.Address) bool {
	cfg := loadContractConfig()
	return cfg != nil && cfg.AdminHolder == addr
}
