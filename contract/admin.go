package contract

import (
	"github.com/pkg/errors"

	"presale_contract/sdk"
)

// -----------------------------------------------------------------------------
// Admin Capability
// -----------------------------------------------------------------------------
//
// Admin rights are modelled as a capability value, not a runtime role lookup:
// every owner-only operation takes an *AdminCap argument, and the only way to
// obtain one is ResolveAdminCap while being the recorded holder. The holder
// record is global, so one capability gates any number of sales.

// ContractInit initializes the contract with the caller as the admin
// capability holder. Must be called before any other function.
func ContractInit() (*AdminCap, error) {
	if isContractInitialized() {
		return nil, errors.Wrap(ErrAlreadyInitialized, "contract init")
	}
	sender := getSenderAddress()
	if !sender.IsValid() {
		return nil, errors.Wrap(ErrUnauthorized, "empty sender")
	}
	saveContractConfig(&ContractConfig{AdminHolder: sender})
	emitInitEvent(sender.String())
	return &AdminCap{holder: sender}, nil
}

// ResolveAdminCap hands the capability to the current sender, or fails with
// Unauthorized when the sender is not the recorded holder.
func ResolveAdminCap() (*AdminCap, error) {
	if !isContractInitialized() {
		return nil, errors.Wrap(ErrNotInitialized, "resolve admin cap")
	}
	sender := getSenderAddress()
	if !isAdminHolder(sender) {
		return nil, errors.Wrapf(ErrUnauthorized, "%s does not hold the admin capability", sender)
	}
	return &AdminCap{holder: sender}, nil
}

// TransferAdminCap moves the capability to a new holder. The passed cap is
// dead after this call; the new holder resolves their own.
func TransferAdminCap(cap *AdminCap, to sdk.Address) error {
	if cap == nil {
		return errors.Wrap(ErrUnauthorized, "nil admin capability")
	}
	if !to.IsValid() {
		return errors.Wrap(ErrInvalidConfiguration, "transfer admin to empty address")
	}
	saveContractConfig(&ContractConfig{AdminHolder: to})
	emitAdminTransferEvent(cap.holder.String(), to.String())
	return nil
}
