package contract

import (
	"github.com/pkg/errors"

	"presale_contract/sdk"
)

// saveClaim stores the encoded claim under its sale+address key.
func saveClaim(c *Claim) {
	sdk.StateSetObject(claimKey(c.SaleID, c.Address), string(EncodeClaim(c)))
}

// loadClaim returns the claim for an address, or false when none is outstanding.
func loadClaim(saleID uint64, addr sdk.Address) (*Claim, bool, error) {
	ptr := sdk.StateGetObject(claimKey(saleID, addr))
	if ptr == nil || *ptr == "" {
		return nil, false, nil
	}
	c, err := DecodeClaim([]byte(*ptr))
	if err != nil {
		return nil, false, errors.Wrapf(ErrCorruptState, "decode claim %d/%s: %v", saleID, addr, err)
	}
	return c, true, nil
}

// deleteClaim removes the claim row; redemption consumes the record.
func deleteClaim(saleID uint64, addr sdk.Address) {
	sdk.StateDeleteObject(claimKey(saleID, addr))
}

// hasClaim is a tiny helper for the deposit/top-up entry split.
func hasClaim(saleID uint64, addr sdk.Address) bool {
	ptr := sdk.StateGetObject(claimKey(saleID, addr))
	return ptr != nil && *ptr != ""
}
