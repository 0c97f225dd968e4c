package contract

import (
	"github.com/pkg/errors"

	"presale_contract/sdk"
)

// nextSaleID bumps the sale counter and returns the fresh id (1-based).
func nextSaleID() uint64 {
	n := getCount(SalesCount) + 1
	setCount(SalesCount, n)
	return n
}

// saveSale writes the encoded record back under its id key.
func saveSale(s *Sale) {
	sdk.StateSetObject(saleKey(s.ID), string(EncodeSale(s)))
}

// loadSale fetches and decodes a sale, distinguishing "missing" from "corrupt".
func loadSale(id uint64) (*Sale, error) {
	ptr := sdk.StateGetObject(saleKey(id))
	if ptr == nil || *ptr == "" {
		return nil, errors.Wrapf(ErrNoSuchSale, "sale %d", id)
	}
	s, err := DecodeSale([]byte(*ptr))
	if err != nil {
		return nil, errors.Wrapf(ErrCorruptState, "decode sale %d: %v", id, err)
	}
	return s, nil
}
