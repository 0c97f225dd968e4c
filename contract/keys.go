package contract

import "presale_contract/sdk"

const (
	// kSale stores serialized Sale records.
	kSale byte = 0x01
	// kClaim houses encoded Claim records (sale scoped, one per address).
	kClaim byte = 0x02
	// kWhitelist flags approved contributor addresses per sale.
	kWhitelist byte = 0x03
	// kSaleReserve tracks the escrowed sale-token balance per sale.
	kSaleReserve byte = 0x04
	// kPaymentReserve tracks collected payment assets per sale.
	kPaymentReserve byte = 0x05
)

const (
	// ContractConfigKey stores the admin holder record.
	ContractConfigKey = "cfg"
	// SalesCount holds an integer counter for sales (used for generating IDs).
	SalesCount = "count:sales"
)

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// saleKey builds a storage key string for a sale by ID.
func saleKey(id uint64) string {
	var buf [9]byte
	buf[0] = kSale
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// claimKey mixes sale id plus address bytes to avoid nested maps in host storage.
func claimKey(saleID uint64, addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, kClaim)
	buf = packU64LE(saleID, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}

// whitelistKey mirrors claim keys but keeps approvals in a separate prefix.
func whitelistKey(saleID uint64, addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+8+len(addrStr))
	buf = append(buf, kWhitelist)
	buf = packU64LE(saleID, buf)
	buf = append(buf, addrStr...)
	return string(buf)
}

// saleReserveKey addresses the escrowed sale-token balance row.
func saleReserveKey(id uint64) string {
	var buf [9]byte
	buf[0] = kSaleReserve
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// paymentReserveKey addresses the collected payment balance row.
func paymentReserveKey(id uint64) string {
	var buf [9]byte
	buf[0] = kPaymentReserve
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}
