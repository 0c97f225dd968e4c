package contract

import (
	"bytes"
	"encoding/binary"

	"presale_contract/sdk"
)

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeAmount keeps amount encoding consistent via a single call site.
func (w *binWriter) writeAmount(v Amount) {
	w.writeInt64(int64(v))
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeAddress canonicalizes the address before writing, so later parsing is easyer.
func (w *binWriter) writeAddress(a sdk.Address) {
	w.writeString(AddressToString(a))
}

// writeAsset just dumps the ticker string, nothing fancy but consistent.
func (w *binWriter) writeAsset(a sdk.Asset) {
	w.writeString(AssetToString(a))
}

// EncodeSale serializes the entire Sale into deterministic bytes for storage.
// Example payload: EncodeSale(&Sale{ID: 1, RaiseTarget: 10_000_000})
func EncodeSale(s *Sale) []byte {
	w := newWriter()
	w.writeUint64(s.ID)
	w.writeAmount(s.MinSpend)
	w.writeAmount(s.MaxSpend)
	w.writeAmount(s.RaiseTarget)
	w.writeAmount(s.RaisedTotal)
	w.writeAmount(s.TokensForSale)
	w.writeAmount(s.Softcap)
	w.writeInt64(s.SaleStartTs)
	w.writeInt64(s.SaleEndTs)
	w.writeInt64(s.DistributionTs)
	w.buf.WriteByte(byte(s.Phase))
	w.writeBool(s.WhitelistEnabled)
	w.writeUint64(s.WhitelistCount)
	w.writeUint64(s.ParticipantCount)
	w.writeAsset(s.SaleAsset)
	w.writeAsset(s.PaymentAsset)
	w.writeInt64(s.CreatedAt)
	return w.bytes()
}

// EncodeClaim packs a Claim into bytes so storage stays lean and no json noise leaks.
// Example payload: EncodeClaim(&Claim{SaleID: 1, Address: AddressFromString("hive:alice")})
func EncodeClaim(c *Claim) []byte {
	w := newWriter()
	w.writeString(c.ID)
	w.writeUint64(c.SaleID)
	w.writeAddress(c.Address)
	w.writeAmount(c.Contributed)
	w.writeAmount(c.EntitledTokens)
	w.writeInt64(c.CreatedAt)
	w.writeInt64(c.UpdatedAt)
	return w.bytes()
}
