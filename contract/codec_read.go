package contract

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"presale_contract/sdk"
)

type binReader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

func (r *binReader) readAmount() (Amount, error) {
	val, err := r.readInt64()
	if err != nil {
		return 0, err
	}
	return Amount(val), nil
}

func (r *binReader) readString() (string, error) {
	l, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(l) > len(r.data) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

func (r *binReader) readAddress() (sdk.Address, error) {
	s, err := r.readString()
	if err != nil {
		return "", err
	}
	return AddressFromString(s), nil
}

func (r *binReader) readAsset() (sdk.Asset, error) {
	s, err := r.readString()
	if err != nil {
		return "", err
	}
	return AssetFromString(s), nil
}

// DecodeSale rehydrates a Sale from its deterministic byte form.
// Example payload: DecodeSale(EncodeSale(&Sale{ID: 1}))
func DecodeSale(data []byte) (*Sale, error) {
	r := newReader(data)
	s := &Sale{}
	var err error
	if s.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if s.MinSpend, err = r.readAmount(); err != nil {
		return nil, err
	}
	if s.MaxSpend, err = r.readAmount(); err != nil {
		return nil, err
	}
	if s.RaiseTarget, err = r.readAmount(); err != nil {
		return nil, err
	}
	if s.RaisedTotal, err = r.readAmount(); err != nil {
		return nil, err
	}
	if s.TokensForSale, err = r.readAmount(); err != nil {
		return nil, err
	}
	if s.Softcap, err = r.readAmount(); err != nil {
		return nil, err
	}
	if s.SaleStartTs, err = r.readInt64(); err != nil {
		return nil, err
	}
	if s.SaleEndTs, err = r.readInt64(); err != nil {
		return nil, err
	}
	if s.DistributionTs, err = r.readInt64(); err != nil {
		return nil, err
	}
	phase, err := r.readByte()
	if err != nil {
		return nil, err
	}
	s.Phase = SalePhase(phase)
	if s.WhitelistEnabled, err = r.readBool(); err != nil {
		return nil, err
	}
	if s.WhitelistCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if s.ParticipantCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if s.SaleAsset, err = r.readAsset(); err != nil {
		return nil, err
	}
	if s.PaymentAsset, err = r.readAsset(); err != nil {
		return nil, err
	}
	if s.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return s, nil
}

// DecodeClaim rehydrates a Claim from storage bytes.
// Example payload: DecodeClaim(EncodeClaim(&Claim{SaleID: 1}))
func DecodeClaim(data []byte) (*Claim, error) {
	r := newReader(data)
	c := &Claim{}
	var err error
	if c.ID, err = r.readString(); err != nil {
		return nil, err
	}
	if c.SaleID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if c.Address, err = r.readAddress(); err != nil {
		return nil, err
	}
	if c.Contributed, err = r.readAmount(); err != nil {
		return nil, err
	}
	if c.EntitledTokens, err = r.readAmount(); err != nil {
		return nil, err
	}
	if c.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return c, nil
}
