package wire

import "github.com/protoglot/protoglot/wireerr"

// WireType is the 3-bit code in the low bits of a field tag selecting the
// representation of the value that follows. It is a closed enumeration of
// exactly four variants.
type WireType uint8

const (
	Varint WireType = 0
	I64    WireType = 1
	Len    WireType = 2
	I32    WireType = 5
)

func (w WireType) String() string {
	switch w {
	case Varint:
		return "varint"
	case I64:
		return "i64"
	case Len:
		return "len"
	case I32:
		return "i32"
	default:
		return "invalid"
	}
}

// valid reports whether w is one of the four defined wire types.
func (w WireType) valid() bool {
	switch w {
	case Varint, I64, Len, I32:
		return true
	default:
		return false
	}
}

// EncodeTag writes the varint encoding of a field tag, combining
// fieldNumber and wireType as (fieldNumber<<3)|wireCode, into dst starting
// at offset 0 and returns the number of bytes written. It fails with
// BufferFull if dst is too small.
//
// The OR form is the one implemented here; see DESIGN.md's open-question
// decision for why the (fieldNumber<<3)&wireCode form observed elsewhere is
// not reproduced.
func EncodeTag(dst []byte, fieldNumber uint64, wireType WireType) (int, error) {
	return EncodeVarint(dst, (fieldNumber<<3)|uint64(wireType))
}

// AppendTag is the allocation-friendly counterpart of EncodeTag.
func AppendTag(dst []byte, fieldNumber uint64, wireType WireType) []byte {
	return AppendVarint(dst, (fieldNumber<<3)|uint64(wireType))
}

// DecodeTag reads a field tag varint from the front of src, splitting it
// into a field number and wire type. It fails with InvalidWireType if the
// low 3 bits are not one of {0,1,2,5}.
func DecodeTag(src []byte) (fieldNumber uint64, wireType WireType, n int, err error) {
	v, n, err := DecodeVarint(src)
	if err != nil {
		return 0, 0, 0, err
	}
	wireType = WireType(v & 0x7)
	if !wireType.valid() {
		return 0, 0, 0, wireerr.New("DecodeTag", wireerr.InvalidWireType)
	}
	fieldNumber = v >> 3
	return fieldNumber, wireType, n, nil
}
