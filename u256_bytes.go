package num

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// u256Bytes is the size of a serialised U256.
const u256Bytes = 32

// ErrInvalidByteLength is wrapped by every error returned when a byte buffer
// can not hold an encoded U256.
var ErrInvalidByteLength = errors.New("num: invalid u256 byte length")

var (
	_ msgpack.CustomEncoder = U256{}
	_ msgpack.CustomDecoder = (*U256)(nil)
)

// BytesLE returns the 32-byte little-endian encoding of u.
func (u U256) BytesLE() (out [32]byte) {
	u.PutBytesLE(out[:])
	return out
}

// BytesBE returns the 32-byte big-endian encoding of u.
func (u U256) BytesBE() (out [32]byte) {
	u.PutBytesBE(out[:])
	return out
}

// PutBytesLE writes u to the first 32 bytes of b in little-endian order. It
// panics if b is too short.
func (u U256) PutBytesLE(b []byte) {
	_ = b[31] // early bounds check
	binary.LittleEndian.PutUint64(b[0:], u.lo)
	binary.LittleEndian.PutUint64(b[8:], u.lm)
	binary.LittleEndian.PutUint64(b[16:], u.hm)
	binary.LittleEndian.PutUint64(b[24:], u.hi)
}

// PutBytesBE writes u to the first 32 bytes of b in big-endian order. It
// panics if b is too short.
func (u U256) PutBytesBE(b []byte) {
	_ = b[31] // early bounds check
	binary.BigEndian.PutUint64(b[0:], u.hi)
	binary.BigEndian.PutUint64(b[8:], u.hm)
	binary.BigEndian.PutUint64(b[16:], u.lm)
	binary.BigEndian.PutUint64(b[24:], u.lo)
}

func U256FromArrayLE(b [32]byte) U256 {
	return U256{
		lo: binary.LittleEndian.Uint64(b[0:]),
		lm: binary.LittleEndian.Uint64(b[8:]),
		hm: binary.LittleEndian.Uint64(b[16:]),
		hi: binary.LittleEndian.Uint64(b[24:]),
	}
}

func U256FromArrayBE(b [32]byte) U256 {
	return U256{
		hi: binary.BigEndian.Uint64(b[0:]),
		hm: binary.BigEndian.Uint64(b[8:]),
		lm: binary.BigEndian.Uint64(b[16:]),
		lo: binary.BigEndian.Uint64(b[24:]),
	}
}

// U256FromBytesLE decodes a little-endian U256 from the first 32 bytes of b.
// len(b) must be a non-zero multiple of 32; shorter input is never padded.
func U256FromBytesLE(b []byte) (out U256, err error) {
	if err := checkByteLength(b); err != nil {
		return out, err
	}
	var arr [32]byte
	copy(arr[:], b)
	return U256FromArrayLE(arr), nil
}

// U256FromBytesBE decodes a big-endian U256 from the first 32 bytes of b.
// len(b) must be a non-zero multiple of 32; shorter input is never padded.
func U256FromBytesBE(b []byte) (out U256, err error) {
	if err := checkByteLength(b); err != nil {
		return out, err
	}
	var arr [32]byte
	copy(arr[:], b)
	return U256FromArrayBE(arr), nil
}

func checkByteLength(b []byte) error {
	if len(b) == 0 || len(b)%u256Bytes != 0 {
		return fmt.Errorf("%w: got %d, want a non-zero multiple of %d", ErrInvalidByteLength, len(b), u256Bytes)
	}
	return nil
}

// EncodeMsgpack writes u as a 32-byte big-endian msgpack bin.
func (u U256) EncodeMsgpack(enc *msgpack.Encoder) error {
	b := u.BytesBE()
	return enc.EncodeBytes(b[:])
}

func (u *U256) DecodeMsgpack(dec *msgpack.Decoder) error {
	b, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	if len(b) != u256Bytes {
		return fmt.Errorf("%w: msgpack bin has %d bytes", ErrInvalidByteLength, len(b))
	}
	var arr [32]byte
	copy(arr[:], b)
	*u = U256FromArrayBE(arr)
	return nil
}
