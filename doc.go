/*
Package num provides a fixed-width unsigned 256-bit integer (U256), built on
top of the uint128 (U128) and int128 (I128) types also provided here.

All three are value types; all operations return new values. Arithmetic wraps
around on overflow and underflow, like Go's native unsigned integers. The only
methods that modify the receiver are the U256 Set* helpers.

Simple example:

	u := MaxU256
	fmt.Println(u.Add(OneU256))
	// Output: 0

	fmt.Println(U256From64(255).Lsh(200).Text(16))
	// Output: ff00000000000000000000000000000000000000000000000000

U256 can be created from a variety of sources:

	U256FromRaw(hi, hm, lm, lo uint64) U256
	U256FromBits(l0, l1, l2, l3, h0, h1, h2, h3 uint32) U256
	U256From64(v uint64) U256
	U256From32(v uint32) U256
	U256FromInt64(v int64) U256
	U256FromInt32(v int32) U256
	U256From128(v U128) U256
	U256FromI128(v I128) U256
	U256FromString(s string) (out U256, accurate bool, err error)
	U256FromBigInt(v *big.Int) (out U256, accurate bool)
	U256FromFloat64(f float64) (out U256, inRange bool)
	U256FromBytesLE(b []byte) (U256, error)
	U256FromBytesBE(b []byte) (U256, error)
	U256FromArrayLE(b [32]byte) U256
	U256FromArrayBE(b [32]byte) U256

U256 supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- msgpack.CustomEncoder
	- msgpack.CustomDecoder

*/
package num
