package ethabi

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
)

// Token is a single typed ABI value. Token trees mirror the type grammar and
// are what Encode consumes and Decode produces.
// This is a sealed interface - only types within this package can implement it.
type Token interface {
	// isToken is unexported to seal the interface.
	isToken()

	// Kind returns the type shape this token encodes as.
	Kind() Kind

	// String returns a compact textual rendering of the value: hex for
	// addresses, byte blobs and numbers, true/false for booleans, raw text
	// for strings, [..] for arrays and (..) for tuples.
	String() string
}

// Signed 256-bit bounds for the big.Int constructors.
var (
	maxInt256 = new(big.Int).Sub(math.BigPow(2, 255), big.NewInt(1))
	minInt256 = new(big.Int).Neg(math.BigPow(2, 255))
)

// twoPow256 is the modulus of the 256-bit word space, used to interpret
// words as two's complement values.
var twoPow256 = math.BigPow(2, 256)

// AddressToken holds a 20-byte address.
type AddressToken struct {
	addr common.Address
}

func (t *AddressToken) isToken() {}

// Kind returns KindAddress.
func (t *AddressToken) Kind() Kind { return KindAddress }

func (t *AddressToken) String() string {
	return hex.EncodeToString(t.addr[:])
}

// Address returns the held address.
func (t *AddressToken) Address() common.Address { return t.addr }

// BytesToken holds a byte sequence of dynamic length.
type BytesToken struct {
	data []byte
}

func (t *BytesToken) isToken() {}

// Kind returns KindBytes.
func (t *BytesToken) Kind() Kind { return KindBytes }

func (t *BytesToken) String() string {
	return hex.EncodeToString(t.data)
}

// Data returns the held bytes.
func (t *BytesToken) Data() []byte { return t.data }

// FixedBytesToken holds a fixed-length byte sequence (bytesN).
type FixedBytesToken struct {
	data []byte
}

func (t *FixedBytesToken) isToken() {}

// Kind returns KindFixedBytes.
func (t *FixedBytesToken) Kind() Kind { return KindFixedBytes }

func (t *FixedBytesToken) String() string {
	return hex.EncodeToString(t.data)
}

// Data returns the held bytes.
func (t *FixedBytesToken) Data() []byte { return t.data }

// IntToken holds a signed integer as a full 256-bit two's complement word,
// regardless of the declared bit width.
type IntToken struct {
	word Word
}

func (t *IntToken) isToken() {}

// Kind returns KindInt.
func (t *IntToken) Kind() Kind { return KindInt }

func (t *IntToken) String() string {
	return new(big.Int).SetBytes(t.word[:]).Text(16)
}

// Big returns the signed value, interpreting the word as two's complement.
func (t *IntToken) Big() *big.Int {
	v := new(big.Int).SetBytes(t.word[:])
	if v.Cmp(maxInt256) > 0 {
		v.Sub(v, twoPow256)
	}
	return v
}

// UintToken holds an unsigned integer as a full 256-bit word, regardless of
// the declared bit width.
type UintToken struct {
	word Word
}

func (t *UintToken) isToken() {}

// Kind returns KindUint.
func (t *UintToken) Kind() Kind { return KindUint }

func (t *UintToken) String() string {
	return new(big.Int).SetBytes(t.word[:]).Text(16)
}

// Big returns the unsigned value.
func (t *UintToken) Big() *big.Int {
	return new(big.Int).SetBytes(t.word[:])
}

// Uint256 returns the unsigned value.
func (t *UintToken) Uint256() *uint256.Int {
	return new(uint256.Int).SetBytes(t.word[:])
}

// BoolToken holds a boolean.
type BoolToken struct {
	value bool
}

func (t *BoolToken) isToken() {}

// Kind returns KindBool.
func (t *BoolToken) Kind() Kind { return KindBool }

func (t *BoolToken) String() string {
	if t.value {
		return "true"
	}
	return "false"
}

// Value returns the held boolean.
func (t *BoolToken) Value() bool { return t.value }

// StringToken holds a text string.
type StringToken struct {
	value string
}

func (t *StringToken) isToken() {}

// Kind returns KindString.
func (t *StringToken) Kind() Kind { return KindString }

func (t *StringToken) String() string { return t.value }

// Value returns the held text.
func (t *StringToken) Value() string { return t.value }

// ArrayToken holds an array of dynamic length.
type ArrayToken struct {
	elems []Token
}

func (t *ArrayToken) isToken() {}

// Kind returns KindArray.
func (t *ArrayToken) Kind() Kind { return KindArray }

func (t *ArrayToken) String() string {
	return "[" + joinTokens(t.elems) + "]"
}

// Elems returns the element tokens.
func (t *ArrayToken) Elems() []Token { return t.elems }

// FixedArrayToken holds an array of fixed length.
type FixedArrayToken struct {
	elems []Token
}

func (t *FixedArrayToken) isToken() {}

// Kind returns KindFixedArray.
func (t *FixedArrayToken) Kind() Kind { return KindFixedArray }

func (t *FixedArrayToken) String() string {
	return "[" + joinTokens(t.elems) + "]"
}

// Elems returns the element tokens.
func (t *FixedArrayToken) Elems() []Token { return t.elems }

// TupleToken holds an ordered sequence of heterogeneous members.
type TupleToken struct {
	elems []Token
}

func (t *TupleToken) isToken() {}

// Kind returns KindTuple.
func (t *TupleToken) Kind() Kind { return KindTuple }

func (t *TupleToken) String() string {
	return "(" + joinTokens(t.elems) + ")"
}

// Elems returns the member tokens.
func (t *TupleToken) Elems() []Token { return t.elems }

func joinTokens(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, ",")
}

// Address creates an address token.
func Address(addr common.Address) *AddressToken {
	return &AddressToken{addr: addr}
}

// Bytes creates a dynamic bytes token.
func Bytes(data []byte) *BytesToken {
	return &BytesToken{data: data}
}

// FixedBytes creates a bytesN token; the declared length is len(data).
func FixedBytes(data []byte) *FixedBytesToken {
	return &FixedBytesToken{data: data}
}

// Bool creates a bool token.
func Bool(v bool) *BoolToken {
	return &BoolToken{value: v}
}

// String creates a string token.
func String(v string) *StringToken {
	return &StringToken{value: v}
}

// Array creates a dynamic array token from the given elements.
func Array(elems ...Token) *ArrayToken {
	return &ArrayToken{elems: elems}
}

// FixedArray creates a fixed array token from the given elements.
func FixedArray(elems ...Token) *FixedArrayToken {
	return &FixedArrayToken{elems: elems}
}

// Tuple creates a tuple token from the given members.
func Tuple(elems ...Token) *TupleToken {
	return &TupleToken{elems: elems}
}

// Uint256 creates an unsigned integer token from v.
func Uint256(v *uint256.Int) *UintToken {
	return &UintToken{word: v.Bytes32()}
}

// Uint64 creates an unsigned integer token from v.
func Uint64(v uint64) *UintToken {
	return &UintToken{word: uint256.NewInt(v).Bytes32()}
}

// Int256 creates a signed integer token from v, taking its bit pattern as
// the 256-bit two's complement value.
func Int256(v *uint256.Int) *IntToken {
	return &IntToken{word: v.Bytes32()}
}

// Int64 creates a signed integer token from v, sign-extended to 256 bits.
func Int64(v int64) *IntToken {
	u := new(uint256.Int)
	u.SetFromBig(big.NewInt(v))
	return &IntToken{word: u.Bytes32()}
}

// BigUint creates an unsigned integer token from v.
// Fails if v is negative or wider than 256 bits.
func BigUint(v *big.Int) (*UintToken, error) {
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s is negative", ErrInvalidValue, v)
	}
	u, overflow := uint256.FromBig(v)
	if overflow {
		return nil, fmt.Errorf("%w: %s does not fit in 256 bits", ErrInvalidValue, v)
	}
	return &UintToken{word: u.Bytes32()}, nil
}

// BigInt creates a signed integer token from v as 256-bit two's complement.
// Fails if v is outside [-2^255, 2^255-1].
func BigInt(v *big.Int) (*IntToken, error) {
	if v.Cmp(minInt256) < 0 || v.Cmp(maxInt256) > 0 {
		return nil, fmt.Errorf("%w: %s does not fit in a signed 256-bit word", ErrInvalidValue, v)
	}
	u := new(uint256.Int)
	u.SetFromBig(v)
	return &IntToken{word: u.Bytes32()}, nil
}

// TypeCheck verifies that each token's shape recursively matches the
// corresponding type. Encode assumes its input has passed this check.
//
// Numeric tokens always carry a full 256-bit word, so any declared Int/Uint
// width up to 256 bits passes. FixedBytes and FixedArray require exact
// lengths; array elements and tuple members are checked recursively.
func TypeCheck(types []Type, tokens []Token) error {
	if len(types) != len(tokens) {
		return &TypeMismatchError{
			Expected: fmt.Sprintf("%d values", len(types)),
			Got:      fmt.Sprintf("%d values", len(tokens)),
		}
	}
	for i := range types {
		if err := typeCheck(types[i], tokens[i], 0); err != nil {
			return err
		}
	}
	return nil
}

func typeCheck(typ Type, tok Token, depth int) error {
	if depth > MaxDepth {
		return fmt.Errorf("%w: nesting deeper than %d levels", ErrInvalidData, MaxDepth)
	}
	switch t := tok.(type) {
	case *AddressToken:
		if typ.Kind != KindAddress {
			return mismatch(typ, tok)
		}
	case *BytesToken:
		if typ.Kind != KindBytes {
			return mismatch(typ, tok)
		}
	case *FixedBytesToken:
		if typ.Kind != KindFixedBytes || typ.Size != len(t.data) {
			return mismatch(typ, tok)
		}
	case *IntToken:
		if typ.Kind != KindInt || typ.Size > 8*WordSize {
			return mismatch(typ, tok)
		}
	case *UintToken:
		if typ.Kind != KindUint || typ.Size > 8*WordSize {
			return mismatch(typ, tok)
		}
	case *BoolToken:
		if typ.Kind != KindBool {
			return mismatch(typ, tok)
		}
	case *StringToken:
		if typ.Kind != KindString {
			return mismatch(typ, tok)
		}
	case *ArrayToken:
		if typ.Kind != KindArray {
			return mismatch(typ, tok)
		}
		for _, e := range t.elems {
			if err := typeCheck(*typ.Elem, e, depth+1); err != nil {
				return err
			}
		}
	case *FixedArrayToken:
		if typ.Kind != KindFixedArray || typ.Size != len(t.elems) {
			return mismatch(typ, tok)
		}
		for _, e := range t.elems {
			if err := typeCheck(*typ.Elem, e, depth+1); err != nil {
				return err
			}
		}
	case *TupleToken:
		if typ.Kind != KindTuple || len(typ.Components) != len(t.elems) {
			return mismatch(typ, tok)
		}
		for i, e := range t.elems {
			if err := typeCheck(typ.Components[i], e, depth+1); err != nil {
				return err
			}
		}
	default:
		return mismatch(typ, tok)
	}
	return nil
}

func mismatch(typ Type, tok Token) error {
	return &TypeMismatchError{Expected: typ.String(), Got: tokenShape(tok)}
}

// tokenShape describes a token's shape for error messages without dumping
// its full value.
func tokenShape(tok Token) string {
	switch t := tok.(type) {
	case *AddressToken:
		return "address"
	case *BytesToken:
		return "bytes"
	case *FixedBytesToken:
		return fmt.Sprintf("bytes%d", len(t.data))
	case *IntToken:
		return "int256"
	case *UintToken:
		return "uint256"
	case *BoolToken:
		return "bool"
	case *StringToken:
		return "string"
	case *ArrayToken:
		return fmt.Sprintf("array of %d elements", len(t.elems))
	case *FixedArrayToken:
		return fmt.Sprintf("fixed array of %d elements", len(t.elems))
	case *TupleToken:
		return fmt.Sprintf("tuple of %d members", len(t.elems))
	default:
		return "unknown token"
	}
}

// tokenIsDynamic mirrors Type.IsDynamic on the value level: the encoder has
// no type descriptors and reads structure off the tokens themselves.
func tokenIsDynamic(tok Token) bool {
	switch t := tok.(type) {
	case *BytesToken, *StringToken, *ArrayToken:
		return true
	case *FixedArrayToken:
		for _, e := range t.elems {
			if tokenIsDynamic(e) {
				return true
			}
		}
		return false
	case *TupleToken:
		for _, e := range t.elems {
			if tokenIsDynamic(e) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
