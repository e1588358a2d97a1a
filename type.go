package ethabi

import (
	"fmt"
	"strings"
)

// Kind identifies the shape of an ABI type.
type Kind uint8

const (
	// KindAddress is a 20-byte account address, stored right-aligned in a word.
	KindAddress Kind = iota

	// KindBytes is a byte sequence of dynamic length.
	KindBytes

	// KindFixedBytes is a byte sequence of fixed length (bytesN).
	KindFixedBytes

	// KindInt is a two's complement signed integer of a declared bit width.
	KindInt

	// KindUint is an unsigned integer of a declared bit width.
	KindUint

	// KindBool is a boolean, encoded as a full word holding 0 or 1.
	KindBool

	// KindString is a UTF-8 string of dynamic length.
	KindString

	// KindArray is an array of dynamic length (T[]).
	KindArray

	// KindFixedArray is an array of fixed length (T[N]).
	KindFixedArray

	// KindTuple is an ordered sequence of heterogeneous components.
	KindTuple
)

// Type describes an ABI type. The zero value is the address type; use the
// Type* constructors or ParseType to build composites.
type Type struct {
	// Kind selects which of the remaining fields are meaningful.
	Kind Kind

	// Size is the bit width for Int/Uint, the byte length for FixedBytes,
	// and the element count for FixedArray.
	Size int

	// Elem is the element type of Array and FixedArray.
	Elem *Type

	// Components are the member types of Tuple, in order.
	Components []Type
}

// TypeAddress returns the address type.
func TypeAddress() Type { return Type{Kind: KindAddress} }

// TypeBytes returns the dynamic bytes type.
func TypeBytes() Type { return Type{Kind: KindBytes} }

// TypeFixedBytes returns the bytesN type for the given byte length.
func TypeFixedBytes(size int) Type { return Type{Kind: KindFixedBytes, Size: size} }

// TypeInt returns the intN type for the given bit width.
func TypeInt(bits int) Type { return Type{Kind: KindInt, Size: bits} }

// TypeUint returns the uintN type for the given bit width.
func TypeUint(bits int) Type { return Type{Kind: KindUint, Size: bits} }

// TypeBool returns the bool type.
func TypeBool() Type { return Type{Kind: KindBool} }

// TypeString returns the string type.
func TypeString() Type { return Type{Kind: KindString} }

// TypeArray returns the dynamic array type with the given element type.
func TypeArray(elem Type) Type { return Type{Kind: KindArray, Elem: &elem} }

// TypeFixedArray returns the fixed array type with the given element type
// and length.
func TypeFixedArray(elem Type, size int) Type {
	return Type{Kind: KindFixedArray, Elem: &elem, Size: size}
}

// TypeTuple returns the tuple type with the given components.
func TypeTuple(components ...Type) Type {
	return Type{Kind: KindTuple, Components: components}
}

// IsDynamic reports whether values of this type have a variable-length
// encoding and are therefore reached through an offset word.
func (t Type) IsDynamic() bool {
	switch t.Kind {
	case KindBytes, KindString, KindArray:
		return true
	case KindFixedArray:
		return t.Elem.IsDynamic()
	case KindTuple:
		for _, c := range t.Components {
			if c.IsDynamic() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// String returns the canonical signature form of the type, e.g. "uint256",
// "address[]" or "(bool,string)[2]".
func (t Type) String() string {
	switch t.Kind {
	case KindAddress:
		return "address"
	case KindBytes:
		return "bytes"
	case KindFixedBytes:
		return fmt.Sprintf("bytes%d", t.Size)
	case KindInt:
		return fmt.Sprintf("int%d", t.Size)
	case KindUint:
		return fmt.Sprintf("uint%d", t.Size)
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindArray:
		return t.Elem.String() + "[]"
	case KindFixedArray:
		return fmt.Sprintf("%s[%d]", t.Elem.String(), t.Size)
	case KindTuple:
		parts := make([]string, len(t.Components))
		for i, c := range t.Components {
			parts[i] = c.String()
		}
		return "(" + strings.Join(parts, ",") + ")"
	default:
		return fmt.Sprintf("invalid(%d)", t.Kind)
	}
}

// emptyDataValid reports whether the empty byte string is a valid encoding
// of this type. Only zero-length fixed shapes qualify.
func (t Type) emptyDataValid() bool {
	switch t.Kind {
	case KindFixedBytes, KindFixedArray:
		return t.Size == 0
	default:
		return false
	}
}

// typeSignature joins the canonical forms of types with commas, without
// enclosing parentheses.
func typeSignature(types []Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return strings.Join(parts, ",")
}
