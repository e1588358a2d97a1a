package ethabi

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// MaxDepth is the deepest type nesting the validating entry points accept.
// It bounds recursion on adversarial descriptors such as a thousand-level
// array of arrays.
const MaxDepth = 64

type decodeResult struct {
	token     Token
	newOffset int
}

// Decode parses data as the head/tail encoding of the given types, in order,
// and returns the reconstructed tokens.
//
// The Decode(types, Encode(tokens)) round trip returns the original tokens
// for every well-formed pairing, and decode failures are total: the first
// malformed element aborts with an error wrapping ErrInvalidData and no
// partial result.
//
// Empty input is rejected with ErrEmptyData unless every requested type has
// a zero-byte canonical encoding (bytes0 and zero-length fixed arrays).
func Decode(types []Type, data []byte) ([]Token, error) {
	if len(data) == 0 {
		for _, t := range types {
			if !t.emptyDataValid() {
				return nil, ErrEmptyData
			}
		}
	}

	tokens := make([]Token, 0, len(types))
	offset := 0
	for _, t := range types {
		res, err := decodeType(t, data, offset, 0)
		if err != nil {
			return nil, err
		}
		offset = res.newOffset
		tokens = append(tokens, res.token)
	}
	return tokens, nil
}

// wordAt reads the word starting at offset, range-checked.
func wordAt(data []byte, offset int) (Word, error) {
	var w Word
	if offset+WordSize > len(data) {
		return w, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrInvalidData, WordSize, offset, len(data))
	}
	copy(w[:], data[offset:])
	return w, nil
}

// takeBytes copies length bytes starting at offset, range-checked.
func takeBytes(data []byte, offset, length int) ([]byte, error) {
	if offset+length > len(data) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrInvalidData, length, offset, len(data))
	}
	out := make([]byte, length)
	copy(out, data[offset:])
	return out, nil
}

// asUint interprets w as an offset or length. The top 28 bytes must be
// zero: values beyond the 32-bit range signal corrupt or hostile input.
func asUint(w Word) (int, error) {
	for _, b := range w[:WordSize-4] {
		if b != 0 {
			return 0, fmt.Errorf("%w: offset or length word exceeds 32 bits", ErrInvalidData)
		}
	}
	return int(binary.BigEndian.Uint32(w[WordSize-4:])), nil
}

// asBool interprets w as a boolean. All bytes except the last must be zero
// and the last must be exactly 0 or 1.
func asBool(w Word) (bool, error) {
	for _, b := range w[:WordSize-1] {
		if b != 0 {
			return false, fmt.Errorf("%w: malformed boolean word", ErrInvalidData)
		}
	}
	switch w[WordSize-1] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: malformed boolean word", ErrInvalidData)
	}
}

func decodeType(t Type, data []byte, offset, depth int) (decodeResult, error) {
	if depth > MaxDepth {
		return decodeResult{}, fmt.Errorf("%w: nesting deeper than %d levels", ErrInvalidData, MaxDepth)
	}

	switch t.Kind {
	case KindAddress:
		w, err := wordAt(data, offset)
		if err != nil {
			return decodeResult{}, err
		}
		var tok AddressToken
		copy(tok.addr[:], w[WordSize-len(tok.addr):])
		return decodeResult{token: &tok, newOffset: offset + WordSize}, nil

	case KindInt:
		w, err := wordAt(data, offset)
		if err != nil {
			return decodeResult{}, err
		}
		return decodeResult{token: &IntToken{word: w}, newOffset: offset + WordSize}, nil

	case KindUint:
		w, err := wordAt(data, offset)
		if err != nil {
			return decodeResult{}, err
		}
		return decodeResult{token: &UintToken{word: w}, newOffset: offset + WordSize}, nil

	case KindBool:
		w, err := wordAt(data, offset)
		if err != nil {
			return decodeResult{}, err
		}
		b, err := asBool(w)
		if err != nil {
			return decodeResult{}, err
		}
		return decodeResult{token: &BoolToken{value: b}, newOffset: offset + WordSize}, nil

	case KindFixedBytes:
		// Content is right-padded to whole words on the wire, but only the
		// declared bytes need to be present. The cursor always advances by
		// one word regardless of the declared length.
		b, err := takeBytes(data, offset, t.Size)
		if err != nil {
			return decodeResult{}, err
		}
		return decodeResult{token: &FixedBytesToken{data: b}, newOffset: offset + WordSize}, nil

	case KindBytes, KindString:
		head, err := wordAt(data, offset)
		if err != nil {
			return decodeResult{}, err
		}
		dynOffset, err := asUint(head)
		if err != nil {
			return decodeResult{}, err
		}
		lenWord, err := wordAt(data, dynOffset)
		if err != nil {
			return decodeResult{}, err
		}
		length, err := asUint(lenWord)
		if err != nil {
			return decodeResult{}, err
		}
		content, err := takeBytes(data, dynOffset+WordSize, length)
		if err != nil {
			return decodeResult{}, err
		}
		var tok Token
		if t.Kind == KindBytes {
			tok = &BytesToken{data: content}
		} else {
			// Lossy conversion: invalid byte sequences become U+FFFD
			// instead of failing the whole decode.
			tok = &StringToken{value: strings.ToValidUTF8(string(content), "�")}
		}
		return decodeResult{token: tok, newOffset: offset + WordSize}, nil

	case KindArray:
		head, err := wordAt(data, offset)
		if err != nil {
			return decodeResult{}, err
		}
		dynOffset, err := asUint(head)
		if err != nil {
			return decodeResult{}, err
		}
		countWord, err := wordAt(data, dynOffset)
		if err != nil {
			return decodeResult{}, err
		}
		count, err := asUint(countWord)
		if err != nil {
			return decodeResult{}, err
		}
		// Element offsets are relative to the position just after the
		// count word, so decode against the re-based tail.
		tail := data[dynOffset+WordSize:]
		elems := make([]Token, 0, count)
		cursor := 0
		for i := 0; i < count; i++ {
			res, err := decodeType(*t.Elem, tail, cursor, depth+1)
			if err != nil {
				return decodeResult{}, err
			}
			cursor = res.newOffset
			elems = append(elems, res.token)
		}
		return decodeResult{token: &ArrayToken{elems: elems}, newOffset: offset + WordSize}, nil

	case KindFixedArray:
		tail, cursor, indirect, err := groupFrame(t, data, offset)
		if err != nil {
			return decodeResult{}, err
		}
		elems := make([]Token, 0, t.Size)
		for i := 0; i < t.Size; i++ {
			res, err := decodeType(*t.Elem, tail, cursor, depth+1)
			if err != nil {
				return decodeResult{}, err
			}
			cursor = res.newOffset
			elems = append(elems, res.token)
		}
		return decodeResult{
			token:     &FixedArrayToken{elems: elems},
			newOffset: groupNewOffset(indirect, offset, cursor),
		}, nil

	case KindTuple:
		tail, cursor, indirect, err := groupFrame(t, data, offset)
		if err != nil {
			return decodeResult{}, err
		}
		elems := make([]Token, 0, len(t.Components))
		for _, comp := range t.Components {
			res, err := decodeType(comp, tail, cursor, depth+1)
			if err != nil {
				return decodeResult{}, err
			}
			cursor = res.newOffset
			elems = append(elems, res.token)
		}
		return decodeResult{
			token:     &TupleToken{elems: elems},
			newOffset: groupNewOffset(indirect, offset, cursor),
		}, nil

	default:
		return decodeResult{}, fmt.Errorf("%w: unsupported type kind %d", ErrInvalidData, t.Kind)
	}
}

// groupFrame resolves the frame a fixed array or tuple decodes in. A dynamic
// group sits behind one offset word and its members decode from position 0
// of the sub-frame; a static group decodes inline at the current cursor.
func groupFrame(t Type, data []byte, offset int) (tail []byte, cursor int, indirect bool, err error) {
	if !t.IsDynamic() {
		return data, offset, false, nil
	}
	head, err := wordAt(data, offset)
	if err != nil {
		return nil, 0, false, err
	}
	dynOffset, err := asUint(head)
	if err != nil {
		return nil, 0, false, err
	}
	if dynOffset > len(data) {
		return nil, 0, false, fmt.Errorf("%w: offset %d past end of %d-byte input",
			ErrInvalidData, dynOffset, len(data))
	}
	return data[dynOffset:], 0, true, nil
}

// groupNewOffset picks the outer cursor after a group: one word past the
// offset word for a dynamic group, the final inline cursor for a static one.
func groupNewOffset(indirect bool, offset, cursor int) int {
	if indirect {
		return offset + WordSize
	}
	return cursor
}
