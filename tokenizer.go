package ethabi

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// Tokenizer parses textual value literals into tokens.
//
// The zero configuration is strict: addresses and byte blobs must be hex,
// integers full-width hex. Bools accept true, false, 1 and 0, strings are
// taken verbatim, and composite values use bracket syntax such as
// "[1,2]" or "(a,b)".
type Tokenizer struct {
	lenient bool
}

// TokenizerOption configures a Tokenizer.
type TokenizerOption func(*Tokenizer)

// WithLenientParsing accepts decimal integer literals, signed for int
// types, in addition to the strict full-width hex form.
func WithLenientParsing() TokenizerOption {
	return func(t *Tokenizer) {
		t.lenient = true
	}
}

// NewTokenizer creates a Tokenizer.
func NewTokenizer(opts ...TokenizerOption) *Tokenizer {
	t := &Tokenizer{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize parses value as typ.
func (tk *Tokenizer) Tokenize(typ Type, value string) (Token, error) {
	switch typ.Kind {
	case KindAddress:
		b, err := hexBytes(value)
		if err != nil {
			return nil, err
		}
		if len(b) != common.AddressLength {
			return nil, fmt.Errorf("ethabi: address literal %q is not %d bytes: %w", value, common.AddressLength, ErrInvalidValue)
		}
		return Address(common.BytesToAddress(b)), nil
	case KindBytes:
		b, err := hexBytes(value)
		if err != nil {
			return nil, err
		}
		return Bytes(b), nil
	case KindFixedBytes:
		b, err := hexBytes(value)
		if err != nil {
			return nil, err
		}
		if len(b) != typ.Size {
			return nil, fmt.Errorf("ethabi: literal %q is not %d bytes: %w", value, typ.Size, ErrInvalidValue)
		}
		return FixedBytes(b), nil
	case KindInt:
		return tk.tokenizeInt(value)
	case KindUint:
		return tk.tokenizeUint(value)
	case KindBool:
		switch value {
		case "true", "1":
			return Bool(true), nil
		case "false", "0":
			return Bool(false), nil
		}
		return nil, fmt.Errorf("ethabi: bool literal %q: %w", value, ErrInvalidValue)
	case KindString:
		return String(value), nil
	case KindArray:
		elems, err := tk.tokenizeList(*typ.Elem, value)
		if err != nil {
			return nil, err
		}
		return Array(elems...), nil
	case KindFixedArray:
		elems, err := tk.tokenizeList(*typ.Elem, value)
		if err != nil {
			return nil, err
		}
		if len(elems) != typ.Size {
			return nil, fmt.Errorf("ethabi: literal %q has %d elements, want %d: %w", value, len(elems), typ.Size, ErrInvalidValue)
		}
		return FixedArray(elems...), nil
	case KindTuple:
		parts, err := splitList(value, '(', ')')
		if err != nil {
			return nil, err
		}
		if len(parts) != len(typ.Components) {
			return nil, fmt.Errorf("ethabi: literal %q has %d components, want %d: %w", value, len(parts), len(typ.Components), ErrInvalidValue)
		}
		elems := make([]Token, len(parts))
		for i, part := range parts {
			tok, err := tk.Tokenize(typ.Components[i], part)
			if err != nil {
				return nil, err
			}
			elems[i] = tok
		}
		return Tuple(elems...), nil
	}
	return nil, fmt.Errorf("ethabi: cannot tokenize type %s: %w", typ.String(), ErrInvalidType)
}

func (tk *Tokenizer) tokenizeList(elem Type, value string) ([]Token, error) {
	parts, err := splitList(value, '[', ']')
	if err != nil {
		return nil, err
	}
	elems := make([]Token, len(parts))
	for i, part := range parts {
		tok, err := tk.Tokenize(elem, part)
		if err != nil {
			return nil, err
		}
		elems[i] = tok
	}
	return elems, nil
}

// tokenizeUint tries the strict full-width hex form first; lenient mode
// falls back to decimal.
func (tk *Tokenizer) tokenizeUint(value string) (Token, error) {
	w, err := fullWordHex(value)
	if err == nil {
		return &UintToken{word: w}, nil
	}
	if !tk.lenient {
		return nil, err
	}
	v, err := uint256.FromDecimal(value)
	if err != nil {
		return nil, fmt.Errorf("ethabi: uint literal %q: %w", value, ErrInvalidValue)
	}
	return Uint256(v), nil
}

// tokenizeInt additionally accepts a leading minus in the lenient decimal
// form; negative values encode as two's complement.
func (tk *Tokenizer) tokenizeInt(value string) (Token, error) {
	w, err := fullWordHex(value)
	if err == nil {
		return &IntToken{word: w}, nil
	}
	if !tk.lenient {
		return nil, err
	}
	v, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("ethabi: int literal %q: %w", value, ErrInvalidValue)
	}
	return BigInt(v)
}

func fullWordHex(value string) (Word, error) {
	var w Word
	b, err := hexBytes(value)
	if err != nil {
		return w, err
	}
	if len(b) != WordSize {
		return w, fmt.Errorf("ethabi: strict integer literal %q is not %d hex bytes: %w", value, WordSize, ErrInvalidValue)
	}
	copy(w[:], b)
	return w, nil
}

// hexBytes decodes a hex literal with or without the 0x prefix.
func hexBytes(value string) ([]byte, error) {
	if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
		b, err := hexutil.Decode("0x" + value[2:])
		if err != nil {
			return nil, fmt.Errorf("ethabi: hex literal %q: %w", value, ErrInvalidValue)
		}
		return b, nil
	}
	b, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("ethabi: hex literal %q: %w", value, ErrInvalidValue)
	}
	return b, nil
}

// splitList breaks a bracketed literal into its top level elements.
// Separators inside double quotes or nested brackets do not split; one
// surrounding quote pair is stripped from each element. An empty element
// directly before the closing bracket is dropped, so "[]" and "[1,]"
// parse the way they read.
func splitList(value string, open, closing byte) ([]string, error) {
	if len(value) < 2 || value[0] != open {
		return nil, fmt.Errorf("ethabi: literal %q is not delimited by %q and %q: %w", value, open, closing, ErrInvalidValue)
	}
	var (
		parts  []string
		quoted bool
	)
	depth := 1
	start := 1
	for i := 1; i < len(value); i++ {
		c := value[i]
		switch {
		case c == '"':
			quoted = !quoted
		case quoted:
		case c == '[' || c == '(':
			depth++
		case c == ']' || c == ')':
			depth--
			if depth > 0 {
				continue
			}
			if c != closing {
				return nil, fmt.Errorf("ethabi: unbalanced brackets in %q: %w", value, ErrInvalidValue)
			}
			if i != len(value)-1 {
				return nil, fmt.Errorf("ethabi: trailing characters after %q in %q: %w", closing, value, ErrInvalidValue)
			}
			if sub := value[start:i]; sub != "" {
				parts = append(parts, unquote(sub))
			}
			return parts, nil
		case c == ',' && depth == 1:
			parts = append(parts, unquote(value[start:i]))
			start = i + 1
		}
	}
	return nil, fmt.Errorf("ethabi: unterminated literal %q: %w", value, ErrInvalidValue)
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
