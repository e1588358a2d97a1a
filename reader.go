package ethabi

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseType parses the canonical textual form of a type, for example
// "uint256", "bytes32[4]" or "(address,uint256)[]".
func ParseType(s string) (Type, error) {
	t, rest, err := parseType(s, 0)
	if err != nil {
		return Type{}, err
	}
	if rest != "" {
		return Type{}, fmt.Errorf("ethabi: trailing characters %q after type: %w", rest, ErrInvalidType)
	}
	return t, nil
}

// MustParseType is like ParseType but panics on error. Intended for type
// literals in tests and variable initialization.
func MustParseType(s string) Type {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return t
}

// parseType consumes one type from the front of s and returns the
// unconsumed remainder. Tuples recurse through component positions, so a
// component may legally stop at ',' or ')'.
func parseType(s string, depth int) (Type, string, error) {
	if depth > MaxDepth {
		return Type{}, "", fmt.Errorf("ethabi: type nesting exceeds %d levels: %w", MaxDepth, ErrInvalidType)
	}
	var base Type
	var rest string
	switch {
	case s == "":
		return Type{}, "", fmt.Errorf("ethabi: empty type: %w", ErrInvalidType)
	case s[0] == '(':
		rest = s[1:]
		var components []Type
		if strings.HasPrefix(rest, ")") {
			rest = rest[1:]
		} else {
			for {
				comp, r, err := parseType(rest, depth+1)
				if err != nil {
					return Type{}, "", err
				}
				components = append(components, comp)
				if strings.HasPrefix(r, ",") {
					rest = r[1:]
					continue
				}
				if strings.HasPrefix(r, ")") {
					rest = r[1:]
					break
				}
				return Type{}, "", fmt.Errorf("ethabi: unterminated tuple in %q: %w", s, ErrInvalidType)
			}
		}
		base = TypeTuple(components...)
	default:
		end := strings.IndexAny(s, "[,)")
		if end == -1 {
			end = len(s)
		}
		var err error
		base, err = elementaryType(s[:end])
		if err != nil {
			return Type{}, "", err
		}
		rest = s[end:]
	}
	return applySuffixes(base, rest, depth)
}

// applySuffixes wraps base in one array layer per "[]" or "[N]" suffix,
// leftmost suffix innermost.
func applySuffixes(base Type, rest string, depth int) (Type, string, error) {
	for strings.HasPrefix(rest, "[") {
		depth++
		if depth > MaxDepth {
			return Type{}, "", fmt.Errorf("ethabi: type nesting exceeds %d levels: %w", MaxDepth, ErrInvalidType)
		}
		close := strings.IndexByte(rest, ']')
		if close == -1 {
			return Type{}, "", fmt.Errorf("ethabi: missing ] in array suffix %q: %w", rest, ErrInvalidType)
		}
		if close == 1 {
			base = TypeArray(base)
		} else {
			size, err := strconv.Atoi(rest[1:close])
			if err != nil || size < 0 {
				return Type{}, "", fmt.Errorf("ethabi: invalid array length %q: %w", rest[1:close], ErrInvalidType)
			}
			base = TypeFixedArray(base, size)
		}
		rest = rest[close+1:]
	}
	return base, rest, nil
}

func elementaryType(name string) (Type, error) {
	switch name {
	case "address":
		return TypeAddress(), nil
	case "bytes":
		return TypeBytes(), nil
	case "bool":
		return TypeBool(), nil
	case "string":
		return TypeString(), nil
	case "int":
		return TypeInt(256), nil
	case "uint":
		return TypeUint(256), nil
	}
	switch {
	case strings.HasPrefix(name, "uint"):
		size, ok := sizeSuffix(name[4:], 8, 256)
		if !ok || size%8 != 0 {
			return Type{}, fmt.Errorf("ethabi: invalid uint width in %q: %w", name, ErrInvalidType)
		}
		return TypeUint(size), nil
	case strings.HasPrefix(name, "int"):
		size, ok := sizeSuffix(name[3:], 8, 256)
		if !ok || size%8 != 0 {
			return Type{}, fmt.Errorf("ethabi: invalid int width in %q: %w", name, ErrInvalidType)
		}
		return TypeInt(size), nil
	case strings.HasPrefix(name, "bytes"):
		size, ok := sizeSuffix(name[5:], 1, 32)
		if !ok {
			return Type{}, fmt.Errorf("ethabi: invalid fixed bytes length in %q: %w", name, ErrInvalidType)
		}
		return TypeFixedBytes(size), nil
	}
	return Type{}, fmt.Errorf("ethabi: unknown type %q: %w", name, ErrInvalidType)
}

func sizeSuffix(s string, min, max int) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < min || n > max {
		return 0, false
	}
	return n, true
}
