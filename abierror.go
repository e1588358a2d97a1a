package ethabi

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Error describes a custom contract error. Reverts carry the error
// selector followed by the encoded arguments, mirroring call data.
type Error struct {
	Name   string
	Inputs []Param
}

// Signature returns the canonical form "name(types)".
func (e *Error) Signature() string {
	return fmt.Sprintf("%s(%s)", e.Name, paramSignature(e.Inputs))
}

// ID returns the full keccak256 hash of the canonical signature.
func (e *Error) ID() common.Hash {
	return crypto.Keccak256Hash([]byte(e.Signature()))
}

// Selector returns the 4-byte revert discriminator.
func (e *Error) Selector() [4]byte {
	var sel [4]byte
	copy(sel[:], e.ID().Bytes())
	return sel
}

// Decode parses revert data for this error. The data must start with the
// error's own selector.
func (e *Error) Decode(data []byte) ([]Token, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("ethabi: revert data shorter than a selector: %w", ErrInvalidData)
	}
	sel := e.Selector()
	if !bytes.Equal(data[:4], sel[:]) {
		return nil, fmt.Errorf("ethabi: revert data does not match error %s: %w", e.Name, ErrInvalidData)
	}
	return Decode(paramTypes(e.Inputs), data[4:])
}

var (
	revertSelector = crypto.Keccak256([]byte("Error(string)"))[:4]
	panicSelector  = crypto.Keccak256([]byte("Panic(uint256)"))[:4]
)

// panicReasons maps the solidity panic codes emitted through
// Panic(uint256) to human readable text.
var panicReasons = map[uint64]string{
	0x00: "generic panic",
	0x01: "assert(false)",
	0x11: "arithmetic underflow or overflow",
	0x12: "division or modulo by zero",
	0x21: "enum overflow",
	0x22: "invalid encoded storage byte array accessed",
	0x31: "out-of-bounds array access; popping on an empty array",
	0x32: "out-of-bounds access of an array or bytesN",
	0x41: "out of memory",
	0x51: "uninitialized function",
}

// DecodeRevert extracts a readable reason from revert return data. It
// understands the two builtin shapes, Error(string) for require messages
// and Panic(uint256) for checked failures. Custom errors are not covered
// here; resolve those through Contract.ErrorByID.
func DecodeRevert(data []byte) (string, error) {
	if len(data) < 4 {
		return "", fmt.Errorf("ethabi: revert data shorter than a selector: %w", ErrInvalidData)
	}
	switch {
	case bytes.Equal(data[:4], revertSelector):
		tokens, err := Decode([]Type{TypeString()}, data[4:])
		if err != nil {
			return "", err
		}
		return tokens[0].(*StringToken).Value(), nil
	case bytes.Equal(data[:4], panicSelector):
		tokens, err := Decode([]Type{TypeUint(256)}, data[4:])
		if err != nil {
			return "", err
		}
		code := tokens[0].(*UintToken).Uint256()
		if code.IsUint64() {
			if reason, ok := panicReasons[code.Uint64()]; ok {
				return reason, nil
			}
		}
		return fmt.Sprintf("unknown panic code: %s", code.Hex()), nil
	default:
		return "", fmt.Errorf("ethabi: revert data matches neither Error(string) nor Panic(uint256): %w", ErrInvalidData)
	}
}
