package ethabi

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// StateMutability describes how a function may interact with chain state.
type StateMutability string

// State mutability values carried by contract descriptions.
const (
	Pure       StateMutability = "pure"
	View       StateMutability = "view"
	NonPayable StateMutability = "nonpayable"
	Payable    StateMutability = "payable"
)

// Param is one named function input/output or event parameter.
type Param struct {
	Name string
	Type Type

	// Indexed marks event parameters carried in topics rather than data.
	Indexed bool
}

// Function describes a single callable contract function.
type Function struct {
	Name    string
	Inputs  []Param
	Outputs []Param

	StateMutability StateMutability

	// Constant and Payable are the legacy mutability flags found in
	// descriptions predating stateMutability; kept as loaded.
	Constant bool
	Payable  bool
}

// Signature returns the display signature: "name(ins)", or
// "name(ins):(outs)" when the function declares outputs.
func (f *Function) Signature() string {
	if len(f.Outputs) == 0 {
		return f.callSignature()
	}
	return fmt.Sprintf("%s(%s):(%s)", f.Name, paramSignature(f.Inputs), paramSignature(f.Outputs))
}

// callSignature is the canonical input-only form the selector hash covers.
func (f *Function) callSignature() string {
	return fmt.Sprintf("%s(%s)", f.Name, paramSignature(f.Inputs))
}

// Selector returns the 4-byte call discriminator: the leading bytes of
// keccak256 over the input-only canonical signature. Outputs never enter
// the hash even when Signature displays them.
func (f *Function) Selector() [4]byte {
	var sel [4]byte
	copy(sel[:], crypto.Keccak256([]byte(f.callSignature())))
	return sel
}

// EncodeInput builds calldata for this function: selector followed by the
// encoded arguments. Fails with an error unwrapping to ErrInvalidData when
// the tokens don't match the declared inputs.
func (f *Function) EncodeInput(args []Token) ([]byte, error) {
	if err := TypeCheck(paramTypes(f.Inputs), args); err != nil {
		return nil, err
	}
	sel := f.Selector()
	return append(sel[:], Encode(args)...), nil
}

// DecodeInput parses encoded call arguments against the declared inputs.
// The 4-byte selector must already be stripped; see Contract.DecodeCall for
// whole-calldata decoding.
func (f *Function) DecodeInput(data []byte) ([]Token, error) {
	return Decode(paramTypes(f.Inputs), data)
}

// DecodeOutput parses return data against the declared outputs.
func (f *Function) DecodeOutput(data []byte) ([]Token, error) {
	return Decode(paramTypes(f.Outputs), data)
}

// Constructor describes a contract constructor.
type Constructor struct {
	Inputs []Param
}

// EncodeInput builds deployment data: the creation bytecode followed by the
// encoded constructor arguments.
func (c *Constructor) EncodeInput(code []byte, args []Token) ([]byte, error) {
	if err := TypeCheck(paramTypes(c.Inputs), args); err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(code))
	out = append(out, code...)
	return append(out, Encode(args)...), nil
}

// paramSignature joins the canonical type forms of params with commas.
func paramSignature(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Type.String()
	}
	return strings.Join(parts, ",")
}

func paramTypes(params []Param) []Type {
	types := make([]Type, len(params))
	for i, p := range params {
		types[i] = p.Type
	}
	return types
}
