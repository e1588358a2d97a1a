// Package ethabi encodes and decodes Ethereum contract call data.
//
// Contract calls, event logs and revert data all share one binary format:
// a sequence of 32-byte words where fixed-size values sit inline and
// variable-size values sit behind byte offsets into a trailing tail
// section. This library implements that format symmetrically, so that:
//   - Typed values encode to the exact byte strings the EVM expects
//   - Returned data decodes back into typed values, with strict bounds
//     and range validation on every offset and length
//   - Functions, events and errors resolve by name, signature, selector
//     or topic from a JSON contract description
//
// # Basic Usage
//
// Load a contract description, resolve a function, and encode a call:
//
//	contract := ethabi.MustParseContract(erc20JSON)
//
//	transfer, err := contract.Function("transfer")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data, err := transfer.EncodeInput([]ethabi.Token{
//	    ethabi.Address(common.HexToAddress("0x9f2817015caF6607C1198fB943A8241652EE8906")),
//	    ethabi.Uint64(1000),
//	})
//
//	// Later, decode return data against the declared outputs.
//	tokens, err := transfer.DecodeOutput(ret)
//
// # Types and Tokens
//
// A Type describes a slot in a signature: uint256, bytes32[4],
// (address,uint256)[] and so on. Types are built with the Type*
// constructors or parsed from their canonical text form with ParseType.
//
// A Token carries one concrete value: AddressToken, UintToken,
// ArrayToken and the rest. Tokens are built with constructors such as
// Address(), Uint64() and Array(). Encode works on tokens alone; pairing
// them with declared types is checked separately by TypeCheck, which
// every function-level entry point applies before encoding.
//
// # Decoding
//
// Decode validates as it reads: offsets and lengths must stay inside the
// buffer, bool and length words must not carry stray bits, and nesting
// is capped at MaxDepth. Empty input is rejected with ErrEmptyData
// unless every requested type is zero-sized, which is the usual symptom
// of calling a contract that does not exist.
//
// # Events
//
// Event.ParseLog splits a raw log into indexed parameters, decoded from
// the topic words, and the remaining parameters, decoded from the data
// section. Indexed dynamic values surface as 32-byte hashes, which is
// all the chain retains of them.
//
// # References
//
// For the format itself, see:
//   - https://docs.soliditylang.org/en/latest/abi-spec.html
package ethabi
