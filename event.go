package ethabi

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Event describes a single contract event.
type Event struct {
	Name   string
	Inputs []Param

	// Anonymous events omit the identifying topic and cannot be matched
	// by hash.
	Anonymous bool
}

// Signature returns the canonical form "name(types)" over all inputs,
// indexed or not.
func (e *Event) Signature() string {
	return fmt.Sprintf("%s(%s)", e.Name, paramSignature(e.Inputs))
}

// ID returns the full keccak256 hash of the canonical signature. For
// non-anonymous events this is the first topic of every emitted log.
func (e *Event) ID() common.Hash {
	return crypto.Keccak256Hash([]byte(e.Signature()))
}

// RawLog is one undecoded log entry as delivered by a node.
type RawLog struct {
	Topics []common.Hash
	Data   []byte
}

// LogParam is one decoded event parameter.
type LogParam struct {
	Name  string
	Value Token
}

// ParseLog decodes a raw log against this event description. Indexed
// parameters are read from the topics, the rest from the data section.
// The result lists all indexed parameters first, each group in declared
// order.
//
// Dynamic indexed parameters are stored on chain as the hash of their
// content; they decode as 32-byte fixed bytes holding that hash, not as
// the original value.
func (e *Event) ParseLog(log RawLog) ([]LogParam, error) {
	topicParams := filterParams(e.Inputs, true)
	dataParams := filterParams(e.Inputs, false)

	skip := 1
	if e.Anonymous {
		skip = 0
	} else {
		if len(log.Topics) == 0 {
			return nil, &TopicMismatchError{Event: e.Name, Expected: len(topicParams) + 1, Got: 0}
		}
		if log.Topics[0] != e.ID() {
			return nil, fmt.Errorf("ethabi: log topic does not match event %s: %w", e.Name, ErrInvalidData)
		}
	}
	if len(log.Topics)-skip != len(topicParams) {
		return nil, &TopicMismatchError{Event: e.Name, Expected: len(topicParams) + skip, Got: len(log.Topics)}
	}

	topicTypes := make([]Type, len(topicParams))
	for i, p := range topicParams {
		topicTypes[i] = topicType(p.Type)
	}
	flat := make([]byte, 0, (len(log.Topics)-skip)*WordSize)
	for _, topic := range log.Topics[skip:] {
		flat = append(flat, topic.Bytes()...)
	}

	topicTokens, err := Decode(topicTypes, flat)
	if err != nil {
		return nil, err
	}
	dataTokens, err := Decode(paramTypes(dataParams), log.Data)
	if err != nil {
		return nil, err
	}

	params := make([]LogParam, 0, len(topicParams)+len(dataParams))
	for i, p := range topicParams {
		params = append(params, LogParam{Name: p.Name, Value: topicTokens[i]})
	}
	for i, p := range dataParams {
		params = append(params, LogParam{Name: p.Name, Value: dataTokens[i]})
	}
	return params, nil
}

// topicType maps a parameter type to the type actually present in a topic
// word. Dynamic and composite values are hashed on chain, leaving only a
// 32-byte digest.
func topicType(t Type) Type {
	switch t.Kind {
	case KindString, KindBytes, KindArray, KindFixedArray, KindTuple:
		return TypeFixedBytes(32)
	default:
		return t
	}
}

func filterParams(params []Param, indexed bool) []Param {
	var out []Param
	for _, p := range params {
		if p.Indexed == indexed {
			out = append(out, p)
		}
	}
	return out
}
