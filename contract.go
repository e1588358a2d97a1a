package ethabi

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Contract is a parsed contract description: the functions, events and
// errors a contract exposes, loaded from the JSON interface format
// emitted by the solidity compiler.
type Contract struct {
	constructor *Constructor
	functions   map[string][]*Function
	events      map[string][]*Event
	errs        map[string]*Error
	hasFallback bool
	hasReceive  bool
}

// ParseContract parses a JSON contract description.
func ParseContract(data []byte) (*Contract, error) {
	c := new(Contract)
	if err := json.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadContract reads a JSON contract description from r.
func LoadContract(r io.Reader) (*Contract, error) {
	c := new(Contract)
	if err := json.NewDecoder(r).Decode(c); err != nil {
		return nil, err
	}
	return c, nil
}

// MustParseContract is like ParseContract but panics on error.
// Intended for descriptions embedded at build time.
func MustParseContract(data []byte) *Contract {
	c, err := ParseContract(data)
	if err != nil {
		panic(err)
	}
	return c
}

type jsonParam struct {
	Name       string      `json:"name"`
	Type       string      `json:"type"`
	Indexed    bool        `json:"indexed"`
	Components []jsonParam `json:"components"`
}

type jsonEntry struct {
	Type            string      `json:"type"`
	Name            string      `json:"name"`
	Inputs          []jsonParam `json:"inputs"`
	Outputs         []jsonParam `json:"outputs"`
	StateMutability string      `json:"stateMutability"`
	Constant        bool        `json:"constant"`
	Payable         bool        `json:"payable"`
	Anonymous       bool        `json:"anonymous"`
}

// UnmarshalJSON implements json.Unmarshaler. An entry without a "type"
// field counts as a function.
func (c *Contract) UnmarshalJSON(data []byte) error {
	var entries []jsonEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	c.constructor = nil
	c.functions = make(map[string][]*Function)
	c.events = make(map[string][]*Event)
	c.errs = make(map[string]*Error)
	c.hasFallback = false
	c.hasReceive = false

	for _, entry := range entries {
		switch entry.Type {
		case "", "function":
			inputs, err := resolveParams(entry.Inputs)
			if err != nil {
				return err
			}
			outputs, err := resolveParams(entry.Outputs)
			if err != nil {
				return err
			}
			m := mutabilityOf(entry)
			fn := &Function{
				Name:            entry.Name,
				Inputs:          inputs,
				Outputs:         outputs,
				StateMutability: m,
				Constant:        entry.Constant || m == View || m == Pure,
				Payable:         entry.Payable || m == Payable,
			}
			c.functions[fn.Name] = append(c.functions[fn.Name], fn)
		case "constructor":
			inputs, err := resolveParams(entry.Inputs)
			if err != nil {
				return err
			}
			c.constructor = &Constructor{Inputs: inputs}
		case "event":
			inputs, err := resolveParams(entry.Inputs)
			if err != nil {
				return err
			}
			ev := &Event{Name: entry.Name, Inputs: inputs, Anonymous: entry.Anonymous}
			c.events[ev.Name] = append(c.events[ev.Name], ev)
		case "error":
			inputs, err := resolveParams(entry.Inputs)
			if err != nil {
				return err
			}
			// errors cannot be overloaded; inherited duplicates keep
			// the first declaration
			if _, ok := c.errs[entry.Name]; !ok {
				c.errs[entry.Name] = &Error{Name: entry.Name, Inputs: inputs}
			}
		case "fallback":
			if c.hasFallback {
				return fmt.Errorf("ethabi: only a single fallback is allowed")
			}
			c.hasFallback = true
		case "receive":
			if c.hasReceive {
				return fmt.Errorf("ethabi: only a single receive is allowed")
			}
			c.hasReceive = true
		default:
			return fmt.Errorf("ethabi: unknown description entry type %q", entry.Type)
		}
	}
	return nil
}

// mutabilityOf normalizes the modern stateMutability field, falling back
// to the legacy constant and payable flags.
func mutabilityOf(e jsonEntry) StateMutability {
	switch StateMutability(e.StateMutability) {
	case Pure, View, NonPayable, Payable:
		return StateMutability(e.StateMutability)
	}
	if e.Payable {
		return Payable
	}
	if e.Constant {
		return View
	}
	return NonPayable
}

func resolveParams(params []jsonParam) ([]Param, error) {
	out := make([]Param, len(params))
	for i, p := range params {
		t, err := resolveType(p)
		if err != nil {
			return nil, err
		}
		out[i] = Param{Name: p.Name, Type: t, Indexed: p.Indexed}
	}
	return out, nil
}

// resolveType maps one JSON parameter to a Type. Struct parameters arrive
// as type "tuple" with their members under "components", optionally with
// array suffixes attached to the word "tuple" itself.
func resolveType(p jsonParam) (Type, error) {
	if strings.HasPrefix(p.Type, "tuple") {
		components := make([]Type, len(p.Components))
		for i, comp := range p.Components {
			t, err := resolveType(comp)
			if err != nil {
				return Type{}, err
			}
			components[i] = t
		}
		t, rest, err := applySuffixes(TypeTuple(components...), p.Type[len("tuple"):], 0)
		if err != nil {
			return Type{}, err
		}
		if rest != "" {
			return Type{}, fmt.Errorf("ethabi: trailing characters %q in type %q: %w", rest, p.Type, ErrInvalidType)
		}
		return t, nil
	}
	return ParseType(p.Type)
}

// Constructor returns the constructor description, or nil when the
// contract does not declare one.
func (c *Contract) Constructor() *Constructor {
	return c.constructor
}

// HasFallback reports whether the description declares a fallback.
func (c *Contract) HasFallback() bool {
	return c.hasFallback
}

// HasReceive reports whether the description declares a receive.
func (c *Contract) HasReceive() bool {
	return c.hasReceive
}

// Function returns the function called name. Overloaded names cannot be
// resolved this way; the returned AmbiguousNameError lists the candidate
// signatures to use instead.
func (c *Contract) Function(name string) (*Function, error) {
	fns := c.functions[name]
	switch len(fns) {
	case 0:
		return nil, &NotFoundError{What: "function", Name: name}
	case 1:
		return fns[0], nil
	}
	sigs := make([]string, len(fns))
	for i, fn := range fns {
		sigs[i] = fn.Signature()
	}
	sort.Strings(sigs)
	return nil, &AmbiguousNameError{Name: name, Signatures: sigs}
}

// Functions returns every overload registered under name, in declaration
// order.
func (c *Contract) Functions(name string) []*Function {
	return c.functions[name]
}

// FunctionBySignature returns the function with the given signature,
// accepting both the display form "name(ins):(outs)" and the canonical
// call form "name(ins)". Spaces are ignored.
func (c *Contract) FunctionBySignature(sig string) (*Function, error) {
	sig = strings.ReplaceAll(sig, " ", "")
	var matches []*Function
	for _, name := range sortedKeys(c.functions) {
		for _, fn := range c.functions[name] {
			if fn.Signature() == sig || fn.callSignature() == sig {
				matches = append(matches, fn)
			}
		}
	}
	switch len(matches) {
	case 0:
		return nil, &NotFoundError{What: "function", Name: sig}
	case 1:
		return matches[0], nil
	}
	sigs := make([]string, len(matches))
	for i, fn := range matches {
		sigs[i] = fn.Signature()
	}
	return nil, &AmbiguousNameError{Name: sig, Signatures: sigs}
}

// ResolveFunction accepts either a bare name or a signature, routing on
// the presence of a parenthesis.
func (c *Contract) ResolveFunction(nameOrSig string) (*Function, error) {
	if strings.Contains(nameOrSig, "(") {
		return c.FunctionBySignature(nameOrSig)
	}
	return c.Function(nameOrSig)
}

// FunctionByID returns the function whose selector matches id.
func (c *Contract) FunctionByID(id [4]byte) (*Function, error) {
	for _, name := range sortedKeys(c.functions) {
		for _, fn := range c.functions[name] {
			if fn.Selector() == id {
				return fn, nil
			}
		}
	}
	return nil, &NotFoundError{What: "function", Name: hexutil.Encode(id[:])}
}

// Event returns the event called name, with the same overload handling
// as Function.
func (c *Contract) Event(name string) (*Event, error) {
	evs := c.events[name]
	switch len(evs) {
	case 0:
		return nil, &NotFoundError{What: "event", Name: name}
	case 1:
		return evs[0], nil
	}
	sigs := make([]string, len(evs))
	for i, ev := range evs {
		sigs[i] = ev.Signature()
	}
	sort.Strings(sigs)
	return nil, &AmbiguousNameError{Name: name, Signatures: sigs}
}

// Events returns every overload registered under name, in declaration
// order.
func (c *Contract) Events(name string) []*Event {
	return c.events[name]
}

// EventBySignature returns the event with the given canonical signature.
// Spaces are ignored.
func (c *Contract) EventBySignature(sig string) (*Event, error) {
	sig = strings.ReplaceAll(sig, " ", "")
	for _, name := range sortedKeys(c.events) {
		for _, ev := range c.events[name] {
			if ev.Signature() == sig {
				return ev, nil
			}
		}
	}
	return nil, &NotFoundError{What: "event", Name: sig}
}

// ResolveEvent accepts either a bare name or a signature, routing on the
// presence of a parenthesis.
func (c *Contract) ResolveEvent(nameOrSig string) (*Event, error) {
	if strings.Contains(nameOrSig, "(") {
		return c.EventBySignature(nameOrSig)
	}
	return c.Event(nameOrSig)
}

// EventByTopic returns the event whose ID matches the given first topic.
func (c *Contract) EventByTopic(topic common.Hash) (*Event, error) {
	for _, name := range sortedKeys(c.events) {
		for _, ev := range c.events[name] {
			if ev.ID() == topic {
				return ev, nil
			}
		}
	}
	return nil, &NotFoundError{What: "event", Name: topic.Hex()}
}

// ErrorByName returns the custom error called name.
func (c *Contract) ErrorByName(name string) (*Error, error) {
	if e, ok := c.errs[name]; ok {
		return e, nil
	}
	return nil, &NotFoundError{What: "error", Name: name}
}

// ErrorByID returns the custom error whose selector matches id.
func (c *Contract) ErrorByID(id [4]byte) (*Error, error) {
	for _, name := range sortedKeys(c.errs) {
		if e := c.errs[name]; e.Selector() == id {
			return e, nil
		}
	}
	return nil, &NotFoundError{What: "error", Name: hexutil.Encode(id[:])}
}

// DecodeCall resolves whole calldata: the leading selector picks the
// function, the remainder decodes against its inputs.
func (c *Contract) DecodeCall(data []byte) (*Function, []Token, error) {
	if len(data) < 4 {
		return nil, nil, fmt.Errorf("ethabi: calldata shorter than a selector: %w", ErrInvalidData)
	}
	var id [4]byte
	copy(id[:], data)
	fn, err := c.FunctionByID(id)
	if err != nil {
		return nil, nil, err
	}
	tokens, err := fn.DecodeInput(data[4:])
	if err != nil {
		return nil, nil, err
	}
	return fn, tokens, nil
}

// FunctionNames lists the declared function names, sorted.
func (c *Contract) FunctionNames() []string {
	return sortedKeys(c.functions)
}

// EventNames lists the declared event names, sorted.
func (c *Contract) EventNames() []string {
	return sortedKeys(c.events)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
