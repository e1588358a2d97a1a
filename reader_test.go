package ethabi

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		input string
		want  Type
	}{
		{"address", TypeAddress()},
		{"bytes", TypeBytes()},
		{"bytes32", TypeFixedBytes(32)},
		{"bytes1", TypeFixedBytes(1)},
		{"bool", TypeBool()},
		{"string", TypeString()},
		{"int", TypeInt(256)},
		{"uint", TypeUint(256)},
		{"int8", TypeInt(8)},
		{"uint16", TypeUint(16)},
		{"uint256", TypeUint(256)},
		{"address[]", TypeArray(TypeAddress())},
		{"uint[]", TypeArray(TypeUint(256))},
		{"bytes[4]", TypeFixedArray(TypeBytes(), 4)},
		{"string[2]", TypeFixedArray(TypeString(), 2)},
		{"uint8[2][]", TypeArray(TypeFixedArray(TypeUint(8), 2))},
		{"bool[][3]", TypeFixedArray(TypeArray(TypeBool()), 3)},
		{"uint256[1][2][3]", TypeFixedArray(TypeFixedArray(TypeFixedArray(TypeUint(256), 1), 2), 3)},
		{"()", TypeTuple()},
		{"(bool)", TypeTuple(TypeBool())},
		{"(bool,string)", TypeTuple(TypeBool(), TypeString())},
		{"(address,(uint256,bool))", TypeTuple(TypeAddress(), TypeTuple(TypeUint(256), TypeBool()))},
		{"(bool,string)[2]", TypeFixedArray(TypeTuple(TypeBool(), TypeString()), 2)},
		{"(uint256[],address)", TypeTuple(TypeArray(TypeUint(256)), TypeAddress())},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseType(tt.input)
			if err != nil {
				t.Fatalf("ParseType failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %s, got %s", tt.want.String(), got.String())
			}
			if got.String() != tt.want.String() {
				t.Errorf("Canonical form mismatch: expected %q, got %q", tt.want.String(), got.String())
			}
		})
	}
}

func TestParseTypeInvalid(t *testing.T) {
	inputs := []string{
		"",
		"dog",
		"uint7",
		"uint0",
		"uint264",
		"uint256x",
		"int3",
		"bytes0",
		"bytes33",
		"address[",
		"address[2",
		"address[]]",
		"uint256[-1]",
		"uint256[x]",
		"(bool",
		"(bool,",
		"(bool,)",
		"bool)",
		"address,address",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseType(input)
			if !errors.Is(err, ErrInvalidType) {
				t.Errorf("Expected ErrInvalidType, got %v", err)
			}
		})
	}
}

func TestParseTypeDepthLimit(t *testing.T) {
	input := "uint8"
	for i := 0; i < MaxDepth+1; i++ {
		input += "[]"
	}
	_, err := ParseType(input)
	if !errors.Is(err, ErrInvalidType) {
		t.Errorf("Expected ErrInvalidType for over-deep type, got %v", err)
	}
}

func TestMustParseType(t *testing.T) {
	if typ := MustParseType("uint256[]"); typ.String() != "uint256[]" {
		t.Errorf("Expected uint256[], got %s", typ.String())
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected MustParseType to panic on an invalid type")
		}
	}()
	MustParseType("dog")
}
