package ethabi

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

var (
	addr1 = common.HexToAddress("0x1111111111111111111111111111111111111111")
	addr2 = common.HexToAddress("0x2222222222222222222222222222222222222222")
	addr3 = common.HexToAddress("0x3333333333333333333333333333333333333333")
	addr4 = common.HexToAddress("0x4444444444444444444444444444444444444444")
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   string
	}{
		{
			name:   "address",
			tokens: []Token{Address(addr1)},
			want:   "0000000000000000000000001111111111111111111111111111111111111111",
		},
		{
			name:   "two addresses",
			tokens: []Token{Address(addr1), Address(addr2)},
			want: "0000000000000000000000001111111111111111111111111111111111111111" +
				"0000000000000000000000002222222222222222222222222222222222222222",
		},
		{
			name:   "fixed array of addresses",
			tokens: []Token{FixedArray(Address(addr1), Address(addr2))},
			want: "0000000000000000000000001111111111111111111111111111111111111111" +
				"0000000000000000000000002222222222222222222222222222222222222222",
		},
		{
			name:   "dynamic array of addresses",
			tokens: []Token{Array(Address(addr1), Address(addr2))},
			want: "0000000000000000000000000000000000000000000000000000000000000020" +
				"0000000000000000000000000000000000000000000000000000000000000002" +
				"0000000000000000000000001111111111111111111111111111111111111111" +
				"0000000000000000000000002222222222222222222222222222222222222222",
		},
		{
			name: "fixed array of dynamic arrays of addresses",
			tokens: []Token{FixedArray(
				Array(Address(addr1), Address(addr2)),
				Array(Address(addr3), Address(addr4)),
			)},
			want: "0000000000000000000000000000000000000000000000000000000000000020" +
				"0000000000000000000000000000000000000000000000000000000000000040" +
				"00000000000000000000000000000000000000000000000000000000000000a0" +
				"0000000000000000000000000000000000000000000000000000000000000002" +
				"0000000000000000000000001111111111111111111111111111111111111111" +
				"0000000000000000000000002222222222222222222222222222222222222222" +
				"0000000000000000000000000000000000000000000000000000000000000002" +
				"0000000000000000000000003333333333333333333333333333333333333333" +
				"0000000000000000000000004444444444444444444444444444444444444444",
		},
		{
			name: "dynamic array of dynamic arrays",
			tokens: []Token{Array(
				Array(Address(addr1)),
				Array(Address(addr2)),
			)},
			want: "0000000000000000000000000000000000000000000000000000000000000020" +
				"0000000000000000000000000000000000000000000000000000000000000002" +
				"0000000000000000000000000000000000000000000000000000000000000040" +
				"0000000000000000000000000000000000000000000000000000000000000080" +
				"0000000000000000000000000000000000000000000000000000000000000001" +
				"0000000000000000000000001111111111111111111111111111111111111111" +
				"0000000000000000000000000000000000000000000000000000000000000001" +
				"0000000000000000000000002222222222222222222222222222222222222222",
		},
		{
			name: "dynamic array of two element dynamic arrays",
			tokens: []Token{Array(
				Array(Address(addr1), Address(addr2)),
				Array(Address(addr3), Address(addr4)),
			)},
			want: "0000000000000000000000000000000000000000000000000000000000000020" +
				"0000000000000000000000000000000000000000000000000000000000000002" +
				"0000000000000000000000000000000000000000000000000000000000000040" +
				"00000000000000000000000000000000000000000000000000000000000000a0" +
				"0000000000000000000000000000000000000000000000000000000000000002" +
				"0000000000000000000000001111111111111111111111111111111111111111" +
				"0000000000000000000000002222222222222222222222222222222222222222" +
				"0000000000000000000000000000000000000000000000000000000000000002" +
				"0000000000000000000000003333333333333333333333333333333333333333" +
				"0000000000000000000000004444444444444444444444444444444444444444",
		},
		{
			name: "fixed array of fixed arrays",
			tokens: []Token{FixedArray(
				FixedArray(Address(addr1), Address(addr2)),
				FixedArray(Address(addr3), Address(addr4)),
			)},
			want: "0000000000000000000000001111111111111111111111111111111111111111" +
				"0000000000000000000000002222222222222222222222222222222222222222" +
				"0000000000000000000000003333333333333333333333333333333333333333" +
				"0000000000000000000000004444444444444444444444444444444444444444",
		},
		{
			name:   "empty array",
			tokens: []Token{Array()},
			want: "0000000000000000000000000000000000000000000000000000000000000020" +
				"0000000000000000000000000000000000000000000000000000000000000000",
		},
		{
			name:   "two empty arrays",
			tokens: []Token{Array(), Array()},
			want: "0000000000000000000000000000000000000000000000000000000000000040" +
				"0000000000000000000000000000000000000000000000000000000000000060" +
				"0000000000000000000000000000000000000000000000000000000000000000" +
				"0000000000000000000000000000000000000000000000000000000000000000",
		},
		{
			name:   "two arrays of empty arrays",
			tokens: []Token{Array(Array()), Array(Array())},
			want: "0000000000000000000000000000000000000000000000000000000000000040" +
				"00000000000000000000000000000000000000000000000000000000000000a0" +
				"0000000000000000000000000000000000000000000000000000000000000001" +
				"0000000000000000000000000000000000000000000000000000000000000020" +
				"0000000000000000000000000000000000000000000000000000000000000000" +
				"0000000000000000000000000000000000000000000000000000000000000001" +
				"0000000000000000000000000000000000000000000000000000000000000020" +
				"0000000000000000000000000000000000000000000000000000000000000000",
		},
		{
			name:   "bytes",
			tokens: []Token{Bytes([]byte{0x12, 0x34})},
			want: "0000000000000000000000000000000000000000000000000000000000000020" +
				"0000000000000000000000000000000000000000000000000000000000000002" +
				"1234000000000000000000000000000000000000000000000000000000000000",
		},
		{
			name:   "fixed bytes",
			tokens: []Token{FixedBytes([]byte{0x12, 0x34})},
			want:   "1234000000000000000000000000000000000000000000000000000000000000",
		},
		{
			name:   "string",
			tokens: []Token{String("gavofyork")},
			want: "0000000000000000000000000000000000000000000000000000000000000020" +
				"0000000000000000000000000000000000000000000000000000000000000009" +
				"6761766f66796f726b0000000000000000000000000000000000000000000000",
		},
		{
			name:   "bytes of 31 bytes",
			tokens: []Token{Bytes(common.Hex2Bytes("10000000000000000000000000000000000000000000000000000000000002"))},
			want: "0000000000000000000000000000000000000000000000000000000000000020" +
				"000000000000000000000000000000000000000000000000000000000000001f" +
				"1000000000000000000000000000000000000000000000000000000000000200",
		},
		{
			name: "two dynamic bytes",
			tokens: []Token{
				Bytes(common.Hex2Bytes("10000000000000000000000000000000000000000000000000000000000002")),
				Bytes(common.Hex2Bytes("0010000000000000000000000000000000000000000000000000000000000002")),
			},
			want: "0000000000000000000000000000000000000000000000000000000000000040" +
				"0000000000000000000000000000000000000000000000000000000000000080" +
				"000000000000000000000000000000000000000000000000000000000000001f" +
				"1000000000000000000000000000000000000000000000000000000000000200" +
				"0000000000000000000000000000000000000000000000000000000000000020" +
				"0010000000000000000000000000000000000000000000000000000000000002",
		},
		{
			name: "dynamic array of bytes",
			tokens: []Token{Array(
				Bytes(common.Hex2Bytes("019c80031b20d5e69c8093a571162299032018d913930d93ab320ae5ea44a4218a274f00d607")),
			)},
			want: "0000000000000000000000000000000000000000000000000000000000000020" +
				"0000000000000000000000000000000000000000000000000000000000000001" +
				"0000000000000000000000000000000000000000000000000000000000000020" +
				"0000000000000000000000000000000000000000000000000000000000000026" +
				"019c80031b20d5e69c8093a571162299032018d913930d93ab320ae5ea44a421" +
				"8a274f00d6070000000000000000000000000000000000000000000000000000",
		},
		{
			name: "dynamic array of two bytes",
			tokens: []Token{Array(
				Bytes(common.Hex2Bytes("4444444444444444444444444444444444444444444444444444444444444444444444444444")),
				Bytes(common.Hex2Bytes("6666666666666666666666666666666666666666666666666666666666666666666666666666")),
			)},
			want: "0000000000000000000000000000000000000000000000000000000000000020" +
				"0000000000000000000000000000000000000000000000000000000000000002" +
				"0000000000000000000000000000000000000000000000000000000000000040" +
				"00000000000000000000000000000000000000000000000000000000000000a0" +
				"0000000000000000000000000000000000000000000000000000000000000026" +
				"4444444444444444444444444444444444444444444444444444444444444444" +
				"4444444444440000000000000000000000000000000000000000000000000000" +
				"0000000000000000000000000000000000000000000000000000000000000026" +
				"6666666666666666666666666666666666666666666666666666666666666666" +
				"6666666666660000000000000000000000000000000000000000000000000000",
		},
		{
			name:   "uint",
			tokens: []Token{Uint64(4)},
			want:   "0000000000000000000000000000000000000000000000000000000000000004",
		},
		{
			name:   "int",
			tokens: []Token{Int64(4)},
			want:   "0000000000000000000000000000000000000000000000000000000000000004",
		},
		{
			name:   "negative int",
			tokens: []Token{Int64(-2)},
			want:   "fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffe",
		},
		{
			name:   "bool true",
			tokens: []Token{Bool(true)},
			want:   "0000000000000000000000000000000000000000000000000000000000000001",
		},
		{
			name:   "bool false",
			tokens: []Token{Bool(false)},
			want:   "0000000000000000000000000000000000000000000000000000000000000000",
		},
		{
			name:   "static tuple of addresses",
			tokens: []Token{Tuple(Address(addr1), Address(addr2))},
			want: "0000000000000000000000001111111111111111111111111111111111111111" +
				"0000000000000000000000002222222222222222222222222222222222222222",
		},
		{
			name:   "dynamic tuple",
			tokens: []Token{Tuple(String("gavofyork"), Address(addr1))},
			want: "0000000000000000000000000000000000000000000000000000000000000020" +
				"0000000000000000000000000000000000000000000000000000000000000040" +
				"0000000000000000000000001111111111111111111111111111111111111111" +
				"0000000000000000000000000000000000000000000000000000000000000009" +
				"6761766f66796f726b0000000000000000000000000000000000000000000000",
		},
		{
			name:   "array of dynamic tuples",
			tokens: []Token{Array(Tuple(String("a")))},
			want: "0000000000000000000000000000000000000000000000000000000000000020" +
				"0000000000000000000000000000000000000000000000000000000000000001" +
				"0000000000000000000000000000000000000000000000000000000000000020" +
				"0000000000000000000000000000000000000000000000000000000000000020" +
				"0000000000000000000000000000000000000000000000000000000000000001" +
				"6100000000000000000000000000000000000000000000000000000000000000",
		},
		{
			name: "static and dynamic heads interleaved",
			tokens: []Token{
				Int64(5),
				Bytes(common.Hex2Bytes("131a3afc00d1b1e3461b955e53fc866dcf303b3eb9f4c16f89e388930f48134b")),
				Int64(3),
				Bytes(common.Hex2Bytes("131a3afc00d1b1e3461b955e53fc866dcf303b3eb9f4c16f89e388930f48134b")),
			},
			want: "0000000000000000000000000000000000000000000000000000000000000005" +
				"0000000000000000000000000000000000000000000000000000000000000080" +
				"0000000000000000000000000000000000000000000000000000000000000003" +
				"00000000000000000000000000000000000000000000000000000000000000c0" +
				"0000000000000000000000000000000000000000000000000000000000000020" +
				"131a3afc00d1b1e3461b955e53fc866dcf303b3eb9f4c16f89e388930f48134b" +
				"0000000000000000000000000000000000000000000000000000000000000020" +
				"131a3afc00d1b1e3461b955e53fc866dcf303b3eb9f4c16f89e388930f48134b",
		},
		{
			name: "mixed statics with trailing array",
			tokens: []Token{
				Int64(1),
				String("gavofyork"),
				Int64(2),
				Int64(3),
				Int64(4),
				Array(Int64(5), Int64(6), Int64(7)),
			},
			want: "0000000000000000000000000000000000000000000000000000000000000001" +
				"00000000000000000000000000000000000000000000000000000000000000c0" +
				"0000000000000000000000000000000000000000000000000000000000000002" +
				"0000000000000000000000000000000000000000000000000000000000000003" +
				"0000000000000000000000000000000000000000000000000000000000000004" +
				"0000000000000000000000000000000000000000000000000000000000000100" +
				"0000000000000000000000000000000000000000000000000000000000000009" +
				"6761766f66796f726b0000000000000000000000000000000000000000000000" +
				"0000000000000000000000000000000000000000000000000000000000000003" +
				"0000000000000000000000000000000000000000000000000000000000000005" +
				"0000000000000000000000000000000000000000000000000000000000000006" +
				"0000000000000000000000000000000000000000000000000000000000000007",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.tokens)
			if !bytes.Equal(got, common.Hex2Bytes(tt.want)) {
				t.Errorf("Encoding mismatch:\nexpected %s\ngot      %s", tt.want, hex.EncodeToString(got))
			}
		})
	}
}

func TestEncodeNoTokens(t *testing.T) {
	if got := Encode(nil); len(got) != 0 {
		t.Errorf("Expected empty encoding, got %s", hex.EncodeToString(got))
	}
}
