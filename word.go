package ethabi

import "encoding/binary"

// WordSize is the number of bytes in an ABI word.
const WordSize = 32

// Word is a single 32-byte ABI word. Heads, tails, offsets, lengths and
// static values all occupy whole words.
type Word [WordSize]byte

// uintWord returns a word holding v right-aligned as a big-endian integer.
func uintWord(v uint64) Word {
	var w Word
	binary.BigEndian.PutUint64(w[WordSize-8:], v)
	return w
}

// fixedBytesWords splits b into words, right-padding the last with zeros.
// Empty input yields no words.
func fixedBytesWords(b []byte) []Word {
	words := make([]Word, (len(b)+WordSize-1)/WordSize)
	for i := range words {
		copy(words[i][:], b[i*WordSize:])
	}
	return words
}

// bytesWords prefixes the padded content of b with its length word.
func bytesWords(b []byte) []Word {
	words := make([]Word, 0, 1+(len(b)+WordSize-1)/WordSize)
	words = append(words, uintWord(uint64(len(b))))
	return append(words, fixedBytesWords(b)...)
}

// concatWords flattens words into one contiguous byte slice.
func concatWords(words []Word) []byte {
	out := make([]byte, 0, len(words)*WordSize)
	for _, w := range words {
		out = append(out, w[:]...)
	}
	return out
}
