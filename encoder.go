package ethabi

// mediate is the encoder's intermediate form. Every token maps to one
// mediate; heads land at fixed positions in the current frame while tails
// hold the dynamic payloads the head offsets point at.
// This is a sealed interface - only types within this package can implement it.
type mediate interface {
	// headLen returns the byte length of the head section.
	headLen() int

	// tailLen returns the byte length of the tail section.
	tailLen() int

	// head returns the head words. suffixOffset is the frame-relative byte
	// position of this mediate's tail; static mediates ignore it.
	head(suffixOffset int) []Word

	// tail returns the tail words.
	tail() []Word
}

// offsetFor returns the frame-relative byte offset of the i-th mediate's
// tail: all heads, plus the tails of the mediates before position i.
func offsetFor(ms []mediate, i int) int {
	off := 0
	for _, m := range ms {
		off += m.headLen()
	}
	for _, m := range ms[:i] {
		off += m.tailLen()
	}
	return off
}

func headWords(ms []mediate) []Word {
	var words []Word
	for i, m := range ms {
		words = append(words, m.head(offsetFor(ms, i))...)
	}
	return words
}

func tailWords(ms []mediate) []Word {
	var words []Word
	for _, m := range ms {
		words = append(words, m.tail()...)
	}
	return words
}

// rawMediate is statically inlined content: one word per scalar, several for
// fixed bytes. It lives entirely in the head.
type rawMediate struct {
	words []Word
}

func (m *rawMediate) headLen() int      { return WordSize * len(m.words) }
func (m *rawMediate) tailLen() int      { return 0 }
func (m *rawMediate) head(_ int) []Word { return m.words }
func (m *rawMediate) tail() []Word      { return nil }

// prefixedMediate is length-prefixed dynamic content (bytes, string). The
// head is a single offset word; the payload lands in the tail.
type prefixedMediate struct {
	words []Word
}

func (m *prefixedMediate) headLen() int { return WordSize }
func (m *prefixedMediate) tailLen() int { return WordSize * len(m.words) }

func (m *prefixedMediate) head(suffixOffset int) []Word {
	return []Word{uintWord(uint64(suffixOffset))}
}

func (m *prefixedMediate) tail() []Word { return m.words }

// groupMediate is a static fixed array or tuple: plain concatenation of the
// member encodings with no indirection. All members are static, so the
// group has no tail.
type groupMediate struct {
	elems []mediate
}

func (m *groupMediate) headLen() int {
	n := 0
	for _, e := range m.elems {
		n += e.headLen()
	}
	return n
}

func (m *groupMediate) tailLen() int {
	n := 0
	for _, e := range m.elems {
		n += e.tailLen()
	}
	return n
}

func (m *groupMediate) head(_ int) []Word { return headWords(m.elems) }
func (m *groupMediate) tail() []Word      { return tailWords(m.elems) }

// dynamicGroupMediate is a dynamic fixed array or tuple: a single offset
// word in the head, pointing at a sub-frame holding the member heads and
// tails. Member offsets are relative to the sub-frame.
type dynamicGroupMediate struct {
	elems []mediate
}

func (m *dynamicGroupMediate) headLen() int { return WordSize }

func (m *dynamicGroupMediate) tailLen() int {
	n := 0
	for _, e := range m.elems {
		n += e.headLen() + e.tailLen()
	}
	return n
}

func (m *dynamicGroupMediate) head(suffixOffset int) []Word {
	return []Word{uintWord(uint64(suffixOffset))}
}

func (m *dynamicGroupMediate) tail() []Word {
	return append(headWords(m.elems), tailWords(m.elems)...)
}

// arrayMediate is a dynamic-length array: a single offset word in the head,
// pointing at a sub-frame that leads with the element count. Element offsets
// are relative to the position just after the count word.
type arrayMediate struct {
	elems []mediate
}

func (m *arrayMediate) headLen() int { return WordSize }

func (m *arrayMediate) tailLen() int {
	n := WordSize
	for _, e := range m.elems {
		n += e.headLen() + e.tailLen()
	}
	return n
}

func (m *arrayMediate) head(suffixOffset int) []Word {
	return []Word{uintWord(uint64(suffixOffset))}
}

func (m *arrayMediate) tail() []Word {
	words := []Word{uintWord(uint64(len(m.elems)))}
	words = append(words, headWords(m.elems)...)
	return append(words, tailWords(m.elems)...)
}

// Encode serializes tokens into the offset-based head/tail wire form.
//
// The encoding is deterministic and reads all structure off the tokens; it
// assumes the tokens are well formed for the caller's intended types. Use
// TypeCheck first when the values come from an untrusted source.
func Encode(tokens []Token) []byte {
	ms := tokenMediates(tokens)
	words := append(headWords(ms), tailWords(ms)...)
	return concatWords(words)
}

func tokenMediates(tokens []Token) []mediate {
	ms := make([]mediate, len(tokens))
	for i, t := range tokens {
		ms[i] = tokenMediate(t)
	}
	return ms
}

func tokenMediate(tok Token) mediate {
	switch t := tok.(type) {
	case *AddressToken:
		var w Word
		copy(w[WordSize-len(t.addr):], t.addr[:])
		return &rawMediate{words: []Word{w}}
	case *BytesToken:
		return &prefixedMediate{words: bytesWords(t.data)}
	case *StringToken:
		return &prefixedMediate{words: bytesWords([]byte(t.value))}
	case *FixedBytesToken:
		return &rawMediate{words: fixedBytesWords(t.data)}
	case *IntToken:
		return &rawMediate{words: []Word{t.word}}
	case *UintToken:
		return &rawMediate{words: []Word{t.word}}
	case *BoolToken:
		var w Word
		if t.value {
			w[WordSize-1] = 1
		}
		return &rawMediate{words: []Word{w}}
	case *ArrayToken:
		return &arrayMediate{elems: tokenMediates(t.elems)}
	case *FixedArrayToken:
		if tokenIsDynamic(tok) {
			return &dynamicGroupMediate{elems: tokenMediates(t.elems)}
		}
		return &groupMediate{elems: tokenMediates(t.elems)}
	case *TupleToken:
		if tokenIsDynamic(tok) {
			return &dynamicGroupMediate{elems: tokenMediates(t.elems)}
		}
		return &groupMediate{elems: tokenMediates(t.elems)}
	default:
		// The Token interface is sealed; no other implementations exist.
		return &rawMediate{}
	}
}
