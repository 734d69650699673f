package tokenizer

import (
	"github.com/pkg/errors"
)

// LexUnit is one result of tokenization: an optional TokenView and the
// optional range of raw input bytes that produced it. Bytes that form no
// token, like "</>" or a tag cut short by the end of input, come as units
// with raw bytes and no view; the EOF unit has a view and no raw bytes.
// Concatenating the raw bytes of all units reproduces the input exactly.
//
// A LexUnit and the bytes it references are only valid inside the handler
// call it was passed to. Call Token to keep a decoded copy.
type LexUnit struct {
	chunk   Chunk
	raw     Range
	hasRaw  bool
	view    *TokenView
	decoder Decoder
}

// Raw returns the raw bytes of the unit, or nil if it has none.
func (u *LexUnit) Raw() []byte {
	if !u.hasRaw {
		return nil
	}
	return u.chunk.Slice(u.raw)
}

// RawRange returns the range of the raw bytes within Chunk.
func (u *LexUnit) RawRange() (Range, bool) {
	return u.raw, u.hasRaw
}

// TokenView returns the view of the token, or nil if the bytes form none.
func (u *LexUnit) TokenView() *TokenView {
	return u.view
}

// Chunk returns the bytes the ranges of the unit resolve against. They are
// the bytes carried over from earlier input followed by the current chunk.
func (u *LexUnit) Chunk() Chunk {
	return u.chunk
}

// Slice resolves a range of the unit's view.
func (u *LexUnit) Slice(r Range) []byte {
	return u.chunk.Slice(r)
}

// Token materializes the view into an owned Token. It returns nil for units
// without a view.
func (u *LexUnit) Token() (*Token, error) {
	if u.view == nil {
		return nil, nil
	}
	m := materializer{chunk: u.chunk, decoder: u.decoder}
	tok := m.token(u.view, u.raw, u.hasRaw)
	if m.malformed {
		return nil, errors.Wrapf(ErrMalformed, "%s token at [%d, %d)", u.view.TokenType, u.raw.Start, u.raw.End)
	}
	return tok, nil
}
