package testutil

import (
	"math/rand"
	"os"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/heathj/streamtok/charset"
	"github.com/heathj/streamtok/tokenizer"
)

// Output collects what a tokenizer emits for one input.
type Output struct {
	t testing.TB
	// Tokens holds the materialized token of every unit that has a view,
	// EOF included.
	Tokens []tokenizer.Token
	// Raw is the concatenation of the raw bytes of all units, RawUnits the
	// raw bytes of each unit that has any.
	Raw      []byte
	RawUnits []string
	// RawOnly counts units that carry bytes but no token.
	RawOnly int
	// Malformed counts tokens whose bytes didn't decode.
	Malformed int
	finished  bool
}

// NewOutput returns an empty Output reporting failures to t.
func NewOutput(t testing.TB) *Output {
	return &Output{t: t}
}

// Handle is a tokenizer.LexUnitHandler.
func (o *Output) Handle(u *tokenizer.LexUnit) {
	require.False(o.t, o.finished, "unit emitted after EOF")

	if raw, ok := u.RawRange(); ok && !raw.IsEmpty() {
		o.Raw = append(o.Raw, u.Raw()...)
		o.RawUnits = append(o.RawUnits, string(u.Raw()))
	}
	if u.TokenView() == nil {
		o.RawOnly++
		return
	}
	tok, err := u.Token()
	if errors.Cause(err) == tokenizer.ErrMalformed {
		o.Malformed++
		return
	}
	require.NoError(o.t, err)
	o.Tokens = append(o.Tokens, *tok)
	if tok.TokenType == tokenizer.EOFToken {
		o.finished = true
	}
}

// Finished reports whether EOF was emitted.
func (o *Output) Finished() bool {
	return o.finished
}

// MergeText joins adjacent Character tokens, which is how a text run
// emitted in several units reads once it is put back together.
func MergeText(tokens []tokenizer.Token) []tokenizer.Token {
	var merged []tokenizer.Token
	for _, tok := range tokens {
		if n := len(merged); n > 0 && tok.TokenType == tokenizer.CharacterToken &&
			merged[n-1].TokenType == tokenizer.CharacterToken {
			merged[n-1].Data += tok.Data
			continue
		}
		merged = append(merged, tok)
	}
	return merged
}

// ChunkSize picks the chunk size input of length n is split into: the value
// of the CHUNK_SIZE environment variable if set, otherwise a random size
// smaller than the input.
func ChunkSize(t testing.TB, n int) int {
	if v := os.Getenv("CHUNK_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		require.NoError(t, err, "CHUNK_SIZE")
		require.Positive(t, size, "CHUNK_SIZE")
		return size
	}
	if n > 1 {
		return 1 + rand.Intn(n-1)
	}
	return 1
}

// Split cuts b into chunks of size bytes; the last one may be shorter.
func Split(b []byte, size int) [][]byte {
	var chunks [][]byte
	for len(b) > size {
		chunks = append(chunks, b[:size])
		b = b[size:]
	}
	if len(b) > 0 {
		chunks = append(chunks, b)
	}
	return chunks
}

// Tokenize feeds chunks to a new tokenizer, followed by an empty finalizing
// chunk, and returns everything it emitted.
func Tokenize(t testing.TB, chunks [][]byte, opts ...tokenizer.Option) *Output {
	return TokenizeWith(t, chunks, nil, opts...)
}

// TokenizeWith is Tokenize with a hook run on the tokenizer before any input
// is fed.
func TokenizeWith(t testing.TB, chunks [][]byte, setup func(*tokenizer.Tokenizer), opts ...tokenizer.Option) *Output {
	out := NewOutput(t)
	tok := tokenizer.New(out.Handle, opts...)
	if setup != nil {
		setup(tok)
	}
	for _, c := range chunks {
		// Copy so that nothing can hold on to the caller's bytes.
		require.NoError(t, tok.TokenizeChunk(tokenizer.NewChunk(append([]byte(nil), c...))))
	}
	require.NoError(t, tok.Finish())
	require.True(t, out.Finished(), "no EOF emitted")
	return out
}

// PrepareInput encodes input in enc and splits it at a chunk size chosen by
// ChunkSize, or into a single chunk when single is set. Inputs the encoding
// can't carry unchanged return charset.ErrUnmappable or
// charset.ErrNotRoundTrip.
func PrepareInput(t testing.TB, input string, enc *charset.Encoding, single bool) ([][]byte, int, error) {
	b, err := enc.Prepare(input)
	if err != nil {
		return nil, 0, err
	}
	size := len(b)
	if !single {
		size = ChunkSize(t, len(b))
	}
	if size == 0 {
		return nil, 0, nil
	}
	return Split(b, size), size, nil
}
