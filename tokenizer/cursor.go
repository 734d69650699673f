package tokenizer

import "bytes"

// inputCursor walks a chunk one byte at a time. Running off the end of the
// chunk is not an error: it either suspends tokenization until the next
// chunk arrives or, for the finalizing chunk, means end of input.
type inputCursor struct {
	data []byte
	last bool
	// pos is the index of the next byte to consume, cur the index of the
	// byte returned by the most recent consume call.
	pos, cur int
}

func (c *inputCursor) init(data []byte, resumeAt int, last bool) {
	c.data = data
	c.last = last
	c.pos = resumeAt
	c.cur = resumeAt
}

// consume returns the next byte and advances. At the end of the chunk it
// returns false and parks cur at the chunk length so that EOF actions see a
// position just past the last byte.
func (c *inputCursor) consume() (byte, bool) {
	if c.pos >= len(c.data) {
		c.cur = len(c.data)
		return 0, false
	}
	c.cur = c.pos
	c.pos++
	return c.data[c.cur], true
}

// lookahead returns the unconsumed rest of the chunk without copying.
func (c *inputCursor) lookahead() []byte {
	return c.data[c.pos:]
}

// isLastChunkEnd distinguishes true end of input from the exhaustion of an
// intermediate chunk.
func (c *inputCursor) isLastChunkEnd() bool {
	return c.last && c.pos >= len(c.data)
}

// skipUntil advances past every byte before the next occurrence of b (or to
// the end of the chunk) so runs of plain text aren't dispatched byte by byte.
func (c *inputCursor) skipUntil(b byte) {
	if i := bytes.IndexByte(c.lookahead(), b); i >= 0 {
		c.pos += i
	} else {
		c.pos = len(c.data)
	}
}

func (c *inputCursor) skipToEnd() {
	c.pos = len(c.data)
}
