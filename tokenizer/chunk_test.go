package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkSlice(t *testing.T) {
	c := NewChunk([]byte("<p>hello</p>"))
	assert.False(t, c.IsLast())
	assert.Equal(t, 12, c.Len())
	assert.Equal(t, []byte("hello"), c.Slice(Range{Start: 3, End: 8}))
	assert.Empty(t, c.Slice(Range{Start: 12, End: 12}))

	// appending to a slice must not clobber the chunk
	s := c.Slice(Range{Start: 0, End: 3})
	_ = append(s, 'x')
	assert.Equal(t, byte('h'), c.Bytes()[3])

	assert.Panics(t, func() { c.Slice(Range{Start: 5, End: 4}) })
	assert.Panics(t, func() { c.Slice(Range{Start: 0, End: 13}) })
	assert.Panics(t, func() { c.Slice(Range{Start: -1, End: 2}) })

	assert.True(t, NewLastChunk(nil).IsLast())
}

func TestRangeShift(t *testing.T) {
	r := Range{Start: 10, End: 14}
	r.shift(10)
	assert.Equal(t, Range{Start: 0, End: 4}, r)
	assert.Equal(t, 4, r.Len())

	var o OptionalRange
	o.shift(3)
	_, ok := o.Get()
	assert.False(t, ok)

	o.set(5)
	o.End = 9
	o.shift(5)
	got, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, Range{Start: 0, End: 4}, got)
}

func TestInputCursor(t *testing.T) {
	var c inputCursor
	c.init([]byte("ab"), 0, false)

	b, ok := c.consume()
	assert.True(t, ok)
	assert.Equal(t, byte('a'), b)
	assert.Equal(t, []byte("b"), c.lookahead())
	_, ok = c.consume()
	assert.True(t, ok)
	_, ok = c.consume()
	assert.False(t, ok)
	assert.Equal(t, 2, c.cur)
	assert.False(t, c.isLastChunkEnd())

	c.init([]byte("xy<z"), 1, true)
	c.consume()
	c.skipUntil('<')
	b, _ = c.consume()
	assert.Equal(t, byte('<'), b)
	c.skipToEnd()
	assert.True(t, c.isLastChunkEnd())
}
