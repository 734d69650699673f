package tokenizer

import (
	"github.com/pkg/errors"
)

// Range is a pair of byte offsets into exactly one Chunk. The start is
// inclusive, the end is exclusive.
type Range struct {
	Start, End int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty reports whether the range covers no bytes.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func (r *Range) shift(n int) {
	r.Start -= n
	r.End -= n
}

// OptionalRange is a Range that may never have been recorded, like the
// public identifier of a DOCTYPE that doesn't declare one.
type OptionalRange struct {
	Range
	Present bool
}

// Get returns the range and whether it was recorded.
func (o OptionalRange) Get() (Range, bool) {
	return o.Range, o.Present
}

func (o *OptionalRange) set(start int) {
	o.Range = Range{Start: start, End: start}
	o.Present = true
}

func (o *OptionalRange) shift(n int) {
	if o.Present {
		o.Range.shift(n)
	}
}

// Chunk is one piece of the input stream. The tokenizer only borrows the
// bytes for the duration of a single TokenizeChunk call.
type Chunk struct {
	data []byte
	last bool
}

// NewChunk wraps data as an intermediate chunk of the stream.
func NewChunk(data []byte) Chunk {
	return Chunk{data: data}
}

// NewLastChunk wraps data as the finalizing chunk of the stream. An empty
// last chunk only signals the end of input.
func NewLastChunk(data []byte) Chunk {
	return Chunk{data: data, last: true}
}

// Bytes returns the chunk's bytes. They must not be modified.
func (c Chunk) Bytes() []byte {
	return c.data
}

// Len returns the number of bytes in the chunk.
func (c Chunk) Len() int {
	return len(c.data)
}

// IsLast reports whether the chunk finalizes the stream.
func (c Chunk) IsLast() bool {
	return c.last
}

// Slice resolves r against the chunk.
func (c Chunk) Slice(r Range) []byte {
	if r.Start < 0 || r.Start > r.End || r.End > len(c.data) {
		panic(errors.Errorf("range [%d, %d) out of chunk bounds [0, %d)", r.Start, r.End, len(c.data)))
	}
	return c.data[r.Start:r.End:r.End]
}
