package tokenizer

import (
	"github.com/pkg/errors"

	"github.com/heathj/streamtok/charset"
)

var (
	// ErrFinished is returned when input is fed to a tokenizer that already
	// saw the finalizing chunk.
	ErrFinished = errors.New("tokenizer: input already finished")
	// ErrBufferExceeded means more bytes of an unfinished lexical unit had to
	// be kept between chunks than the configured limit allows.
	ErrBufferExceeded = errors.New("tokenizer: max buffer exceeded")
)

// ErrMalformed is returned by LexUnit.Token when the bytes of the token
// aren't valid in the input encoding.
var ErrMalformed = charset.ErrMalformed
