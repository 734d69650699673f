package tokenizer

import (
	"github.com/sirupsen/logrus"

	"github.com/heathj/streamtok/charset"
)

// Decoder turns bytes of the input encoding into UTF-8 text. The second
// result reports whether decoding hit malformed or unmappable bytes.
type Decoder interface {
	Decode(b []byte) (string, bool)
}

// textBoundary is implemented by decoders that know where a text run can be
// cut without splitting a character. Runs from other decoders are only cut
// after an ASCII byte.
type textBoundary interface {
	Boundary(b []byte) int
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithLogger sets the logger used for chunk and state transition tracing.
func WithLogger(l *logrus.Logger) Option {
	return func(t *Tokenizer) {
		t.log = l.WithField("component", "tokenizer")
	}
}

// WithEncoding sets the encoding Token materialization decodes with. The
// same encoding has to be used for the whole input.
func WithEncoding(d Decoder) Option {
	return func(t *Tokenizer) {
		t.decoder = d
	}
}

// WithMaxBufferSize limits how many bytes of an unfinished lexical unit are
// carried over to the next chunk. Zero means no limit.
func WithMaxBufferSize(n int) Option {
	return func(t *Tokenizer) {
		t.maxBufferSize = n
	}
}

// WithTextFlushSize sets how long a pending text run may grow before it is
// emitted at the end of a chunk, ahead of the markup that will end it. The
// run is then delivered as several Character units. Zero disables it and
// keeps every text run whole.
func WithTextFlushSize(n int) Option {
	return func(t *Tokenizer) {
		t.textFlushSize = n
	}
}

// WithAllowCDATA sets whether <![CDATA[ ... ]]> is recognized as a CDATA
// section. See SetAllowCDATA.
func WithAllowCDATA(allow bool) Option {
	return func(t *Tokenizer) {
		t.allowCDATA = allow
	}
}

// WithScripting makes <noscript> content RAWTEXT, as it is for a browser
// with scripting enabled.
func WithScripting(enabled bool) Option {
	return func(t *Tokenizer) {
		t.scripting = enabled
	}
}

const defaultTextFlushSize = 4 << 10

var defaultLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}()

func defaultOptions(t *Tokenizer) {
	t.log = defaultLogger.WithField("component", "tokenizer")
	t.decoder = charset.UTF8
	t.textFlushSize = defaultTextFlushSize
}
