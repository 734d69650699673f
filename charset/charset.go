// Package charset is the encoding service the tokenizer decodes token text
// with. Encodings are identified by their WHATWG labels.
package charset

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

var (
	// ErrUnknownEncoding is returned for a label no encoding answers to.
	ErrUnknownEncoding = errors.New("charset: unknown encoding label")
	// ErrUnmappable means the text has characters the encoding can't
	// represent.
	ErrUnmappable = errors.New("charset: text has unmappable characters")
	// ErrNotRoundTrip means the encoded bytes don't decode back to the
	// original text, as with the yen sign in Shift_JIS.
	ErrNotRoundTrip = errors.New("charset: text doesn't survive an encoding round trip")
	// ErrMalformed means bytes aren't valid in the encoding.
	ErrMalformed = errors.New("charset: malformed input bytes")
)

// Encoding is a character encoding known to the HTML standard.
type Encoding struct {
	name string
	enc  encoding.Encoding
}

// UTF8 is the default encoding.
var UTF8 = &Encoding{name: "utf-8", enc: unicode.UTF8}

// Lookup returns the encoding for a WHATWG label such as "utf-8",
// "windows-1252" or "shift_jis". Labels are matched case-insensitively.
func Lookup(label string) (*Encoding, error) {
	label = strings.TrimSpace(label)
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownEncoding, "%q", label)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownEncoding, "%q", label)
	}
	if name == UTF8.name {
		return UTF8, nil
	}
	return &Encoding{name: name, enc: enc}, nil
}

// Name returns the canonical name of the encoding.
func (e *Encoding) Name() string {
	return e.name
}

func (e *Encoding) String() string {
	return e.name
}

// Encode converts UTF-8 text to the encoding. Characters the encoding can't
// represent are written as numeric character references and reported by the
// second result.
func (e *Encoding) Encode(text string) ([]byte, bool) {
	if e == UTF8 {
		return []byte(text), false
	}
	b, err := e.enc.NewEncoder().Bytes([]byte(text))
	if err == nil {
		return b, false
	}
	b, _ = encoding.HTMLEscapeUnsupported(e.enc.NewEncoder()).Bytes([]byte(text))
	return b, true
}

// Decode converts bytes in the encoding to UTF-8. Malformed sequences become
// U+FFFD and are reported by the second result.
func (e *Encoding) Decode(b []byte) (string, bool) {
	if e == UTF8 {
		if utf8.Valid(b) {
			return string(b), false
		}
		return strings.ToValidUTF8(string(b), "�"), true
	}
	text, err := e.enc.NewDecoder().Bytes(b)
	if err != nil {
		return string(text), true
	}
	// Decoders substitute U+FFFD rather than failing, so check that the
	// bytes come back.
	again, err := e.enc.NewEncoder().Bytes(text)
	return string(text), err != nil || !bytes.Equal(again, b)
}

// Boundary returns the length of the longest prefix of b that ends between
// two characters, so that it decodes on its own.
func (e *Encoding) Boundary(b []byte) int {
	if e == UTF8 {
		for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
			if utf8.RuneStart(b[i]) {
				if utf8.FullRune(b[i:]) {
					return len(b)
				}
				return i
			}
		}
		return len(b)
	}
	if _, ok := e.enc.(*charmap.Charmap); ok {
		return len(b)
	}
	return ASCIIBoundary(b)
}

// ASCIIBoundary cuts b after its last ASCII byte. The lead bytes of the
// legacy multi-byte encodings are all outside ASCII, so an ASCII byte always
// ends a character.
func ASCIIBoundary(b []byte) int {
	for i := len(b); i > 0; i-- {
		if b[i-1] < utf8.RuneSelf {
			return i
		}
	}
	return 0
}

// Prepare encodes text for tokenization in the encoding, failing if the
// encoded bytes wouldn't describe exactly the same text.
func (e *Encoding) Prepare(text string) ([]byte, error) {
	b, unmappable := e.Encode(text)
	if unmappable {
		return nil, errors.Wrapf(ErrUnmappable, "encoding %s", e.name)
	}
	if decoded, _ := e.Decode(b); decoded != text {
		return nil, errors.Wrapf(ErrNotRoundTrip, "encoding %s", e.name)
	}
	return b, nil
}
