package charset

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		label, name string
	}{
		{"utf-8", "utf-8"},
		{"UTF8", "utf-8"},
		{" unicode-1-1-utf-8 ", "utf-8"},
		{"latin1", "windows-1252"},
		{"windows-1251", "windows-1251"},
		{"Shift_JIS", "shift_jis"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			enc, err := Lookup(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.name, enc.Name())
		})
	}

	enc, err := Lookup("utf-8")
	require.NoError(t, err)
	assert.Same(t, UTF8, enc)

	_, err = Lookup("no-such-encoding")
	assert.Equal(t, ErrUnknownEncoding, errors.Cause(err))
}

func TestDecodeUTF8(t *testing.T) {
	text, hadErrors := UTF8.Decode([]byte("héllo"))
	assert.False(t, hadErrors)
	assert.Equal(t, "héllo", text)

	text, hadErrors = UTF8.Decode([]byte{'a', 0xff, 'b'})
	assert.True(t, hadErrors)
	assert.Equal(t, "a�b", text)
}

func TestEncodeDecodeSingleByte(t *testing.T) {
	enc, err := Lookup("windows-1251")
	require.NoError(t, err)

	b, unmappable := enc.Encode("Привет")
	require.False(t, unmappable)
	assert.Len(t, b, 6)

	text, hadErrors := enc.Decode(b)
	assert.False(t, hadErrors)
	assert.Equal(t, "Привет", text)
}

func TestEncodeUnmappable(t *testing.T) {
	enc, err := Lookup("windows-1252")
	require.NoError(t, err)

	b, unmappable := enc.Encode("a日b")
	assert.True(t, unmappable)
	assert.Equal(t, "a&#26085;b", string(b))
}

func TestPrepare(t *testing.T) {
	enc, err := Lookup("windows-1252")
	require.NoError(t, err)

	b, err := enc.Prepare("<p>café</p>")
	require.NoError(t, err)
	assert.Equal(t, []byte("<p>caf\xe9</p>"), b)

	_, err = enc.Prepare("<p>日本</p>")
	assert.Equal(t, ErrUnmappable, errors.Cause(err))

	b, err = UTF8.Prepare("<p>日本</p>")
	require.NoError(t, err)
	assert.Equal(t, []byte("<p>日本</p>"), b)
}

func TestBoundary(t *testing.T) {
	sjis, err := Lookup("shift_jis")
	require.NoError(t, err)
	latin1, err := Lookup("windows-1252")
	require.NoError(t, err)

	tests := []struct {
		name  string
		enc   *Encoding
		input string
		want  int
	}{
		{"utf-8 complete", UTF8, "abé", 4},
		{"utf-8 cut after lead byte", UTF8, "ab\xc3", 2},
		{"utf-8 cut inside three bytes", UTF8, "a\xe6\x97", 1},
		{"utf-8 invalid byte", UTF8, "a\xff", 2},
		{"utf-8 empty", UTF8, "", 0},
		{"single byte", latin1, "caf\xe9", 4},
		{"multi byte ends on ascii", sjis, "\x93\xfaa", 3},
		{"multi byte", sjis, "a\x93\xfa\x93", 1},
		{"multi byte without ascii", sjis, "\x93\xfa", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.enc.Boundary([]byte(tt.input)))
		})
	}
}
