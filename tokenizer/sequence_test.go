package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceMatcherWholeInput(t *testing.T) {
	tests := []struct {
		literal  string
		foldCase bool
		input    string
		n        int
		result   MatchResult
	}{
		{"doctype", true, "DOCTYPE html", 7, MatchFull},
		{"doctype", true, "DocType", 7, MatchFull},
		{"doctype", true, "doc", 3, MatchPartial},
		{"doctype", true, "docx", 3, MatchNone},
		{"[CDATA[", false, "[CDATA[x", 7, MatchFull},
		{"[CDATA[", false, "[cdata[", 1, MatchNone},
		{"--", false, "-x", 1, MatchNone},
		{"--", false, "", 0, MatchPartial},
	}
	for _, tt := range tests {
		t.Run(tt.literal+"/"+tt.input, func(t *testing.T) {
			m := NewSequenceMatcher(tt.literal, tt.foldCase)
			n, result := m.Match([]byte(tt.input))
			assert.Equal(t, tt.n, n)
			assert.Equal(t, tt.result, result)
		})
	}
}

// TestSequenceMatcherSplitAtEveryOffset feeds "</script>" in two pieces
// split at every possible offset and expects the same outcome as unsplit.
func TestSequenceMatcherSplitAtEveryOffset(t *testing.T) {
	inputs := []struct {
		input string
		want  MatchResult
	}{
		{"</script>", MatchFull},
		{"</SCRIPT>", MatchFull},
		{"</ScRiPt>", MatchFull},
		{"</scripx>", MatchNone},
		{"</scrip>", MatchNone},
	}
	for _, in := range inputs {
		whole := NewSequenceMatcher("</script>", true)
		_, want := whole.Match([]byte(in.input))
		require.Equal(t, in.want, want)

		for split := 0; split <= len(in.input); split++ {
			m := NewSequenceMatcher("</script>", true)
			first, second := []byte(in.input[:split]), []byte(in.input[split:])

			consumed, result := m.Match(first)
			if result == MatchPartial {
				require.Equal(t, split, consumed)
				assert.Equal(t, split, m.Progress(), "split at %d", split)
				var n int
				n, result = m.Match(second)
				consumed += n
			}
			assert.Equal(t, want, result, "%q split at %d", in.input, split)
			if result == MatchFull {
				assert.Equal(t, len(in.input), consumed, "split at %d", split)
			}
			assert.Zero(t, m.Progress())
		}
	}
}

func TestSequenceMatcherReset(t *testing.T) {
	m := NewSequenceMatcher("public", true)
	_, result := m.Match([]byte("PUB"))
	require.Equal(t, MatchPartial, result)
	m.Reset()
	_, result = m.Match([]byte("lic"))
	assert.Equal(t, MatchNone, result)
}

func TestSequenceMatcherMismatchDoesNotConsume(t *testing.T) {
	m := NewSequenceMatcher("--", false)
	assert.Equal(t, MatchPartial, m.Feed('-'))
	assert.Equal(t, MatchNone, m.Feed('>'))
	// the mismatched byte can start a new match
	assert.Equal(t, MatchPartial, m.Feed('-'))
	assert.Equal(t, MatchFull, m.Feed('-'))
}
