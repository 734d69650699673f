package tokenizer

// MatchResult is the outcome of feeding bytes to a SequenceMatcher.
type MatchResult uint8

const (
	// MatchPartial means every byte seen so far matched but the literal isn't
	// complete yet. At the end of a chunk the progress must be kept and
	// matching resumed with the next chunk.
	MatchPartial MatchResult = iota
	// MatchFull means the whole literal matched.
	MatchFull
	// MatchNone means a byte didn't match. That byte is not consumed.
	MatchNone
)

func (r MatchResult) String() string {
	switch r {
	case MatchPartial:
		return "partial"
	case MatchFull:
		return "full"
	case MatchNone:
		return "none"
	}
	return "invalid"
}

// SequenceMatcher matches a fixed literal against a byte stream that may be
// split at any offset. The only state it keeps between chunks is the number
// of literal bytes already matched.
type SequenceMatcher struct {
	literal  []byte
	foldCase bool
	progress int
}

// NewSequenceMatcher returns a matcher for literal. With foldCase set, ASCII
// letters match regardless of case.
func NewSequenceMatcher(literal string, foldCase bool) SequenceMatcher {
	m := SequenceMatcher{literal: []byte(literal), foldCase: foldCase}
	if foldCase {
		for i, c := range m.literal {
			m.literal[i] = toLowerASCII(c)
		}
	}
	return m
}

// Progress returns how many bytes of the literal have matched.
func (m *SequenceMatcher) Progress() int {
	return m.progress
}

// Reset forgets any partial match.
func (m *SequenceMatcher) Reset() {
	m.progress = 0
}

// resumeAt continues matching as if the first n bytes of the literal were
// already seen. The state machine uses it after dispatching on the first
// byte of a markup declaration.
func (m *SequenceMatcher) resumeAt(n int) {
	m.progress = n
}

// Feed matches one byte.
func (m *SequenceMatcher) Feed(c byte) MatchResult {
	if m.foldCase {
		c = toLowerASCII(c)
	}
	if c != m.literal[m.progress] {
		m.progress = 0
		return MatchNone
	}
	m.progress++
	if m.progress == len(m.literal) {
		m.progress = 0
		return MatchFull
	}
	return MatchPartial
}

// Match consumes as many bytes of input as continue the literal and returns
// how many it consumed. On MatchNone the byte at input[n] is the mismatch.
// Running out of input yields MatchPartial with the progress retained.
func (m *SequenceMatcher) Match(input []byte) (int, MatchResult) {
	for i, c := range input {
		switch m.Feed(c) {
		case MatchFull:
			return i + 1, MatchFull
		case MatchNone:
			return i, MatchNone
		}
	}
	return len(input), MatchPartial
}

func toLowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func isASCIIAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isASCIIAlphanumeric(c byte) bool {
	return isASCIIAlpha(c) || ('0' <= c && c <= '9')
}

func isASCIIWhitespace(c byte) bool {
	switch c {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}
