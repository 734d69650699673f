package tokenizer

// sequenceKind names the literal the sequenceMatchState is matching.
type sequenceKind uint8

const (
	commentOpenSequence sequenceKind = iota
	doctypeSequence
	cdataSequence
	publicSequence
	systemSequence
)

var sequences = [...]SequenceMatcher{
	commentOpenSequence: NewSequenceMatcher("--", false),
	doctypeSequence:     NewSequenceMatcher("doctype", true),
	cdataSequence:       NewSequenceMatcher("[CDATA[", false),
	publicSequence:      NewSequenceMatcher("public", true),
	systemSequence:      NewSequenceMatcher("system", true),
}

// startSequence begins matching the literal of kind, whose first byte is
// the current one.
func (t *Tokenizer) startSequence(kind sequenceKind) (bool, tokenizerState) {
	t.seqKind = kind
	t.seq = sequences[kind]
	t.seq.resumeAt(1)
	return false, sequenceMatchState
}

func (t *Tokenizer) markupDeclarationOpenStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
	case c == '-':
		return t.startSequence(commentOpenSequence)
	case c == 'd' || c == 'D':
		return t.startSequence(doctypeSequence)
	case c == '[':
		return t.startSequence(cdataSequence)
	}
	t.tokenBuilder.StartData(t.markupStart + 2)
	return true, bogusCommentState
}

// sequenceMatchStateParser matches the rest of a literal byte by byte so
// that it may be split across any number of chunks.
func (t *Tokenizer) sequenceMatchStateParser(c byte, eof bool) (bool, tokenizerState) {
	if eof {
		return t.sequenceMismatch()
	}
	switch t.seq.Feed(c) {
	case MatchFull:
		return t.sequenceMatched()
	case MatchNone:
		return t.sequenceMismatch()
	default:
		return false, sequenceMatchState
	}
}

func (t *Tokenizer) sequenceMatched() (bool, tokenizerState) {
	switch t.seqKind {
	case commentOpenSequence:
		t.tokenBuilder.StartData(t.here() + 1)
		return false, commentStartState
	case doctypeSequence:
		t.tokenBuilder.StartDoctype()
		return false, doctypeState
	case cdataSequence:
		if !t.allowCDATA {
			t.tokenBuilder.StartData(t.markupStart + 2)
			return false, bogusCommentState
		}
		t.emitRaw(t.here() + 1)
		t.setTextType(CDATASectionText)
		return false, t.currentState
	case publicSequence:
		return false, afterDoctypePublicKeywordState
	default:
		return false, afterDoctypeSystemKeywordState
	}
}

// sequenceMismatch reconsumes the current byte where the construct falls
// back to when its literal doesn't match.
func (t *Tokenizer) sequenceMismatch() (bool, tokenizerState) {
	switch t.seqKind {
	case publicSequence, systemSequence:
		t.tokenBuilder.EnableForceQuirks()
		return true, bogusDoctypeState
	default:
		t.tokenBuilder.StartData(t.markupStart + 2)
		return true, bogusCommentState
	}
}

func (t *Tokenizer) bogusCommentStateParser(c byte, eof bool) (bool, tokenizerState) {
	if eof {
		t.emitComment(t.here(), t.here())
		return t.emitEndOfFile()
	}
	if c == '>' {
		return false, t.emitComment(t.here(), t.here()+1)
	}
	t.cursor.skipUntil('>')
	return false, bogusCommentState
}

func (t *Tokenizer) commentStartStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		return true, commentState
	case c == '-':
		return false, commentStartDashState
	case c == '>':
		return false, t.emitComment(t.tokenBuilder.data.Start, t.here()+1)
	default:
		return true, commentState
	}
}

func (t *Tokenizer) commentStartDashStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		return t.emitCommentAndEndOfFile(t.tokenBuilder.data.Start)
	case c == '-':
		t.tokenBuilder.MarkDataEnd(t.tokenBuilder.data.Start)
		return false, commentEndState
	case c == '>':
		return false, t.emitComment(t.tokenBuilder.data.Start, t.here()+1)
	default:
		return true, commentState
	}
}

func (t *Tokenizer) commentStateParser(c byte, eof bool) (bool, tokenizerState) {
	if eof {
		return t.emitCommentAndEndOfFile(t.here())
	}
	switch c {
	case '<':
		return false, commentLessThanSignState
	case '-':
		t.tokenBuilder.MarkDataEnd(t.here())
		return false, commentEndDashState
	default:
		return false, commentState
	}
}

func (t *Tokenizer) commentLessThanSignStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		return true, commentState
	case c == '!':
		return false, commentLessThanSignBangState
	case c == '<':
		return false, commentLessThanSignState
	default:
		return true, commentState
	}
}

func (t *Tokenizer) commentLessThanSignBangStateParser(c byte, eof bool) (bool, tokenizerState) {
	if c == '-' && !eof {
		t.tokenBuilder.MarkDataEnd(t.here())
		return false, commentLessThanSignBangDashState
	}
	return true, commentState
}

func (t *Tokenizer) commentLessThanSignBangDashStateParser(c byte, eof bool) (bool, tokenizerState) {
	if c == '-' && !eof {
		return false, commentLessThanSignBangDashDashState
	}
	return true, commentEndDashState
}

// A nested "<!--" is a parse error but doesn't change what the comment ends
// with.
func (t *Tokenizer) commentLessThanSignBangDashDashStateParser(c byte, eof bool) (bool, tokenizerState) {
	return true, commentEndState
}

func (t *Tokenizer) commentEndDashStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		return t.emitCommentAndEndOfFile(t.tokenBuilder.dataEnd)
	case c == '-':
		return false, commentEndState
	default:
		return true, commentState
	}
}

func (t *Tokenizer) commentEndStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		return t.emitCommentAndEndOfFile(t.tokenBuilder.dataEnd)
	case c == '>':
		return false, t.emitComment(t.tokenBuilder.dataEnd, t.here()+1)
	case c == '!':
		return false, commentEndBangState
	case c == '-':
		t.tokenBuilder.MarkDataEnd(t.tokenBuilder.dataEnd + 1)
		return false, commentEndState
	default:
		return true, commentState
	}
}

func (t *Tokenizer) commentEndBangStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		return t.emitCommentAndEndOfFile(t.tokenBuilder.dataEnd)
	case c == '-':
		t.tokenBuilder.MarkDataEnd(t.here())
		return false, commentEndDashState
	case c == '>':
		return false, t.emitComment(t.tokenBuilder.dataEnd, t.here()+1)
	default:
		return true, commentState
	}
}

func (t *Tokenizer) emitCommentAndEndOfFile(textEnd int) (bool, tokenizerState) {
	t.emitComment(textEnd, t.here())
	return t.emitEndOfFile()
}

func (t *Tokenizer) cdataSectionStateParser(c byte, eof bool) (bool, tokenizerState) {
	if eof {
		return t.emitTextAndEndOfFile()
	}
	if c == ']' {
		t.markupStart = t.here()
		return false, cdataSectionBracketState
	}
	t.cursor.skipUntil(']')
	return false, cdataSectionState
}

func (t *Tokenizer) cdataSectionBracketStateParser(c byte, eof bool) (bool, tokenizerState) {
	if c == ']' && !eof {
		return false, cdataSectionEndState
	}
	return true, cdataSectionState
}

func (t *Tokenizer) cdataSectionEndStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		return true, cdataSectionState
	case c == ']':
		t.markupStart++
		return false, cdataSectionEndState
	case c == '>':
		// "]]>" closes the section without becoming part of any token.
		t.emitText(t.markupStart)
		t.emitRaw(t.here() + 1)
		t.setTextType(DataText)
		return false, t.currentState
	default:
		return true, cdataSectionState
	}
}
