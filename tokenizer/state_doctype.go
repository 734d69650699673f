package tokenizer

func (t *Tokenizer) doctypeStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		return t.emitQuirkyDoctypeAndEndOfFile()
	case isASCIIWhitespace(c):
		return false, beforeDoctypeNameState
	default:
		return true, beforeDoctypeNameState
	}
}

func (t *Tokenizer) beforeDoctypeNameStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		return t.emitQuirkyDoctypeAndEndOfFile()
	case isASCIIWhitespace(c):
		return false, beforeDoctypeNameState
	case c == '>':
		t.tokenBuilder.EnableForceQuirks()
		return false, t.emitDoctype(t.here() + 1)
	default:
		t.tokenBuilder.StartDoctypeName(t.here())
		return false, doctypeNameState
	}
}

func (t *Tokenizer) doctypeNameStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		t.tokenBuilder.EndDoctypeName(t.here())
		return t.emitQuirkyDoctypeAndEndOfFile()
	case isASCIIWhitespace(c):
		t.tokenBuilder.EndDoctypeName(t.here())
		return false, afterDoctypeNameState
	case c == '>':
		t.tokenBuilder.EndDoctypeName(t.here())
		return false, t.emitDoctype(t.here() + 1)
	default:
		return false, doctypeNameState
	}
}

func (t *Tokenizer) afterDoctypeNameStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		return t.emitQuirkyDoctypeAndEndOfFile()
	case isASCIIWhitespace(c):
		return false, afterDoctypeNameState
	case c == '>':
		return false, t.emitDoctype(t.here() + 1)
	case c == 'p' || c == 'P':
		return t.startSequence(publicSequence)
	case c == 's' || c == 'S':
		return t.startSequence(systemSequence)
	default:
		t.tokenBuilder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

func (t *Tokenizer) afterDoctypePublicKeywordStateParser(c byte, eof bool) (bool, tokenizerState) {
	if !eof && isASCIIWhitespace(c) {
		return false, beforeDoctypePublicIdentifierState
	}
	return t.beforeDoctypePublicIdentifierStateParser(c, eof)
}

func (t *Tokenizer) beforeDoctypePublicIdentifierStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		return t.emitQuirkyDoctypeAndEndOfFile()
	case isASCIIWhitespace(c):
		return false, beforeDoctypePublicIdentifierState
	case c == '"':
		t.tokenBuilder.WritePublicIdentifierEmpty(t.here() + 1)
		return false, doctypePublicIdentifierDoubleQuotedState
	case c == '\'':
		t.tokenBuilder.WritePublicIdentifierEmpty(t.here() + 1)
		return false, doctypePublicIdentifierSingleQuotedState
	case c == '>':
		t.tokenBuilder.EnableForceQuirks()
		return false, t.emitDoctype(t.here() + 1)
	default:
		t.tokenBuilder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

func (t *Tokenizer) doctypePublicIdentifierDoubleQuotedStateParser(c byte, eof bool) (bool, tokenizerState) {
	return t.doctypeIdentifierQuotedStateParser(c, eof, '"', doctypePublicIdentifierDoubleQuotedState,
		afterDoctypePublicIdentifierState, true)
}

func (t *Tokenizer) doctypePublicIdentifierSingleQuotedStateParser(c byte, eof bool) (bool, tokenizerState) {
	return t.doctypeIdentifierQuotedStateParser(c, eof, '\'', doctypePublicIdentifierSingleQuotedState,
		afterDoctypePublicIdentifierState, true)
}

func (t *Tokenizer) doctypeSystemIdentifierDoubleQuotedStateParser(c byte, eof bool) (bool, tokenizerState) {
	return t.doctypeIdentifierQuotedStateParser(c, eof, '"', doctypeSystemIdentifierDoubleQuotedState,
		afterDoctypeSystemIdentifierState, false)
}

func (t *Tokenizer) doctypeSystemIdentifierSingleQuotedStateParser(c byte, eof bool) (bool, tokenizerState) {
	return t.doctypeIdentifierQuotedStateParser(c, eof, '\'', doctypeSystemIdentifierSingleQuotedState,
		afterDoctypeSystemIdentifierState, false)
}

// doctypeIdentifierQuotedStateParser reads a quoted public or system
// identifier. A '>' inside the quotes ends the DOCTYPE abruptly.
func (t *Tokenizer) doctypeIdentifierQuotedStateParser(c byte, eof bool, quote byte, self, after tokenizerState, public bool) (bool, tokenizerState) {
	end := t.tokenBuilder.EndSystemIdentifier
	if public {
		end = t.tokenBuilder.EndPublicIdentifier
	}
	switch {
	case eof:
		end(t.here())
		return t.emitQuirkyDoctypeAndEndOfFile()
	case c == quote:
		end(t.here())
		return false, after
	case c == '>':
		end(t.here())
		t.tokenBuilder.EnableForceQuirks()
		return false, t.emitDoctype(t.here() + 1)
	default:
		return false, self
	}
}

func (t *Tokenizer) afterDoctypePublicIdentifierStateParser(c byte, eof bool) (bool, tokenizerState) {
	if !eof && isASCIIWhitespace(c) {
		return false, betweenDoctypePublicAndSystemIdentifiersState
	}
	return t.betweenDoctypePublicAndSystemIdentifiersStateParser(c, eof)
}

func (t *Tokenizer) betweenDoctypePublicAndSystemIdentifiersStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		return t.emitQuirkyDoctypeAndEndOfFile()
	case isASCIIWhitespace(c):
		return false, betweenDoctypePublicAndSystemIdentifiersState
	case c == '>':
		return false, t.emitDoctype(t.here() + 1)
	case c == '"':
		t.tokenBuilder.WriteSystemIdentifierEmpty(t.here() + 1)
		return false, doctypeSystemIdentifierDoubleQuotedState
	case c == '\'':
		t.tokenBuilder.WriteSystemIdentifierEmpty(t.here() + 1)
		return false, doctypeSystemIdentifierSingleQuotedState
	default:
		t.tokenBuilder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

func (t *Tokenizer) afterDoctypeSystemKeywordStateParser(c byte, eof bool) (bool, tokenizerState) {
	if !eof && isASCIIWhitespace(c) {
		return false, beforeDoctypeSystemIdentifierState
	}
	return t.beforeDoctypeSystemIdentifierStateParser(c, eof)
}

func (t *Tokenizer) beforeDoctypeSystemIdentifierStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		return t.emitQuirkyDoctypeAndEndOfFile()
	case isASCIIWhitespace(c):
		return false, beforeDoctypeSystemIdentifierState
	case c == '"':
		t.tokenBuilder.WriteSystemIdentifierEmpty(t.here() + 1)
		return false, doctypeSystemIdentifierDoubleQuotedState
	case c == '\'':
		t.tokenBuilder.WriteSystemIdentifierEmpty(t.here() + 1)
		return false, doctypeSystemIdentifierSingleQuotedState
	case c == '>':
		t.tokenBuilder.EnableForceQuirks()
		return false, t.emitDoctype(t.here() + 1)
	default:
		t.tokenBuilder.EnableForceQuirks()
		return true, bogusDoctypeState
	}
}

func (t *Tokenizer) afterDoctypeSystemIdentifierStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		return t.emitQuirkyDoctypeAndEndOfFile()
	case isASCIIWhitespace(c):
		return false, afterDoctypeSystemIdentifierState
	case c == '>':
		return false, t.emitDoctype(t.here() + 1)
	default:
		// Unlike the other doctype errors this one leaves the quirks flag alone.
		return true, bogusDoctypeState
	}
}

func (t *Tokenizer) bogusDoctypeStateParser(c byte, eof bool) (bool, tokenizerState) {
	if eof {
		t.emitDoctype(t.here())
		return t.emitEndOfFile()
	}
	if c == '>' {
		return false, t.emitDoctype(t.here() + 1)
	}
	t.cursor.skipUntil('>')
	return false, bogusDoctypeState
}

func (t *Tokenizer) emitQuirkyDoctypeAndEndOfFile() (bool, tokenizerState) {
	t.tokenBuilder.EnableForceQuirks()
	t.emitDoctype(t.here())
	return t.emitEndOfFile()
}
