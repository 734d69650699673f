package tokenizer

// Text runs are never emitted byte by byte: a run stays pending until the
// markup that ends it is confirmed or the input ends, so its unit doesn't
// depend on how the input was chunked. Only a run that outgrows the text
// flush size is emitted early, at the end of a chunk.

func (t *Tokenizer) dataStateParser(c byte, eof bool) (bool, tokenizerState) {
	if eof {
		return t.emitTextAndEndOfFile()
	}
	if c == '<' {
		t.markupStart = t.here()
		return false, tagOpenState
	}
	t.cursor.skipUntil('<')
	return false, dataState
}

func (t *Tokenizer) rcDataStateParser(c byte, eof bool) (bool, tokenizerState) {
	return t.textStateParser(c, eof, rcDataState, rcDataLessThanSignState)
}

func (t *Tokenizer) rawTextStateParser(c byte, eof bool) (bool, tokenizerState) {
	return t.textStateParser(c, eof, rawTextState, rawTextLessThanSignState)
}

func (t *Tokenizer) scriptDataStateParser(c byte, eof bool) (bool, tokenizerState) {
	return t.textStateParser(c, eof, scriptDataState, scriptDataLessThanSignState)
}

func (t *Tokenizer) textStateParser(c byte, eof bool, self, lessThanSign tokenizerState) (bool, tokenizerState) {
	if eof {
		return t.emitTextAndEndOfFile()
	}
	if c == '<' {
		t.markupStart = t.here()
		return false, lessThanSign
	}
	t.cursor.skipUntil('<')
	return false, self
}

func (t *Tokenizer) plaintextStateParser(c byte, eof bool) (bool, tokenizerState) {
	if eof {
		return t.emitTextAndEndOfFile()
	}
	t.cursor.skipToEnd()
	return false, plaintextState
}

func (t *Tokenizer) rcDataLessThanSignStateParser(c byte, eof bool) (bool, tokenizerState) {
	if c == '/' && !eof {
		return false, rcDataEndTagOpenState
	}
	return true, rcDataState
}

func (t *Tokenizer) rawTextLessThanSignStateParser(c byte, eof bool) (bool, tokenizerState) {
	if c == '/' && !eof {
		return false, rawTextEndTagOpenState
	}
	return true, rawTextState
}

func (t *Tokenizer) scriptDataLessThanSignStateParser(c byte, eof bool) (bool, tokenizerState) {
	if eof {
		return true, scriptDataState
	}
	switch c {
	case '/':
		return false, scriptDataEndTagOpenState
	case '!':
		return false, scriptDataEscapeStartState
	default:
		return true, scriptDataState
	}
}

func (t *Tokenizer) rcDataEndTagOpenStateParser(c byte, eof bool) (bool, tokenizerState) {
	return t.textEndTagOpenStateParser(c, eof, rcDataState, rcDataEndTagNameState)
}

func (t *Tokenizer) rawTextEndTagOpenStateParser(c byte, eof bool) (bool, tokenizerState) {
	return t.textEndTagOpenStateParser(c, eof, rawTextState, rawTextEndTagNameState)
}

func (t *Tokenizer) scriptDataEndTagOpenStateParser(c byte, eof bool) (bool, tokenizerState) {
	return t.textEndTagOpenStateParser(c, eof, scriptDataState, scriptDataEndTagNameState)
}

func (t *Tokenizer) scriptDataEscapedEndTagOpenStateParser(c byte, eof bool) (bool, tokenizerState) {
	return t.textEndTagOpenStateParser(c, eof, scriptDataEscapedState, scriptDataEscapedEndTagNameState)
}

func (t *Tokenizer) textEndTagOpenStateParser(c byte, eof bool, text, endTagName tokenizerState) (bool, tokenizerState) {
	if !eof && isASCIIAlpha(c) {
		t.tokenBuilder.StartTag(endTag, t.here())
		return true, endTagName
	}
	return true, text
}

func (t *Tokenizer) rcDataEndTagNameStateParser(c byte, eof bool) (bool, tokenizerState) {
	return t.textEndTagNameStateParser(c, eof, rcDataEndTagNameState, rcDataState)
}

func (t *Tokenizer) rawTextEndTagNameStateParser(c byte, eof bool) (bool, tokenizerState) {
	return t.textEndTagNameStateParser(c, eof, rawTextEndTagNameState, rawTextState)
}

func (t *Tokenizer) scriptDataEndTagNameStateParser(c byte, eof bool) (bool, tokenizerState) {
	return t.textEndTagNameStateParser(c, eof, scriptDataEndTagNameState, scriptDataState)
}

func (t *Tokenizer) scriptDataEscapedEndTagNameStateParser(c byte, eof bool) (bool, tokenizerState) {
	return t.textEndTagNameStateParser(c, eof, scriptDataEscapedEndTagNameState, scriptDataEscapedState)
}

// textEndTagNameStateParser reads the name of a possible end tag inside
// text. Only an end tag matching the last start tag leaves the text; any
// other one is part of the text.
func (t *Tokenizer) textEndTagNameStateParser(c byte, eof bool, self, text tokenizerState) (bool, tokenizerState) {
	if eof {
		return true, text
	}
	switch {
	case isASCIIWhitespace(c) || c == '/' || c == '>':
		if !t.isApprEndTagToken() {
			return true, text
		}
		t.emitText(t.markupStart)
		t.tokenBuilder.EndName(t.here())
		switch c {
		case '/':
			return false, selfClosingStartTagState
		case '>':
			return false, t.emitCurrentTag()
		default:
			return false, beforeAttributeNameState
		}
	case isASCIIAlpha(c):
		t.tokenBuilder.WriteName(c)
		return false, self
	default:
		return true, text
	}
}

func (t *Tokenizer) isApprEndTagToken() bool {
	h := t.tokenBuilder.nameHash
	return h.IsValid() && h == t.lastStartTagHash
}

func (t *Tokenizer) scriptDataEscapeStartStateParser(c byte, eof bool) (bool, tokenizerState) {
	if c == '-' && !eof {
		return false, scriptDataEscapeStartDashState
	}
	return true, scriptDataState
}

func (t *Tokenizer) scriptDataEscapeStartDashStateParser(c byte, eof bool) (bool, tokenizerState) {
	if c == '-' && !eof {
		return false, scriptDataEscapedDashDashState
	}
	return true, scriptDataState
}

func (t *Tokenizer) scriptDataEscapedStateParser(c byte, eof bool) (bool, tokenizerState) {
	if eof {
		return t.emitTextAndEndOfFile()
	}
	switch c {
	case '-':
		return false, scriptDataEscapedDashState
	case '<':
		t.markupStart = t.here()
		return false, scriptDataEscapedLessThanSignState
	default:
		return false, scriptDataEscapedState
	}
}

func (t *Tokenizer) scriptDataEscapedDashStateParser(c byte, eof bool) (bool, tokenizerState) {
	if eof {
		return t.emitTextAndEndOfFile()
	}
	switch c {
	case '-':
		return false, scriptDataEscapedDashDashState
	case '<':
		t.markupStart = t.here()
		return false, scriptDataEscapedLessThanSignState
	default:
		return false, scriptDataEscapedState
	}
}

func (t *Tokenizer) scriptDataEscapedDashDashStateParser(c byte, eof bool) (bool, tokenizerState) {
	if eof {
		return t.emitTextAndEndOfFile()
	}
	switch c {
	case '-':
		return false, scriptDataEscapedDashDashState
	case '<':
		t.markupStart = t.here()
		return false, scriptDataEscapedLessThanSignState
	case '>':
		return false, scriptDataState
	default:
		return false, scriptDataEscapedState
	}
}

func (t *Tokenizer) scriptDataEscapedLessThanSignStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		return true, scriptDataEscapedState
	case c == '/':
		return false, scriptDataEscapedEndTagOpenState
	case isASCIIAlpha(c):
		t.tokenBuilder.ResetTempBuffer()
		return true, scriptDataDoubleEscapeStartState
	default:
		return true, scriptDataEscapedState
	}
}

func (t *Tokenizer) scriptDataDoubleEscapeStartStateParser(c byte, eof bool) (bool, tokenizerState) {
	return t.doubleEscapeBoundary(c, eof, scriptDataDoubleEscapeStartState,
		scriptDataDoubleEscapedState, scriptDataEscapedState)
}

func (t *Tokenizer) scriptDataDoubleEscapeEndStateParser(c byte, eof bool) (bool, tokenizerState) {
	return t.doubleEscapeBoundary(c, eof, scriptDataDoubleEscapeEndState,
		scriptDataEscapedState, scriptDataDoubleEscapedState)
}

// doubleEscapeBoundary collects a name into the temporary buffer and, once
// it ends, moves to onScript if the name was "script" and to otherwise if
// it wasn't.
func (t *Tokenizer) doubleEscapeBoundary(c byte, eof bool, self, onScript, otherwise tokenizerState) (bool, tokenizerState) {
	switch {
	case eof:
		return true, otherwise
	case isASCIIWhitespace(c) || c == '/' || c == '>':
		if t.tokenBuilder.TempBufferIs(scriptTag) {
			return false, onScript
		}
		return false, otherwise
	case isASCIIAlpha(c):
		t.tokenBuilder.WriteTempBuffer(c)
		return false, self
	default:
		return true, otherwise
	}
}

func (t *Tokenizer) scriptDataDoubleEscapedStateParser(c byte, eof bool) (bool, tokenizerState) {
	if eof {
		return t.emitTextAndEndOfFile()
	}
	switch c {
	case '-':
		return false, scriptDataDoubleEscapedDashState
	case '<':
		return false, scriptDataDoubleEscapedLessThanSignState
	default:
		return false, scriptDataDoubleEscapedState
	}
}

func (t *Tokenizer) scriptDataDoubleEscapedDashStateParser(c byte, eof bool) (bool, tokenizerState) {
	if eof {
		return t.emitTextAndEndOfFile()
	}
	switch c {
	case '-':
		return false, scriptDataDoubleEscapedDashDashState
	case '<':
		return false, scriptDataDoubleEscapedLessThanSignState
	default:
		return false, scriptDataDoubleEscapedState
	}
}

func (t *Tokenizer) scriptDataDoubleEscapedDashDashStateParser(c byte, eof bool) (bool, tokenizerState) {
	if eof {
		return t.emitTextAndEndOfFile()
	}
	switch c {
	case '-':
		return false, scriptDataDoubleEscapedDashDashState
	case '<':
		return false, scriptDataDoubleEscapedLessThanSignState
	case '>':
		return false, scriptDataState
	default:
		return false, scriptDataDoubleEscapedState
	}
}

func (t *Tokenizer) scriptDataDoubleEscapedLessThanSignStateParser(c byte, eof bool) (bool, tokenizerState) {
	if c == '/' && !eof {
		t.tokenBuilder.ResetTempBuffer()
		return false, scriptDataDoubleEscapeEndState
	}
	return true, scriptDataDoubleEscapedState
}
