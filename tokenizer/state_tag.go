package tokenizer

func (t *Tokenizer) tagOpenStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		return true, dataState
	case c == '!':
		t.emitText(t.markupStart)
		return false, markupDeclarationOpenState
	case c == '/':
		return false, endTagOpenState
	case isASCIIAlpha(c):
		t.emitText(t.markupStart)
		t.tokenBuilder.StartTag(startTag, t.here())
		return true, tagNameState
	case c == '?':
		t.emitText(t.markupStart)
		t.tokenBuilder.StartData(t.here())
		return true, bogusCommentState
	default:
		return true, dataState
	}
}

func (t *Tokenizer) endTagOpenStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		return true, dataState
	case isASCIIAlpha(c):
		t.emitText(t.markupStart)
		t.tokenBuilder.StartTag(endTag, t.here())
		return true, tagNameState
	case c == '>':
		// "</>" produces no token.
		t.emitText(t.markupStart)
		t.emitRaw(t.here() + 1)
		return false, dataState
	default:
		t.emitText(t.markupStart)
		t.tokenBuilder.StartData(t.here())
		return true, bogusCommentState
	}
}

func (t *Tokenizer) tagNameStateParser(c byte, eof bool) (bool, tokenizerState) {
	if eof {
		return t.emitDroppedTag()
	}
	switch {
	case isASCIIWhitespace(c):
		t.tokenBuilder.EndName(t.here())
		return false, beforeAttributeNameState
	case c == '/':
		t.tokenBuilder.EndName(t.here())
		return false, selfClosingStartTagState
	case c == '>':
		t.tokenBuilder.EndName(t.here())
		return false, t.emitCurrentTag()
	default:
		t.tokenBuilder.WriteName(c)
		return false, tagNameState
	}
}

func (t *Tokenizer) beforeAttributeNameStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof || c == '/' || c == '>':
		return true, afterAttributeNameState
	case isASCIIWhitespace(c):
		return false, beforeAttributeNameState
	case c == '=':
		t.tokenBuilder.attributes.startName(t.here())
		return false, attributeNameState
	default:
		t.tokenBuilder.attributes.startName(t.here())
		return true, attributeNameState
	}
}

func (t *Tokenizer) attributeNameStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof || isASCIIWhitespace(c) || c == '/' || c == '>':
		t.tokenBuilder.attributes.endName(t.here())
		return true, afterAttributeNameState
	case c == '=':
		t.tokenBuilder.attributes.endName(t.here())
		return false, beforeAttributeValueState
	default:
		return false, attributeNameState
	}
}

func (t *Tokenizer) afterAttributeNameStateParser(c byte, eof bool) (bool, tokenizerState) {
	if eof {
		return t.emitDroppedTag()
	}
	switch {
	case isASCIIWhitespace(c):
		return false, afterAttributeNameState
	case c == '/':
		return false, selfClosingStartTagState
	case c == '=':
		return false, beforeAttributeValueState
	case c == '>':
		return false, t.emitCurrentTag()
	default:
		t.tokenBuilder.attributes.startName(t.here())
		return true, attributeNameState
	}
}

func (t *Tokenizer) beforeAttributeValueStateParser(c byte, eof bool) (bool, tokenizerState) {
	switch {
	case eof:
		return true, attributeValueUnquotedState
	case isASCIIWhitespace(c):
		return false, beforeAttributeValueState
	case c == '"':
		t.tokenBuilder.attributes.startValue(t.here() + 1)
		return false, attributeValueDoubleQuotedState
	case c == '\'':
		t.tokenBuilder.attributes.startValue(t.here() + 1)
		return false, attributeValueSingleQuotedState
	case c == '>':
		return false, t.emitCurrentTag()
	default:
		t.tokenBuilder.attributes.startValue(t.here())
		return true, attributeValueUnquotedState
	}
}

func (t *Tokenizer) attributeValueDoubleQuotedStateParser(c byte, eof bool) (bool, tokenizerState) {
	return t.attributeValueQuotedStateParser(c, eof, '"', attributeValueDoubleQuotedState)
}

func (t *Tokenizer) attributeValueSingleQuotedStateParser(c byte, eof bool) (bool, tokenizerState) {
	return t.attributeValueQuotedStateParser(c, eof, '\'', attributeValueSingleQuotedState)
}

func (t *Tokenizer) attributeValueQuotedStateParser(c byte, eof bool, quote byte, self tokenizerState) (bool, tokenizerState) {
	if eof {
		return t.emitDroppedTag()
	}
	if c == quote {
		t.tokenBuilder.attributes.endValue(t.here())
		return false, afterAttributeValueQuotedState
	}
	t.cursor.skipUntil(quote)
	return false, self
}

func (t *Tokenizer) attributeValueUnquotedStateParser(c byte, eof bool) (bool, tokenizerState) {
	if eof {
		return t.emitDroppedTag()
	}
	switch {
	case isASCIIWhitespace(c):
		t.tokenBuilder.attributes.endValue(t.here())
		return false, beforeAttributeNameState
	case c == '>':
		t.tokenBuilder.attributes.endValue(t.here())
		return false, t.emitCurrentTag()
	default:
		return false, attributeValueUnquotedState
	}
}

func (t *Tokenizer) afterAttributeValueQuotedStateParser(c byte, eof bool) (bool, tokenizerState) {
	if eof {
		return t.emitDroppedTag()
	}
	switch {
	case isASCIIWhitespace(c):
		return false, beforeAttributeNameState
	case c == '/':
		return false, selfClosingStartTagState
	case c == '>':
		return false, t.emitCurrentTag()
	default:
		return true, beforeAttributeNameState
	}
}

func (t *Tokenizer) selfClosingStartTagStateParser(c byte, eof bool) (bool, tokenizerState) {
	if eof {
		return t.emitDroppedTag()
	}
	if c == '>' {
		t.tokenBuilder.EnableSelfClosing()
		return false, t.emitCurrentTag()
	}
	return true, beforeAttributeNameState
}
