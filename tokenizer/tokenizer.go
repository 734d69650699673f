package tokenizer

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/streamtok/charset"
)

// LexUnitHandler receives every lexical unit in input order. The unit and
// everything it references are only valid until the handler returns.
type LexUnitHandler func(unit *LexUnit)

// Tokenizer is a streaming HTML tokenizer. Input is fed in chunks of any
// size; the units produced don't depend on where the chunks are split, apart
// from how the raw bytes of a unit are attributed to the chunk that
// completes it.
type Tokenizer struct {
	handler LexUnitHandler
	log     *logrus.Entry
	decoder Decoder

	maxBufferSize int
	textFlushSize int
	allowCDATA    bool
	scripting     bool

	currentState tokenizerState
	textType     TextType
	finished     bool
	inText       bool
	eofEmitted   bool
	err          error

	cursor inputCursor
	chunk  Chunk
	// carry holds the bytes of the previous chunk that weren't emitted yet,
	// work the concatenation of carry and the chunk being tokenized.
	carry []byte
	work  []byte

	// emitted is the offset of the first byte not covered by a raw range,
	// markupStart the offset of the '<' (or ']') that may open markup.
	emitted     int
	markupStart int

	tokenBuilder     tokenBuilder
	seq              SequenceMatcher
	seqKind          sequenceKind
	lastStartTagHash TagNameHash

	view  TokenView
	unit  LexUnit
	trace bool
}

// New returns a tokenizer in the data state that passes every lexical unit
// to handler.
func New(handler LexUnitHandler, opts ...Option) *Tokenizer {
	t := &Tokenizer{
		handler:      handler,
		currentState: dataState,
		textType:     DataText,
	}
	defaultOptions(t)
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetState switches the text parsing mode. It is meant to be called between
// chunks or from the handler of a tag unit; the switch applies from the next
// byte on. A Character unit is emitted once the bytes after it have been
// read, so calls from its handler are ignored.
func (t *Tokenizer) SetState(tt TextType) {
	if t.inText {
		t.log.WithField("text_type", tt).Warn("text type can't change while handling a character unit")
		return
	}
	t.setTextType(tt)
	t.log.WithField("text_type", tt).Debug("text type set")
}

// SetLastStartTagNameHash sets the hash used to decide whether an end tag in
// RCDATA, RAWTEXT or script data is appropriate. Emitting a start tag
// overwrites it.
func (t *Tokenizer) SetLastStartTagNameHash(h TagNameHash) {
	t.lastStartTagHash = h
}

// SetAllowCDATA sets whether <![CDATA[ opens a CDATA section. A tree builder
// allows it while the adjusted current node is foreign content; otherwise
// the declaration is a bogus comment.
func (t *Tokenizer) SetAllowCDATA(allow bool) {
	t.allowCDATA = allow
}

// TokenizeChunk tokenizes chunk, invoking the handler for every unit that
// completes within it. Bytes of an unfinished unit are kept until the next
// call. After the last chunk the tokenizer is finished.
func (t *Tokenizer) TokenizeChunk(chunk Chunk) error {
	if t.err != nil {
		return t.err
	}
	if t.finished {
		return ErrFinished
	}

	input := chunk.data
	resumeAt := len(t.carry)
	if resumeAt > 0 {
		t.work = append(append(t.work[:0], t.carry...), chunk.data...)
		input = t.work
	}
	t.chunk = Chunk{data: input, last: chunk.last}
	t.cursor.init(input, resumeAt, chunk.last)
	t.trace = t.log.Logger.IsLevelEnabled(logrus.TraceLevel)

	for {
		c, ok := t.cursor.consume()
		if !ok {
			break
		}
		t.processByte(c, false)
	}

	if t.cursor.isLastChunkEnd() {
		t.processByte(0, true)
		if !t.eofEmitted {
			panic(errors.Errorf("end of input reached in %s without emitting EOF", t.currentState))
		}
		t.finished = true
		t.carry = t.carry[:0]
		t.chunk = Chunk{}
		t.log.WithField("bytes", len(input)).Debug("input finished")
		return nil
	}
	return t.suspend()
}

// Finish signals the end of input.
func (t *Tokenizer) Finish() error {
	return t.TokenizeChunk(NewLastChunk(nil))
}

func (t *Tokenizer) processByte(c byte, eof bool) {
	reconsume := true
	for reconsume {
		reconsume, t.currentState = t.stateToParser(t.currentState)(c, eof)
		if t.trace {
			t.log.Tracef("[TOKEN]byte: %q, eof: %t, mode: %s", c, eof, t.currentState)
		}
	}
}

// suspend keeps the bytes that aren't part of an emitted unit and rebases
// every pending range onto them.
func (t *Tokenizer) suspend() error {
	t.flushText()
	pending := t.chunk.data[t.emitted:]
	if t.maxBufferSize > 0 && len(pending) > t.maxBufferSize {
		t.err = errors.Wrapf(ErrBufferExceeded, "%d bytes pending in %s, limit is %d",
			len(pending), t.currentState, t.maxBufferSize)
		return t.err
	}
	t.carry = append(t.carry[:0], pending...)

	n := t.emitted
	t.emitted = 0
	t.markupStart -= n
	t.tokenBuilder.shift(n)
	t.chunk = Chunk{}

	t.log.WithFields(logrus.Fields{
		"carried": len(t.carry),
		"state":   t.currentState,
	}).Debug("chunk suspended")
	return nil
}

// flushText emits the pending part of a long text run at the end of a chunk.
// Bytes that may still start markup stay pending, as do a trailing CR, an
// unfinished character reference and a partial character.
func (t *Tokenizer) flushText() {
	var end int
	switch t.currentState {
	case dataState, rcDataState, rawTextState, plaintextState, cdataSectionState,
		scriptDataState, scriptDataEscapedState, scriptDataEscapedDashState, scriptDataEscapedDashDashState,
		scriptDataDoubleEscapedState, scriptDataDoubleEscapedDashState, scriptDataDoubleEscapedDashDashState,
		scriptDataDoubleEscapedLessThanSignState, scriptDataDoubleEscapeEndState:
		end = t.chunk.Len()
	case tagOpenState, endTagOpenState,
		rcDataLessThanSignState, rcDataEndTagOpenState, rcDataEndTagNameState,
		rawTextLessThanSignState, rawTextEndTagOpenState, rawTextEndTagNameState,
		scriptDataLessThanSignState, scriptDataEndTagOpenState, scriptDataEndTagNameState,
		scriptDataEscapeStartState, scriptDataEscapeStartDashState,
		scriptDataEscapedLessThanSignState, scriptDataEscapedEndTagOpenState, scriptDataEscapedEndTagNameState,
		scriptDataDoubleEscapeStartState, cdataSectionBracketState, cdataSectionEndState:
		end = t.markupStart
	default:
		return
	}
	limit := t.textFlushSize
	if t.maxBufferSize > 0 && (limit <= 0 || t.maxBufferSize < limit) {
		limit = t.maxBufferSize
	}
	if limit <= 0 || end-t.emitted < limit {
		return
	}
	t.emitText(t.emitted + t.textBoundary(t.chunk.data[t.emitted:end]))
}

// textBoundary returns how much of the text run b can be emitted without
// changing what it decodes to.
func (t *Tokenizer) textBoundary(b []byte) int {
	if d, ok := t.decoder.(textBoundary); ok {
		b = b[:d.Boundary(b)]
	} else {
		b = b[:charset.ASCIIBoundary(b)]
	}
	if t.textType.allowsCharacterReferences() {
		b = b[:referenceBoundary(b)]
	}
	if n := len(b); n > 0 && b[n-1] == '\r' {
		b = b[:n-1]
	}
	return len(b)
}

// longestReference bounds the name of a character reference, semicolon
// included.
const longestReference = 32

// referenceBoundary cuts b before a trailing character reference that the
// following bytes could still extend.
func referenceBoundary(b []byte) int {
	i := bytes.LastIndexByte(b, '&')
	if i < 0 || len(b)-i > longestReference {
		return len(b)
	}
	for _, c := range b[i+1:] {
		if !isASCIIAlphanumeric(c) && c != '#' {
			return len(b)
		}
	}
	return i
}

func (t *Tokenizer) setTextType(tt TextType) {
	t.textType = tt
	t.currentState = tt.entryState()
}

// here is the offset of the byte being processed. At end of input it is the
// length of the chunk.
func (t *Tokenizer) here() int {
	return t.cursor.cur
}

func (t *Tokenizer) emit(view *TokenView, end int) {
	t.unit = LexUnit{
		chunk:   t.chunk,
		raw:     Range{Start: t.emitted, End: end},
		hasRaw:  true,
		view:    view,
		decoder: t.decoder,
	}
	t.emitted = end
	t.handler(&t.unit)
}

// emitText emits the pending bytes before end as a character run of the
// current text type.
func (t *Tokenizer) emitText(end int) {
	if end <= t.emitted {
		return
	}
	t.tokenBuilder.CharacterToken(&t.view, t.textType)
	t.view.Text = Range{Start: t.emitted, End: end}
	t.inText = true
	t.emit(&t.view, end)
	t.inText = false
}

// emitRaw emits the pending bytes before end without a token, for input
// that produces none.
func (t *Tokenizer) emitRaw(end int) {
	if end <= t.emitted {
		return
	}
	t.emit(nil, end)
}

// emitCurrentTag emits the tag under construction, which ends with the
// current byte, and returns the state to continue in. A start tag may switch
// the text type; the handler can override the switch with SetState.
func (t *Tokenizer) emitCurrentTag() tokenizerState {
	switch t.tokenBuilder.curTagType {
	case startTag:
		t.tokenBuilder.StartTagToken(&t.view)
		t.lastStartTagHash = t.tokenBuilder.nameHash
		if tt, ok := textTypeForStartTag(t.lastStartTagHash, t.scripting); ok {
			t.setTextType(tt)
		} else {
			t.setTextType(DataText)
		}
	case endTag:
		t.tokenBuilder.EndTagToken(&t.view)
		t.setTextType(DataText)
	}
	t.emit(&t.view, t.here()+1)
	return t.currentState
}

// emitComment emits a comment whose text ends at textEnd and whose raw bytes
// end at end.
func (t *Tokenizer) emitComment(textEnd, end int) tokenizerState {
	t.tokenBuilder.CommentToken(&t.view, textEnd)
	t.setTextType(DataText)
	t.emit(&t.view, end)
	return t.currentState
}

func (t *Tokenizer) emitDoctype(end int) tokenizerState {
	t.tokenBuilder.DocTypeToken(&t.view)
	t.setTextType(DataText)
	t.emit(&t.view, end)
	return t.currentState
}

// emitDroppedTag covers a tag cut short by the end of input with a raw-only
// unit and emits EOF.
func (t *Tokenizer) emitDroppedTag() (bool, tokenizerState) {
	t.emitRaw(t.here())
	return t.emitEndOfFile()
}

// emitTextAndEndOfFile flushes the pending text and emits EOF.
func (t *Tokenizer) emitTextAndEndOfFile() (bool, tokenizerState) {
	t.emitText(t.here())
	return t.emitEndOfFile()
}

func (t *Tokenizer) emitEndOfFile() (bool, tokenizerState) {
	if t.emitted != t.chunk.Len() {
		panic(errors.Errorf("%d bytes not emitted at end of input in %s",
			t.chunk.Len()-t.emitted, t.currentState))
	}
	t.tokenBuilder.EndOfFileToken(&t.view)
	t.unit = LexUnit{chunk: t.chunk, view: &t.view, decoder: t.decoder}
	t.eofEmitted = true
	t.handler(&t.unit)
	return false, t.currentState
}
