package tokenizer

type tagType uint8

const (
	startTag tagType = iota
	endTag
)

// tokenBuilder builds the range-based view of the token under construction.
// It never copies input: every field is an offset into the current chunk,
// rebased by shift when the pending bytes move to the next chunk.
type tokenBuilder struct {
	curTagType  tagType
	name        Range
	nameHash    TagNameHash
	attributes  attributeBuffer
	selfClosing bool

	// data is the text of a comment. dataEnd is where the text stops if the
	// dashes seen last turn out to close the comment.
	data    Range
	dataEnd int

	doctypeName OptionalRange
	publicID    OptionalRange
	systemID    OptionalRange
	forceQuirks bool

	// tempHash stands in for the temporary buffer of the script data double
	// escape states: only its hash is ever compared.
	tempHash TagNameHash
}

// Reset clears everything but the temporary buffer.
func (t *tokenBuilder) Reset() {
	t.name = Range{}
	t.nameHash = 0
	t.attributes.reset()
	t.selfClosing = false
	t.data = Range{}
	t.dataEnd = 0
	t.doctypeName = OptionalRange{}
	t.publicID = OptionalRange{}
	t.systemID = OptionalRange{}
	t.forceQuirks = false
}

// StartTag begins a tag whose name starts at pos.
func (t *tokenBuilder) StartTag(tt tagType, pos int) {
	t.Reset()
	t.curTagType = tt
	t.name = Range{Start: pos, End: pos}
}

// WriteName folds one byte of the tag name into its hash.
func (t *tokenBuilder) WriteName(c byte) {
	t.nameHash = t.nameHash.update(c)
}

// EndName closes the tag name just before pos.
func (t *tokenBuilder) EndName(pos int) {
	t.name.End = pos
}

// EnableSelfClosing changes the self-closing flag to "set".
func (t *tokenBuilder) EnableSelfClosing() {
	t.selfClosing = true
}

// EnableForceQuirks changes the force-quirks flag to "set".
func (t *tokenBuilder) EnableForceQuirks() {
	t.forceQuirks = true
}

// StartData begins comment text at pos.
func (t *tokenBuilder) StartData(pos int) {
	t.Reset()
	t.data = Range{Start: pos, End: pos}
	t.dataEnd = pos
}

// MarkDataEnd records where the comment text ends should the bytes from
// pos on close the comment.
func (t *tokenBuilder) MarkDataEnd(pos int) {
	t.dataEnd = pos
}

// StartDoctype clears the builder for a new DOCTYPE.
func (t *tokenBuilder) StartDoctype() {
	t.Reset()
}

func (t *tokenBuilder) StartDoctypeName(pos int) {
	t.doctypeName.set(pos)
}

func (t *tokenBuilder) EndDoctypeName(pos int) {
	t.doctypeName.End = pos
}

// WritePublicIdentifierEmpty marks the public identifier as present and
// starting at pos.
func (t *tokenBuilder) WritePublicIdentifierEmpty(pos int) {
	t.publicID.set(pos)
}

func (t *tokenBuilder) EndPublicIdentifier(pos int) {
	t.publicID.End = pos
}

// WriteSystemIdentifierEmpty marks the system identifier as present and
// starting at pos.
func (t *tokenBuilder) WriteSystemIdentifierEmpty(pos int) {
	t.systemID.set(pos)
}

func (t *tokenBuilder) EndSystemIdentifier(pos int) {
	t.systemID.End = pos
}

// ResetTempBuffer clears the temporary buffer.
func (t *tokenBuilder) ResetTempBuffer() {
	t.tempHash = 0
}

// WriteTempBuffer appends a byte to the temporary buffer.
func (t *tokenBuilder) WriteTempBuffer(c byte) {
	t.tempHash = t.tempHash.update(c)
}

// TempBufferIs reports whether the temporary buffer holds the name with
// hash h.
func (t *tokenBuilder) TempBufferIs(h TagNameHash) bool {
	return t.tempHash.IsValid() && t.tempHash == h
}

// StartTagToken fills v with the start tag under construction.
func (t *tokenBuilder) StartTagToken(v *TokenView) {
	*v = TokenView{
		TokenType:   StartTagToken,
		Name:        t.name,
		NameHash:    t.nameHash,
		Attributes:  t.attributes.items,
		SelfClosing: t.selfClosing,
	}
}

// EndTagToken fills v with the end tag under construction. Attributes and
// the self-closing flag of end tags are dropped.
func (t *tokenBuilder) EndTagToken(v *TokenView) {
	*v = TokenView{
		TokenType: EndTagToken,
		Name:      t.name,
		NameHash:  t.nameHash,
	}
}

// CommentToken fills v with a comment whose text ends at end.
func (t *tokenBuilder) CommentToken(v *TokenView, end int) {
	*v = TokenView{
		TokenType: CommentToken,
		Text:      Range{Start: t.data.Start, End: end},
	}
}

// DocTypeToken fills v with the DOCTYPE under construction.
func (t *tokenBuilder) DocTypeToken(v *TokenView) {
	*v = TokenView{
		TokenType:   DoctypeToken,
		DoctypeName: t.doctypeName,
		PublicID:    t.publicID,
		SystemID:    t.systemID,
		ForceQuirks: t.forceQuirks,
	}
}

// CharacterToken fills v with a character run of the given text type.
func (t *tokenBuilder) CharacterToken(v *TokenView, tt TextType) {
	*v = TokenView{
		TokenType: CharacterToken,
		TextType:  tt,
	}
}

// EndOfFileToken fills v with the end-of-file token.
func (t *tokenBuilder) EndOfFileToken(v *TokenView) {
	*v = TokenView{TokenType: EOFToken}
}

func (t *tokenBuilder) shift(n int) {
	t.name.shift(n)
	t.attributes.shift(n)
	t.data.shift(n)
	t.dataEnd -= n
	t.doctypeName.shift(n)
	t.publicID.shift(n)
	t.systemID.shift(n)
}
