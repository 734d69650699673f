package tokenizer

// TokenType identifies the variant of a TokenView or Token.
type TokenType uint8

const (
	CharacterToken TokenType = iota
	CommentToken
	StartTagToken
	EndTagToken
	DoctypeToken
	EOFToken
)

func (t TokenType) String() string {
	switch t {
	case CharacterToken:
		return "Character"
	case CommentToken:
		return "Comment"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case DoctypeToken:
		return "Doctype"
	case EOFToken:
		return "EOF"
	}
	return "Invalid"
}

// AttributeView is an attribute of a tag under construction as two ranges
// into the current chunk.
type AttributeView struct {
	Name  Range
	Value Range
}

func (a *AttributeView) shift(n int) {
	a.Name.shift(n)
	a.Value.shift(n)
}

// TokenView describes a parsed construct by ranges into the chunk that
// produced it. Which fields are meaningful depends on TokenType:
//
//	CharacterToken: TextType, Text (the same bytes as the raw range)
//	CommentToken:   Text
//	StartTagToken:  Name, NameHash, Attributes, SelfClosing
//	EndTagToken:    Name, NameHash
//	DoctypeToken:   DoctypeName, PublicID, SystemID, ForceQuirks
//	EOFToken:       nothing
//
// A TokenView is only valid inside the callback it was passed to.
type TokenView struct {
	TokenType TokenType
	TextType  TextType

	Text Range

	Name        Range
	NameHash    TagNameHash
	Attributes  []AttributeView
	SelfClosing bool

	DoctypeName OptionalRange
	PublicID    OptionalRange
	SystemID    OptionalRange
	ForceQuirks bool
}
