package tokenizer

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/tdewolff/parse/v2"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attribute is a decoded attribute of a start tag.
type Attribute struct {
	Name  string
	Value string
}

// Token is an owned, decoded copy of a TokenView. Unlike the view it may be
// kept after the handler returns.
type Token struct {
	TokenType TokenType
	// TagName is the lower-cased tag name and DataAtom its atom, or zero for
	// names without one.
	TagName     string
	DataAtom    atom.Atom
	Attributes  []Attribute
	SelfClosing bool
	// Data is the text of a Character or Comment token.
	Data string

	// DOCTYPE fields are nil when missing, as opposed to empty.
	DoctypeName      *string
	PublicIdentifier *string
	SystemIdentifier *string
	ForceQuirks      bool
}

func (t Token) tagString() string {
	if len(t.Attributes) == 0 {
		return t.TagName
	}
	buf := bytes.NewBufferString(t.TagName)
	for _, a := range t.Attributes {
		buf.WriteByte(' ')
		buf.WriteString(a.Name)
		buf.WriteString(`="`)
		buf.WriteString(html.EscapeString(a.Value))
		buf.WriteByte('"')
	}
	return buf.String()
}

func (t Token) String() string {
	switch t.TokenType {
	case CharacterToken:
		return html.EscapeString(t.Data)
	case StartTagToken:
		if t.SelfClosing {
			return "<" + t.tagString() + "/>"
		}
		return "<" + t.tagString() + ">"
	case EndTagToken:
		return "</" + t.tagString() + ">"
	case CommentToken:
		return "<!--" + t.Data + "-->"
	case DoctypeToken:
		var b strings.Builder
		b.WriteString("<!DOCTYPE")
		if t.DoctypeName != nil {
			b.WriteString(" " + *t.DoctypeName)
		}
		if t.PublicIdentifier != nil {
			b.WriteString(` PUBLIC "` + *t.PublicIdentifier + `"`)
		}
		if t.SystemIdentifier != nil {
			if t.PublicIdentifier == nil {
				b.WriteString(" SYSTEM")
			}
			b.WriteString(` "` + *t.SystemIdentifier + `"`)
		}
		b.WriteByte('>')
		return b.String()
	case EOFToken:
		return ""
	}
	return "Invalid(" + strconv.Itoa(int(t.TokenType)) + ")"
}

// materializer decodes the ranges of a view into strings, remembering
// whether any of them were malformed.
type materializer struct {
	chunk     Chunk
	decoder   Decoder
	malformed bool
}

func (m *materializer) token(v *TokenView, raw Range, hasRaw bool) *Token {
	tok := &Token{TokenType: v.TokenType}
	switch v.TokenType {
	case CharacterToken:
		if !hasRaw {
			panic(errors.New("character token without raw bytes"))
		}
		tok.Data = m.text(raw, v.TextType)
	case CommentToken:
		tok.Data = normalizeNewlines(replaceNUL(m.decode(v.Text)))
	case StartTagToken:
		tok.TagName = m.name(v.Name)
		tok.DataAtom = atom.Lookup([]byte(tok.TagName))
		tok.SelfClosing = v.SelfClosing
		if len(v.Attributes) > 0 {
			tok.Attributes = make([]Attribute, len(v.Attributes))
			for i, a := range v.Attributes {
				tok.Attributes[i] = Attribute{
					Name:  m.name(a.Name),
					Value: unescapeAttribute(normalizeNewlines(replaceNUL(m.decode(a.Value)))),
				}
			}
		}
	case EndTagToken:
		tok.TagName = m.name(v.Name)
		tok.DataAtom = atom.Lookup([]byte(tok.TagName))
	case DoctypeToken:
		if r, ok := v.DoctypeName.Get(); ok {
			name := m.name(r)
			tok.DoctypeName = &name
		}
		if r, ok := v.PublicID.Get(); ok {
			id := normalizeNewlines(replaceNUL(m.decode(r)))
			tok.PublicIdentifier = &id
		}
		if r, ok := v.SystemID.Get(); ok {
			id := normalizeNewlines(replaceNUL(m.decode(r)))
			tok.SystemIdentifier = &id
		}
		tok.ForceQuirks = v.ForceQuirks
	}
	return tok
}

func (m *materializer) decode(r Range) string {
	b := m.chunk.Slice(r)
	if len(b) == 0 {
		return ""
	}
	s, hadErrors := m.decoder.Decode(b)
	if hadErrors {
		m.malformed = true
	}
	return s
}

// name decodes a tag, attribute or DOCTYPE name. Only ASCII letters are
// lower-cased.
func (m *materializer) name(r Range) string {
	b := []byte(replaceNUL(m.decode(r)))
	return string(parse.ToLower(b))
}

func (m *materializer) text(r Range, tt TextType) string {
	s := normalizeNewlines(m.decode(r))
	if tt != DataText && tt != CDATASectionText {
		s = replaceNUL(s)
	}
	if tt.allowsCharacterReferences() {
		s = html.UnescapeString(s)
	}
	return s
}

// unescapeAttribute decodes the character references of an attribute value.
// A named reference that only matches a prefix of the name written, or that
// has no semicolon and is followed by '=', stays as written.
func unescapeAttribute(s string) string {
	if strings.IndexByte(s, '&') < 0 {
		return s
	}
	var b strings.Builder
	last := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '&' {
			continue
		}
		j := i + 1
		for j < len(s) && isASCIIAlphanumeric(s[j]) {
			j++
		}
		if j == i+1 {
			// numeric or no reference at all
			continue
		}
		semicolon := j < len(s) && s[j] == ';'
		if semicolon {
			j++
		}
		ref := s[i:j]
		decoded := html.UnescapeString(ref)
		if semicolon {
			// a prefix match leaves the rest of the name and the ';'
			n := len(decoded)
			if n < 2 || decoded[n-1] != ';' || !isASCIIAlphanumeric(decoded[n-2]) {
				continue
			}
		}
		if !semicolon && utf8.RuneCountInString(decoded) == 1 && (j == len(s) || s[j] != '=') {
			continue
		}
		b.WriteString(html.UnescapeString(s[last:i]))
		b.WriteString(ref)
		last = j
		i = j - 1
	}
	b.WriteString(html.UnescapeString(s[last:]))
	return b.String()
}

func replaceNUL(s string) string {
	if strings.IndexByte(s, 0) < 0 {
		return s
	}
	return strings.ReplaceAll(s, "\x00", "�")
}

func normalizeNewlines(s string) string {
	if strings.IndexByte(s, '\r') < 0 {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
