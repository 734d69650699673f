package tokenizer

import (
	"github.com/pkg/errors"
)

// TagNameHash is a case-insensitive hash of a tag name. Every character
// takes five bits, so names of up to twelve characters drawn from ASCII
// letters and the digits 1-6 hash without collisions. Anything else hashes
// to NoHash, which never equals another hash.
type TagNameHash uint64

// NoHash is the hash of names that can't be represented.
const NoHash TagNameHash = 1<<64 - 1

// maxHashedLen is how many five bit groups fit in 64 bits.
const maxHashedLen = 12

// HashTagName hashes a raw tag name.
func HashTagName(name []byte) TagNameHash {
	var h TagNameHash
	for _, c := range name {
		h = h.update(c)
	}
	if h == 0 {
		return NoHash
	}
	return h
}

// HashTagNameString hashes a tag name given as a string.
func HashTagNameString(name string) TagNameHash {
	return HashTagName([]byte(name))
}

// IsValid reports whether h identifies a name.
func (h TagNameHash) IsValid() bool {
	return h != NoHash && h != 0
}

// update folds one more name byte into the hash. Digits map to 0-5 and
// letters to 6-31; a name has to start with a letter so its leading group
// is never zero and the length stays recoverable from the value.
func (h TagNameHash) update(c byte) TagNameHash {
	if h == NoHash {
		return NoHash
	}
	var code TagNameHash
	switch {
	case 'a' <= c && c <= 'z':
		code = TagNameHash(c-'a') + 6
	case 'A' <= c && c <= 'Z':
		code = TagNameHash(c-'A') + 6
	case '1' <= c && c <= '6' && h != 0:
		code = TagNameHash(c - '1')
	default:
		return NoHash
	}
	if h>>((maxHashedLen-1)*5) != 0 {
		return NoHash
	}
	return h<<5 | code
}

// builtinTagNames are the HTML element names the tokenizer knows by hash.
var builtinTagNames = []string{
	"a", "abbr", "acronym", "address", "applet", "area", "article", "aside", "audio",
	"b", "base", "basefont", "bdi", "bdo", "bgsound", "big", "blink", "blockquote", "body", "br", "button",
	"canvas", "caption", "center", "cite", "code", "col", "colgroup",
	"data", "datalist", "dd", "del", "desc", "details", "dfn", "dialog", "dir", "div", "dl", "dt",
	"em", "embed",
	"fieldset", "figcaption", "figure", "font", "footer", "form", "frame", "frameset",
	"h1", "h2", "h3", "h4", "h5", "h6", "head", "header", "hgroup", "hr", "html",
	"i", "iframe", "image", "img", "input", "ins", "isindex",
	"kbd", "keygen",
	"label", "legend", "li", "link", "listing",
	"main", "malignmark", "map", "mark", "marquee", "math", "menu", "menuitem", "meta", "meter", "mglyph", "mi", "mn", "mo", "ms", "mtext",
	"nav", "nobr", "noembed", "noframes", "noscript",
	"object", "ol", "optgroup", "option", "output",
	"p", "param", "picture", "plaintext", "pre", "progress",
	"q",
	"rb", "rp", "rt", "rtc", "ruby",
	"s", "samp", "script", "search", "section", "select", "slot", "small", "source", "span", "strike", "strong", "style", "sub", "summary", "sup", "svg",
	"table", "tbody", "td", "template", "textarea", "tfoot", "th", "thead", "time", "title", "tr", "track", "tt",
	"u", "ul",
	"var", "video",
	"wbr",
	"xmp",
}

var builtinTagsByHash = func() map[TagNameHash]string {
	m := make(map[TagNameHash]string, len(builtinTagNames))
	for _, name := range builtinTagNames {
		h := HashTagNameString(name)
		if !h.IsValid() {
			panic(errors.Errorf("built-in tag name %q has no hash", name))
		}
		if prev, ok := m[h]; ok {
			panic(errors.Errorf("built-in tag names %q and %q share hash %#x", prev, name, uint64(h)))
		}
		m[h] = name
	}
	return m
}()

// LookupTagName returns the built-in element name with hash h.
func LookupTagName(h TagNameHash) (string, bool) {
	name, ok := builtinTagsByHash[h]
	return name, ok
}

var (
	iframeTag    = HashTagNameString("iframe")
	noembedTag   = HashTagNameString("noembed")
	noframesTag  = HashTagNameString("noframes")
	noscriptTag  = HashTagNameString("noscript")
	plaintextTag = HashTagNameString("plaintext")
	scriptTag    = HashTagNameString("script")
	styleTag     = HashTagNameString("style")
	textareaTag  = HashTagNameString("textarea")
	titleTag     = HashTagNameString("title")
	xmpTag       = HashTagNameString("xmp")
)

// textTypeForStartTag returns the text parsing mode that follows a start tag
// and whether the tag switches away from ordinary markup at all.
func textTypeForStartTag(h TagNameHash, scripting bool) (TextType, bool) {
	switch h {
	case textareaTag, titleTag:
		return RCDataText, true
	case styleTag, xmpTag, iframeTag, noembedTag, noframesTag:
		return RawText, true
	case noscriptTag:
		if scripting {
			return RawText, true
		}
	case scriptTag:
		return ScriptDataText, true
	case plaintextTag:
		return PlainText, true
	}
	return DataText, false
}
