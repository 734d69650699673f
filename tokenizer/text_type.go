package tokenizer

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
)

// TextType is the text parsing mode of the tokenizer. It selects the entry
// state when tokenization starts or resumes, and it tells a Character token
// how its text should be interpreted.
type TextType uint8

const (
	// DataText is ordinary markup content.
	DataText TextType = iota
	// PlainText is the content of <plaintext>: everything up to EOF.
	PlainText
	// RCDataText is the content of <textarea> and <title>: no tags, but
	// character references are decoded.
	RCDataText
	// RawText is the content of <style>, <xmp> and friends.
	RawText
	// ScriptDataText is the content of <script>.
	ScriptDataText
	// CDATASectionText is the content of <![CDATA[ ... ]]>.
	CDATASectionText
)

var textTypeNames = [...]string{
	DataText:         "Data state",
	PlainText:        "PLAINTEXT state",
	RCDataText:       "RCDATA state",
	RawText:          "RAWTEXT state",
	ScriptDataText:   "Script data state",
	CDATASectionText: "CDATA section state",
}

func (t TextType) String() string {
	if int(t) < len(textTypeNames) {
		return textTypeNames[t]
	}
	return "Invalid"
}

// allowsCharacterReferences reports whether character references in text
// of this type are decoded.
func (t TextType) allowsCharacterReferences() bool {
	return t == DataText || t == RCDataText
}

// entryState maps the text type onto the state the machine starts in.
func (t TextType) entryState() tokenizerState {
	switch t {
	case PlainText:
		return plaintextState
	case RCDataText:
		return rcDataState
	case RawText:
		return rawTextState
	case ScriptDataText:
		return scriptDataState
	case CDATASectionText:
		return cdataSectionState
	}
	return dataState
}

var textTypeLabels = map[string]TextType{
	"data":          DataText,
	"plaintext":     PlainText,
	"rcdata":        RCDataText,
	"rawtext":       RawText,
	"script_data":   ScriptDataText,
	"cdata_section": CDATASectionText,
}

// ParseTextType converts a state label such as "Script data state",
// "RCDATA", "script-data" or "cdataSection" into a TextType.
func ParseTextType(label string) (TextType, error) {
	key := strcase.ToSnake(strings.TrimSpace(label))
	key = strings.TrimSuffix(key, "_state")
	if tt, ok := textTypeLabels[key]; ok {
		return tt, nil
	}
	return DataText, errors.Errorf("unknown tokenizer state %q", label)
}
