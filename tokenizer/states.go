package tokenizer

// a parserStateHandler takes the current byte and whether the input has
// ended, and returns whether the byte has to be reconsumed along with the
// state to transition to.
type parserStateHandler func(c byte, eof bool) (bool, tokenizerState)

type tokenizerState uint8

const (
	dataState tokenizerState = iota
	rcDataState
	rawTextState
	scriptDataState
	plaintextState
	tagOpenState
	endTagOpenState
	tagNameState
	rcDataLessThanSignState
	rcDataEndTagOpenState
	rcDataEndTagNameState
	rawTextLessThanSignState
	rawTextEndTagOpenState
	rawTextEndTagNameState
	scriptDataLessThanSignState
	scriptDataEndTagOpenState
	scriptDataEndTagNameState
	scriptDataEscapeStartState
	scriptDataEscapeStartDashState
	scriptDataEscapedState
	scriptDataEscapedDashState
	scriptDataEscapedDashDashState
	scriptDataEscapedLessThanSignState
	scriptDataEscapedEndTagOpenState
	scriptDataEscapedEndTagNameState
	scriptDataDoubleEscapeStartState
	scriptDataDoubleEscapedState
	scriptDataDoubleEscapedDashState
	scriptDataDoubleEscapedDashDashState
	scriptDataDoubleEscapedLessThanSignState
	scriptDataDoubleEscapeEndState
	beforeAttributeNameState
	attributeNameState
	afterAttributeNameState
	beforeAttributeValueState
	attributeValueDoubleQuotedState
	attributeValueSingleQuotedState
	attributeValueUnquotedState
	afterAttributeValueQuotedState
	selfClosingStartTagState
	bogusCommentState
	markupDeclarationOpenState
	sequenceMatchState
	commentStartState
	commentStartDashState
	commentState
	commentLessThanSignState
	commentLessThanSignBangState
	commentLessThanSignBangDashState
	commentLessThanSignBangDashDashState
	commentEndDashState
	commentEndState
	commentEndBangState
	doctypeState
	beforeDoctypeNameState
	doctypeNameState
	afterDoctypeNameState
	afterDoctypePublicKeywordState
	beforeDoctypePublicIdentifierState
	doctypePublicIdentifierDoubleQuotedState
	doctypePublicIdentifierSingleQuotedState
	afterDoctypePublicIdentifierState
	betweenDoctypePublicAndSystemIdentifiersState
	afterDoctypeSystemKeywordState
	beforeDoctypeSystemIdentifierState
	doctypeSystemIdentifierDoubleQuotedState
	doctypeSystemIdentifierSingleQuotedState
	afterDoctypeSystemIdentifierState
	bogusDoctypeState
	cdataSectionState
	cdataSectionBracketState
	cdataSectionEndState
	numStates
)

var stateNames = [numStates]string{
	dataState:                                     "dataState",
	rcDataState:                                   "rcDataState",
	rawTextState:                                  "rawTextState",
	scriptDataState:                               "scriptDataState",
	plaintextState:                                "plaintextState",
	tagOpenState:                                  "tagOpenState",
	endTagOpenState:                               "endTagOpenState",
	tagNameState:                                  "tagNameState",
	rcDataLessThanSignState:                       "rcDataLessThanSignState",
	rcDataEndTagOpenState:                         "rcDataEndTagOpenState",
	rcDataEndTagNameState:                         "rcDataEndTagNameState",
	rawTextLessThanSignState:                      "rawTextLessThanSignState",
	rawTextEndTagOpenState:                        "rawTextEndTagOpenState",
	rawTextEndTagNameState:                        "rawTextEndTagNameState",
	scriptDataLessThanSignState:                   "scriptDataLessThanSignState",
	scriptDataEndTagOpenState:                     "scriptDataEndTagOpenState",
	scriptDataEndTagNameState:                     "scriptDataEndTagNameState",
	scriptDataEscapeStartState:                    "scriptDataEscapeStartState",
	scriptDataEscapeStartDashState:                "scriptDataEscapeStartDashState",
	scriptDataEscapedState:                        "scriptDataEscapedState",
	scriptDataEscapedDashState:                    "scriptDataEscapedDashState",
	scriptDataEscapedDashDashState:                "scriptDataEscapedDashDashState",
	scriptDataEscapedLessThanSignState:            "scriptDataEscapedLessThanSignState",
	scriptDataEscapedEndTagOpenState:              "scriptDataEscapedEndTagOpenState",
	scriptDataEscapedEndTagNameState:              "scriptDataEscapedEndTagNameState",
	scriptDataDoubleEscapeStartState:              "scriptDataDoubleEscapeStartState",
	scriptDataDoubleEscapedState:                  "scriptDataDoubleEscapedState",
	scriptDataDoubleEscapedDashState:              "scriptDataDoubleEscapedDashState",
	scriptDataDoubleEscapedDashDashState:          "scriptDataDoubleEscapedDashDashState",
	scriptDataDoubleEscapedLessThanSignState:      "scriptDataDoubleEscapedLessThanSignState",
	scriptDataDoubleEscapeEndState:                "scriptDataDoubleEscapeEndState",
	beforeAttributeNameState:                      "beforeAttributeNameState",
	attributeNameState:                            "attributeNameState",
	afterAttributeNameState:                       "afterAttributeNameState",
	beforeAttributeValueState:                     "beforeAttributeValueState",
	attributeValueDoubleQuotedState:               "attributeValueDoubleQuotedState",
	attributeValueSingleQuotedState:               "attributeValueSingleQuotedState",
	attributeValueUnquotedState:                   "attributeValueUnquotedState",
	afterAttributeValueQuotedState:                "afterAttributeValueQuotedState",
	selfClosingStartTagState:                      "selfClosingStartTagState",
	bogusCommentState:                             "bogusCommentState",
	markupDeclarationOpenState:                    "markupDeclarationOpenState",
	sequenceMatchState:                            "sequenceMatchState",
	commentStartState:                             "commentStartState",
	commentStartDashState:                         "commentStartDashState",
	commentState:                                  "commentState",
	commentLessThanSignState:                      "commentLessThanSignState",
	commentLessThanSignBangState:                  "commentLessThanSignBangState",
	commentLessThanSignBangDashState:              "commentLessThanSignBangDashState",
	commentLessThanSignBangDashDashState:          "commentLessThanSignBangDashDashState",
	commentEndDashState:                           "commentEndDashState",
	commentEndState:                               "commentEndState",
	commentEndBangState:                           "commentEndBangState",
	doctypeState:                                  "doctypeState",
	beforeDoctypeNameState:                        "beforeDoctypeNameState",
	doctypeNameState:                              "doctypeNameState",
	afterDoctypeNameState:                         "afterDoctypeNameState",
	afterDoctypePublicKeywordState:                "afterDoctypePublicKeywordState",
	beforeDoctypePublicIdentifierState:            "beforeDoctypePublicIdentifierState",
	doctypePublicIdentifierDoubleQuotedState:      "doctypePublicIdentifierDoubleQuotedState",
	doctypePublicIdentifierSingleQuotedState:      "doctypePublicIdentifierSingleQuotedState",
	afterDoctypePublicIdentifierState:             "afterDoctypePublicIdentifierState",
	betweenDoctypePublicAndSystemIdentifiersState: "betweenDoctypePublicAndSystemIdentifiersState",
	afterDoctypeSystemKeywordState:                "afterDoctypeSystemKeywordState",
	beforeDoctypeSystemIdentifierState:            "beforeDoctypeSystemIdentifierState",
	doctypeSystemIdentifierDoubleQuotedState:      "doctypeSystemIdentifierDoubleQuotedState",
	doctypeSystemIdentifierSingleQuotedState:      "doctypeSystemIdentifierSingleQuotedState",
	afterDoctypeSystemIdentifierState:             "afterDoctypeSystemIdentifierState",
	bogusDoctypeState:                             "bogusDoctypeState",
	cdataSectionState:                             "cdataSectionState",
	cdataSectionBracketState:                      "cdataSectionBracketState",
	cdataSectionEndState:                          "cdataSectionEndState",
}

func (s tokenizerState) String() string {
	if s < numStates {
		return stateNames[s]
	}
	return "invalidState"
}

func (t *Tokenizer) stateToParser(state tokenizerState) parserStateHandler {
	switch state {
	case dataState:
		return t.dataStateParser
	case rcDataState:
		return t.rcDataStateParser
	case rawTextState:
		return t.rawTextStateParser
	case scriptDataState:
		return t.scriptDataStateParser
	case plaintextState:
		return t.plaintextStateParser
	case tagOpenState:
		return t.tagOpenStateParser
	case endTagOpenState:
		return t.endTagOpenStateParser
	case tagNameState:
		return t.tagNameStateParser
	case rcDataLessThanSignState:
		return t.rcDataLessThanSignStateParser
	case rcDataEndTagOpenState:
		return t.rcDataEndTagOpenStateParser
	case rcDataEndTagNameState:
		return t.rcDataEndTagNameStateParser
	case rawTextLessThanSignState:
		return t.rawTextLessThanSignStateParser
	case rawTextEndTagOpenState:
		return t.rawTextEndTagOpenStateParser
	case rawTextEndTagNameState:
		return t.rawTextEndTagNameStateParser
	case scriptDataLessThanSignState:
		return t.scriptDataLessThanSignStateParser
	case scriptDataEndTagOpenState:
		return t.scriptDataEndTagOpenStateParser
	case scriptDataEndTagNameState:
		return t.scriptDataEndTagNameStateParser
	case scriptDataEscapeStartState:
		return t.scriptDataEscapeStartStateParser
	case scriptDataEscapeStartDashState:
		return t.scriptDataEscapeStartDashStateParser
	case scriptDataEscapedState:
		return t.scriptDataEscapedStateParser
	case scriptDataEscapedDashState:
		return t.scriptDataEscapedDashStateParser
	case scriptDataEscapedDashDashState:
		return t.scriptDataEscapedDashDashStateParser
	case scriptDataEscapedLessThanSignState:
		return t.scriptDataEscapedLessThanSignStateParser
	case scriptDataEscapedEndTagOpenState:
		return t.scriptDataEscapedEndTagOpenStateParser
	case scriptDataEscapedEndTagNameState:
		return t.scriptDataEscapedEndTagNameStateParser
	case scriptDataDoubleEscapeStartState:
		return t.scriptDataDoubleEscapeStartStateParser
	case scriptDataDoubleEscapedState:
		return t.scriptDataDoubleEscapedStateParser
	case scriptDataDoubleEscapedDashState:
		return t.scriptDataDoubleEscapedDashStateParser
	case scriptDataDoubleEscapedDashDashState:
		return t.scriptDataDoubleEscapedDashDashStateParser
	case scriptDataDoubleEscapedLessThanSignState:
		return t.scriptDataDoubleEscapedLessThanSignStateParser
	case scriptDataDoubleEscapeEndState:
		return t.scriptDataDoubleEscapeEndStateParser
	case beforeAttributeNameState:
		return t.beforeAttributeNameStateParser
	case attributeNameState:
		return t.attributeNameStateParser
	case afterAttributeNameState:
		return t.afterAttributeNameStateParser
	case beforeAttributeValueState:
		return t.beforeAttributeValueStateParser
	case attributeValueDoubleQuotedState:
		return t.attributeValueDoubleQuotedStateParser
	case attributeValueSingleQuotedState:
		return t.attributeValueSingleQuotedStateParser
	case attributeValueUnquotedState:
		return t.attributeValueUnquotedStateParser
	case afterAttributeValueQuotedState:
		return t.afterAttributeValueQuotedStateParser
	case selfClosingStartTagState:
		return t.selfClosingStartTagStateParser
	case bogusCommentState:
		return t.bogusCommentStateParser
	case markupDeclarationOpenState:
		return t.markupDeclarationOpenStateParser
	case sequenceMatchState:
		return t.sequenceMatchStateParser
	case commentStartState:
		return t.commentStartStateParser
	case commentStartDashState:
		return t.commentStartDashStateParser
	case commentState:
		return t.commentStateParser
	case commentLessThanSignState:
		return t.commentLessThanSignStateParser
	case commentLessThanSignBangState:
		return t.commentLessThanSignBangStateParser
	case commentLessThanSignBangDashState:
		return t.commentLessThanSignBangDashStateParser
	case commentLessThanSignBangDashDashState:
		return t.commentLessThanSignBangDashDashStateParser
	case commentEndDashState:
		return t.commentEndDashStateParser
	case commentEndState:
		return t.commentEndStateParser
	case commentEndBangState:
		return t.commentEndBangStateParser
	case doctypeState:
		return t.doctypeStateParser
	case beforeDoctypeNameState:
		return t.beforeDoctypeNameStateParser
	case doctypeNameState:
		return t.doctypeNameStateParser
	case afterDoctypeNameState:
		return t.afterDoctypeNameStateParser
	case afterDoctypePublicKeywordState:
		return t.afterDoctypePublicKeywordStateParser
	case beforeDoctypePublicIdentifierState:
		return t.beforeDoctypePublicIdentifierStateParser
	case doctypePublicIdentifierDoubleQuotedState:
		return t.doctypePublicIdentifierDoubleQuotedStateParser
	case doctypePublicIdentifierSingleQuotedState:
		return t.doctypePublicIdentifierSingleQuotedStateParser
	case afterDoctypePublicIdentifierState:
		return t.afterDoctypePublicIdentifierStateParser
	case betweenDoctypePublicAndSystemIdentifiersState:
		return t.betweenDoctypePublicAndSystemIdentifiersStateParser
	case afterDoctypeSystemKeywordState:
		return t.afterDoctypeSystemKeywordStateParser
	case beforeDoctypeSystemIdentifierState:
		return t.beforeDoctypeSystemIdentifierStateParser
	case doctypeSystemIdentifierDoubleQuotedState:
		return t.doctypeSystemIdentifierDoubleQuotedStateParser
	case doctypeSystemIdentifierSingleQuotedState:
		return t.doctypeSystemIdentifierSingleQuotedStateParser
	case afterDoctypeSystemIdentifierState:
		return t.afterDoctypeSystemIdentifierStateParser
	case bogusDoctypeState:
		return t.bogusDoctypeStateParser
	case cdataSectionState:
		return t.cdataSectionStateParser
	case cdataSectionBracketState:
		return t.cdataSectionBracketStateParser
	case cdataSectionEndState:
		return t.cdataSectionEndStateParser
	}

	return nil
}
