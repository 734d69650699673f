package tokenizer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stateMachineTestCase struct {
	inByte            byte           // the byte to pass to the startingState
	startingState     tokenizerState // the state to start from
	shouldReconsume   bool           // the expectation if the next state should reconsume
	nextExpectedState tokenizerState // the next state
}

// TestStateParsers checks that each state returns the expected next state for
// a byte. Flows that depend on earlier input are covered by the scenario
// tests instead.
func TestStateParsers(t *testing.T) {
	stateParserTests := []stateMachineTestCase{
		{'<', dataState, false, tagOpenState},
		{'\x00', dataState, false, dataState},
		{'a', dataState, false, dataState},
		{'&', dataState, false, dataState},
		{'<', rcDataState, false, rcDataLessThanSignState},
		{'a', rcDataState, false, rcDataState},
		{'<', rawTextState, false, rawTextLessThanSignState},
		{'a', rawTextState, false, rawTextState},
		{'<', scriptDataState, false, scriptDataLessThanSignState},
		{'a', scriptDataState, false, scriptDataState},
		{'<', plaintextState, false, plaintextState},
		{'a', plaintextState, false, plaintextState},

		{'!', tagOpenState, false, markupDeclarationOpenState},
		{'/', tagOpenState, false, endTagOpenState},
		{'a', tagOpenState, true, tagNameState},
		{'Z', tagOpenState, true, tagNameState},
		{'?', tagOpenState, true, bogusCommentState},
		{'1', tagOpenState, true, dataState},
		{' ', tagOpenState, true, dataState},
		{'a', endTagOpenState, true, tagNameState},
		{'>', endTagOpenState, false, dataState},
		{'1', endTagOpenState, true, bogusCommentState},
		{' ', tagNameState, false, beforeAttributeNameState},
		{'\n', tagNameState, false, beforeAttributeNameState},
		{'/', tagNameState, false, selfClosingStartTagState},
		{'>', tagNameState, false, dataState},
		{'a', tagNameState, false, tagNameState},
		{'\x00', tagNameState, false, tagNameState},

		{'/', rcDataLessThanSignState, false, rcDataEndTagOpenState},
		{'a', rcDataLessThanSignState, true, rcDataState},
		{'a', rcDataEndTagOpenState, true, rcDataEndTagNameState},
		{'1', rcDataEndTagOpenState, true, rcDataState},
		{'a', rcDataEndTagNameState, false, rcDataEndTagNameState},
		{' ', rcDataEndTagNameState, true, rcDataState},
		{'>', rcDataEndTagNameState, true, rcDataState},
		{'1', rcDataEndTagNameState, true, rcDataState},
		{'/', rawTextLessThanSignState, false, rawTextEndTagOpenState},
		{'a', rawTextLessThanSignState, true, rawTextState},
		{'a', rawTextEndTagOpenState, true, rawTextEndTagNameState},
		{'1', rawTextEndTagOpenState, true, rawTextState},
		{'A', rawTextEndTagNameState, false, rawTextEndTagNameState},
		{'/', rawTextEndTagNameState, true, rawTextState},

		{'/', scriptDataLessThanSignState, false, scriptDataEndTagOpenState},
		{'!', scriptDataLessThanSignState, false, scriptDataEscapeStartState},
		{'a', scriptDataLessThanSignState, true, scriptDataState},
		{'a', scriptDataEndTagOpenState, true, scriptDataEndTagNameState},
		{'!', scriptDataEndTagOpenState, true, scriptDataState},
		{'s', scriptDataEndTagNameState, false, scriptDataEndTagNameState},
		{'>', scriptDataEndTagNameState, true, scriptDataState},
		{'-', scriptDataEscapeStartState, false, scriptDataEscapeStartDashState},
		{'a', scriptDataEscapeStartState, true, scriptDataState},
		{'-', scriptDataEscapeStartDashState, false, scriptDataEscapedDashDashState},
		{'a', scriptDataEscapeStartDashState, true, scriptDataState},
		{'-', scriptDataEscapedState, false, scriptDataEscapedDashState},
		{'<', scriptDataEscapedState, false, scriptDataEscapedLessThanSignState},
		{'a', scriptDataEscapedState, false, scriptDataEscapedState},
		{'-', scriptDataEscapedDashState, false, scriptDataEscapedDashDashState},
		{'<', scriptDataEscapedDashState, false, scriptDataEscapedLessThanSignState},
		{'a', scriptDataEscapedDashState, false, scriptDataEscapedState},
		{'-', scriptDataEscapedDashDashState, false, scriptDataEscapedDashDashState},
		{'<', scriptDataEscapedDashDashState, false, scriptDataEscapedLessThanSignState},
		{'>', scriptDataEscapedDashDashState, false, scriptDataState},
		{'a', scriptDataEscapedDashDashState, false, scriptDataEscapedState},
		{'/', scriptDataEscapedLessThanSignState, false, scriptDataEscapedEndTagOpenState},
		{'s', scriptDataEscapedLessThanSignState, true, scriptDataDoubleEscapeStartState},
		{'1', scriptDataEscapedLessThanSignState, true, scriptDataEscapedState},
		{'a', scriptDataEscapedEndTagOpenState, true, scriptDataEscapedEndTagNameState},
		{'1', scriptDataEscapedEndTagOpenState, true, scriptDataEscapedState},
		{'a', scriptDataEscapedEndTagNameState, false, scriptDataEscapedEndTagNameState},
		{' ', scriptDataEscapedEndTagNameState, true, scriptDataEscapedState},
		{' ', scriptDataDoubleEscapeStartState, false, scriptDataEscapedState},
		{'S', scriptDataDoubleEscapeStartState, false, scriptDataDoubleEscapeStartState},
		{'1', scriptDataDoubleEscapeStartState, true, scriptDataEscapedState},
		{'-', scriptDataDoubleEscapedState, false, scriptDataDoubleEscapedDashState},
		{'<', scriptDataDoubleEscapedState, false, scriptDataDoubleEscapedLessThanSignState},
		{'a', scriptDataDoubleEscapedState, false, scriptDataDoubleEscapedState},
		{'-', scriptDataDoubleEscapedDashState, false, scriptDataDoubleEscapedDashDashState},
		{'<', scriptDataDoubleEscapedDashState, false, scriptDataDoubleEscapedLessThanSignState},
		{'a', scriptDataDoubleEscapedDashState, false, scriptDataDoubleEscapedState},
		{'-', scriptDataDoubleEscapedDashDashState, false, scriptDataDoubleEscapedDashDashState},
		{'>', scriptDataDoubleEscapedDashDashState, false, scriptDataState},
		{'a', scriptDataDoubleEscapedDashDashState, false, scriptDataDoubleEscapedState},
		{'/', scriptDataDoubleEscapedLessThanSignState, false, scriptDataDoubleEscapeEndState},
		{'a', scriptDataDoubleEscapedLessThanSignState, true, scriptDataDoubleEscapedState},
		{'>', scriptDataDoubleEscapeEndState, false, scriptDataDoubleEscapedState},
		{'t', scriptDataDoubleEscapeEndState, false, scriptDataDoubleEscapeEndState},
		{'1', scriptDataDoubleEscapeEndState, true, scriptDataDoubleEscapedState},

		{' ', beforeAttributeNameState, false, beforeAttributeNameState},
		{'/', beforeAttributeNameState, true, afterAttributeNameState},
		{'>', beforeAttributeNameState, true, afterAttributeNameState},
		{'=', beforeAttributeNameState, false, attributeNameState},
		{'a', beforeAttributeNameState, true, attributeNameState},
		{' ', attributeNameState, true, afterAttributeNameState},
		{'/', attributeNameState, true, afterAttributeNameState},
		{'=', attributeNameState, false, beforeAttributeValueState},
		{'"', attributeNameState, false, attributeNameState},
		{'a', attributeNameState, false, attributeNameState},
		{' ', afterAttributeNameState, false, afterAttributeNameState},
		{'/', afterAttributeNameState, false, selfClosingStartTagState},
		{'=', afterAttributeNameState, false, beforeAttributeValueState},
		{'>', afterAttributeNameState, false, dataState},
		{'a', afterAttributeNameState, true, attributeNameState},
		{' ', beforeAttributeValueState, false, beforeAttributeValueState},
		{'"', beforeAttributeValueState, false, attributeValueDoubleQuotedState},
		{'\'', beforeAttributeValueState, false, attributeValueSingleQuotedState},
		{'>', beforeAttributeValueState, false, dataState},
		{'a', beforeAttributeValueState, true, attributeValueUnquotedState},
		{'"', attributeValueDoubleQuotedState, false, afterAttributeValueQuotedState},
		{'\'', attributeValueDoubleQuotedState, false, attributeValueDoubleQuotedState},
		{'\'', attributeValueSingleQuotedState, false, afterAttributeValueQuotedState},
		{'"', attributeValueSingleQuotedState, false, attributeValueSingleQuotedState},
		{' ', attributeValueUnquotedState, false, beforeAttributeNameState},
		{'>', attributeValueUnquotedState, false, dataState},
		{'"', attributeValueUnquotedState, false, attributeValueUnquotedState},
		{' ', afterAttributeValueQuotedState, false, beforeAttributeNameState},
		{'/', afterAttributeValueQuotedState, false, selfClosingStartTagState},
		{'>', afterAttributeValueQuotedState, false, dataState},
		{'a', afterAttributeValueQuotedState, true, beforeAttributeNameState},
		{'>', selfClosingStartTagState, false, dataState},
		{'a', selfClosingStartTagState, true, beforeAttributeNameState},

		{'>', bogusCommentState, false, dataState},
		{'a', bogusCommentState, false, bogusCommentState},
		{'-', markupDeclarationOpenState, false, sequenceMatchState},
		{'d', markupDeclarationOpenState, false, sequenceMatchState},
		{'D', markupDeclarationOpenState, false, sequenceMatchState},
		{'[', markupDeclarationOpenState, false, sequenceMatchState},
		{'a', markupDeclarationOpenState, true, bogusCommentState},
		{'-', commentStartState, false, commentStartDashState},
		{'>', commentStartState, false, dataState},
		{'a', commentStartState, true, commentState},
		{'-', commentStartDashState, false, commentEndState},
		{'>', commentStartDashState, false, dataState},
		{'a', commentStartDashState, true, commentState},
		{'<', commentState, false, commentLessThanSignState},
		{'-', commentState, false, commentEndDashState},
		{'a', commentState, false, commentState},
		{'!', commentLessThanSignState, false, commentLessThanSignBangState},
		{'<', commentLessThanSignState, false, commentLessThanSignState},
		{'a', commentLessThanSignState, true, commentState},
		{'-', commentLessThanSignBangState, false, commentLessThanSignBangDashState},
		{'a', commentLessThanSignBangState, true, commentState},
		{'-', commentLessThanSignBangDashState, false, commentLessThanSignBangDashDashState},
		{'a', commentLessThanSignBangDashState, true, commentEndDashState},
		{'>', commentLessThanSignBangDashDashState, true, commentEndState},
		{'a', commentLessThanSignBangDashDashState, true, commentEndState},
		{'-', commentEndDashState, false, commentEndState},
		{'a', commentEndDashState, true, commentState},
		{'>', commentEndState, false, dataState},
		{'!', commentEndState, false, commentEndBangState},
		{'-', commentEndState, false, commentEndState},
		{'a', commentEndState, true, commentState},
		{'-', commentEndBangState, false, commentEndDashState},
		{'>', commentEndBangState, false, dataState},
		{'a', commentEndBangState, true, commentState},

		{' ', doctypeState, false, beforeDoctypeNameState},
		{'>', doctypeState, true, beforeDoctypeNameState},
		{'a', doctypeState, true, beforeDoctypeNameState},
		{' ', beforeDoctypeNameState, false, beforeDoctypeNameState},
		{'>', beforeDoctypeNameState, false, dataState},
		{'h', beforeDoctypeNameState, false, doctypeNameState},
		{' ', doctypeNameState, false, afterDoctypeNameState},
		{'>', doctypeNameState, false, dataState},
		{'a', doctypeNameState, false, doctypeNameState},
		{' ', afterDoctypeNameState, false, afterDoctypeNameState},
		{'>', afterDoctypeNameState, false, dataState},
		{'p', afterDoctypeNameState, false, sequenceMatchState},
		{'S', afterDoctypeNameState, false, sequenceMatchState},
		{'a', afterDoctypeNameState, true, bogusDoctypeState},
		{' ', afterDoctypePublicKeywordState, false, beforeDoctypePublicIdentifierState},
		{'"', afterDoctypePublicKeywordState, false, doctypePublicIdentifierDoubleQuotedState},
		{'\'', afterDoctypePublicKeywordState, false, doctypePublicIdentifierSingleQuotedState},
		{'>', afterDoctypePublicKeywordState, false, dataState},
		{'a', afterDoctypePublicKeywordState, true, bogusDoctypeState},
		{' ', beforeDoctypePublicIdentifierState, false, beforeDoctypePublicIdentifierState},
		{'"', beforeDoctypePublicIdentifierState, false, doctypePublicIdentifierDoubleQuotedState},
		{'\'', beforeDoctypePublicIdentifierState, false, doctypePublicIdentifierSingleQuotedState},
		{'>', beforeDoctypePublicIdentifierState, false, dataState},
		{'a', beforeDoctypePublicIdentifierState, true, bogusDoctypeState},
		{'"', doctypePublicIdentifierDoubleQuotedState, false, afterDoctypePublicIdentifierState},
		{'>', doctypePublicIdentifierDoubleQuotedState, false, dataState},
		{'a', doctypePublicIdentifierDoubleQuotedState, false, doctypePublicIdentifierDoubleQuotedState},
		{'\'', doctypePublicIdentifierSingleQuotedState, false, afterDoctypePublicIdentifierState},
		{'>', doctypePublicIdentifierSingleQuotedState, false, dataState},
		{'"', doctypePublicIdentifierSingleQuotedState, false, doctypePublicIdentifierSingleQuotedState},
		{' ', afterDoctypePublicIdentifierState, false, betweenDoctypePublicAndSystemIdentifiersState},
		{'>', afterDoctypePublicIdentifierState, false, dataState},
		{'"', afterDoctypePublicIdentifierState, false, doctypeSystemIdentifierDoubleQuotedState},
		{'\'', afterDoctypePublicIdentifierState, false, doctypeSystemIdentifierSingleQuotedState},
		{'a', afterDoctypePublicIdentifierState, true, bogusDoctypeState},
		{' ', betweenDoctypePublicAndSystemIdentifiersState, false, betweenDoctypePublicAndSystemIdentifiersState},
		{'>', betweenDoctypePublicAndSystemIdentifiersState, false, dataState},
		{'"', betweenDoctypePublicAndSystemIdentifiersState, false, doctypeSystemIdentifierDoubleQuotedState},
		{'a', betweenDoctypePublicAndSystemIdentifiersState, true, bogusDoctypeState},
		{' ', afterDoctypeSystemKeywordState, false, beforeDoctypeSystemIdentifierState},
		{'"', afterDoctypeSystemKeywordState, false, doctypeSystemIdentifierDoubleQuotedState},
		{'>', afterDoctypeSystemKeywordState, false, dataState},
		{'a', afterDoctypeSystemKeywordState, true, bogusDoctypeState},
		{'\'', beforeDoctypeSystemIdentifierState, false, doctypeSystemIdentifierSingleQuotedState},
		{'a', beforeDoctypeSystemIdentifierState, true, bogusDoctypeState},
		{'"', doctypeSystemIdentifierDoubleQuotedState, false, afterDoctypeSystemIdentifierState},
		{'>', doctypeSystemIdentifierDoubleQuotedState, false, dataState},
		{'\'', doctypeSystemIdentifierSingleQuotedState, false, afterDoctypeSystemIdentifierState},
		{'a', doctypeSystemIdentifierSingleQuotedState, false, doctypeSystemIdentifierSingleQuotedState},
		{' ', afterDoctypeSystemIdentifierState, false, afterDoctypeSystemIdentifierState},
		{'>', afterDoctypeSystemIdentifierState, false, dataState},
		{'a', afterDoctypeSystemIdentifierState, true, bogusDoctypeState},
		{'>', bogusDoctypeState, false, dataState},
		{'a', bogusDoctypeState, false, bogusDoctypeState},

		{']', cdataSectionState, false, cdataSectionBracketState},
		{'a', cdataSectionState, false, cdataSectionState},
		{']', cdataSectionBracketState, false, cdataSectionEndState},
		{'a', cdataSectionBracketState, true, cdataSectionState},
		{']', cdataSectionEndState, false, cdataSectionEndState},
		{'>', cdataSectionEndState, false, dataState},
		{'a', cdataSectionEndState, true, cdataSectionState},
	}

	for _, tt := range stateParserTests {
		runStateParserTest(tt, t)
	}
}

// helper function to parallelize the above test case
func runStateParserTest(testcase stateMachineTestCase, t *testing.T) {
	testName := fmt.Sprintf("%s-%q", testcase.startingState, testcase.inByte)
	t.Run(testName, func(t *testing.T) {
		t.Parallel()
		p := newSingleByteTokenizer(testcase.inByte)
		reconsume, state := p.stateToParser(testcase.startingState)(testcase.inByte, false)
		assert.Equal(t, testcase.nextExpectedState, state)
		assert.Equal(t, testcase.shouldReconsume, reconsume)
	})
}

// newSingleByteTokenizer returns a tokenizer positioned on c, with an
// attribute open so the attribute states have one to update.
func newSingleByteTokenizer(c byte) *Tokenizer {
	p := New(func(*LexUnit) {})
	p.chunk = NewChunk([]byte{c})
	p.cursor.init(p.chunk.data, 0, false)
	p.cursor.consume()
	p.tokenBuilder.attributes.startName(0)
	return p
}

func TestEveryStateHasAParser(t *testing.T) {
	for s := dataState; s < numStates; s++ {
		assert.NotNil(t, newSingleByteTokenizer('a').stateToParser(s), s.String())
		assert.NotEmpty(t, stateNames[s], "state %d has no name", s)
	}
}

// TestEndOfInputInEveryState makes sure every state reaches EOF from the
// end of input, covering all pending bytes with raw ranges.
func TestEndOfInputInEveryState(t *testing.T) {
	for s := dataState; s < numStates; s++ {
		s := s
		t.Run(s.String(), func(t *testing.T) {
			var units []*TokenView
			var raw []byte
			p := New(func(u *LexUnit) {
				raw = append(raw, u.Raw()...)
				units = append(units, u.TokenView())
			})
			p.tokenBuilder.attributes.startName(0)
			p.seq = sequences[commentOpenSequence]
			p.currentState = s
			assert.NotPanics(t, func() {
				assert.NoError(t, p.TokenizeChunk(NewLastChunk(nil)))
			})
			if assert.NotEmpty(t, units) {
				last := units[len(units)-1]
				if assert.NotNil(t, last) {
					assert.Equal(t, EOFToken, last.TokenType)
				}
			}
			assert.Empty(t, raw)
		})
	}
}
