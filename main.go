package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/heathj/streamtok/charset"
	"github.com/heathj/streamtok/tokenizer"
)

func checkError(e error) {
	// "value of 1 prints details of caller of Output," so value of 2 for caller of checkError
	if e != nil {
		log.Output(2, e.Error())
		os.Exit(1)
	}
}

var (
	initialState  string
	lastStartTag  string
	encodingName  string
	chunkSize     int
	jsonOutput    bool
	verbose       bool
	allowCDATA    bool
	scripting     bool
	textFlushSize int
)

func init() {
	trace.Flags().StringVarP(&initialState, "state", "s", "Data state",
		"initial state (Data state|PLAINTEXT state|RCDATA state|RAWTEXT state|Script data state|CDATA section state)")
	trace.Flags().StringVarP(&lastStartTag, "last-start-tag", "t", "", "last start tag name")
	trace.Flags().StringVar(&encodingName, "encoding", "utf-8", "encoding label the input is converted to before tokenizing")
	trace.Flags().IntVar(&chunkSize, "chunk-size", 0, "feed the input in chunks of this many bytes (0 means a single chunk)")
	trace.Flags().BoolVar(&jsonOutput, "json", false, "print one JSON object per lexical unit")
	trace.Flags().BoolVarP(&verbose, "verbose", "v", false, "log tokenizer state transitions to stderr")
	trace.Flags().BoolVar(&allowCDATA, "cdata", false, "recognize CDATA sections")
	trace.Flags().BoolVar(&scripting, "scripting", false, "tokenize <noscript> as RAWTEXT")
	trace.Flags().IntVar(&textFlushSize, "text-flush-size", 4096, "emit pending text at a chunk end once it reaches this many bytes (0 keeps text runs whole)")
}

// unitRecord is the JSON form of a lexical unit.
type unitRecord struct {
	Offset int                  `json:"offset"`
	Line   int                  `json:"line"`
	Col    int                  `json:"col"`
	Type   string               `json:"type,omitempty"`
	Raw    *string              `json:"raw,omitempty"`
	View   *tokenizer.TokenView `json:"view,omitempty"`
	Token  *tokenizer.Token     `json:"token,omitempty"`
	Error  string               `json:"error,omitempty"`
}

type tracer struct {
	enc    *charset.Encoding
	offset int
	// line and col are where the next unit starts.
	line, col int
	afterCR   bool
}

// advance moves the position past the decoded text of a unit. CRLF counts as
// one line break, also when a unit boundary falls between the two.
func (tr *tracer) advance(text string) {
	for _, r := range text {
		switch {
		case r == '\n' && tr.afterCR:
		case r == '\n' || r == '\r':
			tr.line++
			tr.col = 1
		default:
			tr.col++
		}
		tr.afterCR = r == '\r'
	}
}

func (tr *tracer) handle(u *tokenizer.LexUnit) {
	rec := unitRecord{Offset: tr.offset, Line: tr.line, Col: tr.col}

	if raw := u.Raw(); raw != nil {
		s, _ := tr.enc.Decode(raw)
		rec.Raw = &s
		tr.offset += len(raw)
		tr.advance(s)
	}
	if view := u.TokenView(); view != nil {
		v := *view
		rec.View = &v
		rec.Type = view.TokenType.String()
		tok, err := u.Token()
		if err != nil {
			rec.Error = err.Error()
		}
		rec.Token = tok
	}

	if jsonOutput {
		checkError(json.MarshalWrite(os.Stdout, rec, jsontext.WithIndent("  ")))
		fmt.Println()
		return
	}

	fmt.Println("------------------")
	if rec.View != nil {
		fmt.Printf("Token view: %+v\n\n", *rec.View)
	}
	if rec.Token != nil {
		fmt.Printf("Token: %+v\n", *rec.Token)
	}
	if rec.Error != "" {
		fmt.Printf("Error: %s\n", rec.Error)
	}
	if rec.Raw != nil {
		fmt.Printf("\nRaw: `%s` at %d:%d\n", *rec.Raw, rec.Line, rec.Col)
	}
	fmt.Println()
}

func readInput(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	b, err := io.ReadAll(os.Stdin)
	return string(b), errors.Wrap(err, "reading stdin")
}

// feed tokenizes input in chunks of size bytes, or as one chunk if size isn't
// positive, and finishes the tokenizer.
func feed(tok *tokenizer.Tokenizer, input []byte, size int) error {
	if size <= 0 {
		size = len(input)
	}
	for len(input) > 0 {
		n := size
		if n > len(input) {
			n = len(input)
		}
		if err := tok.TokenizeChunk(tokenizer.NewChunk(input[:n])); err != nil {
			return err
		}
		input = input[n:]
	}
	return tok.Finish()
}

var trace = cobra.Command{
	Use:   "trace [flags] [INPUT|-]",
	Short: "print every lexical unit the tokenizer emits for INPUT (or stdin)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input, err := readInput(args)
		checkError(err)

		tt, err := tokenizer.ParseTextType(initialState)
		checkError(err)

		enc, err := charset.Lookup(encodingName)
		checkError(err)
		encoded, err := enc.Prepare(input)
		checkError(err)

		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.WarnLevel)
		if verbose {
			logger.SetLevel(logrus.TraceLevel)
		}

		tr := &tracer{enc: enc, line: 1, col: 1}
		tok := tokenizer.New(tr.handle,
			tokenizer.WithLogger(logger),
			tokenizer.WithEncoding(enc),
			tokenizer.WithAllowCDATA(allowCDATA),
			tokenizer.WithScripting(scripting),
			tokenizer.WithTextFlushSize(textFlushSize),
		)
		tok.SetState(tt)
		if lastStartTag != "" {
			tok.SetLastStartTagNameHash(tokenizer.HashTagNameString(lastStartTag))
		}

		checkError(feed(tok, encoded, chunkSize))
	},
}

func main() {
	checkError(trace.Execute())
}
