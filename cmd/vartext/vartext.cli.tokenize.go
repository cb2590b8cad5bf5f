package main

import (
	"fmt"
	"io"

	"github.com/itsatony/go-vartext"
)

// tokenizeOptions holds parsed tokenize command configuration
type tokenizeOptions struct {
	Template string `short:"t" long:"template" description:"Template file (- for stdin)" default:"-"`
	Format   string `short:"F" long:"format" description:"Output format" choice:"text" choice:"json" default:"text"`
}

// tokenOutput represents JSON output for one token. Columns are 0-indexed.
type tokenOutput struct {
	Kind     string `json:"kind"`
	Text     string `json:"text"`
	Line     int    `json:"line"`
	StartCol int    `json:"start_col"`
	EndCol   int    `json:"end_col"`
}

func runTokenize(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts tokenizeOptions
	if code, ok := parseArgs(CmdNameTokenize, HelpTokenizeUsage, &opts, args, stdout, stderr); !ok {
		return code
	}

	source, err := readInput(opts.Template, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	tokens := vartext.MustNew().Tokenize(string(source)).Tokens()

	if opts.Format == OutputFormatJSON {
		output := make([]tokenOutput, 0, len(tokens))
		for _, tok := range tokens {
			output = append(output, tokenOutput{
				Kind:     tok.Kind.String(),
				Text:     tok.Text,
				Line:     tok.Span.Line,
				StartCol: tok.Span.StartCol,
				EndCol:   tok.Span.EndCol,
			})
		}
		if err := dumpJSON(stdout, output); err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
			return ExitCodeError
		}
		return ExitCodeSuccess
	}

	for _, tok := range tokens {
		fmt.Fprintf(stdout, TokenTextFormat, tok.Span.Line, tok.Span.StartCol, tok.Span.EndCol, tok.Kind, tok.Text)
	}
	return ExitCodeSuccess
}
