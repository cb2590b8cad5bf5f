// Package vartext renders text templates by substituting variable references,
// keeping exact source positions so every error points at its origin:
//
//	unknown variable `user` at line 3, column 12
//
// # Basic Usage
//
//	out, err := vartext.Render(ctx, "Hello, {{name}}!", vartext.MapResolver{
//	    "name": "World",
//	})
//	// out: "Hello, World!"
//
// # Template Syntax
//
// Variables are delimited with {{ and }} (see WithDelimiters):
//
//	{{ name }}             plain reference, dotted paths allowed: {{ user.name }}
//	{{ name | fallback }}  fallback text when the name is unknown
//	{{ ...items }}         spread reference, renders a list value
//
// Whitespace between the delimiters and the name is ignored. Text outside
// variables is reproduced with its original spacing and line breaks.
//
// # Pipeline
//
// Rendering runs four stages, each taking ownership of the previous stage's
// output: Tokenize, Parse, Substitute and Generate. The Engine exposes each
// stage for callers that want to inspect intermediate results.
//
// # Error Handling
//
// Render returns either the complete output or an error, never partial
// output. Structural problems are reported as *ParseError and stop at the
// first one. Resolution problems are collected for the whole template and
// returned together as SubstitutionErrors:
//
//	var serrs vartext.SubstitutionErrors
//	if errors.As(err, &serrs) {
//	    for _, e := range serrs {
//	        fmt.Println(e.Name, e.Span, e.Reason)
//	    }
//	}
//
// # Configuration
//
//	engine, _ := vartext.New(
//	    vartext.WithDelimiters("<%", "%>"),
//	    vartext.WithPlaceholder(nil),
//	    vartext.WithLogger(logger),
//	)
package vartext

import (
	"context"

	"github.com/itsatony/go-vartext/internal"
)

// Data model shared by the pipeline stages.
type (
	// Span is a single-line source range. Lines are 1-indexed, columns
	// 0-indexed and counted in runes; EndCol is exclusive.
	Span = internal.Span
	// Position is a point in a text layout.
	Position = internal.Position
	// Token is a Word or Punctuation unit with its span.
	Token = internal.Token
	// TokenKind identifies the variant of a Token.
	TokenKind = internal.TokenKind
	// Symbol is a Word, Punctuation or Variable unit produced by the parser.
	Symbol = internal.Symbol
	// WordSymbol is a word passed through the parser.
	WordSymbol = internal.WordSymbol
	// PunctuationSymbol is a punctuation mark passed through the parser.
	PunctuationSymbol = internal.PunctuationSymbol
	// Variable is a recognized variable reference.
	Variable = internal.VariableSymbol
	// VariableKind distinguishes plain, default and spread references.
	VariableKind = internal.VariableKind
	// TokenStream is the tokenizer's output.
	TokenStream = internal.TokenStream
	// SymbolStream is the parser's output.
	SymbolStream = internal.SymbolStream
	// OutputStream is the substitutor's output.
	OutputStream = internal.OutputStream
	// Slot records where a variable was substituted.
	Slot = internal.Slot
)

// Token kinds
const (
	TokenWord        = internal.TokenWord
	TokenPunctuation = internal.TokenPunctuation
)

// Variable kinds
const (
	KindPlain   = internal.KindPlain
	KindDefault = internal.KindDefault
	KindSpread  = internal.KindSpread
)

var defaultEngine = MustNew()

// Render renders template with the default engine.
func Render(ctx context.Context, template string, resolver NameResolver) (string, error) {
	return defaultEngine.Render(ctx, template, resolver)
}
