package internal

import (
	"fmt"
	"unicode/utf8"
)

// Span is a half-open range [StartCol, EndCol) on a single source line.
// Lines are 1-indexed, columns are 0-indexed and counted in runes.
type Span struct {
	Line     int
	StartCol int
	EndCol   int
}

// NewSpan creates a span on the given line
func NewSpan(line, start, end int) Span {
	return Span{Line: line, StartCol: start, EndCol: end}
}

// String returns a human-readable location. Columns are displayed 1-indexed.
func (s Span) String() string {
	return fmt.Sprintf("line %d, column %d", s.Line, s.StartCol+1)
}

// Width returns the number of columns covered by the span
func (s Span) Width() int {
	return s.EndCol - s.StartCol
}

// IsZero reports whether the span is unset
func (s Span) IsZero() bool {
	return s == Span{}
}

// Start returns the position of the first column of the span
func (s Span) Start() Position {
	return Position{Line: s.Line, Col: s.StartCol}
}

// End returns the position just past the span
func (s Span) End() Position {
	return Position{Line: s.Line, Col: s.EndCol}
}

// Union returns the smallest span covering both a and b.
// Both spans must be on the same line.
func Union(a, b Span) Span {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	return Span{
		Line:     a.Line,
		StartCol: min(a.StartCol, b.StartCol),
		EndCol:   max(a.EndCol, b.EndCol),
	}
}

// Adjacent reports whether b starts exactly where a ends on the same line
func Adjacent(a, b Span) bool {
	return a.Line == b.Line && a.EndCol == b.StartCol
}

// Position is a point in a text layout
type Position struct {
	Line int // 1-indexed
	Col  int // 0-indexed, in runes
}

// Before reports whether p comes strictly before q
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Col < q.Col
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is a Word or a Punctuation mark tagged with its source span.
// Synthetic tokens come from substituted text: Span describes their layout
// within the replacement and Origin is the span of the replaced variable.
type Token struct {
	Kind      TokenKind
	Text      string
	Span      Span
	Origin    Span
	Synthetic bool
}

// NewWordToken creates a word token
func NewWordToken(text string, span Span) Token {
	return Token{Kind: TokenWord, Text: text, Span: span}
}

// NewPunctuationToken creates a punctuation token for a single rune
func NewPunctuationToken(r rune, span Span) Token {
	return Token{Kind: TokenPunctuation, Text: string(r), Span: span}
}

// Rune returns the punctuation character, or utf8.RuneError for words
func (t Token) Rune() rune {
	if t.Kind != TokenPunctuation {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(t.Text)
	return r
}

// IsPunct reports whether the token is the punctuation mark r
func (t Token) IsPunct(r rune) bool {
	return t.Kind == TokenPunctuation && t.Rune() == r
}

// IsWord returns true if this is a word token
func (t Token) IsWord() bool {
	return t.Kind == TokenWord
}

// Attribution returns the span diagnostics should point at
func (t Token) Attribution() Span {
	if t.Synthetic {
		return t.Origin
	}
	return t.Span
}

// withOrigin marks a copy of the token as synthetic, attributed to origin
func (t Token) withOrigin(origin Span) Token {
	t.Origin = origin
	t.Synthetic = true
	return t
}

// String returns a human-readable representation of the token
func (t Token) String() string {
	if t.Synthetic {
		return fmt.Sprintf("Token{%s: %q @ %s <- %s}", t.Kind, t.Text, t.Span, t.Origin)
	}
	return fmt.Sprintf("Token{%s: %q @ %s}", t.Kind, t.Text, t.Span)
}
