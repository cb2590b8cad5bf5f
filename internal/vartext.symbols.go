package internal

import "fmt"

// Symbol is one unit of parser output. The set of implementations is closed:
// *WordSymbol, *PunctuationSymbol and *VariableSymbol.
type Symbol interface {
	// Span returns the source span the symbol was built from
	Span() Span
	// String returns a human-readable representation
	String() string

	symbol()
}

// WordSymbol is a word carried over from the token stream
type WordSymbol struct {
	Text string
	span Span
}

// NewWordSymbol creates a word symbol
func NewWordSymbol(text string, span Span) *WordSymbol {
	return &WordSymbol{Text: text, span: span}
}

// Span returns the source span
func (s *WordSymbol) Span() Span { return s.span }

// String returns a string representation
func (s *WordSymbol) String() string {
	return fmt.Sprintf("Word{%q @ %s}", s.Text, s.span)
}

func (*WordSymbol) symbol() {}

// PunctuationSymbol is a punctuation mark carried over from the token stream
type PunctuationSymbol struct {
	Char rune
	span Span
}

// NewPunctuationSymbol creates a punctuation symbol
func NewPunctuationSymbol(r rune, span Span) *PunctuationSymbol {
	return &PunctuationSymbol{Char: r, span: span}
}

// Span returns the source span
func (s *PunctuationSymbol) Span() Span { return s.span }

// String returns a string representation
func (s *PunctuationSymbol) String() string {
	return fmt.Sprintf("Punct{%q @ %s}", s.Char, s.span)
}

func (*PunctuationSymbol) symbol() {}

// VariableSymbol is a recognized variable reference. Its span is the union
// of every token it was built from, delimiters included.
type VariableSymbol struct {
	Kind    VariableKind
	Name    string
	Default string // fallback text, KindDefault only
	span    Span
}

// NewVariableSymbol creates a variable symbol
func NewVariableSymbol(kind VariableKind, name, def string, span Span) *VariableSymbol {
	return &VariableSymbol{Kind: kind, Name: name, Default: def, span: span}
}

// Span returns the source span
func (s *VariableSymbol) Span() Span { return s.span }

// String returns a string representation
func (s *VariableSymbol) String() string {
	if s.Kind == KindDefault {
		return fmt.Sprintf("Variable{%s %s|%q @ %s}", s.Kind, s.Name, s.Default, s.span)
	}
	return fmt.Sprintf("Variable{%s %s @ %s}", s.Kind, s.Name, s.span)
}

func (*VariableSymbol) symbol() {}

// symbolFromToken wraps a token 1:1
func symbolFromToken(t Token) Symbol {
	if t.Kind == TokenPunctuation {
		return NewPunctuationSymbol(t.Rune(), t.Span)
	}
	return NewWordSymbol(t.Text, t.Span)
}

// tokenFromSymbol converts a pass-through symbol back into its token.
// Variables have no token form and return false.
func tokenFromSymbol(s Symbol) (Token, bool) {
	switch sym := s.(type) {
	case *WordSymbol:
		return NewWordToken(sym.Text, sym.span), true
	case *PunctuationSymbol:
		return NewPunctuationToken(sym.Char, sym.span), true
	case *VariableSymbol:
		return Token{}, false
	default:
		panic(fmt.Sprintf("unhandled symbol type %T", s))
	}
}
