package internal

import "slices"

// Each pipeline stage hands its output to the next stage in its own container.
// Handing a stream over empties it; a stream can be consumed only once.

// TokenStream is the output of the tokenizer
type TokenStream struct {
	tokens   []Token
	end      Position
	consumed bool
}

// NewTokenStream creates a token stream that owns tokens
func NewTokenStream(tokens []Token, end Position) *TokenStream {
	return &TokenStream{tokens: tokens, end: end}
}

// Tokens returns a copy of the tokens
func (s *TokenStream) Tokens() []Token { return slices.Clone(s.tokens) }

// Len returns the number of tokens
func (s *TokenStream) Len() int { return len(s.tokens) }

// End returns the position just past the last rune of the input
func (s *TokenStream) End() Position { return s.end }

// Consumed reports whether the stream was handed to a later stage
func (s *TokenStream) Consumed() bool { return s.consumed }

func (s *TokenStream) take() ([]Token, Position) {
	if s.consumed {
		panic(ErrMsgStreamConsumed)
	}
	tokens := s.tokens
	s.tokens = nil
	s.consumed = true
	return tokens, s.end
}

// SymbolStream is the output of the parser
type SymbolStream struct {
	symbols  []Symbol
	end      Position
	consumed bool
}

// NewSymbolStream creates a symbol stream that owns symbols
func NewSymbolStream(symbols []Symbol, end Position) *SymbolStream {
	return &SymbolStream{symbols: symbols, end: end}
}

// Symbols returns a copy of the symbols
func (s *SymbolStream) Symbols() []Symbol { return slices.Clone(s.symbols) }

// Len returns the number of symbols
func (s *SymbolStream) Len() int { return len(s.symbols) }

// End returns the position just past the last rune of the input
func (s *SymbolStream) End() Position { return s.end }

// Consumed reports whether the stream was handed to a later stage
func (s *SymbolStream) Consumed() bool { return s.consumed }

// Variables returns the variable symbols in source order
func (s *SymbolStream) Variables() []*VariableSymbol {
	var vars []*VariableSymbol
	for _, sym := range s.symbols {
		if v, ok := sym.(*VariableSymbol); ok {
			vars = append(vars, v)
		}
	}
	return vars
}

func (s *SymbolStream) take() ([]Symbol, Position) {
	if s.consumed {
		panic(ErrMsgStreamConsumed)
	}
	symbols := s.symbols
	s.symbols = nil
	s.consumed = true
	return symbols, s.end
}

// Slot records where a variable was substituted. Extent is the end of the
// replacement text in its own layout, so trailing whitespace of the
// replacement survives even though whitespace has no token.
type Slot struct {
	Span   Span
	Extent Position
}

// OutputStream is the output of the substitutor
type OutputStream struct {
	tokens   []Token
	slots    []Slot
	end      Position
	consumed bool
}

// NewOutputStream creates an output stream that owns tokens and slots
func NewOutputStream(tokens []Token, slots []Slot, end Position) *OutputStream {
	return &OutputStream{tokens: tokens, slots: slots, end: end}
}

// Tokens returns a copy of the tokens
func (s *OutputStream) Tokens() []Token { return slices.Clone(s.tokens) }

// Slots returns a copy of the slots
func (s *OutputStream) Slots() []Slot { return slices.Clone(s.slots) }

// Len returns the number of tokens
func (s *OutputStream) Len() int { return len(s.tokens) }

// End returns the position just past the last rune of the input
func (s *OutputStream) End() Position { return s.end }

// Consumed reports whether the stream was handed to a later stage
func (s *OutputStream) Consumed() bool { return s.consumed }

func (s *OutputStream) take() ([]Token, []Slot, Position) {
	if s.consumed {
		panic(ErrMsgStreamConsumed)
	}
	tokens, slots := s.tokens, s.slots
	s.tokens, s.slots = nil, nil
	s.consumed = true
	return tokens, slots, s.end
}
