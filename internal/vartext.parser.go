package internal

import (
	"strings"

	"go.uber.org/zap"
)

// ParserConfig holds parser configuration
type ParserConfig struct {
	OpenDelim  string // Opening delimiter (default: "{{")
	CloseDelim string // Closing delimiter (default: "}}")
}

// DefaultParserConfig returns the default parser configuration
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		OpenDelim:  StrOpenDelim,
		CloseDelim: StrCloseDelim,
	}
}

// Parser recognizes variable references in a token stream.
//
// Template syntax, with the default delimiters:
//
//	{{ name }}             plain reference
//	{{ name | fallback }}  reference with fallback text
//	{{ ...name }}          spread reference (list value)
//
// A delimiter is a run of adjacent punctuation tokens. A name is an adjacent
// run of words joined by '_', '-' and '.', e.g. user.first_name.
type Parser struct {
	open   []rune
	close  []rune
	spread []rune
	logger *zap.Logger
}

// NewParser creates a parser with the given configuration
func NewParser(config ParserConfig, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{
		open:   []rune(config.OpenDelim),
		close:  []rune(config.CloseDelim),
		spread: []rune(StrSpreadMark),
		logger: logger,
	}
}

// Parse consumes the token stream and produces the symbol stream.
// Parsing stops at the first structural error.
func (p *Parser) Parse(ts *TokenStream) (*SymbolStream, error) {
	tokens, end := ts.take()
	p.logger.Debug(LogMsgParserStart, zap.Int(LogFieldTokens, len(tokens)))

	symbols := make([]Symbol, 0, len(tokens))
	variables := 0
	for i := 0; i < len(tokens); {
		if matchRun(tokens, i, p.open) {
			sym, next, err := p.parseVariable(tokens, i)
			if err != nil {
				p.logger.Debug(LogMsgParserFailed,
					zap.Int(LogFieldLine, err.Span.Line),
					zap.Int(LogFieldColumn, err.Span.StartCol+1),
					zap.String(LogFieldReason, err.Kind.String()))
				return nil, err
			}
			symbols = append(symbols, sym)
			variables++
			i = next
			continue
		}
		symbols = append(symbols, symbolFromToken(tokens[i]))
		i++
	}

	p.logger.Debug(LogMsgParserEnd,
		zap.Int(LogFieldSymbols, len(symbols)),
		zap.Int(LogFieldVariables, variables))
	return NewSymbolStream(symbols, end), nil
}

// parseVariable parses the variable whose open delimiter starts at tokens[start].
// Returns the symbol and the index of the first token after the close delimiter.
func (p *Parser) parseVariable(tokens []Token, start int) (*VariableSymbol, int, *ParseError) {
	openEnd := start + len(p.open)
	openSpan := Union(tokens[start].Span, tokens[openEnd-1].Span)
	line := tokens[start].Span.Line

	closeStart := -1
	for j := openEnd; j < len(tokens) && tokens[j].Span.Line == line; j++ {
		if matchRun(tokens, j, p.close) {
			closeStart = j
			break
		}
	}
	if closeStart < 0 {
		return nil, 0, NewParseError(UnterminatedVariable, openSpan)
	}

	closeEnd := closeStart + len(p.close)
	span := Union(openSpan, tokens[closeEnd-1].Span)
	interior := tokens[openEnd:closeStart]

	kind, name, def, ok := p.classify(interior)
	if !ok {
		errSpan := span
		if len(interior) > 0 {
			errSpan = Union(interior[0].Span, interior[len(interior)-1].Span)
		}
		return nil, 0, NewParseError(MalformedVariable, errSpan)
	}

	return NewVariableSymbol(kind, name, def, span), closeEnd, nil
}

// classify matches the interior of a delimiter pair against the variable
// forms, longest form first
func (p *Parser) classify(interior []Token) (VariableKind, string, string, bool) {
	if len(interior) == 0 {
		return 0, "", "", false
	}

	if matchRun(interior, 0, p.spread) {
		rest := interior[len(p.spread):]
		if len(rest) == 0 || !Adjacent(interior[len(p.spread)-1].Span, rest[0].Span) {
			return 0, "", "", false
		}
		name, tail, ok := scanName(rest)
		if !ok || len(tail) > 0 {
			return 0, "", "", false
		}
		return KindSpread, name, "", true
	}

	name, tail, ok := scanName(interior)
	if !ok {
		return 0, "", "", false
	}
	if len(tail) == 0 {
		return KindPlain, name, "", true
	}
	if tail[0].IsPunct(CharPipe) {
		return KindDefault, name, joinTokens(tail[1:]), true
	}
	return 0, "", "", false
}

// scanName consumes the longest adjacent run of name tokens at the start of
// tokens and validates it. Returns the name and the remaining tokens.
func scanName(tokens []Token) (string, []Token, bool) {
	var sb strings.Builder
	n := 0
	for n < len(tokens) {
		t := tokens[n]
		if !isNameToken(t) {
			break
		}
		if n > 0 && !Adjacent(tokens[n-1].Span, t.Span) {
			break
		}
		sb.WriteString(t.Text)
		n++
	}

	name := sb.String()
	if !validName(name) {
		return "", nil, false
	}
	return name, tokens[n:], true
}

func isNameToken(t Token) bool {
	return t.IsWord() || t.IsPunct(CharUnderscore) || t.IsPunct(CharHyphen) || t.IsPunct(CharDot)
}

// validName rejects empty names, empty dotted segments and names that start
// with '.' or '-' or end with '.'
func validName(name string) bool {
	if name == "" {
		return false
	}
	if name[0] == CharDot || name[0] == CharHyphen || name[len(name)-1] == CharDot {
		return false
	}
	return !strings.Contains(name, "..")
}

// matchRun reports whether tokens starting at i are adjacent punctuation
// marks spelling want
func matchRun(tokens []Token, i int, want []rune) bool {
	if len(want) == 0 || i+len(want) > len(tokens) {
		return false
	}
	for k, r := range want {
		t := tokens[i+k]
		if !t.IsPunct(r) {
			return false
		}
		if k > 0 && !Adjacent(tokens[i+k-1].Span, t.Span) {
			return false
		}
	}
	return true
}

// joinTokens rebuilds the text of single-line tokens, restoring the spaces
// between them from their spans
func joinTokens(tokens []Token) string {
	var sb strings.Builder
	for i, t := range tokens {
		if i > 0 {
			sb.WriteString(strings.Repeat(" ", max(t.Span.StartCol-tokens[i-1].Span.EndCol, 0)))
		}
		sb.WriteString(t.Text)
	}
	return sb.String()
}
