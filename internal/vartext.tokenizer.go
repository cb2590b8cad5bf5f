package internal

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

// TokenizerConfig holds tokenizer configuration
type TokenizerConfig struct {
	Punctuation string // Characters emitted as single punctuation tokens
}

// DefaultTokenizerConfig returns the default tokenizer configuration (ASCII punctuation)
func DefaultTokenizerConfig() TokenizerConfig {
	return TokenizerConfig{Punctuation: StrPunctuation}
}

// Tokenizer splits text into words and punctuation marks, line by line.
// It never fails and holds no per-input state, so one Tokenizer can be
// shared between concurrent renders.
type Tokenizer struct {
	punct  map[rune]struct{}
	logger *zap.Logger
}

// NewTokenizer creates a tokenizer with the given configuration
func NewTokenizer(config TokenizerConfig, logger *zap.Logger) *Tokenizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	punct := make(map[rune]struct{}, utf8.RuneCountInString(config.Punctuation))
	for _, r := range config.Punctuation {
		punct[r] = struct{}{}
	}
	return &Tokenizer{punct: punct, logger: logger}
}

// IsPunctuation reports whether r is in the configured punctuation set
func (t *Tokenizer) IsPunctuation(r rune) bool {
	_, ok := t.punct[r]
	return ok
}

// Tokenize processes the input and returns its token stream
func (t *Tokenizer) Tokenize(input string) *TokenStream {
	t.logger.Debug(LogMsgTokenizerStart, zap.Int(LogFieldSource, len(input)))
	tokens, end := t.scan(input)
	t.logger.Debug(LogMsgTokenizerEnd,
		zap.Int(LogFieldTokens, len(tokens)),
		zap.Int(LogFieldLines, end.Line))
	return NewTokenStream(tokens, end)
}

// scan tokenizes every line of input and returns the tokens together with
// the position just past the final rune
func (t *Tokenizer) scan(input string) ([]Token, Position) {
	var tokens []Token
	end := Position{Line: 1}

	for i, line := range strings.Split(input, StrNewline) {
		lineNo := i + 1
		tokens = t.scanLine(tokens, line, lineNo)
		end = Position{Line: lineNo, Col: utf8.RuneCountInString(line)}
	}
	return tokens, end
}

// scanLine appends the tokens of a single line
func (t *Tokenizer) scanLine(tokens []Token, line string, lineNo int) []Token {
	var word strings.Builder
	wordStart := -1
	col := 0

	flush := func() {
		if wordStart < 0 {
			return
		}
		tokens = append(tokens, NewWordToken(word.String(), NewSpan(lineNo, wordStart, col)))
		word.Reset()
		wordStart = -1
	}

	for _, r := range line {
		switch {
		case unicode.IsSpace(r):
			flush()
		case t.IsPunctuation(r):
			flush()
			tokens = append(tokens, NewPunctuationToken(r, NewSpan(lineNo, col, col+1)))
		default:
			if wordStart < 0 {
				wordStart = col
			}
			word.WriteRune(r)
		}
		col++
	}
	flush()

	return tokens
}
