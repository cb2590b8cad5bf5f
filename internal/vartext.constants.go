package internal

// TokenKind identifies the variant of a Token
type TokenKind uint8

// Token kind constants
const (
	TokenWord TokenKind = iota + 1
	TokenPunctuation
)

// Token kind string names for debugging
const (
	TokenKindNameWord        = "WORD"
	TokenKindNamePunctuation = "PUNCT"
	TokenKindNameUnknown     = "UNKNOWN"
)

// String returns the string representation of the token kind
func (k TokenKind) String() string {
	switch k {
	case TokenWord:
		return TokenKindNameWord
	case TokenPunctuation:
		return TokenKindNamePunctuation
	default:
		return TokenKindNameUnknown
	}
}

// VariableKind distinguishes the reference forms recognized by the parser
type VariableKind uint8

// Variable kind constants
const (
	KindPlain   VariableKind = iota + 1 // {{ name }}
	KindDefault                         // {{ name | fallback }}
	KindSpread                          // {{ ...name }}
)

// Variable kind string names
const (
	KindNamePlain   = "plain"
	KindNameDefault = "default"
	KindNameSpread  = "spread"
	KindNameUnknown = "unknown"
)

// String returns the string representation of the variable kind
func (k VariableKind) String() string {
	switch k {
	case KindPlain:
		return KindNamePlain
	case KindDefault:
		return KindNameDefault
	case KindSpread:
		return KindNameSpread
	default:
		return KindNameUnknown
	}
}

// Character constants
const (
	CharNewline    = '\n'
	CharSpace      = ' '
	CharDot        = '.'
	CharUnderscore = '_'
	CharHyphen     = '-'
	CharPipe       = '|'
)

// String constants for the default template syntax
const (
	StrOpenDelim   = "{{"
	StrCloseDelim  = "}}"
	StrSpreadMark  = "..."
	StrNewline     = "\n"
	StrEmpty       = ""
	StrPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Log message constants
const (
	LogMsgTokenizerStart   = "starting tokenization"
	LogMsgTokenizerEnd     = "tokenization complete"
	LogMsgParserStart      = "starting parse"
	LogMsgParserEnd        = "parse complete"
	LogMsgParserFailed     = "parse failed"
	LogMsgSubstituteStart  = "starting substitution"
	LogMsgSubstituteEnd    = "substitution complete"
	LogMsgSubstituteFailed = "variable could not be resolved"
	LogMsgGeneratorStart   = "starting text generation"
	LogMsgGeneratorEnd     = "text generation complete"
)

// Log field constants
const (
	LogFieldSource    = "source_length"
	LogFieldLines     = "line_count"
	LogFieldTokens    = "token_count"
	LogFieldSymbols   = "symbol_count"
	LogFieldVariables = "variable_count"
	LogFieldErrors    = "error_count"
	LogFieldVariable  = "variable"
	LogFieldKind      = "kind"
	LogFieldReason    = "reason"
	LogFieldLine      = "line"
	LogFieldColumn    = "column"
	LogFieldOutput    = "output_length"
)

// Error message constants - ALL error messages must be constants
const (
	ErrMsgUnterminatedVariable = "unterminated variable"
	ErrMsgMalformedVariable    = "malformed variable"
	ErrMsgNameNotFound         = "unknown variable"
	ErrMsgKindMismatch         = "value does not fit variable kind"
	ErrMsgResolverFailure      = "resolver failed"
	ErrMsgStreamConsumed       = "stream already consumed by a later stage"
	ErrMsgDidYouMean           = "did you mean"
	ErrMsgSubstitutionSummary  = "variable(s) could not be resolved"
)

// Error code constants for categorization
const (
	ErrCodeParse      = "VARTEXT_PARSE"
	ErrCodeSubstitute = "VARTEXT_SUBSTITUTE"
)

// Metadata keys attached to errors
const (
	MetaKeyLine      = "line"
	MetaKeyColumn    = "column"
	MetaKeyEndColumn = "end_column"
	MetaKeyVariable  = "variable"
	MetaKeyKind      = "kind"
	MetaKeyReason    = "reason"
	MetaKeyParseKind = "parse_error"
)

// Suggestion limits
const (
	DefaultMaxSuggestions = 3
	MinSuggestionDistance = 2
)
