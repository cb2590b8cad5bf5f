package internal

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// NameResolver maps a variable name and kind to its replacement text.
// Failed lookups return ErrNameNotFound or ErrKindMismatch (possibly
// wrapped); any other error is reported as a resolver failure.
type NameResolver interface {
	Resolve(ctx context.Context, name string, kind VariableKind) (string, error)
}

// MissingPolicy selects what an unresolved variable contributes to the output
type MissingPolicy uint8

// Missing policies
const (
	MissingOmit        MissingPolicy = iota // no tokens
	MissingPlaceholder                      // tokens of the placeholder text
)

// Missing policy string names
const (
	PolicyNameOmit        = "omit"
	PolicyNamePlaceholder = "placeholder"
)

// String returns the string representation of the policy
func (p MissingPolicy) String() string {
	switch p {
	case MissingOmit:
		return PolicyNameOmit
	case MissingPlaceholder:
		return PolicyNamePlaceholder
	default:
		return KindNameUnknown
	}
}

// PlaceholderFunc builds the placeholder text for an unresolved variable
type PlaceholderFunc func(name string, kind VariableKind) string

// DefaultPlaceholderFormat is used by DefaultPlaceholder
const DefaultPlaceholderFormat = "<%s>"

// DefaultPlaceholder renders an unresolved variable as <name>
func DefaultPlaceholder(name string, _ VariableKind) string {
	return fmt.Sprintf(DefaultPlaceholderFormat, name)
}

// SubstitutorConfig holds substitutor configuration
type SubstitutorConfig struct {
	Policy         MissingPolicy
	Placeholder    PlaceholderFunc
	MaxSuggestions int  // 0 disables suggestions
	Hints          bool // append hints to error messages
	OpenDelim      string
	CloseDelim     string
}

// DefaultSubstitutorConfig returns the default substitutor configuration
func DefaultSubstitutorConfig() SubstitutorConfig {
	return SubstitutorConfig{
		Policy:         MissingOmit,
		Placeholder:    DefaultPlaceholder,
		MaxSuggestions: DefaultMaxSuggestions,
		Hints:          true,
		OpenDelim:      StrOpenDelim,
		CloseDelim:     StrCloseDelim,
	}
}

// Substitutor replaces variable symbols with the tokens of their resolved text
type Substitutor struct {
	config    SubstitutorConfig
	tokenizer *Tokenizer
	logger    *zap.Logger
}

// NewSubstitutor creates a substitutor. Replacement text is split into
// tokens with tokenizer.
func NewSubstitutor(config SubstitutorConfig, tokenizer *Tokenizer, logger *zap.Logger) *Substitutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Placeholder == nil {
		config.Placeholder = DefaultPlaceholder
	}
	return &Substitutor{config: config, tokenizer: tokenizer, logger: logger}
}

// Substitute consumes the symbol stream and resolves every variable against r.
// It does not stop at the first failure: the returned errors cover every
// variable that could not be resolved. The output stream is always complete;
// failed variables contribute tokens according to the missing policy.
func (s *Substitutor) Substitute(ctx context.Context, ss *SymbolStream, r NameResolver) (*OutputStream, SubstitutionErrors) {
	symbols, end := ss.take()
	s.logger.Debug(LogMsgSubstituteStart, zap.Int(LogFieldSymbols, len(symbols)))
	if r == nil {
		r = nothingResolver{}
	}

	tokens := make([]Token, 0, len(symbols))
	var slots []Slot
	var errs SubstitutionErrors

	for _, sym := range symbols {
		if tok, ok := tokenFromSymbol(sym); ok {
			tokens = append(tokens, tok)
			continue
		}

		v := sym.(*VariableSymbol)
		text, err := s.resolve(ctx, v, r)
		if err != nil {
			serr := s.newError(v, err, r)
			errs = append(errs, serr)
			s.logger.Debug(LogMsgSubstituteFailed,
				zap.String(LogFieldVariable, v.Name),
				zap.Stringer(LogFieldKind, v.Kind),
				zap.Stringer(LogFieldReason, serr.Reason),
				zap.Int(LogFieldLine, v.Span().Line),
				zap.Int(LogFieldColumn, v.Span().StartCol+1))

			text = StrEmpty
			if s.config.Policy == MissingPlaceholder {
				text = s.config.Placeholder(v.Name, v.Kind)
			}
		}

		var slot Slot
		tokens, slot = s.splice(tokens, text, v.Span())
		slots = append(slots, slot)
	}

	s.logger.Debug(LogMsgSubstituteEnd,
		zap.Int(LogFieldTokens, len(tokens)),
		zap.Int(LogFieldVariables, len(slots)),
		zap.Int(LogFieldErrors, len(errs)))
	return NewOutputStream(tokens, slots, end), errs
}

// resolve looks up v, falling back to the default text of a KindDefault
// variable when the name is unknown
func (s *Substitutor) resolve(ctx context.Context, v *VariableSymbol, r NameResolver) (string, error) {
	text, err := r.Resolve(ctx, v.Name, v.Kind)
	if err != nil && v.Kind == KindDefault && errors.Is(err, ErrNameNotFound) {
		return v.Default, nil
	}
	return text, err
}

func (s *Substitutor) newError(v *VariableSymbol, cause error, r NameResolver) *SubstitutionError {
	serr := NewSubstitutionError(v, cause)
	if serr.Reason == ReasonNameNotFound && s.config.MaxSuggestions > 0 {
		if lister, ok := r.(NameLister); ok {
			serr.Suggestions = FindSimilarNames(v.Name, lister.Names(), s.config.MaxSuggestions)
		}
	}
	if s.config.Hints {
		serr.Hint = HintFor(serr.Reason, v.Kind, s.config.OpenDelim, s.config.CloseDelim)
	}
	return serr
}

// splice appends the tokens of text, attributed to origin, and returns the
// slot describing the replacement
func (s *Substitutor) splice(tokens []Token, text string, origin Span) ([]Token, Slot) {
	replacement, extent := s.tokenizer.scan(text)
	for _, t := range replacement {
		tokens = append(tokens, t.withOrigin(origin))
	}
	return tokens, Slot{Span: origin, Extent: extent}
}

// nothingResolver stands in for a missing resolver
type nothingResolver struct{}

func (nothingResolver) Resolve(context.Context, string, VariableKind) (string, error) {
	return "", ErrNameNotFound
}
