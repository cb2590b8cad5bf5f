package internal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/itsatony/go-cuserr"
	"github.com/samber/lo"
)

// Sentinel errors a NameResolver returns to classify a failed lookup.
// Any other error is reported as ReasonResolverFailure.
var (
	ErrNameNotFound = errors.New(ErrMsgNameNotFound)
	ErrKindMismatch = errors.New(ErrMsgKindMismatch)
)

// ParseErrorKind classifies structural template errors
type ParseErrorKind uint8

// Parse error kinds
const (
	UnterminatedVariable ParseErrorKind = iota + 1
	MalformedVariable
)

// String returns the message for the parse error kind
func (k ParseErrorKind) String() string {
	switch k {
	case UnterminatedVariable:
		return ErrMsgUnterminatedVariable
	case MalformedVariable:
		return ErrMsgMalformedVariable
	default:
		return KindNameUnknown
	}
}

// ParseError is a structural template error. For UnterminatedVariable the
// span is the opening delimiter, for MalformedVariable the variable interior.
type ParseError struct {
	Kind  ParseErrorKind
	Span  Span
	cause *cuserr.CustomError
}

// NewParseError creates a parse error with position metadata
func NewParseError(kind ParseErrorKind, span Span) *ParseError {
	cause := cuserr.NewValidationError(ErrCodeParse, kind.String())
	cause = withSpanMetadata(cause, span).
		WithMetadata(MetaKeyParseKind, kind.String())
	return &ParseError{Kind: kind, Span: span, cause: cause}
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return e.Kind.String() + " at " + e.Span.String()
}

// Unwrap returns the categorized error carrying code and metadata
func (e *ParseError) Unwrap() error {
	return e.cause
}

// Reason classifies a substitution failure
type Reason uint8

// Substitution failure reasons
const (
	ReasonNameNotFound Reason = iota + 1
	ReasonKindMismatch
	ReasonResolverFailure
)

// Reason string names
const (
	ReasonNameNameNotFound    = "name_not_found"
	ReasonNameKindMismatch    = "kind_mismatch"
	ReasonNameResolverFailure = "resolver_failure"
)

// String returns the string representation of the reason
func (r Reason) String() string {
	switch r {
	case ReasonNameNotFound:
		return ReasonNameNameNotFound
	case ReasonKindMismatch:
		return ReasonNameKindMismatch
	case ReasonResolverFailure:
		return ReasonNameResolverFailure
	default:
		return KindNameUnknown
	}
}

func (r Reason) message() string {
	switch r {
	case ReasonNameNotFound:
		return ErrMsgNameNotFound
	case ReasonKindMismatch:
		return ErrMsgKindMismatch
	default:
		return ErrMsgResolverFailure
	}
}

// ReasonFor classifies a resolver error
func ReasonFor(err error) Reason {
	switch {
	case errors.Is(err, ErrNameNotFound):
		return ReasonNameNotFound
	case errors.Is(err, ErrKindMismatch):
		return ReasonKindMismatch
	default:
		return ReasonResolverFailure
	}
}

// SubstitutionError records one variable that could not be resolved
type SubstitutionError struct {
	Name        string
	Kind        VariableKind
	Span        Span
	Reason      Reason
	Cause       error    // error returned by the resolver
	Suggestions []string // similar known names, NameNotFound only
	Hint        string
	categorized *cuserr.CustomError
}

// NewSubstitutionError creates a substitution error for variable v
func NewSubstitutionError(v *VariableSymbol, cause error) *SubstitutionError {
	reason := ReasonFor(cause)

	var categorized *cuserr.CustomError
	switch reason {
	case ReasonNameNotFound:
		categorized = cuserr.NewNotFoundError(MetaKeyVariable, ErrMsgNameNotFound)
	case ReasonKindMismatch:
		categorized = cuserr.NewValidationError(ErrCodeSubstitute, ErrMsgKindMismatch)
	default:
		categorized = cuserr.WrapStdError(cause, ErrCodeSubstitute, ErrMsgResolverFailure)
	}
	categorized = withSpanMetadata(categorized, v.Span()).
		WithMetadata(MetaKeyVariable, v.Name).
		WithMetadata(MetaKeyKind, v.Kind.String()).
		WithMetadata(MetaKeyReason, reason.String())

	return &SubstitutionError{
		Name:        v.Name,
		Kind:        v.Kind,
		Span:        v.Span(),
		Reason:      reason,
		Cause:       cause,
		categorized: categorized,
	}
}

// Error implements the error interface
func (e *SubstitutionError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s `%s` at %s", e.Reason.message(), e.Name, e.Span)
	if e.Reason == ReasonResolverFailure && e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	if len(e.Suggestions) > 0 {
		quoted := lo.Map(e.Suggestions, func(s string, _ int) string { return "`" + s + "`" })
		fmt.Fprintf(&sb, " (%s %s?)", ErrMsgDidYouMean, strings.Join(quoted, ", "))
	}
	return AppendHint(sb.String(), e.Hint)
}

// Unwrap returns the categorized error and the resolver's error
func (e *SubstitutionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.categorized}
	}
	return []error{e.categorized, e.Cause}
}

// SubstitutionErrors is every resolution failure of one substitution pass,
// in source order
type SubstitutionErrors []*SubstitutionError

// Error implements the error interface
func (errs SubstitutionErrors) Error() string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	lines := lo.Map(errs, func(e *SubstitutionError, _ int) string { return "  " + e.Error() })
	return fmt.Sprintf("%d %s:\n%s", len(errs), ErrMsgSubstitutionSummary, strings.Join(lines, StrNewline))
}

// Unwrap exposes each error to errors.Is and errors.As
func (errs SubstitutionErrors) Unwrap() []error {
	return lo.Map(errs, func(e *SubstitutionError, _ int) error { return e })
}

// Names returns the variable names in error order, without duplicates
func (errs SubstitutionErrors) Names() []string {
	return lo.Uniq(lo.Map(errs, func(e *SubstitutionError, _ int) string { return e.Name }))
}

func withSpanMetadata(err *cuserr.CustomError, span Span) *cuserr.CustomError {
	return err.
		WithMetadata(MetaKeyLine, strconv.Itoa(span.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(span.StartCol+1)).
		WithMetadata(MetaKeyEndColumn, strconv.Itoa(span.EndCol+1))
}
