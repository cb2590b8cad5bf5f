package vartext

import (
	"errors"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-vartext/internal"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Configuration errors
	ErrMsgEmptyDelimiter    = "delimiter cannot be empty"
	ErrMsgDelimiterNotPunct = "delimiter must consist of punctuation characters"
	ErrMsgEmptyPunctuation  = "punctuation set cannot be empty"
	ErrMsgInvalidPolicy     = "unknown missing-value policy"

	// Resolver errors
	ErrMsgNotAList          = "value is a list, use a spread reference"
	ErrMsgNotAScalar        = "value is not a list, use a plain reference"
	ErrMsgUnsupportedValue  = "value type cannot be rendered"
	ErrMsgStructDecode      = "failed to decode struct into values"
	ErrMsgSQLEmptyConnStr   = "sql resolver connection string cannot be empty"
	ErrMsgSQLInvalidTable   = "sql resolver table name is invalid"
	ErrMsgSQLConnectFailed  = "sql resolver connection failed"
	ErrMsgSQLQueryFailed    = "sql resolver query failed"
	ErrMsgSQLMigrateFailed  = "sql resolver migration failed"
	ErrMsgSQLClosed         = "sql resolver is closed"
	ErrMsgUnknownFormat     = "unknown values format"
	ErrMsgDecodeValues      = "failed to decode values"
	ErrMsgValuesNotAMapping = "values document must be a mapping"
)

// Error code constants for categorization
const (
	ErrCodeParse      = internal.ErrCodeParse
	ErrCodeSubstitute = internal.ErrCodeSubstitute
	ErrCodeConfig     = "VARTEXT_CONFIG"
	ErrCodeResolver   = "VARTEXT_RESOLVER"
	ErrCodeValues     = "VARTEXT_VALUES"
)

// Metadata keys attached to errors
const (
	MetaKeyLine        = internal.MetaKeyLine
	MetaKeyColumn      = internal.MetaKeyColumn
	MetaKeyEndColumn   = internal.MetaKeyEndColumn
	MetaKeyVariable    = internal.MetaKeyVariable
	MetaKeyKind        = internal.MetaKeyKind
	MetaKeyReason      = internal.MetaKeyReason
	MetaKeyParseKind   = internal.MetaKeyParseKind
	MetaKeyDelimiter   = "delimiter"
	MetaKeyPunctuation = "punctuation"
	MetaKeyPolicy      = "policy"
	MetaKeyFormat      = "format"
	MetaKeyTable       = "table"
	MetaKeyType        = "type"
)

// Sentinel errors returned by a NameResolver. Wrap them to add detail; the
// substitutor classifies failures with errors.Is.
var (
	ErrNameNotFound = internal.ErrNameNotFound
	ErrKindMismatch = internal.ErrKindMismatch
)

// Pipeline error types.
type (
	// ParseError is a structural template error (fail-fast).
	ParseError = internal.ParseError
	// ParseErrorKind is UnterminatedVariable or MalformedVariable.
	ParseErrorKind = internal.ParseErrorKind
	// SubstitutionError is one variable that could not be resolved.
	SubstitutionError = internal.SubstitutionError
	// SubstitutionErrors is every resolution failure of one render.
	SubstitutionErrors = internal.SubstitutionErrors
	// Reason classifies a SubstitutionError.
	Reason = internal.Reason
)

// Parse error kinds
const (
	UnterminatedVariable = internal.UnterminatedVariable
	MalformedVariable    = internal.MalformedVariable
)

// Substitution failure reasons
const (
	ReasonNameNotFound    = internal.ReasonNameNotFound
	ReasonKindMismatch    = internal.ReasonKindMismatch
	ReasonResolverFailure = internal.ReasonResolverFailure
)

// AsParseError returns the parse error in err's chain, if any.
func AsParseError(err error) (*ParseError, bool) {
	var perr *ParseError
	ok := errors.As(err, &perr)
	return perr, ok
}

// AsSubstitutionErrors returns the substitution errors in err's chain, if any.
func AsSubstitutionErrors(err error) (SubstitutionErrors, bool) {
	var serrs SubstitutionErrors
	ok := errors.As(err, &serrs)
	return serrs, ok
}

// NewConfigError creates an engine configuration error
func NewConfigError(msg string, key, value string) error {
	return cuserr.NewValidationError(ErrCodeConfig, msg).
		WithMetadata(key, value)
}

// NewKindMismatchError creates a resolver error for a value whose shape does
// not fit the variable kind. It matches ErrKindMismatch.
func NewKindMismatchError(name string, kind VariableKind, msg string) error {
	return errors.Join(ErrKindMismatch,
		cuserr.NewValidationError(ErrCodeResolver, msg).
			WithMetadata(MetaKeyVariable, name).
			WithMetadata(MetaKeyKind, kind.String()))
}

// NewResolverError wraps a backend failure of a resolver
func NewResolverError(msg string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeResolver, msg)
}

// NewValuesError creates an error for an unreadable values document
func NewValuesError(msg string, format string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeValues, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeValues, msg)
	}
	return err.WithMetadata(MetaKeyFormat, format)
}
