package vartext

import "github.com/itsatony/go-vartext/internal"

// Delimiter and character set defaults
const (
	DefaultOpenDelim   = internal.StrOpenDelim
	DefaultCloseDelim  = internal.StrCloseDelim
	DefaultPunctuation = internal.StrPunctuation
)

// Rendering defaults
const (
	DefaultMaxSuggestions = internal.DefaultMaxSuggestions
	DefaultConcurrency    = 8
	DefaultListSeparator  = ", "
	PathSeparator         = "."
)

// Log message constants
const (
	LogMsgEngineCreated   = "engine created"
	LogMsgRenderStart     = "starting render"
	LogMsgRenderEnd       = "render complete"
	LogMsgRenderFailed    = "render failed"
	LogMsgRenderAllStart  = "starting batch render"
	LogMsgRenderAllEnd    = "batch render complete"
	LogMsgSQLResolverOpen = "sql resolver opened"
	LogMsgSQLMigrated     = "sql resolver schema migrated"
)

// Log field constants
const (
	LogFieldOpenDelim   = "open_delim"
	LogFieldCloseDelim  = "close_delim"
	LogFieldPolicy      = "missing_policy"
	LogFieldTemplates   = "template_count"
	LogFieldFailed      = "failed_count"
	LogFieldConcurrency = "concurrency"
	LogFieldTable       = "table"
	LogFieldError       = "error"
)

// Values file formats accepted by LoadValues
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// SQL resolver defaults
const (
	SQLDefaultTable        = "vartext_values"
	SQLDefaultMaxOpenConns = 10
	SQLDefaultMaxIdleConns = 2
	SQLDriverPostgres      = "postgres"
)
