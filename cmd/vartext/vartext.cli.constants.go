package main

// Command names
const (
	CmdNameRender   = "render"
	CmdNameCheck    = "check"
	CmdNameTokenize = "tokenize"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input and output source indicators
const (
	InputSourceStdin   = "-"
	OutputTargetStdout = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgInvalidArguments  = "invalid arguments"
	ErrMsgReadFileFailed    = "failed to read template"
	ErrMsgLoadValuesFailed  = "failed to load values"
	ErrMsgConnectFailed     = "failed to open sql resolver"
	ErrMsgEngineFailed      = "failed to create engine"
	ErrMsgRenderFailed      = "render failed"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgStdinTwice        = "stdin can be used for one template only"
	ErrMsgJSONMarshalFailed = "failed to marshal JSON"
)

// Help text templates
const (
	HelpMainUsage = `vartext - text templates with located errors

Usage:
    vartext <command> [options]

Commands:
    render      Render templates with values
    check       Check templates and report located diagnostics
    tokenize    Print the tokens of a template
    version     Show version information
    help        Show help for a command

Use "vartext help <command>" for more information about a command.`

	HelpRenderUsage = `Render templates with values

Usage:
    vartext render [options]

Options:
    -t, --template <file>     Template file, repeatable (use "-" for stdin)
    -d, --data <json>         JSON values
    -f, --values <file>       Values file (.json, .yaml, .yml, .toml)
        --env                 Resolve unknown names from the environment
        --env-prefix <prefix> Prefix for environment lookups
        --dsn <url>           Resolve unknown names from a PostgreSQL table
        --table <name>        Table for --dsn (default: vartext_values)
    -o, --output <file>       Output file (default: stdout)
        --open <delim>        Open delimiter (default: {{)
        --close <delim>       Close delimiter (default: }})
    -j, --jobs <n>            Templates rendered at once (default: 8)
    -v, --verbose             Log pipeline stages to stderr

Values are looked up in the order -d, -f, --dsn, --env.

Examples:
    vartext render -t greeting.txt -d '{"name": "Alice"}'
    vartext render -t mail.txt -f values.yaml -o mail.out
    vartext render -t a.txt -t b.txt -f values.toml --env
    cat greeting.txt | vartext render -t - -d '{"name": "Bob"}'`

	HelpCheckUsage = `Check templates and report located diagnostics

Usage:
    vartext check [options]

Options:
    -t, --template <file>   Template file, repeatable (use "-" for stdin)
    -d, --data <json>       JSON values; unresolved names are reported
    -f, --values <file>     Values file; unresolved names are reported
        --env               Resolve names from the environment
        --open <delim>      Open delimiter (default: {{)
        --close <delim>     Close delimiter (default: }})
        --no-color          Disable colored output

Without values only the template structure is checked.

Examples:
    vartext check -t mail.txt
    vartext check -t mail.txt -f values.yaml`

	HelpTokenizeUsage = `Print the tokens of a template

Usage:
    vartext tokenize [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -F, --format <format>   Output format: text, json (default: text)`

	HelpVersionUsage = `Show version information

Usage:
    vartext version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    vartext help [command]

Commands:
    render      Show help for render command
    check       Show help for check command
    tokenize    Show help for tokenize command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "go-vartext version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
	VersionsFile        = "versions.yaml"
)

// Check output format templates
const (
	CheckTextOK          = "%s: ok (%d variable(s))\n"
	CheckTextLocation    = "%s:%d:%d: "
	CheckTextSeverity    = "error"
	CheckTextGutter      = "%*d | "
	CheckTextBlankGutter = "%*s | "
	CheckTextSummary     = "%d problem(s) in %d template(s)\n"
	CheckCaret           = "^"
)

// Tokenize output format templates
const (
	TokenTextFormat = "%d:%d-%d\t%s\t%q\n"
)

// CLI metadata
const (
	CLIName        = "vartext"
	CLIDescription = "text templates with located errors"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtTemplateError   = "%s: %v\n"
	FmtNewline         = "\n"
)

// Additional error messages
const (
	ErrMsgUnexpectedArguments = "unexpected arguments"
)
