package vartext

import (
	"github.com/itsatony/go-vartext/internal"
	"go.uber.org/zap"
)

// MissingPolicy selects what an unresolved variable contributes to the
// substitutor's output stream. Render fails either way; the policy matters
// to callers that run Substitute themselves, e.g. to preview a template.
type MissingPolicy = internal.MissingPolicy

// Missing-value policies
const (
	MissingOmit        = internal.MissingOmit
	MissingPlaceholder = internal.MissingPlaceholder
)

// PlaceholderFunc builds the placeholder text for an unresolved variable.
type PlaceholderFunc = internal.PlaceholderFunc

// DefaultPlaceholder renders an unresolved variable as <name>.
var DefaultPlaceholder PlaceholderFunc = internal.DefaultPlaceholder

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	openDelim      string
	closeDelim     string
	punctuation    string
	policy         MissingPolicy
	placeholder    PlaceholderFunc
	maxSuggestions int
	hints          bool
	concurrency    int
	logger         *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		openDelim:      DefaultOpenDelim,
		closeDelim:     DefaultCloseDelim,
		punctuation:    DefaultPunctuation,
		policy:         MissingOmit,
		placeholder:    DefaultPlaceholder,
		maxSuggestions: DefaultMaxSuggestions,
		hints:          true,
		concurrency:    DefaultConcurrency,
		logger:         nil,
	}
}

// WithDelimiters sets the variable delimiters. Every character of both
// delimiters must be in the punctuation set.
// Default: "{{" and "}}"
func WithDelimiters(open, close string) Option {
	return func(c *engineConfig) {
		c.openDelim = open
		c.closeDelim = close
	}
}

// WithPunctuation sets the characters the tokenizer emits as single
// punctuation tokens. Name separators ('_', '-', '.'), the fallback marker
// '|' and the delimiter characters only take effect when they are in the set.
// Default: ASCII punctuation
func WithPunctuation(chars string) Option {
	return func(c *engineConfig) {
		c.punctuation = chars
	}
}

// WithMissingPolicy sets what an unresolved variable contributes to the
// substitution output.
// Default: MissingOmit
func WithMissingPolicy(policy MissingPolicy) Option {
	return func(c *engineConfig) {
		c.policy = policy
	}
}

// WithPlaceholder selects MissingPlaceholder with the given placeholder
// builder. A nil fn uses DefaultPlaceholder.
func WithPlaceholder(fn PlaceholderFunc) Option {
	return func(c *engineConfig) {
		c.policy = MissingPlaceholder
		if fn != nil {
			c.placeholder = fn
		}
	}
}

// WithSuggestions sets how many "did you mean" names an unknown-variable
// error may carry. Use 0 to disable.
// Default: 3
func WithSuggestions(n int) Option {
	return func(c *engineConfig) {
		c.maxSuggestions = max(n, 0)
	}
}

// WithHints enables or disables hints in substitution error messages.
// Default: true
func WithHints(enabled bool) Option {
	return func(c *engineConfig) {
		c.hints = enabled
	}
}

// WithConcurrency bounds the number of templates RenderAll renders at once.
// Values below 1 mean 1.
// Default: 8
func WithConcurrency(n int) Option {
	return func(c *engineConfig) {
		c.concurrency = max(n, 1)
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}
