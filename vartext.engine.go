package vartext

import (
	"context"
	"strings"

	"github.com/itsatony/go-vartext/internal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Engine renders templates. It is immutable after New and safe for
// concurrent use; every render runs its own pipeline and shares nothing.
type Engine struct {
	config      *engineConfig
	tokenizer   *internal.Tokenizer
	parser      *internal.Parser
	substitutor *internal.Substitutor
	generator   *internal.Generator
	logger      *zap.Logger
}

// New creates a new Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	tokenizer := internal.NewTokenizer(internal.TokenizerConfig{
		Punctuation: config.punctuation,
	}, logger)
	if err := validateConfig(config, tokenizer); err != nil {
		return nil, err
	}

	parser := internal.NewParser(internal.ParserConfig{
		OpenDelim:  config.openDelim,
		CloseDelim: config.closeDelim,
	}, logger)

	substitutor := internal.NewSubstitutor(internal.SubstitutorConfig{
		Policy:         config.policy,
		Placeholder:    config.placeholder,
		MaxSuggestions: config.maxSuggestions,
		Hints:          config.hints,
		OpenDelim:      config.openDelim,
		CloseDelim:     config.closeDelim,
	}, tokenizer, logger)

	logger.Debug(LogMsgEngineCreated,
		zap.String(LogFieldOpenDelim, config.openDelim),
		zap.String(LogFieldCloseDelim, config.closeDelim),
		zap.Stringer(LogFieldPolicy, config.policy))

	return &Engine{
		config:      config,
		tokenizer:   tokenizer,
		parser:      parser,
		substitutor: substitutor,
		generator:   internal.NewGenerator(logger),
		logger:      logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

func validateConfig(config *engineConfig, tokenizer *internal.Tokenizer) error {
	if config.punctuation == "" {
		return NewConfigError(ErrMsgEmptyPunctuation, MetaKeyPunctuation, config.punctuation)
	}
	for _, delim := range []string{config.openDelim, config.closeDelim} {
		if delim == "" {
			return NewConfigError(ErrMsgEmptyDelimiter, MetaKeyDelimiter, delim)
		}
		if strings.IndexFunc(delim, func(r rune) bool { return !tokenizer.IsPunctuation(r) }) >= 0 {
			return NewConfigError(ErrMsgDelimiterNotPunct, MetaKeyDelimiter, delim)
		}
	}
	if config.policy != MissingOmit && config.policy != MissingPlaceholder {
		return NewConfigError(ErrMsgInvalidPolicy, MetaKeyPolicy, config.policy.String())
	}
	return nil
}

// Delimiters returns the open and close delimiters the engine recognizes.
func (e *Engine) Delimiters() (string, string) {
	return e.config.openDelim, e.config.closeDelim
}

// Tokenize splits template into words and punctuation. It never fails.
func (e *Engine) Tokenize(template string) *TokenStream {
	return e.tokenizer.Tokenize(template)
}

// Parse consumes ts and recognizes its variables. The error is a *ParseError.
func (e *Engine) Parse(ts *TokenStream) (*SymbolStream, error) {
	ss, err := e.parser.Parse(ts)
	if err != nil {
		return nil, err
	}
	return ss, nil
}

// Substitute consumes ss and resolves every variable with resolver. The
// output stream is returned even when resolution failed; the error is then
// SubstitutionErrors listing every failure.
func (e *Engine) Substitute(ctx context.Context, ss *SymbolStream, resolver NameResolver) (*OutputStream, error) {
	out, errs := e.substitutor.Substitute(ctx, ss, resolver)
	if len(errs) > 0 {
		return out, errs
	}
	return out, nil
}

// Generate consumes out and returns the rendered text. It never fails.
func (e *Engine) Generate(out *OutputStream) string {
	return e.generator.Generate(out)
}

// Variables parses template and returns its variables in source order.
func (e *Engine) Variables(template string) ([]*Variable, error) {
	ss, err := e.Parse(e.Tokenize(template))
	if err != nil {
		return nil, err
	}
	return ss.Variables(), nil
}

// Render runs the whole pipeline over template. It returns either the
// complete output or an error: a *ParseError for the first structural
// problem, or SubstitutionErrors listing every unresolved variable.
func (e *Engine) Render(ctx context.Context, template string, resolver NameResolver) (string, error) {
	e.logger.Debug(LogMsgRenderStart)

	ss, err := e.Parse(e.Tokenize(template))
	if err != nil {
		e.logger.Debug(LogMsgRenderFailed, zap.Error(err))
		return "", err
	}

	out, err := e.Substitute(ctx, ss, resolver)
	if err != nil {
		e.logger.Debug(LogMsgRenderFailed, zap.Error(err))
		return "", err
	}

	result := e.Generate(out)
	e.logger.Debug(LogMsgRenderEnd)
	return result, nil
}

// RenderResult is the outcome of one template of a RenderAll batch.
type RenderResult struct {
	Output string
	Err    error
}

// RenderAll renders templates concurrently, at most WithConcurrency at a
// time, and returns one result per template in input order. A failing
// template does not stop the others. Templates not yet started when ctx is
// done report ctx.Err().
func (e *Engine) RenderAll(ctx context.Context, templates []string, resolver NameResolver) []RenderResult {
	e.logger.Debug(LogMsgRenderAllStart,
		zap.Int(LogFieldTemplates, len(templates)),
		zap.Int(LogFieldConcurrency, e.config.concurrency))

	results := make([]RenderResult, len(templates))
	var g errgroup.Group
	g.SetLimit(e.config.concurrency)

	for i, template := range templates {
		i, template := i, template
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = RenderResult{Err: err}
				return nil
			}
			out, err := e.Render(ctx, template, resolver)
			results[i] = RenderResult{Output: out, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	e.logger.Debug(LogMsgRenderAllEnd,
		zap.Int(LogFieldTemplates, len(templates)),
		zap.Int(LogFieldFailed, failed))
	return results
}
