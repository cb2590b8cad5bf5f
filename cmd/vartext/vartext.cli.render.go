package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/itsatony/go-vartext"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// renderOptions holds parsed render command configuration
type renderOptions struct {
	sourceOptions
	DSN     string `long:"dsn" description:"PostgreSQL connection string"`
	Table   string `long:"table" description:"Table for --dsn" default:"vartext_values"`
	Output  string `short:"o" long:"output" description:"Output file" default:"-"`
	Jobs    int    `short:"j" long:"jobs" description:"Templates rendered at once" default:"8"`
	Verbose bool   `short:"v" long:"verbose" description:"Log pipeline stages to stderr"`
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts renderOptions
	if code, ok := parseArgs(CmdNameRender, HelpRenderUsage, &opts, args, stdout, stderr); !ok {
		return code
	}

	templates, err := readTemplates(opts.Templates, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	logger := newCLILogger(opts.Verbose, stderr)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	resolver, closeResolver, err := buildResolver(ctx, &opts.sourceOptions, opts.DSN, opts.Table, logger)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		var srcErr *sourceError
		if errors.As(err, &srcErr) {
			return ExitCodeInputError
		}
		return ExitCodeError
	}
	defer closeResolver()

	engine, err := vartext.New(
		vartext.WithDelimiters(opts.Open, opts.Close),
		vartext.WithConcurrency(opts.Jobs),
		vartext.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEngineFailed, err)
		return ExitCodeUsageError
	}

	// All templates must succeed before anything is written.
	results := engine.RenderAll(ctx, templates, resolver)
	var out strings.Builder
	failed := false
	for i, result := range results {
		if result.Err != nil {
			fmt.Fprintf(stderr, FmtTemplateError, opts.Templates[i], result.Err)
			failed = true
			continue
		}
		out.WriteString(result.Output)
	}
	if failed {
		fmt.Fprintln(stderr, ErrMsgRenderFailed)
		return ExitCodeError
	}

	if err := writeOutput(opts.Output, []byte(out.String()), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

// newCLILogger returns a console logger on stderr when verbose is set
func newCLILogger(verbose bool, stderr io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(stderr), zapcore.DebugLevel)
	return zap.New(core)
}
