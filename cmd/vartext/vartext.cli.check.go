package main

import (
	"context"
	"fmt"
	"io"

	"github.com/itsatony/go-vartext"
	"go.uber.org/zap"
)

// checkOptions holds parsed check command configuration
type checkOptions struct {
	sourceOptions
	NoColor bool `long:"no-color" description:"Disable colored output"`
}

func runCheck(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts checkOptions
	if code, ok := parseArgs(CmdNameCheck, HelpCheckUsage, &opts, args, stdout, stderr); !ok {
		return code
	}

	templates, err := readTemplates(opts.Templates, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	ctx := context.Background()
	resolver, closeResolver, err := buildResolver(ctx, &opts.sourceOptions, "", "", zap.NewNop())
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return ExitCodeInputError
	}
	defer closeResolver()

	engine, err := vartext.New(vartext.WithDelimiters(opts.Open, opts.Close))
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEngineFailed, err)
		return ExitCodeUsageError
	}

	printer := newDiagnosticPrinter(stdout, !opts.NoColor && isTerminal(stdout))
	problems, failedTemplates := 0, 0
	for i, source := range templates {
		name := opts.Templates[i]
		vars, err := checkTemplate(ctx, engine, source, resolver, opts.hasValues())
		if err == nil {
			fmt.Fprintf(stdout, CheckTextOK, name, len(vars))
			continue
		}

		diags := diagnosticsFor(err)
		if len(diags) == 0 {
			// resolver failures without a location
			fmt.Fprintf(stderr, FmtTemplateError, name, err)
			return ExitCodeError
		}
		for _, d := range diags {
			printer.Print(name, source, d)
		}
		problems += len(diags)
		failedTemplates++
	}

	if problems > 0 {
		fmt.Fprintf(stdout, CheckTextSummary, problems, failedTemplates)
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}

// checkTemplate parses source and, when values are available, renders it to
// surface unresolved names. It returns the template's variables.
func checkTemplate(ctx context.Context, engine *vartext.Engine, source string, resolver vartext.NameResolver, withValues bool) ([]*vartext.Variable, error) {
	vars, err := engine.Variables(source)
	if err != nil || !withValues {
		return vars, err
	}
	_, err = engine.Render(ctx, source, resolver)
	return vars, err
}
