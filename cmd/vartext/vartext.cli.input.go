package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"
)

// parseArgs parses command flags into opts. When ok is false the command
// must stop and return code.
func parseArgs(name, usage string, opts any, args []string, stdout, stderr io.Writer) (code int, ok bool) {
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = name

	rest, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, usage)
			return ExitCodeSuccess, false
		}
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidArguments, err)
		return ExitCodeUsageError, false
	}
	if len(rest) > 0 {
		fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgUnexpectedArguments, strings.Join(rest, " "))
		return ExitCodeUsageError, false
	}
	return ExitCodeSuccess, true
}

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// readTemplates reads every template path. Stdin may be named once.
func readTemplates(paths []string, stdin io.Reader) ([]string, error) {
	templates := make([]string, 0, len(paths))
	usedStdin := false
	for _, path := range paths {
		if path == InputSourceStdin {
			if usedStdin {
				return nil, errors.New(ErrMsgStdinTwice)
			}
			usedStdin = true
		}
		data, err := readInput(path, stdin)
		if err != nil {
			return nil, err
		}
		templates = append(templates, string(data))
	}
	return templates, nil
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == OutputTargetStdout {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}

func dumpJSON(w io.Writer, v any) error {
	opts := []json.EncodeOptionFunc{json.DisableHTMLEscape()}
	if isTerminal(w) {
		opts = append(opts, json.Colorize(json.DefaultColorScheme))
	}

	b, err := json.MarshalIndentWithOption(v, "", "\t", opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgJSONMarshalFailed, err)
	}

	if _, err = w.Write(b); err != nil {
		return err
	}
	_, err = io.WriteString(w, FmtNewline)
	return err
}
