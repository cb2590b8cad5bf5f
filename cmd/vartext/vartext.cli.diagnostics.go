package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/itsatony/go-vartext"
	"github.com/mattn/go-runewidth"
)

// diagnostic is one located problem in a template
type diagnostic struct {
	Span    vartext.Span
	Message string
	Hint    string
}

// diagnosticsFor converts a render error into located diagnostics.
// Errors without a location return nil.
func diagnosticsFor(err error) []diagnostic {
	if perr, ok := vartext.AsParseError(err); ok {
		return []diagnostic{{Span: perr.Span, Message: perr.Kind.String()}}
	}
	serrs, ok := vartext.AsSubstitutionErrors(err)
	if !ok {
		return nil
	}
	diags := make([]diagnostic, 0, len(serrs))
	for _, serr := range serrs {
		// the location is printed in front of the message already
		msg := strings.Replace(serr.Error(), " at "+serr.Span.String(), "", 1)
		msg, hint, _ := strings.Cut(msg, FmtNewline)
		diags = append(diags, diagnostic{Span: serr.Span, Message: msg, Hint: hint})
	}
	return diags
}

// diagnosticPrinter writes compiler-style diagnostics with a source excerpt
//
//	mail.txt:3:12: error: unknown variable `user`
//	 3 | Dear {{ user }},
//	   |      ^^^^^^^^^^
type diagnosticPrinter struct {
	w        io.Writer
	location *color.Color
	severity *color.Color
	caret    *color.Color
	gutter   *color.Color
}

func newDiagnosticPrinter(w io.Writer, colored bool) *diagnosticPrinter {
	p := &diagnosticPrinter{
		w:        w,
		location: color.New(color.Bold),
		severity: color.New(color.FgRed, color.Bold),
		caret:    color.New(color.FgGreen, color.Bold),
		gutter:   color.New(color.FgBlue),
	}
	for _, c := range []*color.Color{p.location, p.severity, p.caret, p.gutter} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Print writes d for the template named name with the given source
func (p *diagnosticPrinter) Print(name, source string, d diagnostic) {
	fmt.Fprint(p.w, p.location.Sprintf(CheckTextLocation, name, d.Span.Line, d.Span.StartCol+1))
	fmt.Fprint(p.w, p.severity.Sprint(CheckTextSeverity))
	fmt.Fprintf(p.w, ": %s\n", d.Message)

	line, ok := sourceLine(source, d.Span.Line)
	if !ok {
		return
	}
	width := len(strconv.Itoa(d.Span.Line))
	fmt.Fprint(p.w, p.gutter.Sprintf(CheckTextGutter, width, d.Span.Line))
	fmt.Fprintln(p.w, line)

	pad, length := caretLayout(line, d.Span)
	fmt.Fprint(p.w, p.gutter.Sprintf(CheckTextBlankGutter, width, ""))
	fmt.Fprint(p.w, strings.Repeat(" ", pad))
	fmt.Fprintln(p.w, p.caret.Sprint(strings.Repeat(CheckCaret, length)))

	if d.Hint != "" {
		fmt.Fprint(p.w, p.gutter.Sprintf(CheckTextBlankGutter, width, ""))
		fmt.Fprintln(p.w, d.Hint)
	}
}

// sourceLine returns the 1-indexed line of source with tabs shown as spaces
func sourceLine(source string, n int) (string, bool) {
	lines := strings.Split(source, "\n")
	if n < 1 || n > len(lines) {
		return "", false
	}
	line := strings.TrimSuffix(lines[n-1], "\r")
	return strings.ReplaceAll(line, "\t", " "), true
}

// caretLayout returns the display offset and width of span on line,
// measured in terminal cells
func caretLayout(line string, span vartext.Span) (int, int) {
	runes := []rune(line)
	start := min(max(span.StartCol, 0), len(runes))
	end := min(max(span.EndCol, start), len(runes))
	pad := runewidth.StringWidth(string(runes[:start]))
	length := max(runewidth.StringWidth(string(runes[start:end])), 1)
	return pad, length
}
