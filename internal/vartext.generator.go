package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Generator joins an output stream back into text. Whitespace is rebuilt
// from span gaps: line changes become newlines and column gaps become
// spaces. Spaces before a line break are not written. Substituted tokens are laid out by their own spans inside the
// extent of the variable they replaced.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator creates a text generator
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

// Generate consumes the output stream and returns the rendered text
func (g *Generator) Generate(out *OutputStream) string {
	tokens, slots, end := out.take()
	g.logger.Debug(LogMsgGeneratorStart, zap.Int(LogFieldTokens, len(tokens)))

	var buf textBuffer
	w := newLayoutWriter(&buf)
	si := 0

	for i := 0; i < len(tokens); {
		t := tokens[i]
		anchor := t.Attribution().Start()

		// slots that produced no tokens still occupy their source extent
		for si < len(slots) && slots[si].Span.Start().Before(anchor) {
			w.slot(slots[si], nil)
			si++
		}

		if !t.Synthetic {
			w.token(t)
			i++
			continue
		}

		j := i + 1
		for j < len(tokens) && tokens[j].Synthetic && tokens[j].Origin == t.Origin {
			j++
		}
		slot := Slot{Span: t.Origin, Extent: tokens[j-1].Span.End()}
		if si < len(slots) && slots[si].Span == t.Origin {
			slot = slots[si]
			si++
		}
		w.slot(slot, tokens[i:j])
		i = j
	}
	for ; si < len(slots); si++ {
		w.slot(slots[si], nil)
	}
	w.moveTo(end)

	text := buf.String()
	g.logger.Debug(LogMsgGeneratorEnd, zap.Int(LogFieldOutput, len(text)))
	return text
}

// textBuffer holds spaces back until text follows them, so whitespace at
// the end of a line is dropped when a newline comes next
type textBuffer struct {
	sb      strings.Builder
	pending int
}

func (b *textBuffer) space(n int) {
	b.pending += n
}

func (b *textBuffer) newline(n int) {
	b.pending = 0
	b.sb.WriteString(strings.Repeat(StrNewline, n))
}

func (b *textBuffer) text(s string) {
	if b.pending > 0 {
		b.sb.WriteString(strings.Repeat(" ", b.pending))
		b.pending = 0
	}
	b.sb.WriteString(s)
}

// String flushes spaces still pending on the last line
func (b *textBuffer) String() string {
	b.text(StrEmpty)
	return b.sb.String()
}

// layoutWriter writes tokens at positions of one layout, filling the gaps
// with newlines and spaces
type layoutWriter struct {
	buf    *textBuffer
	cursor Position
}

func newLayoutWriter(buf *textBuffer) *layoutWriter {
	return &layoutWriter{buf: buf, cursor: Position{Line: 1}}
}

// moveTo advances the cursor to p. A target behind the cursor writes nothing.
func (w *layoutWriter) moveTo(p Position) {
	if p.Line > w.cursor.Line {
		w.buf.newline(p.Line - w.cursor.Line)
		w.cursor = Position{Line: p.Line}
	}
	if p.Line == w.cursor.Line && p.Col > w.cursor.Col {
		w.buf.space(p.Col - w.cursor.Col)
	}
	w.cursor = p
}

// token writes t at its own span
func (w *layoutWriter) token(t Token) {
	w.moveTo(t.Span.Start())
	w.buf.text(t.Text)
	w.cursor = t.Span.End()
}

// slot writes the replacement tokens of a variable. They are positioned in
// the replacement's own layout, which starts where the variable starts.
func (w *layoutWriter) slot(slot Slot, tokens []Token) {
	w.moveTo(slot.Span.Start())

	inner := newLayoutWriter(w.buf)
	for _, t := range tokens {
		inner.token(t)
	}
	inner.moveTo(slot.Extent)

	w.cursor = slot.Span.End()
}
