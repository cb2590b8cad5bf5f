package vartext_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-vartext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// E2E Integration Tests - Zero Mocks
// These tests exercise the full pipeline from the public API to final output.

func TestE2E_Greeting(t *testing.T) {
	out, err := vartext.Render(context.Background(), "Hello, {{name}}!", vartext.MapResolver{
		"name": "World",
	})

	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", out)
}

func TestE2E_UnknownVariable(t *testing.T) {
	out, err := vartext.Render(context.Background(), "Hello, {{user}}!", vartext.MapResolver{})

	require.Error(t, err)
	assert.Empty(t, out)

	serrs, ok := vartext.AsSubstitutionErrors(err)
	require.True(t, ok)
	require.Len(t, serrs, 1)
	assert.Equal(t, "user", serrs[0].Name)
	assert.Equal(t, vartext.ReasonNameNotFound, serrs[0].Reason)
	assert.Equal(t, vartext.Span{Line: 1, StartCol: 7, EndCol: 15}, serrs[0].Span)
	assert.True(t, errors.Is(err, vartext.ErrNameNotFound))
	assert.Contains(t, err.Error(), "unknown variable `user` at line 1, column 8")
}

func TestE2E_UnterminatedVariable(t *testing.T) {
	out, err := vartext.Render(context.Background(), "Hello, {{name", vartext.MapResolver{"name": "x"})

	require.Error(t, err)
	assert.Empty(t, out)

	perr, ok := vartext.AsParseError(err)
	require.True(t, ok)
	assert.Equal(t, vartext.UnterminatedVariable, perr.Kind)
	assert.Equal(t, vartext.Span{Line: 1, StartCol: 7, EndCol: 9}, perr.Span)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	line, ok := customErr.GetMetadata(vartext.MetaKeyLine)
	assert.True(t, ok)
	assert.Equal(t, "1", line)
}

func TestE2E_NoVariables(t *testing.T) {
	templates := []string{
		"",
		"plain text",
		"Dear team,\n\n  the build is green.\n",
		"punctuation: a.b, c-d; (e) [f] {g}!",
	}
	for _, tmpl := range templates {
		out, err := vartext.Render(context.Background(), tmpl, nil)
		require.NoError(t, err)
		assert.Equal(t, tmpl, out)
	}
}

func TestE2E_AdjacentVariables(t *testing.T) {
	out, err := vartext.Render(context.Background(), "{{a}}{{b}}", vartext.MapResolver{"a": "x", "b": "y"})

	require.NoError(t, err)
	assert.Equal(t, "xy", out)
}

func TestE2E_MultilineTemplate(t *testing.T) {
	template := `Dear {{ customer.name | customer }},

Your order {{ order.id }} contains {{ ...order.items }}.
Total: {{ order.total }} {{ currency | EUR }}
`
	values := vartext.MapResolver{
		"customer": map[string]any{"name": "Ada"},
		"order": map[string]any{
			"id":    1042,
			"items": []string{"keyboard", "mouse"},
			"total": 99.5,
		},
	}

	out, err := vartext.Render(context.Background(), template, values)
	require.NoError(t, err)

	want := `Dear Ada,

Your order 1042 contains keyboard, mouse.
Total: 99.5 EUR
`
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestE2E_AllFailuresReported(t *testing.T) {
	template := "{{ a }} {{ b }}\n{{ ...c }} {{ d | ok }} {{ e }}"
	values := vartext.MapResolver{"b": "B", "c": "not a list"}

	_, err := vartext.Render(context.Background(), template, values)
	require.Error(t, err)

	serrs, ok := vartext.AsSubstitutionErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "c", "e"}, serrs.Names())
	assert.Equal(t, vartext.ReasonKindMismatch, serrs[1].Reason)
	assert.Equal(t, 2, serrs[1].Span.Line)
	assert.True(t, strings.HasPrefix(err.Error(), "3 variable(s) could not be resolved:"))
}

func TestE2E_Deterministic(t *testing.T) {
	template := "{{ greeting | Hi }}, {{ name }}!\n\t{{ ...tags }}"
	values := vartext.MapResolver{"name": "Lin", "tags": []any{"a", 1, true}}

	first, err := vartext.Render(context.Background(), template, values)
	require.NoError(t, err)
	assert.Equal(t, "Hi, Lin!\n a, 1, true", first)

	for i := 0; i < 20; i++ {
		out, err := vartext.Render(context.Background(), template, values)
		require.NoError(t, err)
		assert.Equal(t, first, out)
	}
}

func TestE2E_CustomResolver(t *testing.T) {
	resolver := vartext.ResolverFunc(func(_ context.Context, name string, kind vartext.VariableKind) (string, error) {
		if kind == vartext.KindSpread {
			return "", vartext.ErrKindMismatch
		}
		return strings.ToUpper(name), nil
	})

	out, err := vartext.Render(context.Background(), "{{ shout }} {{ it }}", resolver)
	require.NoError(t, err)
	assert.Equal(t, "SHOUT IT", out)
}

func TestE2E_PipelineStages(t *testing.T) {
	engine := vartext.MustNew()

	ts := engine.Tokenize("Hi {{ name }}")
	assert.Equal(t, 6, ts.Len())

	ss, err := engine.Parse(ts)
	require.NoError(t, err)
	assert.True(t, ts.Consumed())
	require.Len(t, ss.Variables(), 1)

	out, err := engine.Substitute(context.Background(), ss, vartext.MapResolver{"name": "Bo"})
	require.NoError(t, err)
	assert.True(t, ss.Consumed())

	assert.Equal(t, "Hi Bo", engine.Generate(out))
	assert.True(t, out.Consumed())
}
