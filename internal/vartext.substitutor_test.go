package internal

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testResolver resolves from a map. Values prefixed with "list:" are lists
// and only fit spread references.
type testResolver map[string]string

func (r testResolver) Resolve(_ context.Context, name string, kind VariableKind) (string, error) {
	v, ok := r[name]
	if !ok {
		return "", ErrNameNotFound
	}
	items, isList := strings.CutPrefix(v, "list:")
	if isList != (kind == KindSpread) {
		return "", ErrKindMismatch
	}
	return items, nil
}

func (r testResolver) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type failingResolver struct{ err error }

func (f failingResolver) Resolve(context.Context, string, VariableKind) (string, error) {
	return "", f.err
}

func substituteString(t *testing.T, config SubstitutorConfig, input string, r NameResolver) (*OutputStream, SubstitutionErrors) {
	t.Helper()
	ss, err := parseString(t, input)
	require.NoError(t, err)
	sub := NewSubstitutor(config, newTestTokenizer(), zap.NewNop())
	return sub.Substitute(context.Background(), ss, r)
}

func TestSubstitutor_ReplacesVariables(t *testing.T) {
	out, errs := substituteString(t, DefaultSubstitutorConfig(), "Hello, {{name}}!", testResolver{"name": "big World"})
	require.Empty(t, errs)

	tokens := out.Tokens()
	require.Len(t, tokens, 5)
	assert.Equal(t, "Hello", tokens[0].Text)
	assert.False(t, tokens[0].Synthetic)

	varSpan := NewSpan(1, 7, 15)
	for _, tok := range tokens[2:4] {
		assert.True(t, tok.Synthetic)
		assert.Equal(t, varSpan, tok.Origin)
		assert.Equal(t, varSpan, tok.Attribution())
	}
	assert.Equal(t, NewSpan(1, 0, 3), tokens[2].Span)
	assert.Equal(t, NewSpan(1, 4, 9), tokens[3].Span)
	assert.Equal(t, "!", tokens[4].Text)

	slots := out.Slots()
	require.Len(t, slots, 1)
	assert.Equal(t, Slot{Span: varSpan, Extent: Position{Line: 1, Col: 9}}, slots[0])
}

func TestSubstitutor_DefaultFallback(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		resolver testResolver
		want     []string
		reasons  []Reason
	}{
		{
			name:     "fallback when unknown",
			input:    "{{ name | dear friend }}",
			resolver: testResolver{},
			want:     []string{"dear", "friend"},
		},
		{
			name:     "value wins over fallback",
			input:    "{{ name | friend }}",
			resolver: testResolver{"name": "Ada"},
			want:     []string{"Ada"},
		},
		{
			name:     "empty fallback",
			input:    "{{ name | }}",
			resolver: testResolver{},
			want:     nil,
		},
		{
			name:     "kind mismatch is not masked by fallback",
			input:    "{{ name | friend }}",
			resolver: testResolver{"name": "list:a"},
			want:     nil,
			reasons:  []Reason{ReasonKindMismatch},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errs := substituteString(t, DefaultSubstitutorConfig(), tt.input, tt.resolver)

			var reasons []Reason
			for _, e := range errs {
				reasons = append(reasons, e.Reason)
			}
			assert.Equal(t, tt.reasons, reasons)

			var texts []string
			for _, tok := range out.Tokens() {
				texts = append(texts, tok.Text)
			}
			assert.Equal(t, tt.want, texts)
		})
	}
}

func TestSubstitutor_AccumulatesErrors(t *testing.T) {
	input := "{{ a }} {{ b }}\n{{ c }} {{ ...d }}"
	out, errs := substituteString(t, DefaultSubstitutorConfig(), input, testResolver{"b": "B", "d": "one"})

	require.Len(t, errs, 3)
	assert.Equal(t, "a", errs[0].Name)
	assert.Equal(t, ReasonNameNotFound, errs[0].Reason)
	assert.Equal(t, NewSpan(1, 0, 7), errs[0].Span)

	assert.Equal(t, "c", errs[1].Name)
	assert.Equal(t, NewSpan(2, 0, 7), errs[1].Span)

	assert.Equal(t, "d", errs[2].Name)
	assert.Equal(t, KindSpread, errs[2].Kind)
	assert.Equal(t, ReasonKindMismatch, errs[2].Reason)

	assert.Equal(t, []string{"a", "c", "d"}, errs.Names())
	assert.Len(t, out.Slots(), 4)
	assert.True(t, errors.Is(errs, ErrNameNotFound))
	assert.True(t, errors.Is(errs, ErrKindMismatch))
}

func TestSubstitutor_MissingPolicy(t *testing.T) {
	t.Run("omit", func(t *testing.T) {
		out, errs := substituteString(t, DefaultSubstitutorConfig(), "x {{ y }}", nil)
		require.Len(t, errs, 1)
		assert.Equal(t, 1, out.Len())
		assert.Len(t, out.Slots(), 1)
	})

	t.Run("placeholder", func(t *testing.T) {
		config := DefaultSubstitutorConfig()
		config.Policy = MissingPlaceholder
		out, errs := substituteString(t, config, "x {{ y }}", nil)
		require.Len(t, errs, 1)

		tokens := out.Tokens()
		require.Len(t, tokens, 4)
		assert.Equal(t, "<", tokens[1].Text)
		assert.Equal(t, "y", tokens[2].Text)
		assert.Equal(t, ">", tokens[3].Text)
		assert.True(t, tokens[2].Synthetic)
	})

	t.Run("custom placeholder", func(t *testing.T) {
		config := DefaultSubstitutorConfig()
		config.Policy = MissingPlaceholder
		config.Placeholder = func(name string, kind VariableKind) string {
			return "MISSING " + kind.String() + " " + name
		}
		out, _ := substituteString(t, config, "{{ ...y }}", testResolver{})
		require.Equal(t, 3, out.Len())
		assert.Equal(t, "spread", out.Tokens()[1].Text)
	})

	assert.Equal(t, PolicyNameOmit, MissingOmit.String())
	assert.Equal(t, PolicyNamePlaceholder, MissingPlaceholder.String())
	assert.Equal(t, KindNameUnknown, MissingPolicy(9).String())
}

func TestSubstitutor_ResolverFailure(t *testing.T) {
	cause := errors.New("connection reset")
	_, errs := substituteString(t, DefaultSubstitutorConfig(), "{{ a }}", failingResolver{err: cause})

	require.Len(t, errs, 1)
	assert.Equal(t, ReasonResolverFailure, errs[0].Reason)
	assert.True(t, errors.Is(errs, cause))
	assert.Equal(t, "resolver failed `a` at line 1, column 1: connection reset", errs[0].Error())

	var customErr *cuserr.CustomError
	require.True(t, errors.As(errs[0], &customErr))
	reason, ok := customErr.GetMetadata(MetaKeyReason)
	assert.True(t, ok)
	assert.Equal(t, ReasonNameResolverFailure, reason)
}

func TestSubstitutor_WrappedSentinels(t *testing.T) {
	wrapped := errors.Join(errors.New("lookup failed"), ErrNameNotFound)
	_, errs := substituteString(t, DefaultSubstitutorConfig(), "{{ a | b }}", failingResolver{err: wrapped})
	assert.Empty(t, errs, "a wrapped ErrNameNotFound still selects the fallback")
}

func TestSubstitutor_SuggestionsAndHints(t *testing.T) {
	resolver := testResolver{"name": "x", "names": "y", "other": "z"}

	t.Run("suggestions and hint", func(t *testing.T) {
		_, errs := substituteString(t, DefaultSubstitutorConfig(), "{{ nme }}", resolver)
		require.Len(t, errs, 1)
		assert.Equal(t, []string{"name", "names"}, errs[0].Suggestions)
		assert.Equal(t,
			"unknown variable `nme` at line 1, column 1 (did you mean `name`, `names`?)\n"+
				"Hint: use {{ name | fallback }} to render a fallback when the value is missing",
			errs[0].Error())
	})

	t.Run("disabled", func(t *testing.T) {
		config := DefaultSubstitutorConfig()
		config.MaxSuggestions = 0
		config.Hints = false
		_, errs := substituteString(t, config, "{{ nme }}", resolver)
		require.Len(t, errs, 1)
		assert.Empty(t, errs[0].Suggestions)
		assert.Equal(t, "unknown variable `nme` at line 1, column 1", errs[0].Error())
	})

	t.Run("no suggestions for kind mismatch", func(t *testing.T) {
		config := DefaultSubstitutorConfig()
		config.Hints = false
		_, errs := substituteString(t, config, "{{ ...name }}", resolver)
		require.Len(t, errs, 1)
		assert.Empty(t, errs[0].Suggestions)
		assert.Equal(t, "value does not fit variable kind `name` at line 1, column 1", errs[0].Error())
	})
}

func TestSubstitutor_PassesContext(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "tenant-1")

	var seen any
	r := resolverFunc(func(ctx context.Context, name string, _ VariableKind) (string, error) {
		seen = ctx.Value(ctxKey{})
		return name, nil
	})

	ss, err := parseString(t, "{{ a }}")
	require.NoError(t, err)
	_, errs := NewSubstitutor(DefaultSubstitutorConfig(), newTestTokenizer(), nil).Substitute(ctx, ss, r)
	require.Empty(t, errs)
	assert.Equal(t, "tenant-1", seen)
}

func TestSubstitutor_ConsumesSymbolStream(t *testing.T) {
	ss, err := parseString(t, "{{ a }}")
	require.NoError(t, err)
	sub := NewSubstitutor(DefaultSubstitutorConfig(), newTestTokenizer(), nil)

	_, _ = sub.Substitute(context.Background(), ss, testResolver{"a": "1"})
	assert.True(t, ss.Consumed())
	assert.Panics(t, func() {
		_, _ = sub.Substitute(context.Background(), ss, testResolver{"a": "1"})
	})
}

type resolverFunc func(ctx context.Context, name string, kind VariableKind) (string, error)

func (f resolverFunc) Resolve(ctx context.Context, name string, kind VariableKind) (string, error) {
	return f(ctx, name, kind)
}
