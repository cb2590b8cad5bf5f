package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func generateString(t *testing.T, input string, r NameResolver) string {
	t.Helper()
	out, errs := substituteString(t, DefaultSubstitutorConfig(), input, r)
	require.Empty(t, errs)
	return NewGenerator(zap.NewNop()).Generate(out)
}

func TestGenerator_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"Hello, world!",
		"  indented line\nsecond line\n",
		"a,b;c  d!!  e",
		"line one\n\n\nline four",
		"trailing spaces on the last line   ",
		"}} lone close delimiter {",
		"unicode: grüße, 世界!",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, input, generateString(t, input, nil))
		})
	}
}

func TestGenerator_Normalization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tab becomes a space", "a\tb", "a b"},
		{"trailing spaces before newline dropped", "a   \nb", "a\nb"},
		{"crlf becomes lf", "a\r\nb\r\n", "a\nb\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, generateString(t, tt.input, nil))
		})
	}
}

func TestGenerator_Substitution(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		resolver testResolver
		want     string
	}{
		{
			name:     "inline",
			input:    "Hello, {{name}}!",
			resolver: testResolver{"name": "World"},
			want:     "Hello, World!",
		},
		{
			name:     "adjacent variables",
			input:    "{{a}}{{b}}",
			resolver: testResolver{"a": "x", "b": "y"},
			want:     "xy",
		},
		{
			name:     "spaced variables",
			input:    "{{ a }} and {{ b }}",
			resolver: testResolver{"a": "x", "b": "y"},
			want:     "x and y",
		},
		{
			name:     "longer value shifts the rest of the line",
			input:    "[{{v}}] end",
			resolver: testResolver{"v": "a much longer value"},
			want:     "[a much longer value] end",
		},
		{
			name:     "empty value keeps surrounding spacing",
			input:    "a {{ e }} b",
			resolver: testResolver{"e": ""},
			want:     "a  b",
		},
		{
			name:     "empty value at end of line",
			input:    "a {{ e }}\nb",
			resolver: testResolver{"e": ""},
			want:     "a\nb",
		},
		{
			name:     "value whitespace is preserved",
			input:    "[{{v}}]",
			resolver: testResolver{"v": " v "},
			want:     "[ v ]",
		},
		{
			name:     "multi-line value",
			input:    "x {{ v }} y\nz",
			resolver: testResolver{"v": "1\n2"},
			want:     "x 1\n2 y\nz",
		},
		{
			name:     "variable on later line",
			input:    "title\n\n  {{ body }}\n",
			resolver: testResolver{"body": "text"},
			want:     "title\n\n  text\n",
		},
		{
			name:     "fallback text",
			input:    "Dear {{ name | valued customer }},",
			resolver: testResolver{},
			want:     "Dear valued customer,",
		},
		{
			name:     "spread",
			input:    "Items: {{ ...items }}.",
			resolver: testResolver{"items": "list:a, b, c"},
			want:     "Items: a, b, c.",
		},
		{
			name:     "value containing delimiters is not re-parsed",
			input:    "{{ v }}",
			resolver: testResolver{"v": "{{ other }}"},
			want:     "{{ other }}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, generateString(t, tt.input, tt.resolver))
		})
	}
}

func TestGenerator_Placeholder(t *testing.T) {
	config := DefaultSubstitutorConfig()
	config.Policy = MissingPlaceholder

	out, errs := substituteString(t, config, "Hi {{ who }}!", nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "Hi <who>!", NewGenerator(nil).Generate(out))
}

func TestGenerator_Deterministic(t *testing.T) {
	input := "{{ a }}\n\t{{ ...b }} {{ c | d }}\n"
	r := testResolver{"a": "1", "b": "list:x, y"}
	first := generateString(t, input, r)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, generateString(t, input, r))
	}
}

func TestGenerator_ConsumesOutputStream(t *testing.T) {
	out := NewOutputStream([]Token{NewWordToken("a", NewSpan(1, 0, 1))}, nil, Position{Line: 1, Col: 1})
	gen := NewGenerator(nil)

	assert.Equal(t, "a", gen.Generate(out))
	assert.True(t, out.Consumed())
	assert.PanicsWithValue(t, ErrMsgStreamConsumed, func() {
		gen.Generate(out)
	})
}

func TestGenerator_HandBuiltStream(t *testing.T) {
	origin := NewSpan(1, 2, 9)
	tokens := []Token{
		NewWordToken("a", NewSpan(1, 0, 1)),
		NewWordToken("x", NewSpan(1, 0, 1)).withOrigin(origin),
		NewWordToken("b", NewSpan(1, 10, 11)),
	}

	// without a slot the synthetic group spans only its own tokens
	out := NewOutputStream(tokens, nil, Position{Line: 1, Col: 11})
	assert.Equal(t, "a x b", NewGenerator(nil).Generate(out))
}
