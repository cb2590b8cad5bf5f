package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHintFor(t *testing.T) {
	tests := []struct {
		name   string
		reason Reason
		kind   VariableKind
		want   string
	}{
		{"unknown plain", ReasonNameNotFound, KindPlain, "Hint: use {{ name | fallback }} to render a fallback when the value is missing"},
		{"unknown spread", ReasonNameNotFound, KindSpread, ""},
		{"unknown default", ReasonNameNotFound, KindDefault, ""},
		{"mismatch", ReasonKindMismatch, KindSpread, "Hint: list values are rendered with {{ ...name }}, single values with {{ name }}"},
		{"failure", ReasonResolverFailure, KindPlain, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HintFor(tt.reason, tt.kind, StrOpenDelim, StrCloseDelim))
		})
	}
}

func TestHintFor_CustomDelimiters(t *testing.T) {
	hint := HintFor(ReasonNameNotFound, KindPlain, "<%", "%>")
	assert.Contains(t, hint, "<% name | fallback %>")
}

func TestAppendHint(t *testing.T) {
	assert.Equal(t, "msg", AppendHint("msg", ""))
	assert.Equal(t, "msg\nHint: x", AppendHint("msg", "Hint: x"))
}
