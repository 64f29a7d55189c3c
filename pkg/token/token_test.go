package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{name: "none", in: "plain text", want: nil},
		{name: "single", in: "Hello #{NAME}", want: []Token{"#{NAME}"}},
		{name: "duplicates_kept", in: "#{A}#{A}", want: []Token{"#{A}", "#{A}"}},
		{name: "embedded", in: "pre#{A}post_#{B}.txt", want: []Token{"#{A}", "#{B}"}},
		{name: "empty_braces_ignored", in: "#{} #{x}", want: []Token{"#{x}"}},
		{name: "no_hash", in: "{NAME} ${NAME}", want: nil},
		{name: "spaces_inside", in: "#{project name}", want: []Token{"#{project name}"}},
		{name: "unterminated", in: "#{NAME", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Find(tt.in))
		})
	}
}

func TestTokenHelpers(t *testing.T) {
	assert.True(t, Token("#{NAME}").Valid())
	assert.False(t, Token("x#{NAME}").Valid())
	assert.False(t, Token("#{A}#{B}").Valid())

	assert.Equal(t, Token("#{NAME}"), Normalize("NAME"))
	assert.Equal(t, Token("#{NAME}"), Normalize("#{NAME}"))

	rules := Rules([]Binding{{Token: "#{A}", Value: "a"}, {Token: "#{B}", Value: ""}})
	if assert.Len(t, rules, 2) {
		assert.Equal(t, "#{A}", rules[0].FromText)
		assert.Equal(t, "a", rules[0].ToText)
		assert.Equal(t, "", rules[1].ToText)
	}
}
