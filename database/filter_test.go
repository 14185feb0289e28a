package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"chess", "chess"},
		{"100%", `100\%`},
		{"snake_case", `snake\_case`},
		{`back\slash`, `back\\slash`},
		{`%_\`, `\%\_\\`},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, escapeLike(tc.in), "input %q", tc.in)
	}
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%chess%", containsPattern("chess"))
	assert.Equal(t, `%100\%%`, containsPattern("100%"))
	assert.Equal(t, "%%", containsPattern(""))
}

func TestTechTokenJSON(t *testing.T) {
	assert.Equal(t, `["Python"]`, techTokenJSON("Python"))
	assert.Equal(t, `["C++"]`, techTokenJSON("C++"))
	assert.Equal(t, `["say \"hi\""]`, techTokenJSON(`say "hi"`))
}
