package textcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"imma", "Imma"},
		{"computer science", "Computer Science"},
		{"MATHEMATICS", "Mathematics"},
		{"o'neil", "O'neil"},
		{"hello2world", "Hello2world"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Title(c.in), "Title(%q)", c.in)
	}
}

func TestCapitalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"b", "B"},
		{"A", "A"},
		{"a+", "A+"},
		{"pASS", "Pass"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Capitalize(c.in), "Capitalize(%q)", c.in)
	}
}
