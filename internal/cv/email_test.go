package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a@b.com", true},
		{"first.last+tag@mail.co.in", true},
		{"not-an-email", false},
		{"a@b", false},
		{"a b@c.com", false},
		{"a\u00a0b@c.com", false},
		{"a@c\u2009d.com", false},
		{"a@b.co\ufeff", false},
		{"a@@b.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.in))
		})
	}
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "none", text: "no contact here", want: ""},
		{name: "single", text: "Mail: Jane.Doe@Acme.io", want: "Jane.Doe@Acme.io"},
		{name: "first by position", text: "b@second.org then a@first.org", want: "b@second.org"},
		{name: "placeholder skipped", text: "john@example.com\nreal@candidate.dev", want: "real@candidate.dev"},
		{name: "placeholder subdomain skipped", text: "x@mail.test.com y@ok.in", want: "y@ok.in"},
		{name: "only placeholders", text: "a@example.com b@test.com", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractEmail(tt.text))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@acme.io", NormalizeEmail("  Jane@ACME.io "))
}
