package cv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"9876543210", "+91 9876543210"},
		{"+919876543210", "+91 9876543210"},
		{"+91-98765 43210", "+91 9876543210"},
		{"919876543210", "+919876543210"},
		{"+14155550123", "+14155550123"},
		{"+447911123456", "+447911123456"},
		{"(98) 765", "98765"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.in))
		})
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	for _, in := range []string{"9876543210", "+919876543210", "+91 9000000000"} {
		once := NormalizePhone(in)
		assert.Equal(t, once, NormalizePhone(once), in)
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "none", text: "call me maybe", want: ""},
		{name: "bare ten digits", text: "Phone 9876543210", want: "+91 9876543210"},
		{name: "international prefix", text: "Tel: +91 9123456780", want: "+91 9123456780"},
		{name: "first wins", text: "9000000001 / 9000000002", want: "+91 9000000001"},
		{name: "too short ignored", text: "pin 560001", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractPhone(tt.text))
		})
	}
}
