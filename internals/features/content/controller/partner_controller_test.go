package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveLogoName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"acme-corp.png", "acme corp"},
		{"big_bank.webp", "big bank"},
		{"Plain.svg", "Plain"},
		{"noext", "noext"},
		{"-___-.png", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, deriveLogoName(tc.in), "deriveLogoName(%q)", tc.in)
	}
}
