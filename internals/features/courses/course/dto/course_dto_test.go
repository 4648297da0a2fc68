package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStringArray(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, NormalizeStringArray([]string{" a ", "", "b", "  "}))
	assert.Empty(t, NormalizeStringArray(nil))
}

func TestNormalizeWeeksDropsEmpty(t *testing.T) {
	in := []Week{
		{Title: " Week 1 ", Points: []string{" intro ", ""}},
		{Title: "", Points: nil},
		{Title: "", Hours: "3 hours", Points: []string{"x"}},
	}
	out := NormalizeWeeks(in)
	assert.Len(t, out, 2)
	assert.Equal(t, "Week 1", out[0].Title)
	assert.Equal(t, []string{"intro"}, out[0].Points)
	assert.Equal(t, "3 hours", out[1].Hours)
}

func TestNormalizePartners(t *testing.T) {
	in := []Partner{
		{Name: " Acme "},
		{},
		{Logo: "https://cdn/logo.png"},
	}
	out := NormalizePartners(in)
	assert.Len(t, out, 2)
	assert.Equal(t, "Acme", out[0].Name)
}

func TestNormalizeCertifications(t *testing.T) {
	in := []Certification{
		{Level: "Foundation", Coverage: []string{" basics "}},
		{},
	}
	out := NormalizeCertifications(in)
	assert.Len(t, out, 1)
	assert.Equal(t, []string{"basics"}, out[0].Coverage)
}
