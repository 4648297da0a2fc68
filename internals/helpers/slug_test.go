package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Data Science 101", "data-science-101"},
		{"Full Stack & Dev/Ops", "full-stack-and-dev-ops"},
		{"Gradus X", "gradus-x"},
		{"Gradus Finlit", "gradus-finlit"},
		{"  AI &  ML  ", "ai-and-ml"},
		{"C++ Bootcamp", "c-and-and-bootcamp"},
		{"snake_case_name", "snake-case-name"},
		{"Résumé Writing", "re-sume-writing"},
		{"Naïve Bayes & ML", "nai-ve-bayes-and-ml"},
		{"", ""},
		{"---", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Full Stack & Dev/Ops",
		"Data Science 101",
		"Product Management",
		"Finance for Founders & CFOs",
		"Résumé Writing",
	}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "Slugify must be idempotent for %q", in)
	}
}
