package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedProgramme(t *testing.T) {
	assert.True(t, IsAllowedProgramme(ProgrammeX))
	assert.True(t, IsAllowedProgramme(ProgrammeFinlit))
	assert.True(t, IsAllowedProgramme(ProgrammeLead))
	assert.False(t, IsAllowedProgramme("Gradus Y"))
	assert.False(t, IsAllowedProgramme(""))
}

func TestPublicPath(t *testing.T) {
	course := CourseModel{
		CourseName:    "Data Science 101",
		CourseSlug:    "data-science-101",
		Programme:     ProgrammeX,
		ProgrammeSlug: "gradus-x",
	}
	assert.Equal(t, "/gradus-x/data-science-101", course.PublicPath())
}
