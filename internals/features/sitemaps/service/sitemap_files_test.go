package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidFilename(t *testing.T) {
	assert.True(t, ValidFilename("sitemap.xml"))
	assert.True(t, ValidFilename("sitemap-courses.xml"))
	assert.True(t, ValidFilename("custom.xml"))

	assert.False(t, ValidFilename(""))
	assert.False(t, ValidFilename("sitemap.txt"))
	assert.False(t, ValidFilename("../sitemap.xml"))
	assert.False(t, ValidFilename("..\\sitemap.xml"))
	assert.False(t, ValidFilename("dir/sitemap.xml"))
	assert.False(t, ValidFilename("sitemap..xml"))
}

func TestValidPublicFilename(t *testing.T) {
	assert.True(t, ValidPublicFilename("sitemap.xml"))
	assert.True(t, ValidPublicFilename("sitemap-events.xml"))

	// valid for admins, hidden from the public route
	assert.False(t, ValidPublicFilename("custom.xml"))
	assert.False(t, ValidPublicFilename("../sitemap.xml"))
}
