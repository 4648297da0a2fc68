package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedVideoMimes(t *testing.T) {
	allowed := []string{
		"video/mp4",
		"VIDEO/MP4",
		"video/webm",
		"video/quicktime",
		"video/mp4; codecs=avc1",
	}
	for _, ct := range allowed {
		assert.True(t, IsAllowedVideoMime(ct), "expected %q to be allowed", ct)
	}

	rejected := []string{
		"image/png",
		"application/pdf",
		"text/html",
		"video/x-flv",
		"",
	}
	for _, ct := range rejected {
		assert.False(t, IsAllowedVideoMime(ct), "expected %q to be rejected", ct)
	}
}

func TestAllowedImageMimes(t *testing.T) {
	assert.True(t, IsAllowedImageMime("image/jpeg"))
	assert.True(t, IsAllowedImageMime("image/png; charset=binary"))
	assert.False(t, IsAllowedImageMime("image/svg+xml"))
	assert.False(t, IsAllowedImageMime("video/mp4"))
}

func TestExtractKeyFromPublicURL(t *testing.T) {
	key, err := ExtractKeyFromPublicURL("https://bucket.oss-ap-south-1.aliyuncs.com/uploads/lecture-videos/intro_20250101_abc.mp4")
	assert.NoError(t, err)
	assert.Equal(t, "uploads/lecture-videos/intro_20250101_abc.mp4", key)

	_, err = ExtractKeyFromPublicURL("")
	assert.Error(t, err)
}

func TestObjectSlug(t *testing.T) {
	assert.Equal(t, "intro-lecture", objectSlug("Intro Lecture"))
	assert.Equal(t, "file", objectSlug("???"))
}

func TestFolderDirDefaults(t *testing.T) {
	assert.Equal(t, "lecture-videos", FolderLectureVideos.Dir())
	assert.Equal(t, "banner-images", FolderBannerImages.Dir())
}
