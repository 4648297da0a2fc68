package controller

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	ossHelper "gradus_backend/internals/helpers/oss"
)

func TestResolveUploadFolder(t *testing.T) {
	folder, ok := ResolveUploadFolder("course-images")
	assert.True(t, ok)
	assert.Equal(t, ossHelper.FolderCourseImages, folder)

	folder, ok = ResolveUploadFolder("  Lecture-Videos ")
	assert.True(t, ok)
	assert.Equal(t, ossHelper.FolderLectureVideos, folder)

	_, ok = ResolveUploadFolder("secrets")
	assert.False(t, ok)
	_, ok = ResolveUploadFolder("")
	assert.False(t, ok)
}

func newUploadApp() *fiber.App {
	app := fiber.New()
	ctrl := NewUploadController()
	app.Post("/uploads", ctrl.Create)
	return app
}

func uploadRequest(t *testing.T, folder string, withFile bool) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if folder != "" {
		assert.NoError(t, w.WriteField("folder", folder))
	}
	if withFile {
		part, err := w.CreateFormFile("file", "notes.pdf")
		assert.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 fake"))
		assert.NoError(t, err)
	}
	assert.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/uploads", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestCreateRequiresFile(t *testing.T) {
	app := newUploadApp()

	resp, err := app.Test(uploadRequest(t, "course-images", false))
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateRejectsUnknownFolder(t *testing.T) {
	app := newUploadApp()

	resp, err := app.Test(uploadRequest(t, "not-a-folder", true))
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateUnavailableWithoutStorage(t *testing.T) {
	// no OSS env in the test environment, so the gateway reports
	// not-configured before any network call
	app := newUploadApp()

	resp, err := app.Test(uploadRequest(t, "course-images", true))
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
