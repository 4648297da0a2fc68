package helper

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func multipartRequest(t *testing.T, field string, filenames ...string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, name := range filenames {
		part, err := w.CreateFormFile(field, name)
		assert.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		assert.NoError(t, err)
	}
	assert.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestPickFilesCollectsEveryLogo(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		files := PickFiles(c, "logos")
		return c.SendString(fmt.Sprintf("%d", len(files)))
	})

	resp, err := app.Test(multipartRequest(t, "logos", "acme.png", "globex.png", "initech.png"))
	assert.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	assert.NoError(t, err)
	assert.Equal(t, "3", out.String())
}

func TestPickFilesEmptyForm(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		return c.SendString(fmt.Sprintf("%d", len(PickFiles(c, "logos"))))
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	assert.NoError(t, err)
	assert.Equal(t, "0", out.String())
}

func TestPickFileFieldOrder(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		fh := PickFile(c, "logo", "file")
		if fh == nil {
			return c.SendString("")
		}
		return c.SendString(fh.Filename)
	})

	resp, err := app.Test(multipartRequest(t, "file", "fallback.png"))
	assert.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	assert.NoError(t, err)
	assert.Equal(t, "fallback.png", out.String())
}
