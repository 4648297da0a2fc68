package helper

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
)

// Field names the admin client uses on multipart endpoints, in the order
// they should be tried.
var defaultFileFieldCandidates = []string{
	"file", "video", "thumbnail", "logo", "image",
}

// PickFile returns the first multipart file found under the given field
// names (or the default candidates when none are given). A nil return means
// the request carried no file at all.
func PickFile(c *fiber.Ctx, fields ...string) *multipart.FileHeader {
	if len(fields) == 0 {
		fields = defaultFileFieldCandidates
	}
	for _, name := range fields {
		if fh, err := c.FormFile(name); err == nil && fh != nil && fh.Filename != "" {
			return fh
		}
	}
	return nil
}

// PickFiles collects every file under one field name ("logos", multi-file
// partner uploads).
func PickFiles(c *fiber.Ctx, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil || form.File == nil {
		return nil
	}
	out := make([]*multipart.FileHeader, 0, len(form.File[field]))
	for _, fh := range form.File[field] {
		if fh != nil && fh.Filename != "" {
			out = append(out, fh)
		}
	}
	return out
}
