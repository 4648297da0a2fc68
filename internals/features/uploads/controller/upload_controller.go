package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "gradus_backend/internals/helpers"
	ossHelper "gradus_backend/internals/helpers/oss"
)

// Folder categories the generic upload endpoint may target.
var uploadFolders = map[string]ossHelper.AssetFolder{
	"course-images":      ossHelper.FolderCourseImages,
	"lecture-videos":     ossHelper.FolderLectureVideos,
	"banner-images":      ossHelper.FolderBannerImages,
	"blog-images":        ossHelper.FolderBlogImages,
	"event-images":       ossHelper.FolderEventImages,
	"partner-logos":      ossHelper.FolderPartnerLogos,
	"testimonial-videos": ossHelper.FolderTestimonials,
	"expert-videos":      ossHelper.FolderExpertVideos,
	"site-videos":        ossHelper.FolderSiteVideos,
}

// ResolveUploadFolder maps the "folder" form value to a known category.
func ResolveUploadFolder(name string) (ossHelper.AssetFolder, bool) {
	folder, ok := uploadFolders[strings.ToLower(strings.TrimSpace(name))]
	return folder, ok
}

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// Create stores one file under the requested folder category. Images get
// the WebP pipeline, videos are streamed, everything else (PDF notes,
// spreadsheets) is stored as-is with a sniffed content type.
func (ctrl *UploadController) Create(c *fiber.Ctx) error {
	fh := ossHelper.PickFile(c, "file", "video", "image")
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File is required")
	}

	folder, ok := ResolveUploadFolder(c.FormValue("folder"))
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown upload folder")
	}

	blob, err := ossHelper.NewBlobService()
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Media storage is not configured")
	}

	ct := fh.Header.Get("Content-Type")
	var asset ossHelper.MediaAsset
	switch {
	case ossHelper.IsAllowedImageMime(ct):
		asset, err = blob.UploadImage(c.Context(), folder, fh)
	case ossHelper.IsAllowedVideoMime(ct):
		asset, err = blob.UploadVideo(c.Context(), folder, fh)
	default:
		asset, err = blob.UploadRaw(c.Context(), folder, fh)
	}
	if err != nil {
		if errors.Is(err, ossHelper.ErrFileTooLarge) {
			return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "File exceeds the upload limit")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonWithCode(c, fiber.StatusCreated, "File uploaded", asset)
}

// Delete removes one stored object, addressed by public id or, when the
// client only kept the link, by its public URL.
func (ctrl *UploadController) Delete(c *fiber.Ctx) error {
	var req struct {
		PublicID string `json:"publicId"`
		URL      string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	blob, err := ossHelper.NewBlobService()
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Media storage is not configured")
	}

	switch {
	case strings.TrimSpace(req.PublicID) != "":
		err = blob.DeleteByPublicID(c.Context(), req.PublicID)
	case strings.TrimSpace(req.URL) != "":
		err = blob.DeleteByPublicURL(c.Context(), req.URL)
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "publicId or url is required")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to delete object")
	}
	return helper.JsonOK(c, "Object deleted", nil)
}
