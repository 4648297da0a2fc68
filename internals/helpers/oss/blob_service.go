package helper

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"
)

/*
OSSBlobService is the single upload/delete facade the controllers use. Asset
category decides the target folder (env-overridable) and the allowed mime
set; unsupported types are rejected before any network call, oversize files
with ErrFileTooLarge, and a missing configuration with ErrNotConfigured.
*/

// MediaAsset is what a successful upload hands back to the caller, shaped
// after the metadata the clients persist alongside their records.
type MediaAsset struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Folder   string `json:"folder"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Format   string `json:"format,omitempty"`
	Bytes    int64  `json:"bytes,omitempty"`
	// Duration is reported by the client form for videos; object storage
	// does not probe media containers.
	Duration float64 `json:"duration,omitempty"`
}

// Folder categories. Each resolves to an env-configured directory.
type AssetFolder string

const (
	FolderCourseImages  AssetFolder = "course-images"
	FolderLectureVideos AssetFolder = "lecture-videos"
	FolderBannerImages  AssetFolder = "banner-images"
	FolderBlogImages    AssetFolder = "blog-images"
	FolderEventImages   AssetFolder = "event-images"
	FolderPartnerLogos  AssetFolder = "partner-logos"
	FolderTestimonials  AssetFolder = "testimonial-videos"
	FolderExpertVideos  AssetFolder = "expert-videos"
	FolderSiteVideos    AssetFolder = "site-videos"
)

var folderEnvKeys = map[AssetFolder]string{
	FolderCourseImages:  "FOLDER_COURSE_IMAGES",
	FolderLectureVideos: "FOLDER_LECTURE_VIDEOS",
	FolderBannerImages:  "FOLDER_BANNER_IMAGES",
	FolderBlogImages:    "FOLDER_BLOG_IMAGES",
	FolderEventImages:   "FOLDER_EVENT_IMAGES",
	FolderPartnerLogos:  "FOLDER_PARTNER_LOGOS",
	FolderTestimonials:  "FOLDER_TESTIMONIAL_VIDEOS",
	FolderExpertVideos:  "FOLDER_EXPERT_VIDEOS",
	FolderSiteVideos:    "FOLDER_SITE_VIDEOS",
}

// Dir resolves the storage directory for the category.
func (f AssetFolder) Dir() string {
	if key, ok := folderEnvKeys[f]; ok {
		if v := getEnv(key); v != "" {
			return strings.Trim(v, "/")
		}
	}
	return string(f)
}

var allowedImageMimes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var allowedVideoMimes = map[string]bool{
	"video/mp4":        true,
	"video/webm":       true,
	"video/quicktime":  true,
	"video/x-matroska": true,
	"video/x-msvideo":  true,
}

// IsAllowedImageMime reports whether ct is an accepted upload image type.
func IsAllowedImageMime(ct string) bool {
	return allowedImageMimes[normalizeMime(ct)]
}

// IsAllowedVideoMime reports whether ct is an accepted upload video type.
func IsAllowedVideoMime(ct string) bool {
	return allowedVideoMimes[normalizeMime(ct)]
}

func normalizeMime(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}

func maxImageUploadBytes() int64 {
	return int64(envInt("MAX_IMAGE_UPLOAD_MB", 5)) * 1024 * 1024
}

func maxVideoUploadBytes() int64 {
	return int64(envInt("MAX_VIDEO_UPLOAD_MB", 500)) * 1024 * 1024
}

type OSSBlobService struct {
	svc *OSSService
}

// NewBlobService returns the env-configured gateway or ErrNotConfigured.
func NewBlobService() (*OSSBlobService, error) {
	svc, err := DefaultService()
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: svc}, nil
}

// UploadImage recompresses to WebP and stores the result.
func (b *OSSBlobService) UploadImage(ctx context.Context, folder AssetFolder, fh *multipart.FileHeader) (MediaAsset, error) {
	if fh == nil {
		return MediaAsset{}, fmt.Errorf("file is required")
	}
	if fh.Size > maxImageUploadBytes() {
		return MediaAsset{}, ErrFileTooLarge
	}
	if ct := fh.Header.Get("Content-Type"); ct != "" && !IsAllowedImageMime(ct) {
		return MediaAsset{}, fmt.Errorf("unsupported image type %q", normalizeMime(ct))
	}

	src, err := fh.Open()
	if err != nil {
		return MediaAsset{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	data, w, h, err := ConvertToWebP(src, fh.Filename, DefaultWebPOptionsFromEnv())
	if err != nil {
		return MediaAsset{}, err
	}

	base := strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename))
	key := b.svc.BuildObjectKey(folder.Dir(), base+".webp")
	if err := b.svc.UploadStream(ctx, key, bytes.NewReader(data), "image/webp"); err != nil {
		return MediaAsset{}, err
	}

	return MediaAsset{
		URL:      b.svc.PublicURL(key),
		PublicID: key,
		Folder:   folder.Dir(),
		Width:    w,
		Height:   h,
		Format:   "webp",
		Bytes:    int64(len(data)),
	}, nil
}

// UploadVideo streams the file untouched. The mime check runs on the
// multipart header first and again on the sniffed bytes, both before the
// object is sent anywhere.
func (b *OSSBlobService) UploadVideo(ctx context.Context, folder AssetFolder, fh *multipart.FileHeader) (MediaAsset, error) {
	if fh == nil {
		return MediaAsset{}, fmt.Errorf("file is required")
	}
	if fh.Size > maxVideoUploadBytes() {
		return MediaAsset{}, ErrFileTooLarge
	}
	if ct := fh.Header.Get("Content-Type"); ct != "" && !IsAllowedVideoMime(ct) {
		return MediaAsset{}, fmt.Errorf("unsupported video type %q", normalizeMime(ct))
	}

	src, err := fh.Open()
	if err != nil {
		return MediaAsset{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ct, reader, err := DetectContentType(src, fh.Filename)
	if err != nil {
		return MediaAsset{}, err
	}
	if !IsAllowedVideoMime(ct) {
		return MediaAsset{}, fmt.Errorf("unsupported video type %q", normalizeMime(ct))
	}

	key := b.svc.BuildObjectKey(folder.Dir(), fh.Filename)
	if err := b.svc.UploadStream(ctx, key, reader, ct); err != nil {
		return MediaAsset{}, err
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(fh.Filename)), ".")
	return MediaAsset{
		URL:      b.svc.PublicURL(key),
		PublicID: key,
		Folder:   folder.Dir(),
		Format:   format,
		Bytes:    fh.Size,
	}, nil
}

// UploadRaw stores the file as-is with a sniffed content type (PDF notes,
// spreadsheets and the like).
func (b *OSSBlobService) UploadRaw(ctx context.Context, folder AssetFolder, fh *multipart.FileHeader) (MediaAsset, error) {
	if fh == nil {
		return MediaAsset{}, fmt.Errorf("file is required")
	}
	if fh.Size > maxVideoUploadBytes() {
		return MediaAsset{}, ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return MediaAsset{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ct, reader, err := DetectContentType(src, fh.Filename)
	if err != nil {
		return MediaAsset{}, err
	}

	key := b.svc.BuildObjectKey(folder.Dir(), fh.Filename)
	if err := b.svc.UploadStream(ctx, key, reader, ct); err != nil {
		return MediaAsset{}, err
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(fh.Filename)), ".")
	return MediaAsset{
		URL:      b.svc.PublicURL(key),
		PublicID: key,
		Folder:   folder.Dir(),
		Format:   format,
		Bytes:    fh.Size,
	}, nil
}

func (b *OSSBlobService) DeleteByPublicID(ctx context.Context, publicID string) error {
	return b.svc.DeleteObject(ctx, publicID)
}

// DeleteByPublicURL resolves the object key from the URL first; a 404
// from the store counts as deleted.
func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	return b.svc.DeleteByPublicURL(ctx, publicURL)
}

// BestEffortDelete removes the remote object before a DB delete. Failures
// are logged, never fatal: at-most-once cleanup, by the documented
// semantics of record deletion.
func BestEffortDelete(publicID string) {
	if strings.TrimSpace(publicID) == "" {
		return
	}
	blob, err := NewBlobService()
	if err != nil {
		log.Printf("[WARN] skip media cleanup for %s: %v", publicID, err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := blob.DeleteByPublicID(ctx, publicID); err != nil {
		log.Printf("[WARN] media cleanup failed for %s: %v", publicID, err)
	}
}
