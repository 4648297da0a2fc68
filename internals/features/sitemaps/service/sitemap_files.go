package service

import (
	"os"
	"path/filepath"
	"strings"

	"gradus_backend/internals/configs"
)

const defaultSitemap = `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
</urlset>
`

// Dir resolves the directory sitemap files live in.
func Dir() string {
	return configs.GetEnv("SITEMAP_DIR", "./data/sitemaps")
}

// ValidFilename rejects traversal and anything that is not a flat .xml
// file name.
func ValidFilename(name string) bool {
	if name == "" || strings.Contains(name, "..") {
		return false
	}
	if strings.ContainsAny(name, "/\\") {
		return false
	}
	return strings.HasSuffix(name, ".xml")
}

// ValidPublicFilename additionally restricts the public pass-through to
// sitemap*.xml.
func ValidPublicFilename(name string) bool {
	return ValidFilename(name) && strings.HasPrefix(name, "sitemap")
}

// List returns the .xml file names in the sitemap directory, creating
// the directory and a default sitemap.xml when empty.
func List() ([]string, error) {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".xml") {
			names = append(names, e.Name())
		}
	}

	if len(names) == 0 {
		if err := os.WriteFile(filepath.Join(dir, "sitemap.xml"), []byte(defaultSitemap), 0o644); err != nil {
			return nil, err
		}
		names = append(names, "sitemap.xml")
	}
	return names, nil
}

// Read returns the content of one sitemap file.
func Read(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(Dir(), name))
}

// Write replaces the content of one sitemap file.
func Write(name string, content []byte) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(Dir(), name), content, 0o644)
}
