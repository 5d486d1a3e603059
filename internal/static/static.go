// Package static embeds static files into the binary and copies them to the
// filesystem
package static

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ayoisaiah/ecofocus/internal/osutil"
)

const (
	filesDir = "files"
	iconFile = "icon.svg"
)

//go:embed files/*
var embeddedFiles embed.FS

// Install copies the embedded files into dataDir. Files that already exist
// are left alone so users may replace them.
func Install(dataDir string) error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := embeddedFiles.ReadFile(path)
			if err != nil {
				return err
			}

			// embed paths always use forward slashes
			stripped := strings.TrimPrefix(path, filesDir+"/")

			destPath := filepath.Join(dataDir, "static", filepath.FromSlash(stripped))

			if _, err := os.Stat(destPath); os.IsNotExist(err) {
				if err := os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission); err != nil {
					return err
				}

				if err := os.WriteFile(destPath, b, 0o644); err != nil {
					return err
				}
			}

			return nil
		},
	)
}

// IconPath returns the location of the notification icon installed in
// dataDir, or an empty string if it is missing.
func IconPath(dataDir string) string {
	p := filepath.Join(dataDir, "static", iconFile)

	if _, err := os.Stat(p); err != nil {
		return ""
	}

	return p
}
