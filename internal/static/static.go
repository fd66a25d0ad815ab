// Package static embeds static files into the binary and copies them to the
// filesystem
package static

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/quiver/internal/osutil"
)

const (
	filesDir = "files"

	// IconFile is the notification icon installed into the data directory.
	IconFile = "icon.svg"
)

//go:embed files/*
var embeddedFiles embed.FS

// Install copies the embedded files into the data directory of appDir.
// Files that already exist are left untouched.
func Install(appDir string) error {
	return install(embeddedFiles, appDir, xdg.DataFile)
}

func install(
	fsys fs.FS,
	appDir string,
	dataFile func(relPath string) (string, error),
) error {
	return fs.WalkDir(
		fsys,
		filesDir,
		func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := fs.ReadFile(fsys, p)
			if err != nil {
				return err
			}

			stripped := strings.TrimPrefix(p, path.Join(filesDir)+"/")

			destPath, err := dataFile(filepath.Join(appDir, stripped))
			if err != nil {
				return err
			}

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
