package desktop

import (
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

const screenshotDirName = "screenshots"

// ScreenshotWriter saves frames as PNGs below the user directory
type ScreenshotWriter struct {
	fs  afero.Fs
	dir string
}

func NewScreenshotWriter(fs afero.Fs, userDir string) *ScreenshotWriter {
	return &ScreenshotWriter{fs: fs, dir: filepath.Join(userDir, screenshotDirName)}
}

// Save writes img named by the capture time and returns the file path
func (w *ScreenshotWriter) Save(img image.Image, now time.Time) (string, error) {
	if err := w.fs.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("%d.png", now.UnixMilli()))
	f, err := w.fs.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create screenshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("failed to encode screenshot: %w", err)
	}
	return path, nil
}
