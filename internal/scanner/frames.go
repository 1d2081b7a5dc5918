package scanner

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register gif frames
	_ "image/jpeg" // register jpeg frames
	_ "image/png"  // register png frames
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Veraticus/pix-flow/internal/common"
	"github.com/gen2brain/go-fitz"
	"github.com/gen2brain/heic"
)

// SupportedExtensions lists the frame file types LoadImage understands.
var SupportedExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".heic", ".heif", ".pdf"}

// IsSupported reports whether path has a frame extension.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SupportedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// LoadImage reads a frame from disk. HEIC photos and the first page of a
// PDF are rasterized; everything else goes through image.Decode.
func LoadImage(path string) (image.Image, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".heic", ".heif":
		return loadHEIC(path)
	case ".pdf":
		return loadPDF(path)
	}

	f, err := os.Open(path) //nolint:gosec // frame paths come from configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open frame: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

func loadHEIC(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // frame paths come from configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open HEIC frame: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := heic.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode HEIC: %w", err)
	}
	return img, nil
}

func loadPDF(path string) (image.Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer func() { _ = doc.Close() }()

	if doc.NumPage() == 0 {
		return nil, fmt.Errorf("PDF has no pages: %w", common.ErrNoFrames)
	}
	img, err := doc.Image(0)
	if err != nil {
		return nil, fmt.Errorf("failed to render PDF page: %w", err)
	}
	return img, nil
}

// FrameSource supplies camera frames.
type FrameSource interface {
	// Open acquires the device. It fails with common.ErrCameraUnavailable.
	Open(ctx context.Context) error
	// Frame returns the latest frame.
	Frame(ctx context.Context) (image.Image, error)
	Close() error
}

// DirSource treats a directory as a camera: the newest supported image in
// it is the current frame. Dropping a photo into the directory is the
// equivalent of pointing the camera at a code.
type DirSource struct {
	Dir string
}

// Open checks that the directory exists.
func (d *DirSource) Open(context.Context) error {
	info, err := os.Stat(d.Dir)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrCameraUnavailable, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", common.ErrCameraUnavailable, d.Dir)
	}
	return nil
}

// Frame loads the most recently modified image.
func (d *DirSource) Frame(context.Context) (image.Image, error) {
	entries, err := os.ReadDir(d.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read frames: %w", err)
	}

	var newest string
	var newestAt time.Time
	for _, e := range entries {
		if e.IsDir() || !IsSupported(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestAt) {
			newest = e.Name()
			newestAt = info.ModTime()
		}
	}
	if newest == "" {
		return nil, common.ErrNoFrames
	}
	return LoadImage(filepath.Join(d.Dir, newest))
}

// Close releases nothing; the directory stays in place.
func (d *DirSource) Close() error { return nil }

// FileSource replays one image as every frame.
type FileSource struct {
	Path string
}

// Open checks that the file exists.
func (f *FileSource) Open(context.Context) error {
	if _, err := os.Stat(f.Path); err != nil {
		return fmt.Errorf("%w: %w", common.ErrCameraUnavailable, err)
	}
	return nil
}

// Frame loads the file.
func (f *FileSource) Frame(context.Context) (image.Image, error) {
	return LoadImage(f.Path)
}

// Close releases nothing.
func (f *FileSource) Close() error { return nil }
