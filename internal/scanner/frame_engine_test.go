package scanner

import (
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/pix-flow/internal/common"
	"github.com/Veraticus/pix-flow/internal/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	openErr error
	frame   image.Image
	closed  bool
}

func (s *staticSource) Open(context.Context) error { return s.openErr }

func (s *staticSource) Frame(context.Context) (image.Image, error) {
	if s.frame == nil {
		return nil, common.ErrNoFrames
	}
	return s.frame, nil
}

func (s *staticSource) Close() error {
	s.closed = true
	return nil
}

type stubDecoder struct {
	text string
}

func (d stubDecoder) Decode(image.Image) (Result, error) {
	if d.text == "" {
		return Result{}, errors.New("no code")
	}
	return Result{Text: d.text, Format: "QR_CODE"}, nil
}

func writePNG(t *testing.T, path string, size int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, size, size))))
}

func TestFrameEngine(t *testing.T) {
	cfg := Config{FPS: 100, QRBox: Box{Width: 250, Height: 250}}

	t.Run("delivers decodes until stopped", func(t *testing.T) {
		src := &staticSource{frame: image.NewGray(image.Rect(0, 0, 4, 4))}
		e := NewFrameEngine(MountPoint, src, stubDecoder{text: "pix"})

		results := make(chan Result, 16)
		err := e.Start(context.Background(), FacingEnvironment, cfg, func(r Result) {
			select {
			case results <- r:
			default:
			}
		}, func(error) {})
		require.NoError(t, err)
		assert.True(t, e.Running())

		select {
		case r := <-results:
			assert.Equal(t, "pix", r.Text)
			assert.False(t, r.DecodedAt.IsZero())
		case <-time.After(2 * time.Second):
			t.Fatal("no decode delivered")
		}

		require.NoError(t, e.Stop(context.Background()))
		require.NoError(t, e.Clear())
		assert.False(t, e.Running())
		assert.True(t, src.closed)
	})

	t.Run("frame misses go to the failure callback", func(t *testing.T) {
		e := NewFrameEngine(MountPoint, &staticSource{}, stubDecoder{})

		failures := make(chan error, 16)
		err := e.Start(context.Background(), FacingEnvironment, cfg, func(Result) {
			t.Error("unexpected decode")
		}, func(err error) {
			select {
			case failures <- err:
			default:
			}
		})
		require.NoError(t, err)

		select {
		case err := <-failures:
			assert.ErrorIs(t, err, common.ErrNoFrames)
		case <-time.After(2 * time.Second):
			t.Fatal("no failure reported")
		}
		require.NoError(t, e.Stop(context.Background()))
	})

	t.Run("camera unavailable", func(t *testing.T) {
		src := &DirSource{Dir: filepath.Join(t.TempDir(), "missing")}
		e := NewFrameEngine(MountPoint, src, stubDecoder{})

		err := e.Start(context.Background(), FacingEnvironment, cfg, func(Result) {}, func(error) {})
		assert.ErrorIs(t, err, common.ErrCameraUnavailable)
		assert.False(t, e.Running())
	})

	t.Run("stop before start blocks the start", func(t *testing.T) {
		e := NewFrameEngine(MountPoint, &staticSource{}, stubDecoder{})

		require.NoError(t, e.Stop(context.Background()))
		err := e.Start(context.Background(), FacingEnvironment, cfg, func(Result) {}, func(error) {})
		assert.ErrorIs(t, err, ErrEngineStopped)
	})
}

func TestDirSource(t *testing.T) {
	t.Run("newest image wins", func(t *testing.T) {
		dir := t.TempDir()
		older := filepath.Join(dir, "a.png")
		newer := filepath.Join(dir, "b.png")
		writePNG(t, older, 8)
		writePNG(t, newer, 16)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

		past := time.Now().Add(-time.Hour)
		require.NoError(t, os.Chtimes(older, past, past))

		src := &DirSource{Dir: dir}
		require.NoError(t, src.Open(context.Background()))

		img, err := src.Frame(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 16, img.Bounds().Dx())
	})

	t.Run("empty directory has no frames", func(t *testing.T) {
		src := &DirSource{Dir: t.TempDir()}
		_, err := src.Frame(context.Background())
		assert.ErrorIs(t, err, common.ErrNoFrames)
	})

	t.Run("file is not a camera directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "frame.png")
		writePNG(t, path, 4)

		err := (&DirSource{Dir: path}).Open(context.Background())
		assert.ErrorIs(t, err, common.ErrCameraUnavailable)
	})
}

func TestDecodeFile(t *testing.T) {
	t.Run("reads a generated code", func(t *testing.T) {
		path, err := qrcode.Generate(qrcode.DemoPayload, filepath.Join(t.TempDir(), "pix.jpg"))
		require.NoError(t, err)

		res, err := DecodeFile(path)
		require.NoError(t, err)
		assert.Equal(t, qrcode.DemoPayload, res.Text)
		assert.Equal(t, "QR_CODE", res.Format)
	})

	t.Run("blank image has no code", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blank.png")
		writePNG(t, path, 64)

		_, err := DecodeFile(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := DecodeFile(filepath.Join(t.TempDir(), "nope.png"))
		assert.Error(t, err)
	})
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"frame.PNG", true},
		{"photo.heic", true},
		{"scan.pdf", true},
		{"notes.txt", false},
		{"noext", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSupported(tt.path))
		})
	}
}
