// Package qrcode writes the demo Pix QR code so the frame-directory camera
// has something real to decode.
package qrcode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

// DemoPayload is the text the simulated scan feeds into the decode path.
const DemoPayload = "00020126580014br.gov.bcb.pix..."

// DefaultFilename is used when Generate is given a directory.
const DefaultFilename = "pix-demo.jpg"

// Generate encodes payload into a JPEG at path. If path is an existing
// directory the image is written to DefaultFilename inside it. The written
// file path is returned.
func Generate(payload, path string) (string, error) {
	if strings.TrimSpace(payload) == "" {
		return "", errors.New("payload must not be empty")
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, DefaultFilename)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	qrc, err := qrcode.New(payload)
	if err != nil {
		return "", fmt.Errorf("error creating QR code: %w", err)
	}

	fileWriter, err := standard.New(path)
	if err != nil {
		return "", fmt.Errorf("error creating file writer: %w", err)
	}

	if err = qrc.Save(fileWriter); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("error saving QR code: %w", err)
	}

	return path, nil
}
