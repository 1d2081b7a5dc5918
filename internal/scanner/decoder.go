package scanner

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	zxingqr "github.com/makiuchi-d/gozxing/qrcode"
)

// Decoder finds a QR code in a frame.
type Decoder interface {
	Decode(img image.Image) (Result, error)
}

// ZXingDecoder decodes QR codes with gozxing.
type ZXingDecoder struct {
	reader gozxing.Reader
	hints  map[gozxing.DecodeHintType]interface{}
}

// NewZXingDecoder returns a decoder that tries hard on every frame.
func NewZXingDecoder() *ZXingDecoder {
	return &ZXingDecoder{
		reader: zxingqr.NewQRCodeReader(),
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

// Decode returns the text of the QR code in img.
func (d *ZXingDecoder) Decode(img image.Image) (Result, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return Result{}, fmt.Errorf("failed to binarize frame: %w", err)
	}

	res, err := d.reader.Decode(bmp, d.hints)
	if err != nil {
		return Result{}, fmt.Errorf("no QR code in frame: %w", err)
	}
	return Result{
		Text:   res.GetText(),
		Format: res.GetBarcodeFormat().String(),
	}, nil
}

// DecodeFile decodes the QR code in an image file.
func DecodeFile(path string) (Result, error) {
	img, err := LoadImage(path)
	if err != nil {
		return Result{}, err
	}
	return NewZXingDecoder().Decode(img)
}
