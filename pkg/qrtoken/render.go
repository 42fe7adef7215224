package qrtoken

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// DefaultImageSize is the edge length in pixels of rendered QR images.
const DefaultImageSize = 256

// RenderPNG encodes content as a QR code (error correction level M) and
// returns a size x size PNG with a white quiet zone around the symbol.
func RenderPNG(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultImageSize
	}

	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	margin := size / 32
	scaled, err := barcode.Scale(code, size-2*margin, size-2*margin)
	if err != nil {
		return nil, fmt.Errorf("scale qr: %w", err)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	offset := image.Pt(margin, margin)
	draw.Draw(canvas, scaled.Bounds().Add(offset), scaled, scaled.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURL wraps PNG bytes in a data: URL suitable for an <img> src.
func DataURL(pngBytes []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)
}
