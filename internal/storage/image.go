package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	maxDimension = 1600
	webpQuality  = 85
)

// Reencode decodes a jpeg/png upload, downscales anything wider or taller
// than maxDimension, and re-encodes to webp. Returns ok=false for payloads
// that are not decodable rasters (they are stored untouched).
func Reencode(data []byte) ([]byte, bool) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxDimension || h > maxDimension {
		scale := float64(maxDimension) / float64(w)
		if h > w {
			scale = float64(maxDimension) / float64(h)
		}
		dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, false
	}

	return buf.Bytes(), true
}
