// Package media provides photo intake: decoding device uploads, normalising
// them to square WebP images and storing them.
package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// ErrInvalidImage is returned for uploads that are not a decodable base64 image.
var ErrInvalidImage = errors.New("invalid image data")

var dataURIPattern = regexp.MustCompile(`^data:image/[\w.+-]+;base64,`)

// ImageProcessor crops uploads to 1:1, scales them and re-encodes as WebP.
type ImageProcessor struct {
	size    int
	quality float32
}

// NewImageProcessor creates a processor producing size x size images.
func NewImageProcessor(size, quality int) *ImageProcessor {
	if size <= 0 {
		size = 1024
	}
	if quality <= 0 || quality > 100 {
		quality = 80
	}
	return &ImageProcessor{size: size, quality: float32(quality)}
}

// DecodeDataURI strips the data URI prefix, when present, and decodes the base64 payload.
func DecodeDataURI(data string) ([]byte, error) {
	b64Data := dataURIPattern.ReplaceAllString(data, "")
	decoded, err := base64.StdEncoding.DecodeString(b64Data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode base64: %v", ErrInvalidImage, err)
	}
	return decoded, nil
}

// Process turns a base64 upload into WebP bytes.
func (p *ImageProcessor) Process(data string) ([]byte, error) {
	raw, err := DecodeDataURI(data)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image: %v", ErrInvalidImage, err)
	}

	// Centre crop to a square, then scale; small images are not upscaled.
	bounds := img.Bounds()
	side := bounds.Dx()
	if bounds.Dy() < side {
		side = bounds.Dy()
	}
	target := p.size
	if side < target {
		target = side
	}
	square := imaging.Fill(img, target, target, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, square, &webp.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode WebP: %w", err)
	}
	return buf.Bytes(), nil
}
