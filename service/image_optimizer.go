package service

import (
	"bytes"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	// Uploaded product photos are capped at this dimension on their longest side.
	maxImageDim = 1200
	jpegQuality = 85
)

// NormalizeImage validates and re-encodes an uploaded product image.
// The extension is canonicalized (jpeg -> jpg), the image is decoded, resized down when
// its longest side exceeds maxImageDim, and re-encoded in its own format.
// Returns the canonical extension (without dot) and the encoded bytes.
func NormalizeImage(filename string, data []byte) (string, []byte, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "jpeg" {
		ext = "jpg"
	}
	if ext != "jpg" && ext != "png" {
		return "", nil, fmt.Errorf("unsupported image type %q: expected png, jpg or jpeg", ext)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxImageDim || height > maxImageDim {
		// Scale the longest side down to maxImageDim, keeping the aspect ratio.
		var newWidth, newHeight int
		if width > height {
			newWidth = maxImageDim
			newHeight = int(float64(height) * float64(maxImageDim) / float64(width))
		} else {
			newHeight = maxImageDim
			newWidth = int(float64(width) * float64(maxImageDim) / float64(height))
		}

		log.Printf("🔄 Resizing image: %dx%d -> %dx%d", width, height, newWidth, newHeight)
		img = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	format := imaging.PNG
	opts := []imaging.EncodeOption{}
	if ext == "jpg" {
		format = imaging.JPEG
		opts = append(opts, imaging.JPEGQuality(jpegQuality))
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, opts...); err != nil {
		return "", nil, fmt.Errorf("failed to encode image: %w", err)
	}

	log.Printf("✓ Image normalized: ext=%s, output_size=%d bytes", ext, buf.Len())
	return ext, buf.Bytes(), nil
}
