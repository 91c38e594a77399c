package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// ThumbnailSize bounds the longest edge of generated thumbnails.
const ThumbnailSize = 150

// Processor downsizes uploaded images into thumbnail variants.
type Processor struct {
	quality int
}

// New returns a Processor encoding JPEG thumbnails at the given quality.
func New(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{quality: quality}
}

// Thumbnail decodes the image, scales it to fit ThumbnailSize while
// keeping the aspect ratio, and re-encodes it in the source format.
// PNG input stays PNG; everything else becomes JPEG.
func (p *Processor) Thumbnail(r io.Reader) (io.Reader, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	scaled := scaleToFit(img, ThumbnailSize)

	var buf bytes.Buffer
	if format == "png" {
		if err := png.Encode(&buf, scaled); err != nil {
			return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
		}
	} else {
		if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
		}
	}

	return &buf, nil
}

func scaleToFit(img image.Image, max int) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= max && height <= max {
		return img
	}

	newWidth, newHeight := max, max
	ratio := float64(width) / float64(height)
	if ratio > 1 {
		newHeight = int(float64(max) / ratio)
	} else {
		newWidth = int(float64(max) * ratio)
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
