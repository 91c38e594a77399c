package imageprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestThumbnailScalesDown(t *testing.T) {
	p := New(85)

	out, err := p.Thumbnail(encodePNG(t, 600, 300))
	require.NoError(t, err)

	thumb, format, err := image.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, "png", format)

	bounds := thumb.Bounds()
	assert.Equal(t, ThumbnailSize, bounds.Dx())
	assert.Equal(t, ThumbnailSize/2, bounds.Dy())
}

func TestThumbnailKeepsSmallImages(t *testing.T) {
	p := New(85)

	out, err := p.Thumbnail(encodePNG(t, 80, 40))
	require.NoError(t, err)

	thumb, _, err := image.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, 80, thumb.Bounds().Dx())
	assert.Equal(t, 40, thumb.Bounds().Dy())
}

func TestThumbnailRejectsGarbage(t *testing.T) {
	p := New(85)

	_, err := p.Thumbnail(bytes.NewBufferString("not an image"))
	assert.Error(t, err)
}
