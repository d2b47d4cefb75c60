package imageprocessor

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return &buf
}

func decodeConfig(t *testing.T, r *bytes.Buffer) image.Config {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(r.Bytes()))
	require.NoError(t, err)
	return cfg
}

func TestProcess_DownscalesToFit(t *testing.T) {
	p := NewProcessor(85)

	out, err := p.Process(encodePNG(t, 1600, 1200), SizeThumbnail, "png")
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(out)
	require.NoError(t, err)

	cfg := decodeConfig(t, &buf)
	assert.LessOrEqual(t, cfg.Width, SizeThumbnail.Width)
	assert.LessOrEqual(t, cfg.Height, SizeThumbnail.Height)

	// Aspect ratio survives the resize.
	assert.InDelta(t, 4.0/3.0, float64(cfg.Width)/float64(cfg.Height), 0.02)
}

func TestProcess_SmallImagePassesThrough(t *testing.T) {
	p := NewProcessor(85)

	out, err := p.Process(encodePNG(t, 120, 80), SizeThumbnail, "png")
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = buf.ReadFrom(out)
	require.NoError(t, err)

	cfg := decodeConfig(t, &buf)
	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, 80, cfg.Height)
}

func TestProcess_JPEGOutput(t *testing.T) {
	p := NewProcessor(85)

	var src bytes.Buffer
	require.NoError(t, jpeg.Encode(&src, image.NewRGBA(image.Rect(0, 0, 2000, 1000)), nil))

	out, err := p.Process(&src, SizeCover, "jpg")
	require.NoError(t, err)

	_, format, err := image.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestProcess_Errors(t *testing.T) {
	p := NewProcessor(85)

	_, err := p.Process(bytes.NewReader([]byte("not an image")), SizeThumbnail, "png")
	assert.Error(t, err)

	_, err = p.Process(encodePNG(t, 10, 10), SizeThumbnail, "gif")
	assert.Error(t, err)
}

func TestNewProcessor_ClampsQuality(t *testing.T) {
	assert.Equal(t, 85, NewProcessor(0).quality)
	assert.Equal(t, 85, NewProcessor(150).quality)
	assert.Equal(t, 60, NewProcessor(60).quality)
}

func TestIsImageExt(t *testing.T) {
	assert.True(t, IsImageExt(".jpg"))
	assert.True(t, IsImageExt(".png"))
	assert.False(t, IsImageExt(".pdf"))
	assert.False(t, IsImageExt(".webp"))
}
