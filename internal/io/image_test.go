package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageService_ConvertToJPEG(t *testing.T) {
	svc := NewImageService()

	out, err := svc.ConvertToJPEG(context.Background(), testPNG(t, 40, 30))
	require.NoError(t, err)

	format, width, height, err := svc.DecodeConfig(out)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 40, width)
	assert.Equal(t, 30, height)
}

func TestImageService_ResizeImage(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		wantWidth  int
		wantHeight int
	}{
		{"landscape", 300, 200, 100, 66},
		{"portrait", 200, 300, 66, 100},
		{"already small", 80, 60, 80, 60},
	}

	svc := NewImageService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := svc.ResizeImage(context.Background(), testPNG(t, tt.width, tt.height), 100, 100)
			require.NoError(t, err)

			format, width, height, err := svc.DecodeConfig(out)
			require.NoError(t, err)
			assert.Equal(t, "jpeg", format)
			assert.Equal(t, tt.wantWidth, width)
			assert.Equal(t, tt.wantHeight, height)
		})
	}
}

func TestImageService_NotAnImage(t *testing.T) {
	svc := NewImageService()

	_, err := svc.ConvertToJPEG(context.Background(), []byte("<html>blocked</html>"))
	assert.Error(t, err)

	_, err = svc.ResizeImage(context.Background(), []byte("<html>blocked</html>"), 100, 100)
	assert.Error(t, err)
}
