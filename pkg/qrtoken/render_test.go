package qrtoken

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderPNG(t *testing.T) {
	content := Payload{SessionID: "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", Token: strings.Repeat("a", TokenLength)}.Encode()

	out, err := RenderPNG(content, 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, DefaultImageSize, img.Bounds().Dx())
	require.Equal(t, DefaultImageSize, img.Bounds().Dy())

	r, g, b, _ := img.At(0, 0).RGBA()
	require.Equal(t, uint32(0xffff), r&g&b, "quiet zone must be white")
}

func TestRenderPNGTooSmall(t *testing.T) {
	_, err := RenderPNG(strings.Repeat("x", 200), 20)
	require.Error(t, err)
}

func TestDataURL(t *testing.T) {
	require.Equal(t, "data:image/png;base64,AQI=", DataURL([]byte{1, 2}))
}
