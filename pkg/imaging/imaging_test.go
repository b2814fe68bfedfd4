package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noisyPNG gera um PNG com ruído, que comprime mal e fica bem maior que o JPEG equivalente
func noisyPNG(t *testing.T, width, height int) string {
	t.Helper()

	rng := rand.New(rand.NewSource(42))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256)), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func decodeResult(t *testing.T, dataURI string) image.Config {
	t.Helper()

	raw, err := decodeDataURI(dataURI)
	require.NoError(t, err)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	require.NoError(t, err)
	return cfg
}

func TestCompress(t *testing.T) {
	original := noisyPNG(t, 400, 200)

	compressed, err := Compress(original, Options{MaxWidth: 100, Quality: 60})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(compressed, jpegPrefix))
	assert.Less(t, len(compressed), len(original))

	cfg := decodeResult(t, compressed)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height, "proporção preservada")
}

func TestCompress_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedErr error
	}{
		{name: "URL comum", input: "https://example.com/a.jpg", expectedErr: ErrNotDataURI},
		{name: "Data URI sem base64", input: "data:text/plain,ola", expectedErr: ErrNotDataURI},
		{name: "Base64 inválido", input: "data:image/png;base64,@@@", expectedErr: ErrNotDataURI},
		{name: "Conteúdo que não é imagem", input: "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("texto")), expectedErr: ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compress(tt.input, Options{})
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

type gallery struct {
	images []string
}

func (g *gallery) ImageRefs() []*string {
	refs := make([]*string, 0, len(g.images))
	for i := range g.images {
		refs = append(refs, &g.images[i])
	}
	return refs
}

func TestCompressAll(t *testing.T) {
	g := &gallery{images: []string{noisyPNG(t, 300, 300), "", "https://example.com/externa.jpg"}}
	before := len(g.images[0])

	saved, err := CompressAll(g, Options{MaxWidth: 150})
	require.NoError(t, err)

	assert.Equal(t, before-len(g.images[0]), saved)
	assert.Positive(t, saved)
	assert.True(t, strings.HasPrefix(g.images[0], jpegPrefix))
	assert.Equal(t, "", g.images[1])
	assert.Equal(t, "https://example.com/externa.jpg", g.images[2])
}
