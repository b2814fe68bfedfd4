package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"strings"

	// Decodificadores registrados para image.Decode
	_ "image/gif"
	_ "image/png"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

const (
	DefaultMaxWidth = 1280
	DefaultQuality  = 75

	jpegPrefix = "data:image/jpeg;base64,"
)

var (
	ErrNotDataURI        = errors.New("value is not a base64 data URI")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Options controla o tamanho e a qualidade das imagens comprimidas
type Options struct {
	MaxWidth int
	Quality  int
}

func (o Options) normalized() Options {
	if o.MaxWidth <= 0 {
		o.MaxWidth = DefaultMaxWidth
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = DefaultQuality
	}
	return o
}

// Compress reduz a imagem para no máximo MaxWidth de largura e a recodifica em JPEG.
// Se o resultado não for menor que a entrada, a entrada é devolvida sem alteração.
func Compress(dataURI string, opts Options) (string, error) {
	opts = opts.normalized()

	raw, err := decodeDataURI(dataURI)
	if err != nil {
		return "", err
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", errors.Wrap(ErrUnsupportedFormat, err.Error())
	}

	dst := resize(src, opts.MaxWidth)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return "", errors.Wrap(err, "codificando jpeg")
	}

	compressed := jpegPrefix + base64.StdEncoding.EncodeToString(buf.Bytes())
	if len(compressed) >= len(dataURI) {
		return dataURI, nil
	}
	return compressed, nil
}

// Carrier é implementado por entidades com imagens embutidas
type Carrier interface {
	ImageRefs() []*string
}

// CompressAll comprime no lugar todas as imagens da entidade e devolve quantos bytes foram economizados.
// Campos vazios ou que não são data URI são ignorados.
func CompressAll(carrier Carrier, opts Options) (int, error) {
	saved := 0
	for _, ref := range carrier.ImageRefs() {
		if ref == nil || !strings.HasPrefix(*ref, "data:image/") {
			continue
		}

		compressed, err := Compress(*ref, opts)
		if err != nil {
			return saved, err
		}

		saved += len(*ref) - len(compressed)
		*ref = compressed
	}
	return saved, nil
}

func decodeDataURI(dataURI string) ([]byte, error) {
	if !strings.HasPrefix(dataURI, "data:") {
		return nil, ErrNotDataURI
	}

	header, payload, found := strings.Cut(dataURI, ",")
	if !found || !strings.HasSuffix(header, ";base64") {
		return nil, ErrNotDataURI
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.Wrap(ErrNotDataURI, err.Error())
	}
	return raw, nil
}

func resize(src image.Image, maxWidth int) image.Image {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width <= maxWidth {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
		return dst
	}

	scaledHeight := height * maxWidth / width
	if scaledHeight < 1 {
		scaledHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, scaledHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
