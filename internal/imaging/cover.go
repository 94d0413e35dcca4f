package imaging

import (
	"bytes"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	MaxCoverWidth = 600
	CoverQuality  = 80
	ContentType   = "image/webp"

	// Limites checados no cabeçalho antes de decodificar os pixels.
	MaxSourceSide   = 10000
	MaxSourcePixels = 40_000_000
)

var ErrUnsupportedImage = errors.New("unsupported_image")

// Cover decodifica jpeg/png/webp, reduz para no máximo maxWidth de largura
// mantendo a proporção e devolve o resultado em webp.
func Cover(r io.Reader, maxWidth int) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || !withinBudget(cfg.Width, cfg.Height) {
		return nil, ErrUnsupportedImage
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrUnsupportedImage
	}

	img := Resize(src, maxWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: CoverQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func withinBudget(w, h int) bool {
	if w <= 0 || h <= 0 || w > MaxSourceSide || h > MaxSourceSide {
		return false
	}
	return w*h <= MaxSourcePixels
}

func Resize(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return src
	}

	h := b.Dy() * maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
