package svg

import (
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/npillmayer/unisvg/core"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterize renders an SVG document into an RGBA image of size×size
// pixels, for quick visual inspection without an SVG viewer.
func Rasterize(document string, size int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(document))
	if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot parse SVG document")
	}
	icon.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return img, nil
}

// WritePNG rasterizes an SVG document and writes it as a PNG file.
func WritePNG(filename string, document string, size int) error {
	img, err := Rasterize(document, size)
	if err != nil {
		return err
	}
	out, err := os.Create(filename)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create file: %s", filename)
	}
	defer out.Close()
	if err = png.Encode(out, img); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot encode PNG: %s", filename)
	}
	return nil
}
