package storage

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// maxDimension caps uploaded images; anything larger is downscaled
// preserving aspect ratio before it hits disk.
const maxDimension = 1600

const jpegQuality = 85

func processImage(r io.Reader, ext string) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, ErrUnsupportedType
	}

	src = downscale(src)

	var buf bytes.Buffer
	switch ext {
	case ".jpg":
		err = jpeg.Encode(&buf, src, &jpeg.Options{Quality: jpegQuality})
	case ".png":
		err = png.Encode(&buf, src)
	default:
		return nil, ErrUnsupportedType
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func downscale(src image.Image) image.Image {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxDimension && height <= maxDimension {
		return src
	}

	ratio := float64(maxDimension) / float64(width)
	if height > width {
		ratio = float64(maxDimension) / float64(height)
	}
	dstW := int(float64(width) * ratio)
	dstH := int(float64(height) * ratio)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
