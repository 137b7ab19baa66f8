// Package texture decodes images and uploads them as OpenGL textures.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder

	_ "golang.org/x/image/bmp" // BMP decoder registration
	"golang.org/x/image/draw"
)

// Loader reads raw file bytes; assets.Manager implements it.
type Loader interface {
	Load(path string) ([]byte, error)
}

// ErrEmptyImage is returned for zero-sized images.
var ErrEmptyImage = errors.New("texture: empty image")

// Decode decodes PNG, JPEG or BMP data into tightly packed RGBA.
func Decode(data []byte) (*image.RGBA, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("decode %s: %w", format, ErrEmptyImage)
	}
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba, nil
	}
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba, nil
}

// LoadImage loads and decodes path.
func LoadImage(l Loader, path string) (*image.RGBA, error) {
	data, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	img, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// FlipVertical mirrors img top to bottom in place. GL expects the first row
// at the bottom.
func FlipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

// Resize scales img to w×h with Catmull-Rom filtering.
func Resize(img *image.RGBA, w, h int) *image.RGBA {
	if img.Bounds().Dx() == w && img.Bounds().Dy() == h {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// CubeFaces is the order GL_TEXTURE_CUBE_MAP_POSITIVE_X + i expects:
// +X, -X, +Y, -Y, +Z, -Z.
type CubeFaces [6]string

// LoadCubeFaces decodes six faces and resamples them to one square size,
// the largest face edge found.
func LoadCubeFaces(l Loader, faces CubeFaces) ([6]*image.RGBA, error) {
	var imgs [6]*image.RGBA
	size := 0
	for i, path := range faces {
		img, err := LoadImage(l, path)
		if err != nil {
			return imgs, fmt.Errorf("cube face %d: %w", i, err)
		}
		imgs[i] = img
		size = max(size, img.Bounds().Dx(), img.Bounds().Dy())
	}
	for i := range imgs {
		imgs[i] = Resize(imgs[i], size, size)
	}
	return imgs, nil
}
