package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

type mapLoader map[string][]byte

func (m mapLoader) Load(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, errors.New("not found: " + path)
	}
	return data, nil
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func encodeBMP(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeFormats(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	src := solid(4, 2, red)

	for name, data := range map[string][]byte{
		"png": encodePNG(t, src),
		"bmp": encodeBMP(t, src),
	} {
		img, err := Decode(data)
		if err != nil {
			t.Fatalf("%s: Decode() error = %v", name, err)
		}
		if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 2 {
			t.Errorf("%s: size = %v", name, img.Bounds())
		}
		if got := img.RGBAAt(3, 1); got != red {
			t.Errorf("%s: pixel = %v, want %v", name, got, red)
		}
	}

	if _, err := Decode([]byte("not an image")); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestFlipVertical(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 3))
	img.SetRGBA(0, 0, color.RGBA{1, 0, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{2, 0, 0, 255})
	img.SetRGBA(0, 2, color.RGBA{3, 0, 0, 255})

	FlipVertical(img)

	for y, want := range []uint8{3, 2, 1} {
		if got := img.RGBAAt(0, y).R; got != want {
			t.Errorf("row %d = %d, want %d", y, got, want)
		}
	}
}

func TestLoadCubeFacesResamples(t *testing.T) {
	l := mapLoader{}
	faces := CubeFaces{"px.png", "nx.png", "py.png", "ny.png", "pz.png", "nz.png"}
	for i, name := range faces {
		size := 4
		if i == 2 {
			size = 8
		}
		l[name] = encodePNG(t, solid(size, size, color.RGBA{0, 0, 255, 255}))
	}

	imgs, err := LoadCubeFaces(l, faces)
	if err != nil {
		t.Fatalf("LoadCubeFaces() error = %v", err)
	}
	for i, img := range imgs {
		if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
			t.Errorf("face %d size = %v, want 8x8", i, img.Bounds())
		}
	}
	if got := imgs[0].RGBAAt(4, 4); got.B < 250 {
		t.Errorf("resampled colour = %v", got)
	}
}

func TestLoadCubeFacesMissing(t *testing.T) {
	_, err := LoadCubeFaces(mapLoader{}, CubeFaces{"a", "b", "c", "d", "e", "f"})
	if err == nil {
		t.Error("expected error for missing faces")
	}
}
