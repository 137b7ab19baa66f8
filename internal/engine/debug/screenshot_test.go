package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
	"time"
)

func TestCapture(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "snow")
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	sc.now = func() time.Time { return fixed }

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(1, 0, color.RGBA{255, 0, 0, 255})

	first, err := sc.Capture(img)
	if err != nil {
		t.Fatalf("Capture() error = %v", err)
	}
	second, err := sc.Capture(img)
	if err != nil {
		t.Fatalf("Capture() error = %v", err)
	}
	if first == second {
		t.Fatalf("two captures in one second share %s", first)
	}

	f, err := os.Open(first)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, _, _, _ := decoded.At(1, 0).RGBA()
	if r>>8 != 255 {
		t.Errorf("pixel (1,0) red = %d", r>>8)
	}
}
