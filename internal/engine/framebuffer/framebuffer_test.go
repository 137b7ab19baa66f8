package framebuffer

import "testing"

func TestFlipRows(t *testing.T) {
	pix := []byte{
		1, 1,
		2, 2,
		3, 3,
	}
	flipRows(pix, 2)
	want := []byte{3, 3, 2, 2, 1, 1}
	for i := range want {
		if pix[i] != want[i] {
			t.Fatalf("flipRows() = %v, want %v", pix, want)
		}
	}
}

func TestClampSize(t *testing.T) {
	w, h := clampSize(0, -5)
	if w != 1 || h != 1 {
		t.Errorf("clampSize(0, -5) = %d, %d", w, h)
	}
	w, h = clampSize(640, 480)
	if w != 640 || h != 480 {
		t.Errorf("clampSize(640, 480) = %d, %d", w, h)
	}
}
