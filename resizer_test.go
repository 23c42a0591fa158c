package zimg

import (
	"errors"
	"math"
	"testing"
)

func TestResizerGreyMatchesFilter(t *testing.T) {
	params := BuildResizeParams(1, 32)

	r, err := NewResizer[float32](params, 16, 1, 8, 1)
	if err != nil {
		t.Fatalf("NewResizer failed: %s", err)
	}
	defer r.Close()

	out := make([]float32, 8)
	if err := r.ResizeValues(out, testRow); err != nil {
		t.Fatalf("ResizeValues failed: %s", err)
	}

	f, err := NewResizeFilter(params, 16, 1, 8, 1, nil)
	if err != nil {
		t.Fatalf("NewResizeFilter failed: %s", err)
	}
	defer f.Close()
	want := resizeTestRow(t, f)

	for i := range want {
		if math.Float32bits(out[i]) != math.Float32bits(want[i]) {
			t.Fatalf("resizer differs from filter at %d: %v != %v", i, out[i], want[i])
		}
	}

	// buffer reuse across calls must not change the result
	again := make([]float32, 8)
	if err := r.ResizeValues(again, testRow); err != nil {
		t.Fatalf("second ResizeValues failed: %s", err)
	}
	for i := range want {
		if math.Float32bits(again[i]) != math.Float32bits(want[i]) {
			t.Fatalf("reused resizer differs at %d: %v != %v", i, again[i], want[i])
		}
	}
}

func TestResizerRGB(t *testing.T) {
	params := BuildResizeParams(3, 8)
	params.Filter = ResizePoint

	r, err := NewResizer[uint8](params, 4, 4, 2, 2)
	if err != nil {
		t.Fatalf("NewResizer failed: %s", err)
	}
	defer r.Close()

	src := make([]uint8, 3*4*4)
	for c := 0; c < 3; c++ {
		for i := 0; i < 16; i++ {
			src[c*16+i] = uint8(50 * (c + 1))
		}
	}

	dst := make([]uint8, 3*2*2)
	if err := r.ResizeValues(dst, src); err != nil {
		t.Fatalf("ResizeValues failed: %s", err)
	}
	for c := 0; c < 3; c++ {
		for i := 0; i < 4; i++ {
			if dst[c*4+i] != uint8(50*(c+1)) {
				t.Fatalf("channel %d element %d = %d, want %d", c, i, dst[c*4+i], 50*(c+1))
			}
		}
	}
}

func TestResizerPixelTypeMismatch(t *testing.T) {
	params := BuildResizeParams(1, 32) // float
	if _, err := NewResizer[uint8](params, 16, 1, 8, 1); !errors.Is(err, ErrPixelTypeMismatch) {
		t.Fatalf("byte resizer over float params: got %v, want ErrPixelTypeMismatch", err)
	}
}
