package zimg

import (
	"bytes"
	"errors"
	"testing"
)

func checkCalStride[T Pixel](t *testing.T) {
	t.Helper()
	es := sizeOf[T]()
	for _, alignment := range []int{1, 2, 4, 8, 16, 32, 64} {
		for width := 0; width <= 65; width++ {
			stride := CalStride[T](width, alignment)
			if stride%alignment != 0 {
				t.Fatalf("CalStride(%d, %d) = %d not a multiple of the alignment", width, alignment, stride)
			}
			if stride < width*es {
				t.Fatalf("CalStride(%d, %d) = %d shorter than a row of %d bytes", width, alignment, stride, width*es)
			}
			if stride >= width*es+alignment {
				t.Fatalf("CalStride(%d, %d) = %d wastes a full alignment block", width, alignment, stride)
			}
		}
	}
}

func TestCalStride(t *testing.T) {
	checkCalStride[uint8](t)
	checkCalStride[uint16](t)
	checkCalStride[float32](t)
}

func TestPlaneRoundTrip(t *testing.T) {
	const width = 5
	const height = 4
	const extStride = 13 // odd on purpose, exceeds the 10-byte rows

	plane, err := NewPlane[uint16](width, height)
	if err != nil {
		t.Fatalf("NewPlane failed: %s", err)
	}

	ext := make([]byte, extStride*height)
	for i := range ext {
		ext[i] = byte(i)
	}

	plane.From(extStride, ext)

	out := make([]byte, extStride*height)
	plane.To(extStride, out)

	rowSize := width * 2
	for y := 0; y < height; y++ {
		got := out[y*extStride : y*extStride+rowSize]
		want := ext[y*extStride : y*extStride+rowSize]
		if !bytes.Equal(got, want) {
			t.Fatalf("row %d not reproduced:\n got %v\nwant %v", y, got, want)
		}
	}
}

func TestPlaneRoundTripEmpty(t *testing.T) {
	plane, err := NewPlane[float32](8, 0)
	if err != nil {
		t.Fatalf("NewPlane with height 0 failed: %s", err)
	}
	// no rows, no memory access
	plane.From(32, nil)
	plane.To(32, nil)
}

func TestPlaneClone(t *testing.T) {
	plane, err := NewPlane[uint8](16, 2)
	if err != nil {
		t.Fatalf("NewPlane failed: %s", err)
	}
	copy(plane.Row(0), []byte("0123456789abcdef"))
	copy(plane.Row(1), []byte("fedcba9876543210"))

	clone, err := plane.Clone()
	if err != nil {
		t.Fatalf("Clone failed: %s", err)
	}
	if clone.Stride() != plane.Stride() {
		t.Fatalf("clone stride %d, want %d", clone.Stride(), plane.Stride())
	}
	if !bytes.Equal(clone.Row(0), plane.Row(0)) || !bytes.Equal(clone.Row(1), plane.Row(1)) {
		t.Fatalf("clone content differs from source")
	}

	// clone must be independent of the source
	plane.Row(0)[0] = 'X'
	if clone.Row(0)[0] == 'X' {
		t.Fatalf("clone shares memory with source")
	}
}

func TestBorrowPlane(t *testing.T) {
	const width = 4
	const height = 2
	const stride = 7

	backing := make([]byte, stride*height)
	plane := BorrowPlane[uint8](width, height, stride, backing)

	if !plane.Borrowed() {
		t.Fatalf("BorrowPlane did not mark the plane borrowed")
	}

	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	plane.From(width, src)

	// writes must land in the caller's memory
	if !bytes.Equal(backing[:width], src[:width]) {
		t.Fatalf("borrowed plane row 0 = %v, want %v", backing[:width], src[:width])
	}
	if !bytes.Equal(backing[stride:stride+width], src[width:]) {
		t.Fatalf("borrowed plane row 1 = %v, want %v", backing[stride:stride+width], src[width:])
	}
}

func TestIsAligned(t *testing.T) {
	plane, err := NewPlane[float32](10, 3)
	if err != nil {
		t.Fatalf("NewPlane failed: %s", err)
	}
	if !plane.IsAligned(Alignment) {
		t.Fatalf("owned plane should satisfy the default alignment")
	}

	borrowed := BorrowPlane[uint8](4, 2, 7, make([]byte, 14))
	if borrowed.IsAligned(Alignment) {
		t.Fatalf("borrowed plane with stride 7 reported as aligned")
	}
}

func TestRowAccess(t *testing.T) {
	plane, err := NewPlane[float32](3, 2)
	if err != nil {
		t.Fatalf("NewPlane failed: %s", err)
	}

	row := plane.Row(1)
	if len(row) != 3 {
		t.Fatalf("Row(1) length %d, want 3", len(row))
	}
	row[2] = 42

	off := plane.Stride() + 2*4
	got := plane.Bytes()[off : off+4]
	want := AsBytes([]float32{42})
	if !bytes.Equal(got, want) {
		t.Fatalf("Row write not visible in backing memory: %v != %v", got, want)
	}

	if plane.Row(-1) != nil || plane.Row(2) != nil {
		t.Fatalf("out-of-range Row must return nil")
	}
}

func TestNewImage(t *testing.T) {
	p0, _ := NewPlane[uint8](2, 2)
	p1, _ := NewPlane[uint8](2, 2)
	p2, _ := NewPlane[uint8](2, 2)

	grey, err := NewImage(p0)
	if err != nil {
		t.Fatalf("single-plane image failed: %s", err)
	}
	if grey.NumPlanes() != 1 || grey.Width() != 2 || grey.Height() != 2 {
		t.Fatalf("unexpected grey image geometry")
	}

	rgb, err := NewImage(p0, p1, p2)
	if err != nil {
		t.Fatalf("three-plane image failed: %s", err)
	}
	if rgb.NumPlanes() != 3 || rgb.Plane(2) != p2 {
		t.Fatalf("unexpected rgb image layout")
	}

	if _, err := NewImage(p0, p1); !errors.Is(err, ErrBadPlaneCount) {
		t.Fatalf("two-plane image must fail with ErrBadPlaneCount, got %v", err)
	}
}
