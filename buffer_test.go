package zimg

import (
	"bytes"
	"errors"
	"testing"
	"unsafe"
)

func TestAlignedAlloc(t *testing.T) {
	for _, size := range []int{0, 1, 31, 32, 33, 1024} {
		buf, err := alignedAlloc(size, Alignment)
		if err != nil {
			t.Fatalf("alignedAlloc(%d) failed: %s", size, err)
		}
		if len(buf) != size {
			t.Fatalf("alignedAlloc(%d) returned %d bytes", size, len(buf))
		}
		if size > 0 {
			addr := uintptr(unsafe.Pointer(&buf[0]))
			if addr%Alignment != 0 {
				t.Fatalf("alignedAlloc(%d) address %x not %d-byte aligned", size, addr, Alignment)
			}
			// the full region must be writable
			buf[0] = 0xAA
			buf[size-1] = 0x55
		}
	}
}

func TestAlignedAllocInvalid(t *testing.T) {
	if _, err := alignedAlloc(-1, Alignment); !errors.Is(err, ErrAllocFailed) {
		t.Fatalf("expected ErrAllocFailed for negative size, got %v", err)
	}
	if _, err := alignedAlloc(16, 0); !errors.Is(err, ErrAllocFailed) {
		t.Fatalf("expected ErrAllocFailed for zero alignment, got %v", err)
	}
}

func TestBitbltZeroRows(t *testing.T) {
	// must not touch memory at all, even through nil slices
	bitblt(nil, 64, nil, 64, 16, 0)
}

func TestBitbltBulkRowwiseEquivalence(t *testing.T) {
	const rowSize = 7
	const rows = 5

	src := make([]byte, rowSize*rows)
	for i := range src {
		src[i] = byte(i * 3)
	}

	// bulk path: both strides equal rowSize
	bulk := make([]byte, rowSize*rows)
	bitblt(bulk, rowSize, src, rowSize, rowSize, rows)

	// row-wise path: one-byte-larger source stride forces the loop
	padded := make([]byte, (rowSize+1)*rows)
	bitblt(padded, rowSize+1, src, rowSize, rowSize, rows)

	rowwise := make([]byte, rowSize*rows)
	bitblt(rowwise, rowSize, padded, rowSize+1, rowSize, rows)

	if !bytes.Equal(bulk, src) {
		t.Fatalf("bulk path corrupted data:\n got %v\nwant %v", bulk, src)
	}
	if !bytes.Equal(rowwise, bulk) {
		t.Fatalf("row-wise path disagrees with bulk path:\n got %v\nwant %v", rowwise, bulk)
	}
}
