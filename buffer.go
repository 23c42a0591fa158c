package zimg

import (
	"math"
	"unsafe"
)

// Alignment is the byte alignment guaranteed for plane and scratch memory.
// It matches the 32-byte (AVX2) alignment zimg prefers for its buffers.
const Alignment = 32

const maxPlanes = 3

// alignedAlloc returns a byte slice of exactly size bytes whose backing
// address is a multiple of alignment. The slice keeps the over-allocated
// backing array alive, so release is handled by the garbage collector and
// a double free is structurally impossible.
func alignedAlloc(size, alignment int) ([]byte, error) {
	if size < 0 || alignment <= 0 || size > math.MaxInt-alignment {
		return nil, ErrAllocFailed
	}

	raw := make([]byte, size+alignment)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	off := int((uintptr(alignment) - addr%uintptr(alignment)) % uintptr(alignment))
	return raw[off : off+size : off+size], nil
}

// bitblt copies rows rows of rowSize bytes each from src to dst, where the
// strides give the byte offset between consecutive row starts and may each
// exceed rowSize. When both strides equal rowSize the copy collapses into a
// single contiguous transfer. rows == 0 performs no memory access at all.
//
// No validation is done against the slice lengths beyond the accesses
// themselves; the caller guarantees both regions are large enough.
func bitblt(dst []byte, dstStride int, src []byte, srcStride int, rowSize, rows int) {
	if rows <= 0 || rowSize <= 0 {
		return
	}

	if srcStride == rowSize && dstStride == rowSize {
		copy(dst[:rowSize*rows], src[:rowSize*rows])
		return
	}

	so, do := 0, 0
	for i := 0; i < rows; i++ {
		copy(dst[do:do+rowSize], src[so:so+rowSize])
		so += srcStride
		do += dstStride
	}
}
