package zimg

import "unsafe"

// Pixel is the closed set of component types the binding accepts: 8-bit
// unsigned, 16-bit unsigned (full words or half floats), and 32-bit float.
type Pixel interface {
	~uint8 | ~uint16 | ~float32
}

func sizeOf[T Pixel]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// AsBytes reinterprets a component slice as its underlying bytes without
// copying. The returned slice aliases data.
func AsBytes[T Pixel](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*sizeOf[T]())
}

// CalStride returns the smallest stride in bytes that holds width components
// of T and is a multiple of alignment.
func CalStride[T Pixel](width, alignment int) int {
	return (width*sizeOf[T]() + alignment - 1) / alignment * alignment
}

// Plane is a single channel of image data: a width x height array of T with
// an explicit byte stride between rows. A plane either owns freshly
// allocated aligned memory or borrows caller memory with the caller's
// stride; borrowed planes carry no alignment guarantee and nothing to
// release. Planes are only mutated through the bulk copy operations From,
// To and Clone.
type Plane[T Pixel] struct {
	width    int
	height   int
	stride   int // bytes between consecutive row starts
	data     []byte
	borrowed bool
}

// NewPlane allocates a plane of the given dimensions with aligned backing
// memory. The stride is the smallest multiple of Alignment that holds one
// row.
func NewPlane[T Pixel](width, height int) (*Plane[T], error) {
	if width < 0 || height < 0 {
		return nil, ErrAllocFailed
	}

	stride := CalStride[T](width, Alignment)
	data, err := alignedAlloc(stride*height, Alignment)
	if err != nil {
		return nil, err
	}

	return &Plane[T]{
		width:  width,
		height: height,
		stride: stride,
		data:   data,
	}, nil
}

// BorrowPlane wraps existing memory as a plane without copying. The stride
// is the caller's and no alignment is guaranteed. The plane reads and
// writes the caller's memory directly.
func BorrowPlane[T Pixel](width, height, stride int, data []byte) *Plane[T] {
	return &Plane[T]{
		width:    width,
		height:   height,
		stride:   stride,
		data:     data,
		borrowed: true,
	}
}

func (p *Plane[T]) Width() int  { return p.width }
func (p *Plane[T]) Height() int { return p.height }

// Stride returns the byte offset between consecutive rows.
func (p *Plane[T]) Stride() int { return p.stride }

// Bytes returns the raw backing memory, stride*height bytes.
func (p *Plane[T]) Bytes() []byte { return p.data }

// Borrowed reports whether the plane references caller-owned memory.
func (p *Plane[T]) Borrowed() bool { return p.borrowed }

// Row returns the components of row y, excluding any stride padding.
func (p *Plane[T]) Row(y int) []T {
	if y < 0 || y >= p.height || p.width == 0 {
		return nil
	}
	off := y * p.stride
	return unsafe.Slice((*T)(unsafe.Pointer(&p.data[off])), p.width)
}

// rowSize is the payload size of one row in bytes.
func (p *Plane[T]) rowSize() int {
	return p.width * sizeOf[T]()
}

// ptr returns the base address for the zimg buffer descriptor.
func (p *Plane[T]) ptr() unsafe.Pointer {
	if len(p.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&p.data[0])
}

// From bulk-copies external memory with the given stride into the plane.
// The external data must cover the same width and height; no validation is
// performed here.
func (p *Plane[T]) From(stride int, data []byte) {
	bitblt(p.data, p.stride, data, stride, p.rowSize(), p.height)
}

// To bulk-copies the plane into external memory with the given stride.
// The external data must cover the same width and height; no validation is
// performed here.
func (p *Plane[T]) To(stride int, data []byte) {
	bitblt(data, stride, p.data, p.stride, p.rowSize(), p.height)
}

// Clone returns a deep copy of the plane with the same stride. The copy
// always owns its memory, even when cloning a borrowed plane.
func (p *Plane[T]) Clone() (*Plane[T], error) {
	data, err := alignedAlloc(p.stride*p.height, Alignment)
	if err != nil {
		return nil, err
	}
	bitblt(data, p.stride, p.data, p.stride, p.rowSize(), p.height)

	return &Plane[T]{
		width:  p.width,
		height: p.height,
		stride: p.stride,
		data:   data,
	}, nil
}

// IsAligned reports whether both the base address and the stride satisfy
// the given alignment. Diagnostic only; nothing enforces it.
func (p *Plane[T]) IsAligned(alignment int) bool {
	if alignment <= 0 {
		return false
	}
	if len(p.data) == 0 {
		return p.stride%alignment == 0
	}
	addr := uintptr(unsafe.Pointer(&p.data[0]))
	return addr%uintptr(alignment) == 0 && p.stride%alignment == 0
}

// Image is a fixed-capacity collection of one (grey) or three (RGB/YUV)
// planes.
type Image[T Pixel] struct {
	planes    [maxPlanes]*Plane[T]
	numPlanes int
}

// NewImage builds an image from exactly 1 or 3 planes.
func NewImage[T Pixel](planes ...*Plane[T]) (*Image[T], error) {
	if len(planes) != 1 && len(planes) != maxPlanes {
		return nil, ErrBadPlaneCount
	}

	img := &Image[T]{numPlanes: len(planes)}
	copy(img.planes[:], planes)
	return img, nil
}

func (img *Image[T]) NumPlanes() int { return img.numPlanes }

// Plane returns plane p; p must be below NumPlanes.
func (img *Image[T]) Plane(p int) *Plane[T] { return img.planes[p] }

// Width and Height report the extent of plane 0.
func (img *Image[T]) Width() int  { return img.planes[0].Width() }
func (img *Image[T]) Height() int { return img.planes[0].Height() }
