package zimg

import (
	"fmt"
	"unsafe"
)

// Array is a 2- or 3-dimensional pixel array with independent byte strides
// per dimension, the shape external callers hand to the binding. Two
// dimensions are height then width; three dimensions add a leading channel
// dimension (CHW layout). Data is raw bytes so that any stride pattern a
// caller produces, padded or interleaved, can be described without
// copying.
type Array[T Pixel] struct {
	Shape   []int // outermost first: [h, w] or [c, h, w]
	Strides []int // byte stride per dimension, same order as Shape
	Data    []byte
}

// NewArray allocates a packed array of the given shape.
func NewArray[T Pixel](shape ...int) (*Array[T], error) {
	if len(shape) < 2 || len(shape) > 3 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDimensionality, len(shape))
	}

	es := sizeOf[T]()
	size := es
	for _, dim := range shape {
		if dim < 0 {
			return nil, ErrAllocFailed
		}
		size *= dim
	}

	strides := make([]int, len(shape))
	stride := es
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}

	return &Array[T]{
		Shape:   append([]int(nil), shape...),
		Strides: strides,
		Data:    make([]byte, size),
	}, nil
}

// ArrayFromSlice wraps an existing component slice as a packed array of
// the given shape. The array aliases data.
func ArrayFromSlice[T Pixel](data []T, shape ...int) (*Array[T], error) {
	arr, err := NewArray[T](shape...)
	if err != nil {
		return nil, err
	}
	if len(data)*sizeOf[T]() != len(arr.Data) {
		return nil, fmt.Errorf("%w: %d elements for shape %v", ErrSizeMismatch, len(data), shape)
	}
	arr.Data = AsBytes(data)
	return arr, nil
}

// Channels returns the channel count: the leading dimension for 3-D
// arrays, 1 otherwise.
func (a *Array[T]) Channels() int {
	if len(a.Shape) == 3 {
		return a.Shape[0]
	}
	return 1
}

// Height returns the second-to-last dimension.
func (a *Array[T]) Height() int { return a.Shape[len(a.Shape)-2] }

// Width returns the last dimension.
func (a *Array[T]) Width() int { return a.Shape[len(a.Shape)-1] }

// packed reports whether the array is fully contiguous in C order.
func (a *Array[T]) packed() bool {
	stride := sizeOf[T]()
	for i := len(a.Shape) - 1; i >= 0; i-- {
		if a.Strides[i] != stride {
			return false
		}
		stride *= a.Shape[i]
	}
	return true
}

// Values returns the components as a typed slice, aliasing Data. It
// returns nil unless the array is fully packed.
func (a *Array[T]) Values() []T {
	if !a.packed() || len(a.Data) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&a.Data[0])), len(a.Data)/sizeOf[T]())
}

// ResizeArray runs src through the filter and returns a freshly allocated
// packed array with the same dimensionality and the filter's destination
// extents. The input is validated before anything is allocated; the
// conversion either completes fully or returns an error with no output
// produced.
func ResizeArray[T Pixel](f *Filter, src *Array[T]) (*Array[T], error) {
	ndim := len(src.Shape)
	if ndim < 2 || ndim > 3 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDimensionality, ndim)
	}

	channels := src.Channels()
	if channels != 1 && channels != maxPlanes {
		return nil, fmt.Errorf("%w: got %d", ErrBadChannelCount, channels)
	}

	srcWidth, srcHeight := src.Width(), src.Height()
	if srcWidth != f.srcFormat.Width || srcHeight != f.srcFormat.Height {
		return nil, fmt.Errorf("%w: input %dx%d, format %dx%d",
			ErrSizeMismatch, srcWidth, srcHeight, f.srcFormat.Width, f.srcFormat.Height)
	}

	es := sizeOf[T]()
	if es != f.srcFormat.PixelType.Size() {
		return nil, fmt.Errorf("%w: %d-byte elements for pixel type of %d bytes",
			ErrPixelTypeMismatch, es, f.srcFormat.PixelType.Size())
	}

	// One aligned allocation per side holds all channels as stacked
	// blocks in channel-height-width order.
	srcPlane, err := NewPlane[T](srcWidth, srcHeight*channels)
	if err != nil {
		return nil, err
	}
	dstWidth, dstHeight := f.dstFormat.Width, f.dstFormat.Height
	dstPlane, err := NewPlane[T](dstWidth, dstHeight*channels)
	if err != nil {
		return nil, err
	}

	copyIn(srcPlane, src, channels)

	if channels == 1 {
		err = ApplyPlane(f, dstPlane, srcPlane)
	} else {
		err = applyStacked(f, dstPlane, srcPlane, dstHeight, srcHeight)
	}
	if err != nil {
		return nil, err
	}

	dstShape := append([]int(nil), src.Shape...)
	dstShape[ndim-1] = dstWidth
	dstShape[ndim-2] = dstHeight
	dst, err := NewArray[T](dstShape...)
	if err != nil {
		return nil, err
	}
	copyOut(dst, dstPlane, channels)
	return dst, nil
}

// copyIn fills the stacked plane from the external array using its
// declared strides. Packed rows take the bulk path per channel; anything
// else is copied element by element through the byte strides, which
// handles padded or interleaved layouts transparently.
func copyIn[T Pixel](plane *Plane[T], src *Array[T], channels int) {
	ndim := len(src.Shape)
	height, width := src.Height(), src.Width()
	es := sizeOf[T]()

	strideC := 0
	if ndim == 3 {
		strideC = src.Strides[0]
	}
	strideH := src.Strides[ndim-2]
	strideW := src.Strides[ndim-1]

	if strideW != es {
		for c := 0; c < channels; c++ {
			for h := 0; h < height; h++ {
				so := c*strideC + h*strideH
				do := (c*height + h) * plane.Stride()
				for w := 0; w < width; w++ {
					copy(plane.data[do+w*es:do+(w+1)*es], src.Data[so+w*strideW:so+w*strideW+es])
				}
			}
		}
		return
	}

	for c := 0; c < channels; c++ {
		bitblt(plane.data[c*height*plane.Stride():], plane.Stride(),
			src.Data[c*strideC:], strideH, width*es, height)
	}
}

// copyOut mirrors copyIn from the stacked destination plane into the
// freshly allocated packed output array.
func copyOut[T Pixel](dst *Array[T], plane *Plane[T], channels int) {
	height, width := dst.Height(), dst.Width()
	es := sizeOf[T]()
	rowSize := width * es

	for c := 0; c < channels; c++ {
		bitblt(dst.Data[c*height*rowSize:], rowSize,
			plane.data[c*height*plane.Stride():], plane.Stride(), rowSize, height)
	}
}

// applyStacked invokes the three-plane call with pointer and stride
// offsets into the single stacked allocations.
func applyStacked[T Pixel](f *Filter, dstPlane, srcPlane *Plane[T], dstHeight, srcHeight int) error {
	sbuf := make([]PlaneBuffer, maxPlanes)
	dbuf := make([]PlaneBuffer, maxPlanes)
	for p := 0; p < maxPlanes; p++ {
		sbuf[p] = PlaneBuffer{
			Data:   unsafe.Pointer(&srcPlane.data[p*srcHeight*srcPlane.Stride()]),
			Stride: srcPlane.Stride(),
		}
		dbuf[p] = PlaneBuffer{
			Data:   unsafe.Pointer(&dstPlane.data[p*dstHeight*dstPlane.Stride()]),
			Stride: dstPlane.Stride(),
		}
	}
	return f.process(dbuf, sbuf)
}
