package zimg

import "fmt"

// Resizer bundles a resize-only Filter with pre-allocated stacked source
// and destination planes, so repeated conversions between the same two
// formats reuse all memory. Like Filter, a Resizer must not be used from
// two goroutines at once.
type Resizer[T Pixel] struct {
	filter    *Filter
	src       *Plane[T]
	dst       *Plane[T]
	channels  int
	srcHeight int
	dstHeight int
}

// NewResizer builds a resize-only filter and the reusable planes for it.
// The channel count follows the color family of params: 3 for RGB or YUV,
// 1 for grey.
func NewResizer[T Pixel](params ResizeParams, srcWidth, srcHeight, dstWidth, dstHeight int) (*Resizer[T], error) {
	if sizeOf[T]() != params.PixelType.Size() {
		return nil, fmt.Errorf("%w: %d-byte elements for pixel type of %d bytes",
			ErrPixelTypeMismatch, sizeOf[T](), params.PixelType.Size())
	}

	channels := 1
	if params.ColorFamily != ColorGrey {
		channels = maxPlanes
	}

	filter, err := NewResizeFilter(params, srcWidth, srcHeight, dstWidth, dstHeight, nil)
	if err != nil {
		return nil, err
	}

	src, err := NewPlane[T](srcWidth, srcHeight*channels)
	if err != nil {
		filter.Close()
		return nil, err
	}
	dst, err := NewPlane[T](dstWidth, dstHeight*channels)
	if err != nil {
		filter.Close()
		return nil, err
	}

	return &Resizer[T]{
		filter:    filter,
		src:       src,
		dst:       dst,
		channels:  channels,
		srcHeight: srcHeight,
		dstHeight: dstHeight,
	}, nil
}

// Resize copies packed channel-major input rows with the given stride into
// the reusable source plane, runs the filter, and copies the result out
// with the given destination stride. Both buffers use stacked channel
// blocks (CHW); src must cover srcHeight*channels rows and dst
// dstHeight*channels rows of the configured widths.
func (r *Resizer[T]) Resize(dst []byte, dstStride int, src []byte, srcStride int) error {
	r.src.From(srcStride, src)

	var err error
	if r.channels == 1 {
		err = ApplyPlane(r.filter, r.dst, r.src)
	} else {
		err = applyStacked(r.filter, r.dst, r.src, r.dstHeight, r.srcHeight)
	}
	if err != nil {
		return err
	}

	r.dst.To(dstStride, dst)
	return nil
}

// ResizeValues is Resize for packed component slices.
func (r *Resizer[T]) ResizeValues(dst, src []T) error {
	es := sizeOf[T]()
	return r.Resize(AsBytes(dst), r.dst.Width()*es, AsBytes(src), r.src.Width()*es)
}

// SrcPlane exposes the reusable source plane, e.g. for zero-copy fills.
func (r *Resizer[T]) SrcPlane() *Plane[T] { return r.src }

// DstPlane exposes the reusable destination plane.
func (r *Resizer[T]) DstPlane() *Plane[T] { return r.dst }

// Close releases the underlying filter graph.
func (r *Resizer[T]) Close() {
	r.filter.Close()
}
