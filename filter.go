package zimg

// #include <zimg.h>
import "C"

import (
	"runtime"
	"unsafe"
)

// noCopy triggers go vet's copylocks check on types that must not be
// duplicated.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// PlaneBuffer is a raw pointer/stride pair describing one plane for
// processing. No validation is performed against the formats fixed at
// filter construction; callers guarantee the buffers match.
type PlaneBuffer struct {
	Data   unsafe.Pointer
	Stride int
}

// ROI selects a sub-rectangle of the source for the resize-only filter
// path. A non-positive Width or Height selects the full extent minus the
// given value, i.e. extent = given > 0 ? given : full - given. Note the
// subtraction: a negative value yields an extent larger than the source.
// This mirrors the upstream convention exactly and is easy to misuse.
type ROI struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

func roiExtent(given, full float64) float64 {
	if given > 0 {
		return given
	}
	return full - given
}

// Filter owns one zimg filter graph and a scratch buffer sized to the
// graph's declared requirement. A Filter is built once per (source format,
// destination format, parameters) triple and must not be copied: the
// scratch buffer is reused across invocations, so one instance must not be
// used from two goroutines at once. Independent instances run fully in
// parallel. Close releases the graph; the scratch buffer is reclaimed by
// the garbage collector.
type Filter struct {
	noCopy noCopy

	graph     *C.zimg_filter_graph
	tmp       []byte
	srcFormat ImageFormat
	dstFormat ImageFormat
}

// NewFilter builds a filter graph from fully specified source and
// destination formats. This path passes everything through to the library
// and supports colorspace, range and field conversions beyond resizing.
// Returns a *GraphError if the library rejects the combination.
func NewFilter(srcFormat, dstFormat ImageFormat, params GraphParams) (*Filter, error) {
	return buildFilter(srcFormat, dstFormat, params)
}

// NewResizeFilter builds a filter graph from resize parameters and the
// source/destination extents. Colorimetry is left at the library's
// internal defaults, so only resizing is performed. roi may be nil for the
// full source extent; see ROI for the extent convention.
func NewResizeFilter(params ResizeParams, srcWidth, srcHeight, dstWidth, dstHeight int, roi *ROI) (*Filter, error) {
	srcFormat := ImageFormatDefault()
	srcFormat.Width = srcWidth
	srcFormat.Height = srcHeight
	srcFormat.PixelType = params.PixelType
	srcFormat.ColorFamily = params.ColorFamily
	srcFormat.Depth = params.Depth
	srcFormat.PixelRange = params.PixelRange
	if roi != nil {
		srcFormat.ActiveRegion = Region{
			Left:   roi.Left,
			Top:    roi.Top,
			Width:  roiExtent(roi.Width, float64(srcWidth)),
			Height: roiExtent(roi.Height, float64(srcHeight)),
		}
	}

	dstFormat := ImageFormatDefault()
	dstFormat.Width = dstWidth
	dstFormat.Height = dstHeight
	dstFormat.PixelType = params.PixelType
	dstFormat.ColorFamily = params.ColorFamily
	dstFormat.Depth = params.Depth
	dstFormat.PixelRange = params.PixelRange

	graphParams := GraphParamsDefault()
	graphParams.ResampleFilter = params.Filter
	graphParams.FilterParamA = params.FilterParamA
	graphParams.FilterParamB = params.FilterParamB
	graphParams.ResampleFilterUV = params.Filter
	graphParams.FilterParamAUV = params.FilterParamA
	graphParams.FilterParamBUV = params.FilterParamB
	graphParams.DitherType = params.Dither
	graphParams.CPUType = params.CPU

	return buildFilter(srcFormat, dstFormat, graphParams)
}

func buildFilter(srcFormat, dstFormat ImageFormat, params GraphParams) (*Filter, error) {
	csrc := srcFormat.toC()
	cdst := dstFormat.toC()
	cparams := params.toC()

	graph := C.zimg_filter_graph_build(&csrc, &cdst, &cparams)
	if graph == nil {
		return nil, lastError()
	}

	var tmpSize C.size_t
	if rc := C.zimg_filter_graph_get_tmp_size(graph, &tmpSize); rc != 0 {
		err := lastError()
		C.zimg_filter_graph_free(graph)
		return nil, err
	}

	tmp, err := alignedAlloc(int(tmpSize), Alignment)
	if err != nil {
		C.zimg_filter_graph_free(graph)
		return nil, err
	}

	return &Filter{
		graph:     graph,
		tmp:       tmp,
		srcFormat: srcFormat,
		dstFormat: dstFormat,
	}, nil
}

// SrcFormat returns the source format the graph was built for.
func (f *Filter) SrcFormat() ImageFormat { return f.srcFormat }

// DstFormat returns the destination format the graph was built for.
func (f *Filter) DstFormat() ImageFormat { return f.dstFormat }

// Close releases the filter graph. Safe to call more than once; other
// methods return ErrFilterClosed afterwards.
func (f *Filter) Close() {
	if f.graph != nil {
		C.zimg_filter_graph_free(f.graph)
		f.graph = nil
	}
	f.tmp = nil
}

// Process runs the graph over raw plane buffers. dst and src must each
// hold 1 or 3 planes matching the formats fixed at construction time; no
// bounds validation is performed here.
func (f *Filter) Process(dst, src []PlaneBuffer) error {
	if len(src) != 1 && len(src) != maxPlanes {
		return ErrBadPlaneCount
	}
	if len(dst) != len(src) {
		return ErrBadPlaneCount
	}
	return f.process(dst, src)
}

func (f *Filter) process(dst, src []PlaneBuffer) error {
	if f.graph == nil {
		return ErrFilterClosed
	}

	var pin runtime.Pinner
	defer pin.Unpin()

	// Pinned Go pointers may be stored in the C buffer descriptors for
	// the duration of the call.
	var csrc C.zimg_image_buffer_const
	var cdst C.zimg_image_buffer
	csrc.version = C.ZIMG_API_VERSION
	cdst.version = C.ZIMG_API_VERSION

	for p := range src {
		if src[p].Data != nil {
			pin.Pin(src[p].Data)
		}
		csrc.plane[p].data = src[p].Data
		csrc.plane[p].stride = C.ptrdiff_t(src[p].Stride)
		csrc.plane[p].mask = ^C.uint(0)
	}
	for p := range dst {
		if dst[p].Data != nil {
			pin.Pin(dst[p].Data)
		}
		cdst.plane[p].data = dst[p].Data
		cdst.plane[p].stride = C.ptrdiff_t(dst[p].Stride)
		cdst.plane[p].mask = ^C.uint(0)
	}

	var tmp unsafe.Pointer
	if len(f.tmp) > 0 {
		tmp = unsafe.Pointer(&f.tmp[0])
	}

	if rc := C.zimg_filter_graph_process(f.graph, &csrc, &cdst, tmp, nil, nil, nil, nil); rc != 0 {
		return lastError()
	}
	return nil
}

// ApplyPlane runs the filter over a single source plane into a single
// destination plane. Use only with grey formats.
func ApplyPlane[T Pixel](f *Filter, dst, src *Plane[T]) error {
	return f.process(
		[]PlaneBuffer{{Data: dst.ptr(), Stride: dst.Stride()}},
		[]PlaneBuffer{{Data: src.ptr(), Stride: src.Stride()}},
	)
}

// ApplyImage runs the filter over all planes of src into dst. The plane
// counts must match; use three-plane images with RGB or YUV formats.
func ApplyImage[T Pixel](f *Filter, dst, src *Image[T]) error {
	if dst.NumPlanes() != src.NumPlanes() {
		return ErrBadPlaneCount
	}

	sbuf := make([]PlaneBuffer, src.NumPlanes())
	dbuf := make([]PlaneBuffer, dst.NumPlanes())
	for p := 0; p < src.NumPlanes(); p++ {
		sbuf[p] = PlaneBuffer{Data: src.Plane(p).ptr(), Stride: src.Plane(p).Stride()}
		dbuf[p] = PlaneBuffer{Data: dst.Plane(p).ptr(), Stride: dst.Plane(p).Stride()}
	}
	return f.process(dbuf, sbuf)
}
