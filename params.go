package zimg

import (
	"math"

	"golang.org/x/sys/cpu"
)

// ResizeParams is the small set of user-facing knobs for the resize-only
// path. BuildResizeParams derives a complete record from a channel count
// and bit depth; the record is treated as immutable once a filter is built
// from it.
type ResizeParams struct {
	PixelType   PixelType
	ColorFamily ColorFamily
	Depth       int
	PixelRange  PixelRange

	Filter       ResampleFilter
	FilterParamA float64 // NaN selects the library default shape
	FilterParamB float64 // NaN selects the library default shape

	Dither DitherType
	CPU    CPUType
}

// BuildResizeParams derives resize parameters from a channel count and bit
// depth. Depths above 16 store as 32-bit float, depths above 8 as 16-bit
// words, the rest as bytes; more than one channel selects RGB, otherwise
// grey. Defaults: full range, bicubic with the library's own shape
// parameters, no dither, automatic CPU selection.
func BuildResizeParams(channels, depth int) ResizeParams {
	params := ResizeParams{
		Depth:        depth,
		PixelRange:   RangeFull,
		Filter:       ResizeBicubic,
		FilterParamA: math.NaN(),
		FilterParamB: math.NaN(),
		Dither:       DitherNone,
		CPU:          CPUAuto,
	}

	switch {
	case depth > 16:
		params.PixelType = PixelFloat
	case depth > 8:
		params.PixelType = PixelWord
	default:
		params.PixelType = PixelByte
	}

	if channels > 1 {
		params.ColorFamily = ColorRGB
	} else {
		params.ColorFamily = ColorGrey
	}

	return params
}

// DetectCPU returns the widest CPU hint the host supports. zimg's plain
// CPUAuto stops at 256-bit vectors; when the full AVX-512 subset zimg's
// 64-byte kernels need is present this returns CPUAuto64B instead.
func DetectCPU() CPUType {
	if cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512DQ && cpu.X86.HasAVX512VL {
		return CPUAuto64B
	}
	return CPUAuto
}
