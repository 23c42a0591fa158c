// Package zimg binds the z.lib (zimg) image scaling and colorspace
// conversion library. The package marshals strided pixel buffers into the
// aligned planar layout zimg expects, invokes a prebuilt filter graph, and
// copies results back out; all resampling, dithering and colorspace math
// happens inside libzimg itself.
package zimg

// #include <zimg.h>
import "C"

import (
	"bytes"
	"unsafe"
)

// Version returns the major and minor version of the zimg API the library
// was linked against.
func Version() (major, minor int) {
	var maj, min C.uint
	C.zimg_get_api_version(&maj, &min)
	return int(maj), int(min)
}

// lastError captures and clears the thread-local zimg error state.
func lastError() error {
	buf := make([]byte, 1024)
	code := C.zimg_get_last_error((*C.char)(unsafe.Pointer(&buf[0])), C.size_t(len(buf)))
	C.zimg_clear_last_error()

	msg := buf
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		msg = buf[:i]
	}
	return &GraphError{Code: int(code), Msg: string(msg)}
}

// CPUType selects the instruction set zimg may use.
type CPUType int

const (
	CPUNone    CPUType = C.ZIMG_CPU_NONE
	CPUAuto    CPUType = C.ZIMG_CPU_AUTO
	CPUAuto64B CPUType = C.ZIMG_CPU_AUTO_64B
)

// PixelType is the storage type of a pixel component.
type PixelType int

const (
	PixelByte  PixelType = C.ZIMG_PIXEL_BYTE
	PixelWord  PixelType = C.ZIMG_PIXEL_WORD
	PixelHalf  PixelType = C.ZIMG_PIXEL_HALF
	PixelFloat PixelType = C.ZIMG_PIXEL_FLOAT
)

// Size returns the size in bytes of one component of this type.
func (t PixelType) Size() int {
	switch t {
	case PixelByte:
		return 1
	case PixelWord, PixelHalf:
		return 2
	case PixelFloat:
		return 4
	}
	return 0
}

// PixelRange distinguishes limited (studio) from full range encoding.
type PixelRange int

const (
	RangeInternal PixelRange = C.ZIMG_RANGE_INTERNAL
	RangeLimited  PixelRange = C.ZIMG_RANGE_LIMITED
	RangeFull     PixelRange = C.ZIMG_RANGE_FULL
)

// ColorFamily is the plane layout of an image.
type ColorFamily int

const (
	ColorGrey ColorFamily = C.ZIMG_COLOR_GREY
	ColorRGB  ColorFamily = C.ZIMG_COLOR_RGB
	ColorYUV  ColorFamily = C.ZIMG_COLOR_YUV
)

// FieldParity describes interlacing of the image.
type FieldParity int

const (
	FieldProgressive FieldParity = C.ZIMG_FIELD_PROGRESSIVE
	FieldTop         FieldParity = C.ZIMG_FIELD_TOP
	FieldBottom      FieldParity = C.ZIMG_FIELD_BOTTOM
)

// ChromaLocation is the chroma sample siting of subsampled images.
type ChromaLocation int

const (
	ChromaInternal   ChromaLocation = C.ZIMG_CHROMA_INTERNAL
	ChromaLeft       ChromaLocation = C.ZIMG_CHROMA_LEFT
	ChromaCenter     ChromaLocation = C.ZIMG_CHROMA_CENTER
	ChromaTopLeft    ChromaLocation = C.ZIMG_CHROMA_TOP_LEFT
	ChromaTop        ChromaLocation = C.ZIMG_CHROMA_TOP
	ChromaBottomLeft ChromaLocation = C.ZIMG_CHROMA_BOTTOM_LEFT
	ChromaBottom     ChromaLocation = C.ZIMG_CHROMA_BOTTOM
)

// MatrixCoefficients per ITU-T H.273.
type MatrixCoefficients int

const (
	MatrixInternal               MatrixCoefficients = C.ZIMG_MATRIX_INTERNAL
	MatrixRGB                    MatrixCoefficients = C.ZIMG_MATRIX_RGB
	MatrixBT709                  MatrixCoefficients = C.ZIMG_MATRIX_BT709
	MatrixUnspecified            MatrixCoefficients = C.ZIMG_MATRIX_UNSPECIFIED
	MatrixFCC                    MatrixCoefficients = C.ZIMG_MATRIX_FCC
	MatrixBT470BG                MatrixCoefficients = C.ZIMG_MATRIX_BT470_BG
	MatrixST170M                 MatrixCoefficients = C.ZIMG_MATRIX_ST170_M
	MatrixST240M                 MatrixCoefficients = C.ZIMG_MATRIX_ST240_M
	MatrixYCgCo                  MatrixCoefficients = C.ZIMG_MATRIX_YCGCO
	MatrixBT2020NCL              MatrixCoefficients = C.ZIMG_MATRIX_BT2020_NCL
	MatrixBT2020CL               MatrixCoefficients = C.ZIMG_MATRIX_BT2020_CL
	MatrixChromaticityDerivedNCL MatrixCoefficients = C.ZIMG_MATRIX_CHROMATICITY_DERIVED_NCL
	MatrixChromaticityDerivedCL  MatrixCoefficients = C.ZIMG_MATRIX_CHROMATICITY_DERIVED_CL
	MatrixICtCp                  MatrixCoefficients = C.ZIMG_MATRIX_ICTCP
)

// TransferCharacteristics per ITU-T H.273.
type TransferCharacteristics int

const (
	TransferInternal     TransferCharacteristics = C.ZIMG_TRANSFER_INTERNAL
	TransferBT709        TransferCharacteristics = C.ZIMG_TRANSFER_BT709
	TransferUnspecified  TransferCharacteristics = C.ZIMG_TRANSFER_UNSPECIFIED
	TransferBT470M       TransferCharacteristics = C.ZIMG_TRANSFER_BT470_M
	TransferBT470BG      TransferCharacteristics = C.ZIMG_TRANSFER_BT470_BG
	TransferBT601        TransferCharacteristics = C.ZIMG_TRANSFER_BT601
	TransferST240M       TransferCharacteristics = C.ZIMG_TRANSFER_ST240_M
	TransferLinear       TransferCharacteristics = C.ZIMG_TRANSFER_LINEAR
	TransferLog100       TransferCharacteristics = C.ZIMG_TRANSFER_LOG_100
	TransferLog316       TransferCharacteristics = C.ZIMG_TRANSFER_LOG_316
	TransferIEC61966_2_4 TransferCharacteristics = C.ZIMG_TRANSFER_IEC_61966_2_4
	TransferIEC61966_2_1 TransferCharacteristics = C.ZIMG_TRANSFER_IEC_61966_2_1
	TransferBT2020_10    TransferCharacteristics = C.ZIMG_TRANSFER_BT2020_10
	TransferBT2020_12    TransferCharacteristics = C.ZIMG_TRANSFER_BT2020_12
	TransferST2084       TransferCharacteristics = C.ZIMG_TRANSFER_ST2084
	TransferARIB_B67     TransferCharacteristics = C.ZIMG_TRANSFER_ARIB_B67
)

// ColorPrimaries per ITU-T H.273.
type ColorPrimaries int

const (
	PrimariesInternal    ColorPrimaries = C.ZIMG_PRIMARIES_INTERNAL
	PrimariesBT709       ColorPrimaries = C.ZIMG_PRIMARIES_BT709
	PrimariesUnspecified ColorPrimaries = C.ZIMG_PRIMARIES_UNSPECIFIED
	PrimariesBT470M      ColorPrimaries = C.ZIMG_PRIMARIES_BT470_M
	PrimariesBT470BG     ColorPrimaries = C.ZIMG_PRIMARIES_BT470_BG
	PrimariesST170M      ColorPrimaries = C.ZIMG_PRIMARIES_ST170_M
	PrimariesST240M      ColorPrimaries = C.ZIMG_PRIMARIES_ST240_M
	PrimariesFilm        ColorPrimaries = C.ZIMG_PRIMARIES_FILM
	PrimariesBT2020      ColorPrimaries = C.ZIMG_PRIMARIES_BT2020
	PrimariesST428       ColorPrimaries = C.ZIMG_PRIMARIES_ST428
	PrimariesST431_2     ColorPrimaries = C.ZIMG_PRIMARIES_ST431_2
	PrimariesST432_1     ColorPrimaries = C.ZIMG_PRIMARIES_ST432_1
	PrimariesEBU3213E    ColorPrimaries = C.ZIMG_PRIMARIES_EBU3213_E
)

// DitherType selects the dithering applied when reducing bit depth.
type DitherType int

const (
	DitherNone           DitherType = C.ZIMG_DITHER_NONE
	DitherOrdered        DitherType = C.ZIMG_DITHER_ORDERED
	DitherRandom         DitherType = C.ZIMG_DITHER_RANDOM
	DitherErrorDiffusion DitherType = C.ZIMG_DITHER_ERROR_DIFFUSION
)

// ResampleFilter selects the resampling kernel.
type ResampleFilter int

const (
	ResizePoint    ResampleFilter = C.ZIMG_RESIZE_POINT
	ResizeBilinear ResampleFilter = C.ZIMG_RESIZE_BILINEAR
	ResizeBicubic  ResampleFilter = C.ZIMG_RESIZE_BICUBIC
	ResizeSpline16 ResampleFilter = C.ZIMG_RESIZE_SPLINE16
	ResizeSpline36 ResampleFilter = C.ZIMG_RESIZE_SPLINE36
	ResizeLanczos  ResampleFilter = C.ZIMG_RESIZE_LANCZOS
)
