package zimg

// #include <zimg.h>
import "C"

// Region is a sub-rectangle of an image in pixel coordinates. Fractional
// offsets are meaningful to the resampler.
type Region struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// ImageFormat describes the layout and colorimetry of an image buffer, the
// Go counterpart of zimg_image_format. Obtain a baseline from
// ImageFormatDefault and override fields as needed; a zero ImageFormat is
// not a valid format.
type ImageFormat struct {
	Width  int
	Height int

	PixelType PixelType

	SubsampleW int
	SubsampleH int

	ColorFamily             ColorFamily
	MatrixCoefficients      MatrixCoefficients
	TransferCharacteristics TransferCharacteristics
	ColorPrimaries          ColorPrimaries

	Depth      int
	PixelRange PixelRange

	FieldParity    FieldParity
	ChromaLocation ChromaLocation

	// ActiveRegion limits processing to a sub-rectangle of the source.
	// NaN fields select the full extent, matching the zimg default.
	ActiveRegion Region
}

// ImageFormatDefault returns a format initialized with the library's own
// defaults (internal matrix/transfer/primaries, full active region).
func ImageFormatDefault() ImageFormat {
	var cf C.zimg_image_format
	C.zimg_image_format_default(&cf, C.ZIMG_API_VERSION)

	return ImageFormat{
		Width:                   int(cf.width),
		Height:                  int(cf.height),
		PixelType:               PixelType(cf.pixel_type),
		SubsampleW:              int(cf.subsample_w),
		SubsampleH:              int(cf.subsample_h),
		ColorFamily:             ColorFamily(cf.color_family),
		MatrixCoefficients:      MatrixCoefficients(cf.matrix_coefficients),
		TransferCharacteristics: TransferCharacteristics(cf.transfer_characteristics),
		ColorPrimaries:          ColorPrimaries(cf.color_primaries),
		Depth:                   int(cf.depth),
		PixelRange:              PixelRange(cf.pixel_range),
		FieldParity:             FieldParity(cf.field_parity),
		ChromaLocation:          ChromaLocation(cf.chroma_location),
		ActiveRegion: Region{
			Left:   float64(cf.active_region.left),
			Top:    float64(cf.active_region.top),
			Width:  float64(cf.active_region.width),
			Height: float64(cf.active_region.height),
		},
	}
}

func (f *ImageFormat) toC() C.zimg_image_format {
	var cf C.zimg_image_format
	C.zimg_image_format_default(&cf, C.ZIMG_API_VERSION)

	cf.width = C.uint(f.Width)
	cf.height = C.uint(f.Height)
	cf.pixel_type = C.zimg_pixel_type_e(f.PixelType)
	cf.subsample_w = C.uint(f.SubsampleW)
	cf.subsample_h = C.uint(f.SubsampleH)
	cf.color_family = C.zimg_color_family_e(f.ColorFamily)
	cf.matrix_coefficients = C.zimg_matrix_coefficients_e(f.MatrixCoefficients)
	cf.transfer_characteristics = C.zimg_transfer_characteristics_e(f.TransferCharacteristics)
	cf.color_primaries = C.zimg_color_primaries_e(f.ColorPrimaries)
	cf.depth = C.uint(f.Depth)
	cf.pixel_range = C.zimg_pixel_range_e(f.PixelRange)
	cf.field_parity = C.zimg_field_parity_e(f.FieldParity)
	cf.chroma_location = C.zimg_chroma_location_e(f.ChromaLocation)
	cf.active_region.left = C.double(f.ActiveRegion.Left)
	cf.active_region.top = C.double(f.ActiveRegion.Top)
	cf.active_region.width = C.double(f.ActiveRegion.Width)
	cf.active_region.height = C.double(f.ActiveRegion.Height)
	return cf
}

// GraphParams are the tuning knobs consumed when building a filter graph,
// the Go counterpart of zimg_graph_builder_params. Obtain a baseline from
// GraphParamsDefault and override fields as needed.
type GraphParams struct {
	ResampleFilter ResampleFilter
	FilterParamA   float64
	FilterParamB   float64

	ResampleFilterUV ResampleFilter
	FilterParamAUV   float64
	FilterParamBUV   float64

	DitherType DitherType
	CPUType    CPUType

	NominalPeakLuminance  float64
	AllowApproximateGamma bool
}

// GraphParamsDefault returns graph parameters initialized with the
// library's own defaults (bicubic, NaN shape parameters, no dither, auto
// CPU).
func GraphParamsDefault() GraphParams {
	var cp C.zimg_graph_builder_params
	C.zimg_graph_builder_params_default(&cp, C.ZIMG_API_VERSION)

	return GraphParams{
		ResampleFilter:        ResampleFilter(cp.resample_filter),
		FilterParamA:          float64(cp.filter_param_a),
		FilterParamB:          float64(cp.filter_param_b),
		ResampleFilterUV:      ResampleFilter(cp.resample_filter_uv),
		FilterParamAUV:        float64(cp.filter_param_a_uv),
		FilterParamBUV:        float64(cp.filter_param_b_uv),
		DitherType:            DitherType(cp.dither_type),
		CPUType:               CPUType(cp.cpu_type),
		NominalPeakLuminance:  float64(cp.nominal_peak_luminance),
		AllowApproximateGamma: cp.allow_approximate_gamma != 0,
	}
}

func (p *GraphParams) toC() C.zimg_graph_builder_params {
	var cp C.zimg_graph_builder_params
	C.zimg_graph_builder_params_default(&cp, C.ZIMG_API_VERSION)

	cp.resample_filter = C.zimg_resample_filter_e(p.ResampleFilter)
	cp.filter_param_a = C.double(p.FilterParamA)
	cp.filter_param_b = C.double(p.FilterParamB)
	cp.resample_filter_uv = C.zimg_resample_filter_e(p.ResampleFilterUV)
	cp.filter_param_a_uv = C.double(p.FilterParamAUV)
	cp.filter_param_b_uv = C.double(p.FilterParamBUV)
	cp.dither_type = C.zimg_dither_type_e(p.DitherType)
	cp.cpu_type = C.zimg_cpu_type_e(p.CPUType)
	cp.nominal_peak_luminance = C.double(p.NominalPeakLuminance)
	if p.AllowApproximateGamma {
		cp.allow_approximate_gamma = 1
	} else {
		cp.allow_approximate_gamma = 0
	}
	return cp
}
