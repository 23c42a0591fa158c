package zimg

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocFailed indicates an aligned memory request could not be satisfied.
	ErrAllocFailed = errors.New("zimg: aligned allocation failed")

	// Validation errors raised by the array marshaling layer before any
	// allocation or processing takes place.
	ErrBadDimensionality = errors.New("zimg: number of dimensions must be 2 or 3")
	ErrBadChannelCount   = errors.New("zimg: number of channels must be 1 or 3 (CHW layout)")
	ErrSizeMismatch      = errors.New("zimg: input width and height must match the filter's source format")
	ErrPixelTypeMismatch = errors.New("zimg: element size does not match the filter's pixel type")

	ErrBadPlaneCount = errors.New("zimg: plane count must be 1 or 3")
	ErrFilterClosed  = errors.New("zimg: filter has been closed")
)

// GraphError reports a failure from the zimg filter graph, either while
// building it or while processing. The code and message come straight from
// zimg_get_last_error; these reflect configuration defects and are never
// retried.
type GraphError struct {
	Code int
	Msg  string
}

func (e *GraphError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("zimg: graph error (code %d)", e.Code)
	}
	return fmt.Sprintf("zimg: %s (code %d)", e.Msg, e.Code)
}
