package zimg

import (
	"image"
	"image/color"
)

// ArrayFromImage converts a decoded image into a 3xHxW CHW byte array
// suitable for an 8-bit RGB filter. Alpha is dropped.
func ArrayFromImage(img image.Image) (*Array[uint8], error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	arr, err := NewArray[uint8](3, h, w)
	if err != nil {
		return nil, err
	}

	planeSize := h * w
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := y*w + x
			arr.Data[i] = uint8(r >> 8)
			arr.Data[planeSize+i] = uint8(g >> 8)
			arr.Data[2*planeSize+i] = uint8(b >> 8)
		}
	}
	return arr, nil
}

// ImageFromArray converts a packed 3xHxW CHW byte array back into an
// opaque RGBA image.
func ImageFromArray(arr *Array[uint8]) (*image.RGBA, error) {
	if len(arr.Shape) != 3 {
		return nil, ErrBadDimensionality
	}
	if arr.Channels() != 3 {
		return nil, ErrBadChannelCount
	}

	w, h := arr.Width(), arr.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	planeSize := h * w
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			img.SetRGBA(x, y, color.RGBA{
				R: arr.Data[i],
				G: arr.Data[planeSize+i],
				B: arr.Data[2*planeSize+i],
				A: 0xff,
			})
		}
	}
	return img, nil
}
