package bjpeg

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Interpolation selects the resampling filter used when resizing a plane to
// match a component's sampling factor.
type Interpolation int

const (
	InterpolationNearest Interpolation = iota
	InterpolationLinear
	InterpolationBiLinear
	InterpolationCubic
	// InterpolationArea approximates pixel-area averaging; x/image/draw has
	// no area-averaging scaler, so this maps onto CatmullRom like Cubic.
	InterpolationArea
	// InterpolationLanczos4 approximates an 8x8 Lanczos lobe; x/image/draw
	// has no Lanczos scaler, so this maps onto CatmullRom like Cubic.
	InterpolationLanczos4
)

func scalerFor(interp Interpolation) draw.Interpolator {
	switch interp {
	case InterpolationNearest:
		return draw.NearestNeighbor
	case InterpolationLinear:
		return draw.ApproxBiLinear
	case InterpolationBiLinear:
		return draw.BiLinear
	case InterpolationCubic, InterpolationArea, InterpolationLanczos4:
		return draw.CatmullRom
	default:
		return draw.ApproxBiLinear
	}
}

// floatPlane adapts a [][]float64 sample plane to image.Image, clamping to
// [0, 255] so it can drive golang.org/x/image/draw's scalers.
type floatPlane struct {
	samples [][]float64
	width   int
	height  int
}

func (p *floatPlane) ColorModel() color.Model { return color.GrayModel }
func (p *floatPlane) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.height) }
func (p *floatPlane) At(x, y int) color.Color {
	v := p.samples[y][x]
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return color.Gray{Y: uint8(v)}
}

// floatPlaneWriter is a draw.Image destination that writes back into a
// [][]float64 plane. Each sample it receives is converted through the 8-bit
// gray color model, so the stored values are whole numbers in [0, 255].
type floatPlaneWriter struct {
	samples [][]float64
	width   int
	height  int
}

func newFloatPlaneWriter(width, height int) *floatPlaneWriter {
	samples := make([][]float64, height)
	for r := range samples {
		samples[r] = make([]float64, width)
	}
	return &floatPlaneWriter{samples: samples, width: width, height: height}
}

func (p *floatPlaneWriter) ColorModel() color.Model { return color.GrayModel }
func (p *floatPlaneWriter) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.height) }
func (p *floatPlaneWriter) At(x, y int) color.Color {
	return color.Gray{Y: uint8(p.samples[y][x])}
}
func (p *floatPlaneWriter) Set(x, y int, c color.Color) {
	gray := color.GrayModel.Convert(c).(color.Gray)
	p.samples[y][x] = float64(gray.Y)
}

// ResizePlane resamples plane (widthxheight) to newWidth x newHeight using
// the given interpolation filter.
func ResizePlane(plane [][]float64, width, height, newWidth, newHeight int, interp Interpolation) [][]float64 {
	if width == newWidth && height == newHeight {
		out := make([][]float64, height)
		for r := range out {
			out[r] = append([]float64(nil), plane[r]...)
		}
		return out
	}
	src := &floatPlane{samples: plane, width: width, height: height}
	dst := newFloatPlaneWriter(newWidth, newHeight)
	scalerFor(interp).Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst.samples
}

// PadReplicate extends plane (widthxheight) to paddedWidth x paddedHeight by
// replicating the edge row/column, matching BORDER_REPLICATE padding.
func PadReplicate(plane [][]float64, width, height, paddedWidth, paddedHeight int) [][]float64 {
	out := make([][]float64, paddedHeight)
	for r := 0; r < paddedHeight; r++ {
		srcRow := r
		if srcRow >= height {
			srcRow = height - 1
		}
		row := make([]float64, paddedWidth)
		for c := 0; c < paddedWidth; c++ {
			srcCol := c
			if srcCol >= width {
				srcCol = width - 1
			}
			row[c] = plane[srcRow][srcCol]
		}
		out[r] = row
	}
	return out
}

// CropTo returns the top-left widthxheight region of plane, discarding any
// padding added before encoding.
func CropTo(plane [][]float64, width, height int) [][]float64 {
	out := make([][]float64, height)
	for r := 0; r < height; r++ {
		out[r] = append([]float64(nil), plane[r][:width]...)
	}
	return out
}

// ceilDiv is integer ceiling division for positive operands.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// CalculateSamplingSize returns the plane size a component must be resized
// to so that its resolution matches factor relative to maxFactor, the
// largest sampling factor among the frame's components.
func CalculateSamplingSize(width, height int, factor, maxFactor SamplingFactor) (int, int) {
	w := ceilDiv(width*factor.Horizontal, maxFactor.Horizontal)
	h := ceilDiv(height*factor.Vertical, maxFactor.Vertical)
	return w, h
}

// CalculatePaddingSize returns the smallest size at or above width/height
// that is a multiple of 8*factor in each dimension, so every component's
// plane tiles exactly into MCUs.
func CalculatePaddingSize(width, height int, factor SamplingFactor) (int, int) {
	unitW := 8 * factor.Horizontal
	unitH := 8 * factor.Vertical
	w := ceilDiv(width, unitW) * unitW
	h := ceilDiv(height, unitH) * unitH
	return w, h
}

// bt601 coefficients for BGR<->YCrCb conversion (ITU-R BT.601, full range).
const (
	kr = 0.299
	kg = 0.587
	kb = 0.114
)

// SplitBGR converts an 8-bit BGR image (as loaded by image.Image, addressed
// R,G,B via color.RGBA) into Y, Cr, Cb sample planes.
func SplitBGR(img image.Image) (y, cr, cb [][]float64, width, height int) {
	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	y = make([][]float64, height)
	cr = make([][]float64, height)
	cb = make([][]float64, height)
	for r := 0; r < height; r++ {
		y[r] = make([]float64, width)
		cr[r] = make([]float64, width)
		cb[r] = make([]float64, width)
		for c := 0; c < width; c++ {
			px := color.RGBA64Model.Convert(img.At(bounds.Min.X+c, bounds.Min.Y+r)).(color.RGBA64)
			red := float64(px.R >> 8)
			green := float64(px.G >> 8)
			blue := float64(px.B >> 8)
			luma := kr*red + kg*green + kb*blue
			y[r][c] = luma
			cr[r][c] = (red-luma)*0.713 + 128
			cb[r][c] = (blue-luma)*0.564 + 128
		}
	}
	return
}

// MergeYCrCb converts Y, Cr, Cb sample planes (widthxheight, already
// upsampled to the frame resolution) back into an 8-bit BGR image.
func MergeYCrCb(y, cr, cb [][]float64, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			luma := y[r][c]
			red := luma + 1.403*(cr[r][c]-128)
			blue := luma + 1.773*(cb[r][c]-128)
			green := (luma - kr*red - kb*blue) / kg
			img.Set(c, r, color.NRGBA{
				R: clamp8(red),
				G: clamp8(green),
				B: clamp8(blue),
				A: 255,
			})
		}
	}
	return img
}

// GreyPlane converts an image to a single luma sample plane using the same
// BT.601 weights as SplitBGR, for single-component (grey) frames.
func GreyPlane(img image.Image) (plane [][]float64, width, height int) {
	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	plane = make([][]float64, height)
	for r := 0; r < height; r++ {
		plane[r] = make([]float64, width)
		for c := 0; c < width; c++ {
			px := color.RGBA64Model.Convert(img.At(bounds.Min.X+c, bounds.Min.Y+r)).(color.RGBA64)
			red := float64(px.R >> 8)
			green := float64(px.G >> 8)
			blue := float64(px.B >> 8)
			plane[r][c] = kr*red + kg*green + kb*blue
		}
	}
	return
}

// GreyImage converts a single luma sample plane back into a grayscale image.
func GreyImage(plane [][]float64, width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			img.SetGray(c, r, color.Gray{Y: clamp8(plane[r][c])})
		}
	}
	return img
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
