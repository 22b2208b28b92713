package bjpeg

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Stats reports how a decoded image compares to its source: PSNR over the
// full color image, PSNR over luma alone, and the compression ratio
// achieved against the raw pixel size.
type Stats struct {
	PSNR           float64
	LumaPSNR       float64
	CompressionRatio float64
	EncodedBytes   int
	RawBytes       int
}

// ComputeStats compares original against decoded (assumed to be the same
// size) and reports PSNR, luma PSNR, and the ratio of rawBytes to
// encodedBytes.
func ComputeStats(original, decoded image.Image, encodedBytes int) Stats {
	bounds := original.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	var sumSq, sumLumaSq float64
	n := float64(width * height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			or, og, ob := pixelRGB(original, bounds.Min.X+x, bounds.Min.Y+y)
			dr, dg, db := pixelRGB(decoded, bounds.Min.X+x, bounds.Min.Y+y)

			dr64, dg64, db64 := or-dr, og-dg, ob-db
			sumSq += dr64*dr64 + dg64*dg64 + db64*db64

			oLuma := kr*or + kg*og + kb*ob
			dLuma := kr*dr + kg*dg + kb*db
			dLumaDiff := oLuma - dLuma
			sumLumaSq += dLumaDiff * dLumaDiff
		}
	}

	mse := sumSq / (n * 3)
	lumaMSE := sumLumaSq / n
	rawBytes := width * height * 3

	return Stats{
		PSNR:             psnr(mse),
		LumaPSNR:         psnr(lumaMSE),
		CompressionRatio: float64(rawBytes) / float64(encodedBytes),
		EncodedBytes:     encodedBytes,
		RawBytes:         rawBytes,
	}
}

func psnr(mse float64) float64 {
	if mse == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(255*255/mse)
}

func pixelRGB(img image.Image, x, y int) (r, g, b float64) {
	px := color.RGBA64Model.Convert(img.At(x, y)).(color.RGBA64)
	return float64(px.R >> 8), float64(px.G >> 8), float64(px.B >> 8)
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"psnr=%.2fdB luma_psnr=%.2fdB ratio=%.2f (%d -> %d bytes)",
		s.PSNR, s.LumaPSNR, s.CompressionRatio, s.RawBytes, s.EncodedBytes,
	)
}
