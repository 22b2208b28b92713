package main

import (
	"github.com/vuxuanbac/bjpeg/bjpeg"
)

// buildFrame assembles a Frame the way both encode and decode need it: the
// same quality, sampling, and interleave settings must be supplied on both
// sides, since the bitstream itself carries no table or sampling metadata.
func buildFrame(grey bool, quality int, samplingName string, interleave bool, interp bjpeg.Interpolation) (*bjpeg.Frame, error) {
	lumaQuant, err := bjpeg.StandardLumaQuantTable().Scale(quality)
	if err != nil {
		return nil, err
	}
	chromaQuant, err := bjpeg.StandardChromaQuantTable().Scale(quality)
	if err != nil {
		return nil, err
	}

	lumaHuffman := bjpeg.NewHuffmanCodec(bjpeg.StandardLumaDCTable(), bjpeg.StandardLumaACTable())
	chromaHuffman := bjpeg.NewHuffmanCodec(bjpeg.StandardChromaDCTable(), bjpeg.StandardChromaACTable())

	if grey {
		factors, err := bjpeg.SamplingUniform(bjpeg.SamplingFactor{Horizontal: 1, Vertical: 1}).Resolve(1)
		if err != nil {
			return nil, err
		}
		y := bjpeg.NewComponent("Y", factors[0], lumaQuant, lumaHuffman, interp)
		return bjpeg.NewFrame([]*bjpeg.Component{y}, false, 8), nil
	}

	factors, err := bjpeg.SamplingByName(samplingName).Resolve(3)
	if err != nil {
		return nil, err
	}
	y := bjpeg.NewComponent("Y", factors[0], lumaQuant, lumaHuffman, interp)
	cr := bjpeg.NewComponent("Cr", factors[1], chromaQuant, chromaHuffman, interp)
	cb := bjpeg.NewComponent("Cb", factors[2], chromaQuant, chromaHuffman, interp)
	return bjpeg.NewFrame([]*bjpeg.Component{y, cr, cb}, interleave, 8), nil
}

func parseInterpolation(name string) bjpeg.Interpolation {
	switch name {
	case "nearest":
		return bjpeg.InterpolationNearest
	case "linear":
		return bjpeg.InterpolationLinear
	case "bilinear":
		return bjpeg.InterpolationBiLinear
	case "cubic":
		return bjpeg.InterpolationCubic
	case "area":
		return bjpeg.InterpolationArea
	case "lanczos4":
		return bjpeg.InterpolationLanczos4
	default:
		return bjpeg.InterpolationLinear
	}
}
