package main

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	colr "github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"

	"github.com/vuxuanbac/bjpeg/bjpeg"
)

func newEncodeCmd() *cobra.Command {
	var quality int
	var sampling string
	var interleave bool
	var interp string
	var output string
	var stats bool

	cmd := &cobra.Command{
		Use:   "encode <image>",
		Short: "Encode a JPEG/PNG/BMP image into the bjpeg bitstream format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setLogLevel(cmd)
			return runEncode(args[0], output, quality, sampling, interleave, interp, stats)
		},
	}

	cmd.Flags().IntVarP(&quality, "quality", "q", 75, "quality factor, 1-99")
	cmd.Flags().StringVarP(&sampling, "sampling", "s", "420", "chroma subsampling: 444, 440, 422, 420, 411, 410")
	cmd.Flags().BoolVar(&interleave, "interleave", true, "scan components in interleaved MCU order")
	cmd.Flags().StringVar(&interp, "interp", "linear", "resize filter: nearest, linear, bilinear, cubic, area, lanczos4")
	cmd.Flags().StringVarP(&output, "output", "o", "out.bjpg", "output file path")
	cmd.Flags().BoolVar(&stats, "stats", false, "round-trip decode after encoding and print compression statistics")

	return cmd
}

func decodeAnyImage(data []byte) (image.Image, string, error) {
	if img, format, err := image.Decode(bytes.NewReader(data)); err == nil {
		return img, format, nil
	}
	if img, err := bmp.Decode(bytes.NewReader(data)); err == nil {
		return img, "bmp", nil
	}
	return nil, "", errors.New("unrecognized image format (expected JPEG, PNG, or BMP)")
}

func runEncode(inputPath, outputPath string, quality int, sampling string, interleave bool, interpName string, showStats bool) error {
	bar := progressbar.NewOptions(3,
		progressbar.OptionSetDescription("encoding"),
		progressbar.OptionSetWriter(os.Stderr),
	)

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return errors.Wrap(err, "read input image")
	}
	img, format, err := decodeAnyImage(data)
	if err != nil {
		return err
	}
	bar.Add(1)

	grey := isGrey(img)
	frame, err := buildFrame(grey, quality, sampling, interleave, parseInterpolation(interpName))
	if err != nil {
		return errors.Wrap(err, "build frame")
	}

	bits, meta, err := frame.Encode(img)
	if err != nil {
		return errors.Wrap(err, "encode frame")
	}
	bar.Add(1)

	out, err := os.Create(outputPath)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	defer out.Close()

	h := header{
		Width:      uint16(meta.Width),
		Height:     uint16(meta.Height),
		Precision:  uint8(meta.Precision),
		Quality:    uint8(quality),
		Grey:       meta.Grey,
		Interleave: meta.Interleave,
	}
	if err := writeHeader(out, h); err != nil {
		return err
	}
	payload := bits.Bytes()
	if _, err := out.Write(payload); err != nil {
		return errors.Wrap(err, "write payload")
	}
	bar.Add(1)

	log.Info().
		Str("format", format).
		Int("width", meta.Width).
		Int("height", meta.Height).
		Int("bytes", headerSize+len(payload)).
		Msg(colr.GreenString("encoded %s -> %s", inputPath, outputPath))

	if showStats {
		reader := bjpeg.NewBitReader().Feed(payload)
		decoded, err := frame.Decode(reader, meta)
		if err != nil {
			return errors.Wrap(err, "round-trip decode for stats")
		}
		stats := bjpeg.ComputeStats(img, decoded, len(payload))
		log.Info().Msg(stats.String())
	}

	return nil
}

func isGrey(img image.Image) bool {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return true
	default:
		return false
	}
}
