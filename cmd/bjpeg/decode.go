package main

import (
	"image/png"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/vuxuanbac/bjpeg/bjpeg"
)

func newDecodeCmd() *cobra.Command {
	var quality int
	var sampling string
	var interp string
	var output string

	cmd := &cobra.Command{
		Use:   "decode <bjpg-file>",
		Short: "Decode a bjpeg bitstream file back into a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setLogLevel(cmd)
			return runDecode(args[0], output, quality, sampling, interp)
		},
	}

	cmd.Flags().IntVarP(&quality, "quality", "q", 75, "quality factor used at encode time, 1-99")
	cmd.Flags().StringVarP(&sampling, "sampling", "s", "420", "chroma subsampling used at encode time")
	cmd.Flags().StringVar(&interp, "interp", "linear", "resize filter used at encode time")
	cmd.Flags().StringVarP(&output, "output", "o", "out.png", "output PNG path")

	return cmd
}

// runDecode rebuilds the quantization and Huffman tables from quality and
// sampling, which must match the values used at encode time: the
// bitstream carries no table metadata of its own. Interleave order and
// image shape come from the file's own header.
func runDecode(inputPath, outputPath string, quality int, sampling string, interpName string) error {
	bar := progressbar.NewOptions(2,
		progressbar.OptionSetDescription("decoding"),
		progressbar.OptionSetWriter(os.Stderr),
	)

	in, err := os.Open(inputPath)
	if err != nil {
		return errors.Wrap(err, "open bjpeg file")
	}
	defer in.Close()

	h, err := readHeader(in)
	if err != nil {
		return err
	}
	payload, err := readAll(in)
	if err != nil {
		return errors.Wrap(err, "read payload")
	}
	bar.Add(1)

	frame, err := buildFrame(h.Grey, quality, sampling, h.Interleave, parseInterpolation(interpName))
	if err != nil {
		return errors.Wrap(err, "build frame")
	}

	reader := bjpeg.NewBitReader().Feed(payload)
	img, err := frame.Decode(reader, metaFromHeader(h))
	if err != nil {
		return errors.Wrap(err, "decode frame")
	}
	bar.Add(1)

	out, err := os.Create(outputPath)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		return errors.Wrap(err, "encode output png")
	}

	log.Info().
		Int("width", int(h.Width)).
		Int("height", int(h.Height)).
		Msg("decoded " + inputPath + " -> " + outputPath)

	return nil
}

func readAll(f *os.File) ([]byte, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, info.Size()-headerSize)
	if _, err := f.ReadAt(buf, headerSize); err != nil {
		return nil, err
	}
	return buf, nil
}
