// Command bjpeg is a small CLI around the bjpeg codec: it can encode an
// image to the package's bitstream format, decode it back, and inspect the
// marker structure of a real JPEG file.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	root := &cobra.Command{
		Use:   "bjpeg",
		Short: "Encode, decode, and inspect baseline-JPEG-style images",
	}
	root.PersistentFlags().Bool("verbose", false, "enable debug logging")

	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newInspectCmd())

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("bjpeg failed")
	}
}

func setLogLevel(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
