package main

import (
	"fmt"
	"os"

	colr "github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vuxuanbac/bjpeg/bjpeg/markers"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <jpeg-file>",
		Short: "Print the marker segments of a real JFIF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setLogLevel(cmd)
			return runInspect(args[0])
		},
	}
	return cmd
}

func runInspect(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open file")
	}
	defer f.Close()

	segments, err := markers.Scan(f)
	if err != nil {
		return errors.Wrap(err, "scan markers")
	}

	bold := colr.New(colr.Bold)
	for _, seg := range segments {
		name := markers.Name(seg.Marker)
		if seg.Length > 0 {
			fmt.Printf("%08d  %s  len=%d\n", seg.Offset, bold.Sprint(name), seg.Length)
		} else {
			fmt.Printf("%08d  %s\n", seg.Offset, bold.Sprint(name))
		}
	}
	return nil
}
