package main

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/vuxuanbac/bjpeg/bjpeg"
)

// header is this CLI's own small out-of-band shape record, not a JPEG
// marker: the codec's bitstream carries no image dimensions or table
// identifiers of its own, so a file round-tripped through this tool needs
// somewhere to keep them.
type header struct {
	Width      uint16
	Height     uint16
	Precision  uint8
	Quality    uint8
	Grey       bool
	Interleave bool
}

const (
	headerMagic = "BJP1"
	headerSize  = 16
)

func writeHeader(w io.Writer, h header) error {
	buf := make([]byte, headerSize)
	copy(buf[0:4], headerMagic)
	binary.BigEndian.PutUint16(buf[4:6], h.Width)
	binary.BigEndian.PutUint16(buf[6:8], h.Height)
	buf[8] = h.Precision
	buf[9] = h.Quality
	if h.Grey {
		buf[10] = 1
	}
	if h.Interleave {
		buf[11] = 1
	}
	_, err := w.Write(buf)
	return errors.Wrap(err, "write header")
}

func readHeader(r io.Reader) (header, error) {
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return header{}, errors.Wrap(err, "read header")
	}
	if string(buf[0:4]) != headerMagic {
		return header{}, errors.Errorf("not a bjpeg file: bad magic %q", buf[0:4])
	}
	return header{
		Width:      binary.BigEndian.Uint16(buf[4:6]),
		Height:     binary.BigEndian.Uint16(buf[6:8]),
		Precision:  buf[8],
		Quality:    buf[9],
		Grey:       buf[10] != 0,
		Interleave: buf[11] != 0,
	}, nil
}

func metaFromHeader(h header) bjpeg.FrameMeta {
	return bjpeg.FrameMeta{
		Width:      int(h.Width),
		Height:     int(h.Height),
		Precision:  int(h.Precision),
		Interleave: h.Interleave,
		Grey:       h.Grey,
	}
}
