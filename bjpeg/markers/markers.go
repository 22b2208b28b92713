// Package markers scans a real JFIF byte stream for its marker segments.
// It is a read-only diagnostic: it does not decode scan data, only reports
// where each segment starts and how long it is, for the "inspect" CLI
// command to print.
package markers

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Marker is a JPEG marker code (the byte following the 0xFF prefix).
type Marker byte

const (
	SOI  Marker = 0xD8
	EOI  Marker = 0xD9
	SOS  Marker = 0xDA
	DQT  Marker = 0xDB
	DHT  Marker = 0xC4
	SOF0 Marker = 0xC0
	DRI  Marker = 0xDD
)

var markerNames = map[Marker]string{
	SOI:  "SOI",
	EOI:  "EOI",
	SOS:  "SOS",
	DQT:  "DQT",
	DHT:  "DHT",
	SOF0: "SOF0",
	DRI:  "DRI",
}

// Name returns a human-readable name for m, falling back to "APPn"/"RSTn"
// for those marker ranges and "UNKNOWN" for anything else.
func Name(m Marker) string {
	if name, ok := markerNames[m]; ok {
		return name
	}
	switch {
	case m >= 0xE0 && m <= 0xEF:
		return "APPn"
	case m >= 0xD0 && m <= 0xD7:
		return "RSTn"
	default:
		return "UNKNOWN"
	}
}

// Segment describes one marker segment found in the stream.
type Segment struct {
	Offset int64
	Marker Marker
	Length int // value of the 2-byte length field (it counts those two bytes too), 0 for markers with no length field (SOI, EOI, RSTn)
}

// Scan walks r marker-by-marker and returns every segment it finds, up to
// and including SOS, after which scan data (not further markers) follows.
// It stops at EOI or end of file.
func Scan(r io.ReadSeeker) ([]Segment, error) {
	var segments []Segment
	var offset int64

	readByte := func() (byte, error) {
		var b [1]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, errors.Wrapf(err, "read byte at offset %d", offset)
		}
		offset++
		return b[0], nil
	}

	for {
		b, err := readByte()
		if errors.Cause(err) == io.EOF {
			break
		}
		if err != nil {
			return segments, err
		}
		if b != 0xFF {
			continue // skip stray bytes (e.g. entropy-coded scan data already consumed)
		}
		marker, err := readByte()
		if err != nil {
			if errors.Cause(err) == io.EOF {
				break
			}
			return segments, err
		}
		if marker == 0x00 || marker == 0xFF {
			continue // byte-stuffed 0xFF or fill byte, not a real marker
		}

		segOffset := offset - 2
		m := Marker(marker)

		if m == SOI || m == EOI || (m >= 0xD0 && m <= 0xD7) {
			segments = append(segments, Segment{Offset: segOffset, Marker: m, Length: 0})
			if m == EOI {
				break
			}
			continue
		}

		var lenBuf [2]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return segments, errors.Wrapf(err, "read length for marker 0x%02x at offset %d", marker, segOffset)
		}
		offset += 2
		length := int(binary.BigEndian.Uint16(lenBuf[:]))
		segments = append(segments, Segment{Offset: segOffset, Marker: m, Length: length})

		if length < 2 {
			return segments, errors.Errorf("marker 0x%02x at offset %d has invalid length %d", marker, segOffset, length)
		}
		if _, err := r.Seek(int64(length-2), io.SeekCurrent); err != nil {
			return segments, errors.Wrapf(err, "seek past payload for marker 0x%02x", marker)
		}
		offset += int64(length - 2)

		if m == SOS {
			// Entropy-coded data follows; stop structured scanning here.
			break
		}
	}

	return segments, nil
}
