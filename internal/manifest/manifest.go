// Package manifest stores checksums of a set of files so they can be
// verified later.
//
// A manifest starts with a 5-byte header ("CRCM" and a version byte),
// followed by one protobuf length-delimited record per entry, and ends with a
// fixed32 trailer holding the CRC-32 of every byte before it:
//
//	header | 1:entry | 1:entry | ... | 15:crc32
//
// An entry message carries 1:path (string), 2:size (varint) and
// 3:checksum (fixed32). Unknown entry fields are skipped so newer writers
// can add fields.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/iamNilotpal/crc/internal/core/domain"
	"github.com/iamNilotpal/crc/pkg/checksum"
	"github.com/iamNilotpal/crc/pkg/fs"
)

const (
	magic   = "CRCM"
	version = 1

	fieldEntry   protowire.Number = 1
	fieldTrailer protowire.Number = 15

	fieldPath     protowire.Number = 1
	fieldSize     protowire.Number = 2
	fieldChecksum protowire.Number = 3
)

var (
	ErrBadHeader       = errors.New("not a manifest")
	ErrUnknownVersion  = errors.New("unsupported manifest version")
	ErrMissingTrailer  = errors.New("manifest truncated: missing trailer")
	ErrTrailerMismatch = errors.New("manifest corrupt: trailer checksum mismatch")
	ErrBadEntry        = errors.New("manifest corrupt: bad entry")
)

// Entry is the recorded checksum of one file.
type Entry struct {
	Path     string
	Size     int64
	Checksum uint32
}

// String formats the entry like a line of checksum tool output.
func (e Entry) String() string {
	return fmt.Sprintf("%08x  %d  %s", e.Checksum, e.Size, e.Path)
}

// FromResults builds entries for every successful result, in order.
// Standard input cannot be read again, so it is never recorded.
func FromResults(results []domain.FileResult) []Entry {
	entries := make([]Entry, 0, len(results))
	for _, r := range results {
		if !r.OK() || r.Path == fs.Stdin {
			continue
		}
		entries = append(entries, Entry{Path: r.Path, Size: r.Size, Checksum: r.Checksum})
	}
	return entries
}

func appendEntry(b []byte, e Entry) []byte {
	var msg []byte
	msg = protowire.AppendTag(msg, fieldPath, protowire.BytesType)
	msg = protowire.AppendString(msg, e.Path)
	msg = protowire.AppendTag(msg, fieldSize, protowire.VarintType)
	msg = protowire.AppendVarint(msg, uint64(e.Size))
	msg = protowire.AppendTag(msg, fieldChecksum, protowire.Fixed32Type)
	msg = protowire.AppendFixed32(msg, e.Checksum)

	b = protowire.AppendTag(b, fieldEntry, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

// Write encodes entries to w.
func Write(w io.Writer, entries []Entry) error {
	cw := checksum.NewWriter(w)

	b := append([]byte(magic), version)
	for _, e := range entries {
		b = appendEntry(b, e)
	}
	if _, err := cw.Write(b); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	trailer := protowire.AppendTag(nil, fieldTrailer, protowire.Fixed32Type)
	trailer = protowire.AppendFixed32(trailer, cw.Sum32())
	if _, err := w.Write(trailer); err != nil {
		return fmt.Errorf("writing manifest trailer: %w", err)
	}
	return nil
}

// Read decodes a manifest from r, checking the header and trailer.
func Read(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Decode(data)
}

// Decode parses a manifest held in memory.
func Decode(data []byte) ([]Entry, error) {
	if len(data) < len(magic)+1 || !bytes.Equal(data[:len(magic)], []byte(magic)) {
		return nil, ErrBadHeader
	}
	if data[len(magic)] != version {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, data[len(magic)])
	}

	var entries []Entry
	for off := len(magic) + 1; off < len(data); {
		num, typ, n := protowire.ConsumeTag(data[off:])
		if n < 0 {
			return nil, fmt.Errorf("manifest offset %d: %w", off, protowire.ParseError(n))
		}
		body := data[off+n:]

		switch {
		case num == fieldEntry && typ == protowire.BytesType:
			msg, m := protowire.ConsumeBytes(body)
			if m < 0 {
				return nil, fmt.Errorf("manifest offset %d: %w", off, protowire.ParseError(m))
			}
			e, err := decodeEntry(msg)
			if err != nil {
				return nil, fmt.Errorf("manifest offset %d: %w", off, err)
			}
			entries = append(entries, e)
			off += n + m

		case num == fieldTrailer && typ == protowire.Fixed32Type:
			want, m := protowire.ConsumeFixed32(body)
			if m < 0 {
				return nil, fmt.Errorf("manifest offset %d: %w", off, protowire.ParseError(m))
			}
			if off+n+m != len(data) {
				return nil, fmt.Errorf("manifest offset %d: trailing data after trailer", off)
			}
			if checksum.Calculate(data[:off]) != want {
				return nil, ErrTrailerMismatch
			}
			return entries, nil

		default:
			return nil, fmt.Errorf("manifest offset %d: unexpected field %d", off, num)
		}
	}

	return nil, ErrMissingTrailer
}

func decodeEntry(msg []byte) (Entry, error) {
	var e Entry
	for len(msg) > 0 {
		num, typ, n := protowire.ConsumeTag(msg)
		if n < 0 {
			return e, protowire.ParseError(n)
		}
		msg = msg[n:]

		switch {
		case num == fieldPath && typ == protowire.BytesType:
			v, m := protowire.ConsumeString(msg)
			if m < 0 {
				return e, protowire.ParseError(m)
			}
			e.Path, msg = v, msg[m:]
		case num == fieldSize && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(msg)
			if m < 0 {
				return e, protowire.ParseError(m)
			}
			if v > math.MaxInt64 {
				return e, fmt.Errorf("%w: size %d out of range", ErrBadEntry, v)
			}
			e.Size, msg = int64(v), msg[m:]
		case num == fieldChecksum && typ == protowire.Fixed32Type:
			v, m := protowire.ConsumeFixed32(msg)
			if m < 0 {
				return e, protowire.ParseError(m)
			}
			e.Checksum, msg = v, msg[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, msg)
			if m < 0 {
				return e, protowire.ParseError(m)
			}
			msg = msg[m:]
		}
	}

	if e.Path == "" || e.Path == fs.Stdin {
		return e, fmt.Errorf("%w: path %q", ErrBadEntry, e.Path)
	}
	return e, nil
}
