// Package wire implements the compact binary form of a record stream.
//
// Each record is laid out as
//
//	type        1 byte: 0 dummy, 1 value entry
//	depth       int32, little-endian
//	key         length-prefixed string
//	value       length-prefixed string, only when type is 1
//	count       int32, little-endian comment count
//	comments    count length-prefixed strings
//
// Strings are an int32 little-endian byte length followed by the raw
// bytes, with no terminator. The stream has no record count and no
// terminator of its own; end of input at a record boundary ends it.
//
// The decoder trusts input produced by the encoder and performs minimal
// validation: truncation mid-record surfaces as a wrapped I/O error, not
// a typed format error.
package wire

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tabkv/go-tabkv/debug"
	"github.com/tabkv/go-tabkv/format"
	"github.com/tabkv/go-tabkv/record"
)

// binaryWriter writes the primitive wire types with error wrapping.
type binaryWriter struct {
	w io.Writer
}

func (bw binaryWriter) writeInt(i int) error {
	if err := binary.Write(bw.w, binary.LittleEndian, int32(i)); err != nil {
		return fmt.Errorf("writing int: %w", err)
	}
	return nil
}

func (bw binaryWriter) writeString(s string) error {
	if err := bw.writeInt(len(s)); err != nil {
		return fmt.Errorf("writing string length: %w", err)
	}
	if _, err := bw.w.Write([]byte(s)); err != nil {
		return fmt.Errorf("writing string content: %w", err)
	}
	return nil
}

func (bw binaryWriter) writeByte(b byte) error {
	if _, err := bw.w.Write([]byte{b}); err != nil {
		return fmt.Errorf("writing type byte: %w", err)
	}
	return nil
}

// binaryReader reads the primitive wire types with error wrapping.
type binaryReader struct {
	r *bufio.Reader
}

func (br binaryReader) readInt() (int, error) {
	var v int32
	if err := binary.Read(br.r, binary.LittleEndian, &v); err != nil {
		return 0, noEOF(err)
	}
	return int(v), nil
}

func (br binaryReader) readString() (string, error) {
	n, err := br.readInt()
	if err != nil {
		return "", fmt.Errorf("reading string length: %w", err)
	}
	if n < 0 {
		return "", fmt.Errorf("reading string length: negative length %d", n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(br.r, b); err != nil {
		return "", fmt.Errorf("reading string content: %w", noEOF(err))
	}
	return string(b), nil
}

// noEOF converts a bare io.EOF into io.ErrUnexpectedEOF. Inside a record
// the stream must not end; a clean EOF is only meaningful before the
// type byte.
func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// Write encodes recs onto w in document order.
func Write(w io.Writer, recs []record.Record) error {
	bw := binaryWriter{w: w}
	for i := range recs {
		if err := writeRecord(bw, &recs[i]); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	if debug.Wire() {
		debug.Logf("wire: wrote %d records\n", len(recs))
	}
	return nil
}

func writeRecord(bw binaryWriter, rec *record.Record) error {
	typ := format.WireDummy
	if rec.HasValue() {
		typ = format.WireValue
	}
	if err := bw.writeByte(typ); err != nil {
		return err
	}
	if err := bw.writeInt(rec.Depth); err != nil {
		return fmt.Errorf("depth: %w", err)
	}
	if err := bw.writeString(rec.Key); err != nil {
		return fmt.Errorf("key: %w", err)
	}
	if rec.HasValue() {
		if err := bw.writeString(*rec.Value); err != nil {
			return fmt.Errorf("value: %w", err)
		}
	}
	if err := bw.writeInt(len(rec.Comments)); err != nil {
		return fmt.Errorf("comment count: %w", err)
	}
	for _, c := range rec.Comments {
		if err := bw.writeString(c); err != nil {
			return fmt.Errorf("comment: %w", err)
		}
	}
	return nil
}

// Read decodes all records from r. It returns when r ends at a record
// boundary.
func Read(r io.Reader) ([]record.Record, error) {
	br := binaryReader{r: bufio.NewReader(r)}
	var recs []record.Record
	for {
		typ, err := br.r.ReadByte()
		if err == io.EOF {
			if debug.Wire() {
				debug.Logf("wire: read %d records\n", len(recs))
			}
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		rec, err := readRecord(br, typ)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(recs)+1, err)
		}
		recs = append(recs, *rec)
	}
}

func readRecord(br binaryReader, typ byte) (*record.Record, error) {
	rec := &record.Record{}
	var err error
	if rec.Depth, err = br.readInt(); err != nil {
		return nil, fmt.Errorf("depth: %w", err)
	}
	if rec.Key, err = br.readString(); err != nil {
		return nil, fmt.Errorf("key: %w", err)
	}
	if typ == format.WireValue {
		v, err := br.readString()
		if err != nil {
			return nil, fmt.Errorf("value: %w", err)
		}
		rec.Value = &v
	}
	n, err := br.readInt()
	if err != nil {
		return nil, fmt.Errorf("comment count: %w", err)
	}
	for i := 0; i < n; i++ {
		c, err := br.readString()
		if err != nil {
			return nil, fmt.Errorf("comment: %w", err)
		}
		rec.Comments = append(rec.Comments, c)
	}
	return rec, nil
}

// Encode returns the wire bytes of recs.
func Encode(recs []record.Record) []byte {
	buf := bytes.NewBuffer(nil)
	// A bytes.Buffer never fails to write.
	_ = Write(buf, recs)
	return buf.Bytes()
}

// Decode decodes records from d.
func Decode(d []byte) ([]record.Record, error) {
	return Read(bytes.NewReader(d))
}
