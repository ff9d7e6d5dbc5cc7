/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iimagesimpl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/drnecj/UPBL09a/pkg/iimages"
)

// EDF: ASCII header in brace-delimited 512-byte blocks, then the binary payload.
const (
	edfBlockSize       = 512
	edfMaxHeaderBlocks = 32
)

func readEDF(r io.Reader) (frame iimages.Frame, err error) {
	header, err := readEDFHeader(r)
	if err != nil {
		return frame, err
	}

	dim1, err := headerInt(header, "Dim_1")
	if err != nil {
		return frame, err
	}
	dim2, err := headerInt(header, "Dim_2")
	if err != nil {
		return frame, err
	}
	if dim1 <= 0 || dim2 <= 0 {
		return frame, fmt.Errorf("bad dimensions %d×%d: %w", dim1, dim2, ErrNotEDF)
	}

	dataType, ok := header["DataType"]
	if !ok {
		return frame, fmt.Errorf("missing header key 'DataType': %w", ErrNotEDF)
	}
	itemSize, err := edfItemSize(dataType)
	if err != nil {
		return frame, err
	}

	order := binary.ByteOrder(binary.LittleEndian)
	if header["ByteOrder"] == "HighByteFirst" {
		order = binary.BigEndian
	}

	payload := make([]byte, dim1*dim2*itemSize)
	if _, err = io.ReadFull(r, payload); err != nil {
		return frame, fmt.Errorf("truncated payload: %w", err)
	}

	return iimages.Frame{
		Dim1: dim1,
		Dim2: dim2,
		Data: decodeEDFData(payload, dataType, order, dim1*dim2),
	}, nil
}

func readEDFHeader(r io.Reader) (header map[string]string, err error) {
	raw := bytes.Buffer{}
	block := make([]byte, edfBlockSize)
	for i := 0; i < edfMaxHeaderBlocks; i++ {
		if _, err = io.ReadFull(r, block); err != nil {
			return nil, fmt.Errorf("truncated header: %w", ErrNotEDF)
		}
		raw.Write(block)
		if bytes.IndexByte(block, '}') >= 0 {
			return parseEDFHeader(raw.Bytes())
		}
		if i == 0 && bytes.IndexByte(block, '{') < 0 {
			return nil, ErrNotEDF
		}
	}
	return nil, fmt.Errorf("unterminated header: %w", ErrNotEDF)
}

func parseEDFHeader(raw []byte) (header map[string]string, err error) {
	opening := bytes.IndexByte(raw, '{')
	closing := bytes.IndexByte(raw, '}')
	if opening < 0 || closing < opening {
		return nil, ErrNotEDF
	}

	header = make(map[string]string)
	for _, line := range strings.Split(string(raw[opening+1:closing]), "\n") {
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		value = strings.TrimSpace(strings.TrimSuffix(value, ";"))
		header[strings.TrimSpace(key)] = value
	}
	return header, nil
}

func headerInt(header map[string]string, key string) (int, error) {
	raw, ok := header[key]
	if !ok {
		return 0, fmt.Errorf("missing header key '%s': %w", key, ErrNotEDF)
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("header key '%s' is not a number: %w", key, ErrNotEDF)
	}
	return val, nil
}

func edfItemSize(dataType string) (int, error) {
	switch dataType {
	case "UnsignedShort":
		return 2, nil
	case "SignedInteger", "UnsignedInteger", "FloatValue":
		return 4, nil
	case "DoubleValue":
		return 8, nil
	default:
		return 0, fmt.Errorf("'%s': %w", dataType, ErrUnsupportedDataType)
	}
}

func decodeEDFData(payload []byte, dataType string, order binary.ByteOrder, count int) []float64 {
	data := make([]float64, count)
	switch dataType {
	case "UnsignedShort":
		for i := 0; i < count; i++ {
			data[i] = float64(order.Uint16(payload[i*2:]))
		}
	case "SignedInteger":
		for i := 0; i < count; i++ {
			data[i] = float64(int32(order.Uint32(payload[i*4:])))
		}
	case "UnsignedInteger":
		for i := 0; i < count; i++ {
			data[i] = float64(order.Uint32(payload[i*4:]))
		}
	case "FloatValue":
		for i := 0; i < count; i++ {
			data[i] = float64(math.Float32frombits(order.Uint32(payload[i*4:])))
		}
	case "DoubleValue":
		for i := 0; i < count; i++ {
			data[i] = math.Float64frombits(order.Uint64(payload[i*8:]))
		}
	}
	return data
}

// WriteEDF writes frame to path as a DoubleValue little-endian EDF image,
// gzip-compressed when path has a ".gz" suffix.
func WriteEDF(path string, frame iimages.Frame) (err error) {
	if len(frame.Data) != frame.Dim1*frame.Dim2 {
		return fmt.Errorf("frame data length %d does not match dimensions %d×%d: %w",
			len(frame.Data), frame.Dim1, frame.Dim2, ErrNotEDF)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}

	hdr := bytes.Buffer{}
	hdr.WriteString("{\n")
	fmt.Fprintf(&hdr, "HeaderID = EH:000001:000000:000000 ;\n")
	fmt.Fprintf(&hdr, "Image = 1 ;\n")
	fmt.Fprintf(&hdr, "ByteOrder = LowByteFirst ;\n")
	fmt.Fprintf(&hdr, "DataType = DoubleValue ;\n")
	fmt.Fprintf(&hdr, "Dim_1 = %d ;\n", frame.Dim1)
	fmt.Fprintf(&hdr, "Dim_2 = %d ;\n", frame.Dim2)
	fmt.Fprintf(&hdr, "Size = %d ;\n", len(frame.Data)*8)

	// pad to whole blocks, closing brace last
	padded := (hdr.Len() + 2 + edfBlockSize - 1) / edfBlockSize * edfBlockSize
	for hdr.Len() < padded-2 {
		hdr.WriteByte(' ')
	}
	hdr.WriteString("}\n")

	if _, err = w.Write(hdr.Bytes()); err != nil {
		return err
	}

	payload := make([]byte, len(frame.Data)*8)
	for i, v := range frame.Data {
		binary.LittleEndian.PutUint64(payload[i*8:], math.Float64bits(v))
	}
	if _, err = w.Write(payload); err != nil {
		return err
	}

	if gz != nil {
		return gz.Close()
	}
	return nil
}
