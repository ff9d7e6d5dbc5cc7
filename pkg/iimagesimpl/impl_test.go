/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iimagesimpl

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drnecj/UPBL09a/pkg/iimages"
)

func TestBasicUsage_EDF(t *testing.T) {
	require := require.New(t)
	source := Provide()

	frame := iimages.Frame{
		Dim1: 3,
		Dim2: 2,
		Data: []float64{1, 2, 3, 4.5, 5, 6},
	}

	t.Run("Should round-trip a plain file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "frame.edf")
		require.NoError(WriteEDF(path, frame))

		got, err := source.Open(path)
		require.NoError(err)
		require.Equal(frame, got)
		require.Equal(4.5, got.At(1, 0))
	})

	t.Run("Should round-trip a gzip compressed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "frame.edf.gz")
		require.NoError(WriteEDF(path, frame))

		got, err := source.Open(path)
		require.NoError(err)
		require.Equal(frame, got)
	})
}

// writeRawEDF builds a padded EDF on disk from raw header entries and payload.
func writeRawEDF(t *testing.T, path string, entries string, payload []byte) {
	hdr := bytes.Buffer{}
	hdr.WriteString("{\n")
	hdr.WriteString(entries)
	padded := (hdr.Len() + 2 + edfBlockSize - 1) / edfBlockSize * edfBlockSize
	for hdr.Len() < padded-2 {
		hdr.WriteByte(' ')
	}
	hdr.WriteString("}\n")
	require.NoError(t, os.WriteFile(path, append(hdr.Bytes(), payload...), 0644))
}

func TestEDF_DataTypes(t *testing.T) {
	require := require.New(t)
	source := Provide()
	dir := t.TempDir()

	t.Run("UnsignedShort", func(t *testing.T) {
		payload := make([]byte, 6*2)
		for i, v := range []uint16{1, 2, 3, 4, 5, 65535} {
			binary.LittleEndian.PutUint16(payload[i*2:], v)
		}
		path := filepath.Join(dir, "ushort.edf")
		writeRawEDF(t, path, "DataType = UnsignedShort ;\nDim_1 = 3 ;\nDim_2 = 2 ;\n", payload)

		got, err := source.Open(path)
		require.NoError(err)
		require.Equal([]float64{1, 2, 3, 4, 5, 65535}, got.Data)
	})

	t.Run("SignedInteger big endian", func(t *testing.T) {
		payload := make([]byte, 2*4)
		negSeven := int32(-7)
		binary.BigEndian.PutUint32(payload[0:], uint32(negSeven))
		binary.BigEndian.PutUint32(payload[4:], 12)
		path := filepath.Join(dir, "sint.edf")
		writeRawEDF(t, path, "ByteOrder = HighByteFirst ;\nDataType = SignedInteger ;\nDim_1 = 2 ;\nDim_2 = 1 ;\n", payload)

		got, err := source.Open(path)
		require.NoError(err)
		require.Equal([]float64{-7, 12}, got.Data)
	})

	t.Run("UnsignedInteger", func(t *testing.T) {
		payload := make([]byte, 4)
		binary.LittleEndian.PutUint32(payload, 4000000000)
		path := filepath.Join(dir, "uint.edf")
		writeRawEDF(t, path, "DataType = UnsignedInteger ;\nDim_1 = 1 ;\nDim_2 = 1 ;\n", payload)

		got, err := source.Open(path)
		require.NoError(err)
		require.Equal([]float64{4000000000}, got.Data)
	})

	t.Run("FloatValue", func(t *testing.T) {
		payload := make([]byte, 2*4)
		binary.LittleEndian.PutUint32(payload[0:], math.Float32bits(1.5))
		binary.LittleEndian.PutUint32(payload[4:], math.Float32bits(-2.25))
		path := filepath.Join(dir, "float.edf")
		writeRawEDF(t, path, "DataType = FloatValue ;\nDim_1 = 2 ;\nDim_2 = 1 ;\n", payload)

		got, err := source.Open(path)
		require.NoError(err)
		require.Equal([]float64{1.5, -2.25}, got.Data)
	})
}

func TestEDF_Errors(t *testing.T) {
	require := require.New(t)
	source := Provide()
	dir := t.TempDir()

	t.Run("Should fail on missing file", func(t *testing.T) {
		_, err := source.Open(filepath.Join(dir, "absent.edf"))
		require.Error(err)
		require.True(os.IsNotExist(err))
	})

	t.Run("Should reject a non-EDF file", func(t *testing.T) {
		path := filepath.Join(dir, "garbage.edf")
		require.NoError(os.WriteFile(path, bytes.Repeat([]byte("x"), 2*edfBlockSize), 0644))

		_, err := source.Open(path)
		require.ErrorIs(err, ErrNotEDF)
	})

	t.Run("Should reject an unsupported data type", func(t *testing.T) {
		path := filepath.Join(dir, "badtype.edf")
		writeRawEDF(t, path, "DataType = SignedByte ;\nDim_1 = 1 ;\nDim_2 = 1 ;\n", []byte{0})

		_, err := source.Open(path)
		require.ErrorIs(err, ErrUnsupportedDataType)
	})

	t.Run("Should reject missing dimensions", func(t *testing.T) {
		path := filepath.Join(dir, "nodims.edf")
		writeRawEDF(t, path, "DataType = DoubleValue ;\n", nil)

		_, err := source.Open(path)
		require.ErrorIs(err, ErrNotEDF)
	})

	t.Run("Should reject a truncated payload", func(t *testing.T) {
		path := filepath.Join(dir, "short.edf")
		writeRawEDF(t, path, "DataType = DoubleValue ;\nDim_1 = 4 ;\nDim_2 = 4 ;\n", []byte{1, 2, 3})

		_, err := source.Open(path)
		require.Error(err)
		require.Contains(err.Error(), "truncated payload")
	})

	t.Run("Should reject oversize frame data in WriteEDF", func(t *testing.T) {
		err := WriteEDF(filepath.Join(dir, "bad.edf"), iimages.Frame{Dim1: 2, Dim2: 2, Data: []float64{1}})
		require.ErrorIs(err, ErrNotEDF)
	})
}
