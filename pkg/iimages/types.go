/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iimages

// Frame is a decoded 2D detector image.
//
// Data is row-major: pixel (row, col) lives at Data[row*Dim1+col].
// Dim1 is the fast dimension (columns), Dim2 the slow one (rows).
type Frame struct {
	Dim1 int
	Dim2 int
	Data []float64
}

func (f Frame) At(row, col int) float64 {
	return f.Data[row*f.Dim1+col]
}
