/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iimages

// IImageSource opens detector images.
type IImageSource interface {
	// Open reads and decodes the image at path.
	// Paths with a ".gz" suffix are decompressed transparently.
	Open(path string) (Frame, error)
}
