/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iimagesimpl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/drnecj/UPBL09a/pkg/iimages"
)

type edfSource struct{}

func (s *edfSource) Open(path string) (frame iimages.Frame, err error) {
	f, err := os.Open(path)
	if err != nil {
		return frame, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return frame, fmt.Errorf("%s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	if frame, err = readEDF(r); err != nil {
		return frame, fmt.Errorf("%s: %w", path, err)
	}
	return frame, nil
}
