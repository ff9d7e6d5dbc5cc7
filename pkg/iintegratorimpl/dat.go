/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iintegratorimpl

import (
	"bufio"
	"fmt"
	"os"

	"github.com/drnecj/UPBL09a/pkg/iintegrator"
)

// Two-column curve file with '#' header lines, one "<x> <intensity>" row per bin.
func writeDat(path string, curve iintegrator.Curve, norm float64) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# Azimuthal integration curve\n")
	fmt.Fprintf(w, "# npt: %d\n", len(curve.X))
	fmt.Fprintf(w, "# normalization: %g\n", norm)
	fmt.Fprintf(w, "#\n")
	fmt.Fprintf(w, "# %-12s  intensity\n", curve.Unit)
	for k := range curve.X {
		fmt.Fprintf(w, "%14.6e  %14.6e\n", curve.X[k], curve.Y[k])
	}
	return w.Flush()
}
