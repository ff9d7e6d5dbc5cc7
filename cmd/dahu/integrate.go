/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drnecj/UPBL09a/pkg/iimagesimpl"
	"github.com/drnecj/UPBL09a/pkg/iintegrator"
	"github.com/drnecj/UPBL09a/pkg/iintegratorimpl"
	"github.com/drnecj/UPBL09a/pkg/plugins/integrate"
)

func newIntegrateCmd() *cobra.Command {
	var poniFile, imageFile, outFile string
	var npt int
	integrateCmd := &cobra.Command{
		Use:   "integrate",
		Short: "Integrate one image into a curve file",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := integrate.IntegrateSimple(
				iintegratorimpl.Provide(), iimagesimpl.Provide(),
				poniFile, imageFile, outFile, npt)
			if err != nil {
				return err
			}
			bytes, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(bytes))
			return nil
		},
	}
	integrateCmd.Flags().StringVar(&poniFile, "poni", "", "geometry file (required)")
	integrateCmd.Flags().StringVar(&imageFile, "image", "", "image file (required)")
	integrateCmd.Flags().StringVar(&outFile, "out", "", "output curve file (required)")
	integrateCmd.Flags().IntVar(&npt, "npt", iintegrator.DefaultNumPoints, "number of radial points")
	_ = integrateCmd.MarkFlagRequired("poni")
	_ = integrateCmd.MarkFlagRequired("image")
	_ = integrateCmd.MarkFlagRequired("out")
	return integrateCmd
}
