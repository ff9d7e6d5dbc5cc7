/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drnecj/UPBL09a/pkg/ihttp"
	"github.com/drnecj/UPBL09a/pkg/iimagescache"
	"github.com/drnecj/UPBL09a/pkg/ijobsmem"
	"github.com/drnecj/UPBL09a/pkg/iservices"
	"github.com/drnecj/UPBL09a/pkg/iservicesctl"
	"github.com/drnecj/UPBL09a/pkg/objcache"
)

func newServerCmd() *cobra.Command {
	var httpCLIParams ihttp.CLIParams
	var hostCLIParams CLIParams
	serverCmd := &cobra.Command{
		Use:   "server",
		Short: "Start the data analysis server",
		RunE: func(cmd *cobra.Command, args []string) error {
			wired, cleanup, err := wireServer(httpCLIParams, hostCLIParams)
			if err != nil {
				return fmt.Errorf("services not wired: %w", err)
			}
			defer cleanup()
			services := iservices.WiredStructPtrToMap(&wired)

			ctl := iservicesctl.New()
			join, err := ctl.PrepareAndRun(cmd.Context(), services)
			if err != nil {
				return fmt.Errorf("services preparation error: %w", err)
			}
			defer join(cmd.Context())
			return nil
		},
	}
	serverCmd.Flags().IntVar(&httpCLIParams.Port, "ihttp.Port", Default_ihttp_Port, "port the REST API listens on")
	serverCmd.Flags().UintVar(&hostCLIParams.NumWorkers, "workers", ijobsmem.DefaultNumWorkers, "number of job workers")
	serverCmd.Flags().StringVar(&hostCLIParams.Workdir, "workdir", "", "directory for job records, none when empty")
	serverCmd.Flags().IntVar(&hostCLIParams.IntegratorCacheSize, "integrator-cache", objcache.DefaultCacheSize, "max cached integrators")
	serverCmd.Flags().IntVar(&hostCLIParams.FrameCacheSize, "frame-cache", iimagescache.DefaultMaxFrames, "max cached decoded frames")
	return serverCmd
}
