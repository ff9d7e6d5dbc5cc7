/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/drnecj/UPBL09a/pkg/coreutils"
	"github.com/drnecj/UPBL09a/pkg/iimagescache"
	"github.com/drnecj/UPBL09a/pkg/ijobs"
	"github.com/drnecj/UPBL09a/pkg/objcache"
)

func newJobCmd() *cobra.Command {
	var workdir string
	jobCmd := &cobra.Command{
		Use:   "job <file.json>",
		Short: "Run one job synchronously and print its output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJob(cmd.Context(), args[0], workdir)
		},
	}
	jobCmd.Flags().StringVar(&workdir, "workdir", "", "directory for job records, none when empty")
	return jobCmd
}

func runJob(ctx context.Context, path string, workdir string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	input := coreutils.MapObject{}
	if err = json.Unmarshal(bytes, &input); err != nil {
		return fmt.Errorf("can not parse %s: %w", path, err)
	}

	we, err := wireEngine(CLIParams{
		NumWorkers:          1,
		Workdir:             workdir,
		IntegratorCacheSize: objcache.DefaultCacheSize,
		FrameCacheSize:      iimagescache.DefaultMaxFrames,
	})
	if err != nil {
		return err
	}
	if err = we.workers.Prepare(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		we.workers.Run(ctx)
	}()
	defer func() {
		cancel()
		wg.Wait()
	}()

	completed := make(chan ijobs.IJob, 1)
	id, err := we.engine.Submit(input, func(job ijobs.IJob) { completed <- job })
	if err != nil {
		return err
	}

	var job ijobs.IJob
	select {
	case job = <-completed:
	case <-ctx.Done():
		return ctx.Err()
	}

	out, err := json.MarshalIndent(job.Output(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	if job.State() != ijobs.StateSuccess {
		return fmt.Errorf("job %d finished with state %s", id, job.State())
	}
	return nil
}
