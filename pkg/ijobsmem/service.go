/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package ijobsmem

import (
	"context"
	"sync"
)

// workersService drains the jobs channel group of the proc bus. One goroutine
// per channel, so jobs sharded to the same channel run in submission order.
type workersService struct {
	jobs *jobs
}

func (ws *workersService) Prepare() error { return nil }

func (ws *workersService) Run(ctx context.Context) {
	wg := sync.WaitGroup{}
	for i := uint(0); i < ws.jobs.numWorkers; i++ {
		channel := ws.jobs.bus.ServiceChannel(jobsChannelGroup, i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case msg, ok := <-channel:
					if !ok {
						return
					}
					ws.jobs.execute(ctx, msg.(*job))
				}
			}
		}()
	}
	wg.Wait()
}
