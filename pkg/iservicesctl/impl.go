/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iservicesctl

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/drnecj/UPBL09a/pkg/iservices"
)

type servicesController struct{}

func (sc *servicesController) PrepareAndRun(ctx context.Context, services map[string]iservices.IService) (join func(ctx context.Context), err error) {
	for name, service := range services {
		if prepErr := service.Prepare(); prepErr != nil {
			err = errors.Join(err, fmt.Errorf("%s: %w", name, prepErr))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", iservices.ErrAtLeastOneServiceFailedToStart, err)
	}

	wg := sync.WaitGroup{}
	for _, service := range services {
		wg.Add(1)
		go func(service iservices.IService) {
			defer wg.Done()
			service.Run(ctx)
		}(service)
	}

	join = func(ctx context.Context) {
		<-ctx.Done()
		wg.Wait()
	}
	return join, nil
}
