/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iservices

import "context"

type IService interface {
	Prepare() (err error)
	Run(ctx context.Context)
}

type IServicesController interface {
	// PrepareAndRun prepares all services first, then runs each in its own
	// goroutine.
	// If any Prepare fails then nothing runs and
	//   errors.Is(err, ErrAtLeastOneServiceFailedToStart)
	// If all services are ok join() should be called to join services:
	// join() waits ctx and then waits for all services to return.
	PrepareAndRun(ctx context.Context, services map[string]IService) (join func(ctx context.Context), err error)
}
