/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package pipeline

import (
	"context"
	"fmt"
)

type WiredOperator struct {
	name     string
	wctx     IWorkpieceContext
	Stdin    chan interface{} // Stdin is provided by the builder
	Stdout   chan interface{} // Stdout is owned by WiredOperator
	Operator ISyncOperator
	ctx      context.Context
	err      IErrorPipeline
}

func WireSyncOperator(name string, op ISyncOperator) *WiredOperator {
	return &WiredOperator{
		name:     name,
		Stdin:    nil,
		Stdout:   make(chan interface{}, 1),
		Operator: op,
	}
}

func (wo WiredOperator) String() string {
	return "operator: " + wo.name
}

func (wo *WiredOperator) NewError(err error, work interface{}, place string) IErrorPipeline {
	ep := errPipeline{
		err:  fmt.Errorf("[%s/%s] %w", wo.name, place, err),
		work: work,
	}
	wo.err = &ep
	return &ep
}

func (wo *WiredOperator) doSync(work interface{}) IErrorPipeline {
	if e := wo.Operator.DoSync(wo.ctx, work); e != nil {
		return wo.NewError(e, work, placeDoSync)
	}
	return nil
}
