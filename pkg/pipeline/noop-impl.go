/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package pipeline

import (
	"context"
)

type NOOP struct{}

func (n *NOOP) Close() {}

func (n *NOOP) DoSync(ctx context.Context, work interface{}) (err error) {
	return
}

type implISyncOperatorSimple struct {
	NOOP
	doSync func(ctx context.Context, work interface{}) (err error)
}

func (so *implISyncOperatorSimple) DoSync(ctx context.Context, work interface{}) (err error) {
	if so.doSync != nil {
		return so.doSync(ctx, work)
	}
	return
}

// based on ISyncOperator
func WireFunc(name string, doSync func(ctx context.Context, work interface{}) (err error)) *WiredOperator {
	return WireSyncOperator(name, NewSyncOp(doSync))
}

func NewSyncOp(doSync func(ctx context.Context, work interface{}) (err error)) ISyncOperator {
	return &implISyncOperatorSimple{doSync: doSync}
}
