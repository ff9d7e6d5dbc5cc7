/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package pipeline

type IErrorPipeline interface {
	error
	IWorkpiece
	GetWork() interface{}
}

type errPipeline struct {
	err  error
	work interface{}
}

func (e errPipeline) Release() {
}

func (e errPipeline) Error() string {
	return e.err.Error()
}

func (e errPipeline) Unwrap() error {
	return e.err
}

func (e errPipeline) GetWork() interface{} {
	return e.work
}
