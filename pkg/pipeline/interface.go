/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package pipeline

import "context"

// IWorkpiece is what flows through a pipeline.
type IWorkpiece interface {
	Release()
}

type IOperator interface {
	Close()
}

type ISyncOperator interface {
	IOperator
	DoSync(ctx context.Context, work interface{}) (err error)
}

type ISyncPipeline interface {
	ISyncOperator
	SendSync(work interface{}) (err error)
}

// ICatch lets an operator intercept errors of upstream operators.
type ICatch interface {
	OnErr(err error, work interface{}, context IWorkpieceContext) (newErr error)
}

type IWorkpieceContext interface {
	GetPipelineName() string
	GetPipelineStruct() string
}
