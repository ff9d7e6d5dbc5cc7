/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package pipeline

type WorkpieceContext struct {
	pipelineName   string
	pipelineStruct string
}

func (c WorkpieceContext) GetPipelineName() string {
	return c.pipelineName
}

func (c WorkpieceContext) GetPipelineStruct() string {
	return c.pipelineStruct
}

func NewWorkpieceContext(pName, pStruct string) WorkpieceContext {
	return WorkpieceContext{
		pipelineName:   pName,
		pipelineStruct: pStruct,
	}
}
