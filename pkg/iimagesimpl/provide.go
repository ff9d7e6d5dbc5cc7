/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iimagesimpl

import (
	"github.com/drnecj/UPBL09a/pkg/iimages"
)

func Provide() iimages.IImageSource {
	return &edfSource{}
}
