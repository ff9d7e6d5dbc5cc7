/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iservicesctl

import (
	"github.com/drnecj/UPBL09a/pkg/iservices"
)

func New() (impl iservices.IServicesController) {
	return &servicesController{}
}
