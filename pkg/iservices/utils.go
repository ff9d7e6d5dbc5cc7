/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iservices

import (
	"reflect"
)

// WiredStructPtrToMap extracts the IService fields of an assembled services
// struct into a map[string]IService keyed by field name, ready for
// IServicesController.PrepareAndRun. Non-service fields are skipped.
func WiredStructPtrToMap(addrOfWiredStruct interface{}) (res map[string]IService) {
	res = make(map[string]IService)
	val := reflect.ValueOf(addrOfWiredStruct).Elem()

	for i := 0; i < val.NumField(); i++ {
		valueField := val.Field(i)
		typeField := val.Type().Field(i)
		service, ok := valueField.Interface().(IService)
		if !ok {
			continue
		}
		res[typeField.Name] = service
	}

	return res
}
