/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package iservices

import (
	"reflect"
)

// WiredStructPtrToMap extracts the IService fields of the struct built by wire.
// Fields are keyed by their names
func WiredStructPtrToMap(addressOfWiredStruct interface{}) (res map[string]IService) {
	res = make(map[string]IService)
	val := reflect.ValueOf(addressOfWiredStruct).Elem()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanInterface() {
			continue
		}
		service, ok := field.Interface().(IService)
		if !ok || service == nil {
			continue
		}
		res[val.Type().Field(i).Name] = service
	}
	return res
}
