package stash

import (
	"fmt"
	"reflect"
)

type LockedStoreError struct{}

func (e LockedStoreError) Error() string {
	return "store is currently locked"
}

type RegistryCapacityError struct {
	Limit int
}

func (e RegistryCapacityError) Error() string {
	return fmt.Sprintf("registry at maximum capacity (%d)", e.Limit)
}

type ComponentTypeMismatchError struct {
	Expected reflect.Type
	Got      reflect.Type
}

func (e ComponentTypeMismatchError) Error() string {
	return fmt.Sprintf("component value type %v does not match pool type %v", e.Got, e.Expected)
}
