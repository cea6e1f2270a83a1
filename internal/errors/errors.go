// Package errors composes concrete errors with sentinel errors so that callers
// can match on either with the standard errors.Is and errors.As.
package errors

import (
	"errors"
	"reflect"
)

// With returns an error whose message is that of base and which also matches
// top when inspected with errors.Is or errors.As. A nil argument yields the other.
func With(base, top error) error {
	switch {
	case base == nil:
		return top
	case top == nil:
		return base
	}
	return composite{error: base, top: top}
}

type composite struct {
	error
	top error
}

func (c composite) Is(target error) bool {
	if target == nil {
		return false
	}

	if reflect.TypeOf(target).Comparable() && c.top == target {
		return true
	}
	if x, ok := c.top.(interface{ Is(error) bool }); ok {
		return x.Is(target)
	}
	return false
}

func (c composite) As(target any) bool {
	if target == nil {
		panic("errors: target cannot be nil")
	}
	val := reflect.ValueOf(target)
	typ := val.Type()
	if typ.Kind() != reflect.Ptr || val.IsNil() {
		panic("errors: target must be a non-nil pointer")
	}

	elem := typ.Elem()
	if elem.Kind() != reflect.Interface && !elem.Implements(errorType) {
		panic("errors: *target must be interface or implement error")
	}
	if reflect.TypeOf(c.top).AssignableTo(elem) {
		val.Elem().Set(reflect.ValueOf(c.top))
		return true
	}
	if x, ok := c.top.(interface{ As(any) bool }); ok {
		return x.As(target)
	}
	return false
}

// Unwrap peels top first and falls back to base once top is exhausted.
func (c composite) Unwrap() error {
	if next := errors.Unwrap(c.top); next != nil {
		return composite{error: c.error, top: next}
	}
	return c.error
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()
