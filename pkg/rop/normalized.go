package rop

import (
	"encoding/json"
	"fmt"
	"reflect"
)

const (
	unknownErrorMessage       = "An unknown error occurred."
	unsupportedTypeMessage    = "Unsupported error type: %s"
	serializationErrorMessage = "An error occurred while serializing the object: %s"
)

// NormalizedError is the single failure shape every Task and safe Result
// operator produces. It is never mutated after construction.
type NormalizedError struct {
	message string
	cause   error
}

// Error reports the message. A nil receiver, the failure held by a zero
// Result, reads as an unknown error.
func (e *NormalizedError) Error() string {
	return e.Message()
}

func (e *NormalizedError) Message() string {
	if e == nil {
		return unknownErrorMessage
	}
	return e.message
}

// Cause returns the original error, or nil when the raised value was not an error.
func (e *NormalizedError) Cause() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func (e *NormalizedError) Unwrap() error {
	return e.Cause()
}

// Causes flattens a joined cause into its parts.
func (e *NormalizedError) Causes() []error {
	return GetErrors(e.Cause())
}

// Normalize converts any raised value (a returned error or a recovered panic
// payload) into a NormalizedError. It never panics.
func Normalize(input any) (normalized *NormalizedError) {
	defer func() {
		if r := recover(); r != nil {
			normalized = &NormalizedError{message: unknownErrorMessage}
		}
	}()

	switch v := input.(type) {
	case *NormalizedError:
		if v == nil {
			return &NormalizedError{message: unknownErrorMessage}
		}
		return v
	case NormalizedError:
		return &v
	}

	if IsNil(input) {
		return &NormalizedError{message: unknownErrorMessage}
	}

	switch v := input.(type) {
	case error:
		return &NormalizedError{message: v.Error(), cause: v}
	case string:
		return &NormalizedError{message: v}
	}

	return fromValue(reflect.ValueOf(input), input)
}

func fromValue(v reflect.Value, input any) *NormalizedError {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return &NormalizedError{message: unknownErrorMessage}
		}
		return fromValue(v.Elem(), input)
	case reflect.String:
		return &NormalizedError{message: v.String()}
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		data, err := json.Marshal(input)
		if err != nil {
			return &NormalizedError{message: fmt.Sprintf(serializationErrorMessage, err.Error())}
		}
		return &NormalizedError{message: string(data)}
	case reflect.Invalid:
		return &NormalizedError{message: unknownErrorMessage}
	default:
		return &NormalizedError{message: fmt.Sprintf(unsupportedTypeMessage, v.Kind().String())}
	}
}
