// Package errs defines the error values shared across the project.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrSerialization matches any SerializationError.
	ErrSerialization = errors.New("serialization error")
	// ErrTransit matches any TransitError.
	ErrTransit = errors.New("transit error")
	// ErrNativeLoad matches any NativeLoadError.
	ErrNativeLoad = errors.New("native module load error")

	// ErrResourceNotFound is returned by stores when a resource is unknown.
	ErrResourceNotFound = errors.New("resource not found")
)

// SerializationError reports a failure to encode a request or decode a response.
type SerializationError struct {
	Op  string
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("%s: serialization: %v", e.Op, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrSerialization) true.
func (e *SerializationError) Is(target error) bool { return target == ErrSerialization }

// TransitError reports a failure signalled by the native module. Message carries the
// diagnostic text the module wrote, and is the error text when present.
type TransitError struct {
	Op      string
	Message string
}

func (e *TransitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Op + ": native call failed"
}

// Is makes errors.Is(err, ErrTransit) true.
func (e *TransitError) Is(target error) bool { return target == ErrTransit }

// NativeLoadError reports that the native module could not be loaded or lacks a
// required symbol. It is fatal at startup.
type NativeLoadError struct {
	Path string
	Err  error
}

func (e *NativeLoadError) Error() string {
	return fmt.Sprintf("load native module %q: %v", e.Path, e.Err)
}

func (e *NativeLoadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrNativeLoad) true.
func (e *NativeLoadError) Is(target error) bool { return target == ErrNativeLoad }
