package merge

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches any ConfigurationError
	ErrConfiguration = errors.New("invalid merge configuration")
	// ErrNotFound matches any NotFoundError
	ErrNotFound = errors.New("declaration not found")
	// ErrUnsupportedShape matches any UnsupportedShapeError
	ErrUnsupportedShape = errors.New("unsupported class shape")
)

// ConfigurationError reports a malformed or inconsistent merge configuration
type ConfigurationError struct {
	Option string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("%v: %s", ErrConfiguration, e.Reason)
	}
	return fmt.Sprintf("%v: %s: %s", ErrConfiguration, e.Option, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NotFoundError reports a referenced declaration missing on the expected class
type NotFoundError struct {
	Kind  string // field, method
	Name  string
	Owner string // qualified class name
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found in %s", e.Kind, e.Name, e.Owner)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// UnsupportedShapeError reports a class that cannot take part in a merge
type UnsupportedShapeError struct {
	Owner  string
	Reason string
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrUnsupportedShape, e.Owner, e.Reason)
}

func (e *UnsupportedShapeError) Is(target error) bool {
	return target == ErrUnsupportedShape
}
