package gomap

import (
	"errors"
	"fmt"
	"reflect"
)

// MarshalError represents an error during marshaling
type MarshalError struct {
	FieldPath string // Field path (e.g., "shape.points[2]")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError represents an error during unmarshaling
type UnmarshalError struct {
	FieldPath string // Field path (e.g., "shape.points[2]")
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

var (
	// ErrUnsupported is wrapped by errors for Go types with no shape.
	ErrUnsupported = errors.New("unsupported type")
	// ErrUnknownVariant is wrapped when a variant name is not registered.
	ErrUnknownVariant = errors.New("unknown variant")
)

func unsupported(t reflect.Type, fieldPath string) error {
	return &UnmarshalError{
		FieldPath: fieldPath,
		Message:   fmt.Sprintf("unsupported type: %s", t),
		Err:       ErrUnsupported,
	}
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	if child != "" && child[0] == '[' {
		return parent + child
	}
	return parent + "." + child
}
