package provider

import (
	"errors"
	"fmt"
)

// ErrInvalidDefinition matches every *InvalidDefinitionError via errors.Is.
var ErrInvalidDefinition = errors.New("provider: invalid service definition")

// invalidDefinitionFormat is passed through the provider's Translator.
const invalidDefinitionFormat = "The definition for service with ID %q must be a callable"

// InvalidDefinitionError is returned by AddService when a value cannot
// possibly represent a factory.
type InvalidDefinitionError struct {
	ID    string
	Value any

	message string
}

func (e *InvalidDefinitionError) Error() string {
	if e.message != "" {
		return e.message
	}
	return fmt.Sprintf(invalidDefinitionFormat, e.ID)
}

func (e *InvalidDefinitionError) Is(target error) bool {
	return target == ErrInvalidDefinition
}

// UndefinedFunctionError is returned when a NamedGlobal is invoked before a
// func was registered under its name.
type UndefinedFunctionError struct {
	Name string
}

func (e *UndefinedFunctionError) Error() string {
	return fmt.Sprintf("provider: call to undefined function %q", e.Name)
}

// UndefinedMethodError is returned when a BoundMethod target has no such
// exported method.
type UndefinedMethodError struct {
	Type   string
	Method string
}

func (e *UndefinedMethodError) Error() string {
	return fmt.Sprintf("provider: call to undefined method %s.%s", e.Type, e.Method)
}

// SignatureError is returned when a definition's func cannot be called with
// (container, previous).
type SignatureError struct {
	Name   string
	Reason string
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("provider: cannot invoke %s: %s", e.Name, e.Reason)
}
