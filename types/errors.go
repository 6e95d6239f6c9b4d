package types

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain classifies every DomainError through errors.Is
	ErrDomain = errors.New("domain error")
	// ErrNumerical classifies every NumericalError through errors.Is
	ErrNumerical = errors.New("numerical error")
)

// DomainError reports an input outside the physically valid range. Value is the
// offending input and Bound the limit it violated.
type DomainError struct {
	Quantity string
	Value    float64
	Bound    float64
	Reason   string
}

func NewDomainError(quantity string, value, bound float64, reason string) *DomainError {
	return &DomainError{
		Quantity: quantity,
		Value:    value,
		Bound:    bound,
		Reason:   reason,
	}
}

func (de *DomainError) Error() string {
	return fmt.Sprintf("%s = %g violates bound %g: %s", de.Quantity, de.Value, de.Bound, de.Reason)
}

func (de *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// NumericalError reports an iterative solver that could not produce a root or an optimum
type NumericalError struct {
	Method     string
	Iterations int
	Residual   float64
	Reason     string
}

func NewNumericalError(method string, iterations int, residual float64, reason string) *NumericalError {
	return &NumericalError{
		Method:     method,
		Iterations: iterations,
		Residual:   residual,
		Reason:     reason,
	}
}

func (ne *NumericalError) Error() string {
	return fmt.Sprintf("%s failed after %d iterations (residual %g): %s",
		ne.Method, ne.Iterations, ne.Residual, ne.Reason)
}

func (ne *NumericalError) Is(target error) bool {
	return target == ErrNumerical
}
