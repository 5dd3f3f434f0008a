// core/calc/calc.go
// Shared value records and input guards for the formula packages.
// Every calculation is a single stateless call: inputs in, values out.
package calc

import (
	"errors"
	"fmt"
	"math"

	"mechsolver-core/quantity"
)

var (
	// ErrInvalidInput flags missing, non-finite, or out-of-domain parameters.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDivisionByZero flags a denominator that evaluates to zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// Request maps named parameters to raw numeric values.
type Request map[string]float64

// Value is one named output with its unit. A few operations report a
// categorical outcome (flow regime, steam state); those set Label and
// leave the quantity zero.
type Value struct {
	Name     string
	Quantity quantity.Quantity
	Label    string
}

// Result is an ordered list of outputs; order is part of the text format.
type Result []Value

// V is a convenience constructor for a numeric Result entry.
func V(name string, value float64, unit string) Value {
	return Value{Name: name, Quantity: quantity.Quantity{Value: value, Unit: unit}}
}

// L is a convenience constructor for a categorical Result entry.
func L(name, label string) Value {
	return Value{Name: name, Label: label}
}

// Finite returns ErrInvalidInput if any argument is NaN or ±Inf.
func Finite(op string, args ...float64) error {
	for _, a := range args {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return fmt.Errorf("%s: non-finite argument: %w", op, ErrInvalidInput)
		}
	}
	return nil
}

// Positive returns ErrInvalidInput unless v > 0.
func Positive(op, name string, v float64) error {
	if !(v > 0) {
		return fmt.Errorf("%s: %s must be > 0: %w", op, name, ErrInvalidInput)
	}
	return nil
}

// NonZero returns ErrDivisionByZero when a denominator is zero.
func NonZero(op, name string, v float64) error {
	if v == 0 {
		return fmt.Errorf("%s: %s is zero: %w", op, name, ErrDivisionByZero)
	}
	return nil
}
