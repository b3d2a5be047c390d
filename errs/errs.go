// seehuhn.de/go/chart - scales, ticks and path geometry for charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package errs defines the error types reported by the chart packages.
//
// Two kinds of failure exist. A [ValidationError] reports a missing or
// malformed argument at a public entry point. A [ScaleCalculationError]
// reports a value-to-position conversion which cannot produce a correct
// coordinate, for example the logarithm of a non-positive value on a scale
// without a clamp function.  Both match their sentinel via errors.Is:
//
//	if errors.Is(err, errs.ErrScaleCalculation) { ... }
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("invalid argument")

	// ErrScaleCalculation is matched by every *ScaleCalculationError.
	ErrScaleCalculation = errors.New("scale calculation failed")
)

// ValidationError reports a missing or malformed argument.
type ValidationError struct {
	Op     string // operation, e.g. "ranges.Num"
	Param  string // offending parameter
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: invalid %s", e.Op, e.Param)
	}
	return fmt.Sprintf("%s: invalid %s: %s", e.Op, e.Param, e.Reason)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ScaleCalculationError reports a failed conversion between data values
// and positions.
type ScaleCalculationError struct {
	Op     string // operation, e.g. "scale.ValToPct"
	Scale  string // scale key
	Reason string
}

func (e *ScaleCalculationError) Error() string {
	return fmt.Sprintf("%s: scale %q: %s", e.Op, e.Scale, e.Reason)
}

// Is reports whether target is ErrScaleCalculation.
func (e *ScaleCalculationError) Is(target error) bool {
	return target == ErrScaleCalculation
}

// Invalid returns a *ValidationError.
func Invalid(op, param, reason string) error {
	return &ValidationError{Op: op, Param: param, Reason: reason}
}

// Scale returns a *ScaleCalculationError.
func Scale(op, key, reason string) error {
	return &ScaleCalculationError{Op: op, Scale: key, Reason: reason}
}
