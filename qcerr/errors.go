// Copyright 2024 The QubitControl Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qcerr defines the error kinds raised across the NLP assembly
// layer: configuration and dimension errors are detected at construction
// time and fail fast; numeric errors are reported by callbacks, never
// recovered locally.
package qcerr

import "github.com/cpmech/gosl/io"

// ConfigurationError reports a missing or inconsistent construction
// parameter: system, T, indices, times, or a bounds-length mismatch.
type ConfigurationError struct {
	Op  string
	Msg string
}

func (e *ConfigurationError) Error() string {
	return io.Sf("configuration error in %s: %s", e.Op, e.Msg)
}

// Configuration builds a *ConfigurationError with a formatted message.
func Configuration(op, format string, args ...interface{}) error {
	return &ConfigurationError{Op: op, Msg: io.Sf(format, args...)}
}

// DimensionError reports mismatched matrix/vector shapes.
type DimensionError struct {
	Op  string
	Msg string
}

func (e *DimensionError) Error() string {
	return io.Sf("dimension error in %s: %s", e.Op, e.Msg)
}

// Dimension builds a *DimensionError with a formatted message.
func Dimension(op, format string, args ...interface{}) error {
	return &DimensionError{Op: op, Msg: io.Sf(format, args...)}
}

// NumericError reports a NaN/Inf encountered inside a solver callback.
// These are reported to the solver, never recovered from locally.
type NumericError struct {
	Op  string
	Msg string
}

func (e *NumericError) Error() string {
	return io.Sf("numeric error in %s: %s", e.Op, e.Msg)
}

// Numeric builds a *NumericError with a formatted message.
func Numeric(op, format string, args ...interface{}) error {
	return &NumericError{Op: op, Msg: io.Sf(format, args...)}
}

// ConstraintViolation is a terminal (not per-iteration) error: the solver
// returned an infeasible point. The final infidelity is carried so the
// caller can judge whether the result is usable anyway.
type ConstraintViolation struct {
	Status     string
	Infidelity float64
	Msg        string
}

func (e *ConstraintViolation) Error() string {
	return io.Sf("constraint violation (status=%s, infidelity=%.6e): %s", e.Status, e.Infidelity, e.Msg)
}

// Violation builds a *ConstraintViolation.
func Violation(status string, infidelity float64, format string, args ...interface{}) error {
	return &ConstraintViolation{Status: status, Infidelity: infidelity, Msg: io.Sf(format, args...)}
}
