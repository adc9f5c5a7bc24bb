// SPDX-License-Identifier: MIT

// Package fixture: data model for test cases and suites.
// This file contains ONLY the serialized domain types; generation lives in
// generator.go and the byte-level contract in serializer.go.
package fixture

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/zoracle/zformat"
)

// Vector is the serialized form of a complex vector: each entry carries the
// stable {"real": ..., "imag": ...} wire schema.
type Vector []zformat.Complex

// Matrix is the serialized form of a complex matrix: an array of rows.
type Matrix []Vector

// SwapPair holds both outputs of a swap: the sequences after the exchange.
type SwapPair struct {
	XAfter Vector `json:"x_after"`
	YAfter Vector `json:"y_after"`
}

// ResultKind tags the payload shape of a Result.
type ResultKind int

// Result payload shapes, in sniffing order of UnmarshalJSON.
const (
	KindScalar ResultKind = iota + 1 // single complex value
	KindReal                         // real number (norms, sums, indices)
	KindVector                       // complex vector
	KindMatrix                       // complex matrix
	KindPair                         // swap pair
)

// Result is the expected output of one operation: a tagged union over the
// shapes an operation may produce. It marshals to the bare payload (no tag
// byte on the wire) and re-derives the tag from the payload shape on load,
// so the JSON schema stays language-neutral.
type Result struct {
	Kind   ResultKind
	Scalar zformat.Complex
	Real   float64
	Vector Vector
	Matrix Matrix
	Pair   *SwapPair
}

// ScalarResult wraps a complex expected value.
func ScalarResult(z complex128) Result {
	return Result{Kind: KindScalar, Scalar: zformat.FromComplex128(z)}
}

// RealResult wraps a real expected value (norms, absolute sums, indices).
func RealResult(v float64) Result {
	return Result{Kind: KindReal, Real: v}
}

// VectorResult wraps a vector expected value.
func VectorResult(v Vector) Result {
	return Result{Kind: KindVector, Vector: v}
}

// MatrixResult wraps a matrix expected value.
func MatrixResult(m Matrix) Result {
	return Result{Kind: KindMatrix, Matrix: m}
}

// SwapResult wraps the post-exchange pair of a swap.
func SwapResult(xAfter, yAfter Vector) Result {
	return Result{Kind: KindPair, Pair: &SwapPair{XAfter: xAfter, YAfter: yAfter}}
}

// MarshalJSON emits the bare payload for the tagged kind.
func (r Result) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case KindScalar:
		return json.Marshal(r.Scalar)
	case KindReal:
		return json.Marshal(r.Real)
	case KindVector:
		return json.Marshal(r.Vector)
	case KindMatrix:
		return json.Marshal(r.Matrix)
	case KindPair:
		return json.Marshal(r.Pair)
	default:
		return nil, fmt.Errorf("marshal result kind %d: %w", r.Kind, ErrBadResult)
	}
}

// UnmarshalJSON re-derives the kind by sniffing the payload shape.
func (r *Result) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("unmarshal empty result: %w", ErrBadResult)
	}

	switch trimmed[0] {
	case '{':
		return r.unmarshalObject(trimmed)
	case '[':
		return r.unmarshalArray(trimmed)
	default:
		var v float64
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return fmt.Errorf("unmarshal result %q: %w", trimmed, ErrBadResult)
		}
		*r = RealResult(v)

		return nil
	}
}

// unmarshalObject distinguishes a complex scalar from a swap pair.
func (r *Result) unmarshalObject(data []byte) error {
	var probe struct {
		Real   *float64 `json:"real"`
		Imag   *float64 `json:"imag"`
		XAfter Vector   `json:"x_after"`
		YAfter Vector   `json:"y_after"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("unmarshal result object: %w", ErrBadResult)
	}
	switch {
	case probe.XAfter != nil && probe.YAfter != nil:
		*r = Result{Kind: KindPair, Pair: &SwapPair{XAfter: probe.XAfter, YAfter: probe.YAfter}}
	case probe.Real != nil && probe.Imag != nil:
		*r = Result{Kind: KindScalar, Scalar: zformat.New(*probe.Real, *probe.Imag)}
	default:
		return fmt.Errorf("unmarshal result object %q: %w", data, ErrBadResult)
	}

	return nil
}

// unmarshalArray distinguishes a vector from a matrix by its first element.
func (r *Result) unmarshalArray(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshal result array: %w", ErrBadResult)
	}
	if len(raw) > 0 && len(bytes.TrimSpace(raw[0])) > 0 && bytes.TrimSpace(raw[0])[0] == '[' {
		var m Matrix
		if err := json.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("unmarshal result matrix: %w", ErrBadResult)
		}
		*r = MatrixResult(m)

		return nil
	}
	var v Vector
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal result vector: %w", ErrBadResult)
	}
	*r = VectorResult(v)

	return nil
}

// TestCase bundles one operation family's inputs with the expected output of
// every operation computed over them. Field presence varies per level; the
// JSON schema matches the frozen fixture-file layout exactly.
type TestCase struct {
	Name string `json:"name,omitempty"`

	// Declared dimensions; each MUST match the literal lengths of the
	// vector/matrix fields below (enforced by generator tests).
	Size int `json:"size,omitempty"`
	M    int `json:"m,omitempty"`
	N    int `json:"n,omitempty"`
	K    int `json:"k,omitempty"`

	X Vector `json:"x,omitempty"`
	Y Vector `json:"y,omitempty"`
	B Vector `json:"b,omitempty"`

	A     Matrix `json:"A,omitempty"`
	BMat  Matrix `json:"B,omitempty"`
	C     Matrix `json:"C,omitempty"`
	H     Matrix `json:"H,omitempty"`
	U     Matrix `json:"U,omitempty"`
	CHerm Matrix `json:"C_herm,omitempty"`

	Alpha *zformat.Complex `json:"alpha,omitempty"`
	Beta  *zformat.Complex `json:"beta,omitempty"`

	// Real-constrained update scalars, kept distinct from the general complex
	// alpha/beta: Hermitian rank updates require exactly real multipliers.
	AlphaReal *float64 `json:"alpha_real,omitempty"`
	BetaReal  *float64 `json:"beta_real,omitempty"`

	Results map[string]Result `json:"results"`
}

// Suite maps level names to their ordered test cases. The struct form pins
// the serialization order level1 < level2 < level3.
type Suite struct {
	Level1 []TestCase `json:"level1"`
	Level2 []TestCase `json:"level2"`
	Level3 []TestCase `json:"level3"`
}

// Cases returns the ordered test cases for a level name.
// Returns ErrUnknownLevel for anything but level1/level2/level3.
func (s *Suite) Cases(level string) ([]TestCase, error) {
	switch level {
	case "level1":
		return s.Level1, nil
	case "level2":
		return s.Level2, nil
	case "level3":
		return s.Level3, nil
	default:
		return nil, fmt.Errorf("Cases %q: %w", level, ErrUnknownLevel)
	}
}
