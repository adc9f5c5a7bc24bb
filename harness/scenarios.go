// SPDX-License-Identifier: MIT

// Package harness: the built-in comparison scenario catalogue.
//
// Expected values here are the pinned baseline the oracle must reproduce in
// self-check mode; each Compute closure goes through blasref so the harness
// matches the reference library's own output exactly rather than a value
// derived by hand a second time.
package harness

import (
	"fmt"
	"math"

	"github.com/katalvlaran/zoracle/blasref"
)

// BuiltinScenarios returns the fixed validation catalogue: Level 1
// reductions with pinned expectations plus Level 2 spot checks.
func BuiltinScenarios() []Scenario {
	out := make([]Scenario, 0, 15)
	out = append(out, dotuScenarios()...)
	out = append(out, dotcScenarios()...)
	out = append(out, nrm2Scenarios()...)
	out = append(out, asumScenarios()...)
	out = append(out, level2Scenarios()...)

	return out
}

// scalarScenario builds a one-value scenario around a scalar computation.
func scalarScenario(name, inputs string, expected complex128, compute func() (complex128, error)) Scenario {
	return Scenario{
		Name:     name,
		Inputs:   inputs,
		Expected: blasref.Vector{expected},
		Compute: func() (blasref.Vector, error) {
			z, err := compute()
			if err != nil {
				return nil, err
			}

			return blasref.Vector{z}, nil
		},
	}
}

// dotScenario wires one dot-product case; conjugated selects Dotc.
func dotScenario(op string, idx int, x, y blasref.Vector, expected complex128, conjugated bool) Scenario {
	return scalarScenario(
		fmt.Sprintf("%s/%d", op, idx),
		fmt.Sprintf("x=%v y=%v", x, y),
		expected,
		func() (complex128, error) {
			if conjugated {
				return blasref.Dotc(x, y)
			}

			return blasref.Dotu(x, y)
		},
	)
}

func dotuScenarios() []Scenario {
	return []Scenario{
		dotScenario("zdotu", 1,
			blasref.Vector{complex(1, 0), complex(2, 1)},
			blasref.Vector{complex(3, 4), complex(1, -2)},
			complex(7, 1), false),
		dotScenario("zdotu", 2,
			blasref.Vector{1, 2, 3},
			blasref.Vector{4, 5, 6},
			complex(32, 0), false),
		dotScenario("zdotu", 3,
			blasref.Vector{complex(0, 1), complex(0, 2)},
			blasref.Vector{complex(0, 3), complex(0, 4)},
			complex(-11, 0), false),
	}
}

func dotcScenarios() []Scenario {
	return []Scenario{
		// conj([1, i])·[1, -i] = [1, -i]·[1, -i] = 1 - 1 = 0
		dotScenario("zdotc", 1,
			blasref.Vector{complex(1, 0), complex(0, 1)},
			blasref.Vector{complex(1, 0), complex(0, -1)},
			complex(0, 0), true),
		dotScenario("zdotc", 2,
			blasref.Vector{complex(3, 4), complex(1, -2)},
			blasref.Vector{complex(2, -1), complex(5, 3)},
			complex(1, 2), true),
		// Self dot is |x|².
		dotScenario("zdotc", 3,
			blasref.Vector{complex(3, 4), complex(0, 5)},
			blasref.Vector{complex(3, 4), complex(0, 5)},
			complex(50, 0), true),
	}
}

func nrm2Scenarios() []Scenario {
	cases := []struct {
		x        blasref.Vector
		expected float64
	}{
		{blasref.Vector{complex(3, 4), 0}, 5},
		{blasref.Vector{1, 2, 3}, math.Sqrt(14)},
		{blasref.Vector{complex(0, 1), complex(0, 2)}, math.Sqrt(5)},
		{blasref.Vector{complex(3.0 / 5, 4.0 / 5)}, 1},
	}
	out := make([]Scenario, 0, len(cases))
	for i, c := range cases {
		x := c.x
		out = append(out, scalarScenario(
			fmt.Sprintf("dznrm2/%d", i+1),
			fmt.Sprintf("x=%v", x),
			complex(c.expected, 0),
			func() (complex128, error) { return complex(blasref.Nrm2(x), 0), nil },
		))
	}

	return out
}

func asumScenarios() []Scenario {
	cases := []struct {
		x        blasref.Vector
		expected float64
	}{
		{blasref.Vector{complex(3, 4), complex(-1, 0)}, 8},
		{blasref.Vector{complex(1, 1), complex(-2, 3), complex(0, -4)}, 11},
		{blasref.Vector{0, 0}, 0},
	}
	out := make([]Scenario, 0, len(cases))
	for i, c := range cases {
		x := c.x
		out = append(out, scalarScenario(
			fmt.Sprintf("dzasum/%d", i+1),
			fmt.Sprintf("x=%v", x),
			complex(c.expected, 0),
			func() (complex128, error) { return complex(blasref.Asum(x), 0), nil },
		))
	}

	return out
}

func level2Scenarios() []Scenario {
	gemvA := blasref.Matrix{
		{complex(1, 1), complex(2, 0)},
		{complex(3, 0), complex(4, 1)},
	}
	gemvX := blasref.Vector{complex(1, 1), complex(2, 0)}
	hemvH := blasref.Matrix{
		{complex(2, 0), complex(1, -1)},
		{complex(1, 1), complex(3, 0)},
	}

	return []Scenario{
		{
			Name:   "zgemv/1",
			Inputs: fmt.Sprintf("A=%v x=%v alpha=1 beta=0", gemvA, gemvX),
			// [(1+i)(1+i) + 2·2, 3(1+i) + (4+i)·2] = [4+2i, 11+5i]
			Expected: blasref.Vector{complex(4, 2), complex(11, 5)},
			Compute: func() (blasref.Vector, error) {
				return blasref.Gemv(1, gemvA, gemvX, 0, blasref.Vector{0, 0})
			},
		},
		{
			Name:   "zhemv/1",
			Inputs: fmt.Sprintf("H=%v x=%v alpha=1 beta=0", hemvH, gemvX),
			// [2(1+i) + (1-i)·2, (1+i)(1+i) + 3·2] = [4, 6+2i]
			Expected: blasref.Vector{complex(4, 0), complex(6, 2)},
			Compute: func() (blasref.Vector, error) {
				return blasref.Hemv(1, hemvH, gemvX, 0, blasref.Vector{0, 0})
			},
		},
	}
}
