// SPDX-License-Identifier: MIT

// Package harness: scenario and report types.
package harness

import (
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/katalvlaran/zoracle/blasref"
)

// State is a scenario's position in the validation state machine.
type State int

// Scenario states, in lifecycle order.
const (
	StateNotRun State = iota
	StateRunning
	StatePassed
	StateFailed
	StateErrored
)

// String renders the state for reports.
func (s State) String() string {
	switch s {
	case StateNotRun:
		return "NOT RUN"
	case StateRunning:
		return "RUNNING"
	case StatePassed:
		return "PASS"
	case StateFailed:
		return "FAIL"
	case StateErrored:
		return "ERROR"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Scenario is one comparison unit. Compute re-derives the oracle values at
// validation time through blasref (the single source of truth — expected
// values are never hand-derived twice). Expected pins the values the oracle
// must reproduce in self-check mode.
//
// When TestName is set and the runner carries an invoker, the external
// implementation is run instead and its textual output — which must encode a
// single complex value — is compared against the first oracle value.
type Scenario struct {
	// Name identifies the scenario in reports, e.g. "zdotu/1".
	Name string

	// Inputs is a human-readable rendering of the operands, surfaced on
	// failure so a mismatch is diagnosable without rerunning.
	Inputs string

	// TestName selects the external executable test; empty means oracle
	// self-check.
	TestName string

	// Compute produces the oracle values.
	Compute func() (blasref.Vector, error)

	// Expected are the pinned values for self-check mode.
	Expected blasref.Vector
}

// Outcome is the terminal record of one scenario.
type Outcome struct {
	Scenario string
	State    State

	// WorstDeviation is the largest |actual-expected| observed; meaningful
	// for Passed and Failed outcomes.
	WorstDeviation float64

	// Detail carries inputs plus expected/actual renderings for non-passed
	// outcomes.
	Detail string

	// Err is the terminal error for Failed/Errored outcomes.
	Err error
}

// Report aggregates every scenario outcome of a run.
type Report struct {
	Outcomes []Outcome
}

// OK reports whether every scenario reached Passed. This is the aggregate
// the process exit status is derived from.
func (r *Report) OK() bool {
	return lo.EveryBy(r.Outcomes, func(o Outcome) bool {
		return o.State == StatePassed
	})
}

// Render writes the human-readable pass/fail summary.
func (r *Report) Render(w io.Writer) {
	const rule = "============================================================"
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "COMPLEX BLAS VALIDATION SUMMARY")
	fmt.Fprintln(w, rule)

	for _, o := range r.Outcomes {
		fmt.Fprintf(w, "  %s: %s\n", o.Scenario, o.State)
		if o.State == StatePassed {
			continue
		}
		if o.Detail != "" {
			fmt.Fprintf(w, "    %s\n", o.Detail)
		}
		if o.State == StateFailed {
			fmt.Fprintf(w, "    worst |Δ| = %g\n", o.WorstDeviation)
		}
		if o.Err != nil {
			fmt.Fprintf(w, "    error: %v\n", o.Err)
		}
	}

	counts := lo.CountValuesBy(r.Outcomes, func(o Outcome) State { return o.State })
	fmt.Fprintf(w, "%d passed, %d failed, %d errored\n",
		counts[StatePassed], counts[StateFailed], counts[StateErrored])
	if r.OK() {
		fmt.Fprintln(w, "All validation scenarios PASSED.")
	} else {
		fmt.Fprintln(w, "Some validation scenarios FAILED.")
	}
}
