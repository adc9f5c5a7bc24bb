// SPDX-License-Identifier: MIT

// Package harness: the scenario runner.
package harness

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/zoracle/blasref"
	"github.com/katalvlaran/zoracle/zformat"
)

// Runner drives scenarios to their terminal states and aggregates a Report.
// Construct with NewRunner; the zero value is not usable.
type Runner struct {
	opts Options
}

// NewRunner returns a Runner configured by opts. Without WithInvoker every
// scenario runs in oracle self-check mode.
func NewRunner(opts ...Option) *Runner {
	return &Runner{opts: gatherOptions(opts...)}
}

// Run executes every scenario in order, isolating failures: an errored or
// failed scenario never aborts the remainder. Execution is synchronous; the
// only suspension point is the external invocation, bounded solely by ctx.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) *Report {
	report := &Report{Outcomes: make([]Outcome, 0, len(scenarios))}
	for _, sc := range scenarios {
		report.Outcomes = append(report.Outcomes, r.runScenario(ctx, sc))
	}

	return report
}

// runScenario walks one scenario through Running to a terminal state.
func (r *Runner) runScenario(ctx context.Context, sc Scenario) Outcome {
	out := Outcome{Scenario: sc.Name, State: StateRunning}

	// Stage 1: Oracle values.
	oracle, err := sc.Compute()
	if err != nil {
		out.State = StateErrored
		out.Detail = sc.Inputs
		out.Err = fmt.Errorf("compute: %w", err)

		return out
	}

	// Stage 2: Resolve the comparison pair.
	expected, actual := sc.Expected, oracle
	if sc.TestName != "" && r.opts.invoker != nil {
		expected = oracle // the oracle is the truth for external runs
		actual, err = r.invokeExternal(ctx, sc)
		if err != nil {
			out.State = StateErrored
			out.Detail = sc.Inputs
			out.Err = err

			return out
		}
	}

	// Stage 3: Tolerance comparison.
	worst, err := WorstDeviation(expected, actual)
	if err != nil {
		out.State = StateErrored
		out.Detail = sc.Inputs
		out.Err = err

		return out
	}
	out.WorstDeviation = worst
	if worst > r.opts.tolerance {
		out.State = StateFailed
		out.Detail = fmt.Sprintf("%s | expected=%s actual=%s",
			sc.Inputs, renderValues(expected), renderValues(actual))
		out.Err = fmt.Errorf("worst |Δ|=%g exceeds ε=%g: %w",
			worst, r.opts.tolerance, ErrToleranceExceeded)

		return out
	}
	out.State = StatePassed

	return out
}

// invokeExternal runs the implementation under test and parses its combined
// output into a single comparable value. Both a start failure and an
// unparseable surface terminate the scenario as Errored.
func (r *Runner) invokeExternal(ctx context.Context, sc Scenario) (blasref.Vector, error) {
	text, err := r.opts.invoker.Invoke(ctx, sc.TestName)
	if err != nil {
		return nil, err
	}
	z, err := zformat.Parse(strings.TrimSpace(text), r.opts.parseOpts...)
	if err != nil {
		return nil, fmt.Errorf("output %q: %w", strings.TrimSpace(text), err)
	}

	return blasref.Vector{z.Complex128()}, nil
}

// renderValues formats a value sequence with the canonical codec.
func renderValues(v blasref.Vector) string {
	parts := make([]string, len(v))
	for i, z := range v {
		parts[i] = zformat.Format(zformat.FromComplex128(z))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
