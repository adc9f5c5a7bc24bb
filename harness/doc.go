// Package harness validates implementations of complex BLAS operations
// against the blasref oracle.
//
// 🚀 How a scenario runs:
//
//	NotRun -> Running -> {Passed, Failed, Errored}
//
//	Passed  — output parsed and every compared value lies within the
//	          absolute tolerance ε of the oracle value (|actual-expected|
//	          on the complex modulus; zero relative component).
//	Failed  — parsed fine, but at least one value exceeds ε; the outcome
//	          records the magnitude of the WORST deviation, not a bare flag.
//	Errored — the external implementation could not be invoked, terminated
//	          unrecoverably, or produced unparseable output.
//
// Scenarios are isolated: a parse or dimension failure is fatal to its own
// scenario but never aborts the run; the report accumulates every outcome
// and the aggregate succeeds only if all scenarios passed.
//
// Invocation policy (kept deliberately lenient, matching the established
// baseline behavior): a non-zero exit status is non-fatal — the captured
// combined output is treated as the error surface and still parsed for a
// comparable value — and no timeout is enforced by the harness itself.
// Callers that need a bound pass a cancelable context to Run.
package harness
