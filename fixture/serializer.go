// SPDX-License-Identifier: MIT

// Package fixture: byte-level serialization contract.
//
// Numeric fields serialize as decimal floating-point text (never binary) so
// fixture files stay diffable and portable; the indentation and level order
// are pinned because generated files serve as frozen baselines compared
// byte-for-byte across runs.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultPath is the fixed fixture-file location used by the CLI entry
// points. The name is part of the frozen external contract.
const DefaultPath = "complex_blas_test_data.json"

// indent is the pinned JSON indentation of fixture files.
const indent = "  "

// filePerm is the mode for written fixture files.
const filePerm = 0o644

// Marshal serializes a suite to its canonical byte form.
// Round-trip law: Unmarshal(Marshal(s)) reproduces s field-for-field.
// Complexity: O(size of suite).
func Marshal(s *Suite) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", indent)
	if err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}

	return append(data, '\n'), nil
}

// Unmarshal reloads a suite from its canonical byte form.
// Complexity: O(len(data)).
func Unmarshal(data []byte) (*Suite, error) {
	var s Suite
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("Unmarshal: %w", err)
	}

	return &s, nil
}

// WriteFile serializes s and writes it to path.
func WriteFile(path string, s *Suite) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("WriteFile %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("WriteFile %s: %w", path, err)
	}

	return nil
}

// ReadFile loads and deserializes the suite at path.
func ReadFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile %s: %w", path, err)
	}
	s, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("ReadFile %s: %w", path, err)
	}

	return s, nil
}
