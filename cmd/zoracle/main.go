// Command zoracle generates complex-BLAS validation fixtures and runs the
// built-in comparison scenarios.
//
// Both entry points are flagless on purpose: the fixture file path, the seed
// and the scenario catalogue are frozen contracts, and a knob on any of them
// would fork the baseline universe.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/zoracle/fixture"
	"github.com/katalvlaran/zoracle/harness"
)

var command = &cobra.Command{
	Use:   "zoracle",
	Short: "reference oracle and validation harness for complex BLAS operations",
}

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "write the deterministic fixture file to " + fixture.DefaultPath,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		suite, err := fixture.New().Generate()
		if err != nil {
			return err
		}
		if err := fixture.WriteFile(fixture.DefaultPath, suite); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Test data saved to %s\n", fixture.DefaultPath)

		return nil
	},
}

var validateCommand = &cobra.Command{
	Use:   "validate",
	Short: "regenerate fixtures and run every built-in comparison scenario",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Fresh fixtures are a deliberate side effect of validation: the
		// file on disk always matches the oracle that just ran.
		suite, err := fixture.New().Generate()
		if err != nil {
			return err
		}
		if err := fixture.WriteFile(fixture.DefaultPath, suite); err != nil {
			return err
		}

		report := harness.NewRunner().Run(context.Background(), harness.BuiltinScenarios())
		report.Render(cmd.OutOrStdout())
		if !report.OK() {
			os.Exit(1)
		}

		return nil
	},
}

func init() {
	command.AddCommand(generateCommand, validateCommand)
}

func main() {
	if err := command.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
