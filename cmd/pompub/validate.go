package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the resolved publishing configuration",
	Long: `Resolve the publishing configuration and fail if it violates any
publishing invariant. Warnings from loading are printed but do not fail
the command; use --require-credentials when validating ahead of an actual
upload.`,
	RunE: runValidate,
}

var validateRequireCredentials bool

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateRequireCredentials, "require-credentials", false, "require repository credentials to be set")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	req, err := resolveRequest(cmd)
	if err != nil {
		return err
	}
	req.RequireCredentials = validateRequireCredentials
	req.ValidateOnLoad = true

	res := newEngine().Resolve(req)

	for _, warn := range res.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warn)
	}
	for _, v := range res.Violations {
		fmt.Fprintf(os.Stderr, "invalid: %s (%s)\n", v.Error(), v.Code)
	}
	if err := res.Err(); err != nil {
		return err
	}

	fmt.Println("Configuration is valid.")
	return nil
}
