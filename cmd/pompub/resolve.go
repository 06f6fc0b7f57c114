package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// outputFlag restricts --output to the supported formats.
type outputFlag string

var _ pflag.Value = (*outputFlag)(nil)

func (f *outputFlag) String() string { return string(*f) }

func (f *outputFlag) Type() string { return "string" }

func (f *outputFlag) Set(v string) error {
	switch v {
	case "table", "yaml":
		*f = outputFlag(v)
		return nil
	default:
		return fmt.Errorf("must be one of: table, yaml")
	}
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the publishing configuration and show provenance",
	Long: `Resolve the publishing configuration from every source and print
each field with the source that supplied its value.

Secrets are hidden by default; use --show-secrets to reveal them.`,
	RunE: runResolve,
}

var (
	resolveOutput      = outputFlag("table")
	resolveShowSecrets bool
)

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().VarP(&resolveOutput, "output", "o", "output format: table, yaml")
	resolveCmd.Flags().BoolVar(&resolveShowSecrets, "show-secrets", false, "show secret values")
}

func runResolve(cmd *cobra.Command, _ []string) error {
	req, err := resolveRequest(cmd)
	if err != nil {
		return err
	}

	res := newEngine().Resolve(req)
	return formatResolution(os.Stdout, res, formatOptions{
		Output:      string(resolveOutput),
		ShowSecrets: resolveShowSecrets,
	})
}
