package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/pubforge/pompub"
)

var explainCmd = &cobra.Command{
	Use:   "explain <field-path>",
	Short: "Show every value recorded for one field and which one won",
	Long: `Show the full provenance chain for one configuration field, e.g.

  pompub explain credentials.username

Values are listed in the order the sources were loaded; the winner is the
entry from the highest-precedence source.`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

var explainShowSecrets bool

func init() {
	rootCmd.AddCommand(explainCmd)
	explainCmd.Flags().BoolVar(&explainShowSecrets, "show-secrets", false, "show secret values")
}

func runExplain(cmd *cobra.Command, args []string) error {
	path := args[0]
	if !slices.Contains(pompub.FieldPaths(), path) {
		return fmt.Errorf("unknown field path: %s", path)
	}

	req, err := resolveRequest(cmd)
	if err != nil {
		return err
	}

	res := newEngine().Resolve(req)
	formatExplain(os.Stdout, res, path, explainShowSecrets)
	return nil
}
