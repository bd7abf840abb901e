package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pilgrim/internal/catalog"
	"pilgrim/internal/config"
	"pilgrim/internal/reconcile"
)

func newReconcileCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile <celebrity-id>",
		Short: "Extract and attribute entities from a celebrity's episodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			celebrityID := args[0]

			rules, err := ctx.loadRules()
			if err != nil {
				return fmt.Errorf("load matching rules: %w", err)
			}
			patterns, err := ctx.loadPatterns()
			if err != nil {
				return fmt.Errorf("load pattern table: %w", err)
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				runner := reconcile.NewRunner(store, cfg, rules, patterns, logger)
				summary, err := runner.Run(cmd.Context(), celebrityID)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Reconciled %d episodes for %s\n", summary.EpisodesScanned, celebrityID)
				printCount(out, "candidates", summary.Candidates, "")
				printCount(out, "matched", summary.Matched, ansiGreen)
				printCount(out, "unmatched", summary.Unmatched, ansiYellow)
				printCount(out, "discarded", summary.Discarded, "")
				printCount(out, "skipped", summary.Skipped, "")
				printCount(out, "failed", summary.Failed, ansiRed)
				return nil
			})
		},
	}
	return cmd
}
