package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pilgrim/internal/affiliate"
	"pilgrim/internal/catalog"
	"pilgrim/internal/config"
)

func newAffiliateCommand(ctx *commandContext) *cobra.Command {
	affiliateCmd := &cobra.Command{
		Use:   "affiliate",
		Short: "Manage affiliate link activation",
	}
	affiliateCmd.AddCommand(newAffiliateActivateCommand(ctx))
	return affiliateCmd
}

func newAffiliateActivateCommand(ctx *commandContext) *cobra.Command {
	var celebrityID string
	var source string

	cmd := &cobra.Command{
		Use:   "activate",
		Short: "Activate every eligible inactive affiliate link",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				locations, err := store.ListLocations(cmd.Context(), celebrityID)
				if err != nil {
					return err
				}

				batchSource := strings.TrimSpace(source)
				if batchSource == "" {
					batchSource = cfg.Affiliate.ActivationSource
				}

				tracker := affiliate.NewTracker(store, logger)
				summary, err := tracker.ActivateBatch(cmd.Context(), locations, batchSource)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Activation batch %s examined %d locations\n", summary.BatchID, summary.Total())
				printCount(out, "activated", summary.Activated, ansiGreen)
				printCount(out, "skipped closed", summary.SkippedClosed, ansiYellow)
				printCount(out, "already active", summary.AlreadyActive, "")
				printCount(out, "ineligible", summary.Ineligible, ansiRed)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&celebrityID, "celebrity", "", "Limit to one celebrity's locations")
	cmd.Flags().StringVar(&source, "source", "", "Activation source label recorded on each link")
	return cmd
}
