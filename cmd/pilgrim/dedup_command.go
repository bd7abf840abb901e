package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pilgrim/internal/catalog"
	"pilgrim/internal/config"
	"pilgrim/internal/dedup"
)

func newDedupCommand(ctx *commandContext) *cobra.Command {
	dedupCmd := &cobra.Command{
		Use:   "dedup",
		Short: "Report and merge duplicate locations",
	}
	dedupCmd.AddCommand(newDedupReportCommand(ctx))
	dedupCmd.AddCommand(newDedupMergeCommand(ctx))
	return dedupCmd
}

func newDedupReportCommand(ctx *commandContext) *cobra.Command {
	var celebrityID string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "List duplicate location groups without changing data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				locations, err := store.ListLocations(cmd.Context(), celebrityID)
				if err != nil {
					return err
				}

				groups := dedup.DuplicateGroups(locations)
				out := cmd.OutOrStdout()
				if len(groups) == 0 {
					fmt.Fprintln(out, "No duplicate locations found")
					return nil
				}

				rows := make([][]string, 0, len(groups))
				for _, group := range groups {
					ids := make([]string, 0, len(group.Members))
					for _, member := range group.Members {
						ids = append(ids, strconv.FormatInt(member.ID, 10))
					}
					rows = append(rows, []string{
						group.Reference.Name,
						group.Reference.Address,
						strconv.Itoa(group.Size()),
						strconv.FormatInt(group.Reference.ID, 10),
						strings.Join(ids, ", "),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Name", "Address", "Rows", "Reference", "Member IDs"},
					rows, 3, 4,
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&celebrityID, "celebrity", "", "Limit to one celebrity's locations")
	return cmd
}

func newDedupMergeCommand(ctx *commandContext) *cobra.Command {
	var celebrityID string

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Collapse duplicate location groups into their reference rows",
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

				merger := dedup.NewMerger(store, logger)
				summary, err := merger.MergeAll(cmd.Context(), locations)

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "Merge finished")
				printCount(out, "groups merged", summary.GroupsMerged, ansiGreen)
				printCount(out, "rows removed", summary.RowsRemoved, "")
				printCount(out, "links repointed", int(summary.LinksRepointed), "")
				return err
			})
		},
	}

	cmd.Flags().StringVar(&celebrityID, "celebrity", "", "Limit to one celebrity's locations")
	return cmd
}
