package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"watchlog/internal/models"

	"github.com/spf13/cobra"
)

func newQueryCommand() *cobra.Command {
	var filter models.QueryFilter
	var maxLength int

	cmd := &cobra.Command{
		Use:   "query <movie|show>",
		Short: "List titles matching the given filters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindArg(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("length") {
				filter.MaxLength = &maxLength
			}

			a, err := newApp(os.Stderr)
			if err != nil {
				return err
			}
			defer a.Close()

			rows, err := a.media.Query(cmd.Context(), kind, filter)
			if err != nil {
				return err
			}

			table := make([][]string, len(rows))
			for i, row := range rows {
				table[i] = []string{strconv.FormatUint(uint64(row.ID), 10), row.Display()}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Title"}, table, 0))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Genre, "genre", "", "Case-insensitive genre substring")
	cmd.Flags().StringVar((*string)(&filter.Status), "status", "", "Watched, Dropped, Plan to Watch or In Progress")
	cmd.Flags().IntVar(&maxLength, "length", 0, "Only titles with runtime below this many minutes")
	cmd.Flags().StringVar(&filter.SortKey, "sort", "", "length, random, releasedate, criticsrating, myrating or watchdate")
	cmd.Flags().StringVar(&filter.Order, "order", "", "asc or desc")
	cmd.Flags().IntVarP(&filter.Limit, "num", "n", 0, "Maximum number of titles")
	return cmd
}

func newBackfillCommand() *cobra.Command {
	var num int

	cmd := &cobra.Command{
		Use:   "backfill <movie|show>",
		Short: "Fill missing catalog fields from OMDb",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindArg(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(os.Stderr)
			if err != nil {
				return err
			}
			defer a.Close()

			runLog, err := a.backfill.Backfill(cmd.Context(), kind, num)
			if runLog != nil {
				fmt.Fprintln(cmd.OutOrStdout(), renderBackfillLog(runLog))
			}
			return err
		},
	}

	cmd.Flags().IntVarP(&num, "num", "n", 0, "Number of rows to backfill (defaults to BACKFILL_DEFAULT_NUM)")
	return cmd
}

func renderBackfillLog(runLog *models.BackfillLog) string {
	rows := [][]string{
		{"Run", runLog.RunID},
		{"Media", runLog.MediaType},
		{"Status", runLog.Status},
		{"Requested", strconv.Itoa(runLog.Requested)},
		{"Selected", strconv.Itoa(runLog.Selected)},
		{"Updated", strconv.Itoa(runLog.Updated)},
		{"Rows affected", strconv.FormatInt(runLog.RowsAffected, 10)},
		{"Updated titles", strings.Join(runLog.UpdatedTitles, "\n")},
		{"Not found", strings.Join(runLog.NotFound, "\n")},
		{"Failed", strings.Join(runLog.Failed, "\n")},
	}
	if runLog.ErrorMessage != "" {
		rows = append(rows, []string{"Error", runLog.ErrorMessage})
	}
	return renderTable([]string{"Field", "Value"}, rows)
}

func newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <movie|show>",
		Short: "Export a media table as a CSV snapshot to object storage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindArg(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(os.Stderr)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.snapshots.Export(cmd.Context(), kind)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Object", "Rows", "URL"}, [][]string{
				{result.Object, strconv.Itoa(result.Rows), result.PresignedURL},
			}, 1))
			return nil
		},
	}
}

func newImportCommand() *cobra.Command {
	var object string

	cmd := &cobra.Command{
		Use:   "import <movie|show>",
		Short: "Insert rows from a CSV snapshot that are not stored yet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindArg(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(os.Stderr)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.snapshots.Restore(cmd.Context(), kind, object)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Object", "Inserted", "Skipped"}, [][]string{
				{result.Object, strconv.Itoa(result.Inserted), strconv.Itoa(result.Skipped)},
			}, 1, 2))
			return nil
		},
	}

	cmd.Flags().StringVar(&object, "object", "", "Snapshot object path")
	_ = cmd.MarkFlagRequired("object")
	return cmd
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Connecting runs the migration.
			a, err := newApp(os.Stderr)
			if err != nil {
				return err
			}
			defer a.Close()

			var rows [][]string
			for _, kind := range models.MediaKinds() {
				var count int64
				if err := a.db.WithContext(cmd.Context()).Table(kind.Table).Count(&count).Error; err != nil {
					return fmt.Errorf("failed to count %s: %w", kind.Table, err)
				}
				rows = append(rows, []string{kind.Table, strconv.FormatInt(count, 10)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Table", "Rows"}, rows, 1))
			return nil
		},
	}
}
