package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfrip/internal/history"
	"github.com/pdiddy/pdfrip/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded conversion runs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent conversion runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistoryStore()
		if err != nil {
			return err
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		records, err := store.Recent(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(os.Stderr, "no recorded runs")
			return nil
		}

		for _, r := range records {
			fmt.Printf("%s  %s -> %s  (%d pages, %d DPI, %s)\n",
				r.CreatedAt.Local().Format(time.DateTime),
				r.InputPath, r.OutputPath, r.Pages, r.DPI,
				r.Duration.Round(time.Millisecond))
		}
		return nil
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all recorded runs as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistoryStore()
		if err != nil {
			return err
		}
		defer store.Close()

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return store.ExportYAML(cmd.Context(), os.Stdout)
		}

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		defer f.Close()
		if err := store.ExportYAML(cmd.Context(), f); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "exported history to %s\n", out)
		return nil
	},
}

func openHistoryStore() (*history.Store, error) {
	return history.NewStore(types.HistoryConfig{Dir: viper.GetString("history.dir")})
}

func init() {
	historyListCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	historyExportCmd.Flags().String("out", "", "write YAML to a file instead of stdout")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}
