package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haibun/haibun/pkg/importer"
	"github.com/haibun/haibun/pkg/prompt"
	"github.com/haibun/haibun/pkg/render"
	"github.com/haibun/haibun/pkg/store"
	"github.com/haibun/haibun/pkg/valuation"
)

var portfolioFile string

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Track portfolio snapshots",
}

var portfolioViewCmd = &cobra.Command{
	Use:   "view",
	Short: "View the latest snapshot with per-item allocation",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, db, _, err := setup(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		agg := valuation.New(store.NewPortfolioStore(db))
		snapshot, err := agg.Latest(cmd.Context())
		if errors.Is(err, valuation.ErrEmptySnapshot) {
			fmt.Println("No portfolio entries yet")
			return nil
		}
		if err != nil {
			return err
		}

		render.Portfolio(os.Stdout, snapshot)
		return nil
	},
}

var portfolioAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Import a dated CSV/XLS export of holdings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, db, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		imp := importer.New(store.NewPortfolioStore(db), prompt.New(), logger, os.Stdout)
		opts := importer.Options{
			Currency:    cfg.CSV.Currency,
			SkipRows:    cfg.CSV.SkipRows,
			StopRows:    cfg.CSV.StopRows,
			ItemColumn:  cfg.CSV.ItemColumn,
			ValueColumn: cfg.CSV.ValueColumn,
		}
		return imp.Ingest(cmd.Context(), portfolioFile, opts)
	},
}

func init() {
	portfolioAddCmd.Flags().StringVarP(&portfolioFile, "file", "f", "", "Export file to import")
	portfolioAddCmd.MarkFlagRequired("file")

	// Export-format overrides; unset flags fall back to the config file.
	portfolioAddCmd.Flags().String("currency", "", "Currency marker to strip from values")
	portfolioAddCmd.Flags().Int("skip-rows", 0, "Leading banner rows to drop")
	portfolioAddCmd.Flags().Int("stop-rows", 0, "Trailing footer rows to drop")
	portfolioAddCmd.Flags().Int("item-column", 1, "1-based column holding the item name")
	portfolioAddCmd.Flags().Int("value-column", 2, "1-based column holding the value")

	portfolioCmd.AddCommand(portfolioViewCmd)
	portfolioCmd.AddCommand(portfolioAddCmd)
}
