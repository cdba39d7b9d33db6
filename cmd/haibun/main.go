package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"

	"github.com/haibun/haibun/pkg/config"
	"github.com/haibun/haibun/pkg/store"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "haibun",
	Short: "Personal finance record keeper",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

func newLogger() *log.Logger {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "haibun",
	}
	if debug {
		opts.Level = log.DebugLevel
		opts.ReportCaller = true
	}
	return log.NewWithOptions(os.Stderr, opts)
}

// setup loads config and opens the store; every subcommand starts here.
func setup(cmd *cobra.Command) (*config.Config, *store.DB, *log.Logger, error) {
	logger := newLogger()

	cfg, err := config.Build(cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, nil, err
	}
	if debug {
		pp.Println(cfg.CSV)
	}

	db, err := store.Open(cfg.Database.ConnString())
	if err != nil {
		return nil, nil, nil, err
	}
	if err := db.EnsureSchema(cmd.Context()); err != nil {
		db.Close()
		return nil, nil, nil, err
	}

	return cfg, db, logger, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is the user config dir)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(expenseCmd)
	rootCmd.AddCommand(subscriptionCmd)
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(portfolioCmd)
}

func main() {
	_ = gotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
