package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/haibun/haibun/pkg/prompt"
	"github.com/haibun/haibun/pkg/render"
	"github.com/haibun/haibun/pkg/store"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Track account balances",
}

var accountViewCmd = &cobra.Command{
	Use:   "view",
	Short: "View accounts and their current values",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, db, _, err := setup(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		values, err := store.NewAccountStore(db).Values(cmd.Context())
		if err != nil {
			return err
		}

		render.AccountValues(os.Stdout, values)
		return nil
	},
}

var accountManageCmd = &cobra.Command{
	Use:   "manage",
	Short: "Update an account's current value",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, db, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := cmd.Context()
		accounts := store.NewAccountStore(db)
		p := prompt.New()

		values, err := accounts.Values(ctx)
		if err != nil {
			return err
		}
		render.AccountValues(os.Stdout, values)

		accountID, err := p.Int("Account id")
		if err != nil {
			return err
		}
		value, err := p.Decimal("New value")
		if err != nil {
			return err
		}

		updated, err := accounts.UpdateValue(ctx, value, accountID)
		if err != nil {
			return err
		}
		if updated == 0 {
			logger.Warn("no value row for account, nothing updated", "account", accountID)
		}
		return nil
	},
}

func init() {
	accountCmd.AddCommand(accountViewCmd)
	accountCmd.AddCommand(accountManageCmd)
}
