package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/haibun/haibun/pkg/models"
	"github.com/haibun/haibun/pkg/prompt"
	"github.com/haibun/haibun/pkg/render"
	"github.com/haibun/haibun/pkg/store"
)

var expenseNumber int64

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Track expenses",
}

var expenseViewCmd = &cobra.Command{
	Use:   "view",
	Short: "View expenses",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, db, _, err := setup(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		expenses := store.NewExpenseStore(db)

		var rows []models.Expense
		if expenseNumber > 0 {
			rows, err = expenses.ListLast(cmd.Context(), expenseNumber)
		} else {
			rows, err = expenses.List(cmd.Context())
		}
		if err != nil {
			return err
		}

		render.Expenses(os.Stdout, rows)
		return nil
	},
}

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an expense interactively",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, db, _, err := setup(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := cmd.Context()
		expenses := store.NewExpenseStore(db)
		accounts := store.NewAccountStore(db)
		p := prompt.New()

		date, err := p.Date("Date (YYYY-MM-DD)")
		if err != nil {
			return err
		}

		accountList, err := accounts.List(ctx)
		if err != nil {
			return err
		}
		render.Accounts(os.Stdout, accountList)
		accountID, err := p.Int("Account id")
		if err != nil {
			return err
		}

		amount, err := p.Decimal("Amount")
		if err != nil {
			return err
		}

		categories, err := expenses.Categories(ctx)
		if err != nil {
			return err
		}
		render.Categories(os.Stdout, categories)
		categoryID, err := p.Int("Category id")
		if err != nil {
			return err
		}

		note, err := p.Text("Note")
		if err != nil {
			return err
		}

		return expenses.Add(ctx, date, accountID, amount, categoryID, note)
	},
}

func init() {
	expenseViewCmd.Flags().Int64VarP(&expenseNumber, "number", "n", 0, "Show only the last N expenses")

	expenseCmd.AddCommand(expenseViewCmd)
	expenseCmd.AddCommand(expenseAddCmd)
}
