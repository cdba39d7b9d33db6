package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/haibun/haibun/pkg/prompt"
	"github.com/haibun/haibun/pkg/render"
	"github.com/haibun/haibun/pkg/store"
)

var subscriptionCmd = &cobra.Command{
	Use:   "subscription",
	Short: "Track recurring payments",
}

var subscriptionViewCmd = &cobra.Command{
	Use:   "view",
	Short: "View subscriptions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, db, _, err := setup(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		subs, err := store.NewSubscriptionStore(db).List(cmd.Context())
		if err != nil {
			return err
		}

		render.Subscriptions(os.Stdout, subs)
		return nil
	},
}

var subscriptionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a subscription interactively",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, db, _, err := setup(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := cmd.Context()
		p := prompt.New()

		name, err := p.Text("Subscription name")
		if err != nil {
			return err
		}

		categories, err := store.NewExpenseStore(db).Categories(ctx)
		if err != nil {
			return err
		}
		render.Categories(os.Stdout, categories)
		categoryID, err := p.Int("Category id")
		if err != nil {
			return err
		}

		price, err := p.Decimal("Price")
		if err != nil {
			return err
		}

		return store.NewSubscriptionStore(db).Add(ctx, name, categoryID, price)
	},
}

func init() {
	subscriptionCmd.AddCommand(subscriptionViewCmd)
	subscriptionCmd.AddCommand(subscriptionAddCmd)
}
