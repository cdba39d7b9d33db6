// Package render draws the view-command tables in a markdown-style layout.
package render

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/haibun/haibun/pkg/models"
	"github.com/haibun/haibun/pkg/valuation"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	return table
}

// Expenses renders expenses with their account and category names.
func Expenses(w io.Writer, expenses []models.Expense) {
	table := newTable(w, []string{"id", "Date", "Account", "Amount", "Category", "Notes"})
	for _, e := range expenses {
		table.Append([]string{
			strconv.FormatInt(e.ID, 10),
			e.Date.Format(models.DateLayout),
			e.Account,
			e.Amount.StringFixed(2),
			e.Category,
			e.Note,
		})
	}
	table.Render()
}

// Subscriptions renders recurring payments.
func Subscriptions(w io.Writer, subs []models.Subscription) {
	table := newTable(w, []string{"Name", "Category", "Amount"})
	for _, s := range subs {
		table.Append([]string{s.Name, s.Category, s.Price.StringFixed(2)})
	}
	table.Render()
}

// Accounts renders account ids and names, used when prompting for an
// account choice.
func Accounts(w io.Writer, accounts []models.Account) {
	table := newTable(w, []string{"id", "Account"})
	for _, a := range accounts {
		table.Append([]string{strconv.FormatInt(a.ID, 10), a.Name})
	}
	table.Render()
}

// AccountValues renders accounts with their current value.
func AccountValues(w io.Writer, values []models.AccountValue) {
	table := newTable(w, []string{"id", "Account", "Value"})
	for _, v := range values {
		table.Append([]string{
			strconv.FormatInt(v.AccountID, 10),
			v.Name,
			v.Value.StringFixed(2),
		})
	}
	table.Render()
}

// Categories renders expense categories, used when prompting for a
// category choice.
func Categories(w io.Writer, categories []models.Category) {
	table := newTable(w, []string{"id", "Category"})
	for _, c := range categories {
		table.Append([]string{strconv.FormatInt(c.ID, 10), c.Name})
	}
	table.Render()
}

// Portfolio renders the latest snapshot, ranked items first, Total row last.
func Portfolio(w io.Writer, snapshot *valuation.Snapshot) {
	table := newTable(w, []string{"id", "Item", "Value", "Proportion"})
	for _, row := range snapshot.Rows() {
		table.Append([]string{
			strconv.FormatInt(row.ID, 10),
			row.Name,
			row.Value.StringFixed(2),
			row.Proportion,
		})
	}
	table.Render()
}
