package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/folioview/folioview"
	"github.com/google/subcommands"
)

// updateTxCmd holds the flags for the 'update-tx' subcommand.
type updateTxCmd struct {
	account  string
	asset    string
	typ      string
	qty      float64
	price    float64
	fee      float64
	date     string
	notes    string
	notesSet bool
}

func (*updateTxCmd) Name() string     { return "update-tx" }
func (*updateTxCmd) Synopsis() string { return "edit an existing transaction" }
func (*updateTxCmd) Usage() string {
	return `fov update-tx <id> [-account <id>] [-asset <id>] [-type <type>] [-qty <n>] [-price <n>] [-fee <n>] [-date <YYYY-MM-DD>] [-notes <text>]

  Patches the given fields of a transaction; omitted flags are left
  untouched. The amount is always re-derived from quantity and price,
  it cannot be set directly.
`
}

func (c *updateTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "New account id.")
	f.StringVar(&c.asset, "asset", "", "New asset id.")
	f.StringVar(&c.typ, "type", "", "New kind: buy, sell, dividend, deposit or withdraw.")
	f.Float64Var(&c.qty, "qty", -1, "New quantity.")
	f.Float64Var(&c.price, "price", -1, "New price per unit.")
	f.Float64Var(&c.fee, "fee", -1, "New fee.")
	f.StringVar(&c.date, "date", "", "New transaction date, YYYY-MM-DD.")
	f.Func("notes", "New notes (may be empty to clear them).", func(v string) error {
		c.notes = v
		c.notesSet = true
		return nil
	})
}

func (c *updateTxCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected a transaction id")
		return subcommands.ExitUsageError
	}

	update := folioview.TransactionUpdate{
		AccountID: c.account,
		AssetID:   c.asset,
	}
	if c.typ != "" {
		typ := folioview.ParseTransactionType(c.typ)
		update.Type = &typ
	}
	if c.qty >= 0 {
		update.Quantity = &c.qty
	}
	if c.price >= 0 {
		update.PricePerUnit = &c.price
	}
	if c.fee >= 0 {
		update.Fee = &c.fee
	}
	if c.date != "" {
		when, err := isoTime(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		update.TransactionTime = when
	}
	if c.notesSet {
		update.Notes = &c.notes
	}

	if err := client().UpdateTransaction(ctx, f.Arg(0), update); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating transaction: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("Updated transaction", f.Arg(0))
	return subcommands.ExitSuccess
}
