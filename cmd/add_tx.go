package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/folioview/folioview"
	"github.com/google/subcommands"
)

// addTxCmd holds the flags for the 'add-tx' subcommand.
type addTxCmd struct {
	account string
	asset   string
	typ     string
	qty     float64
	price   float64
	fee     float64
	date    string
	notes   string
}

func (*addTxCmd) Name() string     { return "add-tx" }
func (*addTxCmd) Synopsis() string { return "record a new transaction" }
func (*addTxCmd) Usage() string {
	return `fov add-tx -account <id> -type <type> [-asset <id>] [-qty <n>] [-price <n>] [-fee <n>] [-date <YYYY-MM-DD>] [-notes <text>]

  Records a transaction. Buys, sells and dividends reference an asset;
  deposits and withdrawals carry the face value in -qty and no asset.

Usage Examples:
# Buy 10 AAPL at 170.50 with a 1.00 fee.
$ fov add-tx -account 2 -type buy -asset 3 -qty 10 -price 170.50 -fee 1

# Deposit 5000 into the cash account.
$ fov add-tx -account 5 -type deposit -qty 5000
`
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account id the transaction belongs to.")
	f.StringVar(&c.asset, "asset", "", "Asset id, for buys, sells and dividends.")
	f.StringVar(&c.typ, "type", "", "Kind: buy, sell, dividend, deposit or withdraw.")
	f.Float64Var(&c.qty, "qty", 0, "Quantity (face value for deposits and withdrawals).")
	f.Float64Var(&c.price, "price", -1, "Price per unit.")
	f.Float64Var(&c.fee, "fee", 0, "Fee.")
	f.StringVar(&c.date, "date", "", "Transaction date, YYYY-MM-DD (defaults to today).")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
}

func (c *addTxCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.typ == "" {
		fmt.Fprintln(os.Stderr, "Error: -account and -type are required")
		return subcommands.ExitUsageError
	}

	when, err := isoTime(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	create := folioview.TransactionCreate{
		AccountID:       c.account,
		AssetID:         c.asset,
		Type:            folioview.ParseTransactionType(c.typ),
		Fee:             &c.fee,
		TransactionTime: when,
		Notes:           c.notes,
	}
	if c.qty != 0 {
		create.Quantity = &c.qty
	}
	if c.price >= 0 {
		create.PricePerUnit = &c.price
	}

	if err := client().CreateTransaction(ctx, create); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating transaction: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("Recorded transaction.")
	return subcommands.ExitSuccess
}

// isoTime converts a YYYY-MM-DD flag to the wire timestamp format.
// Empty input means now.
func isoTime(date string) (string, error) {
	if date == "" {
		return time.Now().UTC().Format(time.RFC3339), nil
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(time.RFC3339), nil
}
