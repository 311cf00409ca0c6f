package renderer

import (
	"bytes"
	"fmt"

	"github.com/folioview/folioview"
	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders the transaction list view.
func TransactionsMarkdown(txs []folioview.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}
	doc.Table(transactionTable(txs))
	return doc.String()
}

func transactionTable(txs []folioview.Transaction) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Date", "Account", "Type", "Asset", "Quantity", "Price", "Amount", "Fee"},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			tx.Date,
			tx.AccountName,
			tx.Type.String(),
			tx.AssetSymbol,
			optional(tx.Quantity, quantity),
			optional(tx.PricePerUnit, func(v float64) string { return amount(v, folioview.USD) }),
			displayAmount(tx),
			amount(tx.Fee, folioview.USD),
		})
	}
	return table
}

// displayAmount applies the sign convention at the display edge: amounts
// are stored as unsigned magnitudes, outflows render negative.
func displayAmount(tx folioview.Transaction) string {
	if tx.Type.IsOutflow() {
		return fmt.Sprintf("-%s", amount(tx.Amount, folioview.USD))
	}
	return amount(tx.Amount, folioview.USD)
}

// Transaction renders a one-line description of a transaction.
func Transaction(tx folioview.Transaction) string {
	switch tx.Type {
	case folioview.Buy:
		return fmt.Sprintf("Bought %s of %s for %s", optional(tx.Quantity, quantity), tx.AssetSymbol, displayAmount(tx))
	case folioview.Sell:
		return fmt.Sprintf("Sold %s of %s for %s", optional(tx.Quantity, quantity), tx.AssetSymbol, displayAmount(tx))
	case folioview.Dividend:
		return fmt.Sprintf("Dividend of %s for %s", displayAmount(tx), tx.AssetSymbol)
	case folioview.Deposit:
		return fmt.Sprintf("Deposited %s into %s", displayAmount(tx), tx.AccountName)
	case folioview.Withdrawal:
		return fmt.Sprintf("Withdrew %s from %s", amount(tx.Amount, folioview.USD), tx.AccountName)
	default:
		return tx.Type.String()
	}
}
