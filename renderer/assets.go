package renderer

import (
	"bytes"

	"github.com/folioview/folioview"
	md "github.com/nao1215/markdown"
)

// AssetsMarkdown renders the asset list view.
func AssetsMarkdown(assets []folioview.Asset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Assets")
	if len(assets) == 0 {
		doc.PlainText("No assets.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft,
		},
		Header: []string{"Ticker", "Name", "Type", "Price", "Updated"},
	}
	for _, a := range assets {
		table.Rows = append(table.Rows, []string{
			md.Bold(a.Ticker),
			a.Name,
			a.Type.String(),
			amount(a.CurrentPrice, a.Currency),
			a.LastUpdated,
		})
	}
	doc.Table(table)
	return doc.String()
}
