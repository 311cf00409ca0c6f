package cmd

import (
	"context"
	"flag"

	"github.com/folioview/folioview/renderer"
	"github.com/google/subcommands"
)

type assetsCmd struct{}

func (*assetsCmd) Name() string             { return "assets" }
func (*assetsCmd) Synopsis() string         { return "display the asset list" }
func (*assetsCmd) SetFlags(f *flag.FlagSet) {}
func (*assetsCmd) Usage() string {
	return `fov assets

  Displays all known assets with their category and current price.
`
}

func (c *assetsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.AssetsMarkdown(client().Assets(ctx)))
	return subcommands.ExitSuccess
}
