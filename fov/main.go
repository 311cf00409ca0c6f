package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/folioview/folioview/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
)

func main() {
	// a local .env can hold FOLIOVIEW_API_URL
	godotenv.Load()

	completion().Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion declares the subcommand names for shell completion.
func completion() *complete.Command {
	subs := map[string]*complete.Command{}
	for _, name := range []string{
		"dashboard", "assets", "accounts", "portfolios", "portfolio", "transactions",
		"add-asset", "update-asset", "rm-asset", "validate", "refresh-prices",
		"add-account", "update-account", "rm-account",
		"add-portfolio", "update-portfolio", "rm-portfolio",
		"add-tx", "update-tx", "rm-tx",
	} {
		subs[name] = &complete.Command{}
	}
	return &complete.Command{Sub: subs}
}
