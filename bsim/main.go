package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/bullion/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// actions accepted by the `day` subcommand, for shell completion.
var actionPredictor = predict.Set{"BUY_GOLD", "SELL_GOLD", "BUY_SILVER", "SELL_SILVER"}

func main() {
	// A .env file may provide BULLION_DIR; a missing file is fine.
	_ = godotenv.Load()

	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"init":   {},
			"day":    {Args: actionPredictor},
			"status": {},
			"export": {},
			"topic":  {Args: predict.Set{"readme", "trades", "ledger", "state", "*"}},
		},
	}
	completion.Complete("bsim")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
