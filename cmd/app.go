// Package cmd implements the CLI application to run the bullion simulator.
package cmd

import (
	"flag"
	"os"

	"github.com/etnz/bullion"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "portfolio")
	c.Register(&dayCmd{}, "portfolio")

	c.Register(&statusCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataDir = flag.String("dir", "", "Path to the data directory (defaults to $BULLION_DIR, then ./data)")

// DataDir resolves the data directory: the -dir flag wins, then the
// BULLION_DIR environment variable (possibly loaded from a .env file by
// main), then ./data. Resolved lazily so the .env load is taken into account.
func DataDir() string {
	if *dataDir != "" {
		return *dataDir
	}
	if dir := os.Getenv("BULLION_DIR"); dir != "" {
		return dir
	}
	return "data"
}

// Ledger returns the ledger bound to the app data directory.
func Ledger() *bullion.Ledger { return bullion.NewLedger(DataDir()) }

// Store returns the state store bound to the app data directory.
func Store() *bullion.Store { return bullion.NewStore(DataDir()) }
