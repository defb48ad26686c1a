// Package main is the entry point for the hbnb-cli application.
// It registers the storage sub-commands on the root command and executes them.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	commands "github.com/MGTheTrain/hbnb-storage/cmd/hbnb-cli/internal/commands"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "hbnb-cli",
		Short: "hbnb storage CLI tool",
		Long: `hbnb-cli creates, lists and deletes hbnb entities in the configured store.

The store is selected with the following environment variables:
- HBNB_DB_TYPE (mysql, postgres or sqlite; default mysql)
- HBNB_MYSQL_USER, HBNB_MYSQL_PWD, HBNB_MYSQL_HOST, HBNB_MYSQL_DB
- HBNB_DB_DSN (postgres and sqlite)
- HBNB_ENV (test drops all tables on start)`,
		SilenceUsage: true,
	}

	if err := commands.InitStorageCommands(rootCmd, nil); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
