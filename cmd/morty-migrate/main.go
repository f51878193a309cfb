package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/technopolitica/morty/internal/config"
	"github.com/technopolitica/morty/internal/db"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s\n", err)
	}
	connectionURL := flag.String("db-url", cfg.DBURL, "URL-formatted connection string to the DB to operate upon")
	flag.Parse()

	if *connectionURL == "" {
		fmt.Print("missing required -db-url param\n")
		flag.Usage()
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Print("expected a subcommand\n")
		flag.Usage()
		os.Exit(1)
	}
	command := args[0]

	if command != "migrate" {
		// Anything else is handed to goose (status, version, redo, ...).
		err = db.RunCommand(*connectionURL, command, args[1:]...)
		if err != nil {
			log.Fatalf("%s\n", err)
		}
		return
	}
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	version := migrateCmd.String("to", "", "version to which the database should be migrated. May specify \"latest\" to migrate to the latest version.")

	migrateCmd.Parse(args[1:])

	if *version == "" {
		fmt.Print("missing required parameter -to\n")
		migrateCmd.Usage()
		os.Exit(1)
	}
	err = db.MigrateTo(ctx, *connectionURL, *version)
	if err != nil {
		log.Fatalf("failed to run migration: %s\n", err)
	}
}
