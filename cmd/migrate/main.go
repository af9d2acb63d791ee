// Command migrate applies or inspects the embedded database migrations.
//
//	migrate [up|down|version]
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"courseplanner/config"
	"courseplanner/internal/repository/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	switch command {
	case "up":
		err = postgres.Migrate(ctx, db)
	case "down":
		err = postgres.MigrateDown(ctx, db)
	case "version":
		var v int64
		if v, err = postgres.MigrationVersion(ctx, db); err == nil {
			fmt.Println(v)
		}
	default:
		err = fmt.Errorf("unknown command %q (want up, down or version)", command)
	}
	if err != nil {
		logger.Error("migrate failed", "command", command, "err", err)
		db.Close()
		os.Exit(1)
	}
	logger.Info("migrate done", "command", command)
}
