// Applies schema migrations from an on-disk directory. The server applies the
// embedded migration set itself on startup; this tool exists for ops work
// against a database file directly (rollbacks, version checks).
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	dbPath := flag.String("db", "courtside.db", "path to SQLite database file")
	dir := flag.String("migrations", "internal/db/migrations", "path to migrations directory")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: migrate [flags] up|down|version")
		os.Exit(2)
	}

	m, err := migrate.New("file://"+*dir, "sqlite3://"+*dbPath)
	if err != nil {
		fatal("open migrations: %v", err)
	}
	defer m.Close()

	switch cmd := flag.Arg(0); cmd {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			fatal("up: %v", err)
		}
	case "down":
		if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			fatal("down: %v", err)
		}
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			fatal("version: %v", err)
		}
		fmt.Printf("version %d dirty=%v\n", v, dirty)
	default:
		fatal("unknown command %q", cmd)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
