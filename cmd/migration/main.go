package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/rdmgray/eplpal/internal/config"
	"github.com/rdmgray/eplpal/internal/infrastructure/repository/memory"
	"github.com/rdmgray/eplpal/internal/infrastructure/repository/postgres"
	"github.com/rdmgray/eplpal/internal/platform/logging"
)

const (
	storeFixtures = "fixtures"
	storeOdds     = "odds"
	storeBets     = "bets"
)

var storeDBURLEnv = map[string]string{
	storeFixtures: "FIXTURES_DB_URL",
	storeOdds:     "ODDS_DB_URL",
	storeBets:     "BETS_DB_URL",
}

var logger = logging.NewJSON(logging.LevelInfo)

func main() {
	if err := config.LoadDotEnv(os.Getenv("APP_DOTENV_PATH")); err != nil {
		fatal("load dotenv", err)
	}

	fs := flag.NewFlagSet(filepath.Base(os.Args[0]), flag.ExitOnError)
	store := fs.String("store", storeFixtures, "target store: fixtures|odds|bets")
	fs.Usage = printUsage
	_ = fs.Parse(os.Args[1:])

	args := fs.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(2)
	}

	envKey, ok := storeDBURLEnv[*store]
	if !ok {
		fatal("unknown store", fmt.Errorf("store %q: valid values are fixtures, odds, bets", *store))
	}
	dbURL := strings.TrimSpace(os.Getenv(envKey))
	if dbURL == "" {
		fatal("missing db url", fmt.Errorf("%s is required", envKey))
	}
	dbURL = normalizeDBURL(dbURL)

	cmd := strings.ToLower(strings.TrimSpace(args[0]))
	if cmd == "seed" {
		if err := seed(*store, dbURL); err != nil {
			fatal("seed store", err)
		}
		return
	}

	migrationsDir, err := resolveMigrationsDir(*store)
	if err != nil {
		fatal("resolve migrations dir", err)
	}

	sourceURL := "file://" + filepath.ToSlash(migrationsDir)
	m, err := migrate.New(sourceURL, dbURL)
	if err != nil {
		fatal("create migrator", err)
	}
	defer closeMigrator(m)

	switch cmd {
	case "up":
		handleMigrationErr(m.Up())
		logger.Info("migrations applied", "store", *store, "source", sourceURL)
	case "down":
		steps, parseErr := parseSteps(args[1:])
		if parseErr != nil {
			fatal("parse steps", parseErr)
		}
		handleMigrationErr(m.Steps(-steps))
		logger.Info("migrations rolled back", "store", *store, "steps", steps)
	case "version":
		version, dirty, versionErr := m.Version()
		if errors.Is(versionErr, migrate.ErrNilVersion) {
			fmt.Println("version: none")
			fmt.Println("dirty: false")
			return
		}
		if versionErr != nil {
			fatal("read version", versionErr)
		}
		fmt.Printf("version: %d\n", version)
		fmt.Printf("dirty: %t\n", dirty)
	case "force":
		if len(args) < 2 {
			fatal("force", errors.New("force requires a version argument"))
		}
		version, parseErr := parseVersion(args[1])
		if parseErr != nil {
			fatal("parse version", parseErr)
		}
		if err := m.Force(version); err != nil {
			fatal("force version", err)
		}
		logger.Info("forced version", "store", *store, "version", version)
	case "goto", "migrate":
		if len(args) < 2 {
			fatal("goto", errors.New("goto requires a target version argument"))
		}
		target, parseErr := parseTarget(args[1])
		if parseErr != nil {
			fatal("parse target", parseErr)
		}
		handleMigrationErr(m.Migrate(target))
		logger.Info("migrated", "store", *store, "version", target)
	default:
		printUsage()
		os.Exit(2)
	}
}

// seed loads the built-in demo dataset into an empty store.
func seed(store, dbURL string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "postgres", dbURL)
	if err != nil {
		return err
	}
	defer db.Close()

	data := memory.DefaultSeed()
	var inserted bool
	switch store {
	case storeFixtures:
		inserted, err = postgres.SeedFixturesStore(ctx, db, data)
	case storeOdds:
		inserted, err = postgres.SeedOddsStore(ctx, db, data)
	case storeBets:
		inserted, err = postgres.SeedBetsStore(ctx, db, data)
	}
	if err != nil {
		return err
	}

	if inserted {
		logger.Info("store seeded", "store", store)
	} else {
		logger.Info("store already populated, seed skipped", "store", store)
	}
	return nil
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}

	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", args[0], err)
	}
	if steps <= 0 {
		return 0, fmt.Errorf("down steps must be > 0")
	}

	return steps, nil
}

func parseVersion(raw string) (int, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("version must be >= 0")
	}
	if value > int64(^uint(0)>>1) {
		return 0, fmt.Errorf("version is too large for this platform")
	}

	return int(value), nil
}

func parseTarget(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid target version %q: %w", raw, err)
	}
	return uint(value), nil
}

func handleMigrationErr(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return
	}
	fatal("migrate", err)
}

func closeMigrator(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("close migration source", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("close migration db", "error", dbErr)
	}
}

func resolveMigrationsDir(store string) (string, error) {
	candidates := []string{
		strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")),
		"./db/migrations",
		"/app/db/migrations",
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(filepath.Join(candidate, store))
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, nil
	}

	return "", fmt.Errorf("migration directory for store %q not found (checked MIGRATIONS_DIR, ./db/migrations, /app/db/migrations)", store)
}

func normalizeDBURL(raw string) string {
	if !envBool("DB_DISABLE_PREPARED_BINARY_RESULT") {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

func envBool(key string) bool {
	value := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	switch value {
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}

func fatal(msg string, err error) {
	logger.Error(msg, "error", err)
	_ = logger.Sync()
	os.Exit(1)
}

func printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s [-store fixtures|odds|bets] <up|down|version|force|goto|seed> [args]\n", name)
	fmt.Fprintln(os.Stderr, "examples:")
	fmt.Fprintf(os.Stderr, "  %s -store fixtures up\n", name)
	fmt.Fprintf(os.Stderr, "  %s -store odds down 1\n", name)
	fmt.Fprintf(os.Stderr, "  %s -store bets version\n", name)
	fmt.Fprintf(os.Stderr, "  %s -store fixtures force 1757700000\n", name)
	fmt.Fprintf(os.Stderr, "  %s -store odds goto 1757700100\n", name)
	fmt.Fprintf(os.Stderr, "  %s -store bets seed\n", name)
}
