// Command migrate applies migrations/001_initial_schema.sql to the configured
// database using atlas declarative schema apply.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gas-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
)

func main() {
	dir := flag.String("dir", "migrations", "directory containing the schema files")
	devURL := flag.String("dev-url", "docker://postgres/17/dev", "atlas dev database used to compute the diff")
	dryRun := flag.Bool("dry-run", false, "print the planned changes without applying them")
	flag.Parse()

	_ = godotenv.Load()

	if err := run(context.Background(), *dir, *devURL, *dryRun); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dir, devURL string, dryRun bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve schema dir: %w", err)
	}

	client, err := atlasexec.NewClient(absDir, "atlas")
	if err != nil {
		return fmt.Errorf("init atlas client: %w", err)
	}

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          "file://" + absDir,
		DevURL:      devURL,
		DryRun:      dryRun,
		AutoApprove: true,
	})
	if err != nil {
		return fmt.Errorf("schema apply: %w", err)
	}

	slog.Info("schema applied",
		"pending", len(res.Changes.Pending),
		"applied", len(res.Changes.Applied),
		"dry_run", dryRun,
	)
	return nil
}
