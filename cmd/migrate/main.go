// Command migrate applies the declarative schema in migrations/ to the
// configured database with Atlas.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gigbook/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dryRun  bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply the gigbook schema with Atlas",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			dbCfg, migCfg, err := config.LoadMigration()
			if err != nil {
				logger.Error("設定の読み込みに失敗しました", "error", err)
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			res, err := apply(ctx, dbCfg, migCfg, dryRun)
			if err != nil {
				logger.Error("マイグレーションに失敗しました", "error", err)
				return err
			}

			for _, stmt := range res.Changes.Pending {
				logger.Info("pending", "stmt", stmt)
			}
			logger.Info("マイグレーション実行完了",
				"applied", len(res.Changes.Applied),
				"pending", len(res.Changes.Pending),
				"dry_run", dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the planned changes without applying them")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall timeout")
	return cmd
}

func apply(ctx context.Context, dbCfg config.DBConfig, migCfg config.MigrateConfig, dryRun bool) (*atlasexec.SchemaApply, error) {
	schema, err := filepath.Abs(migCfg.SchemaFile)
	if err != nil {
		return nil, fmt.Errorf("resolve schema file: %w", err)
	}
	if _, err := os.Stat(schema); err != nil {
		return nil, fmt.Errorf("schema file: %w", err)
	}

	client, err := atlasexec.NewClient(filepath.Dir(schema), migCfg.AtlasBin)
	if err != nil {
		return nil, fmt.Errorf("init atlas client: %w", err)
	}

	return client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         dbCfg.BuildDSN(),
		To:          "file://" + schema,
		DevURL:      migCfg.DevURL,
		DryRun:      dryRun,
		AutoApprove: !dryRun,
	})
}
