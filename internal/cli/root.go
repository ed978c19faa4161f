// Package cli implements etctl, the operator command line for the encounter type registry.
package cli

import (
	"context"
	"fmt"
	"github.com/mufasadev/encounter-types/internal/app"
	"github.com/mufasadev/encounter-types/internal/config"
	"github.com/mufasadev/encounter-types/internal/di"
	"github.com/mufasadev/encounter-types/pkg/log"
	"github.com/mufasadev/encounter-types/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"os"
)

const (
	appName = "etctl"

	formatTable    = "table"
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

var version = "0.1.0-dev"

// Opener builds the container the commands run against. The returned func releases it.
type Opener func(ctx context.Context) (*di.Container, func(), error)

type runtime struct {
	format  string
	verbose bool
	open    Opener
}

// Execute runs etctl against the storage configured in the environment.
func Execute() {
	if err := NewRootCommand(OpenFromEnv).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree. Subcommands open storage lazily through open.
func NewRootCommand(open Opener) *cobra.Command {
	rt := &runtime{open: open}

	root := &cobra.Command{
		Use:   appName,
		Short: "Manage and check encounter types",
		Long: `etctl lists, imports and checks encounter types against the same
validation rules the API applies: names must be non-blank and no two
active encounter types may share a name.

Output formats:
- table: Human-readable table format (default)
- json: Structured JSON data
- markdown: Markdown format`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch rt.format {
			case formatTable, formatJSON, formatMarkdown:
				return nil
			default:
				return fmt.Errorf("unsupported format %q (table, json, markdown)", rt.format)
			}
		},
	}

	root.PersistentFlags().StringVarP(&rt.format, "format", "f", formatTable, "output format (table, markdown, json)")
	root.PersistentFlags().BoolVarP(&rt.verbose, "verbose", "v", false, "verbose output")
	root.SetVersionTemplate(appName + " version {{.Version}}\n")

	root.AddCommand(
		newListCommand(rt),
		newCheckCommand(rt),
		newImportCommand(rt),
		newAuditCommand(rt),
	)

	return root
}

// OpenFromEnv wires the container the same way the API does, logging to stderr.
func OpenFromEnv(ctx context.Context) (*di.Container, func(), error) {
	cfg := config.Load()

	opts := []log.LoggerOption{log.WithLogLevel(cfg.Log.Level), log.WithWriter(os.Stderr)}
	if cfg.Log.File != "" {
		opts = append(opts, log.WithFileLogger(cfg.Log.File))
	}
	log.Init(appName, opts...)

	repo, closeDB, err := app.OpenEncounterTypeRepository(ctx, cfg.PostgreSQL)
	if err != nil {
		return nil, nil, err
	}

	collector := metrics.NewCollector(cfg.Metrics.Namespace, prometheus.NewRegistry())
	return di.NewContainer(repo, collector), closeDB, nil
}

func (rt *runtime) withContainer(ctx context.Context, fn func(*di.Container) error) error {
	container, release, err := rt.open(ctx)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer release()

	return fn(container)
}

func (rt *runtime) verbosef(format string, args ...any) {
	if rt.verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
