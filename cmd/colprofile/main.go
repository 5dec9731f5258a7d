package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"colprofile/adapters/report"
	"colprofile/internal/config"
	"colprofile/internal/container"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

type options struct {
	output    string
	chunkSize int
	workers   int
	quiet     bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "colprofile [dir]",
		Short: "Profile the columns of every delimited file in a directory",
		Long: `Profile every CSV, TSV and XLSX file (plain, gzip, zstd or lz4) in a
directory and write one report row per file and column: numeric range,
maximum text length and null count.

The report format follows the output extension: .csv (default), .xlsx, .md
or .html. Defaults come from the environment (a .env file is loaded first):

` + config.Usage(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, cfg, opts, args); err != nil {
				return err
			}
			return run(cmd.Context(), cfg, opts.quiet)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "report path (default from COLPROFILE_OUTPUT)")
	cmd.Flags().IntVar(&opts.chunkSize, "chunk-size", 0, "rows per chunk (default from COLPROFILE_CHUNK_SIZE)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "files profiled concurrently (default from COLPROFILE_WORKERS)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the summary table")

	return cmd
}

// applyFlags overrides configuration with the flags the user actually set
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts options, args []string) error {
	if len(args) == 1 {
		cfg.Scan.Dir = args[0]
	}
	if cmd.Flags().Changed("output") {
		cfg.Scan.Output = opts.output
	}
	if cmd.Flags().Changed("chunk-size") {
		cfg.Scan.ChunkSize = opts.chunkSize
	}
	if cmd.Flags().Changed("workers") {
		cfg.Scan.Workers = opts.workers
	}
	return cfg.Validate()
}

func run(ctx context.Context, cfg *config.Config, quiet bool) error {
	c, err := container.New(cfg)
	if err != nil {
		return err
	}
	defer c.Shutdown()

	summary, err := c.ReportService.Run(ctx, cfg.Scan.Dir, cfg.Scan.Output)
	if err != nil {
		return err
	}

	if !quiet {
		report.RenderSummary(os.Stdout, summary.Results, summary.Elapsed)
		fmt.Fprintf(os.Stdout, "Report written to %s (%d rows)\n", summary.Output, summary.Rows)
	}
	return nil
}
