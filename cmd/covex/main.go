// Package main provides the CLI entry point for covex.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mgaspar/covex/internal/config"
	"github.com/mgaspar/covex/pkg/api"
	"github.com/mgaspar/covex/pkg/covex"
	"github.com/mgaspar/covex/pkg/covex/dataset"
	"github.com/mgaspar/covex/pkg/covex/models"
	"github.com/mgaspar/covex/pkg/covex/output"
)

var (
	configFile string
	verbose    bool

	outputPath string
	pretty     bool
	format     string
	allocate   bool
	strategy   string
	parallel   bool

	addr string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "covex",
		Short: "Extract normalized account-coverage records from Excel workbooks",
		Long: `covex normalizes multi-sheet coverage spreadsheets (who fills which role
on which client account, per technology area) into flat records for
filtering, aggregation, and export.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	extractCmd := &cobra.Command{
		Use:   "extract [input.xlsx]",
		Short: "Extract coverage records and write them as JSON or CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtract,
	}
	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	extractCmd.Flags().StringVar(&format, "format", "json", "Output format: json, csv")
	extractCmd.Flags().BoolVar(&allocate, "allocate", false, "Annotate records with fractional FTE allocations")
	extractCmd.Flags().StringVar(&strategy, "strategy", "", "Header strategy: fixed, label-search")
	extractCmd.Flags().BoolVar(&parallel, "parallel", false, "Extract sheets concurrently")

	serveCmd := &cobra.Command{
		Use:   "serve [input.xlsx]",
		Short: "Serve the extracted dataset over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: \":8080\")")

	rootCmd.AddCommand(extractCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadExtraction resolves config and flags and runs the extraction.
func loadExtraction(cmd *cobra.Command, inputPath string) (*config.Config, *models.ExtractionResult, error) {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("file not found: %s", inputPath)
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	opts := cfg.Options()
	if cmd.Flags().Changed("strategy") {
		opts.Strategy = covex.HeaderStrategy(strategy)
	}
	if cmd.Flags().Changed("parallel") {
		opts.Parallel = parallel
	}
	switch opts.Strategy {
	case covex.StrategyFixed, covex.StrategyLabelSearch:
	default:
		return nil, nil, fmt.Errorf("invalid strategy: %s (must be fixed or label-search)", opts.Strategy)
	}

	result, err := covex.Extract(inputPath, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("extraction failed: %w", err)
	}

	log.Infof("extracted %d records from %d sheets (%d skipped)",
		result.TotalPersonnel(), len(result.SheetCounts), len(result.SkippedSheets))
	return cfg, result, nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	_, result, err := loadExtraction(cmd, args[0])
	if err != nil {
		return err
	}

	if allocate {
		dataset.Allocate(result.Records)
	}

	switch format {
	case "json":
		data, err := output.ToJSON(result, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		return writeOutput(append(data, '\n'))
	case "csv":
		w := os.Stdout
		if outputPath != "" {
			f, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create output: %w", err)
			}
			defer f.Close()
			w = f
		}
		return dataset.WriteCSV(w, result.Records, allocate)
	default:
		return fmt.Errorf("invalid format: %s (must be json or csv)", format)
	}
}

func writeOutput(data []byte) error {
	if outputPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	// .env is optional; variables become COVEX_* config overrides.
	_ = godotenv.Load()

	cfg, result, err := loadExtraction(cmd, args[0])
	if err != nil {
		return err
	}

	listenAddr := cfg.Server.Addr
	if cmd.Flags().Changed("addr") {
		listenAddr = addr
	}

	server := http.Server{
		Addr:              listenAddr,
		Handler:           api.NewServer(result).Router(),
		ReadHeaderTimeout: 2 * time.Second,
	}
	log.Infof("listening for HTTP on %s", server.Addr)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
