package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"qbench/backend"
	"qbench/core/bench"
	"qbench/core/version"
	"qbench/harness/config"
	"qbench/harness/registry"
	"qbench/runner"
)

func main() {
	root := &cobra.Command{
		Use:           "qbench",
		Short:         "Benchmark quantum circuit simulation backends",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(runCmd(), sweepCmd(), backendsCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qbench:", err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var (
		backendName string
		qasmPath    string
		shotCount   int
		exact       bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one circuit on one backend and print the run record",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(qasmPath)
			if err != nil {
				return err
			}

			shots := backend.Distribution()
			if !exact {
				shots, err = backend.Count(shotCount)
				if err != nil {
					return err
				}
			}

			factory, err := registry.Default().Get(backendName)
			if err != nil {
				return err
			}

			run, runErr := bench.Engine{}.Run(cmd.Context(), factory, bench.Spec{
				Backend: backendName,
				Circuit: string(data),
				Shots:   shots,
			})
			out, err := json.MarshalIndent(run, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return runErr
		},
	}

	cmd.Flags().StringVar(&backendName, "backend", "tally", "backend name (see 'qbench backends')")
	cmd.Flags().StringVar(&qasmPath, "qasm", "", "path to the OpenQASM 2.0 circuit file")
	cmd.Flags().IntVar(&shotCount, "shots", 1024, "number of measurement shots")
	cmd.Flags().BoolVar(&exact, "exact", false, "request the exact distribution instead of sampling")
	cobra.CheckErr(cmd.MarkFlagRequired("qasm"))
	return cmd
}

func sweepCmd() *cobra.Command {
	var (
		configPath  string
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the full benchmark grid from a config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Defaults()
			if configPath != "" {
				var err error
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}

			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if metricsAddr != "" {
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.Handler())
				go func() {
					if err := http.ListenAndServe(metricsAddr, mux); err != nil {
						logger.Warn("metrics listener stopped", zap.Error(err))
					}
				}()
				logger.Info("serving metrics", zap.String("addr", metricsAddr))
			}

			result, err := runner.Sweep(context.Background(), cfg, logger)
			if err != nil {
				return err
			}

			logger.Info("sweep complete",
				zap.Int("runs", len(result.Runs)),
				zap.Int("failed", result.Failed),
				zap.String("output_dir", cfg.OutputDir),
			)
			if result.Failed > 0 {
				return fmt.Errorf("%d of %d runs failed", result.Failed, len(result.Runs))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the sweep YAML config (defaults apply when omitted)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address during the sweep")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the harness and run-record schema versions",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("qbench %s (run schema %s)\n", version.CoreVersion, version.SchemaVersion)
		},
	}
}

func backendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the available backend adapters",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range registry.Default().Names() {
				fmt.Println(name)
			}
		},
	}
}
