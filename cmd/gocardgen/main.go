/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// gocardgen compiles YAML card definitions into normalized JSON manifests.
//
// Usage:
//
//	gocardgen check <file-or-dir>
//	gocardgen export <file-or-dir> [-o <dir>] [--dpi 300|600]
//	gocardgen version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gocardgen/internal/catalog"
	"gocardgen/internal/config"
	"gocardgen/internal/log"
	"gocardgen/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		logLevel  string
		logFormat string
	)

	root := &cobra.Command{
		Use:           "gocardgen",
		Short:         "Compile trading card definitions into normalized manifests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, _ := config.Load()
			opts := log.Options{
				Level:     cfg.Logging.Level,
				Format:    cfg.Logging.Format,
				AddSource: cfg.Logging.Source,
				File:      cfg.Logging.File,
			}
			if logLevel != "" {
				opts.Level = logLevel
			}
			if logFormat != "" {
				opts.Format = logFormat
			}
			log.Init(opts)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug|info|warn|error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (console|json)")

	root.AddCommand(newCheckCmd(), newExportCmd(), newVersionCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	var noSchema bool
	cmd := &cobra.Command{
		Use:   "check <file-or-dir>",
		Short: "Parse and validate card definitions without writing output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			schemaCheck := cfg.General.SchemaCheck && !noSchema
			res, err := catalog.Compile(args[0], catalog.Options{SchemaCheck: schemaCheck})
			if err != nil {
				return err
			}
			printReport(cmd, res)
			if len(res.Failures) > 0 {
				return fmt.Errorf("%d of %d definitions failed", len(res.Failures), len(res.Entries)+len(res.Failures))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noSchema, "no-schema", false, "skip the JSON Schema shape check")
	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		outDir   string
		dpi      int
		noSchema bool
	)
	cmd := &cobra.Command{
		Use:   "export <file-or-dir>",
		Short: "Compile definitions and write normalized JSON manifests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.Output.Dir
			}
			if dpi == 0 {
				dpi = cfg.Output.DPI
			}
			if dpi != 300 && dpi != 600 {
				return fmt.Errorf("unsupported dpi %d (use 300 or 600)", dpi)
			}
			schemaCheck := cfg.General.SchemaCheck && !noSchema
			res, err := catalog.Compile(args[0], catalog.Options{SchemaCheck: schemaCheck})
			if err != nil {
				return err
			}
			if err := catalog.ExportJSON(res, outDir); err != nil {
				return err
			}
			printReport(cmd, res)
			cmd.Printf("wrote %d manifests to %s\n", len(res.Entries), outDir)
			if len(res.Failures) > 0 {
				return fmt.Errorf("%d of %d definitions failed", len(res.Failures), len(res.Entries)+len(res.Failures))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output directory (default from config)")
	cmd.Flags().IntVar(&dpi, "dpi", 0, "target render density, 300 or 600 (default from config)")
	cmd.Flags().BoolVar(&noSchema, "no-schema", false, "skip the JSON Schema shape check")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gocardgen version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("gocardgen %s\n", version.String())
		},
	}
}

// printReport summarizes a compiled batch on the command's stdout.
func printReport(cmd *cobra.Command, res *catalog.Result) {
	for _, e := range res.Entries {
		if len(e.Warnings) == 0 {
			continue
		}
		for _, w := range e.Warnings {
			cmd.Printf("warning: %s: %s\n", e.Path, w.String())
		}
	}
	for _, f := range res.Failures {
		cmd.Printf("failed: %s: %v\n", f.Path, f.Err)
	}
	cmd.Printf("checked %d definitions: %d ok, %d failed, %d warnings\n",
		len(res.Entries)+len(res.Failures), len(res.Entries), len(res.Failures), res.WarningCount())
}
