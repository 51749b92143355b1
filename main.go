// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cybrota/avlsort/sorting"
)

var version = "v0.1.0"

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	verbose    bool

	config   *Config
	logger   *logrus.Logger
	registry *sorting.Registry
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	config, err := LoadConfig(a.configPath)
	a.config = config
	a.logger = newLogger(config.LogLevel, a.verbose, cmd.ErrOrStderr())
	if err != nil {
		a.logger.WithError(err).Warn("Failed to load configuration, using default settings")
	}
	a.registry = sorting.NewRegistry()
	InitializeColors()
	a.logger.WithField("mode", GetTerminalMode()).Debug("terminal mode detected")
	return nil
}

// reportError logs a failed command through the configured logger. Errors
// raised before setup ran (bad flags) fall back to a default logger.
func (a *app) reportError(err error, out io.Writer) {
	logger := a.logger
	if logger == nil {
		logger = newLogger(defaultConfig.LogLevel, a.verbose, out)
	}
	logger.WithError(err).Error("avlsort failed")
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	var rootCmd = &cobra.Command{
		Use:               "avlsort",
		Version:           version,
		Short:             "AVL tree and sorting algorithms from the shell",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/"+configFileName+")")
	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "enable debug logging")

	var (
		treeFile   string
		treeDelete []string
		treeOpts   treeOptions
		treeCopy   bool
	)
	var cmdTree = &cobra.Command{
		Use:   "tree [values...]",
		Short: "Build an AVL tree and print its in-order traversal",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := collectValues(args, treeFile)
			if err != nil {
				return err
			}
			deletes, err := parseValues(treeDelete)
			if err != nil {
				return err
			}
			treeOpts.Insert, treeOpts.Delete = values, deletes

			emitted, err := runTree(treeOpts, cmd.OutOrStdout(), a.logger)
			if err != nil {
				return err
			}
			if treeCopy {
				return copyToClipboard(cmd.ErrOrStderr(), joinValues(emitted))
			}
			return nil
		},
	}
	cmdTree.Flags().StringVarP(&treeFile, "file", "f", "", "read values from file ('-' for stdin)")
	cmdTree.Flags().StringSliceVarP(&treeDelete, "delete", "d", nil, "values to delete after inserting")
	cmdTree.Flags().BoolVarP(&treeOpts.Print, "print", "p", false, "draw the tree structure")
	cmdTree.Flags().BoolVar(&treeOpts.Check, "check", false, "verify tree invariants")
	cmdTree.Flags().BoolVar(&treeCopy, "copy", false, "copy the traversal to the clipboard")
	// Values may be negative, so flag parsing stops at the first value.
	cmdTree.Flags().SetInterspersed(false)

	var (
		sortFile string
		sortAlgo string
		sortCopy bool
	)
	var cmdSort = &cobra.Command{
		Use:   "sort [values...]",
		Short: "Sort integers with one of the built-in algorithms",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := collectValues(args, sortFile)
			if err != nil {
				return err
			}
			algo := sortAlgo
			if algo == "" {
				algo = a.config.Sort.Algorithm
			}

			sorted, err := runSort(a.registry, algo, values, cmd.OutOrStdout(), a.logger)
			if err != nil {
				return err
			}
			if sortCopy {
				return copyToClipboard(cmd.ErrOrStderr(), joinValues(sorted))
			}
			return nil
		},
	}
	cmdSort.Flags().StringVarP(&sortFile, "file", "f", "", "read values from file ('-' for stdin)")
	cmdSort.Flags().StringVarP(&sortAlgo, "algo", "a", "", "algorithm to use (default from config)")
	cmdSort.Flags().BoolVar(&sortCopy, "copy", false, "copy the result to the clipboard")
	cmdSort.Flags().SetInterspersed(false)

	var cmdRepl = &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session over one AVL tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := NewSession(a.config.Repl, cmd.OutOrStdout(), a.logger)
			return session.Run(cmd.InOrStdin())
		},
	}

	var (
		benchAlgos      []string
		benchNoProgress bool
	)
	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Time every sorting algorithm on random inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := a.config.Bench
			flags := cmd.Flags()
			if flags.Changed("size") {
				config.Size, _ = flags.GetInt("size")
			}
			if flags.Changed("trials") {
				config.Trials, _ = flags.GetInt("trials")
			}
			if flags.Changed("seed") {
				config.Seed, _ = flags.GetInt64("seed")
			}
			if benchNoProgress {
				config.Progress = false
			}

			results, err := runBench(a.registry, config, benchAlgos, cmd.ErrOrStderr(), a.logger)
			if err != nil {
				return err
			}
			printBenchResults(cmd.OutOrStdout(), results)
			for _, r := range results {
				if r.Failures > 0 {
					return fmt.Errorf("%s produced %d unsorted outputs", r.Algorithm, r.Failures)
				}
			}
			return nil
		},
	}
	cmdBench.Flags().Int("size", 0, "values per input (default from config)")
	cmdBench.Flags().Int("trials", 0, "number of random inputs (default from config)")
	cmdBench.Flags().Int64("seed", 0, "random seed, 0 for time based (default from config)")
	cmdBench.Flags().StringSliceVarP(&benchAlgos, "algo", "a", nil, "algorithms to run (default all)")
	cmdBench.Flags().BoolVar(&benchNoProgress, "no-progress", false, "hide the progress bar")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout(), a.configPath)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlsort usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlsort version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	rootCmd.AddCommand(cmdTree, cmdSort, cmdRepl, cmdBench, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd, a
}

func main() {
	rootCmd, a := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		a.reportError(err, rootCmd.ErrOrStderr())
		os.Exit(1)
	}
}
