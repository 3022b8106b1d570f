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
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

// setup loads the configuration and builds the logger shared by commands.
func setup(verbose bool) (*Config, *zap.Logger, error) {
	logger, err := newLogger(verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	config, err := LoadConfig()
	if err != nil {
		logger.Warn("failed to load configuration, using defaults", zap.Error(err))
	}
	return config, logger, nil
}

func main() {
	asciiLogo := `
ranktree: an AVL ordered map with rank and size counters [Version: %s%s%s]

Copyright @ Naren Yellavula

`
	InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var verbose bool

	shell := func(cmd *cobra.Command, args []string) error {
		config, logger, err := setup(verbose)
		if err != nil {
			return err
		}
		defer logger.Sync()
		return runShell(NewWorkspace(config, logger))
	}

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive ranktree shell",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell opens a workspace with one empty tree named main`),
		Args:  cobra.NoArgs,
		RunE:  shell,
	}

	var cmdRun = &cobra.Command{
		Use:   "run <script>",
		Short: "Execute a ranktree command script",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run executes every line of the script and stops at the first error`),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, logger, err := setup(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()
			return runScriptFile(NewWorkspace(config, logger), args[0], cmd.OutOrStdout())
		},
	}

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Replay the removal and split walkthroughs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, logger, err := setup(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()
			return runDemo(cmd.OutOrStdout(), config.Render.MaxNodes)
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Measure rebalancing work on random key orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, logger, err := setup(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			sizes, seed := config.Bench.Sizes, config.Bench.Seed
			if cmd.Flags().Changed("sizes") {
				sizes, _ = cmd.Flags().GetIntSlice("sizes")
			}
			if cmd.Flags().Changed("seed") {
				seed, _ = cmd.Flags().GetUint64("seed")
			}

			results, err := runBench(sizes, seed, os.Stderr, logger)
			if err != nil {
				return err
			}
			printBenchResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
	cmdBench.Flags().IntSlice("sizes", nil, "key counts to benchmark (default from settings)")
	cmdBench.Flags().Uint64("seed", 0, "random seed (default from settings)")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Display current configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings prints ~/.ranktree.yaml and creates it when missing`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print ranktree usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print ranktree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:          "ranktree",
		Version:      version,
		Long:         asciiLogo,
		SilenceUsage: true,
		// Default to the shell when no subcommand is provided
		RunE: shell,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(cmdShell, cmdRun, cmdDemo, cmdBench, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
