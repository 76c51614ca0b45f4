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
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/cybrota/avlkit/workload"
)

const version = "0.3.0"

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	InitializeColors(config.Display.Color)
	return config
}

func main() {
	banner := fmt.Sprintf("avlkit %s%s%s: a self-balancing binary search tree toolkit", Green, version, Reset)

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n%s", banner, "Run opens a terminal UI to insert, remove and inspect keys"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			if err := runBubbleTeaApp(NewSession(config)); err != nil {
				log.Fatalf("Error running explorer: %v", err)
			}
		},
	}

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Walk through rotation and deletion scenarios",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			loadConfigOrDefault()
			if err := runDemo(os.Stdout); err != nil {
				log.Fatalf("Error running demo: %v", err)
			}
		},
	}

	var cmdExec = &cobra.Command{
		Use:   "exec FILE",
		Short: "Run an operation script (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()

			var in io.Reader = os.Stdin
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					log.Fatalf("Error opening script: %v", err)
				}
				defer f.Close()
				in = f
			}

			if err := NewSession(config).RunScript(in, os.Stdout); err != nil {
				log.Fatalf("Error running script %s: %v", args[0], err)
			}
		},
	}

	var cmdLoad = &cobra.Command{
		Use:   "load",
		Short: "Bulk insert a generated workload and validate the tree",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()

			name, _ := cmd.Flags().GetString("workload")
			count, _ := cmd.Flags().GetInt("count")
			seed, _ := cmd.Flags().GetInt64("seed")
			quiet, _ := cmd.Flags().GetBool("quiet")
			printTree, _ := cmd.Flags().GetBool("print")
			if !cmd.Flags().Changed("workload") {
				name = config.Workload.Pattern
			}
			if !cmd.Flags().Changed("count") {
				count = config.Workload.Count
			}
			if !cmd.Flags().Changed("seed") {
				seed = config.Workload.Seed
			}

			if err := workload.CheckCount(count); err != nil {
				log.Fatalf("Error: %v", err)
			}
			g, err := workload.NewManager().Get(name)
			if err != nil {
				log.Fatalf("Error: %v", err)
			}

			session := NewSession(config)
			report := loadWorkload(session.Tree(), g, count, seed, !quiet)
			printLoadReport(os.Stdout, report)
			if printTree {
				fmt.Print(session.Render())
			}
			if report.Err != nil {
				os.Exit(1)
			}
		},
	}
	cmdLoad.Flags().String("workload", defaultConfig.Workload.Pattern, workloadFlagUsage(workload.NewManager()))
	cmdLoad.Flags().Int("count", defaultConfig.Workload.Count, fmt.Sprintf("number of keys to generate (at most %d)", workload.MaxCount))
	cmdLoad.Flags().Int64("seed", defaultConfig.Workload.Seed, "seed for random and shuffled workloads")
	cmdLoad.Flags().Bool("quiet", false, "hide the progress bar")
	cmdLoad.Flags().Bool("print", false, "print the resulting tree")

	var cmdDashboard = &cobra.Command{
		Use:   "dashboard",
		Short: "Show nodes per level and lookup statistics",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()

			g, err := workload.NewManager().Get(config.Workload.Pattern)
			if err != nil {
				log.Fatalf("Error: %v", err)
			}
			session := NewSession(config)
			loadWorkload(session.Tree(), g, config.Workload.Count, config.Workload.Seed, false)

			if err := runDashboard(session, config.Workload.Seed); err != nil {
				log.Fatalf("Error running dashboard: %v", err)
			}
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Print avlkit settings, creating the config file if missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			loadConfigOrDefault()
			displaySettings(os.Stdout)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlkit usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlkit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlkit",
		Version: version,
		Long:    banner,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to run command when no subcommand is provided
			config := loadConfigOrDefault()
			if err := runBubbleTeaApp(NewSession(config)); err != nil {
				log.Fatalf("Error running explorer: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdRun, cmdDemo, cmdExec, cmdLoad, cmdDashboard, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
