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
	"time"

	"github.com/spf13/cobra"
)

// buildWorkspace loads the config, applies the --mode override and
// creates an empty session.
func buildWorkspace(cmd *cobra.Command) (Workspace, *Config, error) {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}

	if mode, _ := cmd.Flags().GetString("mode"); mode != "" {
		config.Tree.KeyMode = mode
	}

	frames := NewRenderCache(time.Duration(config.Render.CacheMinutes) * time.Minute)
	ws, err := NewWorkspace(config.Tree.KeyMode, frames, config.Tree.ShowBalance)
	if err != nil {
		return nil, nil, err
	}
	return ws, config, nil
}

func insertAll(ws Workspace, keys []string) error {
	for _, key := range keys {
		if _, err := ws.Insert(key); err != nil {
			return err
		}
	}
	return nil
}

func runInteractive(cmd *cobra.Command, args []string) {
	ws, config, err := buildWorkspace(cmd)
	if err != nil {
		log.Fatalf("Error creating tree: %v", err)
	}
	if err := insertAll(ws, args); err != nil {
		log.Fatalf("Error loading keys: %v", err)
	}
	if err := runBubbleTeaApp(ws, config); err != nil {
		log.Fatalf("Error running UI: %v", err)
	}
}

func main() {
	asciiLogo := `
 █████╗ ██████╗ ██████╗  ██████╗ ██████╗
██╔══██╗██╔══██╗██╔══██╗██╔═══██╗██╔══██╗
███████║██████╔╝██████╔╝██║   ██║██████╔╝
██╔══██║██╔══██╗██╔══██╗██║   ██║██╔══██╗
██║  ██║██║  ██║██████╔╝╚██████╔╝██║  ██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝
Self-balancing AVL tree explorer for the terminal [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdRun = &cobra.Command{
		Use:   "run [KEY...]",
		Short: "Launches the interactive tree UI",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens the interactive UI, optionally preloaded with keys`),
		Args:  cobra.MinimumNArgs(0),
		Run:   runInteractive,
	}

	var cmdSort = &cobra.Command{
		Use:   "sort KEY...",
		Short: "Insert keys and print them in order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, _, err := buildWorkspace(cmd)
			if err != nil {
				return err
			}
			if err := insertAll(ws, args); err != nil {
				return err
			}
			fmt.Println(ws.OrderedList())
			return nil
		},
	}

	var cmdShow = &cobra.Command{
		Use:   "show KEY...",
		Short: "Insert keys and draw the resulting tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, _, err := buildWorkspace(cmd)
			if err != nil {
				return err
			}
			if err := insertAll(ws, args); err != nil {
				return err
			}

			deletes, _ := cmd.Flags().GetStringSlice("delete")
			for _, key := range deletes {
				outcome, err := ws.Delete(key)
				if err != nil {
					return err
				}
				fmt.Println(outcome.Message())
			}

			var highlight Highlight
			if query, _ := cmd.Flags().GetString("search"); query != "" {
				outcome, err := ws.Search(query)
				if err != nil {
					return err
				}
				fmt.Println(outcome.Message())
				highlight = Highlight{Path: outcome.Path}
				if outcome.Found {
					highlight.Match = outcome.Key
				}
			}

			if ascii, _ := cmd.Flags().GetBool("ascii"); ascii {
				ws.Print(os.Stdout, true)
			} else {
				fmt.Println(ws.Render(highlight))
			}
			return nil
		},
	}
	cmdShow.Flags().StringSlice("delete", nil, "keys to delete after inserting")
	cmdShow.Flags().String("search", "", "key to search for; its path is highlighted")
	cmdShow.Flags().Bool("ascii", false, "draw the tree sideways in plain ASCII")

	var cmdScript = &cobra.Command{
		Use:   "script FILE",
		Short: "Run tree commands from a file ('-' reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, _, err := buildWorkspace(cmd)
			if err != nil {
				return err
			}
			if args[0] == "-" {
				return RunScript(ws, os.Stdin, os.Stdout)
			}
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()
			return RunScript(ws, file, os.Stdout)
		},
	}

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Run a random insert/delete workload and verify every invariant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := StressOptions{Out: os.Stderr}
			opts.Count, _ = cmd.Flags().GetInt("count")
			opts.KeySpace, _ = cmd.Flags().GetInt("keys")
			opts.DeletePct, _ = cmd.Flags().GetInt("delete-pct")
			opts.Seed, _ = cmd.Flags().GetInt64("seed")
			quiet, _ := cmd.Flags().GetBool("quiet")
			opts.ShowProgress = !quiet

			res, err := RunStress(opts)
			if err != nil {
				return err
			}
			fmt.Printf("\n✅ %d inserts, %d duplicates, %d deletes, %d misses. %d keys left, max height %d\n",
				res.Inserts, res.Duplicates, res.Deletes, res.Misses, res.FinalSize, res.MaxHeight)
			return nil
		},
	}
	cmdStress.Flags().Int("count", 20000, "number of operations")
	cmdStress.Flags().Int("keys", 0, "size of the key space (default: count)")
	cmdStress.Flags().Int("delete-pct", 40, "percentage of operations that delete")
	cmdStress.Flags().Int64("seed", 1, "random seed")
	cmdStress.Flags().Bool("quiet", false, "hide the progress bar")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the current configuration, creating it if missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Arbor usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the arbor CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Arbor version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	// Default to run command when no subcommand is provided
	var rootCmd = &cobra.Command{
		Use:          "arbor",
		Version:      version,
		Long:         asciiLogo,
		SilenceUsage: true,
		Run:          runInteractive,
	}
	rootCmd.PersistentFlags().String("mode", "", "key mode: number or string (overrides ~/.arbor.yaml)")
	rootCmd.AddCommand(cmdRun, cmdSort, cmdShow, cmdScript, cmdStress, cmdSettings, cmdUsage, cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
