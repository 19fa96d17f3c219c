/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suderio/grimoire/internal/catalog"
	"github.com/suderio/grimoire/internal/engine"
	"github.com/suderio/grimoire/internal/script"
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Inspect and convert scripts without opening the shell",
}

var scriptListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the official scripts in the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := catalog.Load()
		if err != nil {
			fmt.Printf("Failed to load the character catalog: %v\n", err)
			os.Exit(1)
		}
		for _, key := range cat.ScriptKeys() {
			info, _ := cat.ScriptInfo(key)
			fmt.Printf("%-6s %s (%d characters)\n", key, info.Name, len(info.Characters))
		}
	},
}

var scriptCheckCmd = &cobra.Command{
	Use:   "check <file.json>",
	Short: "Parse a script file and report what it contains",
	Long: `Runs a script file through the importer and prints the normalized
result. Useful to verify a downloaded script before loading it in a game.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := catalog.Load()
		if err != nil {
			fmt.Printf("Failed to load the character catalog: %v\n", err)
			os.Exit(1)
		}

		payload, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Failed to read %s: %v\n", args[0], err)
			os.Exit(1)
		}

		name := strings.TrimSuffix(filepath.Base(args[0]), ".json")
		sc, err := script.NewImporter(cat).Import(payload, name)
		if err != nil {
			fmt.Printf("Import failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s (%d characters)\n", sc.Name, len(sc.Characters))
		for _, team := range engine.Teams {
			chars := sc.Team(team)
			if len(chars) == 0 {
				continue
			}
			ids := make([]string, len(chars))
			for i, ch := range chars {
				ids[i] = ch.ID
			}
			fmt.Printf("  %-10s %s\n", team, strings.Join(ids, ", "))
		}
	},
}

var scriptExportCmd = &cobra.Command{
	Use:   "export <official_key> <file.json>",
	Short: "Write an official script to a shareable JSON file",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := catalog.Load()
		if err != nil {
			fmt.Printf("Failed to load the character catalog: %v\n", err)
			os.Exit(1)
		}

		sc, ok := cat.Script(args[0])
		if !ok {
			fmt.Printf("No official script %q. Try 'grimoire script list'.\n", args[0])
			os.Exit(1)
		}

		data, err := script.Export(sc)
		if err != nil {
			fmt.Printf("Export failed: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(args[1], data, 0644); err != nil {
			fmt.Printf("Failed to write %s: %v\n", args[1], err)
			os.Exit(1)
		}
		fmt.Printf("Exported %q to %s.\n", sc.Name, args[1])
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)
	scriptCmd.AddCommand(scriptListCmd)
	scriptCmd.AddCommand(scriptCheckCmd)
	scriptCmd.AddCommand(scriptExportCmd)
}
