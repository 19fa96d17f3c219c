/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suderio/grimoire/internal/catalog"
	"github.com/suderio/grimoire/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play [script_key]",
	Short: "Start the interactive storyteller shell",
	Long: `Opens the interactive shell over the persisted session.
Usage:
	> script load tb
	> setup players 10
	> setup fill 10
	> draw`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()

		cat, err := catalog.Load()
		if err != nil {
			fmt.Printf("Failed to load the character catalog: %v\n", err)
			os.Exit(1)
		}

		store, err := openStore(log)
		if err != nil {
			fmt.Printf("Failed to open the session store: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		shell, err := session.NewShell(store, cat)
		if err != nil {
			fmt.Printf("Failed to bootstrap the shell: %v\n", err)
			os.Exit(1)
		}

		if len(args) == 1 {
			if out, err := shell.Execute("script load " + args[0]); err != nil {
				fmt.Printf("Warning: %v\n", err)
			} else {
				fmt.Println(out)
			}
		}

		if err := RunTUI(shell, cat); err != nil {
			fmt.Printf("Fatal TUI Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
