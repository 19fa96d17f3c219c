package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suderio/grimoire/internal/engine"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the persisted session state",
	Long:  `Loads the session snapshot and prints a summary without opening the shell.`,
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()

		store, err := openStore(log)
		if err != nil {
			fmt.Printf("Failed to open the session store: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		snap := store.Snapshot()

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			data, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				fmt.Printf("Failed to encode session: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(data))
			return
		}

		printSummary(snap)
	},
}

func printSummary(snap engine.Session) {
	fmt.Printf("Phase: %s (day %d)\n", snap.Phase, snap.DayNumber)
	if snap.Script != nil {
		fmt.Printf("Script: %s (%d characters)\n", snap.Script.Name, len(snap.Script.Characters))
	} else {
		fmt.Println("Script: none")
	}
	fmt.Printf("Bag: %d in, %d drawn", len(snap.Bag), len(snap.Drawn))
	if snap.PendingDraw != "" {
		fmt.Printf(", pending %s", snap.PendingDraw)
	}
	fmt.Println()
	fmt.Printf("Players: %d\n", len(snap.Players))
	for _, p := range snap.Seats() {
		status := "alive"
		if !p.IsAlive {
			status = "dead"
		}
		line := fmt.Sprintf("  %2d. %-20s %s", p.SeatPosition+1, p.Name, status)
		if ch, ok := snap.ResolveCharacter(p.CharacterID); ok {
			line += " | " + ch.Name
		}
		fmt.Println(line)
	}
	if len(snap.SavedScripts) > 0 {
		fmt.Printf("Library: %d saved scripts\n", len(snap.SavedScripts))
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("json", false, "print the raw snapshot as JSON")
}
