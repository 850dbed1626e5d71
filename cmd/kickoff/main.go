// kickoff is a terminal soccer game you can play locally or serve over SSH.
//
// Usage:
//
//	kickoff list              - List available games
//	kickoff play [game]       - Play a match
//	kickoff serve             - Start SSH server for remote play
//	kickoff scores [game]     - Show match history and aggregates
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.kickoff/matches.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-kickoff/internal/games/soccer"
)

const defaultGameID = "soccer"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kickoff",
	Short: "Kickoff - Top-down soccer in your terminal",
	Long: `Kickoff is a terminal soccer game. You control one player on a
four-a-side pitch against a reactive CPU team, locally or over SSH.

Available commands:
  list     - Show all available games
  play     - Play a match
  serve    - Start SSH server for remote play
  scores   - View match history

Examples:
  kickoff play
  kickoff play --difficulty hard
  kickoff serve --ssh :2222
  kickoff scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.kickoff/matches.db", "Path to match database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
