package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-kickoff/internal/platform/tui"
	"github.com/vovakirdan/tui-kickoff/internal/registry"
	"github.com/vovakirdan/tui-kickoff/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show match history",
	Long: `Display recent match results and overall record.

Examples:
  kickoff scores
  kickoff scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "interactive", false, "Browse match history in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'kickoff list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, gameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing match history: %v\n", err)
			os.Exit(1)
		}
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	matches, err := store.RecentMatches(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Match History - %s\n", game.Title())
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'kickoff play %s' to record the first result!\n", gameID)
		return
	}

	fmt.Printf("Record: %d played, %d W / %d D / %d L, goals %d:%d\n",
		stats.Played, stats.Wins, stats.Draws, stats.Losses,
		stats.GoalsFor, stats.GoalsAgainst)
	fmt.Println()

	fmt.Printf("  %-16s  %-7s  %-7s  %s\n", "Date", "Result", "Score", "Duration")
	fmt.Printf("  %-16s  %-7s  %-7s  %s\n", "----", "------", "-----", "--------")

	for _, rec := range matches {
		fmt.Printf("  %-16s  %-7s  %d - %-3d  %d:%02d\n",
			rec.CreatedAt.Format("2006-01-02 15:04"),
			strings.ToUpper(rec.Outcome),
			rec.PlayerScore, rec.CPUScore,
			rec.DurationSecs/60, rec.DurationSecs%60)
	}
}
