package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"golang.org/x/term"

	"github.com/fitrush/fitrush/internal/platform/tui"
	"github.com/fitrush/fitrush/internal/signal"
	"github.com/fitrush/fitrush/internal/storage"
)

var (
	flagScoresTop         int
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs. With a mode argument, only that
mode's runs are shown; without one, the best runs across all modes.

Examples:
  fitrush scores
  fitrush scores squat
  fitrush scores lunge --top 25
  fitrush scores -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresTop, "top", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse runs in a full-screen table")
}

func runScores(cmd *cobra.Command, args []string) {
	mode := ""
	title := "All Modes"
	if len(args) > 0 {
		m, err := signal.ParseMode(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Modes: squat, armraise, lunge")
			os.Exit(1)
		}
		mode = m.String()
		title = m.Title()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(mode, flagScoresTop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'fitrush play' to set the first one!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %-10s  %s\n", "Rank", "Score", "Mode", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %-10s  %s\n", "----", "-----", "----", "----------", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-10s  %-10s  %s\n",
			i+1, entry.Score, entry.Mode, entry.Difficulty,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if mode != "" {
		if highScore, err := store.HighScore(mode); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d\n", highScore)
		}
	}
}
