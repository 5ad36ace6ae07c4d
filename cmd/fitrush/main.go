// fitrush is a motion-controlled arcade game for the terminal: a camera
// pose stream (or held space bar) drives an avatar through scrolling
// obstacles.
//
// Usage:
//
//	fitrush play [mode]      - Play a session (squat, armraise, lunge)
//	fitrush serve            - Start SSH server for remote keyboard play
//	fitrush scores [mode]    - Show recorded runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.fitrush/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

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
	Use:   "fitrush",
	Short: "FitRush - exercise-controlled arcade game in your terminal",
	Long: `FitRush turns your workout into a terminal arcade game. A browser
page streams body pose landmarks over a local WebSocket; squatting,
raising your arms, or lunging lifts an avatar through scrolling
obstacles. Without a camera, hold space to exert.

Available commands:
  play     - Play a session
  serve    - Start SSH server for remote keyboard play
  scores   - View recorded runs

Examples:
  fitrush play squat
  fitrush play lunge --difficulty hard
  fitrush play --demo
  fitrush serve --ssh :2222
  fitrush scores squat`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fitrush/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
