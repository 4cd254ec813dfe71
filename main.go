// dasher is a side-scrolling runner: jump the nebulae until the last one has
// scrolled past.
//
// Usage:
//
//	dasher [play]   - open the game window
//	dasher runs     - print recent runs and the best winning time
//
// Global flags:
//
//	--textures <dir>   - sprite sheet directory (default: textures)
//	--sounds <dir>     - sound effect directory (default: sounds)
//	--db <path>        - run history database (default: ~/.dasher/runs.db)
//	--debug            - hitboxes, FPS and prefab hot reload
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagTextures string
	flagSounds   string
	flagDBPath   string
	flagDebug    bool
	flagLogLevel string
)

func main() {
	// A missing .env is fine; the environment and flags still apply.
	_ = godotenv.Load()
	registerFlags()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dasher",
	Short: "Dapper Dasher - jump the nebulae",
	Long: `Dapper Dasher is a side-scrolling runner. Press Space (or the south
gamepad button) to jump over the nebulae until the last one has passed.

Keys:
  Space / Up   jump
  P / Esc      pause menu
  R            restart after a run ends
  C            copy the run result to the clipboard`,
	SilenceUsage: true,
	RunE:         runPlay,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func registerFlags() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagTextures, "textures", getEnv("DASHER_TEXTURES", "textures"), "Directory with sprite sheets")
	pf.StringVar(&flagSounds, "sounds", getEnv("DASHER_SOUNDS", "sounds"), "Directory with sound effects")
	pf.StringVar(&flagDBPath, "db", getEnv("DASHER_DB", "~/.dasher/runs.db"), "Path to the run history database")
	pf.BoolVar(&flagDebug, "debug", false, "Draw hitboxes and FPS, hot reload prefabs")
	pf.StringVar(&flagLogLevel, "log-level", getEnv("DASHER_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runsCmd)
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(flagLogLevel)
	if err != nil {
		return err
	}
	return RunGame(Options{
		TexturesDir: flagTextures,
		SoundsDir:   flagSounds,
		DBPath:      flagDBPath,
		Debug:       flagDebug,
	}, logger)
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dasher",
		Level:           lvl,
	}), nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
