// apps/go-server/main.go
//
// Entry point for the boggle binary.
//   - Loads .env (godotenv) and reads config from the environment.
//   - Configures zerolog (level from LOG_LEVEL, console output on stderr).
//   - Dispatches to cobra subcommands: solve, daily, generate, serve.
//
// Errors are printed to stderr and the process exits with status 1.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/boggle/apps/go-server/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// app carries state shared by subcommands.
type app struct {
	cfg      config.Config
	wordlist string // --wordlist override for WORDLIST_FILE
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "boggle",
		Short:         "Find every dictionary word on a Boggle board",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			a.cfg = config.Load()
			if a.wordlist != "" {
				a.cfg.WordlistFile = a.wordlist
			}
			setupLogging(a.cfg.LogLevel)
		},
	}
	root.PersistentFlags().StringVar(&a.wordlist, "wordlist", "", "word list file (default: WORDLIST_FILE or the embedded list)")

	root.AddCommand(
		newSolveCmd(a),
		newDailyCmd(a),
		newGenerateCmd(a),
		newServeCmd(a),
	)
	return root
}

// setupLogging sets the global level and sends human-readable logs to stderr.
func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}
