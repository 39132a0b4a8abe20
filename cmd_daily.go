package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/boggle/apps/go-server/internal/daily"
	"github.com/robalobadob/boggle/apps/go-server/internal/game"
	"github.com/robalobadob/boggle/apps/go-server/internal/lexicon"
	"github.com/robalobadob/boggle/apps/go-server/internal/solver"
)

func newDailyCmd(a *app) *cobra.Command {
	var (
		date  string
		solve bool
	)
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Print the Daily Challenge board",
		Long: `Prints the board everyone plays on the given UTC date (default today).
The board depends on DAILY_SALT, DAILY_ROWS and DAILY_COLS.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now().UTC()
			if date != "" {
				t, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("bad --date %q: want YYYY-MM-DD", date)
				}
				day = t
			}
			b := daily.Board(day, a.cfg.DailySalt, a.cfg.DailyRows, a.cfg.DailyCols)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n%s", daily.DateKey(day), b)
			if !solve {
				return nil
			}
			s := solver.New(lexicon.FromPath(a.cfg.WordlistFile))
			words, err := s.Solve(b, solver.WithOrder(solver.OrderScore), solver.WithMinLength(game.MinWordLength))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "# %d words, %d points\n", len(words), solver.Total(words))
			return printWords(out, words, true)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "UTC date as YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&solve, "solve", false, "also print the board's words")
	return cmd
}
