package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
	"github.com/robalobadob/boggle/apps/go-server/internal/lexicon"
	"github.com/robalobadob/boggle/apps/go-server/internal/solver"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		order  string
		scores bool
		minLen int
	)
	cmd := &cobra.Command{
		Use:   "solve [FILE|-]",
		Short: "List every word on a board",
		Long: `Reads a board and prints every word it contains, one per line.

FILE may be .txt (one row per line, cells separated by spaces, or one letter
per cell when a row has no spaces), .json or .yaml (an array of rows).
"-" reads the text format from stdin. With no FILE the built-in sample board
is solved.

Examples:
  boggle solve                   # sample board
  boggle solve board.txt --scores
  echo "ca ts" | tr ' ' '\n' | boggle solve - --order score`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := solver.ParseOrder(order)
			if err != nil {
				return err
			}
			b, err := loadBoard(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			s := solver.New(lexicon.FromPath(a.cfg.WordlistFile))
			words, err := s.Solve(b, solver.WithOrder(o), solver.WithMinLength(minLen))
			if err != nil {
				return err
			}
			return printWords(cmd.OutOrStdout(), words, scores)
		},
	}
	cmd.Flags().StringVar(&order, "order", "lex", "result order: lex or score")
	cmd.Flags().BoolVar(&scores, "scores", false, "print points next to each word")
	cmd.Flags().IntVar(&minLen, "min-length", 0, "skip words shorter than this")
	return cmd
}

// loadBoard reads the board named by args, stdin for "-", or the sample board.
func loadBoard(stdin io.Reader, args []string) (board.Board, error) {
	switch {
	case len(args) == 0:
		return board.Sample(), nil
	case args[0] == "-":
		return board.Parse(stdin)
	default:
		return board.ReadFile(args[0])
	}
}

func printWords(w io.Writer, words []string, scores bool) error {
	for _, word := range words {
		var err error
		if scores {
			_, err = fmt.Fprintf(w, "%s\t%d\n", word, solver.Score(word))
		} else {
			_, err = fmt.Fprintln(w, word)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
