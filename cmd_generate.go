package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/robalobadob/boggle/apps/go-server/internal/board"
)

func newGenerateCmd(_ *app) *cobra.Command {
	var (
		rows, cols int
		seed       uint64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Deal a random board",
		Long: `Rolls the classic dice onto a rows×cols grid and prints it in the text
format "boggle solve" reads. The same --seed always gives the same board.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rows < 1 || cols < 1 {
				return fmt.Errorf("rows and cols must be positive")
			}
			if !cmd.Flags().Changed("seed") {
				seed = rand.Uint64()
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), board.Generate(rows, cols, board.NewRand(seed)))
			return err
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 4, "board rows")
	cmd.Flags().IntVar(&cols, "cols", 4, "board columns")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default: random)")
	return cmd
}
