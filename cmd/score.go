package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quintle/quintle/internal/game"
)

var scoreCmd = &cobra.Command{
	Use:   "score GUESS ANSWER",
	Short: "Score a single guess against an answer",
	Long: `Score evaluates one guess against one answer and prints the
per-letter classification. Useful for checking scoring behavior from
the terminal, especially around repeated letters.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		guess, answer := args[0], args[1]
		marks, err := game.Score(guess, answer)
		if err != nil {
			return err
		}
		guess = strings.ToLower(guess)
		for i, m := range marks {
			fmt.Printf("%c  %s\n", guess[i], m)
		}
		if game.AllCorrect(marks) {
			fmt.Println("solved")
		}
		return nil
	},
}
