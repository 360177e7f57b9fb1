package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rail44/calc/internal/log"
	"github.com/rail44/calc/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay [script|-]",
	Short: "Run a key script and print the display after every key",
	Long: `Replay feeds a key script through the calculator and prints one line per
accepted key: the key, the display and, if an operator is pending, the
operation indicator.

A script is a list of whitespace separated keys. Named keys (enter, esc,
clear, backspace, delete) are written out; any other token is read one
character at a time, so "12+3=" is five keys. '#' starts a comment.
Without an argument, or with "-", the script is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		loadConfig()

		var script io.Reader = os.Stdin
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				log.Error("failed to open script", slog.String("error", err.Error()))
				os.Exit(1)
			}
			defer f.Close()
			script = f
		}

		if err := replay.Run(script, cmd.OutOrStdout(), log.Logger()); err != nil {
			log.Error("replay failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
