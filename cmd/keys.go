package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rail44/calc/internal/input"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the keyboard bindings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return input.WriteBindings(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
