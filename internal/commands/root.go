package commands

import (
	"github.com/spf13/cobra"

	"github.com/visual-poker/pokerxl/internal/buildinfo"
)

const rootLong = `pokerxl reads a poker makeup workbook and writes its sessions as JSON.

The first sheet must follow the fixed makeup layout: the player name in A3,
the current makeup in I3, and one session per row from row 8 (date in A,
gains in C, games in D, rake in F, balance in I). Reading stops at the first
row whose date cell is empty.

Run "pokerxl convert" to export, or "pokerxl init" to write a config file.`

// NewRootCommand creates the pokerxl command tree. The root itself has no
// action and prints help.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "pokerxl",
		Short:   "Export poker makeup spreadsheets to JSON",
		Long:    rootLong,
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newConvertCommand(), newInitCommand())

	return rootCmd
}
