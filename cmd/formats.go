// Package cmd implements the command-line interface for chapconv.
package cmd

import (
	"os"

	"github.com/chapconv/chapconv/color"
	"github.com/chapconv/chapconv/grammar"
	"github.com/chapconv/chapconv/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(formatsCmd)
	formatsCmd.SetOut(os.Stdout)
}

func capability(ok bool) string {
	if ok {
		return style.Fg(color.Green)("yes")
	}
	return style.Fg(color.Red)("no")
}

// formatsCmd lists every chapter grammar and what can be done with it.
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported chapter formats",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		rows := lo.Map(grammar.All(), func(g grammar.Grammar, _ int) []string {
			// xml is read through the container tool, not the parser
			readable := g.Readable() || g == grammar.XML
			return []string{
				style.Bold(g.String()),
				capability(readable),
				capability(g.Writable()),
				g.Description(),
			}
		})

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(style.New().Foreground(color.Gray)).
			Headers("FORMAT", "READ", "WRITE", "DESCRIPTION").
			Rows(rows...)

		cmd.Println(t.Render())
	},
}
