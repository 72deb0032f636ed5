// Package cmd implements the command-line interface for chapconv.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/chapconv/chapconv/color"
	"github.com/chapconv/chapconv/container"
	"github.com/chapconv/chapconv/convert"
	"github.com/chapconv/chapconv/icon"
	"github.com/chapconv/chapconv/style"
	"github.com/chapconv/chapconv/util"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.SetOut(os.Stdout)
	inspectCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	inspectCmd.Flags().BoolP("clipboard", "c", false, "Inspect the text in the clipboard")
}

// inspectCmd detects and parses chapters without converting them.
var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Detect the format of chapter text and list its chapters",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		options := newOptions(cmd, args)
		options.Echo = false

		if container.Handles(options.Input) {
			CheckDependencies(options.Container)
		}

		report, err := convert.Inspect(cmd.Context(), options)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(report.WriteJson(cmd.OutOrStdout()))
			return
		}

		cmd.Printf(
			"%s %s %s\n\n",
			style.Fg(color.Green)(icon.Get(icon.Mark)),
			style.Title(report.Grammar.String()),
			style.Faint(util.Quantify(len(report.Chapters), "chapter", "chapters")),
		)

		width, _, err := util.TerminalSize()
		if err != nil || width <= 0 {
			width = 80
		}

		indexWidth := len(strconv.Itoa(len(report.Chapters)))
		for i, entry := range report.Chapters {
			index := fmt.Sprintf("%*d", indexWidth, i+1)
			// index, two spaces, clock, two spaces
			room := util.Max(width-indexWidth-len(entry.Clock)-4, 8)

			cmd.Printf(
				"%s  %s  %s\n",
				style.Faint(index),
				style.Fg(color.Yellow)(entry.Clock),
				truncate.StringWithTail(entry.Title, uint(room), "…"),
			)
		}
	},
}

func init() {
	inspectCmd.AddCommand(inspectSchemaCmd)
}

// inspectSchemaCmd prints the JSON schema of the inspect --json output.
var inspectSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inspect output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(convert.Schema()))
	},
}
