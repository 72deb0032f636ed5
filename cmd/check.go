// Package cmd implements the command-line interface for chapconv.
package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/chapconv/chapconv/constant"
	"github.com/chapconv/chapconv/container"
	"github.com/chapconv/chapconv/icon"
	"github.com/chapconv/chapconv/style"
	"github.com/charmbracelet/lipgloss"
)

// CheckDependencies verifies that the MKVToolNix binaries behind c can be found.
func CheckDependencies(c container.Container) {
	tools, ok := c.(*container.MKVToolNix)
	if !ok {
		return
	}

	if err := tools.Available(); err != nil {
		printMissingDependencyError(err)
		os.Exit(1)
	}
}

func printMissingDependencyError(err error) {
	var installCmd string
	switch runtime.GOOS {
	case constant.Darwin:
		installCmd = "brew install mkvtoolnix"
	case constant.Linux:
		installCmd = "sudo apt install mkvtoolnix"
	case constant.Windows:
		installCmd = "scoop install mkvtoolnix"
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.HiRed).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(err.Error())

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Fprintln(os.Stderr, box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
