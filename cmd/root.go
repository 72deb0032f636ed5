// Package cmd implements the command-line interface for chapconv.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chapconv/chapconv/clipboard"
	"github.com/chapconv/chapconv/color"
	"github.com/chapconv/chapconv/constant"
	"github.com/chapconv/chapconv/container"
	"github.com/chapconv/chapconv/convert"
	"github.com/chapconv/chapconv/grammar"
	"github.com/chapconv/chapconv/icon"
	"github.com/chapconv/chapconv/key"
	"github.com/chapconv/chapconv/log"
	"github.com/chapconv/chapconv/style"
	"github.com/chapconv/chapconv/util"
	"github.com/chapconv/chapconv/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("format", "f", "", "Output format: "+strings.Join(grammar.Names(grammar.Outputs()), ", ")+" (default: pot)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("format", completionOutputFormats))
	lo.Must0(viper.BindPFlag(key.OutputFormat, rootCmd.Flags().Lookup("format")))

	rootCmd.Flags().StringP("output", "o", "", "Output filename (default: original_filename.format[.txt])")
	rootCmd.Flags().BoolP("clipboard", "c", false, "Process the text in the clipboard and put the result back")
	rootCmd.Flags().BoolP("print", "p", false, "Write the result to stdout instead of a file")

	rootCmd.Flags().String("charset", "", "Output file charset (default: utf-8-sig)")
	lo.Must0(viper.BindPFlag(key.OutputCharset, rootCmd.Flags().Lookup("charset")))

	rootCmd.Flags().String("mp4-charset", "", "Chapter charset of mp4 and mkv input (default: utf-8)")
	lo.Must0(viper.BindPFlag(key.InputMP4Charset, rootCmd.Flags().Lookup("mp4-charset")))

	rootCmd.MarkFlagsMutuallyExclusive("output", "print")
}

func completionOutputFormats(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return grammar.Names(grammar.Outputs()), cobra.ShellCompDirectiveNoFileComp
}

// rootCmd converts a chapter file or the clipboard between chapter formats.
var rootCmd = &cobra.Command{
	Use:   constant.Chapconv + " [file]",
	Short: "Convert chapters between youtube, simple, tab, ogm, pot, mediainfo and xml",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - Convert chapters between common chapter formats"),
	Example: strings.Join([]string{
		"  chapconv movie.mkv",
		"  chapconv chapters.txt -f xml",
		"  chapconv -c",
		"  chapconv bookmarks.pbf -o chapters.txt",
	}, "\n"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		format, err := outputFormat()
		handleErr(err)

		options := newOptions(cmd, args)
		options.Format = format
		options.Output = mo.EmptyableToOption(lo.Must(cmd.Flags().GetString("output")))
		options.Print = lo.Must(cmd.Flags().GetBool("print"))

		if needsContainer(options) {
			CheckDependencies(options.Container)
		}

		result, err := convert.Run(cmd.Context(), options)
		handleErr(err)

		if result.Destination == convert.ToStdout {
			return
		}

		fmt.Printf(
			"%s %s %s %s %s %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			util.Quantify(result.Chapters, "chapter", "chapters"),
			style.Fg(color.Purple)(result.Input.String()),
			style.Faint("->"),
			style.Fg(color.Yellow)(result.Output.String()),
			style.Bold(result.Destination),
		)
	},
}

// newOptions collects the options shared by every command that reads chapters.
func newOptions(cmd *cobra.Command, args []string) *convert.Options {
	tools := container.NewMKVToolNix(
		viper.GetString(key.Mkvmerge),
		viper.GetString(key.Mkvextract),
	)
	tools.ChapterCharset = viper.GetString(key.InputMP4Charset)
	tools.Charset = viper.GetString(key.OutputCharset)

	options := &convert.Options{
		FromClipboard:   lo.Must(cmd.Flags().GetBool("clipboard")),
		Charset:         viper.GetString(key.OutputCharset),
		FallbackCharset: viper.GetString(key.InputFallbackCharset),
		CRLF:            viper.GetBool(key.ClipboardCRLF),
		Echo:            viper.GetBool(key.ClipboardEcho),
		Out:             cmd.OutOrStdout(),
		Clipboard:       clipboard.System{},
		Container:       tools,
	}

	if len(args) > 0 {
		options.Input = args[0]
	}
	return options
}

// outputFormat reads the configured output grammar, if any.
func outputFormat() (mo.Option[grammar.Grammar], error) {
	name := viper.GetString(key.OutputFormat)
	if name == "" {
		return mo.None[grammar.Grammar](), nil
	}

	g, err := grammar.ParseOutput(name)
	if err != nil {
		return mo.None[grammar.Grammar](), err
	}
	return mo.Some(g), nil
}

// needsContainer reports whether the MKVToolNix binaries take part in the run.
func needsContainer(options *convert.Options) bool {
	if options.Input != "" && container.Handles(options.Input) {
		return true
	}
	if options.Format.OrEmpty() == grammar.XML {
		return true
	}
	return options.Format.IsAbsent() && strings.EqualFold(filepath.Ext(options.Output.OrEmpty()), ".xml")
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		if log.Enabled() {
			_, _ = fmt.Fprintln(os.Stderr, style.Faint("details in "+where.Logs()))
		}
		os.Exit(1)
	}
}
