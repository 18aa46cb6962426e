// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/law-makers/scrape/internal/app"
	"github.com/law-makers/scrape/internal/config"
	"github.com/law-makers/scrape/internal/ui"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Extract links, text, tables and metadata from a website",
	Long: `Scrape fetches pages from a single site at a polite pace and extracts
structured data from them.

Every request waits on a per-host rate limit and is followed by a fixed delay
(--delay). Failed requests are reported and skipped, never retried.

Results print as JSON, or are exported with -o to .csv, .json or .yaml.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with ctx. It returns the process exit code.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error("Error: ")+err.Error())
		return 1
	}
	return 0
}

func init() {
	config.RegisterFlags(rootCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) { renderHelp(os.Stdout, cmd, true) })
	rootCmd.SetUsageFunc(func(cmd *cobra.Command) error {
		renderHelp(os.Stderr, cmd, false)
		return nil
	})

	// The application is built lazily so -h and --version never touch config.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd)
		if err != nil {
			return err
		}
		if cfg.JSONLog {
			ui.Disable()
		}

		a, err := app.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		SetApp(cmd, a)

		log.Debug().
			Str("command", cmd.Name()).
			Str("user_agent", cfg.UserAgent).
			Dur("delay", cfg.Delay).
			Msg("Configuration loaded")
		return nil
	}

	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if a := GetAppFromCmd(cmd); a != nil {
			_ = a.Close(cmd.Context())
			SetApp(cmd, nil)
		}
	}
}

// renderHelp prints colorized help. The usage variant omits the long
// description, examples and inherited flags.
func renderHelp(w io.Writer, cmd *cobra.Command, full bool) {
	heading := func(s string) { fmt.Fprintf(w, "\n%s%s%s\n", ui.ColorBold+ui.ColorWhite, s, ui.ColorReset) }

	if full {
		fmt.Fprintf(w, "\n%s%s%s\n", ui.ColorBold+ui.ColorCyan, strings.ToUpper(cmd.Name()), ui.ColorReset)
		if cmd.Short != "" {
			fmt.Fprintln(w, cmd.Short)
		}
		if cmd.Long != "" && cmd.Long != cmd.Short {
			fmt.Fprintf(w, "\n%s\n", wrapText(cmd.Long, 80))
		}
	}

	heading("Usage")
	if cmd.Runnable() {
		fmt.Fprintf(w, "  %s%s%s\n", ui.ColorCyan, cmd.UseLine(), ui.ColorReset)
	}
	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(w, "  %s%s%s %s<command>%s %s[flags]%s\n",
			ui.ColorCyan, cmd.CommandPath(), ui.ColorReset,
			ui.ColorYellow, ui.ColorReset,
			ui.ColorDim, ui.ColorReset)
	}

	if full && cmd.HasExample() {
		heading("Examples")
		for _, line := range strings.Split(cmd.Example, "\n") {
			trimmed := strings.TrimSpace(line)
			switch {
			case trimmed == "":
				fmt.Fprintln(w)
			case strings.HasPrefix(trimmed, "#"):
				fmt.Fprintf(w, "  %s%s%s\n", ui.ColorDim, trimmed, ui.ColorReset)
			default:
				fmt.Fprintf(w, "  %s$ %s%s\n", ui.ColorGreen, trimmed, ui.ColorReset)
			}
		}
	}

	if cmd.HasAvailableSubCommands() {
		heading("Commands")
		var available []*cobra.Command
		width := 0
		for _, c := range cmd.Commands() {
			if c.IsAvailableCommand() && c.Name() != "help" {
				available = append(available, c)
				width = max(width, len(c.Name()))
			}
		}
		for _, c := range available {
			fmt.Fprintf(w, "  %s%-*s%s  %s%s%s\n",
				ui.ColorCyan, width, c.Name(), ui.ColorReset,
				ui.ColorDim, c.Short, ui.ColorReset)
		}
	}

	if cmd.HasAvailableLocalFlags() {
		heading("Flags")
		printFlags(w, cmd.LocalFlags().FlagUsages())
	}
	if full && cmd.HasAvailableInheritedFlags() {
		heading("Global Flags")
		printFlags(w, cmd.InheritedFlags().FlagUsages())
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(w, "\n%sUse \"%s <command> --help\" for more information about a command.%s\n",
			ui.ColorDim, cmd.CommandPath(), ui.ColorReset)
	}
	fmt.Fprintln(w)
}

// printFlags recolors pflag's usage block: flag names green, descriptions dim
func printFlags(w io.Writer, usages string) {
	lines := strings.Split(strings.TrimRight(usages, "\n"), "\n")

	width := 28
	for _, line := range lines {
		if name, _, ok := splitFlagLine(line); ok {
			width = max(width, len(name))
		}
	}

	for _, line := range lines {
		name, desc, ok := splitFlagLine(line)
		switch {
		case ok:
			fmt.Fprintf(w, "  %s%-*s%s  %s%s%s\n", ui.ColorGreen, width, name, ui.ColorReset, ui.ColorDim, desc, ui.ColorReset)
		case strings.TrimSpace(line) != "":
			fmt.Fprintf(w, "%s%s%s%s\n", strings.Repeat(" ", width+4), ui.ColorDim, strings.TrimSpace(line), ui.ColorReset)
		}
	}
}

func splitFlagLine(line string) (name, desc string, ok bool) {
	trimmed := strings.TrimLeft(line, " ")
	if !strings.HasPrefix(trimmed, "-") {
		return "", "", false
	}
	name, desc, _ = strings.Cut(trimmed, "  ")
	return strings.TrimSpace(name), strings.TrimSpace(desc), true
}

// wrapText wraps text at width, keeping paragraphs and list items on their own lines
func wrapText(text string, width int) string {
	var paragraphs []string
	for _, para := range strings.Split(text, "\n\n") {
		var lines []string
		for _, line := range strings.Split(para, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") {
				lines = append(lines, line)
				continue
			}

			var cur strings.Builder
			for _, word := range strings.Fields(line) {
				if cur.Len() > 0 && cur.Len()+1+len(word) > width {
					lines = append(lines, cur.String())
					cur.Reset()
				}
				if cur.Len() > 0 {
					cur.WriteByte(' ')
				}
				cur.WriteString(word)
			}
			if cur.Len() > 0 {
				lines = append(lines, cur.String())
			}
		}
		if len(lines) > 0 {
			paragraphs = append(paragraphs, strings.Join(lines, "\n"))
		}
	}
	return strings.Join(paragraphs, "\n\n")
}
