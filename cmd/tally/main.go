package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chriscorrea/tally/internal/app"
	"github.com/chriscorrea/tally/internal/counter"
	"github.com/chriscorrea/tally/internal/edit"
)

// buildConfig constructs an app.Config from command flags and arguments
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	// get flag values
	modeName, _ := cmd.Flags().GetString("mode")
	all, _ := cmd.Flags().GetBool("all")
	tokens, _ := cmd.Flags().GetBool("tokens")
	reverseFlag, _ := cmd.Flags().GetBool("reverse")
	clearFlag, _ := cmd.Flags().GetBool("clear")
	textFlag, _ := cmd.Flags().GetBool("text")
	jsonFlag, _ := cmd.Flags().GetBool("json")
	yamlFlag, _ := cmd.Flags().GetBool("yaml")
	tableFlag, _ := cmd.Flags().GetBool("table")
	selector, _ := cmd.Flags().GetString("selector")
	includeAll, _ := cmd.Flags().GetBool("include-all")
	quiet, _ := cmd.Flags().GetBool("quiet")

	mode, err := counter.ParseMode(modeName)
	if err != nil {
		return app.Config{}, err
	}

	// determine edit action
	action := edit.None
	switch {
	case reverseFlag:
		action = edit.ReverseText
	case clearFlag:
		action = edit.ClearText
	}

	// determine output format
	var outputFormat app.OutputFormat
	switch {
	case jsonFlag:
		outputFormat = app.JSON
	case yamlFlag:
		outputFormat = app.YAML
	case tableFlag:
		outputFormat = app.Table
	case textFlag:
		outputFormat = app.Text
	default:
		outputFormat = app.Text // default if no format flag
	}

	sources, err := resolveSources(args)
	if err != nil {
		return app.Config{}, err
	}

	return app.Config{
		Sources:      sources,
		Selector:     selector,
		IncludeAll:   includeAll,
		Mode:         mode,
		All:          all,
		Tokens:       tokens,
		Action:       action,
		OutputFormat: outputFormat,
		Quiet:        quiet,
	}, nil
}

// resolveSources falls back to stdin when no arguments are given
func resolveSources(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("no input: pass a file or URL, or pipe text on stdin")
	}
	return []string{"-"}, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "tally [sources...]",
	Short: "A CLI tool for counting letters, words, sentences, and numbers",
	Long: `Tally counts the letters, words, or sentences in text, along with the digits it contains. Sources may include local files, URLs, or standard input.

Examples:
  tally notes.txt
  tally --mode words --all https://example.com
  echo "Wait... really?!" | tally -m sentences`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		setupLogger(debug)

		// build config from flags and arguments
		config, err := buildConfig(cmd, args)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		// create context with signal handling for graceful shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		result, err := app.Run(ctx, config)
		if err != nil {
			return fmt.Errorf("tally failed: %w", err)
		}

		fmt.Print(result)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringP("mode", "m", "letters", "Primary count: letters, words, or sentences")
	rootCmd.Flags().BoolP("all", "a", false, "Report letters, words, and sentences together")
	rootCmd.Flags().Bool("tokens", false, "Add an LLM token estimate (cl100k_base)")

	// edit actions are mutually exclusive
	rootCmd.Flags().BoolP("reverse", "r", false, "Reverse the text before counting and print it")
	rootCmd.Flags().Bool("clear", false, "Clear the text before counting")
	rootCmd.MarkFlagsMutuallyExclusive("reverse", "clear")

	// output format flags are mutually exclusive
	rootCmd.Flags().Bool("text", false, "Output labelled counts (default)")
	rootCmd.Flags().Bool("json", false, "Output in JSON format")
	rootCmd.Flags().Bool("yaml", false, "Output in YAML format")
	rootCmd.Flags().Bool("table", false, "Output as a table")
	rootCmd.MarkFlagsMutuallyExclusive("text", "json", "yaml", "table")

	// HTML source flags
	rootCmd.Flags().StringP("selector", "s", "", "CSS selector for HTML sources")
	rootCmd.Flags().BoolP("include-all", "i", false, "Count all HTML body text without readability filtering")

	// other flags
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress warnings and progress output")
	rootCmd.PersistentFlags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.PersistentFlags().MarkHidden("debug")

	rootCmd.AddCommand(tuiCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
