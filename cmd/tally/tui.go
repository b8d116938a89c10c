package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/chriscorrea/tally/internal/app"
	"github.com/chriscorrea/tally/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [source]",
	Short: "Start the interactive analyzer",
	Long: `Start an interactive analyzer that recounts the text on every keystroke.

Keys:
  Tab / Shift+Tab  - Switch between letters, words, and sentences
  Ctrl+R           - Reverse the text
  Ctrl+L           - Clear the text
  Esc / Ctrl+C     - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	quiet, _ := cmd.Flags().GetBool("quiet")
	setupLogger(debug)

	var text string
	if len(args) == 1 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		loaded, err := app.LoadText(ctx, args, "", false, quiet)
		if err != nil {
			return fmt.Errorf("failed to load %q: %w", args[0], err)
		}
		if err := tui.CheckFits(loaded); err != nil {
			return fmt.Errorf("%w; run `tally %s` for full counts", err, args[0])
		}
		text = loaded
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if len(args) == 1 && args[0] == "-" {
		// stdin was consumed by the source; read keys from the terminal
		opts = append(opts, tea.WithInputTTY())
	}

	p := tea.NewProgram(tui.New(text), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive analyzer failed: %w", err)
	}
	return nil
}
