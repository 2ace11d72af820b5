package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kungfusheep/tui"
	"github.com/kungfusheep/tui/internal/logger"
	"github.com/kungfusheep/tui/stylesheet"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	stylesheet string
	logLevel   string
	logFile    string
	humanLogs  bool
	fps        int
	theme      string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pipedemo",
		Short:         "Show a widget tree styled with pipe operations",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.stylesheet, "stylesheet", "s", "", "YAML style sheet applied after the built-in styling")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file; logs are discarded when empty")
	cmd.Flags().BoolVar(&flags.humanLogs, "human-logs", false, "Write console formatted logs instead of JSON")
	cmd.Flags().IntVar(&flags.fps, "fps", 20, "Animation ticks per second")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "Color theme (dark, light, monochrome)")

	return cmd
}

func run(flags *rootFlags) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("pipedemo needs an interactive terminal")
	}
	if flags.fps <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flags.fps)
	}

	var out io.Writer
	if flags.logFile != "" {
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	log, err := logger.New(logger.Options{Level: flags.logLevel, HumanReadable: flags.humanLogs, Writer: out})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	tui.SetLogger(log)

	root, err := buildDemo()
	if err != nil {
		return fmt.Errorf("build demo: %w", err)
	}
	if flags.theme != "" {
		theme, ok := tui.Themes[flags.theme]
		if !ok {
			return fmt.Errorf("unknown theme %q", flags.theme)
		}
		if err := applyTheme(root, theme); err != nil {
			return fmt.Errorf("apply theme: %w", err)
		}
	}
	if flags.stylesheet != "" {
		sheet, err := stylesheet.Load(flags.stylesheet)
		if err != nil {
			return err
		}
		if err := sheet.Apply(root); err != nil {
			return err
		}
	}

	opts := []tui.AppOption{tui.WithTickInterval(time.Second / time.Duration(flags.fps))}
	if size, err := tui.TerminalSize(int(os.Stdout.Fd())); err == nil {
		opts = append(opts, tui.WithSize(size.Width, size.Height))
	}
	app := tui.NewApp(root, opts...)

	_, err = tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
