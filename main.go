package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/LFroesch/burrow/internal/browser"
	"github.com/LFroesch/burrow/internal/config"
	"github.com/LFroesch/burrow/internal/logger"
)

type rootOptions struct {
	showHidden bool
	editor     string
	debug      bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "burrow [dir]",
		Short:        "A keyboard-driven terminal file browser",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			startDir := "."
			if len(args) == 1 {
				startDir = args[0]
			}
			cfg := loadConfig(cmd, opts)
			return run(startDir, cfg)
		},
	}

	rootCmd.Flags().BoolVarP(&opts.showHidden, "hidden", "a", false, "show hidden entries")
	rootCmd.Flags().StringVarP(&opts.editor, "editor", "e", "", "editor used to open files")
	rootCmd.Flags().BoolVar(&opts.debug, "debug", false, "log debug messages")

	return rootCmd
}

// loadConfig reads the config file and applies the flags the user set
func loadConfig(cmd *cobra.Command, opts *rootOptions) *config.Config {
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	}
	logger.SetDebug(opts.debug)

	cfg := config.Load()
	if cmd.Flags().Changed("hidden") {
		cfg.ShowHidden = opts.showHidden
	}
	if opts.editor != "" {
		cfg.Editor = opts.editor
	}
	return cfg
}

func run(startDir string, cfg *config.Config) error {
	defer logger.Close()

	st, err := browser.New(startDir, browser.Options{
		ShowHidden:   cfg.ShowHidden,
		HiddenPrefix: cfg.HiddenPrefix,
	})
	if err != nil {
		return err
	}
	logger.Info("starting in %s", st.StartDir)

	p := tea.NewProgram(newModel(st, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
