// Package main is the entry point for the tabtodo application.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tabtodo/internal/config"
	"github.com/hy4ri/tabtodo/internal/logging"
	"github.com/hy4ri/tabtodo/internal/todo"
	"github.com/hy4ri/tabtodo/internal/tui"
)

const version = "0.1.0"

const helpText = `tabtodo - Tabbed task lists (Home / Work / Personal) in the terminal

USAGE:
    tabtodo [OPTIONS]

OPTIONS:
    -h, --help        Show this help message
    -v, --version     Show version information
    --init            Create a template config file
    --tab NAME        Start on the given tab (home, work, personal)
    --config PATH     Use the config file at PATH

CONFIGURATION:
    Config file: ~/.config/tabtodo/config.yaml
    (or $XDG_CONFIG_HOME/tabtodo/config.yaml, or $TABTODO_CONFIG)

KEYBINDINGS:
    Input:
        Enter       Add task to the current tab
        Tab/Esc     Move focus to the task list
        Ctrl+n/p    Next/previous tab

    Task list:
        j/k         Move down/up
        gg/G        Go to top/bottom
        1/2/3       Home / Work / Personal
        h/l         Previous/next tab
        x, Space    Toggle completed
        D           Remove completed tasks
        y           Copy task name
        a           Type a new task
        ?           Show help
        q           Quit

Tasks live in memory only and are gone when the program exits.
`

const configTemplate = `# tabtodo configuration
# Location: ~/.config/tabtodo/config.yaml

ui:
  # Tab shown at startup: home, work or personal
  start_tab: home
  # Show key hints in the status bar
  show_hints: true
  # Enable mouse support (click tabs, buttons and tasks)
  mouse: true

theme:
  # Background color per tab (#RRGGBB or ANSI 0-255)
  home: "#8B0000"
  work: "#006400"
  personal: "#00008B"

notifications:
  # Desktop notification after removing completed tasks
  enabled: false

log:
  # trace, debug, info, warn, error
  level: info
  # Defaults to ~/.config/tabtodo/tabtodo.log
  # file: ""
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		startTab    string
		configPath  string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&startTab, "tab", "", "Start on the given tab")
	flag.StringVar(&configPath, "config", "", "Path to the config file")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	// Handle flags
	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("tabtodo version %s\n", version)
		return nil
	}

	if configPath != "" {
		if err := os.Setenv(config.EnvConfigPath, configPath); err != nil {
			return fmt.Errorf("failed to set config path: %w", err)
		}
	}

	if initConfig {
		return createConfigTemplate()
	}

	return runApp(startTab)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp(tabFlag string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return fmt.Errorf("failed to resolve log path: %w", err)
	}
	logger, closer, err := logging.Setup(logPath, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closer.Close()

	// --tab overrides the configured start tab
	tab := cfg.StartTab()
	if tabFlag != "" {
		if tab, err = todo.ParseTab(tabFlag); err != nil {
			return fmt.Errorf("invalid --tab: %w", err)
		}
	}

	app := tui.NewApp(cfg, logger, tab)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(app, opts...)

	if _, err := p.Run(); err != nil {
		logger.WithError(err).Error("program exited with error")
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	logger.Info("tabtodo exited")
	return nil
}
