package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/henri123lemoine/rhymer/internal/app"
	"github.com/henri123lemoine/rhymer/internal/config"
	"github.com/henri123lemoine/rhymer/internal/datamuse"
	"github.com/henri123lemoine/rhymer/internal/debug"
	"github.com/henri123lemoine/rhymer/internal/ui"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", config.ConfigPath(), "path to config file")
	initConfig := flag.Bool("init-config", false, "write a default config file and exit")
	debugPath := flag.String("debug", "", "write a debug log to this file (\"-\" for the default location)")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	if *initConfig {
		if err := config.CreateDefaultConfigFile(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *configPath)
		return
	}

	// Load configuration
	cfg, err := config.LoadFromPath(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	for _, w := range cfg.Validate() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	if *debugPath != "" {
		path := *debugPath
		if path == "-" {
			path = debug.DefaultPath()
		}
		if err := debug.Enable(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error enabling debug log: %v\n", err)
			os.Exit(1)
		}
		defer debug.Close()
	}

	ui.ApplyTheme(cfg.UI.Theme)

	// Words given on the command line are looked up for rhymes on start
	word := strings.Join(flag.Args(), " ")

	client := datamuse.NewClient(cfg.API.BaseURL)
	debug.Log("Using endpoint %s", client.BaseURL())

	model := app.New(cfg, client, word)
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The saved list lives only for the session; print it on the way out
	if m, ok := finalModel.(app.Model); ok && m.Saved().Len() > 0 {
		fmt.Printf("Saved: %s\n", m.Saved().String())
	}
}
