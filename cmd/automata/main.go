// Command automata renders the example finite-automaton diagram.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/gogpu/gg"

	"github.com/ha1tch/automata-plot/internal/config"
	"github.com/ha1tch/automata-plot/pkg/example"
)

const usage = `automata - render a four-state automaton diagram

Usage:
  automata [options]

Options:
  -o, --output <path>    Output file, .png or .svg (default automata.png)
  --dpi <n>              Output resolution (default 300)
  -c, --config <file>    YAML config file
  -v, --verbose          Debug logging
  -h, --help             Show this help

Examples:
  automata
  automata -o diagram.svg
  automata --dpi 600 -o big.png
`

func main() {
	var (
		output     string
		dpi        float64
		configPath string
		verbose    bool
	)

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		case "--dpi":
			if i+1 < len(args) {
				v, err := strconv.ParseFloat(args[i+1], 64)
				if err != nil || v <= 0 {
					fmt.Fprintf(os.Stderr, "Invalid --dpi value: %s\n", args[i+1])
					os.Exit(1)
				}
				dpi = v
				i++
			}
		case "-c", "--config":
			if i+1 < len(args) {
				configPath = args[i+1]
				i++
			}
		case "-v", "--verbose":
			verbose = true
		case "-h", "--help", "help":
			fmt.Print(usage)
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown option: %s\n", args[i])
			fmt.Print(usage)
			os.Exit(1)
		}
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gg.SetLogger(logger)

	cfg, path, err := loadConfig(configPath)
	if err != nil {
		if config.IsNotFound(err) {
			fmt.Fprintf(os.Stderr, "Config file not found: %s\n", path)
		} else {
			fmt.Fprintf(os.Stderr, "Error loading config %s: %v\n", path, err)
		}
		os.Exit(1)
	}
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}

	if output != "" {
		cfg.Output = output
	}
	if dpi > 0 {
		cfg.Figure.DPI = dpi
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := example.Render(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering %s: %v\n", cfg.Output, err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, string, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}
