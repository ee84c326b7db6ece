package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"floatlabel/internal/config"
	"floatlabel/internal/trace"
	"floatlabel/internal/ui"
)

// options holds the parsed CLI configuration.
type options struct {
	configPath string
	debugLog   string
	duration   time.Duration
	durationOn bool // -duration was given, even as 0s
	easing     string
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "form config file (.yaml, .yml or .toml)")
	flag.StringVar(&opts.debugLog, "debug", "", "write logs to this file")
	flag.DurationVar(&opts.duration, "duration", 0, "label animation duration (overrides config)")
	flag.StringVar(&opts.easing, "easing", "", "easing curve: linear, ease, ease-in, ease-out, ease-in-out")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: floatlabel [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Shows a form of floating-label inputs and prints the submitted values as JSON.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "duration" {
			opts.durationOn = true
		}
	})
	return opts
}

func loadConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if opts.durationOn {
		cfg.AnimationDuration = opts.duration.String()
	}
	if opts.easing != "" {
		cfg.Easing = opts.easing
	}
	return cfg, nil
}

func run(opts options) error {
	// The TUI owns the terminal; logs go to a file or nowhere.
	if opts.debugLog != "" {
		f, err := tea.LogToFile(opts.debugLog, "floatlabel")
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	ctx := context.Background()
	tp, err := trace.NewProvider(ctx)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	tp.Install()
	defer func() {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	form, err := ui.NewFormModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(form.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}

	if form.Submitted == nil {
		return nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(form.Submitted)
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "floatlabel: %v\n", err)
		os.Exit(1)
	}
}
