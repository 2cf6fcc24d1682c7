package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"phonefield/internal/country"
	"phonefield/internal/field"
	"phonefield/internal/tui"
	"phonefield/platform/config"
	"phonefield/platform/logger"
	"phonefield/platform/phone"
	"phonefield/platform/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Env, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer log.Close()

	style := phone.ParseStyle(cfg.RenderStyle)
	registry, err := country.BuiltIn(func(region string) country.FormatFunc {
		return phone.RegionFormatter(region, style)
	})
	if err != nil {
		return fmt.Errorf("build registry: %w", err)
	}

	state, err := field.NewState(field.Config{
		Label:       cfg.FieldLabel,
		Placeholder: cfg.Placeholder,
		Optional:    cfg.Optional,
		ErrorText:   cfg.ErrorText,
	}, registry, validator.New())
	if err != nil {
		return fmt.Errorf("build field: %w", err)
	}

	log.Info("starting",
		"env", cfg.Env,
		"countries", registry.Len(),
		"render_style", cfg.RenderStyle,
	)

	program := tea.NewProgram(tui.NewApp(state, log), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}

	if display, ok := state.DisplayValue(); ok {
		fmt.Printf("%s: %s\n", state.Active().Name, display)
	}
	return nil
}
