package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/kinemath/anim"
	"github.com/lox/kinemath/internal/tui"
)

type PreviewCmd struct {
	Track   string `arg:"" optional:"" default:"pop" help:"Track name from the config"`
	Reverse bool   `help:"Play the track backwards"`
	Repeat  bool   `help:"Loop the track"`
}

func (c *PreviewCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	track, opts, err := resolveTrack(cfg, c.Track, c.Reverse, c.Repeat)
	if err != nil {
		return err
	}

	// log lines would tear the alt screen
	uiLogger := log.NewWithOptions(io.Discard, log.Options{})
	if g.Debug {
		uiLogger = logger
	}

	player, err := anim.NewPlayer(track, opts, anim.WithLogger(uiLogger))
	if err != nil {
		return err
	}

	model := tui.NewPreviewModel(c.Track, track, player, uiLogger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(g.out()))
	_, err = program.Run()
	return err
}
