package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/kinemath/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config  string `short:"c" default:"kinemath.hcl" type:"path" help:"HCL configuration file (optional)"`
	Debug   bool   `help:"Enable debug logging"`
	NoColor bool   `name:"no-color" help:"Disable coloured output"`

	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

type CLI struct {
	Globals

	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Sample    SampleCmd        `cmd:"" help:"Sample random points in a rect or rect annulus"`
	Animate   AnimateCmd       `cmd:"" help:"Evaluate a keyframe track frame by frame"`
	Preview   PreviewCmd       `cmd:"" help:"Play a keyframe track live in the terminal"`
	Intersect IntersectCmd     `cmd:"" help:"Intersect two segments"`
	Pipe      PipeCmd          `cmd:"" help:"Compute the pipe rect joining two rooms"`
}

func main() {
	var cli CLI
	cli.Stdout = os.Stdout
	cli.Stderr = os.Stderr

	ctx := kong.Parse(&cli,
		kong.Name("kinemath"),
		kong.Description("Geometry, seeded randomness and keyframe animation for 2D games"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// load reads the configuration and builds the logger it describes.
func (g *Globals) load() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config %s: %w", g.Config, err)
	}

	level := cfg.Level()
	if g.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(g.errWriter(), log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "kinemath",
	})
	logger.Debug("loaded config", "path", g.Config, "tracks", cfg.TrackNames(), "seed", cfg.RNG.Seed)
	return cfg, logger, nil
}

func (g *Globals) out() io.Writer {
	if g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

func (g *Globals) errWriter() io.Writer {
	if g.Stderr == nil {
		return os.Stderr
	}
	return g.Stderr
}
