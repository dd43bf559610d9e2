package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/kinemath/anim"
	"github.com/lox/kinemath/internal/config"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	doneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	stateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

// maxFrames caps the table for very long tracks.
const maxFrames = 100_000

// errFrameLimit stops a followed track once the requested frames are printed.
var errFrameLimit = errors.New("frame limit reached")

type AnimateCmd struct {
	Track   string   `arg:"" optional:"" default:"pop" help:"Track name from the config"`
	Frames  int      `short:"n" default:"0" help:"Frames to evaluate (0 = until done, or two cycles when repeating)"`
	Reverse bool     `help:"Play the track backwards"`
	Repeat  bool     `help:"Loop the track"`
	Default *float64 `help:"Value once the track has finished"`
	Follow  bool     `short:"f" help:"Play the track in real time, one row per frame"`
}

func (c *AnimateCmd) Run(g *Globals) error {
	cfg, logger, err := g.load()
	if err != nil {
		return err
	}
	track, opts, err := resolveTrack(cfg, c.Track, c.Reverse, c.Repeat)
	if err != nil {
		return err
	}
	if c.Default != nil {
		opts.Default = *c.Default
	}

	frames := c.Frames
	if frames <= 0 {
		frames = framesFor(track, opts)
	}
	if frames > maxFrames {
		logger.Warn("Capping frame count", "requested", frames, "max", maxFrames)
		frames = maxFrames
	}
	logger.Debug("Animating", "track", c.Track, "frames", frames, "total", track.Total(),
		"reverse", opts.Reverse, "repeat", opts.Repeat)

	if !c.Follow {
		return printFrames(g.out(), c.Track, track, opts, frames)
	}

	player, err := anim.NewPlayer(track, opts, anim.WithLogger(logger))
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = waitFollow(followTrack(ctx, g.out(), c.Track, player, frames))
	if ctx.Err() != nil {
		logger.Debug("Interrupted")
		return nil
	}
	return err
}

// followTrack prints frame 0 and then one row per player tick until frames
// rows are out, the track completes or ctx is done. It returns nil when
// there is nothing left to play.
func followTrack(ctx context.Context, out io.Writer, name string, player *anim.Player, frames int) *anim.Playback {
	printTitle(out, name, player.Track())
	fmt.Fprintf(out, "%s  %s  %s  %s\n",
		headerStyle.Render(fmt.Sprintf("%5s", "Frame")),
		headerStyle.Render(fmt.Sprintf("%7s", "Time")),
		headerStyle.Render(fmt.Sprintf("%7s", "Value")),
		headerStyle.Render("State"))

	row := func(f anim.Frame) {
		state := stateStyle.Render(f.State.String())
		if f.Completed {
			state += " " + doneStyle.Render("done")
		}
		fmt.Fprintf(out, "%5d  %7.4f  %s  %s\n",
			f.Index, anim.FrameElapsed(f.Index), valueStyle.Render(fmt.Sprintf("%7.4f", f.Value)), state)
	}

	row(player.Sample())
	if frames <= 1 {
		return nil
	}
	return player.Start(ctx, func(f anim.Frame) error {
		row(f)
		if f.Index >= frames-1 {
			return errFrameLimit
		}
		return nil
	})
}

// waitFollow waits for a followed track, treating the frame limit as success.
func waitFollow(pb *anim.Playback) error {
	if pb == nil {
		return nil
	}
	if err := pb.Wait(); !errors.Is(err, errFrameLimit) {
		return err
	}
	return nil
}

// framesFor returns enough frames to show a track finish: up to and
// including the completed frame, or two full cycles when repeating.
func framesFor(track anim.Track, opts anim.Options) int {
	total := track.Total()
	if opts.Repeat {
		total *= 2
	}
	return int(math.Ceil(total*anim.FrameRate)) + 1
}

func resolveTrack(cfg *config.Config, name string, reverse, repeat bool) (anim.Track, anim.Options, error) {
	tc := cfg.GetTrackByName(name)
	if tc == nil {
		return anim.Track{}, anim.Options{}, fmt.Errorf("unknown track %q (configured: %s)",
			name, strings.Join(cfg.TrackNames(), ", "))
	}
	opts := tc.Options()
	opts.Reverse = opts.Reverse || reverse
	opts.Repeat = opts.Repeat || repeat
	return tc.Track(), opts, nil
}

func printTitle(out io.Writer, name string, track anim.Track) {
	fmt.Fprintf(out, "%s %s  %d keyframes, %.3fs\n\n",
		headerStyle.Render("Track"), valueStyle.Render(name), len(track.Values), track.Total())
}

func printFrames(out io.Writer, name string, track anim.Track, opts anim.Options, frames int) error {
	printTitle(out, name, track)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, headerStyle.Render("Frame")+"\t"+
		headerStyle.Render("Time")+"\t"+
		headerStyle.Render("Value")+"\t"+
		headerStyle.Render("State")+"\t"+
		headerStyle.Render("Segment")+"\t")

	for i := 0; i < frames; i++ {
		r := anim.EvaluateState(track, anim.FrameElapsed(i), opts)
		segment := "-"
		if r.Segment >= 0 {
			segment = fmt.Sprint(r.Segment)
		}
		state := stateStyle.Render(r.State.String())
		if r.Completed {
			state += " " + doneStyle.Render("done")
		}
		fmt.Fprintf(w, "%d\t%.4f\t%s\t%s\t%s\t\n",
			i, anim.FrameElapsed(i), valueStyle.Render(fmt.Sprintf("%.4f", r.Value)), state, segment)
	}
	return w.Flush()
}
