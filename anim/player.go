package anim

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// errFinished stops the frame ticker once a non-repeating track completes.
var errFinished = errors.New("anim: playback finished")

// Frame is one evaluation of a playing track.
type Frame struct {
	Index   int
	Elapsed time.Duration
	Result
}

// Player plays a Track against a clock.
type Player struct {
	track  Track
	opts   Options
	clock  quartz.Clock
	logger *log.Logger
	start  time.Time
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithClock sets the clock the player reads. Tests pass quartz.NewMock.
func WithClock(clock quartz.Clock) PlayerOption {
	return func(p *Player) { p.clock = clock }
}

// WithLogger sets the player's logger.
func WithLogger(logger *log.Logger) PlayerOption {
	return func(p *Player) { p.logger = logger }
}

// NewPlayer returns a player for track. The track is validated up front so
// playback never silently falls back to opts.Default.
func NewPlayer(track Track, opts Options, options ...PlayerOption) (*Player, error) {
	if err := track.Validate(); err != nil {
		return nil, err
	}
	if opts.Step <= 0 {
		opts.Step = FrameTime
	}
	p := &Player{
		track:  track,
		opts:   opts,
		clock:  quartz.NewReal(),
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, o := range options {
		o(p)
	}
	p.logger = p.logger.WithPrefix("anim")
	p.start = p.clock.Now()
	return p, nil
}

// Track returns the track being played.
func (p *Player) Track() Track {
	return p.track
}

// Restart rewinds playback to the current clock time.
func (p *Player) Restart() {
	p.start = p.clock.Now()
	p.logger.Debug("restarted", "total", p.track.Total(), "repeat", p.opts.Repeat, "reverse", p.opts.Reverse)
}

// Elapsed returns the time since the last restart.
func (p *Player) Elapsed() time.Duration {
	return p.clock.Since(p.start)
}

// Sample evaluates the track at the clock's current time.
func (p *Player) Sample() Frame {
	elapsed := p.Elapsed()
	return Frame{
		Index:   int(elapsed / FrameDuration),
		Elapsed: elapsed,
		Result:  EvaluateState(p.track, elapsed.Seconds(), p.opts),
	}
}

// frame evaluates the track at a fixed frame index.
func (p *Player) frame(index int) Frame {
	return Frame{
		Index:   index,
		Elapsed: time.Duration(index) * FrameDuration,
		Result:  EvaluateState(p.track, FrameElapsed(index), p.opts),
	}
}

// Start restarts the player and calls onFrame once per FrameDuration tick
// with frames 1, 2, 3... Frames advance by index, so a late tick does not
// skip keyframes. A non-repeating track stops after its completed frame.
// Playback also stops when onFrame returns an error or ctx is done.
//
// The animate command's --follow mode prints rows from onFrame. The preview
// UI polls Sample instead, since bubbletea owns its own tick loop.
func (p *Player) Start(ctx context.Context, onFrame func(Frame) error) *Playback {
	ctx, cancel := context.WithCancel(ctx)
	p.Restart()

	index := 0
	waiter := p.clock.TickerFunc(ctx, FrameDuration, func() error {
		index++
		f := p.frame(index)
		if err := onFrame(f); err != nil {
			return err
		}
		if f.Completed {
			if !p.opts.Repeat {
				p.logger.Debug("completed", "frame", index)
				return errFinished
			}
			p.logger.Debug("cycle", "frame", index, "cycle", f.Cycle)
		}
		return nil
	}, "anim", "frame")

	return &Playback{waiter: waiter, cancel: cancel}
}

// Playback is a running Player.Start.
type Playback struct {
	waiter quartz.Waiter
	cancel context.CancelFunc
}

// Stop ends playback. Wait then returns context.Canceled.
func (pb *Playback) Stop() {
	pb.cancel()
}

// Wait blocks until playback ends. It returns nil when a non-repeating
// track ran to completion, otherwise the error that stopped it.
func (pb *Playback) Wait() error {
	err := pb.waiter.Wait()
	pb.cancel()
	if errors.Is(err, errFinished) {
		return nil
	}
	return err
}
