package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/kinemath/anim"
	"github.com/lox/kinemath/geom"
	"github.com/lox/kinemath/internal/config"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func testGlobals(t *testing.T) (*Globals, *bytes.Buffer) {
	t.Helper()
	t.Setenv(config.EnvSeed, "")
	t.Setenv(config.EnvLogLevel, "")
	var out bytes.Buffer
	return &Globals{
		Config: filepath.Join(t.TempDir(), "missing.hcl"),
		Stdout: &out,
		Stderr: io.Discard,
	}, &out
}

func TestParseRect(t *testing.T) {
	tests := []struct {
		name    string
		input   []float64
		want    geom.Rect
		wantErr bool
	}{
		{"valid", []float64{1, 2, 3, 4}, geom.R(1, 2, 3, 4), false},
		{"too few", []float64{1, 2, 3}, geom.Rect{}, true},
		{"negative width", []float64{0, 0, -1, 4}, geom.Rect{}, true},
		{"not finite", []float64{math.NaN(), 0, 1, 1}, geom.Rect{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRect("--rect", tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSize(t *testing.T) {
	s, err := parseSize("--padding", nil)
	require.NoError(t, err)
	assert.Equal(t, geom.Size{}, s)

	s, err = parseSize("--padding", []float64{3})
	require.NoError(t, err)
	assert.Equal(t, geom.Size{W: 3, H: 3}, s)

	s, err = parseSize("--padding", []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, geom.Size{W: 3, H: 4}, s)

	_, err = parseSize("--padding", []float64{1, 2, 3})
	assert.Error(t, err)
	_, err = parseSize("--padding", []float64{-1})
	assert.Error(t, err)
}

func TestParsePointAndSegment(t *testing.T) {
	p, err := parsePoint("--point", []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(1, 2), p)
	_, err = parsePoint("--point", []float64{1})
	assert.Error(t, err)

	s, err := parseSegment("--a", []float64{0, 0, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, geom.Seg(geom.Pt(0, 0), geom.Pt(2, 2)), s)
	_, err = parseSegment("--a", []float64{0, 0, 2})
	assert.Error(t, err)
}

func TestFramesFor(t *testing.T) {
	pop := anim.Track{Values: []float64{0, 1.05, 0.98, 1}, Durations: []float64{0.16, 0.08, 0.08}}
	// 0.32s is 19.2 frames, so frame 20 is the first completed one
	assert.Equal(t, 21, framesFor(pop, anim.Options{}))
	assert.Equal(t, 40, framesFor(pop, anim.Options{Repeat: true}))
}

func TestSampleRectToStdout(t *testing.T) {
	g, out := testGlobals(t)
	seed := int64(5)
	cmd := SampleRectCmd{
		SampleFlags: SampleFlags{Count: 10, Workers: 2, Seed: &seed},
		Rect:        []float64{0, 0, 10, 10},
	}
	require.NoError(t, cmd.Run(g))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "x,y", lines[0])

	// same seed, same points
	g2, out2 := testGlobals(t)
	require.NoError(t, cmd.Run(g2))
	assert.Equal(t, out.String(), out2.String())
}

func TestSampleAnnulusToFile(t *testing.T) {
	g, out := testGlobals(t)
	path := filepath.Join(t.TempDir(), "points.csv")
	cmd := SampleAnnulusCmd{
		SampleFlags: SampleFlags{Count: 50, Workers: 3, Out: path},
		Outer:       []float64{0, 0, 320, 240},
		Inner:       []float64{80, 60, 160, 120},
	}
	require.NoError(t, cmd.Run(g))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 51)
}

func TestSampleAnnulusRejectsBadRect(t *testing.T) {
	g, _ := testGlobals(t)
	cmd := SampleAnnulusCmd{
		SampleFlags: SampleFlags{Count: 5},
		Outer:       []float64{0, 0, 320},
		Inner:       []float64{80, 60, 160, 120},
	}
	assert.ErrorContains(t, cmd.Run(g), "--outer")
}

func TestAnimatePrintsTable(t *testing.T) {
	g, out := testGlobals(t)
	cmd := AnimateCmd{Track: "pop"}
	require.NoError(t, cmd.Run(g))

	text := out.String()
	assert.Contains(t, text, "4 keyframes, 0.320s")
	assert.Contains(t, text, "1.0000")
	assert.Contains(t, text, "done")

	lines := strings.Split(strings.TrimSpace(text), "\n")
	// title, blank, header, 21 frames
	assert.Len(t, lines, 24)
}

func TestAnimateFollow(t *testing.T) {
	pop := anim.Track{Values: []float64{0, 1.05, 0.98, 1}, Durations: []float64{0.16, 0.08, 0.08}}
	tests := []struct {
		name  string
		opts  anim.Options
		limit int
		ticks int
	}{
		// the track completes on frame 20, the last of 21 rows
		{"runs to completion", anim.Options{Default: 1}, 21, 20},
		{"stops at frame limit", anim.Options{Repeat: true}, 6, 5},
		{"single frame", anim.Options{}, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			mClock := quartz.NewMock(t)
			player, err := anim.NewPlayer(pop, tt.opts, anim.WithClock(mClock))
			require.NoError(t, err)

			var out bytes.Buffer
			pb := followTrack(ctx, &out, "pop", player, tt.limit)
			for i := 0; i < tt.ticks; i++ {
				mClock.Advance(anim.FrameDuration).MustWait(ctx)
			}
			require.NoError(t, waitFollow(pb))

			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			// title, blank, header, one row per frame
			require.Len(t, lines, 3+tt.limit)
			assert.Contains(t, lines[0], "4 keyframes, 0.320s")
			assert.Equal(t, "0", strings.Fields(lines[3])[0])
			assert.Contains(t, lines[3], "in-segment")
			assert.Equal(t, fmt.Sprint(tt.limit-1), strings.Fields(lines[len(lines)-1])[0])
		})
	}
}

func TestAnimateFollowMarksCompletion(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pop := anim.Track{Values: []float64{0, 1.05, 0.98, 1}, Durations: []float64{0.16, 0.08, 0.08}}
	mClock := quartz.NewMock(t)
	player, err := anim.NewPlayer(pop, anim.Options{Default: 1}, anim.WithClock(mClock))
	require.NoError(t, err)

	var out bytes.Buffer
	pb := followTrack(ctx, &out, "pop", player, 21)
	for i := 0; i < 20; i++ {
		mClock.Advance(anim.FrameDuration).MustWait(ctx)
	}
	require.NoError(t, waitFollow(pb))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	last := lines[len(lines)-1]
	assert.Contains(t, last, " 1.0000")
	assert.Contains(t, last, "done")
	assert.NotContains(t, lines[len(lines)-2], "done")
}

func TestAnimateUnknownTrack(t *testing.T) {
	g, _ := testGlobals(t)
	cmd := AnimateCmd{Track: "nope"}
	err := cmd.Run(g)
	assert.ErrorContains(t, err, `unknown track "nope"`)
	assert.ErrorContains(t, err, "pop")
}

func TestAnimateFromConfigFile(t *testing.T) {
	g, out := testGlobals(t)
	g.Config = filepath.Join(t.TempDir(), "kinemath.hcl")
	require.NoError(t, os.WriteFile(g.Config, []byte(`
track "blink" {
  values    = [1, 0]
  durations = [0.05]
}
`), 0o644))

	cmd := AnimateCmd{Track: "blink", Frames: 5}
	require.NoError(t, cmd.Run(g))
	assert.Contains(t, out.String(), "blink")
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 8)
}

func TestIntersect(t *testing.T) {
	g, out := testGlobals(t)
	cmd := IntersectCmd{
		A:     []float64{0, 0, 2, 2},
		B:     []float64{0, 2, 2, 0},
		Point: []float64{0, 2},
	}
	require.NoError(t, cmd.Run(g))
	text := out.String()
	assert.Contains(t, text, "(1, 1)")
	assert.Contains(t, text, "45.0°")
	assert.Contains(t, text, "to segment A")

	out.Reset()
	cmd = IntersectCmd{A: []float64{0, 0, 1, 0}, B: []float64{0, 1, 1, 1}}
	require.NoError(t, cmd.Run(g))
	assert.Contains(t, out.String(), "No intersection")
}

func TestPipe(t *testing.T) {
	g, out := testGlobals(t)
	cmd := PipeCmd{
		From:     []float64{0, 0, 10, 10},
		To:       []float64{25, 0, 10, 10},
		Diameter: 4,
	}
	require.NoError(t, cmd.Run(g))
	text := out.String()
	assert.Contains(t, text, "right")
	assert.Contains(t, text, "x=10 y=3 w=15 h=4")
	assert.Contains(t, text, "edge 3")
}
