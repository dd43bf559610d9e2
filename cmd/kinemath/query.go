package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/lox/kinemath/geom"
)

type IntersectCmd struct {
	A     []float64 `required:"" help:"First segment as x1,y1,x2,y2"`
	B     []float64 `required:"" help:"Second segment as x1,y1,x2,y2"`
	Point []float64 `help:"Also measure the distance from x,y to segment A"`
}

func (c *IntersectCmd) Run(g *Globals) error {
	a, err := parseSegment("--a", c.A)
	if err != nil {
		return err
	}
	b, err := parseSegment("--b", c.B)
	if err != nil {
		return err
	}
	var pt *geom.Point
	if len(c.Point) > 0 {
		p, err := parsePoint("--point", c.Point)
		if err != nil {
			return err
		}
		pt = &p
	}
	return writeIntersection(g.out(), a, b, pt)
}

func writeIntersection(out io.Writer, a, b geom.Segment, pt *geom.Point) error {
	for _, s := range []struct {
		name string
		seg  geom.Segment
	}{{"A", a}, {"B", b}} {
		dir, err := s.seg.Direction()
		if errors.Is(err, geom.ErrDegenerateSegment) {
			fmt.Fprintf(out, "%s %s  length %g  degenerate\n", headerStyle.Render("Segment"), s.name, s.seg.Length())
			continue
		}
		fmt.Fprintf(out, "%s %s  length %g  direction %.4f rad (%.1f°)\n",
			headerStyle.Render("Segment"), s.name, s.seg.Length(), dir, geom.DirectionToDegrees(dir))
	}

	if p, ok := a.Intersect(b); ok {
		fmt.Fprintf(out, "%s (%g, %g)\n", doneStyle.Render("Intersect"), p.X, p.Y)
	} else {
		fmt.Fprintln(out, stateStyle.Render("No intersection"))
	}

	if pt != nil {
		d, closest := geom.PointSegmentDistance(*pt, a.Start, a.End)
		fmt.Fprintf(out, "%s %g to segment A at (%g, %g)\n", headerStyle.Render("Distance"), d, closest.X, closest.Y)
		d, foot := geom.PointLineDistance(*pt, a.Start, a.End)
		fmt.Fprintf(out, "%s %g to line A at (%g, %g)\n", headerStyle.Render("Distance"), d, foot.X, foot.Y)
	}
	return nil
}

type PipeCmd struct {
	From     []float64 `required:"" help:"First room as x,y,w,h"`
	To       []float64 `required:"" help:"Second room as x,y,w,h"`
	Diameter float64   `default:"2" help:"Pipe thickness"`
	Length   float64   `default:"0" help:"Pipe length (0 spans the gap between the rooms)"`
}

func (c *PipeCmd) Run(g *Globals) error {
	from, err := parseRect("--from", c.From)
	if err != nil {
		return err
	}
	to, err := parseRect("--to", c.To)
	if err != nil {
		return err
	}
	_, logger, err := g.load()
	if err != nil {
		return err
	}

	side, err := geom.PipeLayout(from, to)
	if errors.Is(err, geom.ErrAmbiguousPipeLayout) {
		logger.Warn("Rooms share a centre, defaulting to a rightward pipe")
	}
	pipe, _ := geom.PipeRect(from, to, c.Diameter, c.Length)

	out := g.out()
	fmt.Fprintf(out, "%s %s\n", headerStyle.Render("Side"), valueStyle.Render(side.String()))
	fmt.Fprintf(out, "%s x=%g y=%g w=%g h=%g\n", headerStyle.Render("Pipe"),
		pipe.Origin.X, pipe.Origin.Y, pipe.Size.W, pipe.Size.H)
	for i, edge := range geom.LinesFromRect(pipe, geom.Size{}) {
		fmt.Fprintf(out, "  edge %d (%g, %g) -> (%g, %g)\n", i, edge.Start.X, edge.Start.Y, edge.End.X, edge.End.Y)
	}
	return nil
}
