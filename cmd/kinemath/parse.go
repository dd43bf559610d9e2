package main

import (
	"fmt"
	"math"

	"github.com/lox/kinemath/geom"
)

func checkFinite(what string, v []float64) error {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%s: %v is not a finite number", what, x)
		}
	}
	return nil
}

// parseRect reads x,y,w,h.
func parseRect(what string, v []float64) (geom.Rect, error) {
	if len(v) != 4 {
		return geom.Rect{}, fmt.Errorf("%s: want x,y,w,h, got %d values", what, len(v))
	}
	if err := checkFinite(what, v); err != nil {
		return geom.Rect{}, err
	}
	if v[2] < 0 || v[3] < 0 {
		return geom.Rect{}, fmt.Errorf("%s: width and height must not be negative", what)
	}
	return geom.R(v[0], v[1], v[2], v[3]), nil
}

// parsePoint reads x,y.
func parsePoint(what string, v []float64) (geom.Point, error) {
	if len(v) != 2 {
		return geom.Point{}, fmt.Errorf("%s: want x,y, got %d values", what, len(v))
	}
	if err := checkFinite(what, v); err != nil {
		return geom.Point{}, err
	}
	return geom.Pt(v[0], v[1]), nil
}

// parseSize reads w,h. A single value pads both axes.
func parseSize(what string, v []float64) (geom.Size, error) {
	switch len(v) {
	case 0:
		return geom.Size{}, nil
	case 1:
		v = []float64{v[0], v[0]}
	case 2:
	default:
		return geom.Size{}, fmt.Errorf("%s: want w,h, got %d values", what, len(v))
	}
	if err := checkFinite(what, v); err != nil {
		return geom.Size{}, err
	}
	if v[0] < 0 || v[1] < 0 {
		return geom.Size{}, fmt.Errorf("%s: padding must not be negative", what)
	}
	return geom.Size{W: v[0], H: v[1]}, nil
}

// parseSegment reads x1,y1,x2,y2.
func parseSegment(what string, v []float64) (geom.Segment, error) {
	if len(v) != 4 {
		return geom.Segment{}, fmt.Errorf("%s: want x1,y1,x2,y2, got %d values", what, len(v))
	}
	if err := checkFinite(what, v); err != nil {
		return geom.Segment{}, err
	}
	return geom.Seg(geom.Pt(v[0], v[1]), geom.Pt(v[2], v[3])), nil
}
