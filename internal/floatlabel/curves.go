package floatlabel

import (
	"math"
	"strings"
)

// Curve maps linear time progress in [0, 1] to eased progress.
type Curve func(t float64) float64

// Linear applies no easing.
func Linear(t float64) float64 {
	return t
}

// Standard CSS curves.
var (
	Ease      = CubicBezier(0.25, 0.1, 0.25, 1.0)
	EaseIn    = CubicBezier(0.42, 0.0, 1.0, 1.0)
	EaseOut   = CubicBezier(0.0, 0.0, 0.58, 1.0)
	EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)
)

var curvesByName = map[string]Curve{
	"linear":      Linear,
	"ease":        Ease,
	"ease-in":     EaseIn,
	"ease-out":    EaseOut,
	"ease-in-out": EaseInOut,
}

// CurveByName resolves a config name such as "ease-in-out".
// The empty name resolves to nil (linear).
func CurveByName(name string) (Curve, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return nil, true
	}
	n = strings.ReplaceAll(n, "_", "-")
	c, ok := curvesByName[n]
	return c, ok
}

// CubicBezier returns a curve equivalent to CSS cubic-bezier(x1, y1, x2, y2).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	b := newUnitBezier(x1, y1, x2, y2)
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return b.y(b.solve(t))
	}
}

const bezierEpsilon = 1e-7

// unitBezier holds the polynomial coefficients of a cubic with endpoints (0,0) and
// (1,1), so each axis evaluates as ((a*u + b)*u + c)*u.
type unitBezier struct {
	ax, bx, cx float64
	ay, by, cy float64
}

func newUnitBezier(x1, y1, x2, y2 float64) unitBezier {
	var ub unitBezier
	ub.cx = 3 * x1
	ub.bx = 3*(x2-x1) - ub.cx
	ub.ax = 1 - ub.cx - ub.bx
	ub.cy = 3 * y1
	ub.by = 3*(y2-y1) - ub.cy
	ub.ay = 1 - ub.cy - ub.by
	return ub
}

func (ub unitBezier) x(u float64) float64 { return ((ub.ax*u+ub.bx)*u + ub.cx) * u }
func (ub unitBezier) y(u float64) float64 { return ((ub.ay*u+ub.by)*u + ub.cy) * u }

func (ub unitBezier) dx(u float64) float64 {
	return (3*ub.ax*u+2*ub.bx)*u + ub.cx
}

// solve finds the parameter u whose x equals t.
func (ub unitBezier) solve(t float64) float64 {
	u := t
	for range 8 {
		err := ub.x(u) - t
		if math.Abs(err) < bezierEpsilon {
			return u
		}
		d := ub.dx(u)
		if math.Abs(d) < bezierEpsilon {
			break
		}
		u -= err / d
	}

	// Newton stalled on a flat slope; bisect.
	lo, hi := 0.0, 1.0
	u = t
	for range 24 {
		x := ub.x(u)
		if math.Abs(x-t) < bezierEpsilon {
			break
		}
		if x < t {
			lo = u
		} else {
			hi = u
		}
		u = lo + (hi-lo)/2
	}
	return u
}
