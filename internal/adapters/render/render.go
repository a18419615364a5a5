package render

import (
	"errors"
	"fmt"
	"jump-route-service/internal/domain"
	"math"

	"github.com/fogleman/gg"
)

// Canvas defaults match a comfortable desktop viewing size.
const (
	defaultWidth  = 1400
	defaultHeight = 1000
	margin        = 80.0
)

// Options tunes the rendered image. Zero values fall back to defaults.
type Options struct {
	Width  int
	Height int
}

// RoutePNG draws the planned route to a PNG file: every system projected
// from 3D onto the image plane, the path as a polyline in visitation order,
// name labels, and distinct start and end markers (the end marker doubles as
// the loop marker when the route closes on itself).
func RoutePNG(plan *domain.RouteResult, path string, opts Options) error {
	if plan == nil || len(plan.Systems) == 0 {
		return errors.New("render route: empty plan")
	}

	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	height := opts.Height
	if height <= 0 {
		height = defaultHeight
	}

	pts := fitToCanvas(plan.Systems, float64(width), float64(height))

	dc := gg.NewContext(width, height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	// Path polyline.
	dc.SetRGB(0, 1, 1)
	dc.SetLineWidth(2.5)
	for i := 0; i+1 < len(pts); i++ {
		dc.DrawLine(pts[i].x, pts[i].y, pts[i+1].x, pts[i+1].y)
	}
	dc.Stroke()

	// System markers.
	for _, p := range pts {
		dc.SetRGB(1, 1, 1)
		dc.DrawCircle(p.x, p.y, 5)
		dc.Fill()
		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(1)
		dc.DrawCircle(p.x, p.y, 5)
		dc.Stroke()
	}

	// Labels.
	dc.SetRGB(1, 1, 0)
	for i, p := range pts {
		dc.DrawStringAnchored(plan.Systems[i].Name, p.x, p.y-12, 0.5, 0.5)
	}

	// Start marker, then end/loop marker on top.
	start := pts[0]
	dc.SetRGB(0, 1, 0)
	dc.DrawCircle(start.x, start.y, 9)
	dc.Fill()

	end := pts[len(pts)-1]
	looped := plan.Systems[0] == plan.Systems[len(plan.Systems)-1]
	if looped {
		dc.SetRGB(1, 0, 0)
	} else {
		dc.SetRGB(1, 0.65, 0)
	}
	dc.DrawCircle(end.x, end.y, 7)
	dc.Fill()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render route: save %q: %w", path, err)
	}
	return nil
}

type canvasPoint struct{ x, y float64 }

// project maps a 3D position onto the drawing plane with a fixed isometric
// view: equal weight to x and y, z mapped to vertical drop.
func project(s *domain.System) (u, v float64) {
	u = (s.X - s.Y) * math.Cos(math.Pi/6)
	v = (s.X+s.Y)*math.Sin(math.Pi/6) - s.Z
	return u, v
}

// fitToCanvas projects every system and scales the result to the canvas with
// a uniform margin, preserving aspect ratio.
func fitToCanvas(systems []*domain.System, width, height float64) []canvasPoint {
	minU, minV := math.Inf(1), math.Inf(1)
	maxU, maxV := math.Inf(-1), math.Inf(-1)

	raw := make([]canvasPoint, len(systems))
	for i, s := range systems {
		u, v := project(s)
		raw[i] = canvasPoint{x: u, y: v}
		minU = math.Min(minU, u)
		maxU = math.Max(maxU, u)
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}

	spanU := maxU - minU
	spanV := maxV - minV
	scale := 1.0
	if spanU > 0 || spanV > 0 {
		scale = math.Min((width-2*margin)/math.Max(spanU, 1e-12), (height-2*margin)/math.Max(spanV, 1e-12))
	}

	// Center the scaled drawing; flip v so larger values render upward.
	offsetX := (width - spanU*scale) / 2
	offsetY := (height - spanV*scale) / 2

	out := make([]canvasPoint, len(raw))
	for i, p := range raw {
		out[i] = canvasPoint{
			x: offsetX + (p.x-minU)*scale,
			y: height - offsetY - (p.y-minV)*scale,
		}
	}
	return out
}
