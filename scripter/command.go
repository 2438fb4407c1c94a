package scripter

import (
	"math"
	"strconv"

	polyclip "github.com/akavel/polyclip-go"
)

/*
AutoCAD script command vocabulary.

Each drawing directive is kept as a structured record; the textual
command syntax is produced only at the sink boundary by Script().
prec is the number of decimal places used for coordinates.
*/
type Command interface {
	// Script returns the newline-terminated command record
	Script(prec int) string

	// Extent returns the axis-aligned box covered by the command,
	// false for commands which draw nothing (layer operations)
	Extent() (polyclip.Rectangle, bool)
}

func formatCoord(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

func formatPoint(p polyclip.Point, prec int) string {
	return formatCoord(p.X, prec) + "," + formatCoord(p.Y, prec)
}

// LayerMake creates a new layer with a truecolor RGB color and makes it current
type LayerMake struct {
	Name  string
	Color [3]uint8
}

func (lm LayerMake) Script(prec int) string {
	return "-LAYER\nMAKE\n" + lm.Name + "\n" +
		"COLOR\nTRUECOLOR\n" +
		strconv.Itoa(int(lm.Color[0])) + "," +
		strconv.Itoa(int(lm.Color[1])) + "," +
		strconv.Itoa(int(lm.Color[2])) + "\n\n\n"
}

func (lm LayerMake) Extent() (polyclip.Rectangle, bool) {
	return polyclip.Rectangle{}, false
}

// LayerSet switches the current layer
type LayerSet struct {
	Name string
}

func (ls LayerSet) Script(prec int) string {
	return "-LAYER\nSET\n" + ls.Name + "\n\n"
}

func (ls LayerSet) Extent() (polyclip.Rectangle, bool) {
	return polyclip.Rectangle{}, false
}

// Polyline draws a PLINE through Vertices, optionally closing it back
// onto the first vertex
type Polyline struct {
	Vertices polyclip.Contour
	Closed   bool
}

func (pl Polyline) Script(prec int) string {
	retVal := "PLINE\n"
	for _, v := range pl.Vertices {
		retVal += formatPoint(v, prec) + "\n"
	}
	if pl.Closed {
		retVal += "c\n"
	} else {
		retVal += "\n"
	}
	return retVal
}

func (pl Polyline) Extent() (polyclip.Rectangle, bool) {
	if len(pl.Vertices) == 0 {
		return polyclip.Rectangle{}, false
	}
	return pl.Vertices.BoundingBox(), true
}

// Line draws a single segment
type Line struct {
	From polyclip.Point
	To   polyclip.Point
}

func (l Line) Script(prec int) string {
	return "LINE\n" + formatPoint(l.From, prec) + "\n" + formatPoint(l.To, prec) + "\n\n"
}

func (l Line) Extent() (polyclip.Rectangle, bool) {
	return polyclip.Rectangle{
		Min: polyclip.Point{X: math.Min(l.From.X, l.To.X), Y: math.Min(l.From.Y, l.To.Y)},
		Max: polyclip.Point{X: math.Max(l.From.X, l.To.X), Y: math.Max(l.From.Y, l.To.Y)},
	}, true
}

// Arc draws a circular arc by center and two endpoints. The target tool
// always sweeps in its fixed direction from From to To, so callers order
// the endpoints accordingly.
type Arc struct {
	Center polyclip.Point
	From   polyclip.Point
	To     polyclip.Point
}

func (a Arc) Script(prec int) string {
	return "ARC\nC\n" +
		formatPoint(a.Center, prec) + "\n" +
		formatPoint(a.From, prec) + "\n" +
		formatPoint(a.To, prec) + "\n"
}

// the full circle box; conservative, used for reporting only
func (a Arc) Extent() (polyclip.Rectangle, bool) {
	r := math.Max(
		math.Hypot(a.From.X-a.Center.X, a.From.Y-a.Center.Y),
		math.Hypot(a.To.X-a.Center.X, a.To.Y-a.Center.Y))
	return polyclip.Rectangle{
		Min: polyclip.Point{X: a.Center.X - r, Y: a.Center.Y - r},
		Max: polyclip.Point{X: a.Center.X + r, Y: a.Center.Y + r},
	}, true
}

// Circle draws a full circle
type Circle struct {
	Center polyclip.Point
	Radius float64
}

func (c Circle) Script(prec int) string {
	return "CIRCLE\n" + formatPoint(c.Center, prec) + "\n" + formatCoord(c.Radius, prec) + "\n"
}

func (c Circle) Extent() (polyclip.Rectangle, bool) {
	return polyclip.Rectangle{
		Min: polyclip.Point{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
		Max: polyclip.Point{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius},
	}, true
}

// CircleArray draws a circle and repeats it Repeat[0] x Repeat[1] times
// with Space separation, using the tool's rectangular ARRAY on the last
// drawn entity. Single-row and single-column arrays take only one
// spacing value.
type CircleArray struct {
	Center polyclip.Point
	Radius float64
	Space  [2]float64
	Repeat [2]int
}

func (ca CircleArray) Script(prec int) string {
	retVal := Circle{Center: ca.Center, Radius: ca.Radius}.Script(prec)
	retVal += "ARRAY\nLAST\n\n\n"
	retVal += strconv.Itoa(ca.Repeat[0]) + "\n" + strconv.Itoa(ca.Repeat[1]) + "\n"
	if ca.Repeat[0] == 1 {
		retVal += formatCoord(ca.Space[1], prec) + "\n"
	} else if ca.Repeat[1] == 1 {
		retVal += formatCoord(ca.Space[0], prec) + "\n"
	} else {
		retVal += formatCoord(ca.Space[0], prec) + "\n" + formatCoord(ca.Space[1], prec) + "\n"
	}
	return retVal
}

func (ca CircleArray) Extent() (polyclip.Rectangle, bool) {
	box, _ := Circle{Center: ca.Center, Radius: ca.Radius}.Extent()
	if ca.Repeat[0] > 1 {
		box.Max.X += float64(ca.Repeat[0]-1) * ca.Space[0]
	}
	if ca.Repeat[1] > 1 {
		box.Max.Y += float64(ca.Repeat[1]-1) * ca.Space[1]
	}
	return box, true
}

// Rect draws a rectangle by two opposite corners
type Rect struct {
	From polyclip.Point
	To   polyclip.Point
}

func (r Rect) Script(prec int) string {
	return "RECTANGLE\n" + formatPoint(r.From, prec) + "\n" + formatPoint(r.To, prec) + "\n"
}

func (r Rect) Extent() (polyclip.Rectangle, bool) {
	return polyclip.Rectangle{
		Min: polyclip.Point{X: math.Min(r.From.X, r.To.X), Y: math.Min(r.From.Y, r.To.Y)},
		Max: polyclip.Point{X: math.Max(r.From.X, r.To.X), Y: math.Max(r.From.Y, r.To.Y)},
	}, true
}
