package cpw

import (
	polyclip "github.com/akavel/polyclip-go"

	"github.com/biggiemac42/PainterQubits/scripter"
)

// Engine chains shape emissions into one continuous path: it owns the
// tracked pen pose and the output script, so consecutive Add calls
// continue where the previous shape ended. The underlying shape builders
// stay pure; branching paths thread Pose values through them directly.
type Engine struct {
	out *scripter.Script
	pen Pose
}

// NewEngine starts with the pen at the origin, heading zero.
func NewEngine(out *scripter.Script) *Engine {
	return &Engine{out: out}
}

func (e *Engine) Pen() Pose {
	return e.pen
}

// SetPen moves the pen without drawing, starting a new path.
func (e *Engine) SetPen(pose Pose) {
	e.pen = pose
}

// emit appends a successful batch and advances the pen; on error the
// script is left untouched.
func (e *Engine) emit(cmds []scripter.Command, end Pose, err error) error {
	if err != nil {
		return err
	}
	e.out.Append(cmds...)
	e.pen = end
	return nil
}

// AddLayer creates a new layer with the specified name and RGB color
func (e *Engine) AddLayer(name string, color [3]uint8) {
	e.out.Append(scripter.LayerMake{Name: name, Color: color})
}

// SetLayer changes the current layer
func (e *Engine) SetLayer(name string) {
	e.out.Append(scripter.LayerSet{Name: name})
}

// AddRect adds a rectangle with corners base and base + (xlen, ylen)
func (e *Engine) AddRect(base polyclip.Point, xlen, ylen float64) {
	e.out.Append(scripter.Rect{From: base, To: polyclip.Point{X: base.X + xlen, Y: base.Y + ylen}})
}

// AddCircle adds a circle of radius r centered at center
func (e *Engine) AddCircle(center polyclip.Point, r float64) {
	e.out.Append(scripter.Circle{Center: center, Radius: r})
}

// AddCircleArray repeats a circle rightwards and upwards with the given
// separation
func (e *Engine) AddCircleArray(center polyclip.Point, r float64, space [2]float64, repeat [2]int) {
	e.out.Append(scripter.CircleArray{Center: center, Radius: r, Space: space, Repeat: repeat})
}

func (e *Engine) AddStraight(cs CrossSection, start, end polyclip.Point) error {
	return e.emit(Straight(cs, start, end))
}

func (e *Engine) AddStraightAhead(cs CrossSection, length float64) error {
	return e.emit(StraightAhead(cs, e.pen, length))
}

func (e *Engine) AddRamp(csStart, csEnd CrossSection, start, end polyclip.Point) error {
	return e.emit(Ramp(csStart, csEnd, start, end))
}

func (e *Engine) AddRampAhead(csStart, csEnd CrossSection, length float64) error {
	return e.emit(RampAhead(csStart, csEnd, e.pen, length))
}

func (e *Engine) AddBend(cs CrossSection, radius, angleDeg float64) error {
	return e.emit(Bend(cs, radius, angleDeg, e.pen))
}

func (e *Engine) AddMeander(cs CrossSection, totalLength, radius, straightLength, startPhase float64) error {
	return e.emit(Meander(cs, totalLength, radius, straightLength, startPhase, e.pen))
}

func (e *Engine) AddGapCap(cs CrossSection, length float64) error {
	return e.emit(GapCap(cs, length, e.pen))
}

func (e *Engine) AddLaunchBegin(lp LaunchPad, trace CrossSection) error {
	return e.emit(LaunchBegin(lp, trace, e.pen))
}

func (e *Engine) AddLaunchEnd(lp LaunchPad, trace CrossSection) error {
	return e.emit(LaunchEnd(lp, trace, e.pen))
}
