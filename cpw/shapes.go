package cpw

import (
	"fmt"
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/biggiemac42/PainterQubits/scripter"
)

// Straight builds a constant cross-section CPW from start to end: one
// closed quadrilateral per side of the conductor, covering the etch gap
// between the conductor edge at +-width/2 and the outer ground edge at
// +-(width/2 + gap).
func Straight(cs CrossSection, start, end polyclip.Point) ([]scripter.Command, Pose, error) {
	return Ramp(cs, cs, start, end)
}

// StraightAhead is the polar form of Straight: the segment continues from
// pose for length units along its heading.
func StraightAhead(cs CrossSection, pose Pose, length float64) ([]scripter.Command, Pose, error) {
	return Straight(cs, pose.At, ahead(pose, length))
}

// Ramp builds a CPW whose width and gap taper linearly from csStart at
// start to csEnd at end. Equal cross-sections reproduce Straight exactly.
func Ramp(csStart, csEnd CrossSection, start, end polyclip.Point) ([]scripter.Command, Pose, error) {
	if err := csStart.Validate(); err != nil {
		return nil, Pose{}, err
	}
	if err := csEnd.Validate(); err != nil {
		return nil, Pose{}, err
	}
	disp, theta, err := DisplacementAndHeading(start, end)
	if err != nil {
		return nil, Pose{}, err
	}
	cmds := make([]scripter.Command, 0, 2)
	for _, side := range []float64{-1, 1} {
		outline := polyclip.Contour{
			{X: start.X, Y: start.Y + side*csStart.Width/2},
			{X: start.X + disp, Y: start.Y + side*csEnd.Width/2},
			{X: start.X + disp, Y: start.Y + side*(csEnd.Width/2+csEnd.Gap)},
			{X: start.X, Y: start.Y + side*(csStart.Width/2+csStart.Gap)},
		}
		cmds = append(cmds, scripter.Polyline{
			Vertices: rotateContour(theta, outline, start),
			Closed:   true,
		})
	}
	return cmds, Pose{At: end, Heading: theta}, nil
}

// RampAhead is the polar form of Ramp.
func RampAhead(csStart, csEnd CrossSection, pose Pose, length float64) ([]scripter.Command, Pose, error) {
	return Ramp(csStart, csEnd, pose.At, ahead(pose, length))
}

// Bend builds a circular CPW bend of the given turn angle in degrees,
// domain (-180, 180) excluding 0, pivoting around a center offset
// perpendicular to the heading by radius (measured to the conductor
// centerline). A positive turn puts the center on the left of the heading.
func Bend(cs CrossSection, radius, angleDeg float64, pose Pose) ([]scripter.Command, Pose, error) {
	if angleDeg == 0 || angleDeg <= -180 || angleDeg >= 180 {
		return nil, Pose{}, fmt.Errorf("%w: turn angle %g degrees", ErrDegenerateBend, angleDeg)
	}
	return bend(cs, radius, mgl64.DegToRad(angleDeg), pose)
}

// bend is the dual-rail arc construction shared by both turn signs.
// Each side of the path is outlined by two concentric rail arcs (conductor
// edge and outer gap edge) joined by radial connector lines at both ends.
// The meander feeds it full half-turns, which the exported Bend rejects.
func bend(cs CrossSection, radius, phi float64, pose Pose) ([]scripter.Command, Pose, error) {
	if err := cs.Validate(); err != nil {
		return nil, Pose{}, err
	}
	if radius <= 0 {
		return nil, Pose{}, fmt.Errorf("%w: bend radius %g", ErrDegenerateSegment, radius)
	}
	if phi == 0 {
		return nil, Pose{}, fmt.Errorf("%w: zero turn", ErrDegenerateBend)
	}
	start := pose.At
	turn := 1.0
	if phi < 0 {
		turn = -1.0
	}
	center := polyclip.Point{X: start.X, Y: start.Y + turn*radius}

	// frame maps a point from the local unrotated frame into world
	// coordinates
	frame := func(p polyclip.Point) polyclip.Point {
		return RotatePoint(pose.Heading, p, start)
	}

	// the target tool sweeps arcs in one fixed direction only, so the
	// endpoint roles swap for negative turns
	arc := func(railStart, railEnd polyclip.Point) scripter.Arc {
		if turn > 0 {
			return scripter.Arc{Center: frame(center), From: frame(railStart), To: frame(railEnd)}
		}
		return scripter.Arc{Center: frame(center), From: frame(railEnd), To: frame(railStart)}
	}

	cmds := make([]scripter.Command, 0, 8)
	for _, side := range []float64{1, -1} {
		pNear := polyclip.Point{X: start.X, Y: start.Y + side*cs.Width/2}
		pFar := polyclip.Point{X: start.X, Y: start.Y + side*(cs.Width/2+cs.Gap)}
		eNear := RotatePoint(phi, pNear, center)
		eFar := RotatePoint(phi, pFar, center)
		cmds = append(cmds,
			arc(pNear, eNear),
			scripter.Line{From: frame(eNear), To: frame(eFar)},
			arc(pFar, eFar),
			scripter.Line{From: frame(pFar), To: frame(pNear)},
		)
	}

	end := frame(RotatePoint(phi, start, center))
	return cmds, Pose{At: end, Heading: pose.Heading + phi}, nil
}

// Meander folds totalLength of CPW into a compact area by alternating
// half-turn bends of the given radius with straights of straightLength.
// startPhase sets the initial partial bend before the repeating pattern
// begins; the terminal straight or bend is sized to consume the exact
// remainder.
func Meander(cs CrossSection, totalLength, radius, straightLength, startPhase float64, pose Pose) ([]scripter.Command, Pose, error) {
	if err := cs.Validate(); err != nil {
		return nil, Pose{}, err
	}
	if radius <= 0 {
		return nil, Pose{}, fmt.Errorf("%w: meander radius %g", ErrDegenerateSegment, radius)
	}
	if straightLength <= 0 {
		return nil, Pose{}, fmt.Errorf("%w: meander straight length %g", ErrDegenerateSegment, straightLength)
	}
	phase := math.Mod(startPhase, 2*math.Pi)
	if phase < 0 {
		phase += 2 * math.Pi
	}

	// first bend of the meander decides which way to turn next
	var firstPhi, turn float64
	switch {
	case phase == 0:
		firstPhi = -math.Pi
		turn = 1
	case phase == math.Pi:
		firstPhi = math.Pi
		turn = -1
	case phase < math.Pi:
		firstPhi = phase - math.Pi
		turn = 1
	default:
		firstPhi = phase - math.Pi
		turn = -1
	}
	firstLength := radius * math.Abs(firstPhi)
	if totalLength < firstLength {
		return nil, Pose{}, fmt.Errorf("%w: total %g is shorter than the initial bend %g",
			ErrInvalidMeanderLength, totalLength, firstLength)
	}

	cmds, pose, err := bend(cs, radius, firstPhi, pose)
	if err != nil {
		return nil, Pose{}, err
	}
	lengthSoFar := firstLength

	halfTurn := math.Pi * radius
	emit := func(batch []scripter.Command, next Pose, e error) error {
		if e != nil {
			return e
		}
		cmds = append(cmds, batch...)
		pose = next
		return nil
	}

	// the repeating bulk
	for totalLength-(halfTurn+straightLength) > lengthSoFar {
		if err = emit(StraightAhead(cs, pose, straightLength)); err != nil {
			return nil, Pose{}, err
		}
		if err = emit(bend(cs, radius, turn*math.Pi, pose)); err != nil {
			return nil, Pose{}, err
		}
		turn = -turn
		lengthSoFar += straightLength + halfTurn
	}

	// the tail end
	remainder := totalLength - lengthSoFar
	if remainder < straightLength {
		if remainder > 0 {
			if err = emit(StraightAhead(cs, pose, remainder)); err != nil {
				return nil, Pose{}, err
			}
		}
	} else {
		if err = emit(StraightAhead(cs, pose, straightLength)); err != nil {
			return nil, Pose{}, err
		}
		if lastPhi := turn * (remainder - straightLength) / radius; lastPhi != 0 {
			if err = emit(bend(cs, radius, lastPhi, pose)); err != nil {
				return nil, Pose{}, err
			}
		}
	}
	return cmds, pose, nil
}

// LaunchPad describes the wide pad region used to transition a trace
// to or from a wire-bonded connector. The pad gap follows from the total
// etched width: (TotalWidth - PadWidth) / 2.
type LaunchPad struct {
	PadWidth   float64
	TotalWidth float64
	PadLength  float64
	RampLength float64
}

func (lp LaunchPad) padCrossSection() (CrossSection, error) {
	cs := CrossSection{Width: lp.PadWidth, Gap: (lp.TotalWidth - lp.PadWidth) / 2}
	if lp.PadWidth <= 0 || cs.Gap < 0 {
		return CrossSection{}, fmt.Errorf("%w: pad width %g of total %g",
			ErrInvalidCrossSection, lp.PadWidth, lp.TotalWidth)
	}
	if lp.PadLength <= 0 || lp.RampLength <= 0 {
		return CrossSection{}, fmt.Errorf("%w: pad length %g, ramp length %g",
			ErrDegenerateSegment, lp.PadLength, lp.RampLength)
	}
	return cs, nil
}

// GapCap seals the etch gap across the full CPW width with one closed
// rectangle of the given length ahead of pose.
func GapCap(cs CrossSection, length float64, pose Pose) ([]scripter.Command, Pose, error) {
	if err := cs.Validate(); err != nil {
		return nil, Pose{}, err
	}
	if length <= 0 {
		return nil, Pose{}, fmt.Errorf("%w: cap length %g", ErrDegenerateSegment, length)
	}
	start := pose.At
	half := cs.Width/2 + cs.Gap
	outline := polyclip.Contour{
		{X: start.X, Y: start.Y - half},
		{X: start.X + length, Y: start.Y - half},
		{X: start.X + length, Y: start.Y + half},
		{X: start.X, Y: start.Y + half},
	}
	cmds := []scripter.Command{scripter.Polyline{
		Vertices: rotateContour(pose.Heading, outline, start),
		Closed:   true,
	}}
	return cmds, Pose{At: ahead(pose, length), Heading: pose.Heading}, nil
}

// LaunchBegin starts a trace with a launch pad: gap cap, pad-width
// straight, then a ramp down to the working cross-section.
func LaunchBegin(lp LaunchPad, trace CrossSection, pose Pose) ([]scripter.Command, Pose, error) {
	padCS, err := lp.padCrossSection()
	if err != nil {
		return nil, Pose{}, err
	}
	if err = trace.Validate(); err != nil {
		return nil, Pose{}, err
	}
	cmds, pose, err := GapCap(padCS, padCS.Gap, pose)
	if err != nil {
		return nil, Pose{}, err
	}
	batch, pose, err := StraightAhead(padCS, pose, lp.PadLength)
	if err != nil {
		return nil, Pose{}, err
	}
	cmds = append(cmds, batch...)
	batch, pose, err = RampAhead(padCS, trace, pose, lp.RampLength)
	if err != nil {
		return nil, Pose{}, err
	}
	return append(cmds, batch...), pose, nil
}

// LaunchEnd ends a trace with the mirror sequence: ramp up to the pad
// cross-section, pad-width straight, gap cap.
func LaunchEnd(lp LaunchPad, trace CrossSection, pose Pose) ([]scripter.Command, Pose, error) {
	padCS, err := lp.padCrossSection()
	if err != nil {
		return nil, Pose{}, err
	}
	if err = trace.Validate(); err != nil {
		return nil, Pose{}, err
	}
	cmds, pose, err := RampAhead(trace, padCS, pose, lp.RampLength)
	if err != nil {
		return nil, Pose{}, err
	}
	batch, pose, err := StraightAhead(padCS, pose, lp.PadLength)
	if err != nil {
		return nil, Pose{}, err
	}
	cmds = append(cmds, batch...)
	batch, pose, err = GapCap(padCS, padCS.Gap, pose)
	if err != nil {
		return nil, Pose{}, err
	}
	return append(cmds, batch...), pose, nil
}
