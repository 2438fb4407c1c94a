/*
Coplanar-waveguide geometry engine.

Shape builders compute the conductor/gap outlines of a CPW element in a
local unrotated frame, rotate them into the world frame around the start
point, and return them as structured drawing commands together with the
pose (endpoint + heading) the path continues from.
*/
package cpw

import (
	"errors"
	"fmt"
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrDegenerateSegment is returned for zero-length segments and for
	// zero or negative lengths/radii where the geometry needs a positive one
	ErrDegenerateSegment = errors.New("cpw: degenerate segment")

	// ErrDegenerateBend is returned for turn angles outside (-180, 180)
	// degrees or equal to zero
	ErrDegenerateBend = errors.New("cpw: degenerate bend")

	// ErrInvalidMeanderLength is returned when the requested total length
	// cannot accommodate the mandatory initial bend
	ErrInvalidMeanderLength = errors.New("cpw: invalid meander length")

	// ErrInvalidCrossSection is returned for a negative width or gap
	ErrInvalidCrossSection = errors.New("cpw: invalid cross section")
)

// Pose is where a waveguide path currently ends and which direction it
// points, heading in radians
type Pose struct {
	At      polyclip.Point
	Heading float64
}

// CrossSection is the conductor width and the flanking etch gap width.
// A zero width or gap degenerates a polygon edge to a line, which is legal.
type CrossSection struct {
	Width float64
	Gap   float64
}

func (cs CrossSection) Validate() error {
	if cs.Width < 0 || cs.Gap < 0 {
		return fmt.Errorf("%w: width %g, gap %g", ErrInvalidCrossSection, cs.Width, cs.Gap)
	}
	return nil
}

// RotatePoint rotates p around pivot by angle radians,
// counter-clockwise positive
func RotatePoint(angle float64, p, pivot polyclip.Point) polyclip.Point {
	v := mgl64.Rotate2D(angle).Mul2x1(mgl64.Vec2{p.X - pivot.X, p.Y - pivot.Y})
	return polyclip.Point{X: pivot.X + v.X(), Y: pivot.Y + v.Y()}
}

// DisplacementAndHeading returns the Euclidean distance between start and
// end and the heading angle of the vector start->end, resolved over
// (-pi, pi]. A zero displacement has no heading and fails.
func DisplacementAndHeading(start, end polyclip.Point) (float64, float64, error) {
	dx := end.X - start.X
	dy := end.Y - start.Y
	if dx == 0 && dy == 0 {
		return 0, 0, fmt.Errorf("%w: start equals end at (%g,%g)", ErrDegenerateSegment, start.X, start.Y)
	}
	return math.Hypot(dx, dy), math.Atan2(dy, dx), nil
}

// ahead is the point reached from pose after travelling length units
// along its heading
func ahead(pose Pose, length float64) polyclip.Point {
	return polyclip.Point{X: pose.At.X + length*math.Cos(pose.Heading), Y: pose.At.Y + length*math.Sin(pose.Heading)}

}

func rotateContour(angle float64, c polyclip.Contour, pivot polyclip.Point) polyclip.Contour {
	retVal := make(polyclip.Contour, len(c))
	for i := range c {
		retVal[i] = RotatePoint(angle, c[i], pivot)
	}
	return retVal
}
