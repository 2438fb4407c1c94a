package cpw

import (
	"errors"
	"math"
	"testing"

	polyclip "github.com/akavel/polyclip-go"

	"github.com/biggiemac42/PainterQubits/scripter"
)

func TestEnginePenContinuity(t *testing.T) {
	script := scripter.NewScript("unused.scr", 6)
	engine := NewEngine(script)
	trace := CrossSection{Width: 4, Gap: 4}

	if err := engine.AddStraight(trace, polyclip.Point{X: 0, Y: 0}, polyclip.Point{X: 10, Y: 0}); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if pen := engine.Pen(); !pointsClose(pen.At, polyclip.Point{X: 10, Y: 0}) || !headingsClose(pen.Heading, 0) {
		t.Fatalf("pen %+v, want (10,0) heading 0", pen)
	}

	if err := engine.AddBend(trace, 5, 90); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if pen := engine.Pen(); !pointsClose(pen.At, polyclip.Point{X: 15, Y: 5}) || !headingsClose(pen.Heading, math.Pi/2) {
		t.Fatalf("pen %+v, want (15,5) heading pi/2", pen)
	}

	if err := engine.AddStraightAhead(trace, 7); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if pen := engine.Pen(); !pointsClose(pen.At, polyclip.Point{X: 15, Y: 12}) {
		t.Fatalf("pen %+v, want (15,12)", pen)
	}
}

func TestEngineErrorLeavesScriptUntouched(t *testing.T) {
	script := scripter.NewScript("unused.scr", 6)
	engine := NewEngine(script)
	trace := CrossSection{Width: 4, Gap: 4}

	engine.SetPen(Pose{At: polyclip.Point{X: 1, Y: 2}, Heading: 0.5})
	before := script.Len()
	penBefore := engine.Pen()

	if err := engine.AddBend(trace, 10, 0); !errors.Is(err, ErrDegenerateBend) {
		t.Fatal("must be ErrDegenerateBend, got", err)
	}
	if script.Len() != before {
		t.Fatal("failed call must not emit commands")
	}
	if engine.Pen() != penBefore {
		t.Fatal("failed call must not move the pen")
	}
}

func TestEngineWrappers(t *testing.T) {
	script := scripter.NewScript("unused.scr", 6)
	engine := NewEngine(script)

	engine.AddLayer("CPW1", [3]uint8{100, 200, 50})
	engine.SetLayer("CPW1")
	engine.AddRect(polyclip.Point{X: 0, Y: 0}, 100, 50)
	engine.AddCircle(polyclip.Point{X: 10, Y: 10}, 3)
	engine.AddCircleArray(polyclip.Point{X: 0, Y: 0}, 1, [2]float64{2, 2}, [2]int{3, 3})
	if script.Len() != 5 {
		t.Fatal("want 5 buffered records, got", script.Len())
	}

	stats := script.Stats()
	if stats.Layers != 2 || stats.Rects != 1 || stats.Circles != 2 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestEngineMeanderChain(t *testing.T) {
	script := scripter.NewScript("unused.scr", 6)
	engine := NewEngine(script)
	trace := CrossSection{Width: 5, Gap: 5}

	engine.SetPen(Pose{At: polyclip.Point{X: 250, Y: -250}, Heading: math.Pi / 8})
	if err := engine.AddStraightAhead(trace, 100); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if err := engine.AddMeander(trace, 800, 25, 150, math.Pi/2); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if err := engine.AddMeander(trace, 5, 25, 150, math.Pi/2); !errors.Is(err, ErrInvalidMeanderLength) {
		t.Fatal("must be ErrInvalidMeanderLength, got", err)
	}
}
