package scripter

import (
	"testing"

	polyclip "github.com/akavel/polyclip-go"
)

func TestLayerMakeScript(t *testing.T) {
	got := LayerMake{Name: "CPW1", Color: [3]uint8{100, 200, 50}}.Script(6)
	want := "-LAYER\nMAKE\nCPW1\nCOLOR\nTRUECOLOR\n100,200,50\n\n\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLayerSetScript(t *testing.T) {
	got := LayerSet{Name: "CPW1"}.Script(6)
	want := "-LAYER\nSET\nCPW1\n\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPolylineScript(t *testing.T) {
	pl := Polyline{
		Vertices: polyclip.Contour{{X: 0, Y: 0}, {X: 10.5, Y: 0}, {X: 10.5, Y: 2}},
		Closed:   true,
	}
	got := pl.Script(2)
	want := "PLINE\n0.00,0.00\n10.50,0.00\n10.50,2.00\nc\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	pl.Closed = false
	got = pl.Script(2)
	want = "PLINE\n0.00,0.00\n10.50,0.00\n10.50,2.00\n\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLineScript(t *testing.T) {
	got := Line{From: polyclip.Point{X: 1, Y: 2}, To: polyclip.Point{X: 3, Y: -4}}.Script(1)
	want := "LINE\n1.0,2.0\n3.0,-4.0\n\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestArcScript(t *testing.T) {
	got := Arc{
		Center: polyclip.Point{X: 0, Y: 10},
		From:   polyclip.Point{X: 0, Y: 2},
		To:     polyclip.Point{X: 8, Y: 10},
	}.Script(1)
	want := "ARC\nC\n0.0,10.0\n0.0,2.0\n8.0,10.0\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCircleScript(t *testing.T) {
	got := Circle{Center: polyclip.Point{X: 5, Y: 6}, Radius: 2.25}.Script(2)
	want := "CIRCLE\n5.00,6.00\n2.25\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCircleArrayScript(t *testing.T) {
	base := CircleArray{Center: polyclip.Point{X: 0, Y: 0}, Radius: 1, Space: [2]float64{2, 3}}

	full := base
	full.Repeat = [2]int{2, 2}
	got := full.Script(0)
	want := "CIRCLE\n0,0\n1\nARRAY\nLAST\n\n\n2\n2\n2\n3\n"
	if got != want {
		t.Fatalf("full array: got %q, want %q", got, want)
	}

	row := base
	row.Repeat = [2]int{1, 4}
	got = row.Script(0)
	want = "CIRCLE\n0,0\n1\nARRAY\nLAST\n\n\n1\n4\n3\n"
	if got != want {
		t.Fatalf("single row: got %q, want %q", got, want)
	}

	col := base
	col.Repeat = [2]int{4, 1}
	got = col.Script(0)
	want = "CIRCLE\n0,0\n1\nARRAY\nLAST\n\n\n4\n1\n2\n"
	if got != want {
		t.Fatalf("single column: got %q, want %q", got, want)
	}
}

func TestRectScript(t *testing.T) {
	got := Rect{From: polyclip.Point{X: 0, Y: 0}, To: polyclip.Point{X: 100, Y: 50}}.Script(0)
	want := "RECTANGLE\n0,0\n100,50\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExtents(t *testing.T) {
	if _, ok := (LayerMake{Name: "x"}).Extent(); ok {
		t.Fatal("layer make draws nothing")
	}
	if _, ok := (LayerSet{Name: "x"}).Extent(); ok {
		t.Fatal("layer set draws nothing")
	}

	box, ok := Circle{Center: polyclip.Point{X: 5, Y: 5}, Radius: 2}.Extent()
	if !ok || box.Min.X != 3 || box.Min.Y != 3 || box.Max.X != 7 || box.Max.Y != 7 {
		t.Fatalf("circle extent %+v", box)
	}

	box, ok = Line{From: polyclip.Point{X: 4, Y: -1}, To: polyclip.Point{X: -2, Y: 3}}.Extent()
	if !ok || box.Min.X != -2 || box.Min.Y != -1 || box.Max.X != 4 || box.Max.Y != 3 {
		t.Fatalf("line extent %+v", box)
	}

	box, ok = Arc{
		Center: polyclip.Point{X: 0, Y: 0},
		From:   polyclip.Point{X: 3, Y: 0},
		To:     polyclip.Point{X: 0, Y: 3},
	}.Extent()
	if !ok || box.Min.X != -3 || box.Max.Y != 3 {
		t.Fatalf("arc extent %+v", box)
	}
}
