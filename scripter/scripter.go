/*
Generates an AutoCAD script (.scr) command stream
*/
package scripter

import (
	"os"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/golang/glog"
)

// every generated script starts with command echo off and object snap
// disabled, otherwise snapping corrupts the drawn coordinates
const scriptHeader = "(setvar \"CmdEcho\" 0)\n-osnap\n\n"

/*
Script current status and statistic
*/
type Script struct {
	outFileName string
	precision   int
	records     []Command

	layerCmds  int
	plineCmds  int
	arcCmds    int
	lineCmds   int
	circleCmds int
	rectCmds   int

	extent    polyclip.Rectangle
	hasExtent bool
}

// Stats is the per-kind count of buffered drawing records
type Stats struct {
	Layers    int
	Polylines int
	Arcs      int
	Lines     int
	Circles   int
	Rects     int
}

func NewScript(outFileName string, precision int) *Script {
	retVal := new(Script)
	retVal.outFileName = outFileName
	retVal.precision = precision
	retVal.records = make([]Command, 0)
	return retVal
}

// Append buffers commands in emission order and accumulates statistics
// and the overall drawing extent
func (s *Script) Append(cmds ...Command) {
	for _, c := range cmds {
		switch c.(type) {
		case LayerMake, LayerSet:
			s.layerCmds++
		case Polyline:
			s.plineCmds++
		case Arc:
			s.arcCmds++
		case Line:
			s.lineCmds++
		case Circle, CircleArray:
			s.circleCmds++
		case Rect:
			s.rectCmds++
		}
		if box, ok := c.Extent(); ok {
			if s.hasExtent {
				s.extent = unionBox(s.extent, box)
			} else {
				s.extent = box
				s.hasExtent = true
			}
		}
		s.records = append(s.records, c)
	}
}

func (s *Script) Len() int {
	return len(s.records)
}

func (s *Script) Stats() Stats {
	return Stats{
		Layers:    s.layerCmds,
		Polylines: s.plineCmds,
		Arcs:      s.arcCmds,
		Lines:     s.lineCmds,
		Circles:   s.circleCmds,
		Rects:     s.rectCmds,
	}
}

// Extent returns the box covered by all buffered drawing commands,
// false when nothing has been drawn yet
func (s *Script) Extent() (polyclip.Rectangle, bool) {
	return s.extent, s.hasExtent
}

func unionBox(a, b polyclip.Rectangle) polyclip.Rectangle {
	if b.Min.X < a.Min.X {
		a.Min.X = b.Min.X
	}
	if b.Min.Y < a.Min.Y {
		a.Min.Y = b.Min.Y
	}
	if b.Max.X > a.Max.X {
		a.Max.X = b.Max.X
	}
	if b.Max.Y > a.Max.Y {
		a.Max.Y = b.Max.Y
	}
	return a
}

/*
Deletes unnecessary layer-select commands
*/
func (s *Script) squeeze() {
	tmpRecords := make([]Command, 0, len(s.records))
	var lastSet Command
	for a := range s.records {
		if set, ok := s.records[a].(LayerSet); ok {
			if prev, overridden := lastSet.(LayerSet); overridden {
				glog.Warningln("redundant layer select dropped: " + prev.Name)
			}
			lastSet = set
		} else {
			if lastSet != nil {
				tmpRecords = append(tmpRecords, lastSet)
				lastSet = nil
			}
			tmpRecords = append(tmpRecords, s.records[a])
		}
	}
	if lastSet != nil {
		tmpRecords = append(tmpRecords, lastSet)
	}
	s.records = tmpRecords
}

/*
Finalizes the command stream and writes the script file to disk
*/
func (s *Script) Save() error {
	s.squeeze()
	outputFile, err := os.OpenFile(s.outFileName, os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return err
	}
	defer outputFile.Close()
	if err = outputFile.Truncate(0); err != nil {
		return err
	}
	if _, err = outputFile.WriteString(scriptHeader); err != nil {
		return err
	}
	for _, rec := range s.records {
		if _, err = outputFile.WriteString(rec.Script(s.precision)); err != nil {
			return err
		}
	}
	if err = outputFile.Sync(); err != nil {
		return err
	}
	return outputFile.Close()
}
