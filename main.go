// Command-line front end: generates an AutoCAD script drawing a demo CPW
// chip layout from the configured trace, pad and meander parameters.
package main

import (
	"flag"
	"fmt"
	"math"
	"time"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/golang/glog"
	"github.com/spf13/viper"

	"github.com/biggiemac42/PainterQubits/configurator"
	"github.com/biggiemac42/PainterQubits/cpw"
	"github.com/biggiemac42/PainterQubits/scripter"
)

const (
	appName    = "cpwscripter"
	appVersion = "0.2"
)

// configuration base
var viperConfig *viper.Viper

func main() {
	var outFileName string
	flag.StringVar(&outFileName, "o", "", "output script file (overrides config)")
	printCfg := flag.Bool("printcfg", false, "print the effective configuration and exit")
	flag.Parse()
	defer glog.Flush()

	fmt.Println(returnAppInfo())

	viperConfig = viper.New()
	configurator.SetDefaults(viperConfig)
	if cfgFileError := configurator.ProcessConfigFile(viperConfig); cfgFileError != nil {
		fmt.Print("An error has occured: ")
		fmt.Println(cfgFileError)
		fmt.Println("Using built-in defaults.")
	}
	if *printCfg {
		configurator.DiagnosticAllCfgPrint(viperConfig)
		return
	}
	if len(outFileName) == 0 {
		outFileName = viperConfig.GetString(configurator.CfgScriptOutFile)
	}

	timeStamp := time.Now()
	fmt.Println("output file:", outFileName)

	script := scripter.NewScript(outFileName, viperConfig.GetInt(configurator.CfgScriptPrecision))
	engine := cpw.NewEngine(script)

	if err := buildChip(engine, viperConfig); err != nil {
		glog.Exitln(err)
	}
	if err := script.Save(); err != nil {
		glog.Exitln(err)
	}

	stats := script.Stats()
	fmt.Println("layer commands:   ", stats.Layers)
	fmt.Println("polyline commands:", stats.Polylines)
	fmt.Println("arc commands:     ", stats.Arcs)
	fmt.Println("line commands:    ", stats.Lines)
	fmt.Println("circle commands:  ", stats.Circles)
	fmt.Println("rect commands:    ", stats.Rects)
	if box, ok := script.Extent(); ok {
		fmt.Printf("drawing extent: (%.3f,%.3f) .. (%.3f,%.3f)\n",
			box.Min.X, box.Min.Y, box.Max.X, box.Max.Y)
	}
	fmt.Println("elapsed:", time.Since(timeStamp))
}

// buildChip draws the demo layout: a frame, a launch pad feeding a CPW
// trace through a jog and a switchback ladder into two meanders at
// different cross-sections, then out through the second launch pad.
func buildChip(engine *cpw.Engine, v *viper.Viper) error {
	trace := cpw.CrossSection{
		Width: v.GetFloat64(configurator.CfgTraceWidth),
		Gap:   v.GetFloat64(configurator.CfgTraceGap),
	}
	wide := cpw.CrossSection{Width: 2.5 * trace.Width, Gap: 2.5 * trace.Gap}
	narrow := cpw.CrossSection{Width: trace.Width / 2, Gap: trace.Gap / 2}
	pad := cpw.LaunchPad{
		PadWidth:   v.GetFloat64(configurator.CfgPadWidth),
		TotalWidth: v.GetFloat64(configurator.CfgPadTotalWidth),
		PadLength:  v.GetFloat64(configurator.CfgPadLength),
		RampLength: v.GetFloat64(configurator.CfgPadRampLength),
	}
	meanderRadius := v.GetFloat64(configurator.CfgMeanderRadius)
	meanderStraight := v.GetFloat64(configurator.CfgMeanderStraightLength)
	meanderTotal := v.GetFloat64(configurator.CfgMeanderTotalLength)

	engine.AddLayer("Frame", [3]uint8{250, 50, 50})
	engine.AddRect(polyclip.Point{X: 0, Y: 0},
		v.GetFloat64(configurator.CfgChipFrameXLen),
		v.GetFloat64(configurator.CfgChipFrameYLen))

	engine.AddLayer("CPW", [3]uint8{50, 250, 50})
	engine.SetLayer("CPW")
	engine.SetPen(cpw.Pose{At: polyclip.Point{X: 3000, Y: 200}, Heading: math.Pi / 2})

	if err := engine.AddLaunchBegin(pad, trace); err != nil {
		return err
	}

	// jog the trace sideways off the pad row
	if err := engine.AddBend(trace, 100, -45); err != nil {
		return err
	}
	if err := engine.AddStraightAhead(trace, 200); err != nil {
		return err
	}
	if err := engine.AddBend(trace, 100, 45); err != nil {
		return err
	}

	// switchback ladder, then unwind with widening quarter turns
	for i := 0; i < 3; i++ {
		if err := engine.AddStraightAhead(trace, 100); err != nil {
			return err
		}
		if err := engine.AddBend(trace, 2*(trace.Width+trace.Gap), -90); err != nil {
			return err
		}
	}
	for i := 0; i < 3; i++ {
		if err := engine.AddBend(trace, 4*(trace.Width+trace.Gap), 90); err != nil {
			return err
		}
	}

	if err := engine.AddStraightAhead(trace, 500); err != nil {
		return err
	}
	if err := engine.AddMeander(trace, meanderTotal, meanderRadius, meanderStraight, -math.Pi/3); err != nil {
		return err
	}
	if err := engine.AddRampAhead(trace, wide, 50); err != nil {
		return err
	}
	if err := engine.AddMeander(wide, meanderTotal, meanderRadius, meanderStraight, math.Pi/2); err != nil {
		return err
	}
	if err := engine.AddRampAhead(wide, narrow, 100); err != nil {
		return err
	}
	if err := engine.AddStraightAhead(narrow, 200); err != nil {
		return err
	}
	if err := engine.AddBend(narrow, 100, 30); err != nil {
		return err
	}
	return engine.AddLaunchEnd(pad, narrow)
}

func returnAppInfo() string {
	return appName + " v" + appVersion + " - CPW chip layout script generator"
}
