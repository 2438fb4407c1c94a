package configurator

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	CfgScriptOutFile   string = "script.OutFile"
	CfgScriptPrecision string = "script.Precision"

	CfgChipFrameXLen string = "chip.FrameXLen"
	CfgChipFrameYLen string = "chip.FrameYLen"

	CfgTraceWidth string = "trace.Width"
	CfgTraceGap   string = "trace.Gap"

	CfgPadWidth      string = "pad.Width"
	CfgPadTotalWidth string = "pad.TotalWidth"
	CfgPadLength     string = "pad.Length"
	CfgPadRampLength string = "pad.RampLength"

	CfgMeanderRadius         string = "meander.Radius"
	CfgMeanderStraightLength string = "meander.StraightLength"
	CfgMeanderTotalLength    string = "meander.TotalLength"
)

func SetDefaults(v *viper.Viper) {
	v.SetConfigName("config") // no need to include file extension
	v.AddConfigPath(".")      // set the path of your config file
	v.SetConfigType("toml")

	v.SetDefault(CfgScriptOutFile, "chip.scr")
	v.SetDefault(CfgScriptPrecision, 6)

	// chip frame, um
	v.SetDefault(CfgChipFrameXLen, 10000.0)
	v.SetDefault(CfgChipFrameYLen, 10000.0)

	// working trace cross-section
	v.SetDefault(CfgTraceWidth, 4.0)
	v.SetDefault(CfgTraceGap, 4.0)

	// launch pads
	v.SetDefault(CfgPadWidth, 150.0)
	v.SetDefault(CfgPadTotalWidth, 300.0)
	v.SetDefault(CfgPadLength, 200.0)
	v.SetDefault(CfgPadRampLength, 200.0)

	// meanders
	v.SetDefault(CfgMeanderRadius, 25.0)
	v.SetDefault(CfgMeanderStraightLength, 150.0)
	v.SetDefault(CfgMeanderTotalLength, 2500.0)
}

func ProcessConfigFile(v *viper.Viper) error {
	return v.ReadInConfig()
}

func DiagnosticAllCfgPrint(v *viper.Viper) {
	c := v.AllSettings()
	for key, data := range c {
		fmt.Println(key, ":", data)
	}
	fmt.Println()
}
