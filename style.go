package donuts

import (
	"math"
)

const ChartSize = 1000.0

const fontspec = ".%s {font-family:sans-serif;font-weight:bold;font-size:%vpx;dominant-baseline:middle;text-anchor:middle;stroke:none;fill:%s;}"

type DonutStyle struct {
	BorderSize float64
	HoleSize   float64
	TitleSize  float64
	LabelSize  float64

	BorderColor string
	HoleColor   string
	TitleColor  string
	LabelColor  string

	WedgeColors Palette
	InitAngle   float64
}

func DefaultStyle() DonutStyle {
	return DonutStyle{
		BorderSize:  0.01,
		HoleSize:    0.3,
		TitleSize:   0.08,
		LabelSize:   0.08,
		BorderColor: "white",
		HoleColor:   "silver",
		TitleColor:  "black",
		LabelColor:  "white",
		WedgeColors: append(Palette{}, DefaultColors...),
		InitAngle:   -math.Pi / 2,
	}
}
