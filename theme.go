package donuts

import (
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Theme is the file schema for styles. Fields mirror DonutStyle, sizes as
// fractions of the chart size, init-angle in radians.
type Theme struct {
	BorderSize  *float64 `toml:"border-size"`
	HoleSize    *float64 `toml:"hole-size"`
	TitleSize   *float64 `toml:"title-size"`
	LabelSize   *float64 `toml:"label-size"`
	BorderColor *string  `toml:"border-color"`
	HoleColor   *string  `toml:"hole-color"`
	TitleColor  *string  `toml:"title-color"`
	LabelColor  *string  `toml:"label-color"`
	WedgeColors []string `toml:"wedge-colors"`
	InitAngle   *float64 `toml:"init-angle"`
}

// LoadStyle decodes a theme document and merges it over the default style.
// Absent keys keep their defaults, unknown keys are an error.
func LoadStyle(r io.Reader) (DonutStyle, error) {
	var t Theme
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&t); err != nil {
		return DonutStyle{}, err
	}
	return t.merge(DefaultStyle()), nil
}

func LoadStyleFile(file string) (DonutStyle, error) {
	f, err := os.Open(file)
	if err != nil {
		return DonutStyle{}, err
	}
	defer f.Close()
	return LoadStyle(f)
}

func (t Theme) merge(s DonutStyle) DonutStyle {
	if t.BorderSize != nil {
		s.BorderSize = *t.BorderSize
	}
	if t.HoleSize != nil {
		s.HoleSize = *t.HoleSize
	}
	if t.TitleSize != nil {
		s.TitleSize = *t.TitleSize
	}
	if t.LabelSize != nil {
		s.LabelSize = *t.LabelSize
	}
	if t.BorderColor != nil {
		s.BorderColor = *t.BorderColor
	}
	if t.HoleColor != nil {
		s.HoleColor = *t.HoleColor
	}
	if t.TitleColor != nil {
		s.TitleColor = *t.TitleColor
	}
	if t.LabelColor != nil {
		s.LabelColor = *t.LabelColor
	}
	if len(t.WedgeColors) > 0 {
		s.WedgeColors = Palette(t.WedgeColors)
	}
	if t.InitAngle != nil {
		s.InitAngle = *t.InitAngle
	}
	return s
}
