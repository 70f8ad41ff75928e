package donuts

import (
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

// Values adapts a dataset for go-chart rendering.
func Values(data Dataset) []chart.Value {
	var values []chart.Value
	for _, w := range data {
		values = append(values, chart.Value{
			Value: w.Weight,
			Label: w.Label,
		})
	}
	return values
}

// RenderPNG rasterizes the dataset through go-chart, as a donut when the
// style has a hole and as a pie otherwise. Only weights and labels carry
// over, the vector styling does not.
func RenderPNG(w io.Writer, s DonutStyle, data Dataset, title string, width, height int) error {
	if _, err := data.check(); err != nil {
		return err
	}
	if s.HoleSize > 0 {
		donut := chart.DonutChart{
			Title:  title,
			Width:  width,
			Height: height,
			Values: Values(data),
		}
		return donut.Render(chart.PNG, w)
	}
	pie := chart.PieChart{
		Title:  title,
		Width:  width,
		Height: height,
		Values: Values(data),
	}
	return pie.Render(chart.PNG, w)
}
