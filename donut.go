// Package donuts generates donut and pie charts as SVG element trees,
// and composes them onto page canvases.
package donuts

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

const xmlns = "http://www.w3.org/2000/svg"

const (
	pathdata = "M %v,%v L %s A %v,%v 0 %d,1 %s Z"
	fulldata = "M %v,%v L %s A %v,%v 0 1,1 %s A %v,%v 0 1,1 %s Z"
)

func (s DonutStyle) Generate(data Dataset, title string) (*etree.Element, error) {
	total, err := data.check()
	if err != nil {
		return nil, err
	}
	if len(s.WedgeColors) == 0 {
		s.WedgeColors = DefaultColors
	}
	var (
		radius = ChartSize / 2
		center = NewPoint(radius, radius)
		rhole  = s.HoleSize * ChartSize / 2
		rtext  = (radius + rhole) / 2
		colors = NewCycle(s.WedgeColors)
		angles = boundaries(s.InitAngle, data, total)
	)
	root := etree.NewElement("svg")
	root.CreateAttr("viewBox", fmt.Sprintf("0 0 %v %v", dec(ChartSize), dec(ChartSize)))

	chart := root.CreateElement("g")
	chart.CreateAttr("stroke", s.BorderColor)
	chart.CreateAttr("stroke-width", fmt.Sprintf("%v", dec(s.BorderSize*ChartSize)))

	css := chart.CreateElement("style")
	css.SetText(strings.Join([]string{
		fmt.Sprintf(fontspec, "title", dec(s.TitleSize*ChartSize), s.TitleColor),
		fmt.Sprintf(fontspec, "label", dec(s.LabelSize*ChartSize), s.LabelColor),
	}, "\n"))

	start := center.onCircle(radius, angles[0])
	for i, w := range data {
		var (
			finish = center.onCircle(radius, angles[i+1])
			large  = 0
			item   = chart.CreateElement("g")
		)
		if w.Weight > total/2 {
			large = 1
		}
		wedge := item.CreateElement("path")
		wedge.CreateAttr("d", arcPath(center, radius, start, finish, large))
		wedge.CreateAttr("fill", colors.Next())

		// labels sit halfway along the bisecting radial, between hole and edge
		var (
			bisect = (angles[i] + angles[i+1]) / 2
			at     = center.onCircle(rtext, bisect)
			turn   float64
		)
		at.X += w.DX * ChartSize
		at.Y += w.DY * ChartSize
		if w.Rotate {
			turn = bisect * rad2deg
		}
		if turn <= -90 || turn >= 90 {
			turn -= 180
		}
		label := item.CreateElement("text")
		label.CreateAttr("x", "0")
		label.CreateAttr("y", "0")
		label.CreateAttr("class", "label")
		label.CreateAttr("transform", fmt.Sprintf("translate(%v %v) rotate(%v)", dec(at.X), dec(at.Y), dec(turn)))
		label.SetText(w.Label)

		start = finish
	}
	if s.HoleSize > 0 {
		item := chart.CreateElement("g")

		hole := item.CreateElement("circle")
		hole.CreateAttr("cx", fmt.Sprintf("%v", dec(center.X)))
		hole.CreateAttr("cy", fmt.Sprintf("%v", dec(center.Y)))
		hole.CreateAttr("r", fmt.Sprintf("%v", dec(rhole)))
		hole.CreateAttr("fill", s.HoleColor)

		label := item.CreateElement("text")
		label.CreateAttr("x", fmt.Sprintf("%v", dec(center.X)))
		label.CreateAttr("y", fmt.Sprintf("%v", dec(center.Y)))
		label.CreateAttr("class", "title")
		label.SetText(title)
	}
	return root, nil
}

func (s DonutStyle) Render(w io.Writer, data Dataset, title string) error {
	el, err := s.Generate(data, title)
	if err != nil {
		return err
	}
	el.CreateAttr("xmlns", xmlns)

	doc := etree.NewDocument()
	doc.SetRoot(el)

	bw := bufio.NewWriter(w)
	if _, err := doc.WriteTo(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// arcPath outlines a wedge from the center to the rim and back. A wedge
// spanning the whole turn rounds to identical arc endpoints, which
// renderers drop, so it is drawn as two half turns instead.
func arcPath(center Point, radius float64, start, finish Point, large int) string {
	var (
		from = fmt.Sprintf("%v,%v", dec(start.X), dec(start.Y))
		to   = fmt.Sprintf("%v,%v", dec(finish.X), dec(finish.Y))
	)
	if large == 1 && from == to {
		away := NewPoint(2*center.X-start.X, 2*center.Y-start.Y)
		half := fmt.Sprintf("%v,%v", dec(away.X), dec(away.Y))
		return fmt.Sprintf(fulldata, dec(center.X), dec(center.Y), from,
			dec(radius), dec(radius), half,
			dec(radius), dec(radius), to)
	}
	return fmt.Sprintf(pathdata, dec(center.X), dec(center.Y), from,
		dec(radius), dec(radius), large, to)
}

// boundary angles derive from cumulative weights, never from the previous
// angle, to keep rounding errors from compounding
func boundaries(init float64, data Dataset, total float64) []float64 {
	var (
		angles = make([]float64, 0, len(data)+1)
		cum    float64
	)
	angles = append(angles, init)
	for _, w := range data {
		cum += w.Weight
		angles = append(angles, init+(cum/total)*fullcircle)
	}
	return angles
}
