package donuts

import (
	"math"
)

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (p Point) onCircle(radius, angle float64) Point {
	return Point{
		X: p.X + radius*math.Cos(angle),
		Y: p.Y + radius*math.Sin(angle),
	}
}
