package donuts

import (
	"math"
)

type Wedge struct {
	Weight float64
	Label  string

	DX     float64
	DY     float64
	Rotate bool
}

func MakeWedge(weight float64, label string) Wedge {
	return Wedge{
		Weight: weight,
		Label:  label,
	}
}

type Dataset []Wedge

func (d Dataset) Total() float64 {
	var total float64
	for _, w := range d {
		total += w.Weight
	}
	return total
}

func (d Dataset) check() (float64, error) {
	var total float64
	for i, w := range d {
		if w.Weight < 0 || math.IsNaN(w.Weight) || math.IsInf(w.Weight, 0) {
			return 0, WeightError{
				Index:  i,
				Weight: w.Weight,
			}
		}
		total += w.Weight
	}
	if total == 0 {
		return 0, ErrNoWeight
	}
	return total, nil
}
