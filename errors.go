package donuts

import (
	"errors"
	"fmt"
)

var ErrNoWeight = errors.New("dataset has no weight to distribute")

type WeightError struct {
	Index  int
	Weight float64
}

func (e WeightError) Error() string {
	return fmt.Sprintf("weight %v of wedge %d is not a finite non-negative number", e.Weight, e.Index)
}

type GraphicError struct {
	Tag string
}

func (e GraphicError) Error() string {
	return fmt.Sprintf("%s element can not be placed on a canvas, only svg", e.Tag)
}
