package donuts

import (
	"fmt"
	"math"

	"github.com/tdewolff/minify/v2"
)

const (
	fullcircle = 2 * math.Pi
	rad2deg    = 180 / math.Pi
)

const precision = 6

type dec float64

func (f dec) String() string {
	s := fmt.Sprintf("%.*f", precision, float64(f))
	return string(minify.Decimal([]byte(s), precision))
}
