package donuts

import (
	"testing"
)

func TestDecFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{1000, "1000"},
		{2.5, "2.5"},
		{-80, "-80"},
		{0.125, "0.125"},
		{10, "10"},
		{1075, "1075"},
	}
	for _, c := range tests {
		if got := dec(c.in).String(); got != c.want {
			t.Errorf("dec(%v): want %q, got %q", c.in, c.want, got)
		}
	}
}
