package donuts

type Palette []string

var (
	DefaultColors Palette
	Category10    Palette
	Tableau10     Palette
)

func init() {
	DefaultColors = Palette{"red", "blue", "green", "orange", "teal", "brown", "magenta", "cyan"}
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// Cycle yields colors from a snapshot of its palette, wrapping around
// indefinitely. Changing the source slice afterwards has no effect on it.
type Cycle struct {
	colors Palette
	next   int
}

func NewCycle(colors Palette) *Cycle {
	arr := make(Palette, len(colors))
	copy(arr, colors)
	return &Cycle{
		colors: arr,
	}
}

func (c *Cycle) Next() string {
	if len(c.colors) == 0 {
		return ""
	}
	color := c.colors[c.next]
	c.next = (c.next + 1) % len(c.colors)
	return color
}
