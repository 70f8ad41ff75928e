package donuts

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
)

const (
	xmldecl = `<?xml version="1.0" standalone="no"?>`
	doctype = `<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">`
)

var compact *minify.M

func init() {
	compact = minify.New()
	compact.AddFunc("image/svg+xml", svg.Minify)
}

// Canvas is a page that charts are placed on. Placing and writing are not
// safe for concurrent use, one writer at a time.
type Canvas struct {
	Width  float64
	Height float64
	Root   *etree.Element
}

type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	units string
	scale float64
}

// WithUnits sets the dimension suffix of the page size, cm by default.
// SVG accepts cm, in, mm, pc, pt and px.
func WithUnits(units string) CanvasOption {
	return func(c *canvasOptions) {
		c.units = units
	}
}

// WithScale sets the px-per-unit scale of the page coordinate space.
func WithScale(scale float64) CanvasOption {
	return func(c *canvasOptions) {
		c.scale = scale
	}
}

func NewCanvas(width, height float64, options ...CanvasOption) *Canvas {
	opts := canvasOptions{
		units: "cm",
		scale: 1,
	}
	for _, opt := range options {
		opt(&opts)
	}
	root := etree.NewElement("svg")
	root.CreateAttr("xmlns", xmlns)
	root.CreateAttr("version", "1.1")
	root.CreateAttr("width", fmt.Sprintf("%v%s", dec(width), opts.units))
	root.CreateAttr("height", fmt.Sprintf("%v%s", dec(height), opts.units))
	root.CreateAttr("viewBox", fmt.Sprintf("0 0 %v %v", dec(opts.scale*width), dec(opts.scale*height)))
	return &Canvas{
		Width:  opts.scale * width,
		Height: opts.scale * height,
		Root:   root,
	}
}

type GraphicOption func(*placement)

type placement struct {
	x         float64
	y         float64
	width     float64
	height    float64
	hasWidth  bool
	hasHeight bool
}

func WithPosition(x, y float64) GraphicOption {
	return func(p *placement) {
		p.x = x
		p.y = y
	}
}

func WithWidth(width float64) GraphicOption {
	return func(p *placement) {
		p.width = width
		p.hasWidth = true
	}
}

func WithHeight(height float64) GraphicOption {
	return func(p *placement) {
		p.height = height
		p.hasHeight = true
	}
}

// AddGraphic places a copy of graphic on the page, the caller's element is
// never altered. When only one of width and height is given, the other is
// derived from the graphic's viewBox so the aspect ratio holds.
func (c *Canvas) AddGraphic(graphic *etree.Element, options ...GraphicOption) error {
	if graphic == nil || graphic.Tag != "svg" {
		var tag string
		if graphic != nil {
			tag = graphic.Tag
		}
		return GraphicError{
			Tag: tag,
		}
	}
	var place placement
	for _, opt := range options {
		opt(&place)
	}
	clone := graphic.Copy()
	clone.CreateAttr("x", fmt.Sprintf("%v", dec(place.x)))
	clone.CreateAttr("y", fmt.Sprintf("%v", dec(place.y)))
	if place.hasWidth {
		clone.CreateAttr("width", fmt.Sprintf("%v", dec(place.width)))
		if !place.hasHeight {
			vw, vh, err := viewboxSize(graphic)
			if err != nil {
				return err
			}
			clone.CreateAttr("height", fmt.Sprintf("%v", dec(place.width*vh/vw)))
		}
	}
	if place.hasHeight {
		clone.CreateAttr("height", fmt.Sprintf("%v", dec(place.height)))
		if !place.hasWidth {
			vw, vh, err := viewboxSize(graphic)
			if err != nil {
				return err
			}
			clone.CreateAttr("width", fmt.Sprintf("%v", dec(place.height*vw/vh)))
		}
	}
	c.Root.AddChild(clone)
	return nil
}

func viewboxSize(graphic *etree.Element) (float64, float64, error) {
	var (
		attr   = graphic.SelectAttrValue("viewBox", "")
		fields = strings.Fields(attr)
	)
	if len(fields) != 4 {
		return 0, 0, fmt.Errorf("graphic has no usable viewBox (%q)", attr)
	}
	width, werr := strconv.ParseFloat(fields[2], 64)
	height, herr := strconv.ParseFloat(fields[3], 64)
	if werr != nil || herr != nil || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("graphic has no usable viewBox (%q)", attr)
	}
	return width, height, nil
}

// Write emits the page pretty-printed. Serialization works on a copy, the
// page tree itself stays untouched however often it is written.
func (c *Canvas) Write(w io.Writer) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)
	doc.SetRoot(c.Root.Copy())
	doc.Indent(2)

	bw := bufio.NewWriter(w)
	if _, err := doc.WriteTo(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteDoctype emits the page prefixed with the SVG 1.1 DTD reference,
// unindented.
func (c *Canvas) WriteDoctype(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := io.WriteString(bw, xmldecl); err != nil {
		return err
	}
	if _, err := io.WriteString(bw, doctype); err != nil {
		return err
	}
	if _, err := c.document().WriteTo(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteCompact emits the page through the SVG minifier.
func (c *Canvas) WriteCompact(w io.Writer) error {
	var buf bytes.Buffer
	if _, err := c.document().WriteTo(&buf); err != nil {
		return err
	}
	return compact.Minify("image/svg+xml", w, &buf)
}

func (c *Canvas) WriteFile(file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := c.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (c *Canvas) String() string {
	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func (c *Canvas) document() *etree.Document {
	doc := etree.NewDocument()
	doc.SetRoot(c.Root.Copy())
	return doc
}

// WriteGraphic puts a single chart on a square page of the given width and
// saves it.
func WriteGraphic(graphic *etree.Element, file string, width float64) error {
	page := NewCanvas(width, width)
	if err := page.AddGraphic(graphic); err != nil {
		return err
	}
	return page.WriteFile(file)
}
