package donuts

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCanvas(t *testing.T) {
	page := NewCanvas(24, 10)
	assert.Equal(t, 24.0, page.Width)
	assert.Equal(t, 10.0, page.Height)
	assert.Equal(t, xmlns, page.Root.SelectAttrValue("xmlns", ""))
	assert.Equal(t, "1.1", page.Root.SelectAttrValue("version", ""))
	assert.Equal(t, "24cm", page.Root.SelectAttrValue("width", ""))
	assert.Equal(t, "10cm", page.Root.SelectAttrValue("height", ""))
	assert.Equal(t, "0 0 24 10", page.Root.SelectAttrValue("viewBox", ""))
}

func TestNewCanvasOptions(t *testing.T) {
	page := NewCanvas(8, 4, WithUnits("in"), WithScale(100))
	assert.Equal(t, 800.0, page.Width)
	assert.Equal(t, 400.0, page.Height)
	assert.Equal(t, "8in", page.Root.SelectAttrValue("width", ""))
	assert.Equal(t, "4in", page.Root.SelectAttrValue("height", ""))
	assert.Equal(t, "0 0 800 400", page.Root.SelectAttrValue("viewBox", ""))
}

func TestAddGraphicPlacement(t *testing.T) {
	graphic := etree.NewElement("svg")
	graphic.CreateAttr("viewBox", "0 0 200 100")

	page := NewCanvas(10, 10)
	require.NoError(t, page.AddGraphic(graphic, WithPosition(1.5, 2)))

	placed := page.Root.SelectElement("svg")
	require.NotNil(t, placed)
	assert.Equal(t, "1.5", placed.SelectAttrValue("x", ""))
	assert.Equal(t, "2", placed.SelectAttrValue("y", ""))
	assert.Equal(t, "", placed.SelectAttrValue("width", ""))
	assert.Equal(t, "", placed.SelectAttrValue("height", ""))
}

func TestAddGraphicAspect(t *testing.T) {
	graphic := etree.NewElement("svg")
	graphic.CreateAttr("viewBox", "0 0 200 100")

	page := NewCanvas(10, 10)
	require.NoError(t, page.AddGraphic(graphic, WithWidth(5)))
	require.NoError(t, page.AddGraphic(graphic, WithHeight(2)))
	require.NoError(t, page.AddGraphic(graphic, WithWidth(3), WithHeight(3)))

	placed := page.Root.SelectElements("svg")
	require.Len(t, placed, 3)

	assert.Equal(t, "5", placed[0].SelectAttrValue("width", ""))
	assert.Equal(t, "2.5", placed[0].SelectAttrValue("height", ""))

	assert.Equal(t, "4", placed[1].SelectAttrValue("width", ""))
	assert.Equal(t, "2", placed[1].SelectAttrValue("height", ""))

	assert.Equal(t, "3", placed[2].SelectAttrValue("width", ""))
	assert.Equal(t, "3", placed[2].SelectAttrValue("height", ""))
}

func TestAddGraphicCopies(t *testing.T) {
	graphic := etree.NewElement("svg")
	graphic.CreateAttr("viewBox", "0 0 10 10")
	inner := graphic.CreateElement("circle")

	page := NewCanvas(10, 10)
	require.NoError(t, page.AddGraphic(graphic))

	inner.CreateAttr("fill", "black")
	graphic.CreateAttr("width", "999")

	placed := page.Root.SelectElement("svg")
	require.NotNil(t, placed)
	assert.Equal(t, "", placed.SelectAttrValue("width", ""))
	circle := placed.SelectElement("circle")
	require.NotNil(t, circle)
	assert.Equal(t, "", circle.SelectAttrValue("fill", ""))

	assert.Equal(t, "999", graphic.SelectAttrValue("width", ""))
	assert.Equal(t, "", graphic.SelectAttrValue("x", ""))
}

func TestAddGraphicRejects(t *testing.T) {
	page := NewCanvas(10, 10)

	var gerr GraphicError
	err := page.AddGraphic(etree.NewElement("g"))
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "g", gerr.Tag)

	assert.Error(t, page.AddGraphic(nil))
	assert.Empty(t, page.Root.ChildElements())
}

func TestAddGraphicBadViewBox(t *testing.T) {
	page := NewCanvas(10, 10)

	graphic := etree.NewElement("svg")
	assert.Error(t, page.AddGraphic(graphic, WithWidth(5)))

	graphic.CreateAttr("viewBox", "0 0 zero ten")
	assert.Error(t, page.AddGraphic(graphic, WithWidth(5)))

	graphic.CreateAttr("viewBox", "0 0 0 100")
	assert.Error(t, page.AddGraphic(graphic, WithHeight(5)))

	assert.Empty(t, page.Root.ChildElements())
}

func TestWritePretty(t *testing.T) {
	page := NewCanvas(10, 10)
	chart, err := DefaultStyle().Generate(Dataset{MakeWedge(3, "a"), MakeWedge(1, "b")}, "t")
	require.NoError(t, err)
	require.NoError(t, page.AddGraphic(chart, WithWidth(10)))

	var pretty bytes.Buffer
	require.NoError(t, page.Write(&pretty))
	out := pretty.String()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0"?>`))
	assert.Contains(t, out, "\n  <svg")

	var again bytes.Buffer
	require.NoError(t, page.Write(&again))
	assert.Equal(t, out, again.String())

	assert.Equal(t, out, page.String())
}

func TestWriteDoctype(t *testing.T) {
	page := NewCanvas(10, 10)

	var buf bytes.Buffer
	require.NoError(t, page.WriteDoctype(&buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, xmldecl+doctype+"<svg"))
	assert.NotContains(t, out, "\n  <")
}

func TestWriteCompact(t *testing.T) {
	page := NewCanvas(10, 10)
	chart, err := DefaultStyle().Generate(Dataset{MakeWedge(3, "a"), MakeWedge(1, "b")}, "t")
	require.NoError(t, err)
	require.NoError(t, page.AddGraphic(chart, WithWidth(10)))

	var pretty, small bytes.Buffer
	require.NoError(t, page.Write(&pretty))
	require.NoError(t, page.WriteCompact(&small))
	assert.Less(t, small.Len(), pretty.Len())
	assert.Contains(t, small.String(), "<svg")
}

func TestWriteFile(t *testing.T) {
	page := NewCanvas(12, 12)

	file := filepath.Join(t.TempDir(), "page.svg")
	require.NoError(t, page.WriteFile(file))

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), `<?xml version="1.0"?>`))
	assert.Contains(t, string(content), `width="12cm"`)

	err = page.WriteFile(filepath.Join(t.TempDir(), "missing", "page.svg"))
	assert.Error(t, err)
}

func TestWriteGraphic(t *testing.T) {
	chart, err := DefaultStyle().Generate(Dataset{MakeWedge(1, "")}, "")
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "chart.svg")
	require.NoError(t, WriteGraphic(chart, file, 12))

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(content), `width="12cm"`)
	assert.Contains(t, string(content), `viewBox="0 0 12 12"`)
	assert.Contains(t, string(content), `viewBox="0 0 1000 1000"`)

	assert.Error(t, WriteGraphic(etree.NewElement("g"), file, 12))
}
