package palette

import (
	"encoding/json"
	"testing"

	"github.com/mmuldo/colorlab/colorspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c := New(colorspace.RGB{R: 255, B: 128})
	assert.Equal(t, "#ff0080", c.Hex)
	assert.Equal(t, colorspace.RGBToLab(255, 0, 128), c.Lab)
	assert.Equal(t, "#FF0080", c.String())
	assert.Equal(t, "(255, 0, 128)", c.RGBString())
}

func TestLabString(t *testing.T) {
	c := New(colorspace.RGB{R: 255})
	assert.Equal(t, "L*:53.2 a*:80.1 b*:67.2", c.LabString())
}

func TestFromHex(t *testing.T) {
	c, e := FromHex("#FFFFFF")
	require.NoError(t, e)
	assert.Equal(t, "#ffffff", c.Hex)

	_, e = FromHex("nope")
	assert.ErrorIs(t, e, colorspace.ErrInvalidHex)
}

func TestColorJSONShape(t *testing.T) {
	data, e := json.Marshal(New(colorspace.RGB{R: 1, G: 2, B: 3}))
	require.NoError(t, e)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	assert.EqualValues(t, 1, m["r"])
	assert.EqualValues(t, 2, m["g"])
	assert.EqualValues(t, 3, m["b"])
	assert.Equal(t, "#010203", m["hex"])
	assert.Contains(t, m["lab"], "l")
}

func TestAddRejectsDuplicateHex(t *testing.T) {
	var p Palette
	assert.True(t, p.Add(New(colorspace.RGB{R: 10})))
	assert.True(t, p.Add(New(colorspace.RGB{G: 10})))

	dup := New(colorspace.RGB{R: 10})
	dup.Hex = "#0A0000"
	assert.False(t, p.Add(dup))
	assert.Len(t, p, 2)
	assert.Equal(t, 1, p.Index("#000a00"))
	assert.Equal(t, -1, p.Index("#123456"))
}

func TestRemove(t *testing.T) {
	p := Palette{New(colorspace.RGB{R: 1}), New(colorspace.RGB{R: 2}), New(colorspace.RGB{R: 3})}

	c, e := p.Remove(1)
	require.NoError(t, e)
	assert.Equal(t, "#020000", c.Hex)
	assert.Equal(t, []string{"#010000", "#030000"}, []string{p[0].Hex, p[1].Hex})

	_, e = p.Remove(2)
	assert.ErrorIs(t, e, ErrIndex)
	_, e = p.Remove(-1)
	assert.ErrorIs(t, e, ErrIndex)
}

func TestNearest(t *testing.T) {
	var p Palette
	_, _, ok := p.Nearest(New(colorspace.RGB{}))
	assert.False(t, ok)

	p = Palette{
		New(colorspace.RGB{R: 255, G: 255, B: 255}),
		New(colorspace.RGB{R: 250}),
		New(colorspace.RGB{B: 255}),
	}
	c, d, ok := p.Nearest(New(colorspace.RGB{R: 255}))
	assert.True(t, ok)
	assert.Equal(t, "#fa0000", c.Hex)
	assert.Greater(t, d, 0.0)
	assert.Less(t, d, 5.0)
}

func TestSortByLightness(t *testing.T) {
	p := Palette{
		New(colorspace.RGB{R: 255, G: 255, B: 255}),
		New(colorspace.RGB{}),
		New(colorspace.RGB{R: 128, G: 128, B: 128}),
	}
	s := p.SortByLightness()
	assert.Equal(t, []string{"#000000", "#808080", "#ffffff"}, []string{s[0].Hex, s[1].Hex, s[2].Hex})
	assert.Equal(t, "#ffffff", p[0].Hex)
}
