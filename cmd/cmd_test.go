package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/mmuldo/colorlab/colorspace"
	"github.com/mmuldo/colorlab/compare"
	"github.com/mmuldo/colorlab/export"
	"github.com/mmuldo/colorlab/sampler"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the CLI against the database at db.
func run(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--db", db, "--plain", "--log-level", "error"}, args...))
	e := rootCmd.Execute()
	return out.String(), e
}

// writes a 20x20 PNG: left half red, right half white
func fixture(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			c := color.NRGBA{R: 255, A: 255}
			if x >= 10 {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "fixture.png")
	f, e := os.Create(path)
	require.NoError(t, e)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestPaletteCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "colorlab.db")

	out, e := run(t, db, "palette", "list")
	require.NoError(t, e)
	assert.Contains(t, out, "palette is empty")

	_, e = run(t, db, "palette", "add", "#FF0000", "00ff00")
	require.NoError(t, e)
	out, e = run(t, db, "palette", "add", "#ff0000")
	require.NoError(t, e)
	assert.Contains(t, out, "#FF0000 is already in the palette")

	out, e = run(t, db, "palette", "list")
	require.NoError(t, e)
	assert.Contains(t, out, "#FF0000")
	assert.Contains(t, out, "#00FF00")

	_, e = run(t, db, "palette", "remove", "0")
	require.NoError(t, e)
	out, e = run(t, db, "palette", "list")
	require.NoError(t, e)
	assert.NotContains(t, out, "#FF0000")

	_, e = run(t, db, "palette", "remove", "5")
	assert.Error(t, e)
	_, e = run(t, db, "palette", "add", "#nothex")
	assert.Error(t, e)
}

func TestPaletteListByLightness(t *testing.T) {
	db := filepath.Join(t.TempDir(), "colorlab.db")

	_, e := run(t, db, "palette", "add", "#ffffff", "#000000", "#808080")
	require.NoError(t, e)

	out, e := run(t, db, "palette", "list", "--by-lightness")
	require.NoError(t, e)
	black := strings.Index(out, "1         #000000")
	gray := strings.Index(out, "2         #808080")
	white := strings.Index(out, "0         #FFFFFF")
	require.True(t, black >= 0 && gray >= 0 && white >= 0, out)
	assert.Less(t, black, gray)
	assert.Less(t, gray, white)
}

func TestSessionsAreSeparate(t *testing.T) {
	db := filepath.Join(t.TempDir(), "colorlab.db")

	_, e := run(t, db, "--session", "alice", "palette", "add", "#123456")
	require.NoError(t, e)

	out, e := run(t, db, "--session", "bob", "palette", "list")
	require.NoError(t, e)
	assert.Contains(t, out, "palette is empty")

	_, e = run(t, db, "--session", "bob", "palette", "add", "#654321")
	require.NoError(t, e)
	out, e = run(t, db, "sessions")
	require.NoError(t, e)
	assert.Equal(t, "alice\nbob\n", out)

	out, e = run(t, db, "sessions", "delete", "alice")
	require.NoError(t, e)
	assert.Contains(t, out, "deleted session alice")
	out, e = run(t, db, "sessions")
	require.NoError(t, e)
	assert.Equal(t, "bob\n", out)
	out, e = run(t, db, "--session", "alice", "palette", "list")
	require.NoError(t, e)
	assert.Contains(t, out, "palette is empty")
}

func TestSample(t *testing.T) {
	db := filepath.Join(t.TempDir(), "colorlab.db")
	img := fixture(t)
	zoom := filepath.Join(t.TempDir(), "zoom.png")

	out, e := run(t, db, "sample", img, "--x", "2", "--y", "2", "--add", "--zoom", zoom, "--zoom-size", "42")
	require.NoError(t, e)
	assert.Contains(t, out, "#FF0000")

	b, e := sampler.Load(zoom)
	require.NoError(t, e)
	assert.Equal(t, 42, b.Width)

	// 3x3 window straddling the red/white edge: 1 red column, 2 white
	out, e = run(t, db, "sample", img, "--x", "10", "--y", "5", "--size", "3")
	require.NoError(t, e)
	assert.Contains(t, out, "#FFAAAA")
	assert.Contains(t, out, "nearest")

	for _, size := range []string{"4", "0", "-1", "17"} {
		_, e = run(t, db, "sample", img, "--size", size)
		assert.ErrorIs(t, e, sampler.ErrWindowSize, "size %s", size)
	}

	_, e = run(t, db, "sample", img, "--zoom", zoom, "--zoom-size", "0")
	assert.ErrorContains(t, e, "zoom-size must be positive")

	_, e = run(t, db, "sample", filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, e)
}

func TestCompareSaveExportReport(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "colorlab.db")
	img := fixture(t)

	_, e := run(t, db, "compare", img, "--x", "2", "--y", "2")
	assert.Error(t, e)

	out, e := run(t, db, "compare", img, "--x", "2", "--y", "2", "--ref-x", "15", "--ref-y", "15", "--save", "--name", "edge")
	require.NoError(t, e)
	assert.Contains(t, out, "114.56")
	assert.Contains(t, out, "Very different colors")
	de2000 := compare.DeltaE2000(colorspace.RGBToLab(255, 255, 255), colorspace.RGBToLab(255, 0, 0))
	assert.Contains(t, out, "CIEDE2000  "+strconv.FormatFloat(de2000, 'f', 2, 64))
	assert.Contains(t, out, "saved analysis")

	_, e = run(t, db, "palette", "add", "#ff0000")
	require.NoError(t, e)
	out, e = run(t, db, "compare", img, "--x", "3", "--y", "3", "--ref-index", "0", "--save")
	require.NoError(t, e)
	assert.Contains(t, out, "0.00  Imperceptible difference")
	assert.Contains(t, out, "CIEDE2000  0.00")

	_, e = run(t, db, "compare", img, "--ref-hex", "#fff", "--ref-index", "0")
	assert.Error(t, e)

	out, e = run(t, db, "history", "list")
	require.NoError(t, e)
	assert.Contains(t, out, "edge")

	xlsx := filepath.Join(dir, "out.xlsx")
	_, e = run(t, db, "export", "-o", xlsx)
	require.NoError(t, e)

	f, e := excelize.OpenFile(xlsx)
	require.NoError(t, e)
	rows, e := f.GetRows(export.SheetName)
	f.Close()
	require.NoError(t, e)
	require.Len(t, rows, 3)
	// newest first
	assert.Equal(t, "Unnamed", rows[1][1])
	assert.Equal(t, "edge", rows[2][1])

	html := filepath.Join(dir, "report.html")
	out, e = run(t, db, "export", "-o", "-")
	require.NoError(t, e)
	f, e = excelize.OpenReader(strings.NewReader(out))
	require.NoError(t, e)
	rows, e = f.GetRows(export.SheetName)
	f.Close()
	require.NoError(t, e)
	assert.Len(t, rows, 3)

	_, e = run(t, db, "report", "--html", "-o", html)
	require.NoError(t, e)
	data, e := os.ReadFile(html)
	require.NoError(t, e)
	assert.Contains(t, string(data), "badge-imperceptible")

	_, e = run(t, db, "history", "remove", "0")
	require.NoError(t, e)
	_, e = run(t, db, "history", "remove", "0")
	require.NoError(t, e)
	out, e = run(t, db, "history", "list")
	require.NoError(t, e)
	assert.Contains(t, out, "no saved analyses")

	_, e = run(t, db, "export", "-o", xlsx)
	assert.ErrorIs(t, e, export.ErrEmpty)
}

func TestPaletteSuggest(t *testing.T) {
	db := filepath.Join(t.TempDir(), "colorlab.db")
	img := fixture(t)

	out, e := run(t, db, "palette", "suggest", img, "-n", "2", "--add")
	require.NoError(t, e)
	assert.Contains(t, out, " 50.0%  #FF0000")
	assert.Contains(t, out, " 50.0%  #FFFFFF")

	out, e = run(t, db, "palette", "list")
	require.NoError(t, e)
	assert.NotContains(t, out, "palette is empty")
}
