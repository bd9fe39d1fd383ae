package generate

import (
	"bytes"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/mathexam/mathexam/internal/mascot"
	"github.com/mathexam/mathexam/internal/render"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("old"), 0o644))
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func TestIsGenerated(t *testing.T) {
	require.True(t, IsGenerated("mascot_idle_1.png"))
	require.True(t, IsGenerated("mascot_foo.png"))
	require.True(t, IsGenerated("mini_rocket.png"))
	require.False(t, IsGenerated("other.png"))
	require.False(t, IsGenerated("mascot_notes.txt"))
	require.False(t, IsGenerated("my_mascot_a.png"))
}

func TestCleanStale(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"mascot_idle_1.png", "mascot_foo.png", "mini_rocket.png", "other.png"} {
		touch(t, dir, name)
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "mascot_dir.png"), 0o755))

	var out bytes.Buffer
	g := New(dir)
	g.Out = &out

	removed, err := g.CleanStale()
	require.NoError(t, err)
	sort.Strings(removed)
	require.Equal(t, []string{"mascot_foo.png", "mascot_idle_1.png", "mini_rocket.png"}, removed)
	require.Equal(t, []string{"mascot_dir.png", "other.png"}, listDir(t, dir))
	require.Equal(t, 3, strings.Count(out.String(), "Removed old mascot: "))
}

func TestCleanStaleMissingDir(t *testing.T) {
	g := New(filepath.Join(t.TempDir(), "nope"))
	_, err := g.CleanStale()
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRunWritesEveryFrame(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "mascot_stale.png")
	touch(t, dir, "style.css")

	var out bytes.Buffer
	g := New(dir)
	g.Out = &out

	written, err := g.Run()
	require.NoError(t, err)

	frames := mascot.DefaultFrames()
	require.Len(t, written, frames.Len()+1)

	var want []string
	for _, name := range frames.Names() {
		want = append(want, mascot.FileName(name))
	}
	want = append(want, mascot.MiniFileName, "style.css")
	sort.Strings(want)
	require.Equal(t, want, listDir(t, dir))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1+frames.Len()+1)
	require.Equal(t, "Removed old mascot: mascot_stale.png", lines[0])
	require.Equal(t, "Mascot art saved to "+filepath.Join(dir, "mascot_idle_1.png"), lines[1])
	require.Equal(t, "Mascot art saved to "+filepath.Join(dir, mascot.MiniFileName), lines[len(lines)-1])
}

func TestGenerateScales(t *testing.T) {
	dir := t.TempDir()
	g := New(dir)

	_, err := g.Generate()
	require.NoError(t, err)

	cases := map[string]int{
		"mascot_idle_1.png":      render.DefaultScale,
		"mascot_mini_rocket.png": render.DefaultScale,
		mascot.MiniFileName:      render.MiniScale,
	}
	for name, scale := range cases {
		f, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err)
		cfg, err := png.DecodeConfig(f)
		_ = f.Close()
		require.NoError(t, err)
		require.Equal(t, render.CanvasWidth*scale, cfg.Width, name)
		require.Equal(t, render.CanvasHeight*scale, cfg.Height, name)
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	g := New(dir)

	_, err := g.Run()
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(dir, "mascot_correct_1.png"))
	require.NoError(t, err)

	_, err = g.Run()
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(dir, "mascot_correct_1.png"))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestGenerateStopsOnFirstError(t *testing.T) {
	dir := t.TempDir()
	g := New(dir)
	g.Scale = 0

	written, err := g.Generate()
	require.ErrorIs(t, err, render.ErrInvalidScale)
	require.Empty(t, written)
	require.Empty(t, listDir(t, dir))
}

func TestGenerateRequiresMiniFrame(t *testing.T) {
	set, err := mascot.NewFrameSet(mascot.NamedFrame{Name: "solo", Frame: mascot.Frame{"R"}})
	require.NoError(t, err)

	dir := t.TempDir()
	g := New(dir)
	g.Frames = set

	written, err := g.Generate()
	require.Error(t, err)
	require.Equal(t, []string{filepath.Join(dir, "mascot_solo.png")}, written)

	f, err := os.Open(written[0])
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 300, 280), img.Bounds())
}
