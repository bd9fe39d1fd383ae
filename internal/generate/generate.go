// Package generate writes the mascot PNGs used by the quiz pages.
package generate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mathexam/mathexam/internal/logging"
	"github.com/mathexam/mathexam/internal/mascot"
	"github.com/mathexam/mathexam/internal/render"
)

// DefaultDir is where the web app serves mascot images from.
const DefaultDir = "static"

// IsGenerated reports whether name follows the generated file naming.
func IsGenerated(name string) bool {
	if name == mascot.MiniFileName {
		return true
	}
	return strings.HasPrefix(name, mascot.FilePrefix) && strings.HasSuffix(name, mascot.FileExt)
}

// Generator cleans and regenerates the mascot images in Dir.
type Generator struct {
	Dir       string
	Frames    mascot.FrameSet
	Raster    render.Rasterizer
	Scale     int
	MiniScale int

	// Out receives one progress line per removed or written file.
	Out    io.Writer
	Logger logging.Logger
}

// New returns a generator for the default frames writing into dir.
func New(dir string) *Generator {
	return &Generator{
		Dir:       dir,
		Frames:    mascot.DefaultFrames(),
		Raster:    render.NewRasterizer(mascot.DefaultColorMap()),
		Scale:     render.DefaultScale,
		MiniScale: render.MiniScale,
		Out:       io.Discard,
		Logger:    logging.NoopLogger{},
	}
}

func (g *Generator) out() io.Writer {
	if g.Out == nil {
		return io.Discard
	}
	return g.Out
}

func (g *Generator) logger() logging.Logger {
	if g.Logger == nil {
		return logging.NoopLogger{}
	}
	return g.Logger
}

func (g *Generator) dir() string {
	if g.Dir == "" {
		return DefaultDir
	}
	return g.Dir
}

// CleanStale removes previously generated images from Dir and returns the
// removed file names. Other files are left alone.
func (g *Generator) CleanStale() ([]string, error) {
	dir := g.dir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	var removed []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !IsGenerated(name) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return removed, fmt.Errorf("remove %s: %w", name, err)
		}
		removed = append(removed, name)
		fmt.Fprintf(g.out(), "Removed old mascot: %s\n", name)
		g.logger().Infof("generate", "removed %s", name)
	}
	return removed, nil
}

// Generate renders every frame to mascot_<name>.png at Scale, then the mini
// frame once more to mini_rocket.png at MiniScale. It returns the written
// paths. The first failure aborts the run; files already written stay.
func (g *Generator) Generate() ([]string, error) {
	dir := g.dir()
	var written []string
	for _, name := range g.Frames.Names() {
		frame, _ := g.Frames.Frame(name)
		path := filepath.Join(dir, mascot.FileName(name))
		if err := g.render(frame, path, g.Scale); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	mini, ok := g.Frames.Frame(mascot.MiniFrame)
	if !ok {
		return written, fmt.Errorf("frame %q not defined", mascot.MiniFrame)
	}
	path := filepath.Join(dir, mascot.MiniFileName)
	if err := g.render(mini, path, g.MiniScale); err != nil {
		return written, err
	}
	return append(written, path), nil
}

// Run cleans stale images and regenerates all of them.
func (g *Generator) Run() ([]string, error) {
	if _, err := g.CleanStale(); err != nil {
		return nil, err
	}
	return g.Generate()
}

func (g *Generator) render(frame mascot.Frame, path string, scale int) error {
	if err := g.Raster.Render(frame, path, scale); err != nil {
		g.logger().Errorf("generate", "render %s failed: %v", path, err)
		return fmt.Errorf("render %s: %w", path, err)
	}
	fmt.Fprintf(g.out(), "Mascot art saved to %s\n", path)
	g.logger().Infof("generate", "wrote %s at scale %d", path, scale)
	return nil
}
