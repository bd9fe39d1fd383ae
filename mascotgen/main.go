// Command mascotgen regenerates the mascot PNGs served by the web app.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mathexam/mathexam/internal/console"
	"github.com/mathexam/mathexam/internal/generate"
	"github.com/mathexam/mathexam/internal/logging"
	"github.com/mathexam/mathexam/internal/mascot"
	"github.com/mathexam/mathexam/internal/render"
)

type options struct {
	dir      string
	sheet    string
	inline   bool
	fbDevice string
	debug    bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("mascotgen", flag.ContinueOnError)
	fs.StringVar(&opts.dir, "dir", generate.DefaultDir, "directory to write the mascot images into")
	fs.StringVar(&opts.sheet, "sheet", "", "also write a contact sheet of every frame to this path")
	fs.BoolVar(&opts.inline, "inline", false, "print each frame inline when running in iTerm2")
	fs.StringVar(&opts.fbDevice, "fb", "", "play the idle animation on this framebuffer device, e.g. /dev/fb0")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.New(os.Stderr, logging.Options{Debug: opts.debug})

	if err := run(os.Stdout, opts, logger); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// run cleans and regenerates the images, then produces any requested
// previews. Progress lines go to out.
func run(out io.Writer, opts options, logger logging.Logger) error {
	g := generate.New(opts.dir)
	g.Out = out
	g.Logger = logger
	if _, err := g.Run(); err != nil {
		return err
	}

	if opts.sheet != "" {
		s := render.Sheet{Raster: g.Raster, Logger: logger}
		if err := s.Render(g.Frames, opts.sheet); err != nil {
			return fmt.Errorf("sheet: %w", err)
		}
		fmt.Fprintln(out, "Contact sheet saved to", opts.sheet)
	}

	if opts.inline {
		if !render.InlineCompatible(int(os.Stdout.Fd())) {
			logger.Errorf("inline", "stdout is not an iTerm2 terminal, skipping inline preview")
		} else if err := printInline(out, g); err != nil {
			return fmt.Errorf("inline preview: %w", err)
		}
	}

	if opts.fbDevice != "" {
		return playIdle(g, opts.fbDevice, logger)
	}
	return nil
}

func printInline(out io.Writer, g *generate.Generator) error {
	for _, name := range g.Frames.Names() {
		frame, _ := g.Frames.Frame(name)
		img, err := g.Raster.Image(frame, render.MiniScale)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, name)
		if err := render.WriteInlineImage(out, mascot.FileName(name), img); err != nil {
			return err
		}
	}
	return nil
}

// playIdle loops the idle animation until interrupted or a quit key is
// pressed.
func playIdle(g *generate.Generator, device string, logger logging.Logger) error {
	var frames []image.Image
	for _, name := range mascot.Animations()[mascot.AnimationIdle] {
		frame, ok := g.Frames.Frame(name)
		if !ok {
			return fmt.Errorf("idle animation frame %q not found", name)
		}
		img, err := g.Raster.Image(frame, 1)
		if err != nil {
			return err
		}
		frames = append(frames, img)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	console.WatchQuit(ctx, logger, console.DefaultQuitKeys, stop)
	restore := console.Takeover(logger)
	defer restore()

	preview := render.FBPreview{Device: device, Logger: logger}
	if err := preview.Play(ctx, frames, 0); err != nil && ctx.Err() == nil {
		return fmt.Errorf("framebuffer preview: %w", err)
	}
	return nil
}
