package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/imageio"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneName  string
	width      int
	height     int
	samples    int
	depth      int
	bands      int
	seed       int64
	output     string
	format     string
	sequential bool
	compare    string
	caption    bool
	help       bool
}

func parseFlags(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	opts := &options{}
	fs := flag.NewFlagSet("sphere-tracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.sceneName, "scene", "default", "Scene name: "+strings.Join(scene.Names(), ", "))
	fs.IntVar(&opts.width, "width", 0, "Image width (0 = scene default)")
	fs.IntVar(&opts.height, "height", 0, "Image height (0 = scene default)")
	fs.IntVar(&opts.samples, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&opts.depth, "depth", 0, "Maximum scatter events per path (0 = scene default)")
	fs.IntVar(&opts.bands, "bands", 0, "Number of row bands rendered in parallel (0 = CPU count)")
	fs.Int64Var(&opts.seed, "seed", renderer.DefaultRenderConfig().Seed, "Base random seed; band i uses seed+i")
	fs.StringVar(&opts.output, "output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	fs.StringVar(&opts.format, "format", "", "Output format: ppm, png, bmp or tiff (default from -output, else ppm)")
	fs.BoolVar(&opts.sequential, "sequential", false, "Render all bands on one goroutine")
	fs.StringVar(&opts.compare, "compare", "", "Reference image to compare the render against")
	fs.BoolVar(&opts.caption, "caption", false, "Draw scene name and settings on the image")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	return opts, fs, nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	// Show help if requested
	if opts.help {
		showHelp(stdout, fs)
		return nil
	}

	fmt.Fprintln(stdout, "Starting Sphere Tracer...")

	selectedScene, err := createScene(opts.sceneName, opts.width, opts.height)
	if err != nil {
		return err
	}

	format, outputPath, err := resolveOutput(opts, time.Now())
	if err != nil {
		return err
	}

	config := renderer.DefaultRenderConfig()
	config.Sampling = core.MergeSamplingConfig(selectedScene.GetSamplingConfig(), core.SamplingConfig{
		Width:           opts.width,
		Height:          opts.height,
		SamplesPerPixel: opts.samples,
		MaxDepth:        opts.depth,
	})
	config.Bands = opts.bands
	config.Seed = opts.seed

	raytracer, err := renderer.NewRaytracer(selectedScene, config, renderer.NewDefaultLogger())
	if err != nil {
		return err
	}

	render := raytracer.Render
	if opts.sequential {
		render = raytracer.RenderSequential
	}
	rendered, stats := render()

	fmt.Fprintf(stdout, "Average %.1f bounces per ray, luminance %.3f\n",
		stats.AverageBounces(), renderer.CalculateAverageLuminance(rendered))

	if opts.caption {
		s := raytracer.Config().Sampling
		text := fmt.Sprintf("%s  %dx%d  %d spp  depth %d", selectedScene.Name, s.Width, s.Height, s.SamplesPerPixel, s.MaxDepth)
		if err := imageio.Caption(rendered, text); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := imageio.SaveImage(outputPath, rendered, format); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Render saved as %s\n", outputPath)

	if opts.compare != "" {
		reference, err := imageio.LoadImage(opts.compare)
		if err != nil {
			return fmt.Errorf("loading reference: %w", err)
		}
		diff, err := imageio.MeanAbsDiff(rendered, reference)
		if err != nil {
			return fmt.Errorf("comparing with %s: %w", opts.compare, err)
		}
		fmt.Fprintf(stdout, "Mean absolute difference from %s: %.3f\n", opts.compare, diff)
	}

	return nil
}

func showHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Sphere Tracer")
	fmt.Fprintln(w, "Usage: sphere-tracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.List() {
		fmt.Fprintf(w, "  %-11s - %s\n", info.ID, info.Description)
	}
}

// createScene builds a scene, reshaping its camera for an explicit image size
func createScene(name string, width, height int) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty scene name", scene.ErrUnknownScene)
	}
	if height > 0 && width == 0 {
		base, err := scene.New(name)
		if err != nil {
			return nil, err
		}
		width = base.CameraConfig.Width
	}

	var override geometry.CameraConfig
	override.Width = width
	if width > 0 && height > 0 {
		override.AspectRatio = float64(width) / float64(height)
	}
	return scene.New(name, override)
}

// resolveOutput picks the output format and path from the flags
func resolveOutput(opts *options, now time.Time) (imageio.Format, string, error) {
	format := imageio.FormatPPM
	var err error
	switch {
	case opts.format != "":
		if format, err = imageio.ParseFormat(opts.format); err != nil {
			return "", "", err
		}
	case opts.output != "":
		if format, err = imageio.FormatFromPath(opts.output); err != nil {
			return "", "", err
		}
	}

	path := opts.output
	if path == "" {
		timestamp := now.Format("20060102_150405")
		path = filepath.Join("output", strings.ToLower(opts.sceneName), fmt.Sprintf("render_%s.%s", timestamp, format))
	}
	return format, path, nil
}
