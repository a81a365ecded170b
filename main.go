package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/config"
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
	"github.com/df07/go-sphere-pathtracer/pkg/output"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run renders one image. Image data goes to stdout when no output file is
// given, so progress and timing are written to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, lookup config.LookupFunc) error {
	flags := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	flags.SetOutput(stderr)
	list := flags.Bool("list", false, "List available scenes and exit")
	flags.Usage = func() { usage(flags) }

	envFile := ".env"
	if v, ok := lookup(config.EnvPrefix + "ENV_FILE"); ok {
		envFile = v
	}
	opts, err := config.Load(envFile, lookup, flags, args)
	if err != nil {
		return err
	}

	if *list {
		printScenes(stdout)
		return nil
	}

	logger := newLogger(stderr)

	sc, err := createScene(opts.Scene, opts.SceneOptions())
	if err != nil {
		return err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := renderer.NewRaytracer(sc, createIntegrator(opts.Integrator, sc), core.NewSeededSampler(seed), logger)

	cfg := sc.SamplingConfig
	logger.Printf("Rendering %s: %dx%d, %d samples per pixel, max depth %d (seed %d)\n",
		opts.Scene, cfg.Width, cfg.Height, cfg.SamplesPerPixel, cfg.MaxDepth, seed)

	frame, stats, err := rt.Render(ctx)
	if err != nil {
		return err
	}
	logger.Printf("Render completed in %v\n", stats.Duration)
	logger.Printf("Samples per pixel: %.1f, average luminance %.4f, average variance %.6f\n",
		stats.AverageSamples, stats.AverageLuminance, stats.AverageVariance)

	// Validated by config.Load
	format, _ := output.ParseFormat(opts.Format)
	order, _ := output.ParseRowOrder(opts.RowOrder)
	mapping := output.ColorMapping{Gamma: opts.Gamma}

	enc, err := output.EncoderFor(format, mapping, order)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := enc.Encode(&buf, frame); err != nil {
		return err
	}

	name := objectName(opts.Output, enc.Extension(), time.Now())
	if opts.ToStdout() {
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write image: %w", err)
		}
	} else {
		if err := writeFile(opts.Output, buf.Bytes()); err != nil {
			return err
		}
		logger.Printf("Render saved as %s\n", opts.Output)
	}

	var thumb []byte
	if opts.ThumbnailWidth > 0 {
		thumb, err = output.EncodeThumbnail(mapping.ToImage(frame), uint(opts.ThumbnailWidth))
		if err != nil {
			return err
		}
		thumbPath := thumbnailPath(opts.Output)
		if err := writeFile(thumbPath, thumb); err != nil {
			return err
		}
		logger.Printf("Thumbnail saved as %s\n", thumbPath)
	}

	s3cfg := opts.S3Config()
	if !s3cfg.Enabled() {
		return nil
	}
	pub, err := output.NewS3Publisher(s3cfg)
	if err != nil {
		return err
	}
	return publish(ctx, pub, logger, s3cfg.Bucket, name, enc.ContentType(), buf.Bytes(), thumb)
}

// newLogger returns the default stderr logger, or one writing to w when
// output is redirected
func newLogger(w io.Writer) core.Logger {
	if w == io.Writer(os.Stderr) {
		return renderer.NewDefaultLogger()
	}
	return renderer.NewWriterLogger(w)
}

// publisher uploads encoded images
type publisher interface {
	Publish(ctx context.Context, name, contentType string, data []byte) (string, error)
}

func publish(ctx context.Context, pub publisher, logger core.Logger, bucket, name, contentType string, image, thumb []byte) error {
	key, err := pub.Publish(ctx, name, contentType, image)
	if err != nil {
		return err
	}
	logger.Printf("Published s3://%s/%s\n", bucket, key)

	if thumb == nil {
		return nil
	}
	key, err = pub.Publish(ctx, thumbnailPath(name), "image/png", thumb)
	if err != nil {
		return err
	}
	logger.Printf("Published s3://%s/%s\n", bucket, key)
	return nil
}

// createScene builds a built-in scene by ID
func createScene(name string, opts scene.Options) (*scene.Scene, error) {
	if name == "" {
		return nil, errors.New("no scene given")
	}
	return scene.New(name, opts)
}

// createIntegrator returns the named integrator using the scene's background
func createIntegrator(name string, sc *scene.Scene) integrator.Integrator {
	if name == config.IntegratorNormals {
		ni := integrator.NewNormalIntegrator()
		if sc.Background != nil {
			ni.Background = sc.Background
		}
		return ni
	}
	pt := integrator.NewPathTracingIntegrator(sc.SamplingConfig.MaxDepth)
	if sc.Background != nil {
		pt.Background = sc.Background
	}
	return pt
}

// objectName is the published name: the output file's base name, or a
// timestamped name when writing to stdout
func objectName(outputPath, ext string, now time.Time) string {
	if outputPath != "" && outputPath != "-" {
		return filepath.Base(outputPath)
	}
	return fmt.Sprintf("render_%s%s", now.Format("20060102_150405"), ext)
}

// thumbnailPath returns "<name>_thumb.png" next to the given image path
func thumbnailPath(imagePath string) string {
	return strings.TrimSuffix(imagePath, filepath.Ext(imagePath)) + "_thumb.png"
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func printScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-14s %s\n", info.ID, info.Description)
	}
}

func usage(flags *flag.FlagSet) {
	w := flags.Output()
	fmt.Fprintln(w, "Sphere Path Tracer")
	fmt.Fprintln(w, "Usage: pathtracer [options] > image.ppm")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	flags.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Every option can also be set as %s<NAME> in the environment or a .env file.\n", config.EnvPrefix)
	fmt.Fprintln(w)
	printScenes(w)
}
