// Package config layers renderer settings from defaults, a .env file,
// PATHTRACER_* environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/df07/go-sphere-pathtracer/pkg/output"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "PATHTRACER_"

// Integrator names
const (
	IntegratorPath    = "path"
	IntegratorNormals = "normals"
)

// Options holds every setting of a render run
type Options struct {
	Scene           string
	Integrator      string
	AspectRatio     float64
	ImageWidth      int
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64 // 0 picks a seed from the clock

	Format         string // ppm or png
	Output         string // file path, or "-" for stdout
	Gamma          float64
	RowOrder       string // top-down or bottom-up
	ThumbnailWidth int    // 0 disables the thumbnail

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3Prefix    string
	S3AccessKey string
	S3SecretKey string
}

// Default returns a 400px 16:9 path-traced render of the default scene to stdout
func Default() Options {
	return Options{
		Scene:           "default",
		Integrator:      IntegratorPath,
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Format:          string(output.FormatPPM),
		Output:          "-",
		Gamma:           2.0,
		RowOrder:        output.TopDown.String(),
		S3Region:        "us-east-1",
	}
}

// LookupFunc reads one variable, like os.LookupEnv
type LookupFunc func(key string) (string, bool)

// ApplyDotEnv applies variables from a .env file. A missing file is ignored.
func (o *Options) ApplyDotEnv(path string) error {
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return o.ApplyEnv(func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	})
}

// ApplyEnv overrides options with any PATHTRACER_* variables that are set
func (o *Options) ApplyEnv(lookup LookupFunc) error {
	var errs []error
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	num := func(name string, set func(string) error) {
		if v, ok := lookup(EnvPrefix + name); ok {
			if err := set(v); err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
			}
		}
	}

	str("SCENE", &o.Scene)
	str("INTEGRATOR", &o.Integrator)
	num("ASPECT_RATIO", func(v string) error { return setAspect(&o.AspectRatio, v) })
	num("IMAGE_WIDTH", func(v string) error { return setInt(&o.ImageWidth, v) })
	num("SAMPLES_PER_PIXEL", func(v string) error { return setInt(&o.SamplesPerPixel, v) })
	num("MAX_DEPTH", func(v string) error { return setInt(&o.MaxDepth, v) })
	num("SEED", func(v string) error { return setInt64(&o.Seed, v) })
	str("FORMAT", &o.Format)
	str("OUTPUT", &o.Output)
	num("GAMMA", func(v string) error { return setFloat(&o.Gamma, v) })
	str("ROW_ORDER", &o.RowOrder)
	num("THUMBNAIL_WIDTH", func(v string) error { return setInt(&o.ThumbnailWidth, v) })
	str("S3_BUCKET", &o.S3Bucket)
	str("S3_REGION", &o.S3Region)
	str("S3_ENDPOINT", &o.S3Endpoint)
	str("S3_PREFIX", &o.S3Prefix)
	str("S3_ACCESS_KEY", &o.S3AccessKey)
	str("S3_SECRET_KEY", &o.S3SecretKey)

	return errors.Join(errs...)
}

// RegisterFlags binds flags to the options, using current values as defaults
func (o *Options) RegisterFlags(flags *flag.FlagSet) {
	flags.StringVar(&o.Scene, "scene", o.Scene, "Scene to render (see -list)")
	flags.StringVar(&o.Integrator, "integrator", o.Integrator, "Integrator: 'path' or 'normals'")
	flags.Func("aspect", fmt.Sprintf("Aspect ratio as W:H or a number (default %g)", o.AspectRatio), func(v string) error {
		return setAspect(&o.AspectRatio, v)
	})
	flags.IntVar(&o.ImageWidth, "width", o.ImageWidth, "Image width in pixels")
	flags.IntVar(&o.SamplesPerPixel, "samples", o.SamplesPerPixel, "Samples per pixel")
	flags.IntVar(&o.MaxDepth, "depth", o.MaxDepth, "Maximum ray bounce depth")
	flags.Int64Var(&o.Seed, "seed", o.Seed, "Random seed (0 uses the clock)")
	flags.StringVar(&o.Format, "format", o.Format, "Output format: 'ppm' or 'png'")
	flags.StringVar(&o.Output, "o", o.Output, "Output file, or '-' for stdout")
	flags.Float64Var(&o.Gamma, "gamma", o.Gamma, "Display gamma")
	flags.StringVar(&o.RowOrder, "rows", o.RowOrder, "PPM row order: 'top-down' or 'bottom-up'")
	flags.IntVar(&o.ThumbnailWidth, "thumbnail", o.ThumbnailWidth, "Also write a PNG thumbnail of this width (0 disables)")
	flags.StringVar(&o.S3Bucket, "s3-bucket", o.S3Bucket, "Publish the image to this S3 bucket")
	flags.StringVar(&o.S3Prefix, "s3-prefix", o.S3Prefix, "Key prefix for published images")
}

// Validate checks that the options describe a renderable image
func (o Options) Validate() error {
	var errs []error
	if o.ImageWidth <= 0 {
		errs = append(errs, fmt.Errorf("image width must be positive, got %d", o.ImageWidth))
	}
	if !positiveFinite(o.AspectRatio) {
		errs = append(errs, fmt.Errorf("aspect ratio must be a positive number, got %g", o.AspectRatio))
	}
	if o.SamplesPerPixel <= 0 {
		errs = append(errs, fmt.Errorf("samples per pixel must be positive, got %d", o.SamplesPerPixel))
	}
	if o.MaxDepth <= 0 {
		errs = append(errs, fmt.Errorf("max depth must be positive, got %d", o.MaxDepth))
	}
	if !positiveFinite(o.Gamma) {
		errs = append(errs, fmt.Errorf("gamma must be a positive number, got %g", o.Gamma))
	}
	if o.Integrator != IntegratorPath && o.Integrator != IntegratorNormals {
		errs = append(errs, fmt.Errorf("unknown integrator %q", o.Integrator))
	}
	if _, err := output.ParseFormat(o.Format); err != nil {
		errs = append(errs, err)
	}
	if _, err := output.ParseRowOrder(o.RowOrder); err != nil {
		errs = append(errs, err)
	}
	if o.ThumbnailWidth < 0 {
		errs = append(errs, fmt.Errorf("thumbnail width must not be negative, got %d", o.ThumbnailWidth))
	}
	if o.ThumbnailWidth > 0 && o.ToStdout() {
		errs = append(errs, errors.New("a thumbnail needs a file output (-o)"))
	}
	return errors.Join(errs...)
}

// ImageHeight derives the pixel height from width and aspect ratio
func (o Options) ImageHeight() int {
	return scene.ImageHeight(o.ImageWidth, o.AspectRatio)
}

// ToStdout reports whether the image goes to standard output
func (o Options) ToStdout() bool {
	return o.Output == "" || o.Output == "-"
}

// SceneOptions converts the options into scene builder settings
func (o Options) SceneOptions() scene.Options {
	opts := scene.DefaultOptions()
	opts.Camera.AspectRatio = o.AspectRatio
	opts.Sampling = scene.SamplingConfig{
		Width:           o.ImageWidth,
		Height:          o.ImageHeight(),
		SamplesPerPixel: o.SamplesPerPixel,
		MaxDepth:        o.MaxDepth,
	}
	return opts
}

// S3Config returns the publishing settings
func (o Options) S3Config() output.S3Config {
	return output.S3Config{
		Bucket:    o.S3Bucket,
		Region:    o.S3Region,
		Endpoint:  o.S3Endpoint,
		Prefix:    o.S3Prefix,
		AccessKey: o.S3AccessKey,
		SecretKey: o.S3SecretKey,
	}
}

// Load builds options from defaults, the .env file at envFile, the process
// environment and args, then validates them
func Load(envFile string, lookup LookupFunc, flags *flag.FlagSet, args []string) (Options, error) {
	o := Default()
	if envFile != "" {
		if err := o.ApplyDotEnv(envFile); err != nil {
			return o, err
		}
	}
	if err := o.ApplyEnv(lookup); err != nil {
		return o, err
	}
	o.RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		return o, err
	}
	if err := o.Validate(); err != nil {
		return o, fmt.Errorf("invalid options: %w", err)
	}
	return o, nil
}

// positiveFinite rejects NaN and infinities as well as v <= 0
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func setInt(dst *int, v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func setInt64(dst *int64, v string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func setFloat(dst *float64, v string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return err
	}
	*dst = f
	return nil
}

// setAspect parses "16:9" or a plain number
func setAspect(dst *float64, v string) error {
	w, h, ok := strings.Cut(strings.TrimSpace(v), ":")
	if !ok {
		return setFloat(dst, v)
	}
	var num, den float64
	if err := setFloat(&num, w); err != nil {
		return err
	}
	if err := setFloat(&den, h); err != nil {
		return err
	}
	if den == 0 {
		return fmt.Errorf("aspect ratio %q has a zero height", v)
	}
	*dst = num / den
	return nil
}
