package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/config"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

func noEnv(string) (string, bool) { return "", false }

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"diffuse scene", "diffuse", false},
		{"single sphere scene", "single-sphere", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := createScene(tt.sceneType, scene.DefaultOptions())

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if sc != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if sc.SamplingConfig.Width <= 0 || sc.SamplingConfig.Height <= 0 {
				t.Errorf("Scene dimensions should be positive, got %dx%d",
					sc.SamplingConfig.Width, sc.SamplingConfig.Height)
			}
			if sc.GetPrimitiveCount() == 0 {
				t.Error("Scene should contain objects")
			}
		})
	}
}

func TestCreateIntegrator(t *testing.T) {
	sc := scene.NewSingleSphereScene(scene.DefaultOptions())

	if _, ok := createIntegrator(config.IntegratorNormals, sc).(*integrator.NormalIntegrator); !ok {
		t.Error("Expected normal integrator")
	}
	pt, ok := createIntegrator(config.IntegratorPath, sc).(*integrator.PathTracingIntegrator)
	if !ok {
		t.Fatal("Expected path tracing integrator")
	}
	if pt.MaxDepth != sc.SamplingConfig.MaxDepth {
		t.Errorf("Expected depth %d, got %d", sc.SamplingConfig.MaxDepth, pt.MaxDepth)
	}
}

func TestOutputNames(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	tests := []struct {
		output, ext, expected string
	}{
		{"-", ".ppm", "render_20240309_140507.ppm"},
		{"", ".png", "render_20240309_140507.png"},
		{"out/scene.png", ".png", "scene.png"},
	}
	for _, tt := range tests {
		if got := objectName(tt.output, tt.ext, now); got != tt.expected {
			t.Errorf("objectName(%q) = %q, expected %q", tt.output, got, tt.expected)
		}
	}

	if got := thumbnailPath("out/scene.ppm"); got != "out/scene_thumb.png" {
		t.Errorf("Unexpected thumbnail path %q", got)
	}
}

func TestRun_WritesPPMToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"-scene", "single-sphere", "-width", "8", "-aspect", "2", "-samples", "2", "-depth", "3", "-seed", "42"}

	if err := run(context.Background(), args, &stdout, &stderr, noEnv); err != nil {
		t.Fatalf("Unexpected error: %v\n%s", err, stderr.String())
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if lines[0] != "P3" || lines[1] != "8 4" || lines[2] != "255" {
		t.Errorf("Unexpected header: %q", lines[:3])
	}
	if len(lines) != 3+32 {
		t.Errorf("Expected 32 pixel lines, got %d", len(lines)-3)
	}
	for _, want := range []string{"Scanlines remaining: 3", "Scanlines remaining: 0", "average variance"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("Expected %q on stderr, got %q", want, stderr.String())
		}
	}
}

func TestRun_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "renders", "sphere.png")
	args := []string{"-scene", "diffuse", "-width", "16", "-samples", "1", "-depth", "2",
		"-format", "png", "-o", out, "-thumbnail", "8"}

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), args, &stdout, &stderr, noEnv); err != nil {
		t.Fatalf("Unexpected error: %v\n%s", err, stderr.String())
	}

	for _, path := range []string{out, filepath.Join(dir, "renders", "sphere_thumb.png")} {
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("Expected non-empty %s: %v", path, err)
		}
	}
	if stdout.Len() != 0 {
		t.Errorf("Nothing should go to stdout when writing a file, got %d bytes", stdout.Len())
	}
}

func TestRun_ListAndErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), []string{"-list"}, &stdout, &stderr, noEnv); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, id := range []string{"default", "diffuse", "single-sphere"} {
		if !strings.Contains(stdout.String(), id) {
			t.Errorf("Scene list should mention %s", id)
		}
	}

	if err := run(context.Background(), []string{"-scene", "cornell"}, &stdout, &stderr, noEnv); err == nil {
		t.Error("Expected error for unknown scene")
	}
	if err := run(context.Background(), []string{"-h"}, &stdout, &stderr, noEnv); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("Expected flag.ErrHelp, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := run(ctx, []string{"-width", "4", "-samples", "1"}, &stdout, &stderr, noEnv)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected cancellation error, got %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	if _, ok := newLogger(os.Stderr).(*renderer.DefaultLogger); !ok {
		t.Error("Expected the default logger for stderr")
	}

	var buf bytes.Buffer
	newLogger(&buf).Printf("hello %d\n", 1)
	if buf.String() != "hello 1\n" {
		t.Errorf("Expected output in the redirected writer, got %q", buf.String())
	}
}

type recordingPublisher struct {
	names []string
	types []string
}

func (p *recordingPublisher) Publish(ctx context.Context, name, contentType string, data []byte) (string, error) {
	p.names = append(p.names, name)
	p.types = append(p.types, contentType)
	return "renders/" + name, nil
}

func TestPublish(t *testing.T) {
	var logs bytes.Buffer
	pub := &recordingPublisher{}
	err := publish(context.Background(), pub, renderer.NewWriterLogger(&logs), "bucket",
		"scene.ppm", "image/x-portable-pixmap", []byte("P3"), []byte("png"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(pub.names) != 2 || pub.names[0] != "scene.ppm" || pub.names[1] != "scene_thumb.png" {
		t.Errorf("Unexpected uploads: %v", pub.names)
	}
	if pub.types[1] != "image/png" {
		t.Errorf("Thumbnail should upload as png, got %s", pub.types[1])
	}
	if !strings.Contains(logs.String(), "s3://bucket/renders/scene.ppm") {
		t.Errorf("Expected publish log, got %q", logs.String())
	}
}
