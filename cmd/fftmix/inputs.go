package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/cwbudde/algo-fftmix/dsp/core"
	"github.com/cwbudde/algo-fftmix/dsp/region"
	"github.com/cwbudde/algo-fftmix/dsp/spectrum"
	"github.com/cwbudde/algo-fftmix/internal/preview"
	"github.com/cwbudde/algo-fftmix/mix"
)

// absent marks an empty input slot on the command line.
const absent = "-"

// loadGray opens any registered image format and converts it to 8-bit gray.
func loadGray(path string) (*image.Gray, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return toGray(img), nil
}

func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	gray := imaging.Grayscale(img)
	out := image.NewGray(gray.Bounds())
	draw.Draw(out, out.Bounds(), gray, gray.Bounds().Min, draw.Src)
	return out
}

// buildJob turns the command line into a job. load is called for every
// input that is not absent.
func buildJob(opts options, load func(string) (*image.Gray, error)) (mix.Job, error) {
	var job mix.Job
	if len(opts.inputs) == 0 {
		return job, fmt.Errorf("at least one -in is required")
	}
	if len(opts.inputs) > mix.MaxInputs {
		return job, fmt.Errorf("at most %d inputs are supported, got %d", mix.MaxInputs, len(opts.inputs))
	}
	if len(opts.components) > len(opts.inputs) || len(opts.weights) > len(opts.inputs) {
		return job, fmt.Errorf("more -component or -weight flags than -in flags")
	}

	kind, err := region.ParseKind(opts.region)
	if err != nil {
		return job, err
	}
	if opts.size < 0 || opts.size > 100 {
		return job, fmt.Errorf("-size must be in [0, 100]: %d", opts.size)
	}
	job.Region = kind
	job.RegionSize = opts.size

	for i, path := range opts.inputs {
		in := mix.Input{Component: spectrum.Magnitude, Weight: 1}

		if i < len(opts.components) {
			in.Component, err = spectrum.ParseComponent(opts.components[i])
			if err != nil {
				return job, fmt.Errorf("input %d: %w", i+1, err)
			}
		}
		if i < len(opts.weights) {
			w := opts.weights[i]
			if w < 0 || w > 100 {
				return job, fmt.Errorf("input %d: -weight must be in [0, 100]: %d", i+1, w)
			}
			in.Weight = mix.WeightFromPercent(w)
		}

		if path != absent {
			in.Image, err = load(path)
			if err != nil {
				return job, fmt.Errorf("input %d: %w", i+1, err)
			}
		}
		job.Inputs = append(job.Inputs, in)
	}
	return job, nil
}

// writePreviews saves the selected component and a phase wheel of every
// present input, with the region outlined.
func writePreviews(dir string, job mix.Job) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create preview directory: %w", err)
	}

	for i, in := range job.Inputs {
		if in.Image == nil || in.Image.Bounds().Empty() {
			continue
		}

		spec, err := spectrum.Forward(core.GridFromGray(in.Image))
		if err != nil {
			return fmt.Errorf("input %d: %w", i+1, err)
		}
		cs, err := spectrum.Decompose(spec)
		if err != nil {
			return fmt.Errorf("input %d: %w", i+1, err)
		}

		plane, err := preview.Plane(cs, in.Component)
		if err != nil {
			return fmt.Errorf("input %d: %w", i+1, err)
		}
		bounds := region.Bounds(cs.Height, cs.Width, job.RegionSize)
		outlined, err := preview.Outline(plane, bounds, job.Region)
		if err != nil {
			return fmt.Errorf("input %d: %w", i+1, err)
		}
		if err := save(outlined, dir, i, componentSlug(in.Component)); err != nil {
			return err
		}

		wheel, err := preview.PhaseWheel(cs)
		if err != nil {
			return fmt.Errorf("input %d: %w", i+1, err)
		}
		if err := save(wheel, dir, i, "phase_wheel"); err != nil {
			return err
		}
	}
	return nil
}

func save(img image.Image, dir string, index int, name string) error {
	path := filepath.Join(dir, fmt.Sprintf("input%d_%s.png", index+1, name))
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save preview %s: %w", path, err)
	}
	return nil
}

func componentSlug(c spectrum.Component) string {
	return strings.ToLower(strings.TrimPrefix(c.String(), "FT "))
}
