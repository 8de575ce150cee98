// Command fftmix mixes up to four images in the frequency domain.
//
// Usage:
//
//	fftmix [flags] -in a.png -in b.png -out mixed.png
//
// Each -in is paired with the -component and -weight flags at the same
// position. Use "-" as an input path to leave a slot empty.
//
// Examples:
//
//	fftmix -in face.png -component magnitude -in wall.png -component phase -out swap.png
//	fftmix -in a.png -weight 70 -in b.png -weight 30 -region outer -size 20 -out hp.png
//	fftmix -in a.png -in - -in c.tif -preview previews -out mixed.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/cwbudde/algo-fftmix/dsp/region"
	"github.com/cwbudde/algo-fftmix/mix"
)

// listFlag collects repeated string flags.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// intListFlag collects repeated integer flags.
type intListFlag []int

func (l *intListFlag) String() string { return fmt.Sprint([]int(*l)) }

func (l *intListFlag) Set(v string) error {
	var n int
	if _, err := fmt.Sscan(v, &n); err != nil {
		return fmt.Errorf("not an integer: %q", v)
	}
	*l = append(*l, n)
	return nil
}

type options struct {
	inputs     listFlag
	components listFlag
	weights    intListFlag
	region     string
	size       int
	out        string
	preview    string
	filter     string
	workers    int
	verbose    bool
}

func main() {
	var opts options
	flag.Var(&opts.inputs, "in", "input image path, repeatable up to 4 times (\"-\" leaves the slot empty)")
	flag.Var(&opts.components, "component", "component of the matching input: magnitude, phase, real, imaginary (default magnitude)")
	flag.Var(&opts.weights, "weight", "weight of the matching input in percent, 0..100 (default 100)")
	flag.StringVar(&opts.region, "region", "inner", "region kind: inner or outer")
	flag.IntVar(&opts.size, "size", region.DefaultPercent, "region size in percent of the smaller image side")
	flag.StringVar(&opts.out, "out", "mixed.png", "output image path")
	flag.StringVar(&opts.preview, "preview", "", "directory for component previews (disabled when empty)")
	flag.StringVar(&opts.filter, "filter", "linear", "resample filter for mismatched sizes: linear, nearest, lanczos")
	flag.IntVar(&opts.workers, "workers", 1, "inputs transformed concurrently")
	flag.BoolVar(&opts.verbose, "v", false, "log per-input diagnostics")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fftmix [flags] -in a.png [-in b.png ...] -out mixed.png\n\n")
		fmt.Fprintf(os.Stderr, "Mixes Fourier components of up to four images.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment variables:\n")
		fmt.Fprintf(os.Stderr, "  FFTMIX_LOG_LEVEL=debug    same as -v\n")
	}
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := run(opts); err != nil {
		log.Fatalf("fftmix: %v", err)
	}
}

func run(opts options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	job, err := buildJob(opts, loadGray)
	if err != nil {
		return err
	}

	mixOpts, err := mixerOptions(opts)
	if err != nil {
		return err
	}

	if opts.preview != "" {
		if err := writePreviews(opts.preview, job); err != nil {
			return err
		}
	}

	job.OnProgress = func(p int) {
		fmt.Fprintf(os.Stderr, "\rmixing %3d%%", p)
		if p == 100 {
			fmt.Fprintln(os.Stderr)
		}
	}

	img, err := mix.Mix(ctx, job, mixOpts...)
	if errors.Is(err, mix.ErrCancelled) {
		fmt.Fprintln(os.Stderr)
		return err
	}
	if img == nil {
		return err
	}
	if err != nil {
		log.Printf("fftmix: writing placeholder: %v", err)
	}

	if err := imaging.Save(img, opts.out); err != nil {
		return fmt.Errorf("failed to save %s: %w", opts.out, err)
	}
	return err
}

func mixerOptions(opts options) ([]mix.Option, error) {
	filter, err := parseFilter(opts.filter)
	if err != nil {
		return nil, err
	}

	out := []mix.Option{
		mix.WithResampleFilter(filter),
		mix.WithWorkers(opts.workers),
	}
	if opts.verbose || os.Getenv("FFTMIX_LOG_LEVEL") == "debug" {
		out = append(out, mix.WithLogger(log.New(os.Stderr, "", log.Ltime)))
	} else {
		out = append(out, mix.WithLogger(log.New(io.Discard, "", 0)))
	}
	return out, nil
}

func parseFilter(name string) (imaging.ResampleFilter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "bilinear":
		return imaging.Linear, nil
	case "nearest", "nearestneighbor":
		return imaging.NearestNeighbor, nil
	case "lanczos":
		return imaging.Lanczos, nil
	}
	return imaging.ResampleFilter{}, fmt.Errorf("unknown filter %q", name)
}
