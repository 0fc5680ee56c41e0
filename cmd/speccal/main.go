// Command speccal applies calibration transforms to a spectrum stored as CSV.
//
// Usage:
//
//	speccal [flags] [file.csv]
//
// The input holds two or three numeric columns: x, y and optionally sigma.
// Lines starting with '#' and lines whose first field is not a number are
// skipped. Without a file argument the spectrum is read from stdin. The
// transformed spectrum is written to stdout and the provenance metadata as
// JSON to -meta (stderr if unset).
//
// Examples:
//
//	speccal -rv 300 spectrum.csv
//	speccal -fwhm 0.25 -rv -12.5 -frame rest -meta prov.json spectrum.csv
//	speccal -kernels -max 10
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/cwbudde/algo-spectro/spectro/calib"
	"github.com/cwbudde/algo-spectro/spectro/pipeline"
)

var logLevel = new(slog.LevelVar)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("speccal", flag.ContinueOnError)
	fs.SetOutput(stderr)

	rv := fs.Float64("rv", 0, "radial velocity in km/s")
	fwhm := fs.Float64("fwhm", math.NaN(), "target instrumental FWHM in axis units")
	frame := fs.String("frame", "observer", "frame to move the axis into: observer or rest")
	metaPath := fs.String("meta", "", "write provenance JSON to this file instead of stderr")
	kernels := fs.Bool("kernels", false, "print Gaussian kernel properties and exit")
	maxSigma := fs.Int("max", 8, "largest sigma in samples listed by -kernels")
	verbose := fs.Bool("v", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: speccal [flags] [file.csv]\n\n")
		fmt.Fprintf(stderr, "Applies radial-velocity and resolution-matching transforms to a spectrum.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  speccal -rv 300 spectrum.csv\n")
		fmt.Fprintf(stderr, "  speccal -fwhm 0.25 -frame rest -rv -12.5 spectrum.csv\n")
		fmt.Fprintf(stderr, "  speccal -kernels -max 10\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logLevel.Set(slog.LevelInfo)
	if *verbose {
		logLevel.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	if *kernels {
		if err := printKernels(stdout, *maxSigma); err != nil {
			logger.Error("print kernels", "err", err)
			return 1
		}
		return 0
	}

	opts := []calib.Option{
		calib.WithRadialVelocity(*rv),
		calib.WithFrame(*frame),
	}
	if !math.IsNaN(*fwhm) {
		opts = append(opts, calib.WithTargetFWHM(*fwhm))
	}
	cfg, err := calib.New(opts...)
	if err != nil {
		logger.Error("invalid calibration", "err", err)
		return 2
	}

	in := stdin
	source := "stdin"
	if fs.NArg() > 0 {
		source = fs.Arg(0)
		f, err := os.Open(source)
		if err != nil {
			logger.Error("open input", "path", source, "err", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	sample, err := readSample(in)
	if err != nil {
		logger.Error("read spectrum", "source", source, "err", err)
		return 1
	}
	logger.Debug("spectrum loaded", "source", source, "samples", sample.Len(), "sigma", sample.Sigma != nil)

	p := pipeline.New()
	res := p.Apply(sample, cfg.Snapshot())
	for _, w := range res.Meta.Warnings {
		logger.Warn("transform skipped", "reason", w)
	}
	for _, s := range res.Meta.Steps {
		logger.Debug("transform applied", "kind", s.Kind, "params", s.Params)
	}

	if err := writeSample(stdout, res.Sample()); err != nil {
		logger.Error("write spectrum", "err", err)
		return 1
	}

	if err := writeMeta(*metaPath, stderr, res.Meta); err != nil {
		logger.Error("write metadata", "err", err)
		return 1
	}

	logger.Info("done", "samples", sample.Len(), "applied", res.Meta.Applied, "backend", p.Backend())
	return 0
}

func writeMeta(path string, fallback io.Writer, meta pipeline.Metadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "" {
		_, err = fallback.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
