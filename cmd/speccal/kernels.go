package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectro/spectro/kernel"
)

func printKernels(w io.Writer, maxSigma int) error {
	if maxSigma < 1 {
		return fmt.Errorf("max sigma must be >= 1: %d", maxSigma)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Sigma\tTaps\tSum\tPeak\tFWHM [samples]\tFWHM ideal\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t----\t---\t----\t--------------\t----------\n"); err != nil {
		return err
	}

	for s := 1; s <= maxSigma; s++ {
		k, err := kernel.Gaussian(s)
		if err != nil {
			return err
		}
		a := kernel.Analyze(k)
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%.12f\t%.6f\t%.4f\t%.4f\n",
			s,
			a.Len,
			a.Sum,
			a.Peak,
			a.FWHM,
			kernel.SigmaToFWHM(float64(s)),
		); err != nil {
			return err
		}
	}

	return tw.Flush()
}
