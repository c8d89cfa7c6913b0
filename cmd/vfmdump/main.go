// Diagnostic tool for summarizing CALIPSO L2 VFM granules
package main

import (
	"fmt"
	"os"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/robert-malhotra/go-calipso/vfm"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: vfmdump <granule.h5>")
		os.Exit(1)
	}

	if err := vfm.With(os.Args[1], dump); err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func dump(r *vfm.Reader) error {
	fmt.Printf("=== %s ===\n\n", r.Path())

	lon, err := r.Longitude()
	if err != nil {
		return err
	}
	lat, err := r.Latitude()
	if err != nil {
		return err
	}
	times, err := r.Time()
	if err != nil {
		return err
	}

	fmt.Printf("Records: %d\n", len(lon))
	if len(lon) == 0 {
		return nil
	}
	fmt.Printf("Time:      %s .. %s\n",
		times[0].Format(time.RFC3339), times[len(times)-1].Format(time.RFC3339))
	fmt.Printf("Longitude: %8.3f .. %8.3f\n", floats.Min(lon), floats.Max(lon))
	fmt.Printf("Latitude:  %8.3f .. %8.3f\n", floats.Min(lat), floats.Max(lat))

	grid := r.AltitudeGrid()
	fmt.Printf("Altitude:  %.3f .. %.3f km (%d bins)\n", grid[0], grid[len(grid)-1], len(grid))

	fcf, err := r.ClassificationFlags()
	if err != nil {
		return err
	}

	var counts [8]int
	for _, profile := range fcf {
		for _, bin := range profile {
			counts[bin.FeatureType()]++
		}
	}
	fmt.Println("\nFeature types:")
	for t, n := range counts {
		if n == 0 {
			continue
		}
		fmt.Printf("  %-22s %d\n", vfm.FeatureType(t), n)
	}
	return nil
}
