package vfm

// ProfileBins is the number of altitude bins in a VFM profile.
const ProfileBins = 545

// The grid has three contiguous bands of differing vertical resolution,
// ordered bottom to top. Bin count, bin width (km), and band base (km).
const (
	lowBins  = 290
	lowStep  = 0.03
	lowBase  = -0.5
	midBins  = 200
	midStep  = 0.06
	midBase  = 8.2
	highBins = 55
	highStep = 0.18
	highBase = 20.2
)

// AltitudeGrid returns the bin-center heights of a VFM profile in km,
// ascending from -0.485 to 30.11. The grid is a constant of the product
// specification, computed from the band formulas rather than read from file.
func AltitudeGrid() []float64 {
	h := make([]float64, 0, ProfileBins)
	for i := 0; i < lowBins; i++ {
		h = append(h, (float64(i)+0.5)*lowStep+lowBase)
	}
	for i := 0; i < midBins; i++ {
		h = append(h, (float64(i)+0.5)*midStep+midBase)
	}
	for i := 0; i < highBins; i++ {
		h = append(h, (float64(i)+0.5)*highStep+highBase)
	}
	return h
}
