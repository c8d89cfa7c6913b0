package vfm

import (
	"fmt"
	"time"

	"github.com/robert-malhotra/go-calipso/internal/sdfile"
)

// Dataset names fixed by the VFM product specification.
const (
	dsLongitude = "Longitude"
	dsLatitude  = "Latitude"
	dsTime      = "Profile_UTC_Time"
	dsFlags     = "Feature_Classification_Flags"
)

// source is the slice of the granule file the reader needs: named datasets
// as typed 2-D arrays, and a way to release the handle.
type source interface {
	Float64Matrix(name string) ([][]float64, error)
	Uint16Matrix(name string) ([][]uint16, error)
	Close() error
}

// Reader reads one open VFM granule. Every accessor reads and decodes from
// the file on each call; nothing is cached between calls.
//
// A Reader is not safe for concurrent use. The underlying file library makes
// no thread-safety guarantee, so use one Reader per goroutine.
type Reader struct {
	path   string
	src    source
	closed bool
}

// Open opens a VFM granule for reading. No datasets are read beyond what the
// underlying file library needs to validate the file structure.
func Open(path string) (*Reader, error) {
	f, err := sdfile.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening granule %s: %w", path, err)
	}
	return &Reader{path: path, src: f}, nil
}

// With opens the granule at path, passes the reader to fn, and closes the
// reader on every exit path, including when fn fails. fn's error takes
// precedence over any error from closing.
func With(path string, fn func(*Reader) error) error {
	r, err := Open(path)
	if err != nil {
		return err
	}
	return runScoped(r, fn)
}

func runScoped(r *Reader, fn func(*Reader) error) (err error) {
	defer func() {
		cerr := r.Close()
		if err == nil {
			err = cerr
		}
	}()
	return fn(r)
}

// Close releases the file handle. Closing an already-closed reader is a
// no-op returning nil; any other use of a closed reader returns ErrClosed.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.src.Close()
}

// Path returns the granule path.
func (r *Reader) Path() string {
	return r.path
}

// column reads a 2-D dataset and keeps column 0, the footprint-center value.
// Remaining columns hold footprint-edge values the VFM views do not use.
func (r *Reader) column(name string) ([]float64, error) {
	if r.closed {
		return nil, ErrClosed
	}
	rows, err := r.src.Float64Matrix(name)
	if err != nil {
		return nil, fmt.Errorf("%s: reading %q: %w", r.path, name, err)
	}
	out := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			return nil, fmt.Errorf("%s: dataset %q record %d is empty: %w", r.path, name, i, ErrDatasetShape)
		}
		out[i] = row[0]
	}
	return out, nil
}

// Longitude returns the footprint-center longitudes, one per record.
func (r *Reader) Longitude() ([]float64, error) {
	return r.column(dsLongitude)
}

// Latitude returns the footprint-center latitudes, one per record.
func (r *Reader) Latitude() ([]float64, error) {
	return r.column(dsLatitude)
}

// Records returns the number of along-track records in the granule.
func (r *Reader) Records() (int, error) {
	lon, err := r.Longitude()
	if err != nil {
		return 0, err
	}
	return len(lon), nil
}

// Time returns the UTC timestamp of each footprint, decoded from the
// product's packed yymmdd.ffffffff encoding.
func (r *Reader) Time() ([]time.Time, error) {
	vals, err := r.column(dsTime)
	if err != nil {
		return nil, err
	}
	out := make([]time.Time, len(vals))
	for i, v := range vals {
		t, err := decodeProfileTime(v)
		if err != nil {
			return nil, fmt.Errorf("%s: dataset %q record %d: %w", r.path, dsTime, i, err)
		}
		out[i] = t
	}
	return out, nil
}

// AltitudeGrid returns the fixed 545-bin altitude grid. See the package-level
// AltitudeGrid function.
func (r *Reader) AltitudeGrid() []float64 {
	return AltitudeGrid()
}

// ClassificationFlags returns the decoded feature classification flags as a
// (records, ProfileBins) array of per-bin field values, ordered low altitude
// to high altitude to match AltitudeGrid.
func (r *Reader) ClassificationFlags() ([][]FieldValues, error) {
	if r.closed {
		return nil, ErrClosed
	}
	rows, err := r.src.Uint16Matrix(dsFlags)
	if err != nil {
		return nil, fmt.Errorf("%s: reading %q: %w", r.path, dsFlags, err)
	}
	out := make([][]FieldValues, len(rows))
	for i, row := range rows {
		if len(row) != flagColumns {
			return nil, fmt.Errorf("%s: dataset %q record %d has %d columns, want %d: %w",
				r.path, dsFlags, i, len(row), flagColumns, ErrDatasetShape)
		}
		out[i] = decodeProfile(row)
	}
	return out, nil
}
