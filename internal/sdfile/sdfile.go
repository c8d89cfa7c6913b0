// Package sdfile gives the vfm package named-dataset access to a granule
// file. It wraps the go-native-netcdf reader behind a small typed surface:
// open by path, select a dataset by name as a 2-D slice, close.
package sdfile

import (
	"errors"
	"fmt"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
)

// Common errors
var (
	ErrClosed      = errors.New("file is closed")
	ErrElementType = errors.New("dataset has unexpected element type")
)

// File is an open granule.
type File struct {
	path   string
	group  api.Group
	closed bool
}

// Open opens the granule at path for reading.
func Open(path string) (*File, error) {
	g, err := netcdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &File{path: path, group: g}, nil
}

// Close releases the file handle. Closing twice is a no-op.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	f.group.Close()
	return nil
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

func (f *File) variable(name string) (*api.Variable, error) {
	if f.closed {
		return nil, ErrClosed
	}
	v, err := f.group.GetVariable(name)
	if err != nil {
		return nil, fmt.Errorf("selecting dataset %q in %s: %w", name, f.path, err)
	}
	return v, nil
}

// Float64Matrix reads the named dataset as a 2-D float64 array. Rank-1
// float datasets are returned as single-column matrices.
func (f *File) Float64Matrix(name string) ([][]float64, error) {
	v, err := f.variable(name)
	if err != nil {
		return nil, err
	}
	switch vals := v.Values.(type) {
	case [][]float64:
		return vals, nil
	case [][]float32:
		out := make([][]float64, len(vals))
		for i, row := range vals {
			out[i] = make([]float64, len(row))
			for j, x := range row {
				out[i][j] = float64(x)
			}
		}
		return out, nil
	case []float64:
		out := make([][]float64, len(vals))
		for i, x := range vals {
			out[i] = []float64{x}
		}
		return out, nil
	case []float32:
		out := make([][]float64, len(vals))
		for i, x := range vals {
			out[i] = []float64{float64(x)}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("dataset %q in %s is %T: %w", name, f.path, v.Values, ErrElementType)
	}
}

// Uint16Matrix reads the named dataset as a 2-D uint16 array. Signed 16-bit
// storage is accepted; h4toh5 conversions differ on the sign of flag words.
func (f *File) Uint16Matrix(name string) ([][]uint16, error) {
	v, err := f.variable(name)
	if err != nil {
		return nil, err
	}
	switch vals := v.Values.(type) {
	case [][]uint16:
		return vals, nil
	case [][]int16:
		out := make([][]uint16, len(vals))
		for i, row := range vals {
			out[i] = make([]uint16, len(row))
			for j, x := range row {
				out[i][j] = uint16(x)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("dataset %q in %s is %T: %w", name, f.path, v.Values, ErrElementType)
	}
}
