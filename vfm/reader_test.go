package vfm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves canned datasets so reader behavior can be tested without
// a granule on disk.
type fakeSource struct {
	float64s map[string][][]float64
	uint16s  map[string][][]uint16
	closes   int
	closeErr error
}

func (s *fakeSource) Float64Matrix(name string) ([][]float64, error) {
	m, ok := s.float64s[name]
	if !ok {
		return nil, fmt.Errorf("selecting dataset %q: not found", name)
	}
	return m, nil
}

func (s *fakeSource) Uint16Matrix(name string) ([][]uint16, error) {
	m, ok := s.uint16s[name]
	if !ok {
		return nil, fmt.Errorf("selecting dataset %q: not found", name)
	}
	return m, nil
}

func (s *fakeSource) Close() error {
	s.closes++
	return s.closeErr
}

func newTestReader(src source) *Reader {
	return &Reader{path: "testdata/granule.h5", src: src}
}

// flagRow builds one raw classification record with every column set to fill.
func flagRow(fill uint16) []uint16 {
	row := make([]uint16, flagColumns)
	for i := range row {
		row[i] = fill
	}
	return row
}

func TestGeolocationUsesCenterColumn(t *testing.T) {
	r := newTestReader(&fakeSource{
		float64s: map[string][][]float64{
			dsLongitude: {{-45.5, -45.1, -44.8}, {-46.0, -45.6, -45.2}},
			dsLatitude:  {{12.25, 12.3, 12.35}, {12.7, 12.75, 12.8}},
		},
	})

	lon, err := r.Longitude()
	require.NoError(t, err)
	assert.Equal(t, []float64{-45.5, -46.0}, lon)

	lat, err := r.Latitude()
	require.NoError(t, err)
	assert.Equal(t, []float64{12.25, 12.7}, lat)
}

func TestRecordCountsAgree(t *testing.T) {
	r := newTestReader(&fakeSource{
		float64s: map[string][][]float64{
			dsLongitude: {{-45.5}, {-46.0}, {-46.5}},
			dsLatitude:  {{12.25}, {12.7}, {13.15}},
			dsTime:      {{210115.5}, {210115.50006}, {210115.50012}},
		},
		uint16s: map[string][][]uint16{
			dsFlags: {flagRow(2), flagRow(2), flagRow(2)},
		},
	})

	lon, err := r.Longitude()
	require.NoError(t, err)
	lat, err := r.Latitude()
	require.NoError(t, err)
	times, err := r.Time()
	require.NoError(t, err)
	fcf, err := r.ClassificationFlags()
	require.NoError(t, err)

	assert.Len(t, lat, len(lon))
	assert.Len(t, times, len(lon))
	assert.Len(t, fcf, len(lon))

	n, err := r.Records()
	require.NoError(t, err)
	assert.Equal(t, len(lon), n)
}

func TestMissingDatasetNamesIt(t *testing.T) {
	r := newTestReader(&fakeSource{})

	_, err := r.Longitude()
	require.Error(t, err)
	assert.Contains(t, err.Error(), dsLongitude)
	assert.Contains(t, err.Error(), r.path)
}

func TestEmptyRecordIsShapeError(t *testing.T) {
	r := newTestReader(&fakeSource{
		float64s: map[string][][]float64{
			dsLongitude: {{-45.5}, {}},
		},
	})

	_, err := r.Longitude()
	require.ErrorIs(t, err, ErrDatasetShape)
}

func TestFlagsColumnCountMismatch(t *testing.T) {
	r := newTestReader(&fakeSource{
		uint16s: map[string][][]uint16{
			dsFlags: {make([]uint16, 100)},
		},
	})

	_, err := r.ClassificationFlags()
	require.ErrorIs(t, err, ErrDatasetShape)
	assert.Contains(t, err.Error(), dsFlags)
}

// The three band ranges of the raw record must land in the output as
// [band3][band2][band1] reversed, so the profile ascends in altitude.
func TestFlagsBandSelection(t *testing.T) {
	row := flagRow(9) // filler outside the selected ranges
	for i := band3Lo; i < band3Hi; i++ {
		row[i] = 1
	}
	for i := band2Lo; i < band2Hi; i++ {
		row[i] = 2
	}
	for i := band1Lo; i < band1Hi; i++ {
		row[i] = 3
	}

	r := newTestReader(&fakeSource{
		uint16s: map[string][][]uint16{dsFlags: {row}},
	})

	fcf, err := r.ClassificationFlags()
	require.NoError(t, err)
	require.Len(t, fcf, 1)
	require.Len(t, fcf[0], ProfileBins)

	for bin, got := range fcf[0] {
		var want FieldValues
		switch {
		case bin < 290:
			want = DecodeWord(3)
		case bin < 490:
			want = DecodeWord(2)
		default:
			want = DecodeWord(1)
		}
		require.Equalf(t, want, got, "bin %d", bin)
	}
}

func TestClosedReader(t *testing.T) {
	src := &fakeSource{
		float64s: map[string][][]float64{dsLongitude: {{-45.5}}},
	}
	r := newTestReader(src)

	require.NoError(t, r.Close())
	assert.Equal(t, 1, src.closes)

	_, err := r.Longitude()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = r.Time()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = r.ClassificationFlags()
	assert.ErrorIs(t, err, ErrClosed)

	// Double close is a no-op.
	require.NoError(t, r.Close())
	assert.Equal(t, 1, src.closes)
}

func TestScopedReleaseOnFailure(t *testing.T) {
	src := &fakeSource{}
	r := newTestReader(src)

	readErr := errors.New("read failed")
	err := runScoped(r, func(*Reader) error { return readErr })

	assert.ErrorIs(t, err, readErr)
	assert.Equal(t, 1, src.closes)
	assert.True(t, r.closed)
}

func TestScopedSurfacesCloseError(t *testing.T) {
	closeErr := errors.New("close failed")
	src := &fakeSource{closeErr: closeErr}
	r := newTestReader(src)

	err := runScoped(r, func(*Reader) error { return nil })
	assert.ErrorIs(t, err, closeErr)
}

func TestTimeDecodeFailureNamesRecord(t *testing.T) {
	r := newTestReader(&fakeSource{
		float64s: map[string][][]float64{
			dsTime: {{210115.5}, {211345.0}}, // second record has month 13
		},
	})

	_, err := r.Time()
	require.ErrorIs(t, err, ErrTimestamp)
	assert.Contains(t, err.Error(), "record 1")
}
