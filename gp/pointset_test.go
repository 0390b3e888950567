package gp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scigperrors "github.com/YuminosukeSato/scigp/pkg/errors"
)

func TestPointSetAdd(t *testing.T) {
	s := NewPointSet(2)
	assert.Equal(t, 2, s.Dim())
	assert.Equal(t, 0, s.Len())

	require.NoError(t, s.Add([]float64{1.0, 2.0}))
	require.NoError(t, s.Add([]float64{3.0, 4.0}))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []float64{1.0, 2.0}, s.At(0))
	assert.Equal(t, []float64{3.0, 4.0}, s.At(1))
}

func TestPointSetAddDimensionMismatch(t *testing.T) {
	s := NewPointSet(2)

	err := s.Add([]float64{1.0})
	require.Error(t, err)

	var dimErr *scigperrors.DimensionError
	assert.True(t, scigperrors.As(err, &dimErr))
	assert.Equal(t, 0, s.Len())
}

func TestPointSetAddCopiesInput(t *testing.T) {
	s := NewPointSet(1)
	x := []float64{5.0}
	require.NoError(t, s.Add(x))

	x[0] = -5.0
	assert.Equal(t, 5.0, s.At(0)[0], "Add must copy the point")
}
