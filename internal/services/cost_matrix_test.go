package services

import (
	"context"
	"jump-route-service/internal/domain"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJumpCost(t *testing.T) {
	require.Equal(t, 0, JumpCost(0, 15), "zero distance costs zero jumps")
	require.Equal(t, 0, JumpCost(1e-9, 15), "co-located systems cost zero jumps")
	require.Equal(t, 1, JumpCost(10, 15))
	require.Equal(t, 1, JumpCost(15, 15), "distance equal to range is one jump")
	require.Equal(t, 2, JumpCost(15.1, 15))
	require.Equal(t, 4, JumpCost(46, 15))
	require.Equal(t, 1, JumpCost(0.5, 65), "any positive distance costs at least one jump")
}

func TestBuildCostMatrix(t *testing.T) {
	systems := []*domain.System{
		{Name: "A", X: 0, Y: 0, Z: 0},
		{Name: "B", X: 10, Y: 0, Z: 0},
		{Name: "C", X: 0, Y: 20, Z: 0},
	}

	m, err := BuildCostMatrix(context.Background(), systems, 15)
	require.NoError(t, err)
	require.Equal(t, 3, m.Len())

	require.InDelta(t, 10, m.Distance(0, 1), 1e-12)
	require.InDelta(t, 20, m.Distance(0, 2), 1e-12)
	require.InDelta(t, math.Sqrt(500), m.Distance(1, 2), 1e-12)

	require.Equal(t, 1, m.Jumps(0, 1))
	require.Equal(t, 2, m.Jumps(0, 2))
	require.Equal(t, 2, m.Jumps(1, 2))

	for i := 0; i < m.Len(); i++ {
		for j := i + 1; j < m.Len(); j++ {
			require.Equal(t, m.Distance(i, j), m.Distance(j, i), "distance must be symmetric")
			require.Equal(t, m.Jumps(i, j), m.Jumps(j, i), "jump count must be symmetric")
		}
	}
}

func TestBuildCostMatrixRejectsInvalidJumpRange(t *testing.T) {
	systems := []*domain.System{
		{Name: "A"},
		{Name: "B", X: 1},
	}

	for _, jumpRange := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		_, err := BuildCostMatrix(context.Background(), systems, jumpRange)
		require.ErrorIs(t, err, ErrInvalidConfiguration, "jump range %v", jumpRange)
	}
}
