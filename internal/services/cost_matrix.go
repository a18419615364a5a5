package services

import (
	"context"
	"fmt"
	"jump-route-service/internal/domain"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Distances at or below this threshold are treated as co-located systems and
// cost zero jumps.
const zeroDistance = 1e-6

// JumpCost returns the minimum number of hops of length <= jumpRange needed
// to cover distance. Co-located pairs cost zero; any positive distance costs
// at least one hop.
func JumpCost(distance, jumpRange float64) int {
	if distance <= zeroDistance {
		return 0
	}
	jumps := int(math.Ceil(distance / jumpRange))
	if jumps < 1 {
		jumps = 1
	}
	return jumps
}

// BuildCostMatrix computes the full pairwise distance and jump-count table
// for a system catalogue. Each unordered pair is evaluated once and mirrored
// into both orientations.
//
// Rows are filled concurrently: entries are independent and the matrix is
// read-only once built.
func BuildCostMatrix(ctx context.Context, systems []*domain.System, jumpRange float64) (*domain.CostMatrix, error) {
	if jumpRange <= 0 || math.IsNaN(jumpRange) || math.IsInf(jumpRange, 0) {
		return nil, fmt.Errorf("build cost matrix: jump range must be a positive finite number, got %v: %w", jumpRange, ErrInvalidConfiguration)
	}

	n := len(systems)
	m := domain.NewCostMatrix(n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := 0; i < n-1; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Upper triangle of row i; Set mirrors into (j,i).
			for j := i + 1; j < n; j++ {
				d := systems[i].DistanceTo(systems[j])
				m.Set(i, j, d, JumpCost(d, jumpRange))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build cost matrix: %w", err)
	}
	return m, nil
}
