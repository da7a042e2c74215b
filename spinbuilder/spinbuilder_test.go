package spinbuilder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/annealcore/quso"
	"github.com/katalvlaran/annealcore/spinbuilder"
)

func fixedCoupling(v float64) func(*rand.Rand) float64 {
	return func(*rand.Rand) float64 { return v }
}

func TestChain_BuildsSymmetricPath(t *testing.T) {
	p, err := spinbuilder.BuildQUSO(spinbuilder.Chain(4), spinbuilder.WithCouplingFn(fixedCoupling(-2)))
	require.NoError(t, err)
	require.NoError(t, quso.VerifySymmetry(p))
	assert.Equal(t, 4, p.N())

	nbr0, coupling0 := p.Neighbors(0)
	assert.Equal(t, []int{1}, nbr0)
	assert.Equal(t, []float64{-2}, coupling0)

	nbr1, _ := p.Neighbors(1)
	assert.ElementsMatch(t, []int{0, 2}, nbr1)
}

func TestChain_TooFewSpins(t *testing.T) {
	_, err := spinbuilder.BuildQUSO(spinbuilder.Chain(1))
	assert.ErrorIs(t, err, spinbuilder.ErrTooFewSpins)
}

func TestCycle_ClosesRing(t *testing.T) {
	p, err := spinbuilder.BuildQUSO(spinbuilder.Cycle(3), spinbuilder.WithCouplingFn(fixedCoupling(1)))
	require.NoError(t, err)
	require.NoError(t, quso.VerifySymmetry(p))

	for i := 0; i < 3; i++ {
		nbr, _ := p.Neighbors(i)
		assert.Len(t, nbr, 2)
	}
}

func TestComplete_AllPairsCoupled(t *testing.T) {
	p, err := spinbuilder.BuildQUSO(spinbuilder.Complete(5))
	require.NoError(t, err)
	require.NoError(t, quso.VerifySymmetry(p))

	for i := 0; i < 5; i++ {
		nbr, _ := p.Neighbors(i)
		assert.Len(t, nbr, 4)
	}
}

func TestGridLattice_InteriorHasFourNeighbors(t *testing.T) {
	p, err := spinbuilder.BuildQUSO(spinbuilder.GridLattice(3, 3))
	require.NoError(t, err)
	require.NoError(t, quso.VerifySymmetry(p))

	// center cell (1,1) -> index 4 has degree 4; corner (0,0) has degree 2.
	center, _ := p.Neighbors(4)
	assert.Len(t, center, 4)

	corner, _ := p.Neighbors(0)
	assert.Len(t, corner, 2)
}

func TestRandomSparseQUSO_RequiresRNG(t *testing.T) {
	_, err := spinbuilder.BuildQUSO(spinbuilder.RandomSparseQUSO(5, 0.5))
	assert.ErrorIs(t, err, spinbuilder.ErrNeedRandSource)
}

func TestRandomSparseQUSO_InvalidProbability(t *testing.T) {
	_, err := spinbuilder.BuildQUSO(spinbuilder.RandomSparseQUSO(5, 1.5), spinbuilder.WithSeed(0))
	assert.ErrorIs(t, err, spinbuilder.ErrInvalidProbability)
}

func TestRandomSparseQUSO_DeterministicForFixedSeed(t *testing.T) {
	build := func() *quso.Problem {
		p, err := spinbuilder.BuildQUSO(spinbuilder.RandomSparseQUSO(8, 0.4), spinbuilder.WithSeed(123))
		require.NoError(t, err)
		return p
	}

	p1, p2 := build(), build()
	assert.Equal(t, p1.Nbr, p2.Nbr)
	assert.Equal(t, p1.J, p2.J)
}

func TestRandomRegularQUSO_DegreeHonored(t *testing.T) {
	p, err := spinbuilder.BuildQUSO(spinbuilder.RandomRegularQUSO(6, 3), spinbuilder.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, quso.VerifySymmetry(p))

	for i := 0; i < 6; i++ {
		nbr, _ := p.Neighbors(i)
		assert.Len(t, nbr, 3)
	}
}

func TestRandomRegularQUSO_OddParityRejected(t *testing.T) {
	_, err := spinbuilder.BuildQUSO(spinbuilder.RandomRegularQUSO(5, 3), spinbuilder.WithSeed(0))
	assert.ErrorIs(t, err, spinbuilder.ErrInvalidDegree)
}

func TestRandomPUSOTerms_ArityHonored(t *testing.T) {
	p, err := spinbuilder.BuildPUSO(spinbuilder.RandomPUSOTerms(6, 10, 3), spinbuilder.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, 10, p.NumTerms())
	for term := 0; term < p.NumTerms(); term++ {
		assert.Len(t, p.TermSpins(term), 3)
	}
}

func TestRandomPUSOTerms_RequiresRNG(t *testing.T) {
	_, err := spinbuilder.BuildPUSO(spinbuilder.RandomPUSOTerms(6, 10, 3))
	assert.ErrorIs(t, err, spinbuilder.ErrNeedRandSource)
}
