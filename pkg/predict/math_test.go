package predict

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoissonPMFBasics(t *testing.T) {
	// P(X=0) = exp(-lambda)
	assert.InDelta(t, math.Exp(-1.5), poissonPMF(0, 1.5), 1e-12)

	// pmf sums to ~1 over a generous range
	total := 0.0
	for k := 0; k < 60; k++ {
		total += poissonPMF(k, 2.3)
	}
	assert.InDelta(t, 1.0, total, 1e-9)

	assert.Equal(t, 0.0, poissonPMF(-1, 2.0))
	assert.Equal(t, 1.0, poissonPMF(0, 0))
	assert.Equal(t, 0.0, poissonPMF(3, 0))
}

func TestSkellamPMFSumsToOne(t *testing.T) {
	total := 0.0
	for d := -40; d <= 40; d++ {
		total += skellamPMF(d, 1.8, 1.1)
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestSkellamPMFNegativeTail(t *testing.T) {
	// Negative differences beyond the away rate still carry mass. Compare
	// against the untruncated convolution computed directly.
	lambda1, lambda2 := 1.8, 1.1
	for d := -8; d < 0; d++ {
		want := 0.0
		for y := 0; y < 200; y++ {
			want += poissonPMF(y+d, lambda1) * poissonPMF(y, lambda2)
		}

		got := skellamPMF(d, lambda1, lambda2)
		assert.Greater(t, got, 0.0, "d=%d", d)
		assert.InDelta(t, want, got, 1e-12, "d=%d", d)
	}
}

func TestSkellamPMFSymmetry(t *testing.T) {
	// Swapping the rates mirrors the difference distribution
	assert.InDelta(t, skellamPMF(2, 1.6, 0.9), skellamPMF(-2, 0.9, 1.6), 1e-12)
}

func TestNegBinomPMFSumsToOne(t *testing.T) {
	n, p := nbParams(2.6, 1.5)
	total := 0.0
	for k := 0; k < 400; k++ {
		total += negBinomPMF(k, n, p)
	}
	assert.InDelta(t, 1.0, total, 1e-6)
}

func TestNegBinomCDFFloorsArgument(t *testing.T) {
	n, p := nbParams(2.6, 1.5)
	// cdf(0.5) covers counts <= 0 only
	assert.InDelta(t, negBinomPMF(0, n, p), negBinomCDF(0.5, n, p), 1e-12)
	assert.Equal(t, 0.0, negBinomCDF(-0.5, n, p))
}

func TestPoissonSampleMatchesMean(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const runs = 20000
	lambda := 2.4

	total := 0
	for i := 0; i < runs; i++ {
		total += poissonSample(rng, lambda)
	}
	mean := float64(total) / runs
	assert.InDelta(t, lambda, mean, 0.1)
}

func TestGammaSampleMatchesMean(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const runs = 20000
	shape := 1.8

	total := 0.0
	for i := 0; i < runs; i++ {
		total += gammaSample(rng, shape)
	}
	mean := total / runs
	assert.InDelta(t, shape, mean, 0.1)
}

func TestNegBinomSampleMatchesMean(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const runs = 20000
	n, p := nbParams(2.0, 1.5)
	want := n * (1 - p) / p

	total := 0
	for i := 0; i < runs; i++ {
		total += negBinomSample(rng, n, p)
	}
	mean := float64(total) / runs
	assert.InDelta(t, want, mean, want*0.1)
}
