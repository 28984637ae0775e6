package predict

import (
	"math"
	"math/rand"
)

// poissonPMF calculates P(X = k) where X ~ Poisson(lambda)
// Uses log space for numerical stability
func poissonPMF(k int, lambda float64) float64 {
	if k < 0 {
		return 0
	}
	if lambda <= 0 {
		if k == 0 {
			return 1.0
		}
		return 0
	}

	logProb := float64(k)*math.Log(lambda) - lambda - logFactorial(k)
	return math.Exp(logProb)
}

// logFactorial computes log(n!) for pmf calculations
func logFactorial(n int) float64 {
	if n <= 1 {
		return 0
	}
	result := 0.0
	for i := 2; i <= n; i++ {
		result += math.Log(float64(i))
	}
	return result
}

// poissonSample generates a single draw from Poisson(lambda)
// Knuth's algorithm for small lambda, normal approximation for large
func poissonSample(rng *rand.Rand, lambda float64) int {
	if lambda <= 0 {
		return 0
	}

	if lambda < 30 {
		L := math.Exp(-lambda)
		k := 0
		p := 1.0
		for p > L {
			k++
			p *= rng.Float64()
		}
		return k - 1
	}

	sample := int(math.Round(lambda + math.Sqrt(lambda)*rng.NormFloat64()))
	if sample < 0 {
		return 0
	}
	return sample
}

// gammaSample generates a draw from Gamma(shape, scale=1) using the
// Marsaglia-Tsang squeeze method. Shapes below 1 use the boost
// Gamma(a) = Gamma(a+1) * U^(1/a).
func gammaSample(rng *rand.Rand, shape float64) float64 {
	if shape < 1 {
		u := rng.Float64()
		return gammaSample(rng, shape+1) * math.Pow(u, 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9*d)

	for {
		x := rng.NormFloat64()
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := rng.Float64()

		if u < 1-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}

// negBinomSample generates a draw from NegBin(n, p) via the gamma-Poisson
// mixture: X ~ Poisson(L) with L ~ Gamma(n, (1-p)/p)
func negBinomSample(rng *rand.Rand, n, p float64) int {
	scale := (1 - p) / p
	lambda := gammaSample(rng, n) * scale
	return poissonSample(rng, lambda)
}

// negBinomPMF calculates P(X = k) for NegBin(n, p) with real-valued n:
//
//	P(X = k) = Gamma(k+n) / (Gamma(n) k!) * p^n * (1-p)^k
func negBinomPMF(k int, n, p float64) float64 {
	if k < 0 {
		return 0
	}

	lg1, _ := math.Lgamma(float64(k) + n)
	lg2, _ := math.Lgamma(n)
	logProb := lg1 - lg2 - logFactorial(k) + n*math.Log(p) + float64(k)*math.Log(1-p)
	return math.Exp(logProb)
}

// negBinomCDF calculates P(X <= x). Non-integer arguments floor to the
// nearest count below, matching the usual discrete CDF convention.
func negBinomCDF(x float64, n, p float64) float64 {
	upper := int(math.Floor(x))
	if upper < 0 {
		return 0
	}

	total := 0.0
	for k := 0; k <= upper; k++ {
		total += negBinomPMF(k, n, p)
	}
	if total > 1 {
		return 1
	}
	return total
}

// skellamPMF calculates P(D = d) for D = X - Y with X ~ Poisson(lambda1) and
// Y ~ Poisson(lambda2), by direct convolution over the away goal count.
// For d < 0 every term before y = -d is identically zero, so the sum starts
// at the first contributing term. The series is truncated only once both
// factors are past their modes and the terms have decayed to nothing.
func skellamPMF(d int, lambda1, lambda2 float64) float64 {
	start := 0
	if d < 0 {
		start = -d
	}

	total := 0.0
	for y := start; y < start+128; y++ {
		term := poissonPMF(y+d, lambda1) * poissonPMF(y, lambda2)
		total += term
		if float64(y) > lambda2 && float64(y+d) > lambda1 && term < 1e-15 {
			break
		}
	}
	return total
}
