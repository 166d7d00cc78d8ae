// Package testkit provides deterministic synthetic two-group samples
// and the directly-measured statistics (empirical AUC, pooled SD,
// point-biserial correlation) used to validate the conversion formulas
// against ground truth.
package testkit

import (
	"math"
	"math/rand"

	"github.com/montanaflynn/stats"
	gstat "gonum.org/v1/gonum/stat"
)

// NewRand returns a seeded generator so validation runs are
// reproducible.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NormalSamples draws n values from N(mean, sd).
func NormalSamples(r *rand.Rand, mean, sd float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = mean + sd*r.NormFloat64()
	}
	return out
}

// LogisticSamples draws n values from a logistic distribution via
// inverse-CDF sampling.
func LogisticSamples(r *rand.Rand, location, scale float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		u := r.Float64()
		for u == 0 {
			u = r.Float64()
		}
		out[i] = location + scale*math.Log(u/(1-u))
	}
	return out
}

// EmpiricalAUC computes the Mann-Whitney estimate of the probability
// that a positive-class score exceeds a negative-class score, counting
// ties as half.
func EmpiricalAUC(pos, neg []float64) float64 {
	if len(pos) == 0 || len(neg) == 0 {
		return math.NaN()
	}

	var u float64
	for _, p := range pos {
		for _, n := range neg {
			switch {
			case p > n:
				u++
			case p == n:
				u += 0.5
			}
		}
	}
	return u / (float64(len(pos)) * float64(len(neg)))
}

// PooledSD computes the (n-1)-weighted pooled sample standard
// deviation of two groups.
func PooledSD(g1, g2 []float64) float64 {
	v1, _ := stats.SampleVariance(g1)
	v2, _ := stats.SampleVariance(g2)
	n1 := float64(len(g1))
	n2 := float64(len(g2))
	return math.Sqrt(((n1-1)*v1 + (n2-1)*v2) / (n1 + n2 - 2))
}

// CohenD computes the standardized mean difference between g2 and g1
// using the pooled sample standard deviation.
func CohenD(g1, g2 []float64) float64 {
	m1, _ := stats.Mean(g1)
	m2, _ := stats.Mean(g2)
	return (m2 - m1) / PooledSD(g1, g2)
}

// PointBiserial computes the Pearson correlation between a binary
// group indicator and a continuous outcome.
func PointBiserial(indicator, values []float64) float64 {
	return gstat.Correlation(indicator, values, nil)
}
