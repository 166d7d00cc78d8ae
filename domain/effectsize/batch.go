package effectsize

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"qconv/domain/core"
)

// Summary describes a collection of converted effect sizes.
type Summary struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	SD     float64 `json:"sd"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// AUCsToD converts a slice of AUROC values to Cohen's d, balanced case.
// Fails on the first out-of-domain element, identifying its index.
func AUCsToD(aucs []float64) ([]float64, error) {
	out := make([]float64, len(aucs))
	for i, auc := range aucs {
		d, err := AUCToD(auc)
		if err != nil {
			return nil, fmt.Errorf("auc[%d]: %w", i, err)
		}
		out[i] = d
	}
	return out, nil
}

// LogOddsSliceToD converts a slice of log-odds ratios to Cohen's d.
func LogOddsSliceToD(logodds []float64) []float64 {
	out := make([]float64, len(logodds))
	for i, lor := range logodds {
		out[i] = LogOddsToD(lor)
	}
	return out
}

// DsToRPB converts a slice of Cohen's d values to point-biserial
// correlations with a shared focal-group proportion p.
func DsToRPB(ds []float64, p float64) ([]float64, error) {
	if !(p > 0 && p < 1) {
		return nil, core.NewDomainError("p", p, "0 < p < 1")
	}

	out := make([]float64, len(ds))
	for i, d := range ds {
		r, err := CohenDToRPB(d, p)
		if err != nil {
			return nil, fmt.Errorf("d[%d]: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

// Summarize computes descriptive statistics over a set of converted
// effect sizes, e.g. the per-study d values of a meta-analysis.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, fmt.Errorf("%w: values must be non-empty", core.ErrDomain)
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(values)
	if err != nil {
		return Summary{}, err
	}
	min, err := stats.Min(values)
	if err != nil {
		return Summary{}, err
	}
	max, err := stats.Max(values)
	if err != nil {
		return Summary{}, err
	}

	// Sample SD is undefined for a single observation.
	sd := 0.0
	if len(values) > 1 {
		sd, err = stats.StandardDeviationSample(values)
		if err != nil {
			return Summary{}, err
		}
	}

	return Summary{
		N:      len(values),
		Mean:   mean,
		Median: median,
		SD:     sd,
		Min:    min,
		Max:    max,
	}, nil
}
