// Package effectsize converts classification-performance statistics
// (AUROC, sensitivity/specificity, PPV/NPV) into Cohen's d and
// point-biserial correlations, following the conversion formulas used
// in diagnostic meta-analysis.
package effectsize

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"qconv/domain/core"
)

// probit computes the inverse standard normal CDF.
func probit(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}

// logit computes ln(x / (1 - x)).
func logit(x float64) float64 {
	return math.Log(x / (1 - x))
}

// AUCToD converts an AUROC value to Cohen's d for the balanced case:
// equal group standard deviations and equal base rates, where the
// scaling factor simplifies to sqrt(2).
//
// Reference: Ruscio, J. (2008). A probability-based measure of effect
// size. Psychological Methods, 13(1), 19.
func AUCToD(auc float64) (float64, error) {
	if !(auc > 0 && auc < 1) {
		return 0, core.NewDomainError("auc", auc, "0 < auc < 1")
	}
	return math.Sqrt2 * probit(auc), nil
}

// AUCToDWithGroups converts an AUROC value to Cohen's d with explicit
// group standard deviations s1, s2 and base rate p1 (p2 = 1 - p1).
// All three context arguments are required so a supplied value is never
// silently mixed with a hidden default; use AUCToD for the balanced
// case.
func AUCToDWithGroups(auc, s1, s2, p1 float64) (float64, error) {
	if !(auc > 0 && auc < 1) {
		return 0, core.NewDomainError("auc", auc, "0 < auc < 1")
	}
	if !(s1 > 0) {
		return 0, core.NewDomainError("s1", s1, "s1 > 0")
	}
	if !(s2 > 0) {
		return 0, core.NewDomainError("s2", s2, "s2 > 0")
	}
	if !(p1 > 0 && p1 < 1) {
		return 0, core.NewDomainError("p1", p1, "0 < p1 < 1")
	}

	p2 := 1 - p1
	scale := math.Sqrt((s1*s1 + s2*s2) / (p1*s1*s1 + p2*s2*s2))
	return scale * probit(auc), nil
}

// LogOddsToD converts a natural-log odds ratio to Cohen's d under the
// logistic latent-distribution assumption: d = logodds * sqrt(3) / pi.
// Total over the extended reals; non-finite input yields non-finite
// output rather than an error.
//
// Reference: Hasselblad, V., & Hedges, L. V. (1995). Meta-analysis of
// screening and diagnostic tests. Psychological Bulletin, 117(1), 167.
func LogOddsToD(logodds float64) float64 {
	return logodds * math.Sqrt(3) / math.Pi
}

// CohenDToRPB converts Cohen's d to a point-biserial correlation.
// p is the proportion of the total sample in the focal group.
//
// Reference: McGrath, R. E., & Meyer, G. J. (2006). When effect sizes
// disagree. Psychological Methods, 11(4), 386.
func CohenDToRPB(d, p float64) (float64, error) {
	if !(p > 0 && p < 1) {
		return 0, core.NewDomainError("p", p, "0 < p < 1")
	}

	h := 1 / (p * (1 - p))
	return d / math.Sqrt(d*d+h), nil
}

// CohenDToRPBBalanced converts Cohen's d to a point-biserial
// correlation assuming equal group sizes (p = 0.5).
func CohenDToRPBBalanced(d float64) float64 {
	r, _ := CohenDToRPB(d, 0.5)
	return r
}

// LogOddsFromSensSpec computes the diagnostic log-odds ratio
// logit(sensitivity) + logit(specificity), i.e. the log of
// [sens/(1-sens)] * [spec/(1-spec)].
func LogOddsFromSensSpec(sensitivity, specificity float64) (float64, error) {
	if !(sensitivity > 0 && sensitivity < 1) {
		return 0, core.NewDomainError("sensitivity", sensitivity, "0 < sensitivity < 1")
	}
	if !(specificity > 0 && specificity < 1) {
		return 0, core.NewDomainError("specificity", specificity, "0 < specificity < 1")
	}
	return logit(sensitivity) + logit(specificity), nil
}

// LogOddsFromPPVNPV computes the log-odds ratio logit(ppv) + logit(npv).
// PPV and NPV play the same structural role for positive and negative
// calls that sensitivity and specificity play for true class membership.
func LogOddsFromPPVNPV(ppv, npv float64) (float64, error) {
	if !(ppv > 0 && ppv < 1) {
		return 0, core.NewDomainError("ppv", ppv, "0 < ppv < 1")
	}
	if !(npv > 0 && npv < 1) {
		return 0, core.NewDomainError("npv", npv, "0 < npv < 1")
	}
	return logit(ppv) + logit(npv), nil
}
