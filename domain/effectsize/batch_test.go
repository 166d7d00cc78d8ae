package effectsize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qconv/domain/core"
)

func TestAUCsToD_MatchesScalar(t *testing.T) {
	aucs := []float64{0.55, 0.6, 0.75, 0.9, 0.99}

	ds, err := AUCsToD(aucs)
	require.NoError(t, err)
	require.Len(t, ds, len(aucs))

	for i, auc := range aucs {
		want, err := AUCToD(auc)
		require.NoError(t, err)
		assert.Equal(t, want, ds[i], "auc=%v", auc)
	}
}

func TestAUCsToD_ReportsOffendingIndex(t *testing.T) {
	_, err := AUCsToD([]float64{0.6, 1.2, 0.7})
	require.Error(t, err)
	assert.True(t, core.IsDomainError(err))
	assert.Contains(t, err.Error(), "auc[1]")
}

func TestLogOddsSliceToD(t *testing.T) {
	in := []float64{-2, 0, 1, math.Pi}
	out := LogOddsSliceToD(in)
	require.Len(t, out, len(in))
	for i, lor := range in {
		assert.Equal(t, LogOddsToD(lor), out[i])
	}
}

func TestDsToRPB(t *testing.T) {
	ds := []float64{-1, 0, 0.5, 2}

	rs, err := DsToRPB(ds, 0.3)
	require.NoError(t, err)
	for i, d := range ds {
		want, err := CohenDToRPB(d, 0.3)
		require.NoError(t, err)
		assert.Equal(t, want, rs[i], "d=%v", d)
	}

	_, err = DsToRPB(ds, 0)
	require.Error(t, err)
	assert.True(t, core.IsDomainError(err))
}

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{1, 2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, 4, s.N)
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, 2.5, s.Median, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3.0), s.SD, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
}

func TestSummarize_SingleValue(t *testing.T) {
	s, err := Summarize([]float64{0.7})
	require.NoError(t, err)
	assert.Equal(t, 1, s.N)
	assert.Zero(t, s.SD)
	assert.Equal(t, 0.7, s.Mean)
}

func TestSummarize_Empty(t *testing.T) {
	_, err := Summarize(nil)
	require.Error(t, err)
	assert.True(t, core.IsDomainError(err))
}
