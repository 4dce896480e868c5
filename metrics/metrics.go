package metrics

import (
	"fmt"
	"math"

	"github.com/uyouii/hydrograph-algorithms/common"
	"github.com/uyouii/hydrograph-algorithms/model"
	"github.com/uyouii/hydrograph-algorithms/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ComputeMetrics scores the agreement between an observed and a modeled
// series. Both series must already be aligned to the same gap-free time
// index by the caller.
//
// For TargetHydrograph the full statistic set is computed. For
// TargetBaseflow only PFPE is computed: separated baseflow is already
// heavily smoothed, which makes R2/NSE/RSR unreliable on it. Degenerate
// inputs (all-zero observed flow) yield NaN statistics, never an error.
func ComputeMetrics(observed, modeled *model.TimeSeries, stationID string,
	target model.Target) (*model.MetricsRecord, error) {
	if observed.IsEmpty() || modeled.IsEmpty() {
		return nil, common.ErrorInvalidValue
	}

	obs, mod := observed.Floats(), modeled.Floats()
	if len(obs) != len(mod) {
		return nil, fmt.Errorf("%w: observed %v, modeled %v",
			common.ErrorLengthMismatch, len(obs), len(mod))
	}

	nan := math.NaN()
	rec := &model.MetricsRecord{
		StationID: stationID,
		Target:    target,
		R2:        nan,
		NSE:       nan,
		RSR:       nan,
		PBIAS:     nan,
		PFPE:      nan,
	}

	if target == model.TargetBaseflow {
		if utils.AllZero(obs) || utils.AllZero(mod) {
			return rec, nil
		}
		rec.PFPE = peakFlowPercentError(obs, mod)
		return rec, nil
	}

	corr := stat.Correlation(obs, mod, nil)
	rec.R2 = corr * corr
	rec.NSE = nashSutcliffe(obs, mod)
	// numpy-style population std dev, not the sample estimator
	rec.RSR = rootMeanSquaredError(obs, mod) / stat.PopStdDev(obs, nil)
	rec.PBIAS = percentBias(obs, mod)
	rec.PFPE = peakFlowPercentError(obs, mod)
	return rec, nil
}

// nashSutcliffe is 1 - sum((obs-mod)^2) / sum((obs-mean(obs))^2).
func nashSutcliffe(obs, mod []float64) float64 {
	mean := stat.Mean(obs, nil)
	var num, den float64
	for i := range obs {
		d := obs[i] - mod[i]
		num += d * d
		m := obs[i] - mean
		den += m * m
	}
	return 1 - num/den
}

func rootMeanSquaredError(obs, mod []float64) float64 {
	var sum float64
	for i := range obs {
		d := obs[i] - mod[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(obs)))
}

// percentBias is |sum(obs-mod)| / sum(obs) * 100. NaN when the observed
// flow sums to zero, zero-flow gages would otherwise divide by zero.
func percentBias(obs, mod []float64) float64 {
	obsSum := floats.Sum(obs)
	if obsSum == 0 {
		return math.NaN()
	}
	var diffSum float64
	for i := range obs {
		diffSum += obs[i] - mod[i]
	}
	return math.Abs(diffSum/obsSum) * 100
}

// peakFlowPercentError compares the two peaks independently, they need not
// be coincident in time. NaN when the observed peak is zero.
func peakFlowPercentError(obs, mod []float64) float64 {
	peakObs := floats.Max(obs)
	if peakObs == 0 {
		return math.NaN()
	}
	return math.Abs(floats.Max(mod)-peakObs) / peakObs * 100
}
