package metrics

import (
	"math"

	"github.com/uyouii/hydrograph-algorithms/model"
)

// RatedRecord pairs a MetricsRecord with the qualitative rating of each of
// its statistics.
type RatedRecord struct {
	StationID string
	Target    model.Target
	Ratings   map[model.Metric]model.Rating
}

var allMetrics = []model.Metric{
	model.MetricR2, model.MetricNSE, model.MetricRSR,
	model.MetricPBIAS, model.MetricPFPE,
}

// EvaluateRecord classifies every statistic of a record. Statistics that
// were not computed (NaN) come back RatingUnrated.
func EvaluateRecord(rec *model.MetricsRecord) *RatedRecord {
	res := &RatedRecord{
		StationID: rec.StationID,
		Target:    rec.Target,
		Ratings:   map[model.Metric]model.Rating{},
	}
	for _, metric := range allMetrics {
		res.Ratings[metric] = EvaluateMetric(metric, rec.Get(metric))
	}
	return res
}

// EvaluateMetric places one statistic value into its rating band. NaN is
// RatingUnrated, it never silently counts as Unsatisfactory.
func EvaluateMetric(metric model.Metric, value float64) model.Rating {
	if math.IsNaN(value) {
		return model.RatingUnrated
	}
	switch metric {
	case model.MetricR2, model.MetricNSE:
		return rateEfficiency(value)
	case model.MetricRSR:
		return rateRSR(value)
	case model.MetricPBIAS:
		return rateErrorPercent(value, PBIASVeryGood, PBIASGood, PBIASSatisfactory)
	case model.MetricPFPE:
		return rateErrorPercent(value, PFPEVeryGood, PFPEGood, PFPESatisfactory)
	}
	return model.RatingUnrated
}

func rateEfficiency(v float64) model.Rating {
	switch {
	case v > EfficiencyVeryGood && v <= EfficiencyMax:
		return model.RatingVeryGood
	case v > EfficiencyGood && v <= EfficiencyVeryGood:
		return model.RatingGood
	case v > EfficiencySatisfactory && v <= EfficiencyGood:
		return model.RatingSatisfactory
	}
	return model.RatingUnsatisfactory
}

func rateRSR(v float64) model.Rating {
	switch {
	case v > 0 && v <= RSRVeryGood:
		return model.RatingVeryGood
	case v > RSRVeryGood && v <= RSRGood:
		return model.RatingGood
	case v > RSRGood && v <= RSRSatisfactory:
		return model.RatingSatisfactory
	}
	return model.RatingUnsatisfactory
}

// rateErrorPercent covers the percent-error statistics, smaller is better.
func rateErrorPercent(v, veryGood, good, satisfactory float64) model.Rating {
	switch {
	case v < veryGood:
		return model.RatingVeryGood
	case v < good:
		return model.RatingGood
	case v < satisfactory:
		return model.RatingSatisfactory
	}
	return model.RatingUnsatisfactory
}
