package model

import "math"

// Method selects the baseflow separation algorithm.
type Method int

const (
	MethodEckhardt Method = 1
	MethodChapman  Method = 2
	// MethodChapmanMaxwell is the Chapman & Maxwell (1996) variant
	MethodChapmanMaxwell Method = 3
	MethodLocal          Method = 4
	MethodNone           Method = 5
)

func (m Method) String() string {
	switch m {
	case MethodEckhardt:
		return "Eckhardt"
	case MethodChapman:
		return "Chapman"
	case MethodChapmanMaxwell:
		return "Chapman & Maxwell"
	case MethodLocal:
		return "Local"
	case MethodNone:
		return "None"
	}
	return "Unknown"
}

// Target selects which component of the hydrograph the metrics score.
type Target int

const (
	TargetHydrograph Target = 1
	TargetBaseflow   Target = 2
)

func (t Target) String() string {
	switch t {
	case TargetHydrograph:
		return "Hydrograph"
	case TargetBaseflow:
		return "Baseflow"
	}
	return "Unknown"
}

// RecessionParameters are per-gage scalars estimated by the caller
// (recession analysis of the daily record, regional BFI lookup).
// The separator only reads them.
type RecessionParameters struct {
	// RecessionCoefficient is the fraction of streamflow retained from
	// one timestep to the next under pure exponential recession, in (0,1).
	RecessionCoefficient float64
	// BaseflowIndexMax is the upper bound on the baseflow fraction of
	// total flow for the catchment, in (0,1). Only Eckhardt uses it.
	BaseflowIndexMax float64
	// DrainageArea in square miles, only the Local method uses it to pick
	// a smoothing window. Zero or negative means unknown.
	DrainageArea float64
}

type SeparatedSeries struct {
	Baseflow *TimeSeries
	Runoff   *TimeSeries
}

// Metric names one statistic in a MetricsRecord.
type Metric int

const (
	MetricR2    Metric = 1
	MetricNSE   Metric = 2
	MetricRSR   Metric = 3
	MetricPBIAS Metric = 4
	MetricPFPE  Metric = 5
)

func (m Metric) String() string {
	switch m {
	case MetricR2:
		return "R2"
	case MetricNSE:
		return "NSE"
	case MetricRSR:
		return "RSR"
	case MetricPBIAS:
		return "PBIAS"
	case MetricPFPE:
		return "PFPE"
	}
	return "Unknown"
}

// MetricsRecord holds the calibration statistics for one gage and target.
// For TargetBaseflow only PFPE is computed, the other fields stay NaN.
// Records are never mutated after creation.
type MetricsRecord struct {
	StationID string  `json:"station_id"`
	Target    Target  `json:"target"`
	R2        float64 `json:"r2"`
	NSE       float64 `json:"nse"`
	RSR       float64 `json:"rsr"`
	PBIAS     float64 `json:"pbias"`
	PFPE      float64 `json:"pfpe"`
}

func (r *MetricsRecord) Get(metric Metric) float64 {
	switch metric {
	case MetricR2:
		return r.R2
	case MetricNSE:
		return r.NSE
	case MetricRSR:
		return r.RSR
	case MetricPBIAS:
		return r.PBIAS
	case MetricPFPE:
		return r.PFPE
	}
	return math.NaN()
}

// Rating is the qualitative calibration bucket for one metric value.
// RatingUnrated tags NaN inputs, they never fall through to Unsatisfactory.
type Rating int

const (
	RatingUnrated        Rating = 0
	RatingVeryGood       Rating = 1
	RatingGood           Rating = 2
	RatingSatisfactory   Rating = 3
	RatingUnsatisfactory Rating = 4
)

func (r Rating) String() string {
	switch r {
	case RatingVeryGood:
		return "Very Good"
	case RatingGood:
		return "Good"
	case RatingSatisfactory:
		return "Satisfactory"
	case RatingUnsatisfactory:
		return "Unsatisfactory"
	}
	return "Unrated"
}
