package model

import (
	"fmt"
	"time"
)

type TimeValue struct {
	Time  time.Time
	Value float64
}

func (v *TimeValue) Less(timeValue TimeValue) bool {
	return v.Value < timeValue.Value
}

func (v *TimeValue) Before(timeValue TimeValue) bool {
	return v.Time.Before(timeValue.Time)
}

type TimeSeries struct {
	// Labels contains label key -> label value, like "station_id": "08158000"
	Labels map[string]string
	Values []TimeValue
}

func (s *TimeSeries) DebugString() string {
	res := fmt.Sprintf("labels: %+v, valueCount: %+v", s.Labels, len(s.Values))
	return res
}

func (s *TimeSeries) IsEmpty() bool {
	if s == nil {
		return true
	}
	return len(s.Values) == 0
}

// Floats copies out the raw discharge values, the filters work on these only.
func (s *TimeSeries) Floats() []float64 {
	if s == nil {
		return nil
	}
	res := make([]float64, 0, len(s.Values))
	for _, v := range s.Values {
		res = append(res, v.Value)
	}
	return res
}

// WithValues builds a new series carrying the same labels and timestamps
// but the given values. Length must match the receiver.
func (s *TimeSeries) WithValues(values []float64) *TimeSeries {
	if s == nil || len(values) != len(s.Values) {
		return nil
	}
	res := &TimeSeries{
		Labels: s.Labels,
		Values: make([]TimeValue, 0, len(values)),
	}
	for i, v := range s.Values {
		res.Values = append(res.Values, TimeValue{
			Time:  v.Time,
			Value: values[i],
		})
	}
	return res
}
