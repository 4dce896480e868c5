package baseflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/hydrograph-algorithms/common"
	"github.com/uyouii/hydrograph-algorithms/model"
)

func makeSeries(values ...float64) *model.TimeSeries {
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	res := &model.TimeSeries{
		Labels: map[string]string{"station_id": "08158000"},
		Values: make([]model.TimeValue, 0, len(values)),
	}
	for i, v := range values {
		res.Values = append(res.Values, model.TimeValue{
			Time:  start.Add(time.Duration(i) * 24 * time.Hour),
			Value: v,
		})
	}
	return res
}

func TestSeparateNone(t *testing.T) {
	series := makeSeries(stormQ...)
	params := model.RecessionParameters{}

	sep, err := Separate(series, model.MethodNone, params)
	require.NoError(t, err)
	require.Len(t, sep.Baseflow.Values, len(stormQ))
	require.Len(t, sep.Runoff.Values, len(stormQ))

	for i := range stormQ {
		assert.Equal(t, 0.0, sep.Baseflow.Values[i].Value, "index %v", i)
		assert.Equal(t, stormQ[i], sep.Runoff.Values[i].Value, "index %v", i)
		assert.Equal(t, series.Values[i].Time, sep.Baseflow.Values[i].Time, "index %v", i)
	}
}

func TestSeparateRunoffIdentity(t *testing.T) {
	params := model.RecessionParameters{
		RecessionCoefficient: 0.9,
		BaseflowIndexMax:     0.8,
		DrainageArea:         1,
	}

	tests := []struct {
		name   string
		method model.Method
		values []float64
	}{
		{"Chapman", model.MethodChapman, stormQ},
		{"Chapman & Maxwell", model.MethodChapmanMaxwell, stormQ},
		{"Eckhardt", model.MethodEckhardt, stormQ},
		{"Local", model.MethodLocal, []float64{5, 2, 6, 1, 7, 3, 8, 2, 9, 4, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := makeSeries(tt.values...)
			sep, err := Separate(series, tt.method, params)
			require.NoError(t, err)

			for i, q := range tt.values {
				b := sep.Baseflow.Values[i].Value
				assert.Equal(t, q-b, sep.Runoff.Values[i].Value, "index %v", i)
				assert.GreaterOrEqual(t, b, 0.0, "index %v", i)
				assert.LessOrEqual(t, b, max(q, 0), "index %v", i)
			}
		})
	}
}

func TestSeparateChapmanSeedsFromLH(t *testing.T) {
	series := makeSeries(stormQ...)
	params := model.RecessionParameters{RecessionCoefficient: 0.9}

	sep, err := Separate(series, model.MethodChapman, params)
	require.NoError(t, err)

	bLH := LH(stormQ, LHBeta)
	assert.Equal(t, bLH[0], sep.Baseflow.Values[0].Value)
}

func TestSeparateNegativeValues(t *testing.T) {
	// upstream data artifacts can dip below zero, baseflow must not
	series := makeSeries(10, 8, -2, 6, 9, 7, 5, 4)
	params := model.RecessionParameters{RecessionCoefficient: 0.9}

	sep, err := Separate(series, model.MethodChapman, params)
	require.NoError(t, err)

	for i, v := range sep.Baseflow.Values {
		assert.GreaterOrEqual(t, v.Value, 0.0, "index %v", i)
		assert.LessOrEqual(t, v.Value, max(series.Values[i].Value, 0), "index %v", i)
	}
}

func TestSeparateErrors(t *testing.T) {
	params := model.RecessionParameters{RecessionCoefficient: 0.9}

	t.Run("empty series", func(t *testing.T) {
		_, err := Separate(&model.TimeSeries{}, model.MethodChapman, params)
		assert.ErrorIs(t, err, common.ErrorInvalidValue)

		_, err = Separate(nil, model.MethodChapman, params)
		assert.ErrorIs(t, err, common.ErrorInvalidValue)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := Separate(makeSeries(stormQ...), model.Method(99), params)
		assert.ErrorIs(t, err, common.ErrorUnknownMethod)
	})

	t.Run("local with too few turning points", func(t *testing.T) {
		_, err := Separate(makeSeries(1, 2, 3, 4), model.MethodLocal, params)
		assert.ErrorIs(t, err, common.ErrorInsufficientData)
	})
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want model.Method
	}{
		{"Eckhardt", model.MethodEckhardt},
		{"Chapman", model.MethodChapman},
		{"Chapman & Maxwell", model.MethodChapmanMaxwell},
		{"Local", model.MethodLocal},
		{"None", model.MethodNone},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMethod(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}

	_, err := ParseMethod("Boussinesq")
	assert.ErrorIs(t, err, common.ErrorUnknownMethod)
}
