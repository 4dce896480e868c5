package calibration

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/hydrograph-algorithms/common"
	"github.com/uyouii/hydrograph-algorithms/model"
)

func makeSeries(stationID string, values ...float64) *model.TimeSeries {
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	res := &model.TimeSeries{
		Labels: map[string]string{"station_id": stationID},
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

func TestHandlerRun(t *testing.T) {
	params := model.RecessionParameters{
		RecessionCoefficient: 0.9,
		BaseflowIndexMax:     0.8,
	}

	gages := []GageInput{
		{
			StationID: "08158000",
			Observed:  makeSeries("08158000", 10, 12, 15, 20, 18, 14, 11, 10, 9, 8),
			Modeled:   makeSeries("08158000", 10, 11, 16, 19, 18, 15, 11, 10, 9, 8),
			Method:    model.MethodChapman,
			Params:    params,
		},
		{
			// Local cannot find turning points on a rising limb, this gage
			// fails without touching the others
			StationID: "08158922",
			Observed:  makeSeries("08158922", 1, 2, 3, 4),
			Modeled:   makeSeries("08158922", 1, 2, 3, 4),
			Method:    model.MethodLocal,
			Params:    params,
		},
		{
			StationID: "08159000",
			Observed:  makeSeries("08159000", 5, 8, 25, 12, 7, 6, 5, 5, 4, 4),
			Modeled:   makeSeries("08159000", 5, 7, 22, 13, 8, 6, 5, 5, 4, 4),
			Method:    model.MethodEckhardt,
			Params:    params,
		},
	}

	results := NewHandler(2).Run(context.Background(), gages)
	require.Len(t, results, len(gages))

	// results keep the input order
	for i := range gages {
		assert.Equal(t, gages[i].StationID, results[i].StationID)
	}

	t.Run("healthy gage", func(t *testing.T) {
		res := results[0]
		require.NoError(t, res.Err)
		require.NotNil(t, res.Hydrograph)
		require.NotNil(t, res.Baseflow)

		assert.Equal(t, model.TargetHydrograph, res.Hydrograph.Target)
		assert.False(t, math.IsNaN(res.Hydrograph.NSE))
		assert.False(t, math.IsNaN(res.Hydrograph.PBIAS))

		// baseflow record carries only the peak error
		assert.Equal(t, model.TargetBaseflow, res.Baseflow.Target)
		assert.True(t, math.IsNaN(res.Baseflow.NSE))

		require.NotNil(t, res.Observed)
		for i, v := range res.Observed.Baseflow.Values {
			q := gages[0].Observed.Values[i].Value
			assert.LessOrEqual(t, v.Value, q, "index %v", i)
			assert.Equal(t, q-v.Value, res.Observed.Runoff.Values[i].Value, "index %v", i)
		}

		require.NotNil(t, res.HydrographRatings)
		assert.NotEqual(t, model.RatingUnrated, res.HydrographRatings.Ratings[model.MetricNSE])
	})

	t.Run("failed gage is isolated", func(t *testing.T) {
		res := results[1]
		require.Error(t, res.Err)
		assert.ErrorIs(t, res.Err, common.ErrorInsufficientData)
		assert.Nil(t, res.Hydrograph)

		assert.NoError(t, results[0].Err)
		assert.NoError(t, results[2].Err)
	})
}

func TestHandlerRunEmpty(t *testing.T) {
	results := NewHandler(0).Run(context.Background(), nil)
	assert.Empty(t, results)
}
