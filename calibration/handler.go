package calibration

import (
	"context"
	"fmt"

	"github.com/uyouii/hydrograph-algorithms/baseflow"
	"github.com/uyouii/hydrograph-algorithms/metrics"
	"github.com/uyouii/hydrograph-algorithms/model"
	"github.com/uyouii/hydrograph-algorithms/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 4

// GageInput is everything one gage/plan pair needs: the aligned observed
// and modeled series plus the externally estimated recession parameters.
type GageInput struct {
	StationID string
	Observed  *model.TimeSeries
	Modeled   *model.TimeSeries
	Method    model.Method
	Params    model.RecessionParameters
}

// GageResult carries the separated series, the metric records for both
// targets and their ratings. Err is set when this gage failed, the rest of
// the batch is unaffected.
type GageResult struct {
	StationID string

	Observed *model.SeparatedSeries
	Modeled  *model.SeparatedSeries

	Hydrograph *model.MetricsRecord
	Baseflow   *model.MetricsRecord

	HydrographRatings *metrics.RatedRecord
	BaseflowRatings   *metrics.RatedRecord

	Err error
}

// each gage only reads its own inputs and fills its own result slot,
// so the gages of one batch can run concurrently with no coordination

type Handler struct {
	concurrency int
}

func NewHandler(concurrency int) *Handler {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Handler{concurrency: concurrency}
}

// Run separates and scores every gage of the batch. Results keep the input
// order. A failing gage is logged and reported in its own result, it never
// aborts the others.
func (h *Handler) Run(ctx context.Context, gages []GageInput) []GageResult {
	logger := utils.GetLogger(ctx)

	results := make([]GageResult, len(gages))

	var group errgroup.Group
	group.SetLimit(h.concurrency)
	for i := range gages {
		i := i
		group.Go(func() error {
			results[i] = h.runGage(ctx, gages[i])
			return nil
		})
	}
	group.Wait()

	failed := 0
	for i := range results {
		if results[i].Err != nil {
			failed++
		}
	}
	logger.Info(fmt.Sprintf("processed %v gages, %v failed", len(gages), failed))

	return results
}

func (h *Handler) runGage(ctx context.Context, gage GageInput) (res GageResult) {
	logger := utils.GetLogger(ctx)

	res.StationID = gage.StationID

	defer func() {
		if err := recover(); err != nil {
			logger.Error("runGage recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()), zap.String("stationId", gage.StationID))
			res.Err = fmt.Errorf("gage %v: panic: %v", gage.StationID, err)
		}
	}()

	obsSep, err := baseflow.Separate(gage.Observed, gage.Method, gage.Params)
	if err != nil {
		logger.Error("separate observed hydrograph failed", zap.Error(err),
			zap.String("stationId", gage.StationID), zap.String("method", gage.Method.String()))
		res.Err = err
		return res
	}
	modSep, err := baseflow.Separate(gage.Modeled, gage.Method, gage.Params)
	if err != nil {
		logger.Error("separate modeled hydrograph failed", zap.Error(err),
			zap.String("stationId", gage.StationID), zap.String("method", gage.Method.String()))
		res.Err = err
		return res
	}
	res.Observed, res.Modeled = obsSep, modSep

	hydro, err := metrics.ComputeMetrics(gage.Observed, gage.Modeled,
		gage.StationID, model.TargetHydrograph)
	if err != nil {
		logger.Error("compute hydrograph metrics failed", zap.Error(err),
			zap.String("stationId", gage.StationID))
		res.Err = err
		return res
	}
	base, err := metrics.ComputeMetrics(obsSep.Baseflow, modSep.Baseflow,
		gage.StationID, model.TargetBaseflow)
	if err != nil {
		logger.Error("compute baseflow metrics failed", zap.Error(err),
			zap.String("stationId", gage.StationID))
		res.Err = err
		return res
	}

	res.Hydrograph, res.Baseflow = hydro, base
	res.HydrographRatings = metrics.EvaluateRecord(hydro)
	res.BaseflowRatings = metrics.EvaluateRecord(base)

	logger.Info("gage calibration scored", zap.String("stationId", gage.StationID),
		zap.Float64("nse", utils.FormatFloat(hydro.NSE, 3)),
		zap.Float64("pbias", utils.FormatFloat(hydro.PBIAS, 3)))

	return res
}
