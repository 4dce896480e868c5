package baseflow

import (
	"fmt"

	"github.com/uyouii/hydrograph-algorithms/common"
	"github.com/uyouii/hydrograph-algorithms/model"
)

// ParseMethod maps the method selector strings used by callers to the
// Method enum.
func ParseMethod(s string) (model.Method, error) {
	switch s {
	case "Eckhardt":
		return model.MethodEckhardt, nil
	case "Chapman":
		return model.MethodChapman, nil
	case "Chapman & Maxwell":
		return model.MethodChapmanMaxwell, nil
	case "Local":
		return model.MethodLocal, nil
	case "None":
		return model.MethodNone, nil
	}
	return 0, fmt.Errorf("%w: %q", common.ErrorUnknownMethod, s)
}

// Separate splits a discharge series into baseflow and storm runoff with
// the selected method. Timestamps and labels are carried through
// unchanged; runoff[i] = q[i] - baseflow[i] at every index.
func Separate(series *model.TimeSeries, method model.Method,
	params model.RecessionParameters) (*model.SeparatedSeries, error) {
	if series.IsEmpty() {
		return nil, common.ErrorInvalidValue
	}

	q := series.Floats()

	var b []float64
	var err error
	switch method {
	case model.MethodChapman:
		b = Chapman(q, LH(q, LHBeta), params.RecessionCoefficient)
	case model.MethodChapmanMaxwell:
		b = ChapmanMaxwell(q, LH(q, LHBeta), params.RecessionCoefficient)
	case model.MethodEckhardt:
		b = Eckhardt(q, LH(q, LHBeta), params.RecessionCoefficient, params.BaseflowIndexMax)
	case model.MethodLocal:
		b, err = Local(q, LH(q, LHBeta), params.DrainageArea)
		if err != nil {
			return nil, err
		}
	case model.MethodNone:
		b = make([]float64, len(q))
	default:
		return nil, fmt.Errorf("%w: %v", common.ErrorUnknownMethod, method)
	}

	runoff := make([]float64, len(q))
	for i := range q {
		runoff[i] = q[i] - b[i]
	}

	return &model.SeparatedSeries{
		Baseflow: series.WithValues(b),
		Runoff:   series.WithValues(runoff),
	}, nil
}
