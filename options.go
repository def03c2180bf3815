package demandcast

import "github.com/demandcast/demandcast/holt"

// DefaultHorizon is the number of future periods forecast when no horizon is
// requested.
const DefaultHorizon = 1

// MaxHorizon bounds the forecast horizon accepted by Predict.
const MaxHorizon = 120

// Options configures a demand forecaster with its smoothing coefficients and
// default forecast horizon.
type Options struct {
	SmoothingParams holt.Params `json:"smoothing_params"`
	Horizon         int         `json:"horizon"`
}

// NewDefaultOptions returns the default forecaster options.
func NewDefaultOptions() *Options {
	return &Options{
		SmoothingParams: holt.NewDefaultParams(),
		Horizon:         DefaultHorizon,
	}
}
