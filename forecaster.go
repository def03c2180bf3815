// Package demandcast forecasts future retail article demand from up to a
// year of monthly history using double exponential smoothing.
package demandcast

import (
	"errors"
	"fmt"

	"github.com/demandcast/demandcast/demandseries"
	"github.com/demandcast/demandcast/holt"
)

var (
	ErrNegativeHorizon     = errors.New("forecast horizon must be non-negative")
	ErrHorizonTooLarge     = errors.New("forecast horizon exceeds maximum")
	ErrUntrainedForecaster = errors.New("forecaster has not been fit with historical demand")
	ErrNoStateInModel      = errors.New("no terminal state set in model")
)

// Forecaster fits the smoother over a demand history and generates forecasts
// from the resulting terminal state. State is scoped to one Fit and cleared
// by Reset, never shared across instances.
type Forecaster struct {
	opt *Options

	history demandseries.Series
	state   holt.State
	fitted  []float64
	scores  *Scores
	trained bool
}

// New creates a new Forecaster with the provided options. If no options are
// provided a default is used.
func New(opt *Options) *Forecaster {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	return &Forecaster{opt: opt}
}

// NewFromModel creates a Forecaster from a previously serialized model. The
// instance can predict immediately without refitting.
func NewFromModel(model Model) (*Forecaster, error) {
	if model.Options == nil {
		return nil, ErrNoOptionsInModel
	}
	if model.State == nil {
		return nil, ErrNoStateInModel
	}
	return &Forecaster{
		opt:     model.Options,
		state:   *model.State,
		scores:  model.Scores,
		trained: true,
	}, nil
}

// Fit runs the smoothing recursion over the demand history, storing the
// terminal state, the in-sample one-step-ahead fits, and the fit scores.
func (f *Forecaster) Fit(history demandseries.Series) error {
	state, err := holt.Fit(history, f.opt.SmoothingParams)
	if err != nil {
		return fmt.Errorf("unable to fit demand history, %w", err)
	}

	fitted, err := holt.Fitted(history, f.opt.SmoothingParams)
	if err != nil {
		return fmt.Errorf("unable to compute fitted values, %w", err)
	}

	scores, err := NewScores(fitted, history[1:])
	if err != nil {
		return fmt.Errorf("unable to score fit, %w", err)
	}

	f.history = history.Copy()
	f.state = state
	f.fitted = fitted
	f.scores = scores
	f.trained = true
	return nil
}

// Predict extrapolates periods values past the last historical observation.
// A zero horizon yields an empty forecast. The horizon must be non-negative
// and at most MaxHorizon.
func (f *Forecaster) Predict(periods int) (*Results, error) {
	if !f.trained {
		return nil, ErrUntrainedForecaster
	}
	if periods < 0 {
		return nil, fmt.Errorf("got %d, %w", periods, ErrNegativeHorizon)
	}
	if periods > MaxHorizon {
		return nil, fmt.Errorf("got %d, max %d, %w", periods, MaxHorizon, ErrHorizonTooLarge)
	}

	return &Results{
		Forecast: f.state.Extrapolate(f.opt.SmoothingParams, periods),
		State:    f.state,
	}, nil
}

// Forecast fits the history and predicts the options horizon in one call.
func (f *Forecaster) Forecast(history demandseries.Series) (*Results, error) {
	if err := f.Fit(history); err != nil {
		return nil, err
	}
	return f.Predict(f.opt.Horizon)
}

// Reset clears all fit state, returning the forecaster to its just-created
// condition while keeping its options.
func (f *Forecaster) Reset() {
	f.history = nil
	f.state = holt.State{}
	f.fitted = nil
	f.scores = nil
	f.trained = false
}

// TerminalState returns the smoothed level and trend as of the last
// historical observation.
func (f *Forecaster) TerminalState() (holt.State, error) {
	if !f.trained {
		return holt.State{}, ErrUntrainedForecaster
	}
	return f.state, nil
}

// History returns a copy of the demand history used by the last fit.
func (f *Forecaster) History() demandseries.Series {
	return f.history.Copy()
}

// Fitted returns the in-sample one-step-ahead predictions aligned with the
// second through last historical observations.
func (f *Forecaster) Fitted() []float64 {
	fitted := make([]float64, len(f.fitted))
	copy(fitted, f.fitted)
	return fitted
}

// Residuals returns the difference between each historical observation and
// its one-step-ahead fit.
func (f *Forecaster) Residuals() []float64 {
	res := make([]float64, len(f.fitted))
	for i := range f.fitted {
		res[i] = f.history[i+1] - f.fitted[i]
	}
	return res
}

// Scores returns the fit scores evaluating how well the smoother tracked the
// demand history.
func (f *Forecaster) Scores() Scores {
	if f.scores == nil {
		return Scores{}
	}
	return *f.scores
}

// Model returns the serializable snapshot of the fit, usable to initialize a
// new Forecaster for immediate predictions skipping the fitting step.
func (f *Forecaster) Model() (Model, error) {
	if !f.trained {
		return Model{}, ErrUntrainedForecaster
	}
	state := f.state
	return Model{
		Options: f.opt,
		State:   &state,
		Scores:  f.scores,
	}, nil
}
