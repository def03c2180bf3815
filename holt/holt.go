// Package holt implements double exponential smoothing (Holt's linear method)
// over a univariate demand history with forward extrapolation.
package holt

import "errors"

// ErrInsufficientHistory indicates the input history is too short to seed the
// smoother. Two consecutive observations are the minimum needed to compute an
// initial trend.
var ErrInsufficientHistory = errors.New("insufficient history, need at least two observations")

const (
	DefaultAlpha = 0.2
	DefaultBeta  = 0.1
)

// Params holds the level and trend smoothing coefficients. Both are
// conventionally in (0, 1) but are not validated here.
type Params struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
}

// NewDefaultParams returns the default smoothing coefficients.
func NewDefaultParams() Params {
	return Params{
		Alpha: DefaultAlpha,
		Beta:  DefaultBeta,
	}
}

// State is the smoother state pair. After a fit it represents the smoothed
// level and per-period trend as of the last historical observation.
type State struct {
	Level float64 `json:"level"`
	Trend float64 `json:"trend"`
}

func (s *State) update(obs float64, p Params) {
	levelPrev := s.Level
	s.Level = p.Alpha*obs + (1-p.Alpha)*(s.Level+s.Trend)
	s.Trend = p.Beta*(s.Level-levelPrev) + (1-p.Beta)*s.Trend
}

// Fit seeds the smoother from the first two observations and runs the
// smoothing recursion over the remaining history in chronological order,
// returning the terminal state. State is re-seeded from scratch on every
// call, nothing persists across invocations.
func Fit(data []float64, p Params) (State, error) {
	if len(data) < 2 {
		return State{}, ErrInsufficientHistory
	}

	s := State{
		Level: data[0],
		Trend: data[1] - data[0],
	}
	for i := 1; i < len(data); i++ {
		s.update(data[i], p)
	}
	return s, nil
}

// Extrapolate emits periods forecasts from the state. Each emitted forecast
// is fed back through the smoothing recursion as if it were an observation.
// Since the forecast is exactly level+trend, the feedback leaves the trend
// unchanged and the result is a linear projection off the terminal state.
// The literal recursion is kept rather than the closed form so rounding
// matches the recursive definition exactly.
func (s State) Extrapolate(p Params, periods int) []float64 {
	forecasts := make([]float64, 0, periods)
	for i := 0; i < periods; i++ {
		next := s.Level + s.Trend
		forecasts = append(forecasts, next)
		s.update(next, p)
	}
	return forecasts
}

// Forecast fits the history and extrapolates periods values past the last
// observation. Pure given its inputs and safe for concurrent use.
func Forecast(data []float64, p Params, periods int) ([]float64, error) {
	s, err := Fit(data, p)
	if err != nil {
		return nil, err
	}
	return s.Extrapolate(p, periods), nil
}

// Fitted returns the in-sample one-step-ahead predictions for data[1:],
// i.e. the value the smoother would have forecast for each observation just
// before seeing it. The result has length len(data)-1.
func Fitted(data []float64, p Params) ([]float64, error) {
	if len(data) < 2 {
		return nil, ErrInsufficientHistory
	}

	s := State{
		Level: data[0],
		Trend: data[1] - data[0],
	}
	fitted := make([]float64, 0, len(data)-1)
	for i := 1; i < len(data); i++ {
		fitted = append(fitted, s.Level+s.Trend)
		s.update(data[i], p)
	}
	return fitted, nil
}
