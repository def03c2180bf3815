package demandcast

import "github.com/demandcast/demandcast/holt"

// Results holds one forecast invocation's output: the forecasted values in
// chronological order starting the period after the last observation, and
// the terminal state they were projected from.
type Results struct {
	Forecast []float64  `json:"forecast"`
	State    holt.State `json:"terminal_state"`
}
