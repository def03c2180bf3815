package demandcast

import (
	"errors"
	"fmt"
	"io"

	"github.com/demandcast/demandcast/holt"
	"github.com/goccy/go-json"
)

var ErrNoOptionsInModel = errors.New("no options set in model")

// Model is the serializable representation of a fit forecaster storing its
// options, terminal state, and fit scores.
type Model struct {
	Options *Options    `json:"options"`
	State   *holt.State `json:"terminal_state"`
	Scores  *Scores     `json:"scores"`
}

// WriteJSON encodes the model as indented JSON.
func (m Model) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// ReadModelJSON decodes a model previously written with WriteJSON.
func ReadModelJSON(r io.Reader) (Model, error) {
	var m Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return Model{}, fmt.Errorf("unable to decode model, %w", err)
	}
	return m, nil
}
