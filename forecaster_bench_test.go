package demandcast

import (
	"os"
	"testing"

	"github.com/demandcast/demandcast/demandseries"
	"github.com/goccy/go-json"
	"github.com/pkg/profile"
)

var benchPredictRes *Results

func BenchmarkFitToModel(b *testing.B) {
	history := demandseries.GenerateNoisyLinearY(demandseries.MonthsPerYear, 100, 5, 8)

	var f *Forecaster

	b.ResetTimer()
	for b.Loop() {
		f = New(nil)
		if err := f.Fit(history); err != nil {
			panic(err)
		}
	}

	m, err := f.Model()
	if err != nil {
		panic(err)
	}

	bytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		panic(err)
	}

	if err := os.WriteFile("benchmark_model.json", bytes, 0o644); err != nil {
		panic(err)
	}
}

func BenchmarkPredictFromModel(b *testing.B) {
	bytes, err := os.ReadFile("benchmark_model.json")
	if err != nil {
		panic(err)
	}

	var model Model
	if err := json.Unmarshal(bytes, &model); err != nil {
		panic(err)
	}
	f, err := NewFromModel(model)
	if err != nil {
		panic(err)
	}

	b.ResetTimer()
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	for b.Loop() {
		benchPredictRes, err = f.Predict(MaxHorizon)
		if err != nil {
			panic(err)
		}
	}
}
