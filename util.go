package demandcast

import (
	"fmt"
	"io"
	"os"

	"github.com/demandcast/demandcast/horizon"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineDemand generates an echart line chart for some label/value series
// combination. Each series must have the same length as the input labels.
func LineDemand(title string, seriesName []string, labels []string, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	lineData := make([][]opts.LineData, len(y))
	for i := 0; i < len(y); i++ {
		lineData[i] = make([]opts.LineData, 0, len(y[i]))
		for j := 0; j < len(y[i]); j++ {
			lineData[i] = append(lineData[i], opts.LineData{Value: y[i][j]})
		}
	}

	line = line.SetXAxis(labels)
	for i, series := range seriesName {
		line = line.AddSeries(series, lineData[i])
	}

	return line
}

// LineForecastDemand generates an echart line chart plotting the historical
// demand followed by the forecasted values over one continuous month axis.
func LineForecastDemand(historyLabels []string, history []float64, months []horizon.Month, res *Results) *charts.Line {
	labels := make([]string, 0, len(historyLabels)+len(months))
	labels = append(labels, historyLabels...)
	for _, m := range months {
		labels = append(labels, m.Label)
	}

	historyData := make([]opts.LineData, 0, len(labels))
	forecastData := make([]opts.LineData, 0, len(labels))
	for _, v := range history {
		historyData = append(historyData, opts.LineData{Value: v})
		forecastData = append(forecastData, opts.LineData{Value: "-"})
	}
	for _, v := range res.Forecast {
		historyData = append(historyData, opts.LineData{Value: "-"})
		forecastData = append(forecastData, opts.LineData{Value: v})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Demand Forecast",
			},
		),
	)
	line = line.SetXAxis(labels)
	line = line.AddSeries("History", historyData)
	line = line.AddSeries("Forecast", forecastData)
	return line
}

// PlotForecast renders the fit history, forecast, and residuals to an html
// file at the given path.
func (f *Forecaster) PlotForecast(path string, historyLabels []string, months []horizon.Month) error {
	if !f.trained {
		return ErrUntrainedForecaster
	}
	res, err := f.Predict(len(months))
	if err != nil {
		return fmt.Errorf("unable to predict with horizon, %w", err)
	}

	page := components.NewPage()
	page.AddCharts(
		LineForecastDemand(historyLabels, f.history, months, res),
		LineDemand(
			"Fit Residual",
			[]string{"Residual"},
			historyLabels[1:],
			[][]float64{f.Residuals()},
		),
	)
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return page.Render(io.MultiWriter(file))
}
