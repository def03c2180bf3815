// Command demandcast forecasts future monthly demand for a retail article
// from up to a year of history, sourced from a demand workbook or manual
// per-month entry.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/demandcast/demandcast"
	"github.com/demandcast/demandcast/catalog"
	"github.com/demandcast/demandcast/demandseries"
	"github.com/demandcast/demandcast/holt"
	"github.com/demandcast/demandcast/horizon"
	"github.com/demandcast/demandcast/normalize"
	"github.com/pkg/profile"
)

func main() {
	articlesPath := flag.String("articles", "", "path to the articles referential workbook (XLSX)")
	ean := flag.String("ean", "", "EAN code of the article to forecast")
	historyPath := flag.String("history", "", "path to the demand history workbook (XLSX), preferred over -manual")
	monthCol := flag.String("month-column", "", "month column header in the history workbook")
	valueCol := flag.String("value-column", "", "value column header in the history workbook")
	manual := flag.String("manual", "", "twelve manual demand values separated by ';' (comma as decimal separator)")
	alpha := flag.Float64("alpha", holt.DefaultAlpha, "level smoothing coefficient")
	beta := flag.Float64("beta", holt.DefaultBeta, "trend smoothing coefficient")
	periods := flag.Int("periods", 6, "number of months to forecast")
	csvOut := flag.String("out", "", "write the forecast as semicolon-delimited text to this path")
	xlsxOut := flag.String("xlsx", "", "write the forecast workbook to this path")
	plotOut := flag.String("plot", "", "write the forecast chart html to this path")
	modelOut := flag.String("model", "", "write the fit model json to this path")
	profileCPU := flag.Bool("profile", false, "write a cpu profile to the working directory")

	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if *profileCPU {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if err := run(params{
		articlesPath: *articlesPath,
		ean:          *ean,
		historyPath:  *historyPath,
		monthCol:     *monthCol,
		valueCol:     *valueCol,
		manual:       *manual,
		alpha:        *alpha,
		beta:         *beta,
		periods:      *periods,
		csvOut:       *csvOut,
		xlsxOut:      *xlsxOut,
		plotOut:      *plotOut,
		modelOut:     *modelOut,
	}); err != nil {
		slog.Error("forecast failed", slog.Any("error", err))
		os.Exit(1)
	}
}

type params struct {
	articlesPath string
	ean          string
	historyPath  string
	monthCol     string
	valueCol     string
	manual       string
	alpha        float64
	beta         float64
	periods      int
	csvOut       string
	xlsxOut      string
	plotOut      string
	modelOut     string
}

func run(p params) error {
	if p.periods < 0 {
		return fmt.Errorf("periods must be non-negative, got %d", p.periods)
	}

	if p.articlesPath != "" {
		c, err := catalog.Load(p.articlesPath)
		if err != nil {
			return err
		}
		slog.Info("loaded articles referential",
			slog.String("path", p.articlesPath),
			slog.Int("articles", c.Len()))

		if p.ean != "" {
			article, err := c.Get(p.ean)
			if err != nil {
				return err
			}
			slog.Info("forecasting article",
				slog.String("ean", article.EAN),
				slog.String("name", article.Name),
				slog.String("supplier", article.Supplier))
		}
	}

	history, err := loadHistory(p)
	if err != nil {
		return err
	}
	if history.AllZero() {
		return fmt.Errorf("historical demand is all zero, enter at least one non-zero month")
	}

	opt := demandcast.NewDefaultOptions()
	opt.SmoothingParams = holt.Params{Alpha: p.alpha, Beta: p.beta}
	opt.Horizon = p.periods

	f := demandcast.New(opt)
	res, err := f.Forecast(history)
	if err != nil {
		return err
	}

	scores := f.Scores()
	slog.Info("fit complete",
		slog.Float64("level", res.State.Level),
		slog.Float64("trend", res.State.Trend),
		slog.Float64("mse", scores.MSE),
		slog.Float64("mape", scores.MAPE))

	months := horizon.Months(time.Now(), p.periods)
	if err := printForecast(os.Stdout, history, months, res); err != nil {
		return err
	}

	if p.csvOut != "" {
		file, err := os.Create(p.csvOut)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := demandcast.WriteCSV(file, months, res.Forecast); err != nil {
			return err
		}
		slog.Info("wrote forecast csv", slog.String("path", p.csvOut))
	}

	if p.xlsxOut != "" {
		if err := demandcast.WriteWorkbook(p.xlsxOut, months, res.Forecast); err != nil {
			return err
		}
		slog.Info("wrote forecast workbook", slog.String("path", p.xlsxOut))
	}

	if p.plotOut != "" {
		labels := demandseries.MonthLabels(time.January, demandseries.MonthsPerYear)
		if err := f.PlotForecast(p.plotOut, labels, months); err != nil {
			return err
		}
		slog.Info("wrote forecast chart", slog.String("path", p.plotOut))
	}

	if p.modelOut != "" {
		model, err := f.Model()
		if err != nil {
			return err
		}
		file, err := os.Create(p.modelOut)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := model.WriteJSON(file); err != nil {
			return err
		}
		slog.Info("wrote fit model", slog.String("path", p.modelOut))
	}

	return nil
}

// loadHistory prefers the workbook path, falling back to manual entry when
// the workbook carries too few records.
func loadHistory(p params) (demandseries.Series, error) {
	if p.historyPath != "" {
		opt := normalize.NewDefaultWorkbookOptions()
		if p.monthCol != "" {
			opt.MonthColumn = p.monthCol
		}
		if p.valueCol != "" {
			opt.ValueColumn = p.valueCol
		}

		history, err := normalize.FromWorkbook(p.historyPath, opt)
		switch {
		case err == nil:
			slog.Info("loaded demand history from workbook", slog.String("path", p.historyPath))
			return history, nil
		case p.manual == "":
			return nil, err
		default:
			slog.Warn("workbook unusable, falling back to manual entry", slog.Any("error", err))
		}
	}

	if p.manual == "" {
		return nil, fmt.Errorf("no demand history provided, use -history or -manual")
	}

	fields := strings.Split(p.manual, ";")
	var slots [demandseries.MonthsPerYear]string
	for i := 0; i < len(slots) && i < len(fields); i++ {
		slots[i] = fields[i]
	}
	return normalize.FromManual(slots), nil
}

func printForecast(w *os.File, history demandseries.Series, months []horizon.Month, res *demandcast.Results) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Historical demand:\t%.1f\n", []float64(history))
	fmt.Fprintln(tw, "Mois\tPrévision\tJours ouvrés\tJours fériés")
	for i, m := range months {
		fmt.Fprintf(tw, "%s\t%.2f\t%d\t%d\n", m.Label, res.Forecast[i], m.Workdays, m.Holidays)
	}
	return tw.Flush()
}
