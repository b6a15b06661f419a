package ensemble

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/luheng-uwml/xgboost/pkg/errors"
)

// PlotTrainingCurve renders round-by-round RMSE as a line chart and
// saves it as a PNG at path.
func PlotTrainingCurve(metrics []RoundMetric, path string) error {
	if len(metrics) == 0 {
		return errors.NewValidationError("metrics", "must not be empty", len(metrics))
	}

	p := plot.New()
	p.Title.Text = "Training RMSE"
	p.X.Label.Text = "round"
	p.Y.Label.Text = "RMSE"

	pts := make(plotter.XYs, len(metrics))
	for i, m := range metrics {
		pts[i].X = float64(m.Round)
		pts[i].Y = m.RMSE
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, "PlotTrainingCurve: new line")
	}
	p.Add(line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "PlotTrainingCurve: save")
	}
	return nil
}
