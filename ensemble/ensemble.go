package ensemble

import (
	"context"
	"math"

	"github.com/luheng-uwml/xgboost/pkg/errors"
	"github.com/luheng-uwml/xgboost/pkg/log"
	"github.com/luheng-uwml/xgboost/xgbtree"
)

// BoosterParams configures one Ensemble.Fit call: per-tree growth
// parameters, the squared-error objective's regularization, the round
// budget, and the starting prediction every instance is offset by.
type BoosterParams struct {
	Tree      xgbtree.TrainingParams
	RegAlpha  float32
	RegLambda float32
	Gamma     float32
	NumRounds int
	BaseScore float32

	// GradClipNorm, if positive, caps the L2 norm of each round's
	// gradient vector before it reaches do_boost. Zero disables clipping.
	GradClipNorm float32
}

// RoundMetric records one round's realized training RMSE, returned from
// Fit so callers can plot or log the training curve themselves.
type RoundMetric struct {
	Round int
	RMSE  float64
}

// Ensemble accumulates trees grown by repeated calls to xgbtree.DoBoost
// against the residual of the trees grown so far.
type Ensemble struct {
	trees     []*xgbtree.Tree
	baseScore float32
}

// NewEnsemble returns an empty ensemble; Fit populates it.
func NewEnsemble() *Ensemble {
	return &Ensemble{}
}

// Fit runs BoosterParams.NumRounds rounds of gradient boosting against
// smat/labels, growing one tree per round via xgbtree.DoBoost. It checks
// ctx between rounds, not inside a single tree's growth. A NaN or Inf
// gradient aborts the fit with a *errors.NumericalInstabilityError.
func (e *Ensemble) Fit(ctx context.Context, smat xgbtree.FeatureMatrix, labels []float32, params BoosterParams) ([]RoundMetric, error) {
	n := smat.NumRows()
	if len(labels) != n {
		return nil, errors.NewDimensionError("Ensemble.Fit", n, len(labels), 0)
	}
	if params.NumRounds <= 0 {
		return nil, errors.NewValidationError("num_rounds", "must be positive", params.NumRounds)
	}

	logger := log.GetLoggerWithName("ensemble")
	obj := xgbtree.NewSquaredErrorObjective(params.RegAlpha, params.RegLambda, params.Gamma)

	logger.Info("fit started",
		log.SamplesKey, n,
		log.FeaturesKey, params.Tree.NumFeature,
		log.LearningRateKey, params.Tree.LearningRate,
		log.RegularizationKey, params.RegLambda,
		log.GradClipNormKey, params.GradClipNorm,
	)

	pred := make([]float64, n)
	for i := range pred {
		pred[i] = float64(params.BaseScore)
	}
	grad := make([]float32, n)
	hess := make([]float32, n)
	gradCheck := make([]float64, n)

	metrics := make([]RoundMetric, 0, params.NumRounds)
	trees := make([]*xgbtree.Tree, 0, params.NumRounds)

	for round := 0; round < params.NumRounds; round++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for i := 0; i < n; i++ {
			g := obj.Grad(pred[i], float64(labels[i]))
			h := obj.Hess(pred[i], float64(labels[i]))
			hess[i] = float32(h)
			gradCheck[i] = g
		}
		if params.GradClipNorm > 0 {
			copy(gradCheck, errors.ClipGradient(gradCheck, float64(params.GradClipNorm)))
		}
		for i, g := range gradCheck {
			grad[i] = float32(g)
		}
		if err := errors.CheckNumericalStability("ensemble.Fit.grad", gradCheck, round); err != nil {
			logger.Error("gradient became numerically unstable", log.ErrAttr(err), log.IterationKey, round)
			return nil, err
		}

		tree, err := xgbtree.DoBoost(ctx, params.Tree, obj, grad, hess, smat, nil)
		if err != nil {
			wrapped := errors.Wrap(err, "Ensemble.Fit: DoBoost")
			logger.Error("boosting round failed", log.ErrAttr(wrapped), log.IterationKey, round)
			return nil, wrapped
		}
		trees = append(trees, tree)

		sqErr := 0.0
		for i := 0; i < n; i++ {
			w, err := tree.Predict(smat.Row(uint32(i)), 0)
			if err != nil {
				wrapped := errors.Wrap(err, "Ensemble.Fit: predict")
				logger.Error("predicting against the just-grown tree failed", log.ErrAttr(wrapped), log.IterationKey, round)
				return nil, wrapped
			}
			pred[i] += float64(w)
			d := pred[i] - float64(labels[i])
			sqErr += d * d
		}
		rmse := math.Sqrt(sqErr / float64(n))
		if err := errors.CheckScalar("ensemble.Fit.rmse", rmse, round); err != nil {
			logger.Error("round RMSE became numerically unstable", log.ErrAttr(err), log.IterationKey, round)
			return nil, err
		}
		metrics = append(metrics, RoundMetric{Round: round, RMSE: rmse})

		logger.Info("boosting round complete",
			log.IterationKey, round,
			log.SamplesKey, n,
			log.LossKey, rmse,
			log.TreeDepthKey, tree.MaxDepth(),
			log.PrunedKey, tree.NumPruned(),
		)
	}

	e.trees = trees
	e.baseScore = params.BaseScore
	return metrics, nil
}

// Predict sums learning-rate-scaled leaf weights across every tree,
// offset by BaseScore. Each tree's leaf weight already carries its own
// round's learning rate, folded in by xgbtree.DoBoost.
func (e *Ensemble) Predict(row xgbtree.Row) (float32, error) {
	sum := e.baseScore
	for _, t := range e.trees {
		w, err := t.Predict(row, 0)
		if err != nil {
			return 0, errors.Wrap(err, "Ensemble.Predict")
		}
		sum += w
	}
	return sum, nil
}

// NumTrees reports how many boosting rounds this ensemble completed.
func (e *Ensemble) NumTrees() int {
	return len(e.trees)
}

// Tree returns the i-th tree grown, for inspection or rendering.
func (e *Ensemble) Tree(i int) *xgbtree.Tree {
	return e.trees[i]
}
