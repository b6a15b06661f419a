package xgbtree

import (
	"math/rand"

	"github.com/luheng-uwml/xgboost/pkg/errors"
)

// DefaultDirection selects which sweep directions the split enumerator
// runs for a feature.
type DefaultDirection int

const (
	// DirectionAuto runs both sweeps and lets loss_chg decide.
	DirectionAuto DefaultDirection = 0
	// DirectionForceLeft runs only the backward sweep; every chosen
	// split routes missing rows left.
	DirectionForceLeft DefaultDirection = 1
	// DirectionForceRight runs only the forward sweep; every chosen
	// split routes missing rows right.
	DirectionForceRight DefaultDirection = 2
)

// TrainingParams is the pure, read-only configuration consumed by the
// learner and the pruner.
type TrainingParams struct {
	MinChildWeight   float32
	MaxDepth         int
	LearningRate     float32
	Subsample        float32
	DefaultDirection DefaultDirection
	NumFeature       uint32
	NumRoots         int

	// Rand seeds the Bernoulli subsampler. Two DoBoost calls with the
	// same Rand state and the same inputs produce byte-identical trees.
	Rand *rand.Rand
}

// DefaultTrainingParams returns parameters matching the original
// implementation's defaults, for the given feature-space width.
func DefaultTrainingParams(numFeature uint32) TrainingParams {
	return TrainingParams{
		MinChildWeight:   1,
		MaxDepth:         6,
		LearningRate:     0.3,
		Subsample:        1,
		DefaultDirection: DirectionAuto,
		NumFeature:       numFeature,
		NumRoots:         1,
		Rand:             rand.New(rand.NewSource(0)),
	}
}

// Validate rejects out-of-range configuration before any tree growth
// starts.
func (p TrainingParams) Validate() error {
	if p.MaxDepth < 0 {
		return errors.NewValidationError("max_depth", "must be non-negative", p.MaxDepth)
	}
	if p.LearningRate <= 0 {
		return errors.NewValidationError("learning_rate", "must be positive", p.LearningRate)
	}
	if p.Subsample <= 0 || p.Subsample > 1 {
		return errors.NewValidationError("subsample", "must be in (0, 1]", p.Subsample)
	}
	if p.DefaultDirection < DirectionAuto || p.DefaultDirection > DirectionForceRight {
		return errors.NewValidationError("default_direction", "must be 0, 1, or 2", p.DefaultDirection)
	}
	if p.NumRoots < 1 {
		return errors.NewValidationError("num_roots", "must be at least 1", p.NumRoots)
	}
	if p.MinChildWeight < 0 {
		return errors.NewValidationError("min_child_weight", "must be non-negative", p.MinChildWeight)
	}
	return nil
}
