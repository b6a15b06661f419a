// Package log defines the structured attribute keys used across gbtree's
// round-logging and error-logging call sites. Keeping them here instead of
// as inline string literals in ensemble.go and cmd/gbtree avoids key
// drift between the producer and anything parsing the resulting JSON.

package log

// Round and training context. Each log line emitted by Ensemble.Fit or
// cmd/gbtree carries the subset of these keys that applies to it.
const (
	ComponentKey      = "component"
	IterationKey      = "round"
	SamplesKey        = "samples"
	FeaturesKey       = "features"
	LossKey           = "rmse"
	LearningRateKey   = "learning_rate"
	RegularizationKey = "reg_lambda"
	RandomSeedKey     = "seed"
	GradClipNormKey   = "grad_clip_norm"
)

// Tree-shape context, reported once a tree finishes growing.
const (
	TreeDepthKey = "tree_depth"
	PrunedKey    = "pruned_nodes"
)

// Error context. The values mirror the concrete error types defined in
// pkg/errors, so a log line's error.code can be matched directly against
// one of them.
const (
	ErrorCodeKey = "error.code"

	ErrorDimensionMismatch    = "DIMENSION_MISMATCH"
	ErrorValidationFailed     = "VALIDATION_FAILED"
	ErrorNumericalInstability = "NUMERICAL_INSTABILITY"
	ErrorModelError           = "MODEL_ERROR"
)
