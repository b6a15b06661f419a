package xgbtree

import (
	"context"
	"math"

	"github.com/luheng-uwml/xgboost/pkg/errors"
)

// maxInstances is the cap on instance count so ids fit in a uint32,
// matching the original's UINT_MAX precondition.
const maxInstances = math.MaxUint32

func groupOutOfRangeError(gid uint32, numRoots int) error {
	return errors.NewValidationError("group_id", "exceeds num_roots", gid)
}

// DoBoost grows one tree from per-instance gradients and Hessians over a
// sparse feature matrix, optionally partitioned into several roots by
// group_id. It returns the populated tree; Tree.MaxDepth and
// Tree.NumPruned report the observed depth and pruned-node count.
func DoBoost(ctx context.Context, params TrainingParams, obj Objective, grad, hess []float32, smat FeatureMatrix, groupID []uint32) (*Tree, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(grad) != len(hess) {
		return nil, errors.NewDimensionError("DoBoost", len(grad), len(hess), 0)
	}
	n := len(grad)
	if n >= maxInstances {
		return nil, errors.NewValidationError("n", "number of instances exceeds what a uint32 instance id can address", n)
	}
	if groupID != nil && len(groupID) != n {
		return nil, errors.NewDimensionError("DoBoost", n, len(groupID), 0)
	}
	if params.Rand == nil && params.Subsample < 1-1e-6 {
		return nil, errors.NewValidationError("rand", "required when subsample < 1", params.Subsample)
	}

	tree := NewTree(params.NumRoots, int(params.NumFeature))
	g := newGrower(tree, params, obj, grad, hess, smat)
	if err := g.initTasks(n, groupID); err != nil {
		return nil, errors.Wrap(err, "DoBoost: init_tasks")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err := g.run(); err != nil {
		return nil, err
	}
	return tree, nil
}
