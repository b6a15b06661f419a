package xgbtree

import "github.com/luheng-uwml/xgboost/pkg/errors"

// traverse walks the tree rooted at gid using dense feat/unknown vectors,
// routing absent features to the default child, and returns the leaf
// weight reached. Callers must have already validated feat/unknown are
// at least t.numFeature long.
func (t *Tree) traverse(feat []float32, unknown []bool, gid int) float32 {
	nid := NodeID(gid)
	for {
		n := &t.nodes[nid]
		if n.leaf {
			return n.Weight
		}
		if unknown[n.Feature] {
			if n.DefaultLeft {
				nid = n.Left
			} else {
				nid = n.Right
			}
			continue
		}
		if feat[n.Feature] < n.Threshold {
			nid = n.Left
		} else {
			nid = n.Right
		}
	}
}

// PredictDense traverses the tree for a dense feature vector with a
// parallel "unknown" bitmap, starting from root gid. Returns a
// precondition error, rather than indexing out of range, if either
// vector is shorter than the tree's feature space.
func (t *Tree) PredictDense(feat []float32, unknown []bool, gid int) (float32, error) {
	if len(feat) < t.numFeature || len(unknown) < t.numFeature {
		return 0, errors.NewModelError("PredictDense", "precondition violated",
			errors.NewValidationError("feat", "shorter than num_feature", len(feat)))
	}
	return t.traverse(feat, unknown, gid), nil
}

// Predict traverses the tree for a sparse row, starting from root gid.
// It allocates a one-off scratch vector; callers predicting many rows
// against the same tree should use Predictor instead.
func (t *Tree) Predict(row Row, gid int) (float32, error) {
	p := NewPredictor(t)
	return p.PredictSparse(row, gid)
}

// Predictor reuses a dense scratch vector across many sparse-row
// predictions against the same tree, avoiding a per-call allocation.
type Predictor struct {
	tree    *Tree
	feat    []float32
	unknown []bool
}

// NewPredictor allocates scratch buffers sized to the tree's feature
// space. Every feature starts "unknown"; PredictSparse restores that
// state after each call.
func NewPredictor(tree *Tree) *Predictor {
	unknown := make([]bool, tree.numFeature)
	for i := range unknown {
		unknown[i] = true
	}
	return &Predictor{
		tree:    tree,
		feat:    make([]float32, tree.numFeature),
		unknown: unknown,
	}
}

// PredictDense traverses the tree for a caller-supplied dense vector.
func (p *Predictor) PredictDense(feat []float32, unknown []bool, gid int) (float32, error) {
	return p.tree.PredictDense(feat, unknown, gid)
}

// PredictSparse populates the scratch vector from row, traverses the
// tree, then restores "unknown" for every feature touched by row so the
// scratch buffer is ready for the next call. A feature index beyond the
// tree's feature space is a precondition error, not a scratch-buffer
// overrun.
func (p *Predictor) PredictSparse(row Row, gid int) (float32, error) {
	for k := 0; k < row.Len(); k++ {
		if int(row.Feature(k)) >= len(p.feat) {
			return 0, errors.NewModelError("PredictSparse", "precondition violated",
				errors.NewValidationError("feature", "exceeds num_feature", row.Feature(k)))
		}
	}
	for k := 0; k < row.Len(); k++ {
		f := row.Feature(k)
		p.unknown[f] = false
		p.feat[f] = row.Value(k)
	}
	weight := p.tree.traverse(p.feat, p.unknown, gid)
	for k := 0; k < row.Len(); k++ {
		p.unknown[row.Feature(k)] = true
	}
	return weight, nil
}
