package xgbtree

import (
	"sort"

	"github.com/luheng-uwml/xgboost/pkg/errors"
)

// grower owns everything one do_boost call needs: the tree being grown,
// the shared gradient/Hessian/matrix inputs, the reusable column builder,
// the shared instance-id buffer, and the task stack. No state survives
// past a single DoBoost call.
type grower struct {
	tree   *Tree
	params TrainingParams
	obj    Objective
	grad   []float32
	hess   []float32
	smat   FeatureMatrix

	colBuilder *columnBuilder
	idbuf      []uint32
	stack      taskStack
}

func newGrower(tree *Tree, params TrainingParams, obj Objective, grad, hess []float32, smat FeatureMatrix) *grower {
	return &grower{
		tree:       tree,
		params:     params,
		obj:        obj,
		grad:       grad,
		hess:       hess,
		smat:       smat,
		colBuilder: newColumnBuilder(int(params.NumFeature)),
	}
}

// run pops tasks until the stack is empty, expanding each in turn.
func (g *grower) run() error {
	for {
		t, ok := g.stack.pop()
		if !ok {
			return nil
		}
		if err := g.expand(t); err != nil {
			return err
		}
	}
}

// expand implements the node expander (spec component 6): depth check,
// budget pass, a priori refusal, storage+enumeration pass, then either a
// split (with partition and child tasks) or a leaf (with pruning).
func (g *grower) expand(t task) error {
	depth := g.tree.Depth(t.nid)
	if depth > g.tree.maxDepthSeen {
		g.tree.maxDepthSeen = depth
	}
	if depth >= g.params.MaxDepth {
		g.makeLeaf(t, 0, 0, true)
		return nil
	}

	idslice := g.idbuf[t.start : t.start+t.length]
	rsumGrad, rsumHess := 0.0, 0.0
	for _, ridx := range idslice {
		rsumGrad += float64(g.grad[ridx])
		rsumHess += float64(g.hess[ridx])
		row := g.smat.Row(ridx)
		for k := 0; k < row.Len(); k++ {
			f := row.Feature(k)
			if f >= g.params.NumFeature {
				g.colBuilder.Cleanup()
				return errors.NewModelError("DoBoost", "precondition violated",
					errors.NewValidationError("feature", "exceeds num_feature", f))
			}
			g.colBuilder.AddBudget(f)
		}
	}

	if g.obj.CannotSplit(rsumHess, float64(g.params.MinChildWeight), depth) {
		g.makeLeaf(t, rsumGrad, rsumHess, false)
		g.colBuilder.Cleanup()
		return nil
	}

	g.colBuilder.InitStorage()
	for _, ridx := range idslice {
		row := g.smat.Row(ridx)
		for k := 0; k < row.Len(); k++ {
			g.colBuilder.PushElem(row.Feature(k), scEntry{fvalue: row.Value(k), rindex: ridx})
		}
	}

	rootCost := g.obj.CalcRootCost(rsumGrad, rsumHess)
	baseWeight := g.obj.CalcWeight(rsumGrad, rsumHess, t.parentBaseWeight)

	var global selector
	for _, f := range g.colBuilder.touched {
		start, end := g.colBuilder.Range(f)
		entries := g.colBuilder.entry[start:end]
		sort.Slice(entries, func(i, j int) bool { return entries[i].fvalue < entries[j].fvalue })
		g.enumerateFeature(entries, start, rsumGrad, rsumHess, rootCost, f, baseWeight, &global)
	}
	g.colBuilder.Cleanup()

	if global.best.lossChg > Epsilon {
		g.makeSplit(t, global.best, baseWeight)
	} else {
		g.makeLeaf(t, rsumGrad, rsumHess, false)
	}
	return nil
}

// makeLeaf finalizes nid as a leaf. If compute is true, the instance
// sums are recomputed over the slice; otherwise sumGrad/sumHess are used
// as already known. The pruning cascade is then consulted.
func (g *grower) makeLeaf(t task, sumGrad, sumHess float64, compute bool) {
	if compute {
		for _, ridx := range g.idbuf[t.start : t.start+t.length] {
			sumGrad += float64(g.grad[ridx])
			sumHess += float64(g.hess[ridx])
		}
	}
	weight := g.params.LearningRate * g.obj.CalcWeight(sumGrad, sumHess, t.parentBaseWeight)
	g.tree.ChangeToLeaf(t.nid, weight)
	g.tryPruneLeaf(t.nid, g.tree.Depth(t.nid))
}
