package xgbtree

// enumerateFeature sweeps one feature's sorted entries forward and
// backward, proposing at most one candidate per direction, and pushes
// the better of the two local candidates into the global selector.
//
// entries is a view of the column builder's entry array restricted to
// this feature's run; absStart is that view's offset within the entry
// array, so the pushed candidates' (start, length) address the array
// directly for the later partition step.
func (g *grower) enumerateFeature(entries []scEntry, absStart int, rsumGrad, rsumHess, rootCost float64, feature uint32, baseWeight float32, global *selector) {
	var local selector
	minChildWeight := float64(g.params.MinChildWeight)
	n := len(entries)

	if g.params.DefaultDirection != DirectionForceLeft {
		// Forward sweep: default right, left child grows from the start.
		cg, ch := 0.0, 0.0
		for j := 0; j < n; j++ {
			ridx := entries[j].rindex
			cg += float64(g.grad[ridx])
			ch += float64(g.hess[ridx])
			if j != n-1 && !(entries[j].fvalue+Epsilon2 < entries[j+1].fvalue) {
				continue
			}
			if ch < minChildWeight {
				continue
			}
			dh := rsumHess - ch
			if dh < minChildWeight {
				break
			}
			lossChg := g.obj.CalcCost(cg, ch, baseWeight) + g.obj.CalcCost(rsumGrad-cg, dh, baseWeight) - rootCost
			var threshold float32
			if j == n-1 {
				threshold = entries[j].fvalue + Epsilon
			} else {
				threshold = 0.5 * (entries[j].fvalue + entries[j+1].fvalue)
			}
			local.push(newSplitCandidate(lossChg, absStart, j+1, feature, threshold, false))
		}
	}

	if g.params.DefaultDirection != DirectionForceRight {
		// Backward sweep: default left, right child grows from the end.
		cg, ch := 0.0, 0.0
		for j := n; j > 0; j-- {
			ridx := entries[j-1].rindex
			cg += float64(g.grad[ridx])
			ch += float64(g.hess[ridx])
			if j != 1 && !(entries[j-2].fvalue+Epsilon2 < entries[j-1].fvalue) {
				continue
			}
			if ch < minChildWeight {
				continue
			}
			dh := rsumHess - ch
			if dh < minChildWeight {
				break
			}
			lossChg := g.obj.CalcCost(cg, ch, baseWeight) + g.obj.CalcCost(rsumGrad-cg, dh, baseWeight) - rootCost
			var threshold float32
			if j == 1 {
				threshold = entries[j-1].fvalue - Epsilon
			} else {
				threshold = 0.5 * (entries[j-2].fvalue + entries[j-1].fvalue)
			}
			local.push(newSplitCandidate(lossChg, absStart+j-1, n-j+1, feature, threshold, true))
		}
	}

	global.push(local.best)
}
