package xgbtree

// tryPruneLeaf runs the post-growth pruning cascade on leaf finalization.
// When both children of nid's parent have become leaves and the parent's
// realized gain fails the cost-complexity threshold, the parent collapses
// to a leaf too, and the cascade recurses one level further up.
func (g *grower) tryPruneLeaf(nid NodeID, depth int) {
	if g.tree.IsRoot(nid) {
		return
	}
	pid := g.tree.Node(nid).Parent
	stat := g.tree.Stat(pid)
	stat.LeafChildCnt++

	if stat.LeafChildCnt >= 2 && g.obj.NeedPrune(float64(stat.LossChg), depth-1) {
		g.tree.ChangeToLeaf(pid, g.params.LearningRate*stat.BaseWeight)
		g.tree.numPruned += 2
		g.tryPruneLeaf(pid, depth-1)
	}
}
