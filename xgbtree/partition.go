package xgbtree

import "sort"

// makeSplit converts t.nid into a split using the winning candidate,
// records its NodeStat, partitions t's id slice in place, and pushes the
// two child tasks.
func (g *grower) makeSplit(t task, cand splitCandidate, baseWeight float32) {
	stat := g.tree.Stat(t.nid)
	stat.LossChg = float32(cand.lossChg)
	stat.LeafChildCnt = 0
	stat.BaseWeight = baseWeight

	g.tree.AddChilds(t.nid)
	g.tree.SetSplit(t.nid, cand.Feature(), cand.threshold, cand.DefaultLeft())

	// qset is the "split branch": row indices the feature actually
	// assigns, pulled from the feature-sorted entries and re-sorted
	// ascending so the partition below preserves strict order.
	qset := make([]uint32, cand.length)
	for i, e := range g.colBuilder.entry[cand.start : cand.start+cand.length] {
		qset[i] = e.rindex
	}
	sort.Slice(qset, func(i, j int) bool { return qset[i] < qset[j] })

	idslice := g.idbuf[t.start : t.start+t.length]
	top := 0
	for i := 0; i < len(idslice); i++ {
		if top < len(qset) && idslice[i] == qset[top] {
			top++
			continue
		}
		idslice[i-top] = idslice[i]
	}
	frontLen := t.length - len(qset)
	copy(idslice[frontLen:], qset)

	node := g.tree.Node(t.nid)
	defChild, splChild := node.Right, node.Left
	if node.DefaultLeft {
		defChild, splChild = node.Left, node.Right
	}

	defTask := task{nid: defChild, start: t.start, length: frontLen, parentBaseWeight: stat.BaseWeight}
	splTask := task{nid: splChild, start: t.start + frontLen, length: len(qset), parentBaseWeight: stat.BaseWeight}
	g.stack.push(defTask)
	g.stack.push(splTask)
}
