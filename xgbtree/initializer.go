package xgbtree

// initTasks seeds the root task(s) from the input instance set, honoring
// subsample and optional group-id partitioning. Instances with a
// negative Hessian are dropped in every case.
func (g *grower) initTasks(n int, groupID []uint32) error {
	if groupID == nil {
		return g.initUngroupedTasks(n)
	}
	return g.initGroupedTasks(groupID)
}

func (g *grower) initUngroupedTasks(n int) error {
	ids := make([]uint32, 0, n)
	if g.params.Subsample >= 1-1e-6 {
		for i := 0; i < n; i++ {
			if g.hess[i] >= 0 {
				ids = append(ids, uint32(i))
			}
		}
	} else {
		for i := 0; i < n; i++ {
			if g.hess[i] < 0 {
				continue
			}
			if g.params.Rand.Float64() < float64(g.params.Subsample) {
				ids = append(ids, uint32(i))
			}
		}
	}
	g.idbuf = ids
	g.stack.push(task{nid: 0, start: 0, length: len(ids)})
	return nil
}

func (g *grower) initGroupedTasks(groupID []uint32) error {
	builder := newColumnBuilder(g.params.NumRoots)
	n := len(groupID)
	for i := 0; i < n; i++ {
		if g.hess[i] < 0 {
			continue
		}
		if groupID[i] >= uint32(g.params.NumRoots) {
			return groupOutOfRangeError(groupID[i], g.params.NumRoots)
		}
		builder.AddBudget(groupID[i])
	}
	builder.InitStorage()
	for i := 0; i < n; i++ {
		if g.hess[i] < 0 {
			continue
		}
		builder.PushElem(groupID[i], scEntry{rindex: uint32(i)})
	}

	total := len(builder.entry)
	g.idbuf = make([]uint32, total)
	for i, e := range builder.entry {
		g.idbuf[i] = e.rindex
	}

	for root := 0; root < g.params.NumRoots; root++ {
		start, end := builder.Range(uint32(root))
		if end > start {
			g.stack.push(task{nid: NodeID(root), start: start, length: end - start})
		}
	}
	return nil
}
