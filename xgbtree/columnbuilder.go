package xgbtree

// scEntry is one (feature_value, row_index) cell in the transposed
// column store.
type scEntry struct {
	fvalue float32
	rindex uint32
}

// columnBuilder transposes a task's row-major sparse rows into compact
// per-feature runs. It is rebuilt fresh per task but reuses its counter
// and offset backing arrays across tasks. Cleanup's cost is proportional
// to the number of touched features; InitStorage's prefix sum still walks
// all num_feature counters.
type columnBuilder struct {
	counts  []int
	offsets []int
	touched []uint32

	entry  []scEntry
	cursor []int
}

// newColumnBuilder allocates a builder over numFeature columns, all
// counters zero.
func newColumnBuilder(numFeature int) *columnBuilder {
	return &columnBuilder{
		counts:  make([]int, numFeature),
		offsets: make([]int, numFeature+1),
	}
}

// AddBudget increments feature f's pending-entry counter, recording f in
// the touched list the first time it appears this task.
func (b *columnBuilder) AddBudget(f uint32) {
	if b.counts[f] == 0 {
		b.touched = append(b.touched, f)
	}
	b.counts[f]++
}

// InitStorage prefix-sums the counters into offsets, allocates the flat
// entry array, and resets the write cursor to the start of each feature's
// run.
func (b *columnBuilder) InitStorage() {
	sum := 0
	for f, c := range b.counts {
		b.offsets[f] = sum
		sum += c
	}
	b.offsets[len(b.counts)] = sum

	if cap(b.entry) < sum {
		b.entry = make([]scEntry, sum)
	} else {
		b.entry = b.entry[:sum]
	}

	if cap(b.cursor) < len(b.counts) {
		b.cursor = make([]int, len(b.counts))
	} else {
		b.cursor = b.cursor[:len(b.counts)]
	}
	copy(b.cursor, b.offsets[:len(b.counts)])
}

// PushElem appends cell at feature f's write cursor, advancing it.
func (b *columnBuilder) PushElem(f uint32, cell scEntry) {
	b.entry[b.cursor[f]] = cell
	b.cursor[f]++
}

// Range returns the absolute [start, end) offsets of feature f's run
// within the entry array, valid after InitStorage.
func (b *columnBuilder) Range(f uint32) (start, end int) {
	return b.offsets[f], b.offsets[f+1]
}

// Cleanup zeroes every touched feature's counter and clears the touched
// list, so the next task starts from an all-zero counts array. The
// entry/cursor arrays are left for the caller to discard or reuse.
func (b *columnBuilder) Cleanup() {
	for _, f := range b.touched {
		b.counts[f] = 0
	}
	b.touched = b.touched[:0]
}
