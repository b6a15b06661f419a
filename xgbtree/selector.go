package xgbtree

// directionBit is the top bit of the packed feature/direction word.
const directionBit = uint32(1) << 31

// splitCandidate is one proposed split: the loss reduction it realizes,
// the range of column-builder entries that belong to its "split branch",
// and the packed feature index / default-direction flag.
type splitCandidate struct {
	lossChg   float64
	start     int
	length    int
	sindex    uint32
	threshold float32
}

func newSplitCandidate(lossChg float64, start, length int, feature uint32, threshold float32, defaultLeft bool) splitCandidate {
	sindex := feature
	if defaultLeft {
		sindex |= directionBit
	}
	return splitCandidate{lossChg: lossChg, start: start, length: length, sindex: sindex, threshold: threshold}
}

// Feature masks out the direction flag from the packed word.
func (c splitCandidate) Feature() uint32 { return c.sindex &^ directionBit }

// DefaultLeft reports the direction flag packed into the top bit.
func (c splitCandidate) DefaultLeft() bool { return c.sindex&directionBit != 0 }

// selector holds a single best candidate. The zero value has loss_chg=0,
// meaning "no acceptable split", matching the original's initial state.
type selector struct {
	best splitCandidate
}

// push retains candidate iff it strictly improves on the current best,
// so an equal-gain later candidate never displaces an earlier one.
func (s *selector) push(candidate splitCandidate) {
	if candidate.lossChg > s.best.lossChg {
		s.best = candidate
	}
}
