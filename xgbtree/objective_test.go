package xgbtree

import "testing"

func TestSquaredErrorGradHess(t *testing.T) {
	obj := NewSquaredErrorObjective(0, 0, 0)
	if g := obj.Grad(3.5, 1.5); g != 2.0 {
		t.Errorf("Grad(3.5,1.5) = %v, want 2.0", g)
	}
	if h := obj.Hess(3.5, 1.5); h != 1.0 {
		t.Errorf("Hess = %v, want 1.0", h)
	}
}

func TestSquaredErrorCalcWeight(t *testing.T) {
	obj := NewSquaredErrorObjective(0, 0, 0)
	if w := obj.CalcWeight(-2, 2, 0); w != 1 {
		t.Errorf("CalcWeight(-2,2,0) = %v, want 1", w)
	}
	if w := obj.CalcWeight(2, 2, 0); w != -1 {
		t.Errorf("CalcWeight(2,2,0) = %v, want -1", w)
	}
	if w := obj.CalcWeight(0, 4, 0); w != 0 {
		t.Errorf("CalcWeight(0,4,0) = %v, want 0", w)
	}
}

func TestSquaredErrorCalcCostAndRootCost(t *testing.T) {
	obj := NewSquaredErrorObjective(0, 0, 0)
	if c := obj.CalcCost(2, 2, 0); c != 1 {
		t.Errorf("CalcCost(2,2,0) = %v, want 1", c)
	}
	if c := obj.CalcCost(-2, 2, 0); c != 1 {
		t.Errorf("CalcCost(-2,2,0) = %v, want 1 (cost depends on g^2)", c)
	}
	if c := obj.CalcRootCost(0, 4); c != 0 {
		t.Errorf("CalcRootCost(0,4) = %v, want 0", c)
	}
}

func TestSquaredErrorCalcCostZeroHessIsZero(t *testing.T) {
	obj := NewSquaredErrorObjective(0, 0, 0)
	if c := obj.CalcCost(5, 0, 0); c != 0 {
		t.Errorf("CalcCost with h+lambda<=0 should be 0, got %v", c)
	}
	if w := obj.CalcWeight(5, 0, 0); w != 0 {
		t.Errorf("CalcWeight with h+lambda<=0 should be 0, got %v", w)
	}
}

func TestSquaredErrorL1Shrinkage(t *testing.T) {
	obj := NewSquaredErrorObjective(1, 0, 0)
	// soft-threshold(0.5, alpha=1) = 0, so a weak gradient is fully
	// absorbed and the leaf weight collapses to zero.
	if w := obj.CalcWeight(0.5, 1, 0); w != 0 {
		t.Errorf("CalcWeight(0.5,1,0) with alpha=1 = %v, want 0", w)
	}
	if w := obj.CalcWeight(3, 1, 0); w != -2 {
		t.Errorf("CalcWeight(3,1,0) with alpha=1 = %v, want -2", w)
	}
}

func TestSquaredErrorNeedPrune(t *testing.T) {
	obj := NewSquaredErrorObjective(0, 0, 0.5)
	if obj.NeedPrune(0.4, 1) != true {
		t.Error("gain below gamma should need pruning")
	}
	if obj.NeedPrune(0.6, 1) != false {
		t.Error("gain above gamma should not need pruning")
	}
}

func TestSquaredErrorCannotSplit(t *testing.T) {
	obj := NewSquaredErrorObjective(0, 0, 0)
	if obj.CannotSplit(3, 2, 0) != true {
		t.Error("hess sum below 2*min_child_weight should refuse split")
	}
	if obj.CannotSplit(4, 2, 0) != false {
		t.Error("hess sum at 2*min_child_weight should allow split")
	}
}
