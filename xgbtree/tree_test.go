package xgbtree

import "testing"

func TestNewTreeRootsAreLeaves(t *testing.T) {
	tr := NewTree(2, 3)
	if tr.NumRoots() != 2 || tr.NumFeature() != 3 {
		t.Fatalf("NewTree(2,3) dims = (%d,%d)", tr.NumRoots(), tr.NumFeature())
	}
	for i := 0; i < 2; i++ {
		n := tr.Node(NodeID(i))
		if !n.IsLeaf() {
			t.Errorf("root %d should start as a leaf", i)
		}
		if !tr.IsRoot(NodeID(i)) {
			t.Errorf("root %d should report IsRoot", i)
		}
	}
}

func TestAddChildsAndSetSplit(t *testing.T) {
	tr := NewTree(1, 2)
	left, right := tr.AddChilds(0)
	tr.SetSplit(0, 1, 2.5, true)

	root := tr.Node(0)
	if root.IsLeaf() {
		t.Fatal("root should no longer be a leaf after AddChilds")
	}
	if root.Feature != 1 || root.Threshold != 2.5 || !root.DefaultLeft {
		t.Errorf("split params = %+v, want feature=1 threshold=2.5 defaultLeft=true", root)
	}
	if root.Left != left || root.Right != right {
		t.Errorf("root children = (%d,%d), want (%d,%d)", root.Left, root.Right, left, right)
	}
	if tr.Depth(left) != 1 || tr.Depth(right) != 1 {
		t.Errorf("child depth = (%d,%d), want (1,1)", tr.Depth(left), tr.Depth(right))
	}
	if tr.NumNodes() != 3 {
		t.Errorf("NumNodes() = %d, want 3", tr.NumNodes())
	}
}

func TestChangeToLeafCollapsesSplit(t *testing.T) {
	tr := NewTree(1, 2)
	tr.AddChilds(0)
	tr.SetSplit(0, 0, 1.0, false)
	tr.ChangeToLeaf(0, 0.75)

	n := tr.Node(0)
	if !n.IsLeaf() {
		t.Fatal("node should be a leaf after ChangeToLeaf")
	}
	if n.Weight != 0.75 {
		t.Errorf("weight = %v, want 0.75", n.Weight)
	}
}

func TestTraversePicksRightWhenFeatureKnown(t *testing.T) {
	tr := NewTree(1, 2)
	left, right := tr.AddChilds(0)
	tr.SetSplit(0, 0, 2.0, false)
	tr.ChangeToLeaf(left, -1)
	tr.ChangeToLeaf(right, 1)

	got, err := tr.PredictDense([]float32{5, 0}, []bool{false, false}, 0)
	if err != nil {
		t.Fatalf("PredictDense: %v", err)
	}
	if got != 1 {
		t.Errorf("PredictDense with feature=5 (>=2.0) = %v, want 1 (right leaf)", got)
	}
	got, err = tr.PredictDense([]float32{1, 0}, []bool{false, false}, 0)
	if err != nil {
		t.Fatalf("PredictDense: %v", err)
	}
	if got != -1 {
		t.Errorf("PredictDense with feature=1 (<2.0) = %v, want -1 (left leaf)", got)
	}
}

func TestTraverseRoutesUnknownToDefault(t *testing.T) {
	tr := NewTree(1, 1)
	left, right := tr.AddChilds(0)
	tr.SetSplit(0, 0, 2.0, true)
	tr.ChangeToLeaf(left, -1)
	tr.ChangeToLeaf(right, 1)

	got, err := tr.PredictDense([]float32{0}, []bool{true}, 0)
	if err != nil {
		t.Fatalf("PredictDense: %v", err)
	}
	if got != -1 {
		t.Errorf("unknown feature with default_left=true = %v, want -1 (left leaf)", got)
	}
}

func TestPredictDenseRejectsShortVector(t *testing.T) {
	tr := NewTree(1, 2)
	tr.AddChilds(0)
	tr.SetSplit(0, 1, 2.0, false)

	if _, err := tr.PredictDense([]float32{0}, []bool{true}, 0); err == nil {
		t.Fatal("expected a precondition error for a feature vector shorter than num_feature")
	}
}

func TestPredictorSparseRoundTrip(t *testing.T) {
	tr := NewTree(1, 3)
	left, right := tr.AddChilds(0)
	tr.SetSplit(0, 1, 0.5, false)
	tr.ChangeToLeaf(left, 10)
	tr.ChangeToLeaf(right, 20)

	p := NewPredictor(tr)
	row := Row{features: []uint32{0, 1}, values: []float32{9, 1.0}}
	got, err := p.PredictSparse(row, 0)
	if err != nil {
		t.Fatalf("PredictSparse: %v", err)
	}
	if got != 20 {
		t.Errorf("PredictSparse (feature 1 present, value 1.0 >= 0.5) = %v, want 20", got)
	}

	// feature 1 absent from this row: should route to default (right, not
	// default_left) and scratch state must have been restored.
	row2 := Row{features: []uint32{0}, values: []float32{9}}
	got, err = p.PredictSparse(row2, 0)
	if err != nil {
		t.Fatalf("PredictSparse: %v", err)
	}
	if got != 20 {
		t.Errorf("PredictSparse (feature 1 missing, default right) = %v, want 20", got)
	}

	for i, u := range p.unknown {
		if !u {
			t.Errorf("scratch vector not restored: feature %d still marked known", i)
		}
	}
}

func TestPredictSparseRejectsOutOfRangeFeature(t *testing.T) {
	tr := NewTree(1, 2)
	tr.AddChilds(0)
	tr.SetSplit(0, 1, 0.5, false)

	p := NewPredictor(tr)
	row := Row{features: []uint32{5}, values: []float32{1}}
	if _, err := p.PredictSparse(row, 0); err == nil {
		t.Fatal("expected a precondition error for a feature index beyond num_feature")
	}
}
