package xgbtree

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMatrixBuilderSortsAndRoundTrips(t *testing.T) {
	b := NewMatrixBuilder(4)
	if err := b.AddRow([]FeatureValue{{Feature: 2, Value: 1.5}, {Feature: 0, Value: -3}}); err != nil {
		t.Fatalf("AddRow: %v", err)
	}
	if err := b.AddRow(nil); err != nil {
		t.Fatalf("AddRow(nil): %v", err)
	}
	m := b.Build()

	if m.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", m.NumRows())
	}
	row0 := m.Row(0)
	if row0.Len() != 2 {
		t.Fatalf("row0.Len() = %d, want 2", row0.Len())
	}
	if row0.Feature(0) != 0 || row0.Value(0) != -3 {
		t.Errorf("row0[0] = (%d,%v), want (0,-3)", row0.Feature(0), row0.Value(0))
	}
	if row0.Feature(1) != 2 || row0.Value(1) != 1.5 {
		t.Errorf("row0[1] = (%d,%v), want (2,1.5)", row0.Feature(1), row0.Value(1))
	}
	if m.Row(1).Len() != 0 {
		t.Errorf("row1 should be empty, got len %d", m.Row(1).Len())
	}
}

func TestMatrixBuilderRejectsOutOfRangeFeature(t *testing.T) {
	b := NewMatrixBuilder(2)
	if err := b.AddRow([]FeatureValue{{Feature: 2, Value: 1}}); err == nil {
		t.Fatal("expected error for feature index >= num_feature")
	}
}

func TestMatrixBuilderRejectsDuplicateFeature(t *testing.T) {
	b := NewMatrixBuilder(4)
	if err := b.AddRow([]FeatureValue{{Feature: 1, Value: 1}, {Feature: 1, Value: 2}}); err == nil {
		t.Fatal("expected error for duplicate feature index in one row")
	}
}

func TestDenseMatrixTreatsZeroAsMissing(t *testing.T) {
	data := mat.NewDense(2, 3, []float64{0, 5, 0, 1, 0, 2})
	dm := NewDenseMatrix(data)
	if dm.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", dm.NumRows())
	}
	row0 := dm.Row(0)
	if row0.Len() != 1 || row0.Feature(0) != 1 {
		t.Errorf("row0 = %+v, want single nonzero at feature 1", row0)
	}
	row1 := dm.Row(1)
	if row1.Len() != 2 {
		t.Errorf("row1.Len() = %d, want 2", row1.Len())
	}
}
