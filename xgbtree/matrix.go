package xgbtree

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/luheng-uwml/xgboost/pkg/errors"
)

// FeatureValue is one nonzero cell of a row: a feature index and its
// value. Absent features are implicitly missing, never explicit zeros.
type FeatureValue struct {
	Feature uint32
	Value   float32
}

// Row is a zero-copy view of one row's nonzero cells, sorted ascending
// by feature index.
type Row struct {
	features []uint32
	values   []float32
}

// Len returns the number of nonzero cells in the row.
func (r Row) Len() int { return len(r.features) }

// Feature returns the feature index of the k-th cell.
func (r Row) Feature(k int) uint32 { return r.features[k] }

// Value returns the feature value of the k-th cell.
func (r Row) Value(k int) float32 { return r.values[k] }

// FeatureMatrix is the row-access contract the tree grower and predictor
// depend on. Implied zeros are never enumerated; a missing feature is
// simply absent from the row.
type FeatureMatrix interface {
	Row(i uint32) Row
	NumRows() int
}

// Matrix is an immutable row-major sparse matrix in CSR layout.
type Matrix struct {
	rowPtr []int
	colIdx []uint32
	values []float32
}

// Row returns a zero-allocation view of row i.
func (m *Matrix) Row(i uint32) Row {
	start, end := m.rowPtr[i], m.rowPtr[i+1]
	return Row{features: m.colIdx[start:end], values: m.values[start:end]}
}

// NumRows returns the number of rows in the matrix.
func (m *Matrix) NumRows() int { return len(m.rowPtr) - 1 }

// MatrixBuilder assembles a Matrix one row at a time.
type MatrixBuilder struct {
	numFeature uint32
	rowPtr     []int
	colIdx     []uint32
	values     []float32
}

// NewMatrixBuilder creates a builder for rows over numFeature features.
func NewMatrixBuilder(numFeature uint32) *MatrixBuilder {
	return &MatrixBuilder{numFeature: numFeature, rowPtr: []int{0}}
}

// AddRow appends one row. Cells are sorted by feature index before
// storage if they are not already, so callers need not pre-sort.
func (b *MatrixBuilder) AddRow(cells []FeatureValue) error {
	sorted := make([]FeatureValue, len(cells))
	copy(sorted, cells)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Feature < sorted[j].Feature })

	for i, c := range sorted {
		if c.Feature >= b.numFeature {
			return errors.NewValidationError("feature", "exceeds num_feature", c.Feature)
		}
		if i > 0 && sorted[i-1].Feature == c.Feature {
			return errors.NewValidationError("feature", "duplicate feature index in row", c.Feature)
		}
		b.colIdx = append(b.colIdx, c.Feature)
		b.values = append(b.values, c.Value)
	}
	b.rowPtr = append(b.rowPtr, len(b.colIdx))
	return nil
}

// Build finalizes the matrix. The builder can be reused afterward; the
// returned Matrix owns its own slices.
func (b *MatrixBuilder) Build() *Matrix {
	return &Matrix{
		rowPtr: append([]int(nil), b.rowPtr...),
		colIdx: append([]uint32(nil), b.colIdx...),
		values: append([]float32(nil), b.values...),
	}
}

// DenseMatrix adapts a gonum dense matrix to the FeatureMatrix contract,
// treating exact zeros as missing rather than present-with-value-zero.
type DenseMatrix struct {
	data *mat.Dense
}

// NewDenseMatrix wraps data as a FeatureMatrix.
func NewDenseMatrix(data *mat.Dense) *DenseMatrix {
	return &DenseMatrix{data: data}
}

// Row builds a sparse view of dense row i on demand.
func (d *DenseMatrix) Row(i uint32) Row {
	_, cols := d.data.Dims()
	var features []uint32
	var values []float32
	for j := 0; j < cols; j++ {
		v := d.data.At(int(i), j)
		if v != 0 {
			features = append(features, uint32(j))
			values = append(values, float32(v))
		}
	}
	return Row{features: features, values: values}
}

// NumRows returns the number of rows in the underlying dense matrix.
func (d *DenseMatrix) NumRows() int {
	r, _ := d.data.Dims()
	return r
}
