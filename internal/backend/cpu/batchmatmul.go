package cpu

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray/internal/element"
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
)

// BatchMatrix is a tensor laid out as a batch of row-major matrices.
//
// The trailing two axes are the matrix axes and every leading axis is a batch
// axis. A rank-1 tensor is a single row. ToTensor inverts NewBatchMatrix exactly.
// A BatchMatrix owns its values: it never aliases a tensor's storage.
type BatchMatrix[E element.Numeric] struct {
	Batch tensor.Shape // leading axes, empty for rank <= 2
	Rows  int
	Cols  int
	data  []E
	rank  int
}

// NewBatchMatrix copies t into a batch of matrices.
func NewBatchMatrix[E element.Numeric](t *tensor.Tensor[E]) BatchMatrix[E] {
	return batchOf(t.Shape(), t.ToSlice())
}

// borrowBatch is NewBatchMatrix without the copy. The result must only be read.
func borrowBatch[E element.Numeric](t *tensor.Tensor[E]) BatchMatrix[E] {
	return batchOf(t.Shape(), t.Values())
}

func batchOf[E element.Numeric](shape tensor.Shape, data []E) BatchMatrix[E] {
	bm := BatchMatrix[E]{data: data, rank: len(shape)}
	if len(shape) == 1 {
		bm.Batch, bm.Rows, bm.Cols = tensor.Shape{}, 1, shape[0]
		return bm
	}
	bm.Batch = shape[:len(shape)-2].Clone()
	bm.Rows = shape[len(shape)-2]
	bm.Cols = shape[len(shape)-1]
	return bm
}

// NumMatrices returns the number of matrices in the batch.
func (bm BatchMatrix[E]) NumMatrices() int {
	return bm.Batch.NumElements()
}

// Matrix returns the i-th matrix in row-major order.
func (bm BatchMatrix[E]) Matrix(i int) []E {
	size := bm.Rows * bm.Cols
	return bm.data[i*size : (i+1)*size]
}

// Shape returns the tensor shape of the original rank.
func (bm BatchMatrix[E]) Shape() tensor.Shape {
	if bm.rank == 1 {
		return tensor.Shape{bm.Cols}
	}
	return append(bm.Batch.Clone(), bm.Rows, bm.Cols)
}

// ToTensor copies the batch into a tensor of the original rank.
func (bm BatchMatrix[E]) ToTensor() *tensor.Tensor[E] {
	return tensor.Wrap(append([]E(nil), bm.data...), bm.Shape())
}

// MatMul performs (batched) matrix multiplication.
//
// For 2D: [M, K] @ [K, N] -> [M, N]
// For ND: [..., M, K] @ [..., K, N] -> [..., M, N]
//
// Both operands must have the same rank. Batch axes are reconciled one by one:
// equal extents pair matrices directly and an extent of 1 is reused across the
// other side.
func (cpu *Backend[E]) MatMul(a, b *tensor.Tensor[E]) (*tensor.Tensor[E], error) {
	if a.Rank() != b.Rank() {
		return nil, errors.Wrapf(tensor.ErrIncompatibleMatMul, "matmul: rank mismatch, got %dD and %dD", a.Rank(), b.Rank())
	}

	lhs, rhs := borrowBatch(a), borrowBatch(b)
	if lhs.Cols != rhs.Rows {
		return nil, errors.Wrapf(tensor.ErrIncompatibleMatMul, "matmul: shape mismatch %v @ %v (inner %d vs %d)",
			a.Shape(), b.Shape(), lhs.Cols, rhs.Rows)
	}
	batch, err := tensor.BroadcastShapes(lhs.Batch, rhs.Batch)
	if err != nil {
		return nil, errors.Wrapf(tensor.ErrIncompatibleMatMul, "matmul: batch axes %v and %v: %v", lhs.Batch, rhs.Batch, err)
	}

	m, k, n := lhs.Rows, lhs.Cols, rhs.Cols
	out := BatchMatrix[E]{
		Batch: batch,
		Rows:  m,
		Cols:  n,
		data:  make([]E, batch.NumElements()*m*n),
		rank:  a.Rank(),
	}

	outStrides := batch.ComputeStrides()
	lhsStrides := tensor.BroadcastStrides(lhs.Batch, batch)
	rhsStrides := tensor.BroadcastStrides(rhs.Batch, batch)
	operands := func(i int) (c, x, y []E) {
		return out.Matrix(i),
			lhs.Matrix(tensor.FlatIndex(i, outStrides, lhsStrides)),
			rhs.Matrix(tensor.FlatIndex(i, outStrides, rhsStrides))
	}

	if cpu.cfg.MatMul.UseBLAS && element.KindOf[E]().IsFloat() {
		klog.V(2).Infof("matmul: blas gemm, %d × [%d,%d]@[%d,%d]", out.NumMatrices(), m, k, k, n)
		parallel.For(out.NumMatrices(), func(i int) {
			c, x, y := operands(i)
			if !gemm(c, x, y, m, k, n) {
				matmulRows(c, x, y, 0, m, k, n)
			}
		}, cpu.cfg.Parallel)
	} else {
		klog.V(2).Infof("matmul: naive, %d × [%d,%d]@[%d,%d]", out.NumMatrices(), m, k, k, n)
		parallel.ForBatch(out.NumMatrices(), m, func(i, row int) {
			c, x, y := operands(i)
			matmulRows(c, x, y, row, row+1, k, n)
		}, cpu.cfg.Parallel)
	}

	return tensor.Wrap(out.data, out.Shape()), nil
}

// gemm computes c = a @ b with gonum BLAS. It reports false if E has no BLAS routine.
func gemm[E element.Numeric](c, a, b []E, m, k, n int) bool {
	switch cs := any(c).(type) {
	case []float32:
		blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas32.General{Rows: m, Cols: k, Stride: k, Data: any(a).([]float32)},
			blas32.General{Rows: k, Cols: n, Stride: n, Data: any(b).([]float32)},
			0, blas32.General{Rows: m, Cols: n, Stride: n, Data: cs})
		return true
	case []float64:
		blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas64.General{Rows: m, Cols: k, Stride: k, Data: any(a).([]float64)},
			blas64.General{Rows: k, Cols: n, Stride: n, Data: any(b).([]float64)},
			0, blas64.General{Rows: m, Cols: n, Stride: n, Data: cs})
		return true
	default:
		return false
	}
}

// matmulRows computes rows [rowStart, rowEnd) of c = a @ b.
// C[i,j] = sum_k A[i,k] * B[k,j], in i-k-j order for cache-friendly access to B.
func matmulRows[E element.Numeric](c, a, b []E, rowStart, rowEnd, k, n int) {
	for i := rowStart; i < rowEnd; i++ {
		cRow := c[i*n : (i+1)*n]
		clear(cRow)
		for p := 0; p < k; p++ {
			av := a[i*k+p]
			bRow := b[p*n : (p+1)*n]
			for j, bv := range bRow {
				cRow[j] += av * bv
			}
		}
	}
}
