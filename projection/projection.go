// Package projection computes the orthogonal projectors associated with an arbitrary real
// matrix: the outkernel operator projecting onto its range and the kernel operator projecting
// onto its null space. Constraint solvers hand Jacobian-like matrices in and receive projector
// matrices back.
package projection

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Outkernel returns the orthogonal projector P = M * pinv(M) onto the range (column space) of
// m, a square matrix with dimension equal to m's row count. The pseudo-inverse is computed
// through a singular value decomposition, so rank-deficient and non-square inputs are an
// expected, handled case, not an error. The effective-rank tolerance is the process-wide
// default; use OutkernelWithTolerance to override per call.
func Outkernel(m mat.Matrix) *mat.Dense {
	return OutkernelWithTolerance(m, DefaultRankTolerance())
}

// OutkernelWithTolerance is Outkernel with an explicit effective-rank tolerance: singular
// values at or below rcond times the largest singular value are treated as zero. A negative
// rcond selects the default, machine epsilon times the larger matrix dimension.
func OutkernelWithTolerance(m mat.Matrix, rcond float64) *mat.Dense {
	rows, _ := m.Dims()
	if rows == 0 {
		return &mat.Dense{}
	}
	p := mat.NewDense(rows, rows, nil)
	pinv, ok := PseudoInverse(m, rcond)
	if !ok {
		// all-zero or zero-dimension input projects onto nothing
		return p
	}
	p.Mul(m, pinv)
	return p
}

// Kernel returns the orthogonal projector K = I - Outkernel(m) onto the null space of m's
// transpose action, i.e. the complement of the range. For the all-zero matrix the whole space
// is the null space and K is the identity.
func Kernel(m mat.Matrix) *mat.Dense {
	return KernelWithTolerance(m, DefaultRankTolerance())
}

// KernelWithTolerance is Kernel with an explicit effective-rank tolerance. The complement is
// formed by subtracting the outkernel projector from the identity, never recomputed on a
// separate path, so Outkernel(m) + Kernel(m) sums to the identity exactly in floating point.
func KernelWithTolerance(m mat.Matrix, rcond float64) *mat.Dense {
	p := OutkernelWithTolerance(m, rcond)
	rows, _ := p.Dims()
	if rows == 0 {
		return &mat.Dense{}
	}
	k := identity(rows)
	k.Sub(k, p)
	return k
}

// PseudoInverse computes the Moore-Penrose pseudo-inverse of m via SVD, inverting only the
// singular values above the effective-rank cutoff. It reports false when m has no nonzero
// singular values (the all-zero matrix) or a zero dimension, cases where the pseudo-inverse
// is the zero matrix and callers can usually short-circuit.
func PseudoInverse(m mat.Matrix, rcond float64) (*mat.Dense, bool) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, false
	}

	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDThin); !ok {
		return nil, false
	}
	values := svd.Values(nil)
	if len(values) == 0 || values[0] == 0 {
		return nil, false
	}

	if rcond < 0 {
		rcond = defaultRCondFor(rows, cols)
	}
	rank := svd.Rank(rcond)
	if rank == 0 {
		return nil, false
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// pinv = V * diag(1/sigma_i) * U^T over the retained singular values
	sigmaInv := mat.NewDense(len(values), len(values), nil)
	for i := 0; i < rank; i++ {
		sigmaInv.Set(i, i, 1/values[i])
	}

	pinv := mat.NewDense(cols, rows, nil)
	var tmp mat.Dense
	tmp.Mul(&v, sigmaInv)
	pinv.Mul(&tmp, u.T())
	return pinv, true
}

func defaultRCondFor(rows, cols int) float64 {
	larger := rows
	if cols > larger {
		larger = cols
	}
	return float64(larger) * eps
}

var eps = math.Nextafter(1, 2) - 1

func identity(n int) *mat.Dense {
	id := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1)
	}
	return id
}
