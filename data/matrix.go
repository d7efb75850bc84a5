/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"math/big"
	"runtime"
	"sync"

	"github.com/fentec-project/gofhe/internal"
	"github.com/fentec-project/gofhe/sample"
)

// Matrix wraps a row-major slice of Vector elements together with a
// flag controlling whether its row-parallel operations may use
// multiple goroutines.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m.rows[i][j], or more conveniently through Get.
type Matrix struct {
	rows       []Vector
	cols       int
	concurrent bool
}

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	cols := 0
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		cols = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != cols {
			return Matrix{}, internal.MalformedMatrix("new", len(vectors[0]), cols, len(vectors), len(v))
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix{rows: newVectors, cols: cols, concurrent: true}, nil
}

// NewRandomMatrix returns a new Matrix instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomMatrix(rows, cols int, sampler sample.Sampler) (Matrix, error) {
	mat := make([]Vector, rows)

	for i := 0; i < rows; i++ {
		vec, err := NewRandomVector(cols, sampler)
		if err != nil {
			return Matrix{}, err
		}

		mat[i] = vec
	}

	return NewMatrix(mat)
}

// NewConstantMatrix returns a new Matrix instance
// with all elements set to constant c.
func NewConstantMatrix(rows, cols int, c *big.Int) Matrix {
	mat := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		mat[i] = NewConstantVector(cols, c)
	}

	m, _ := NewMatrix(mat)
	return m
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m.rows)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	return m.cols
}

// Get returns the element at row i, column j.
func (m Matrix) Get(i, j int) *big.Int {
	return m.rows[i][j]
}

// Row returns the i-th row of matrix m as a Vector. The returned
// vector shares storage with m; callers that mutate it should Copy
// first.
func (m Matrix) Row(i int) Vector {
	return m.rows[i]
}

// AsVector flattens a single-row matrix into a Vector. It is used to
// read out the result of a 1xN matrix product, such as an LWE sample
// s^T * A.
// It returns an error if m does not have exactly one row.
func (m Matrix) AsVector() (Vector, error) {
	if m.Rows() != 1 {
		return nil, internal.MalformedMatrix("asVector", 1, m.cols, m.Rows(), m.cols)
	}
	return m.rows[0], nil
}

// DisableConcurrency turns off row-level parallel dispatch for m's
// Add, Subtract, Negate, Multiply and ScalarMultiply operations. It
// is one-way: there is no EnableConcurrency, since the only reason to
// call this is to get single-threaded, allocation-light behavior for
// small matrices or deterministic test runs, and results never differ
// between the two modes - only wall-clock work does.
func (m *Matrix) DisableConcurrency() {
	m.concurrent = false
}

// DimsMatch returns a bool indicating whether matrices
// m and other have the same dimensions.
func (m Matrix) DimsMatch(other Matrix) bool {
	return m.Rows() == other.Rows() && m.Cols() == other.Cols()
}

// CheckDims checks whether dimensions of matrix m match
// the provided rows and cols arguments.
func (m Matrix) CheckDims(rows, cols int) bool {
	return m.Rows() == rows && m.Cols() == cols
}

// GetCol returns i-th column of matrix m as a vector.
// It returns error if i >= the number of m's columns.
func (m Matrix) GetCol(i int) (Vector, error) {
	if i >= m.Cols() {
		return nil, internal.MalformedMatrix("getCol", m.Rows(), m.Cols(), m.Rows(), i+1)
	}

	column := make([]*big.Int, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		column[j] = m.rows[j][i]
	}

	return NewVector(column), nil
}

// Transpose transposes matrix m and returns
// the result in a new Matrix.
func (m Matrix) Transpose() Matrix {
	transposed := make([]Vector, m.Cols())
	for i := 0; i < m.Cols(); i++ {
		transposed[i], _ = m.GetCol(i)
	}

	mT, _ := NewMatrix(transposed)
	mT.concurrent = m.concurrent

	return mT
}

// CheckBound checks whether the absolute values of all matrix
// elements are strictly smaller than the provided bound.
// It returns error if at least one element's absolute value is >= bound.
func (m Matrix) CheckBound(bound *big.Int) error {
	for _, v := range m.rows {
		if err := v.CheckBound(bound); err != nil {
			return err
		}
	}
	return nil
}

// Mod applies the element-wise modulo operation on matrix m, reducing
// every entry into [0, modulo).
// The result is returned in a new Matrix.
func (m Matrix) Mod(modulo *big.Int) Matrix {
	vectors := make([]Vector, m.Rows())

	for i, v := range m.rows {
		vectors[i] = v.Mod(modulo)
	}

	matrix, _ := NewMatrix(vectors)
	matrix.concurrent = m.concurrent

	return matrix
}

// Apply applies an element-wise function f to matrix m.
// The result is returned in a new Matrix.
func (m Matrix) Apply(f func(*big.Int) *big.Int) Matrix {
	res := make([]Vector, m.Rows())

	for i, vi := range m.rows {
		res[i] = vi.Apply(f)
	}

	mat, _ := NewMatrix(res)
	mat.concurrent = m.concurrent
	return mat
}

// dispatchRows splits the range [0, n) into chunks and runs work on
// each chunk, in parallel across up to runtime.NumCPU() goroutines
// when m.concurrent is set, or sequentially in the calling goroutine
// otherwise. It blocks until every chunk has completed.
func (m Matrix) dispatchRows(n int, work func(start, end int)) {
	if !m.concurrent || n == 0 {
		work(0, n)
		return
	}

	routines := runtime.NumCPU()
	if routines > n {
		routines = n
	}

	var wg sync.WaitGroup
	wg.Add(routines)

	tasks, start := n, 0
	for i := 0; i < routines; i++ {
		chunk := (tasks + routines - i - 1) / (routines - i)
		end := start + chunk
		go func(start, end int) {
			defer wg.Done()
			work(start, end)
		}(start, end)
		start, tasks = end, tasks-chunk
	}
	wg.Wait()
}

// Add adds matrices m and other.
// The result is returned in a new Matrix.
// Error is returned if m and other have different dimensions.
func (m Matrix) Add(other Matrix, modulo *big.Int) (Matrix, error) {
	if !m.DimsMatch(other) {
		return Matrix{}, internal.MalformedMatrix("add", m.Rows(), m.Cols(), other.Rows(), other.Cols())
	}

	vectors := make([]Vector, m.Rows())
	m.dispatchRows(m.Rows(), func(start, end int) {
		for i := start; i < end; i++ {
			vectors[i] = m.rows[i].Add(other.rows[i]).Mod(modulo)
		}
	})

	res, err := NewMatrix(vectors)
	if err != nil {
		return Matrix{}, err
	}
	res.concurrent = m.concurrent
	return res, nil
}

// Subtract subtracts other from m.
// The result is returned in a new Matrix.
// Error is returned if m and other have different dimensions.
func (m Matrix) Subtract(other Matrix, modulo *big.Int) (Matrix, error) {
	if !m.DimsMatch(other) {
		return Matrix{}, internal.MalformedMatrix("subtract", m.Rows(), m.Cols(), other.Rows(), other.Cols())
	}

	vectors := make([]Vector, m.Rows())
	m.dispatchRows(m.Rows(), func(start, end int) {
		for i := start; i < end; i++ {
			vectors[i] = m.rows[i].Sub(other.rows[i]).Mod(modulo)
		}
	})

	res, err := NewMatrix(vectors)
	if err != nil {
		return Matrix{}, err
	}
	res.concurrent = m.concurrent
	return res, nil
}

// Negate negates every element of m modulo modulo.
// The result is returned in a new Matrix.
func (m Matrix) Negate(modulo *big.Int) Matrix {
	vectors := make([]Vector, m.Rows())
	m.dispatchRows(m.Rows(), func(start, end int) {
		for i := start; i < end; i++ {
			vectors[i] = m.rows[i].MulScalar(big.NewInt(-1)).Mod(modulo)
		}
	})

	res, _ := NewMatrix(vectors)
	res.concurrent = m.concurrent
	return res
}

// Multiply multiplies matrices m and other modulo modulo.
// The result is returned in a new Matrix.
// Error is returned if m and other have incompatible dimensions.
func (m Matrix) Multiply(other Matrix, modulo *big.Int) (Matrix, error) {
	if m.Cols() != other.Rows() {
		return Matrix{}, internal.MalformedMatrix("multiply", m.Rows(), m.Cols(), other.Rows(), other.Cols())
	}

	otherCols := make([]Vector, other.Cols())
	for j := range otherCols {
		otherCols[j], _ = other.GetCol(j)
	}

	prod := make([]Vector, m.Rows())
	m.dispatchRows(m.Rows(), func(start, end int) {
		for i := start; i < end; i++ {
			row := make([]*big.Int, other.Cols())
			for j := 0; j < other.Cols(); j++ {
				dot, _ := m.rows[i].Dot(otherCols[j])
				row[j] = dot.Mod(dot, modulo)
			}
			prod[i] = row
		}
	})

	res, err := NewMatrix(prod)
	if err != nil {
		return Matrix{}, err
	}
	res.concurrent = m.concurrent
	return res, nil
}

// ScalarMultiply multiplies elements of matrix m by a scalar x, modulo
// modulo.
// The result is returned in a new Matrix.
func (m Matrix) ScalarMultiply(x, modulo *big.Int) Matrix {
	vectors := make([]Vector, m.Rows())
	m.dispatchRows(m.Rows(), func(start, end int) {
		for i := start; i < end; i++ {
			vectors[i] = m.rows[i].MulScalar(x).Mod(modulo)
		}
	})

	res, _ := NewMatrix(vectors)
	res.concurrent = m.concurrent
	return res
}

// MulVec multiplies matrix m and vector v.
// It returns the resulting vector.
// Error is returned if the number of columns of m differs from the number
// of elements of v.
func (m Matrix) MulVec(v Vector) (Vector, error) {
	if m.Cols() != len(v) {
		return nil, internal.MalformedVector("mulVec", m.Cols(), len(v))
	}

	res := make(Vector, m.Rows())
	for i, row := range m.rows {
		res[i], _ = row.Dot(v)
	}

	return res, nil
}

// AddRow appends row v as a new last row of m.
// It returns an error if v's length does not match m's column count.
func (m Matrix) AddRow(v Vector) (Matrix, error) {
	if m.Rows() > 0 && len(v) != m.Cols() {
		return Matrix{}, internal.MalformedVector("addRow", m.Cols(), len(v))
	}

	rows := make([]Vector, m.Rows()+1)
	copy(rows, m.rows)
	rows[m.Rows()] = v

	res, err := NewMatrix(rows)
	if err != nil {
		return Matrix{}, err
	}
	res.concurrent = m.concurrent
	return res, nil
}

// AddColumn appends v as a new last column of m.
// It returns an error if v's length does not match m's row count.
func (m Matrix) AddColumn(v Vector) (Matrix, error) {
	if m.Rows() > 0 && len(v) != m.Rows() {
		return Matrix{}, internal.MalformedVector("addColumn", m.Rows(), len(v))
	}

	rows := make([]Vector, len(v))
	if m.Rows() == 0 {
		for i := range v {
			rows[i] = NewVector([]*big.Int{v[i]})
		}
	} else {
		for i := range m.rows {
			row := make(Vector, m.Cols()+1)
			copy(row, m.rows[i])
			row[m.Cols()] = v[i]
			rows[i] = row
		}
	}

	res, err := NewMatrix(rows)
	if err != nil {
		return Matrix{}, err
	}
	res.concurrent = m.concurrent
	return res, nil
}

// Equals reports whether m and other have the same dimensions and
// entries.
func (m Matrix) Equals(other Matrix) bool {
	if !m.DimsMatch(other) {
		return false
	}
	for i := range m.rows {
		for j := range m.rows[i] {
			if m.rows[i][j].Cmp(other.rows[i][j]) != 0 {
				return false
			}
		}
	}
	return true
}

// Decompose expands scalar x into its length-ell bit-decomposition
// (least significant bit first): the unique vector of bits b such
// that x = sum_k b[k] * 2^k mod modulo. It is the scalar building
// block of GadgetInverse.
func Decompose(x *big.Int, ell int, modulo *big.Int) Vector {
	r := new(big.Int).Mod(x, modulo)
	bits := make(Vector, ell)
	for k := 0; k < ell; k++ {
		bits[k] = big.NewInt(int64(r.Bit(0)))
		r.Rsh(r, 1)
	}
	return bits
}

// GadgetInverse applies Decompose to every entry of column vector v,
// producing a ((rows*ell) x 1) column whose entries are all 0/1 and
// which satisfies G * GadgetInverse(v) = v (mod modulo), where G is
// the (rows x rows*ell) gadget matrix built with the same ell. This
// is the operator G^{-1} used to keep homomorphic products
// noise-bounded instead of blowing up with every multiplication.
func GadgetInverse(v Vector, ell int, modulo *big.Int) Vector {
	out := make(Vector, 0, len(v)*ell)
	for _, x := range v {
		out = append(out, Decompose(x, ell, modulo)...)
	}
	return out
}
