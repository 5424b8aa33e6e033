// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linal/scalar"
)

const (
	opAdd   = "Add"
	opSub   = "Sub"
	opDot   = "Dot"
	opCross = "Cross"
)

// Vector is a fixed-length ordered sequence of T.
type Vector[T scalar.Ring] struct {
	data []T // length fixed at construction
}

// New returns a zero vector of length n.
func New[T scalar.Ring](n int) (*Vector[T], error) {
	if n <= 0 {
		return nil, vectorErrorf("New", ErrBadLength)
	}

	return &Vector[T]{data: make([]T, n)}, nil
}

// FromSlice copies vals into a new vector of the same length.
func FromSlice[T scalar.Ring](vals []T) (*Vector[T], error) {
	if len(vals) == 0 {
		return nil, vectorErrorf("FromSlice", ErrBadLength)
	}
	data := make([]T, len(vals))
	copy(data, vals)

	return &Vector[T]{data: data}, nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.data)
}

// At returns the i-th element.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		return scalar.Zero[T](), vectorErrorf(fmt.Sprintf("At(%d)", i), ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set assigns x to the i-th element.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(fmt.Sprintf("Set(%d)", i), ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Slice returns a copy of the elements.
func (v *Vector[T]) Slice() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns an independent copy of v.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{data: v.Slice()}
}

// Equal reports whether v and w have the same length and elements.
func (v *Vector[T]) Equal(w *Vector[T]) bool {
	if v == nil || w == nil {
		return v == w
	}
	if len(v.data) != len(w.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != w.data[i] {
			return false
		}
	}

	return true
}

// String renders the vector as "[a b c]".
func (v *Vector[T]) String() string {
	parts := make([]string, len(v.data))
	for i, x := range v.data {
		parts[i] = fmt.Sprint(x)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func sameLen[T scalar.Ring](tag string, a, b *Vector[T]) error {
	if a == nil || b == nil {
		return vectorErrorf(tag, ErrNilVector)
	}
	if len(a.data) != len(b.data) {
		return vectorErrorf(tag, ErrDimensionMismatch)
	}

	return nil
}

// Add returns a + b.
func Add[T scalar.Ring](a, b *Vector[T]) (*Vector[T], error) {
	if err := sameLen(opAdd, a, b); err != nil {
		return nil, err
	}
	out := &Vector[T]{data: make([]T, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] + b.data[i]
	}

	return out, nil
}

// Sub returns a - b.
func Sub[T scalar.Ring](a, b *Vector[T]) (*Vector[T], error) {
	if err := sameLen(opSub, a, b); err != nil {
		return nil, err
	}
	out := &Vector[T]{data: make([]T, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] - b.data[i]
	}

	return out, nil
}

// Scale returns alpha·v.
func Scale[T scalar.Ring](v *Vector[T], alpha T) *Vector[T] {
	out := &Vector[T]{data: make([]T, len(v.data))}
	for i, x := range v.data {
		out.data[i] = x * alpha
	}

	return out
}

// Dot returns Σ a[i]*b[i], accumulated left to right.
func Dot[T scalar.Ring](a, b *Vector[T]) (T, error) {
	if err := sameLen(opDot, a, b); err != nil {
		return scalar.Zero[T](), err
	}
	sum := scalar.Zero[T]()
	for i := range a.data {
		sum += a.data[i] * b.data[i]
	}

	return sum, nil
}

// Cross returns a × b. Both operands must be three-dimensional.
func Cross[T scalar.Ring](a, b *Vector[T]) (*Vector[T], error) {
	if err := sameLen(opCross, a, b); err != nil {
		return nil, err
	}
	if len(a.data) != 3 {
		return nil, vectorErrorf(opCross, ErrDimensionMismatch)
	}
	x, y := a.data, b.data

	return &Vector[T]{data: []T{
		x[1]*y[2] - x[2]*y[1],
		x[2]*y[0] - x[0]*y[2],
		x[0]*y[1] - x[1]*y[0],
	}}, nil
}

// Magnitude returns the Euclidean norm √(Σ v[i]²) computed in float64.
func Magnitude[T scalar.Real](v *Vector[T]) float64 {
	var sum float64
	for _, x := range v.data {
		f := float64(x)
		sum += f * f
	}

	return math.Sqrt(sum)
}

// ToGonum copies v into a gonum column vector.
func ToGonum[T scalar.Real](v *Vector[T]) *mat.VecDense {
	data := make([]float64, len(v.data))
	for i, x := range v.data {
		data[i] = float64(x)
	}

	return mat.NewVecDense(len(data), data)
}
