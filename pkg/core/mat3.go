package core

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SingularThreshold is the determinant magnitude below which a 3x3 matrix is
// treated as singular
const SingularThreshold = 1e-8

// Mat3 is a row-major 3x3 matrix
type Mat3 [3][3]float64

// Identity3 returns the 3x3 identity matrix
func Identity3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// NewMat3FromRows assembles a matrix using the given vectors as rows
func NewMat3FromRows(r1, r2, r3 Vec3) Mat3 {
	return Mat3{
		{r1.X, r1.Y, r1.Z},
		{r2.X, r2.Y, r2.Z},
		{r3.X, r3.Y, r3.Z},
	}
}

// Row returns row i as a vector
func (m Mat3) Row(i int) Vec3 {
	return NewVec3(m[i][0], m[i][1], m[i][2])
}

// Col returns column j as a vector
func (m Mat3) Col(j int) Vec3 {
	return NewVec3(m[0][j], m[1][j], m[2][j])
}

// MulVec returns m * v
func (m Mat3) MulVec(v Vec3) Vec3 {
	return NewVec3(m.Row(0).Dot(v), m.Row(1).Dot(v), m.Row(2).Dot(v))
}

// Mul returns m * other
func (m Mat3) Mul(other Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m.Row(i).Dot(other.Col(j))
		}
	}
	return r
}

// Transpose returns the transposed matrix
func (m Mat3) Transpose() Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// Det returns the determinant
func (m Mat3) Det() float64 {
	return mat.Det(m.dense())
}

// Inverse returns the inverse of m. The second return value is false when m
// is singular (|det| below SingularThreshold, non-finite, or the
// factorization fails), in which case the identity is returned.
func (m Mat3) Inverse() (Mat3, bool) {
	d := m.dense()
	det := mat.Det(d)
	if math.IsNaN(det) || math.IsInf(det, 0) || math.Abs(det) < SingularThreshold {
		return Identity3(), false
	}

	var inv mat.Dense
	if err := inv.Inverse(d); err != nil {
		// gonum reports ill-conditioned matrices as errors too; keep the
		// result only if it is still a usable inverse
		if _, ok := err.(mat.Condition); !ok {
			return Identity3(), false
		}
	}

	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := inv.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return Identity3(), false
			}
			r[i][j] = v
		}
	}
	return r, true
}

// ApproxEqual reports whether all entries differ by at most tolerance
func (m Mat3) ApproxEqual(other Mat3, tolerance float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(m[i][j]-other[i][j]) > tolerance {
				return false
			}
		}
	}
	return true
}

func (m Mat3) dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
}
