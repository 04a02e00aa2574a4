package spatialmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// orthonormalTolerance bounds how far R*R^T may stray from identity and det(R) from 1.
const orthonormalTolerance = 1e-6

// RotationMatrix is a 3x3 matrix in row major order.
// m[3*r + c] is the element in the r'th row and c'th column.
type RotationMatrix struct {
	mat [9]float64
}

// NewRotationMatrix creates the rotation matrix from a slice of 9 values in row major order.
// The values are checked to be a proper rotation: orthonormal with determinant +1.
func NewRotationMatrix(m []float64) (*RotationMatrix, error) {
	if len(m) != 9 {
		return nil, NewInvalidRotationDataError(RotationFormatMatrix, len(m), 9)
	}
	rm := &RotationMatrix{}
	copy(rm.mat[:], m)
	if err := rm.validate(); err != nil {
		return nil, err
	}
	return rm, nil
}

func (rm *RotationMatrix) validate() error {
	m3 := rm.mgl()
	for _, v := range rm.mat {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewDegenerateRotationError(RotationFormatMatrix, "matrix has non-finite entries")
		}
	}
	if det := m3.Det(); math.Abs(det-1) > orthonormalTolerance {
		return NewDegenerateRotationError(RotationFormatMatrix, fmt.Sprintf("determinant %.6f is not 1", det))
	}
	if !m3.Mul3(m3.Transpose()).ApproxEqualThreshold(mgl64.Ident3(), orthonormalTolerance) {
		return NewDegenerateRotationError(RotationFormatMatrix, "matrix is not orthonormal")
	}
	return nil
}

// mgl returns the matrix as a column major mgl64.Mat3.
func (rm *RotationMatrix) mgl() mgl64.Mat3 {
	m := rm.mat
	return mgl64.Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// At returns the float corresponding to the element at the specified location.
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat[row*3+col]
}

// Row returns the row of the matrix at the given index as an r3.Vector.
func (rm *RotationMatrix) Row(row int) r3.Vector {
	return r3.Vector{X: rm.mat[3*row], Y: rm.mat[3*row+1], Z: rm.mat[3*row+2]}
}

// Mul returns the product of the matrix and the column vector v.
func (rm *RotationMatrix) Mul(v r3.Vector) r3.Vector {
	return r3.Vector{X: rm.Row(0).Dot(v), Y: rm.Row(1).Dot(v), Z: rm.Row(2).Dot(v)}
}

// Quaternion returns orientation in quaternion representation.
func (rm *RotationMatrix) Quaternion() quat.Number {
	q := mgl64.Mat4ToQuat(rm.mgl().Mat4()).Normalize()
	return quat.Number{Real: q.W, Imag: q.V[0], Jmag: q.V[1], Kmag: q.V[2]}
}

// AxisAngles returns the orientation in axis angle representation.
func (rm *RotationMatrix) AxisAngles() *R4AA {
	return QuatToR4AA(rm.Quaternion())
}

// EulerAngles returns orientation in Euler angle representation.
func (rm *RotationMatrix) EulerAngles() *EulerAngles {
	return QuatToEulerAngles(rm.Quaternion())
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (rm *RotationMatrix) RotationMatrix() *RotationMatrix {
	return rm
}
