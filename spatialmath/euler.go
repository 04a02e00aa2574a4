package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// EulerAngles are three angles (in radians) applied about Z (yaw), then Y (pitch), then X (roll).
// The rotation they describe is Rz(yaw) * Ry(pitch) * Rx(roll).
// Euler angles are terrible, only use them for input and display.
type EulerAngles struct {
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
}

// NewEulerAngles creates an empty EulerAngles struct.
func NewEulerAngles() *EulerAngles {
	return &EulerAngles{}
}

// NewEulerAnglesDegrees builds EulerAngles from yaw, pitch and roll given in degrees.
func NewEulerAnglesDegrees(yaw, pitch, roll float64) *EulerAngles {
	return &EulerAngles{Roll: roll * degToRad, Pitch: pitch * degToRad, Yaw: yaw * degToRad}
}

// EulerAngles returns orientation in Euler angle representation.
func (ea *EulerAngles) EulerAngles() *EulerAngles {
	return ea
}

// Quaternion composes Qz(yaw) * Qy(pitch) * Qx(roll) and renormalizes the product.
func (ea *EulerAngles) Quaternion() quat.Number {
	qz := quat.Number{Real: math.Cos(ea.Yaw / 2), Kmag: math.Sin(ea.Yaw / 2)}
	qy := quat.Number{Real: math.Cos(ea.Pitch / 2), Jmag: math.Sin(ea.Pitch / 2)}
	qx := quat.Number{Real: math.Cos(ea.Roll / 2), Imag: math.Sin(ea.Roll / 2)}
	return normalizeQuat(quat.Mul(quat.Mul(qz, qy), qx))
}

// AxisAngles returns the orientation in axis angle representation.
func (ea *EulerAngles) AxisAngles() *R4AA {
	return QuatToR4AA(ea.Quaternion())
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (ea *EulerAngles) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(ea.Quaternion())
}
