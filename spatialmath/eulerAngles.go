package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/mirmik/termin-sub008/utils"
)

// EulerAngles are three angles (in radians) used to represent the rotation of an object in 3D
// Euclidean space. The Tait-Bryan angle formalism is used, with rotations around the z, y, and x
// axes (in that order).
type EulerAngles struct {
	Roll  float64 `json:"roll"`  // rotation around the x axis
	Pitch float64 `json:"pitch"` // rotation around the y axis
	Yaw   float64 `json:"yaw"`   // rotation around the z axis
}

// NewEulerAngles creates an empty EulerAngles struct.
func NewEulerAngles() *EulerAngles {
	return &EulerAngles{Roll: 0, Pitch: 0, Yaw: 0}
}

// EulerAngles returns orientation in Euler angle representation.
func (ea *EulerAngles) EulerAngles() *EulerAngles {
	return ea
}

// Quaternion returns the orientation in quaternion representation.
func (ea *EulerAngles) Quaternion() quat.Number {
	cy := math.Cos(ea.Yaw * 0.5)
	sy := math.Sin(ea.Yaw * 0.5)
	cp := math.Cos(ea.Pitch * 0.5)
	sp := math.Sin(ea.Pitch * 0.5)
	cr := math.Cos(ea.Roll * 0.5)
	sr := math.Sin(ea.Roll * 0.5)

	q := quat.Number{}
	q.Real = cr*cp*cy + sr*sp*sy
	q.Imag = sr*cp*cy - cr*sp*sy
	q.Jmag = cr*sp*cy + sr*cp*sy
	q.Kmag = cr*cp*sy - sr*sp*cy

	return q
}

// AxisAngles returns the orientation in axis angle representation.
func (ea *EulerAngles) AxisAngles() *R4AA {
	return QuatToR4AA(ea.Quaternion())
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (ea *EulerAngles) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(ea.Quaternion())
}

// EulerAnglesDegrees is an EulerAngles with the three angles expressed in degrees, the form
// humans tend to write in config files. All math happens in radians.
type EulerAnglesDegrees struct {
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
}

// NewEulerAnglesDegrees converts a radian EulerAngles to its degree form.
func NewEulerAnglesDegrees(ea *EulerAngles) *EulerAnglesDegrees {
	return &EulerAnglesDegrees{
		Roll:  utils.RadToDeg(ea.Roll),
		Pitch: utils.RadToDeg(ea.Pitch),
		Yaw:   utils.RadToDeg(ea.Yaw),
	}
}

// Radians converts to the radian form.
func (ead *EulerAnglesDegrees) Radians() *EulerAngles {
	return &EulerAngles{
		Roll:  utils.DegToRad(ead.Roll),
		Pitch: utils.DegToRad(ead.Pitch),
		Yaw:   utils.DegToRad(ead.Yaw),
	}
}

// EulerAngles returns orientation in Euler angle representation.
func (ead *EulerAnglesDegrees) EulerAngles() *EulerAngles {
	return ead.Radians()
}

// Quaternion returns the orientation in quaternion representation.
func (ead *EulerAnglesDegrees) Quaternion() quat.Number {
	return ead.Radians().Quaternion()
}

// AxisAngles returns the orientation in axis angle representation.
func (ead *EulerAnglesDegrees) AxisAngles() *R4AA {
	return ead.Radians().AxisAngles()
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (ead *EulerAnglesDegrees) RotationMatrix() *RotationMatrix {
	return ead.Radians().RotationMatrix()
}
