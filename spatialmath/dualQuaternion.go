package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// Dual-quaternion view of a pose, for interop with pipelines that compose rigid motions as
// unit dual quaternions. The real part is the rotation quaternion and the dual part encodes
// half the translation against the rotation.

// ToDualQuaternion converts the pose to a unit dual quaternion.
func (p Pose3) ToDualQuaternion() dualquat.Number {
	rot := Normalize(p.orientation)
	tq := quat.Number{Imag: p.point.X / 2, Jmag: p.point.Y / 2, Kmag: p.point.Z / 2}
	return dualquat.Number{
		Real: rot,
		Dual: quat.Mul(tq, rot),
	}
}

// NewPoseFromDualQuaternion converts a unit dual quaternion back to a pose. The translation is
// recovered by multiplying the dual quaternion with its own conjugate, which leaves twice the
// translation in the dual part.
func NewPoseFromDualQuaternion(dq dualquat.Number) Pose3 {
	cartQuat := dualquat.Mul(dq, dualquat.Conj(dq))
	return Pose3{
		point:       r3.Vector{X: cartQuat.Dual.Imag, Y: cartQuat.Dual.Jmag, Z: cartQuat.Dual.Kmag},
		orientation: Normalize(dq.Real),
	}
}
