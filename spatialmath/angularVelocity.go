package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// AngularVelocity contains angular velocity in rad/s across x/y/z axes.
type AngularVelocity r3.Vector

// R3ToAngVel converts an r3Vector to an angular velocity.
func R3ToAngVel(vec r3.Vector) *AngularVelocity {
	return &AngularVelocity{X: vec.X, Y: vec.Y, Z: vec.Z}
}

// OrientationToAngularVel calculates an angular velocity based on an orientation change over a
// time difference.
func OrientationToAngularVel(diff Orientation, dt float64) *AngularVelocity {
	axA := diff.AxisAngles()
	return &AngularVelocity{
		X: axA.RX * axA.Theta / dt,
		Y: axA.RY * axA.Theta / dt,
		Z: axA.RZ * axA.Theta / dt,
	}
}

// QuatToAngVel calculates an angular velocity based on an orientation change expressed in
// quaternions over a time difference, using w = 2 * conj(q) * dq/dt with the derivative taken
// against the identity.
func QuatToAngVel(diffQ quat.Number, dt float64) *AngularVelocity {
	dqdt := quat.Scale(1/dt, quat.Sub(diffQ, quat.Number{Real: 1}))
	w := quat.Scale(2, quat.Mul(quat.Conj(diffQ), dqdt))
	return &AngularVelocity{
		X: w.Imag,
		Y: w.Jmag,
		Z: w.Kmag,
	}
}
