package spatialmath

import (
	"math"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

// represent a 45 degree rotation around the x axis in all the representations
var (
	th    = math.Pi / 4.
	q45x  = quat.Number{Real: math.Cos(th / 2.), Imag: math.Sin(th / 2.), Jmag: 0, Kmag: 0} // in quaternion representation
	aa45x = &R4AA{th, 1., 0., 0.}                                                           // in axis-angle representation
	ea45x = &EulerAngles{Roll: th, Pitch: 0, Yaw: 0}                                        // in euler angle representation
)

func TestZeroOrientation(t *testing.T) {
	zero := NewZeroOrientation()
	test.That(t, zero.Quaternion(), test.ShouldResemble, quat.Number{Real: 1, Imag: 0, Jmag: 0, Kmag: 0})
	test.That(t, zero.AxisAngles().Theta, test.ShouldEqual, 0)
	test.That(t, zero.EulerAngles(), test.ShouldResemble, NewEulerAngles())
}

func TestQuaternionConversions(t *testing.T) {
	qq45x := quaternion(q45x)
	aa := qq45x.AxisAngles()
	test.That(t, aa.Theta, test.ShouldAlmostEqual, aa45x.Theta)
	test.That(t, aa.RX, test.ShouldAlmostEqual, aa45x.RX)
	test.That(t, aa.RY, test.ShouldAlmostEqual, aa45x.RY)
	test.That(t, aa.RZ, test.ShouldAlmostEqual, aa45x.RZ)

	ea := qq45x.EulerAngles()
	test.That(t, ea.Roll, test.ShouldAlmostEqual, ea45x.Roll)
	test.That(t, ea.Pitch, test.ShouldAlmostEqual, ea45x.Pitch)
	test.That(t, ea.Yaw, test.ShouldAlmostEqual, ea45x.Yaw)
}

func TestEulerAnglesConversions(t *testing.T) {
	q := ea45x.Quaternion()
	test.That(t, q.Real, test.ShouldAlmostEqual, q45x.Real)
	test.That(t, q.Imag, test.ShouldAlmostEqual, q45x.Imag)
	test.That(t, q.Jmag, test.ShouldAlmostEqual, q45x.Jmag)
	test.That(t, q.Kmag, test.ShouldAlmostEqual, q45x.Kmag)
}

func TestEulerAnglesDegreesConversions(t *testing.T) {
	ead := &EulerAnglesDegrees{Roll: 45}
	test.That(t, QuaternionAlmostEqual(ead.Quaternion(), q45x, 1e-9), test.ShouldBeTrue)
	test.That(t, ead.EulerAngles().Roll, test.ShouldAlmostEqual, th)

	back := NewEulerAnglesDegrees(ea45x)
	test.That(t, back.Roll, test.ShouldAlmostEqual, 45)
	test.That(t, back.Pitch, test.ShouldAlmostEqual, 0)
	test.That(t, back.Yaw, test.ShouldAlmostEqual, 0)
}

func TestAxisAnglesConversions(t *testing.T) {
	q := aa45x.Quaternion()
	test.That(t, QuaternionAlmostEqual(q, q45x, 1e-9), test.ShouldBeTrue)
	back := QuatToR4AA(q)
	test.That(t, back.Theta, test.ShouldAlmostEqual, th)
	test.That(t, back.RX, test.ShouldAlmostEqual, 1)

	// converting leaves the receiver alone and scales the axis internally
	long := &R4AA{Theta: th, RX: 2}
	test.That(t, QuaternionAlmostEqual(long.ToQuat(), q45x, 1e-9), test.ShouldBeTrue)
	test.That(t, long.RX, test.ShouldEqual, 2)

	n := (&R4AA{Theta: 1, RX: 0, RY: 3, RZ: 4}).Normalized()
	test.That(t, n.RY, test.ShouldAlmostEqual, 0.6)
	test.That(t, n.RZ, test.ShouldAlmostEqual, 0.8)
	// a zero axis degrades to the identity rotation instead of dividing by zero
	zero := (&R4AA{Theta: 1}).Normalized()
	test.That(t, zero.Theta, test.ShouldEqual, 0)
	test.That(t, zero.RZ, test.ShouldEqual, 1)
}

func TestRotationMatrixConversions(t *testing.T) {
	rm := QuatToRotationMatrix(q45x)
	test.That(t, QuaternionAlmostEqual(rm.Quaternion(), q45x, 1e-9), test.ShouldBeTrue)

	// round trip through the column major mgl64 view
	back := NewRotationMatrixFromMat3(rm.Mat3())
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			test.That(t, back.At(row, col), test.ShouldAlmostEqual, rm.At(row, col))
		}
	}
}

func TestRotationMatrixInputValidation(t *testing.T) {
	_, err := NewRotationMatrix([]float64{1, 0, 0})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "need exactly 9")
}

func TestOrientationBetween(t *testing.T) {
	o1 := &EulerAngles{Roll: 0.2}
	o2 := &EulerAngles{Roll: 0.2, Yaw: 1.0}
	diff := OrientationBetween(o1, o2)
	recomposed := quat.Mul(diff.Quaternion(), o1.Quaternion())
	test.That(t, QuaternionAlmostEqual(recomposed, o2.Quaternion(), 1e-9), test.ShouldBeTrue)

	inv := OrientationInverse(o2)
	test.That(t, QuaternionAlmostEqual(quat.Mul(inv.Quaternion(), o2.Quaternion()), quat.Number{Real: 1}, 1e-9), test.ShouldBeTrue)
}

func TestNormalize(t *testing.T) {
	n := Normalize(quat.Number{Real: 3, Imag: 4})
	test.That(t, n.Real, test.ShouldAlmostEqual, 0.6)
	test.That(t, n.Imag, test.ShouldAlmostEqual, 0.8)
	// zero quaternion normalizes to the identity rather than NaN
	test.That(t, Normalize(quat.Number{}), test.ShouldResemble, quat.Number{Real: 1})
}
