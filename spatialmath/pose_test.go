package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/mirmik/termin-sub008/utils"
)

func TestZeroPose(t *testing.T) {
	zero := NewZeroPose()
	test.That(t, zero.Point(), test.ShouldResemble, r3.Vector{})
	test.That(t, zero.Quaternion(), test.ShouldResemble, quat.Number{Real: 1})
	test.That(t, PoseAlmostEqual(Compose(zero, zero), zero, 1e-9), test.ShouldBeTrue)
}

func TestPoseInverse(t *testing.T) {
	for _, tc := range []struct {
		name string
		pose Pose3
	}{
		{"translation only", NewPoseFromPoint(r3.Vector{X: 1, Y: -2, Z: 3})},
		{"rotation only", NewPoseFromOrientation(&R4AA{math.Pi / 3, 0, 1, 0})},
		{"both", NewPose(r3.Vector{X: -4, Y: 5, Z: 0.5}, &EulerAngles{Roll: 0.2, Pitch: -1.1, Yaw: 2.5})},
	} {
		t.Run(tc.name, func(t *testing.T) {
			test.That(t, PoseAlmostEqual(Compose(tc.pose, tc.pose.Invert()), NewZeroPose(), 1e-9), test.ShouldBeTrue)
			test.That(t, PoseAlmostEqual(Compose(tc.pose.Invert(), tc.pose), NewZeroPose(), 1e-9), test.ShouldBeTrue)
		})
	}
}

func TestPoseComposeAssociativity(t *testing.T) {
	a := NewPose(r3.Vector{X: 1, Y: 0, Z: 0}, &R4AA{math.Pi / 2, 0, 0, 1})
	b := NewPose(r3.Vector{X: 0, Y: 2, Z: 0}, &EulerAngles{Roll: 0.5, Pitch: 0.25, Yaw: -0.75})
	c := NewPose(r3.Vector{X: -1, Y: 1, Z: 4}, &R4AA{2.1, 1, 1, 0})
	left := Compose(Compose(a, b), c)
	right := Compose(a, Compose(b, c))
	test.That(t, PoseAlmostEqual(left, right, 1e-9), test.ShouldBeTrue)
}

func TestPoseComposeOrder(t *testing.T) {
	p1 := NewPoseFromPoint(r3.Vector{X: 1, Y: 0, Z: 0})
	p2 := NewPose(r3.Vector{X: 0, Y: 1, Z: 0}, &R4AA{math.Pi / 2, 0, 0, 1})
	composed := Compose(p1, p2)
	test.That(t, utils.R3VectorAlmostEqual(composed.Point(), r3.Vector{X: 1, Y: 1, Z: 0}, 1e-9), test.ShouldBeTrue)
	// the composed rotation is p1's rotation applied first, so here just p2's 90 degrees about Z
	aa := composed.Orientation().AxisAngles()
	test.That(t, aa.Theta, test.ShouldAlmostEqual, math.Pi/2, 1e-9)
	test.That(t, aa.RZ, test.ShouldAlmostEqual, 1, 1e-9)

	// composition is not commutative: the reversed order rotates p1's translation
	reversed := Compose(p2, p1)
	test.That(t, utils.R3VectorAlmostEqual(reversed.Point(), r3.Vector{X: 0, Y: 2, Z: 0}, 1e-9), test.ShouldBeTrue)
}

func TestPoseTransformPoint(t *testing.T) {
	p := NewPose(r3.Vector{X: 1, Y: 0, Z: 0}, &R4AA{math.Pi / 2, 0, 0, 1})
	test.That(t, utils.R3VectorAlmostEqual(p.TransformPoint(r3.Vector{X: 1, Y: 0, Z: 0}), r3.Vector{X: 1, Y: 1, Z: 0}, 1e-9), test.ShouldBeTrue)
	// vectors ignore translation
	test.That(t, utils.R3VectorAlmostEqual(p.TransformVector(r3.Vector{X: 1, Y: 0, Z: 0}), r3.Vector{X: 0, Y: 1, Z: 0}, 1e-9), test.ShouldBeTrue)
}

func TestPoseDelta(t *testing.T) {
	p1 := NewPose(r3.Vector{X: 2, Y: 2, Z: 2}, &EulerAngles{Yaw: 1})
	p2 := NewPose(r3.Vector{X: -1, Y: 0, Z: 5}, &EulerAngles{Roll: -0.5, Yaw: 0.25})
	test.That(t, PoseAlmostEqual(Compose(p1, Delta(p1, p2)), p2, 1e-9), test.ShouldBeTrue)
}

func TestInterpolate(t *testing.T) {
	p0 := NewPoseFromPoint(r3.Vector{X: 0, Y: 0, Z: 0})
	p1 := NewPoseFromPoint(r3.Vector{X: 2, Y: 4, Z: 6})
	mid := Interpolate(p0, p1, 0.5)
	test.That(t, utils.R3VectorAlmostEqual(mid.Point(), r3.Vector{X: 1, Y: 2, Z: 3}, 1e-9), test.ShouldBeTrue)

	// out of range amounts clamp rather than fail
	test.That(t, PoseAlmostEqual(Interpolate(p0, p1, -0.5), p0, 1e-9), test.ShouldBeTrue)
	test.That(t, PoseAlmostEqual(Interpolate(p0, p1, 1.5), p1, 1e-9), test.ShouldBeTrue)
}

func TestInterpolateShorterArc(t *testing.T) {
	// two orientations 170 degrees apart, with the second quaternion negated so a naive slerp
	// would walk the 190 degree way around
	q0 := NewPoseFromOrientation(&R4AA{0, 0, 0, 1})
	q1 := NewPoseFromOrientation(&R4AA{170 * math.Pi / 180, 0, 0, 1})
	flipped := Pose3{orientation: Flip(q1.Quaternion())}

	mid := Interpolate(q0, flipped, 0.5)
	aa := mid.Orientation().AxisAngles()
	test.That(t, math.Abs(aa.Theta), test.ShouldAlmostEqual, 85*math.Pi/180, 1e-9)
}

func TestPoseDualQuaternionRoundTrip(t *testing.T) {
	p := NewPose(r3.Vector{X: 1, Y: 2, Z: 3}, &EulerAngles{Roll: 0.3, Pitch: 0.6, Yaw: -0.9})
	back := NewPoseFromDualQuaternion(p.ToDualQuaternion())
	test.That(t, PoseAlmostEqual(p, back, 1e-9), test.ShouldBeTrue)
}

func TestComposeMatchesDualQuaternionProduct(t *testing.T) {
	a := NewPose(r3.Vector{X: 1, Y: 0, Z: -1}, &R4AA{math.Pi / 5, 1, 0, 0})
	b := NewPose(r3.Vector{X: 0, Y: 3, Z: 2}, &R4AA{math.Pi / 7, 0, 1, 0})
	viaDQ := NewPoseFromDualQuaternion(dualquat.Mul(a.ToDualQuaternion(), b.ToDualQuaternion()))
	test.That(t, PoseAlmostEqual(Compose(a, b), viaDQ, 1e-9), test.ShouldBeTrue)
}

func TestNonNormalizedOrientationIsNormalized(t *testing.T) {
	q := quaternion(quat.Number{Real: 2, Imag: 0, Jmag: 0, Kmag: 0})
	p := NewPose(r3.Vector{X: 1, Y: 1, Z: 1}, &q)
	test.That(t, Norm(p.Quaternion()), test.ShouldAlmostEqual, 0, 1e-9)
	test.That(t, p.Quaternion().Real, test.ShouldAlmostEqual, 1, 1e-9)
}
