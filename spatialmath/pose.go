package spatialmath

import (
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/mirmik/termin-sub008/utils"
)

var interpLogger = golog.NewLogger("spatialmath")

// Pose3 is a rigid transform in 3D space: a translation together with a unit-quaternion
// orientation. It is a value type; operations return new poses and never mutate their
// operands, so poses may be shared freely across goroutines.
type Pose3 struct {
	point       r3.Vector
	orientation quat.Number
}

// NewZeroPose returns the identity pose: zero translation, no rotation.
func NewZeroPose() Pose3 {
	return Pose3{orientation: quat.Number{Real: 1}}
}

// NewPose creates a pose from a point and an orientation. The orientation is normalized on the
// way in so the stored quaternion is always a versor.
func NewPose(point r3.Vector, o Orientation) Pose3 {
	if o == nil {
		return Pose3{point: point, orientation: quat.Number{Real: 1}}
	}
	return Pose3{point: point, orientation: Normalize(o.Quaternion())}
}

// NewPoseFromPoint creates a pose with the given translation and no rotation.
func NewPoseFromPoint(point r3.Vector) Pose3 {
	return Pose3{point: point, orientation: quat.Number{Real: 1}}
}

// NewPoseFromOrientation creates a pose with the given rotation and no translation.
func NewPoseFromOrientation(o Orientation) Pose3 {
	return NewPose(r3.Vector{}, o)
}

// Point returns the translation component of the pose.
func (p Pose3) Point() r3.Vector {
	return p.point
}

// Orientation returns the orientation component of the pose.
func (p Pose3) Orientation() Orientation {
	q := quaternion(p.orientation)
	return &q
}

// Quaternion returns the orientation component as a unit quaternion.
func (p Pose3) Quaternion() quat.Number {
	return p.orientation
}

// Compose returns the pose equivalent to applying b within a's frame: the translation is
// a.point + a rotated b.point, and the orientations multiply. Composition is not commutative.
func Compose(a, b Pose3) Pose3 {
	return Pose3{
		point:       a.point.Add(rotateVector(a.orientation, b.point)),
		orientation: Normalize(quat.Mul(a.orientation, b.orientation)),
	}
}

// Invert returns the pose which undoes this one: Compose(p, p.Invert()) is the identity pose
// up to floating point error.
func (p Pose3) Invert() Pose3 {
	invOrient := quat.Conj(Normalize(p.orientation))
	return Pose3{
		point:       rotateVector(invOrient, p.point.Mul(-1)),
		orientation: invOrient,
	}
}

// TransformPoint applies the pose to a point in its local frame, rotating then translating.
func (p Pose3) TransformPoint(pt r3.Vector) r3.Vector {
	return rotateVector(p.orientation, pt).Add(p.point)
}

// TransformVector applies only the rotation of the pose to a direction vector, ignoring the
// translation.
func (p Pose3) TransformVector(v r3.Vector) r3.Vector {
	return rotateVector(p.orientation, v)
}

// Delta returns the pose taking p1 to p2, i.e. Compose(p1, Delta(p1, p2)) == p2.
func Delta(p1, p2 Pose3) Pose3 {
	return Compose(p1.Invert(), p2)
}

// Interpolate returns a pose part way between two poses: the translation is linearly
// interpolated and the orientation follows the shorter spherical arc between the two
// quaternions. Amounts outside [0, 1] are clamped with a logged warning rather than rejected,
// since the amount is typically externally-driven animation time.
func Interpolate(p1, p2 Pose3, by float64) Pose3 {
	if by < 0 || by > 1 {
		interpLogger.Warnw("interpolation amount outside [0, 1], clamping", "amount", by)
		by = utils.Clamp(by, 0, 1)
	}
	return Pose3{
		point:       r3.Vector{X: (p1.point.X + (p2.point.X-p1.point.X)*by), Y: (p1.point.Y + (p2.point.Y-p1.point.Y)*by), Z: (p1.point.Z + (p2.point.Z-p1.point.Z)*by)},
		orientation: slerp(p1.orientation, p2.orientation, by),
	}
}

// PoseAlmostEqual checks whether both the translation and orientation of two poses agree within
// the given tolerance. Exact float equality is never assumed.
func PoseAlmostEqual(a, b Pose3, tol float64) bool {
	return utils.R3VectorAlmostEqual(a.point, b.point, tol) &&
		QuaternionAlmostEqual(a.orientation, b.orientation, tol)
}

// rotateVector conjugates the vector by the quaternion, the standard quaternion sandwich
// product q v q*.
func rotateVector(q quat.Number, v r3.Vector) r3.Vector {
	if v == (r3.Vector{}) {
		return v
	}
	vq := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	rv := quat.Mul(quat.Mul(q, vq), quat.Conj(q))
	return r3.Vector{X: rv.Imag, Y: rv.Jmag, Z: rv.Kmag}
}
