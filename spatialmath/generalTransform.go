package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/num/quat"

	"github.com/mirmik/termin-sub008/utils"
)

// GeneralTransform3 is a rigid pose augmented with a strictly positive per-axis scale. Scale
// inherits hierarchically: composing with a parent scales the child's translation before the
// parent's rotation is applied, and the scales multiply component-wise. Like Pose3 it is a
// value type with no mutable state.
type GeneralTransform3 struct {
	pose  Pose3
	scale r3.Vector
}

// NewIdentityTransform returns the identity transform: zero translation, no rotation, unit scale.
func NewIdentityTransform() GeneralTransform3 {
	return GeneralTransform3{pose: NewZeroPose(), scale: r3.Vector{X: 1, Y: 1, Z: 1}}
}

// NewGeneralTransform creates a scaled transform from a pose and a scale vector. Every scale
// component must be strictly positive; a degenerate scale is an error, never silently clamped.
func NewGeneralTransform(pose Pose3, scale r3.Vector) (GeneralTransform3, error) {
	var err error
	if scale.X <= 0 {
		err = multierr.Combine(err, NewInvalidScaleError("x", scale.X))
	}
	if scale.Y <= 0 {
		err = multierr.Combine(err, NewInvalidScaleError("y", scale.Y))
	}
	if scale.Z <= 0 {
		err = multierr.Combine(err, NewInvalidScaleError("z", scale.Z))
	}
	if err != nil {
		return GeneralTransform3{}, err
	}
	return GeneralTransform3{pose: pose, scale: scale}, nil
}

// NewGeneralTransformFromPose wraps a rigid pose with unit scale.
func NewGeneralTransformFromPose(pose Pose3) GeneralTransform3 {
	return GeneralTransform3{pose: pose, scale: r3.Vector{X: 1, Y: 1, Z: 1}}
}

// ToPose drops the scale, for consumers that only need the rigid motion.
func (t GeneralTransform3) ToPose() Pose3 {
	return t.pose
}

// Point returns the translation component.
func (t GeneralTransform3) Point() r3.Vector {
	return t.pose.Point()
}

// Orientation returns the orientation component.
func (t GeneralTransform3) Orientation() Orientation {
	return t.pose.Orientation()
}

// Scale returns the per-axis scale vector.
func (t GeneralTransform3) Scale() r3.Vector {
	return t.scale
}

// ComposeTransforms returns the transform equivalent to applying child within parent's frame.
// The child translation is scaled by the parent then rotated into the parent frame before the
// parent translation is added; orientations multiply; scales multiply component-wise. The
// operation is order-dependent.
func ComposeTransforms(parent, child GeneralTransform3) GeneralTransform3 {
	scaledPoint := scaleVec(parent.scale, child.pose.point)
	return GeneralTransform3{
		pose: Pose3{
			point:       parent.pose.point.Add(rotateVector(parent.pose.orientation, scaledPoint)),
			orientation: Normalize(quat.Mul(parent.pose.orientation, child.pose.orientation)),
		},
		scale: scaleVec(parent.scale, child.scale),
	}
}

// Invert returns the transform undoing this one: ComposeTransforms(t, t.Invert()) is the
// identity transform (zero translation, no rotation, unit scale) within tolerance. Anisotropic
// scale inverts component-wise.
func (t GeneralTransform3) Invert() GeneralTransform3 {
	invScale := r3.Vector{X: 1 / t.scale.X, Y: 1 / t.scale.Y, Z: 1 / t.scale.Z}
	invPose := t.pose.Invert()
	return GeneralTransform3{
		pose: Pose3{
			point:       scaleVec(invScale, invPose.point),
			orientation: invPose.orientation,
		},
		scale: invScale,
	}
}

// TransformPoint maps a point from the transform's local frame: scale, rotate, translate.
func (t GeneralTransform3) TransformPoint(pt r3.Vector) r3.Vector {
	return t.pose.TransformPoint(scaleVec(t.scale, pt))
}

// Mat4 returns the affine matrix of the transform in mgl64's column major layout, the form
// renderers consume.
func (t GeneralTransform3) Mat4() mgl64.Mat4 {
	rot := t.pose.Orientation().RotationMatrix()
	p := t.pose.point
	s := t.scale
	return mgl64.Mat4{
		rot.At(0, 0) * s.X, rot.At(1, 0) * s.X, rot.At(2, 0) * s.X, 0,
		rot.At(0, 1) * s.Y, rot.At(1, 1) * s.Y, rot.At(2, 1) * s.Y, 0,
		rot.At(0, 2) * s.Z, rot.At(1, 2) * s.Z, rot.At(2, 2) * s.Z, 0,
		p.X, p.Y, p.Z, 1,
	}
}

// TransformAlmostEqual checks whether translation, orientation, and scale of two transforms
// all agree within the given tolerance.
func TransformAlmostEqual(a, b GeneralTransform3, tol float64) bool {
	return PoseAlmostEqual(a.pose, b.pose, tol) && utils.R3VectorAlmostEqual(a.scale, b.scale, tol)
}

func scaleVec(s, v r3.Vector) r3.Vector {
	return r3.Vector{X: s.X * v.X, Y: s.Y * v.Y, Z: s.Z * v.Z}
}
