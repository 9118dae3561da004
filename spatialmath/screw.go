package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// A screw (twist) bundles the instantaneous linear and angular velocity of a rigid body about
// an explicit reference point. The Frame tag names the frame the components are expressed in;
// screws expressed in different frames refuse to add until one is transferred or rotated.

// Screw3 is a spatial twist: linear and angular velocity in 3D.
type Screw3 struct {
	Frame   string
	Linear  r3.Vector
	Angular r3.Vector
}

// Screw2 is a planar twist: linear velocity in the plane and a scalar angular rate about the
// normal of the plane.
type Screw2 struct {
	Frame   string
	Linear  r2.Point
	Angular float64
}

// NewZeroScrew3 returns a zero twist tagged with the given frame.
func NewZeroScrew3(frame string) Screw3 {
	return Screw3{Frame: frame}
}

// Transfer recomputes the twist about a new reference point displaced by d from the current
// one: the angular component is unchanged and the linear component picks up angular cross d.
func (s Screw3) Transfer(d r3.Vector) Screw3 {
	return Screw3{
		Frame:   s.Frame,
		Linear:  s.Linear.Add(s.Angular.Cross(d)),
		Angular: s.Angular,
	}
}

// Transfer recomputes the planar twist about a new reference point displaced by d.
func (s Screw2) Transfer(d r2.Point) Screw2 {
	return Screw2{
		Frame:   s.Frame,
		Linear:  r2.Point{X: s.Linear.X - s.Angular*d.Y, Y: s.Linear.Y + s.Angular*d.X},
		Angular: s.Angular,
	}
}

// AddScrews sums two twists expressed about the same reference point in the same frame. The
// linear and angular parts add independently. Operands tagged with different frames are
// rejected; transfer or rotate one of them first.
func AddScrews(s1, s2 Screw3) (Screw3, error) {
	if s1.Frame != s2.Frame {
		return Screw3{}, NewFrameMismatchError(s1.Frame, s2.Frame)
	}
	return Screw3{
		Frame:   s1.Frame,
		Linear:  s1.Linear.Add(s2.Linear),
		Angular: s1.Angular.Add(s2.Angular),
	}, nil
}

// AddScrews2 is the planar analogue of AddScrews.
func AddScrews2(s1, s2 Screw2) (Screw2, error) {
	if s1.Frame != s2.Frame {
		return Screw2{}, NewFrameMismatchError(s1.Frame, s2.Frame)
	}
	return Screw2{
		Frame:   s1.Frame,
		Linear:  s1.Linear.Add(s2.Linear),
		Angular: s1.Angular + s2.Angular,
	}, nil
}

// RotateTo re-expresses the twist in a frame rotated by the given orientation, retagging it
// with the new frame name. Both components rotate; the reference point does not move.
func (s Screw3) RotateTo(frame string, o Orientation) Screw3 {
	q := o.Quaternion()
	return Screw3{
		Frame:   frame,
		Linear:  rotateVector(q, s.Linear),
		Angular: rotateVector(q, s.Angular),
	}
}

// Dot is the sum of the component-wise products of two twists, useful as a power pairing
// against a wrench stored in the same layout.
func (s Screw3) Dot(other Screw3) float64 {
	return s.Linear.Dot(other.Linear) + s.Angular.Dot(other.Angular)
}

// IsZero reports whether both components are exactly zero.
func (s Screw3) IsZero() bool {
	return s.Linear == (r3.Vector{}) && s.Angular == (r3.Vector{})
}

// below this rotation angle the closed-form Rodrigues coefficients lose precision and the
// series expansions take over
const smallAngleThreshold = 1e-4

// ApplyToPose integrates a body-frame twist over dt and composes the resulting finite screw
// motion onto the pose: result = Compose(p, exp(dt * s)). The exponential map is used rather
// than a naive linear update, so large angular rates still produce a rigid motion.
func ApplyToPose(s Screw3, p Pose3, dt float64) Pose3 {
	w := s.Angular.Mul(dt)
	v := s.Linear.Mul(dt)
	theta := w.Norm()

	// rotation part of the screw motion
	dq := quat.Number{Real: 1}
	if theta > 0 {
		half := theta / 2
		sc := math.Sin(half) / theta
		dq = quat.Number{Real: math.Cos(half), Imag: w.X * sc, Jmag: w.Y * sc, Kmag: w.Z * sc}
	}

	// translation part: A(w) v with A = I + c1 [w]x + c2 [w]x^2
	var c1, c2 float64
	if theta < smallAngleThreshold {
		c1 = 0.5 - theta*theta/24
		c2 = 1.0/6.0 - theta*theta/120
	} else {
		c1 = (1 - math.Cos(theta)) / (theta * theta)
		c2 = (theta - math.Sin(theta)) / (theta * theta * theta)
	}
	wxv := w.Cross(v)
	translation := v.Add(wxv.Mul(c1)).Add(w.Cross(wxv).Mul(c2))

	step := Pose3{point: translation, orientation: dq}
	return Compose(p, step)
}

// ScrewFromAngularVelocity builds a twist with the given angular velocity and no linear
// component, tagged with the given frame.
func ScrewFromAngularVelocity(frame string, av AngularVelocity) Screw3 {
	return Screw3{Frame: frame, Angular: r3.Vector(av)}
}
