package spatialmath

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// OrientationType is the stable string tag of an orientation parameterization in serialized
// form.
type OrientationType string

// The set of builtin orientation type tags.
const (
	EulerAnglesType        = OrientationType("euler_angles")
	EulerAnglesDegreesType = OrientationType("euler_angles_degrees")
	AxisAnglesType         = OrientationType("axis_angles")
	QuaternionType         = OrientationType("quaternion")
	RotationMatrixType     = OrientationType("rotation_matrix")
)

// RawOrientation holds the type tag and the not-yet-decoded value of an orientation in its
// serialized form.
type RawOrientation struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// OrientationDecoder turns the raw serialized value of one orientation parameterization into
// an Orientation.
type OrientationDecoder func(json.RawMessage) (Orientation, error)

// OrientationRegistry maps orientation type tags to their decoders. It is built explicitly,
// typically once at startup, and handed to whatever does the deserializing; there is no hidden
// package-global registry to mutate.
type OrientationRegistry struct {
	decoders map[OrientationType]OrientationDecoder
}

// NewOrientationRegistry returns a registry with all builtin orientation types registered.
func NewOrientationRegistry() *OrientationRegistry {
	reg := &OrientationRegistry{decoders: map[OrientationType]OrientationDecoder{}}
	reg.decoders[EulerAnglesType] = func(value json.RawMessage) (Orientation, error) {
		var o EulerAngles
		if err := json.Unmarshal(value, &o); err != nil {
			return nil, err
		}
		return &o, nil
	}
	reg.decoders[EulerAnglesDegreesType] = func(value json.RawMessage) (Orientation, error) {
		var o EulerAnglesDegrees
		if err := json.Unmarshal(value, &o); err != nil {
			return nil, err
		}
		return &o, nil
	}
	reg.decoders[AxisAnglesType] = func(value json.RawMessage) (Orientation, error) {
		var o R4AA
		if err := json.Unmarshal(value, &o); err != nil {
			return nil, err
		}
		return &o, nil
	}
	reg.decoders[QuaternionType] = func(value json.RawMessage) (Orientation, error) {
		var q struct {
			W float64 `json:"w"`
			X float64 `json:"x"`
			Y float64 `json:"y"`
			Z float64 `json:"z"`
		}
		if err := json.Unmarshal(value, &q); err != nil {
			return nil, err
		}
		o := quaternion{q.W, q.X, q.Y, q.Z}
		return &o, nil
	}
	reg.decoders[RotationMatrixType] = func(value json.RawMessage) (Orientation, error) {
		var m struct {
			Rows []float64 `json:"rows"`
		}
		if err := json.Unmarshal(value, &m); err != nil {
			return nil, err
		}
		return NewRotationMatrix(m.Rows)
	}
	return reg
}

// Register adds a decoder for a new type tag. Re-registering an existing tag is an error, so a
// custom codec cannot silently shadow a builtin.
func (reg *OrientationRegistry) Register(t OrientationType, dec OrientationDecoder) error {
	if _, ok := reg.decoders[t]; ok {
		return errors.Errorf("orientation type %s already registered", t)
	}
	if dec == nil {
		return errors.Errorf("orientation type %s: decoder is nil", t)
	}
	reg.decoders[t] = dec
	return nil
}

// Parse decodes a raw orientation using the registered decoder for its tag. An empty raw
// orientation decodes to the zero orientation.
func (reg *OrientationRegistry) Parse(ro RawOrientation) (Orientation, error) {
	if ro.Type == "" && len(ro.Value) == 0 {
		return NewZeroOrientation(), nil
	}
	dec, ok := reg.decoders[OrientationType(ro.Type)]
	if !ok {
		return nil, NewOrientationTypeUnsupportedError(ro.Type)
	}
	return dec(ro.Value)
}
