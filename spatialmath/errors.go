package spatialmath

import (
	"github.com/pkg/errors"
)

// NewInvalidScaleError returns an error for a non-positive scale component supplied on the given axis.
func NewInvalidScaleError(axis string, value float64) error {
	return errors.Errorf("scale component %s must be strictly positive, got %f", axis, value)
}

// NewFrameMismatchError returns an error for an operation on two screws expressed in different
// reference frames. Transfer one of them first.
func NewFrameMismatchError(frame1, frame2 string) error {
	return errors.Errorf("screws are expressed in different frames %q and %q", frame1, frame2)
}

// NewDomainError returns an error for a parameter outside its defined range.
func NewDomainError(name string, value, min, max float64) error {
	return errors.Errorf("parameter %s=%f outside of range [%f, %f]", name, value, min, max)
}

// NewOrientationTypeUnsupportedError returns an error for an unrecognized orientation type tag.
func NewOrientationTypeUnsupportedError(orientationType string) error {
	return errors.Errorf("orientation type %s not recognized", orientationType)
}
