package referenceframe

import (
	"github.com/pkg/errors"
)

// the world frame is the root of every system and has no parent frame
var errNoParent = errors.New("no parent")

// NewFrameMissingError returns an error for a frame name not present in the frame system.
func NewFrameMissingError(name string) error {
	return errors.Errorf("frame with name %q not in frame system", name)
}

// NewFrameAlreadyExistsError returns an error for adding a frame with a name already in use.
func NewFrameAlreadyExistsError(name string) error {
	return errors.Errorf("frame with name %q already in frame system", name)
}

// NewParentFrameMissingError returns an error for adding a frame under an unknown parent.
func NewParentFrameMissingError(frame, parent string) error {
	return errors.Errorf("parent frame %q for frame %q not in frame system", parent, frame)
}

// NewReservedWorldError returns an error for attempting to redefine the world frame.
func NewReservedWorldError() error {
	return errors.New("frame name \"world\" is reserved for the root frame")
}
