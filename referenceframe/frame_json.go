package referenceframe

import (
	"encoding/json"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/mirmik/termin-sub008/spatialmath"
)

// FrameConfig is the serialized form of one frame: a name, the name of its parent, and the
// parts of its transform relative to that parent. A missing orientation means no rotation and
// a missing scale means unit scale.
type FrameConfig struct {
	Name        string                      `json:"name"`
	Parent      string                      `json:"parent"`
	Translation TranslationConfig           `json:"translation"`
	Orientation *spatialmath.RawOrientation `json:"orientation,omitempty"`
	Scale       *ScaleConfig                `json:"scale,omitempty"`
}

// TranslationConfig is the serialized form of a translation vector.
type TranslationConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ScaleConfig is the serialized form of a per-axis scale vector.
type ScaleConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ParseConfig decodes a frame config into a transform, resolving the orientation through the
// given registry.
func (cfg *FrameConfig) ParseConfig(registry *spatialmath.OrientationRegistry) (spatialmath.GeneralTransform3, error) {
	orientation := spatialmath.NewZeroOrientation()
	if cfg.Orientation != nil {
		o, err := registry.Parse(*cfg.Orientation)
		if err != nil {
			return spatialmath.GeneralTransform3{}, errors.Wrapf(err, "frame %q", cfg.Name)
		}
		orientation = o
	}
	pose := spatialmath.NewPose(r3.Vector{X: cfg.Translation.X, Y: cfg.Translation.Y, Z: cfg.Translation.Z}, orientation)
	if cfg.Scale == nil {
		return spatialmath.NewGeneralTransformFromPose(pose), nil
	}
	transform, err := spatialmath.NewGeneralTransform(pose, r3.Vector{X: cfg.Scale.X, Y: cfg.Scale.Y, Z: cfg.Scale.Z})
	if err != nil {
		return spatialmath.GeneralTransform3{}, errors.Wrapf(err, "frame %q", cfg.Name)
	}
	return transform, nil
}

// LoadFrameSystem builds a frame system from a JSON document of the form
// {"name": ..., "frames": [FrameConfig, ...]}. Frames must be listed parents-first; the
// orientation registry is supplied by the caller rather than looked up globally.
func LoadFrameSystem(data []byte, registry *spatialmath.OrientationRegistry, logger golog.Logger) (*FrameSystem, error) {
	var doc struct {
		Name   string        `json:"name"`
		Frames []FrameConfig `json:"frames"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	fs := NewFrameSystem(doc.Name, logger)
	for i := range doc.Frames {
		cfg := &doc.Frames[i]
		parent := cfg.Parent
		if parent == "" {
			parent = World
		}
		local, err := cfg.ParseConfig(registry)
		if err != nil {
			return nil, err
		}
		if err := fs.AddFrame(cfg.Name, parent, local); err != nil {
			return nil, err
		}
	}
	return fs, nil
}
